package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-fir/dsp/core"
)

func TestRamp(t *testing.T) {
	g := NewGenerator(nil)
	r, err := g.Ramp(128)
	if err != nil {
		t.Fatalf("Ramp() error = %v", err)
	}
	if len(r) != 128 {
		t.Fatalf("len = %d, want 128", len(r))
	}
	if r[0] != 0 {
		t.Fatalf("r[0] = %v, want 0", r[0])
	}
	if r[64] != 0.5 {
		t.Fatalf("r[64] = %v, want 0.5", r[64])
	}
	if r[127] >= 1 {
		t.Fatalf("r[127] = %v, want < 1", r[127])
	}
}

func TestSine(t *testing.T) {
	g := NewGenerator([]core.ProcessorOption{core.WithSampleRate(1000)})
	s, err := g.Sine(250, 1, 5)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	want := []float64{0, 1, 0, -1, 0}
	for i := range want {
		if math.Abs(s[i]-want[i]) > 1e-12 {
			t.Fatalf("s[%d] = %v, want %v", i, s[i], want[i])
		}
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	g1 := NewGenerator(nil, WithSeed(42))
	g2 := NewGenerator(nil, WithSeed(42))

	n1, err := g1.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	n2, err := g2.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	for i := range n1 {
		if n1[i] != n2[i] {
			t.Fatalf("noise mismatch at %d: %v != %v", i, n1[i], n2[i])
		}
		if math.Abs(n1[i]) > 1 {
			t.Fatalf("noise[%d] = %v exceeds amplitude", i, n1[i])
		}
	}
}

func TestImpulse(t *testing.T) {
	g := NewGenerator(nil)
	x, err := g.Impulse(4, 2)
	if err != nil {
		t.Fatalf("Impulse() error = %v", err)
	}
	want := []float64{0, 0, 1, 0}
	for i := range want {
		if x[i] != want[i] {
			t.Fatalf("x[%d] = %v, want %v", i, x[i], want[i])
		}
	}
}

func TestGeneratorErrors(t *testing.T) {
	g := NewGenerator(nil)

	if _, err := g.Ramp(0); err == nil {
		t.Error("Ramp(0) should fail")
	}
	if _, err := g.Sine(30000, 1, 8); err == nil {
		t.Error("Sine above Nyquist should fail")
	}
	if _, err := g.WhiteNoise(-1, 8); err == nil {
		t.Error("WhiteNoise with negative amplitude should fail")
	}
	if _, err := g.Impulse(4, 4); err == nil {
		t.Error("Impulse out of range should fail")
	}
}
