package fir

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-fir/internal/testutil"
)

func TestNew(t *testing.T) {
	coeffs := []float64{0.25, 0.5, 0.25}
	f := New(coeffs)
	if f.Order() != 2 {
		t.Fatalf("Order: got %d, want 2", f.Order())
	}
	testutil.RequireSliceNearlyEqual(t, f.Coefficients(), coeffs, 0)

	coeffs[0] = 999
	if f.Coefficients()[0] == 999 {
		t.Error("New did not copy coefficients")
	}
}

func TestProcessSample_Impulse(t *testing.T) {
	coeffs := []float64{0.25, 0.5, 0.25}
	f := New(coeffs)

	for i, want := range coeffs {
		var x float64
		if i == 0 {
			x = 1
		}
		if y := f.ProcessSample(x); !almostEqual(y, want, eps) {
			t.Errorf("sample %d: got %v, want %v", i, y, want)
		}
	}
	for i := range 5 {
		if y := f.ProcessSample(0); !almostEqual(y, 0, eps) {
			t.Errorf("post-IR sample %d: got %v, want 0", i, y)
		}
	}
}

func TestProcessSample_MovingAverage(t *testing.T) {
	f := New([]float64{1.0 / 3, 1.0 / 3, 1.0 / 3})
	want := []float64{1.0 / 3, 2.0 / 3, 1, 1, 1}
	for i := range want {
		if y := f.ProcessSample(1); !almostEqual(y, want[i], eps) {
			t.Errorf("sample %d: got %v, want %v", i, y, want[i])
		}
	}
}

func TestProcessSample_Differentiator(t *testing.T) {
	f := New([]float64{1, -1})
	input := []float64{0, 1, 3, 6, 10}
	want := []float64{0, 1, 2, 3, 4}
	for i, x := range input {
		if y := f.ProcessSample(x); !almostEqual(y, want[i], eps) {
			t.Errorf("sample %d: got %v, want %v", i, y, want[i])
		}
	}
}

func TestProcessSample_NoTaps(t *testing.T) {
	f := New(nil)
	if y := f.ProcessSample(3); y != 0 {
		t.Fatalf("got %v, want 0", y)
	}
	if f.Order() != -1 {
		t.Fatalf("Order: got %d, want -1", f.Order())
	}
}

func TestFreshFilterMatchesCompute(t *testing.T) {
	input, coeffs := rampScenario()
	want := make([]float64, len(input))
	Compute(input, want, coeffs, len(input), len(coeffs))

	got := make([]float64, len(input))
	New(coeffs).ProcessBlockTo(got, input)
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestProcessBlock_CarriesHistory(t *testing.T) {
	coeffs := taps(12, 11)
	input := testutil.DeterministicNoise(12, 1, 100)
	want := testutil.ReferenceFIR(input, coeffs)

	f := New(coeffs)
	buf := append([]float64(nil), input...)
	f.ProcessBlock(buf[:37])
	f.ProcessBlock(buf[37:])
	testutil.RequireSliceNearlyEqual(t, buf, want, 1e-12)
}

func TestProcessBlockTo_MatchesSample(t *testing.T) {
	coeffs := []float64{0.25, 0.5, 0.25}
	input := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8}

	f1 := New(coeffs)
	ref := make([]float64, len(input))
	for i, x := range input {
		ref[i] = f1.ProcessSample(x)
	}

	dst := make([]float64, len(input))
	New(coeffs).ProcessBlockTo(dst, input)
	testutil.RequireSliceNearlyEqual(t, dst, ref, eps)

	// Empty source is a no-op even with an empty destination.
	New(coeffs).ProcessBlockTo(nil, nil)
}

func TestReset(t *testing.T) {
	coeffs := []float64{0.25, 0.5, 0.25}
	f := New(coeffs)
	f.ProcessSample(1)
	f.ProcessSample(0.5)
	f.Reset()

	for i, want := range coeffs {
		var x float64
		if i == 0 {
			x = 1
		}
		if y := f.ProcessSample(x); !almostEqual(y, want, eps) {
			t.Errorf("sample %d after reset: got %v, want %v", i, y, want)
		}
	}
}

func TestResponse_DCGain(t *testing.T) {
	coeffs := []float64{0.25, 0.5, 0.25}
	f := New(coeffs)
	if got := cmplx.Abs(f.Response(0, 48000)); !almostEqual(got, DCGain(coeffs), 1e-12) {
		t.Errorf("DC gain: got %v, want %v", got, DCGain(coeffs))
	}
}

func TestResponse_DifferentiatorNyquist(t *testing.T) {
	f := New([]float64{1, -1})
	if got := cmplx.Abs(f.Response(0, 48000)); !almostEqual(got, 0, 1e-12) {
		t.Errorf("DC gain: got %v, want 0", got)
	}
	if got := cmplx.Abs(f.Response(24000, 48000)); !almostEqual(got, 2, 1e-12) {
		t.Errorf("Nyquist gain: got %v, want 2", got)
	}
}

func TestMagnitudeDB_MatchesResponse(t *testing.T) {
	f := New([]float64{0.25, 0.5, 0.25})
	sr := 48000.0
	for _, freq := range []float64{100, 1000, 10000} {
		want := 20 * math.Log10(cmplx.Abs(f.Response(freq, sr)))
		if got := f.MagnitudeDB(freq, sr); !almostEqual(got, want, 1e-10) {
			t.Errorf("freq=%v: MagnitudeDB=%.15f, ref=%.15f", freq, got, want)
		}
	}
}
