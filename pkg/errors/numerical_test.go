package errors

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestCheckMatrix(t *testing.T) {
	ok := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	if err := CheckMatrix("test", ok, 2, 2); err != nil {
		t.Errorf("finite matrix should pass, got %v", err)
	}

	bad := mat.NewDense(2, 2, []float64{1, 2, math.NaN(), 4})
	err := CheckMatrix("test", bad, 2, 2)
	if err == nil {
		t.Fatal("NaN matrix should fail")
	}
	var valErr *ValueError
	if !As(err, &valErr) {
		t.Errorf("error should be *ValueError, got %T", err)
	}

	inf := mat.NewDense(1, 1, []float64{math.Inf(1)})
	if err := CheckMatrix("test", inf, 1, 1); err == nil {
		t.Error("Inf matrix should fail")
	}
}

func TestCheckValues(t *testing.T) {
	if err := CheckValues("test", []float64{1, 2, 3}); err != nil {
		t.Errorf("finite values should pass, got %v", err)
	}
	if err := CheckValues("test", []float64{1, math.Inf(-1)}); err == nil {
		t.Error("Inf value should fail")
	}
}

func TestLogSumExp(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, math.Inf(-1)},
		{"single", []float64{2}, 2},
		{"all negative infinity", []float64{math.Inf(-1), math.Inf(-1)}, math.Inf(-1)},
		{"positive infinity dominates", []float64{1, math.Inf(1)}, math.Inf(1)},
		{"two equal", []float64{0, 0}, math.Log(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LogSumExp(tt.values)
			if math.IsInf(tt.want, 0) {
				if got != tt.want {
					t.Errorf("LogSumExp(%v) = %v, want %v", tt.values, got, tt.want)
				}
				return
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("LogSumExp(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}

	// Huge inputs must not overflow.
	got := LogSumExp([]float64{1000, 1000})
	want := 1000 + math.Log(2)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("LogSumExp large values = %v, want %v", got, want)
	}
}

func TestStabilize(t *testing.T) {
	if v := StabilizeLog(0); math.IsInf(v, -1) {
		t.Error("StabilizeLog(0) should be finite")
	}
	if v := StabilizeExp(1e6); math.IsInf(v, 1) {
		t.Error("StabilizeExp should not overflow to Inf")
	}
	if v := StabilizeExp(-1e6); v != 0 {
		t.Errorf("StabilizeExp(-1e6) = %v, want 0", v)
	}
}
