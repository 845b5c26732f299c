package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		kind     string
		err      error
		wantMsg  string
		hasStack bool
	}{
		{
			name:     "with original error",
			op:       "Fit",
			kind:     "invalid input",
			err:      fmt.Errorf("test error"),
			wantMsg:  "nbayes: Fit: invalid input: test error",
			hasStack: true,
		},
		{
			name:     "without original error",
			op:       "Predict",
			kind:     "not fitted",
			err:      nil,
			wantMsg:  "nbayes: Predict: not fitted",
			hasStack: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)

			// 基本的なエラーメッセージの確認
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			if tt.hasStack {
				formatted := fmt.Sprintf("%+v", err)
				if !strings.Contains(formatted, "errors_test.go") {
					t.Error("Expected stack trace to contain test file name")
				}
			}

			// ModelError型にキャスト可能か確認
			var modelErr *ModelError
			if !As(err, &modelErr) {
				t.Error("Error should be castable to *ModelError")
			}
		})
	}
}

func TestModelErrorUnwrap(t *testing.T) {
	err := NewModelError("Fit", "empty data", ErrEmptyData)

	if !Is(err, ErrEmptyData) {
		t.Error("ModelError should unwrap to its sentinel cause")
	}
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("Predict", 2, 3, 1)

	// 基本的なエラーメッセージの確認
	want := "nbayes: Predict: dimension mismatch on axis 1 (features). Expected 2, got 3"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// DimensionError型にキャスト可能か確認
	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Error("Error should be castable to *DimensionError")
	}
	if dimErr.Expected != 2 || dimErr.Got != 3 || dimErr.Axis != 1 {
		t.Errorf("DimensionError fields = %+v", dimErr)
	}
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("GaussianNB", "Predict")

	// 基本的なエラーメッセージの確認
	want := "nbayes: GaussianNB: this model is not fitted yet. Call Fit() before using Predict()"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// NotFittedError型にキャスト可能か確認
	var notFittedErr *NotFittedError
	if !As(err, &notFittedErr) {
		t.Error("Error should be castable to *NotFittedError")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("mean", "ragged matrix", 3)

	want := "nbayes: validation failed for parameter 'mean': ragged matrix (got: 3)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}

func TestZeroVarianceWarning(t *testing.T) {
	w := NewZeroVarianceWarning("GaussianNB", 1, 4, 0)

	msg := w.Error()
	if !strings.Contains(msg, "class index 1") || !strings.Contains(msg, "feature 4") {
		t.Errorf("warning message should name class and feature, got %q", msg)
	}
}

func TestWarnHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) {
		captured = w
	})
	defer SetWarningHandler(nil)

	warning := NewZeroVarianceWarning("GaussianNB", 0, 0, 0)
	Warn(warning)

	if captured != warning {
		t.Errorf("handler captured %v, want %v", captured, warning)
	}
}

func TestWarnZerologTakesPriority(t *testing.T) {
	handlerCalls := 0
	SetWarningHandler(func(w error) { handlerCalls++ })
	defer SetWarningHandler(nil)

	zerologCalls := 0
	SetZerologWarnFunc(func(w error) { zerologCalls++ })
	defer SetZerologWarnFunc(nil)

	Warn(NewZeroVarianceWarning("GaussianNB", 0, 0, 0))

	if zerologCalls != 1 || handlerCalls != 0 {
		t.Errorf("zerolog func calls = %d, handler calls = %d; want 1 and 0", zerologCalls, handlerCalls)
	}
}
