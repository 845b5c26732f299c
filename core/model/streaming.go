package model

import (
	"cmp"
	"context"
)

// Prediction is one element of a streaming prediction result.
// Err is set when the corresponding input row could not be classified
// (e.g. wrong feature count); Label is only meaningful when Err is nil.
type Prediction[T cmp.Ordered] struct {
	Label T
	Err   error
}

// StreamingPredictor provides channel-based streaming prediction.
// Consumption of the output channel drives consumption of the input
// channel one row at a time; no input is buffered ahead of demand.
type StreamingPredictor[T cmp.Ordered] interface {
	// PredictStream performs lazy predictions on an input row stream.
	// The output channel is closed when the input channel is closed or
	// the context is canceled. A stream is not restartable: draining
	// the source consumes it.
	PredictStream(ctx context.Context, rows <-chan []float64) <-chan Prediction[T]
}
