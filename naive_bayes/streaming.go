package naive_bayes

import (
	"context"

	"github.com/YuminosukeSato/nbayes/core/model"
)

// PredictStream performs lazy, pull-based predictions on a row stream.
//
// One input row is consumed per output element; the unbuffered output
// channel means nothing is read ahead of demand. The output channel is
// closed when the input channel is closed or the context is canceled. A
// row with the wrong feature count (or an unfitted model) surfaces as an
// element with Err set; the stream keeps going.
func (nb *GaussianNB[T]) PredictStream(ctx context.Context, rows <-chan []float64) <-chan model.Prediction[T] {
	out := make(chan model.Prediction[T])

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case row, ok := <-rows:
				if !ok {
					return
				}
				label, err := nb.PredictRow(row)
				select {
				case out <- model.Prediction[T]{Label: label, Err: err}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
