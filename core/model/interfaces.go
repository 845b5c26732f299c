// Package model provides the interfaces implemented by nbayes estimators.
package model

import (
	"cmp"

	"gonum.org/v1/gonum/mat"
)

// Fitter is the interface for models that learn from labeled data.
// The label type is generic over any totally-ordered comparable type,
// so both numeric and string class labels are supported.
type Fitter[T cmp.Ordered] interface {
	// Fit trains the model on the feature matrix X and labels y.
	Fit(X mat.Matrix, y []T) error
}

// Predictor is the interface for models that predict labels.
type Predictor[T cmp.Ordered] interface {
	// Predict returns one label per row of X, in row order.
	Predict(X mat.Matrix) ([]T, error)
}

// Scorer is the interface for models that can compute an evaluation score.
type Scorer[T cmp.Ordered] interface {
	// Score returns the mean accuracy on the given test data and labels.
	Score(X mat.Matrix, y []T) (float64, error)
}

// Classifier combines the interfaces of classification models.
type Classifier[T cmp.Ordered] interface {
	Fitter[T]
	Predictor[T]
	Scorer[T]

	// PredictProba returns probability estimates for each class,
	// shaped [nSamples x nClasses] in class catalog order.
	PredictProba(X mat.Matrix) (mat.Matrix, error)

	// Classes returns the unique classes seen during fitting,
	// in ascending order.
	Classes() []T
}

// ParameterGetter is the interface for models that expose their hyperparameters.
type ParameterGetter interface {
	// GetParams returns the model's hyperparameters.
	GetParams() map[string]interface{}
}

// ParameterSetter is the interface for models that allow hyperparameter modification.
type ParameterSetter interface {
	// SetParams sets the model's hyperparameters.
	SetParams(params map[string]interface{}) error
}

// Persistable is the interface for models that can be saved and loaded.
type Persistable interface {
	// Save saves the model parameters to a file.
	Save(path string) error

	// Load loads the model parameters from a file.
	Load(path string) error
}
