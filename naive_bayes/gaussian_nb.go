// Package naive_bayes implements Naive Bayes classifiers.
//
// GaussianNB assumes each feature follows a per-class Normal distribution
// and treats features as conditionally independent given the class. It is
// compatible with scikit-learn's GaussianNB parameterization: per-class,
// per-feature means and population variances (divisor = class sample count,
// no Bessel correction).
package naive_bayes

import (
	"cmp"
	"math"
	"slices"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/nbayes/core/model"
	"github.com/YuminosukeSato/nbayes/core/parallel"
	"github.com/YuminosukeSato/nbayes/metrics"
	"github.com/YuminosukeSato/nbayes/pkg/errors"
	"github.com/YuminosukeSato/nbayes/pkg/log"
)

// zeroVarianceTol is the threshold below which a fitted variance is flagged
// as a data-quality signal. Flagged variances are still used as-is.
const zeroVarianceTol = 1e-9

// predictParallelThreshold is the batch size above which Predict evaluates
// rows on multiple goroutines. Rows are independent given the fitted
// parameters.
const predictParallelThreshold = 512

// GaussianNB is a Gaussian Naive Bayes classifier.
//
// The label type T may be any totally-ordered type (ints, floats, strings).
// The class catalog is the ascending-sorted set of distinct labels seen
// during fitting; it fixes the row order of the mean and variance matrices
// and is stable across fit, predict and snapshot round-trips.
//
// A GaussianNB instance is safe for concurrent prediction, but a Fit or
// Import racing with an in-flight Predict must be serialized by the caller.
type GaussianNB[T cmp.Ordered] struct {
	state *model.StateManager

	// varSmoothing is added to every fitted variance. The default of 0
	// leaves fitted variances untouched; set it to a small epsilon to
	// avoid degenerate densities on single-sample classes.
	varSmoothing float64

	classes   []T
	mean      *mat.Dense // [nClasses x nFeatures]
	variance  *mat.Dense // [nClasses x nFeatures]
	nFeatures int
}

// GaussianNBOption is a functional option for GaussianNB.
type GaussianNBOption[T cmp.Ordered] func(*GaussianNB[T])

// WithVarSmoothing sets the value added to all fitted variances.
func WithVarSmoothing[T cmp.Ordered](eps float64) GaussianNBOption[T] {
	return func(nb *GaussianNB[T]) {
		nb.varSmoothing = eps
	}
}

// NewGaussianNB creates a new Gaussian Naive Bayes classifier.
func NewGaussianNB[T cmp.Ordered](opts ...GaussianNBOption[T]) *GaussianNB[T] {
	nb := &GaussianNB[T]{
		state:        model.NewStateManager(),
		varSmoothing: 0,
	}

	for _, opt := range opts {
		opt(nb)
	}

	return nb
}

// Interface conformance checks.
var (
	_ model.Classifier[int]         = (*GaussianNB[int])(nil)
	_ model.Classifier[string]      = (*GaussianNB[string])(nil)
	_ model.StreamingPredictor[int] = (*GaussianNB[int])(nil)
	_ model.ParameterGetter         = (*GaussianNB[int])(nil)
	_ model.ParameterSetter         = (*GaussianNB[int])(nil)
	_ model.Persistable             = (*GaussianNB[float64])(nil)
)

// Fit estimates per-class, per-feature Gaussian parameters from labeled
// training data. X is the [nSamples x nFeatures] feature matrix and y holds
// one label per row. A successful fit replaces any previous parameters
// wholesale.
func (nb *GaussianNB[T]) Fit(X mat.Matrix, y []T) (err error) {
	defer errors.Recover(&err, "GaussianNB.Fit")
	start := time.Now()

	nSamples, nFeatures := X.Dims()
	if nSamples == 0 || nFeatures == 0 || len(y) == 0 {
		return errors.NewModelError("GaussianNB.Fit", "empty data", errors.ErrEmptyData)
	}
	if len(y) != nSamples {
		return errors.NewDimensionError("GaussianNB.Fit", nSamples, len(y), 0)
	}
	if err := errors.CheckMatrix("GaussianNB.Fit", X, nSamples, nFeatures); err != nil {
		return err
	}

	// Class catalog: distinct labels, ascending. The sorted order defines
	// the row index of the parameter matrices.
	seen := make(map[T]struct{}, len(y))
	classes := make([]T, 0, 8)
	for _, label := range y {
		if _, ok := seen[label]; !ok {
			seen[label] = struct{}{}
			classes = append(classes, label)
		}
	}
	slices.Sort(classes)

	index := make(map[T]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}

	nClasses := len(classes)
	counts := make([]float64, nClasses)
	mean := mat.NewDense(nClasses, nFeatures, nil)
	variance := mat.NewDense(nClasses, nFeatures, nil)

	// First pass: per-class feature sums.
	for i := 0; i < nSamples; i++ {
		c := index[y[i]]
		counts[c]++
		for j := 0; j < nFeatures; j++ {
			mean.Set(c, j, mean.At(c, j)+X.At(i, j))
		}
	}
	for c := 0; c < nClasses; c++ {
		for j := 0; j < nFeatures; j++ {
			mean.Set(c, j, mean.At(c, j)/counts[c])
		}
	}

	// Second pass: population variance, divisor = class sample count.
	// A class with a single training row legitimately yields variance 0.
	for i := 0; i < nSamples; i++ {
		c := index[y[i]]
		for j := 0; j < nFeatures; j++ {
			d := X.At(i, j) - mean.At(c, j)
			variance.Set(c, j, variance.At(c, j)+d*d)
		}
	}
	for c := 0; c < nClasses; c++ {
		for j := 0; j < nFeatures; j++ {
			v := variance.At(c, j)/counts[c] + nb.varSmoothing
			variance.Set(c, j, v)
			if v <= zeroVarianceTol {
				errors.Warn(errors.NewZeroVarianceWarning("GaussianNB", c, j, v))
			}
		}
	}

	nb.classes = classes
	nb.mean = mean
	nb.variance = variance
	nb.nFeatures = nFeatures
	nb.state.SetDimensions(nFeatures, nSamples, nClasses)
	nb.state.SetFitted()

	logger := log.GetLoggerWithName("naive_bayes.gaussian")
	logger.Debug("fit completed",
		log.OperationKey, "fit",
		log.SamplesKey, nSamples,
		log.FeaturesKey, nFeatures,
		log.ClassesKey, nClasses,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)

	return nil
}

// Predict returns the most likely class label for each row of X, in row
// order. Ties are broken toward the lowest class index.
func (nb *GaussianNB[T]) Predict(X mat.Matrix) (labels []T, err error) {
	defer errors.Recover(&err, "GaussianNB.Predict")

	if !nb.state.IsFitted() {
		return nil, errors.NewNotFittedError("GaussianNB", "Predict")
	}

	nSamples, nFeatures := X.Dims()
	if nFeatures != nb.nFeatures {
		return nil, errors.NewDimensionError("GaussianNB.Predict", nb.nFeatures, nFeatures, 1)
	}

	labels = make([]T, nSamples)
	parallel.ParallelizeWithThreshold(nSamples, predictParallelThreshold, func(start, end int) {
		row := make([]float64, nFeatures)
		for i := start; i < end; i++ {
			mat.Row(row, i, X)
			labels[i] = nb.classes[nb.argmaxClass(row)]
		}
	})

	return labels, nil
}

// PredictRow classifies a single observation.
func (nb *GaussianNB[T]) PredictRow(row []float64) (label T, err error) {
	if !nb.state.IsFitted() {
		return label, errors.NewNotFittedError("GaussianNB", "PredictRow")
	}
	if len(row) != nb.nFeatures {
		return label, errors.NewDimensionError("GaussianNB.PredictRow", nb.nFeatures, len(row), 1)
	}
	return nb.classes[nb.argmaxClass(row)], nil
}

// argmaxClass returns the index of the class with the highest joint
// likelihood for row. The strict > comparison keeps the lowest class index
// on ties (and when every score collapses to 0).
func (nb *GaussianNB[T]) argmaxClass(row []float64) int {
	best := 0
	bestScore := nb.jointLikelihood(row, 0)
	for c := 1; c < len(nb.classes); c++ {
		if score := nb.jointLikelihood(row, c); score > bestScore {
			best = c
			bestScore = score
		}
	}
	return best
}

// jointLikelihood is the straight product of per-feature Gaussian densities
// for one class (the naive independence assumption). A zero factor
// short-circuits the product: a feature with zero density for this class
// zeroes the class score even if another feature sits exactly on a
// zero-variance mean.
func (nb *GaussianNB[T]) jointLikelihood(row []float64, class int) float64 {
	score := 1.0
	for j, x := range row {
		p := gaussianDensity(x, nb.mean.At(class, j), nb.variance.At(class, j))
		if p == 0 {
			return 0
		}
		score *= p
	}
	return score
}

// gaussianDensity evaluates the Normal(mean, variance) pdf at x.
//
// variance == 0 is a degenerate distribution: the density is defined as
// +Inf when x sits exactly on the mean and 0 otherwise. This keeps the
// zero-variance edge case deterministic instead of dividing by zero.
func gaussianDensity(x, mean, variance float64) float64 {
	if variance == 0 {
		if x == mean {
			return math.Inf(1)
		}
		return 0
	}
	d := x - mean
	return math.Exp(-d*d/(2*variance)) / math.Sqrt(2*math.Pi*variance)
}

// logGaussianDensity is the log-space counterpart of gaussianDensity, with
// the same zero-variance policy (+Inf on the mean, -Inf elsewhere).
func logGaussianDensity(x, mean, variance float64) float64 {
	if variance == 0 {
		if x == mean {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}
	d := x - mean
	return -0.5*math.Log(2*math.Pi*variance) - d*d/(2*variance)
}

// logJointLikelihood sums per-feature log densities for one class. A -Inf
// term short-circuits the sum, mirroring the zero short-circuit of
// jointLikelihood.
func (nb *GaussianNB[T]) logJointLikelihood(row []float64, class int) float64 {
	sum := 0.0
	for j, x := range row {
		lp := logGaussianDensity(x, nb.mean.At(class, j), nb.variance.At(class, j))
		if math.IsInf(lp, -1) {
			return math.Inf(-1)
		}
		sum += lp
	}
	return sum
}

// PredictProba returns posterior probability estimates for each class,
// shaped [nSamples x nClasses] in class catalog order.
//
// Scores are combined in log space for numerical stability. Degenerate
// rows resolve deterministically: classes with an infinite joint score
// share the mass uniformly, and a row where every class underflows to zero
// gets a uniform posterior.
func (nb *GaussianNB[T]) PredictProba(X mat.Matrix) (proba mat.Matrix, err error) {
	defer errors.Recover(&err, "GaussianNB.PredictProba")

	if !nb.state.IsFitted() {
		return nil, errors.NewNotFittedError("GaussianNB", "PredictProba")
	}

	nSamples, nFeatures := X.Dims()
	if nFeatures != nb.nFeatures {
		return nil, errors.NewDimensionError("GaussianNB.PredictProba", nb.nFeatures, nFeatures, 1)
	}

	nClasses := len(nb.classes)
	out := mat.NewDense(nSamples, nClasses, nil)

	row := make([]float64, nFeatures)
	scores := make([]float64, nClasses)
	for i := 0; i < nSamples; i++ {
		mat.Row(row, i, X)

		infCount := 0
		for c := 0; c < nClasses; c++ {
			scores[c] = nb.logJointLikelihood(row, c)
			if math.IsInf(scores[c], 1) {
				infCount++
			}
		}

		switch {
		case infCount > 0:
			for c := 0; c < nClasses; c++ {
				if math.IsInf(scores[c], 1) {
					out.Set(i, c, 1/float64(infCount))
				}
			}
		default:
			lse := errors.LogSumExp(scores)
			if math.IsInf(lse, -1) {
				for c := 0; c < nClasses; c++ {
					out.Set(i, c, 1/float64(nClasses))
				}
				break
			}
			for c := 0; c < nClasses; c++ {
				out.Set(i, c, math.Exp(scores[c]-lse))
			}
		}
	}

	return out, nil
}

// PredictLogProba returns the log of PredictProba.
func (nb *GaussianNB[T]) PredictLogProba(X mat.Matrix) (mat.Matrix, error) {
	proba, err := nb.PredictProba(X)
	if err != nil {
		return nil, err
	}

	nSamples, nClasses := proba.Dims()
	out := mat.NewDense(nSamples, nClasses, nil)
	for i := 0; i < nSamples; i++ {
		for c := 0; c < nClasses; c++ {
			out.Set(i, c, math.Log(proba.At(i, c)))
		}
	}
	return out, nil
}

// Score returns the mean accuracy of Predict(X) against y.
func (nb *GaussianNB[T]) Score(X mat.Matrix, y []T) (float64, error) {
	predictions, err := nb.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.AccuracyScore(y, predictions)
}

// Classes returns the class catalog: the distinct labels seen during
// fitting, in ascending order. The returned slice is live model state and
// must not be modified.
func (nb *GaussianNB[T]) Classes() []T {
	return nb.classes
}

// NClasses returns the number of classes seen during fitting.
func (nb *GaussianNB[T]) NClasses() int {
	return len(nb.classes)
}

// NFeatures returns the feature count the model was fitted with.
func (nb *GaussianNB[T]) NFeatures() int {
	return nb.nFeatures
}

// Params exposes the live fitted parameters for introspection and
// composition with other components. The matrices are the model's own
// state, not copies; use Export for a detached snapshot.
type Params[T cmp.Ordered] struct {
	ClassCategories []T
	Mean            *mat.Dense // [nClasses x nFeatures]
	Variance        *mat.Dense // [nClasses x nFeatures]
}

// Model returns the live (non-snapshot) fitted parameters.
func (nb *GaussianNB[T]) Model() (Params[T], error) {
	if !nb.state.IsFitted() {
		return Params[T]{}, errors.NewNotFittedError("GaussianNB", "Model")
	}
	return Params[T]{
		ClassCategories: nb.classes,
		Mean:            nb.mean,
		Variance:        nb.variance,
	}, nil
}

// IsFitted returns whether the model has been fitted or restored from a
// snapshot.
func (nb *GaussianNB[T]) IsFitted() bool {
	return nb.state.IsFitted()
}

// Reset returns the model to its unfitted state.
func (nb *GaussianNB[T]) Reset() {
	nb.classes = nil
	nb.mean = nil
	nb.variance = nil
	nb.nFeatures = 0
	nb.state.Reset()
}

// GetParams returns the model hyperparameters.
func (nb *GaussianNB[T]) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"var_smoothing": nb.varSmoothing,
	}
}

// SetParams sets the model hyperparameters.
func (nb *GaussianNB[T]) SetParams(params map[string]interface{}) error {
	for key, value := range params {
		switch key {
		case "var_smoothing":
			eps, ok := value.(float64)
			if !ok {
				return errors.NewValidationError("var_smoothing", "must be a float64", value)
			}
			nb.varSmoothing = eps
		default:
			return errors.Newf("unknown parameter: %s", key)
		}
	}
	return nil
}
