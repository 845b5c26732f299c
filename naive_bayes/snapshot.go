package naive_bayes

import (
	"cmp"
	"encoding/json"
	"io"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/nbayes/pkg/errors"
)

// SnapshotSchemaVersion is the current snapshot layout version. Snapshots
// written without a version field (version 0) are accepted as the
// pre-versioned layout.
const SnapshotSchemaVersion = 1

// Snapshot is a plain, framework-free serialization of fitted GaussianNB
// parameters: the class catalog plus the mean and variance matrices in
// dense row-major form. It is the sole persisted-state layout.
type Snapshot[T cmp.Ordered] struct {
	SchemaVersion   int         `json:"schema_version"`
	ClassCategories []T         `json:"class_categories"`
	Mean            [][]float64 `json:"mean"`
	Variance        [][]float64 `json:"variance"`
}

// Export returns a deep copy of the current fitted parameters.
func (nb *GaussianNB[T]) Export() (*Snapshot[T], error) {
	if !nb.state.IsFitted() {
		return nil, errors.NewNotFittedError("GaussianNB", "Export")
	}

	classes := make([]T, len(nb.classes))
	copy(classes, nb.classes)

	return &Snapshot[T]{
		SchemaVersion:   SnapshotSchemaVersion,
		ClassCategories: classes,
		Mean:            denseToRows(nb.mean),
		Variance:        denseToRows(nb.variance),
	}, nil
}

// Import replaces the classifier's fitted state wholesale with the snapshot
// contents, without recomputation. Validation covers the snapshot schema
// version and shape consistency between the class catalog and the two
// matrices; the numeric content is trusted as-is.
func (nb *GaussianNB[T]) Import(snap *Snapshot[T]) error {
	if snap == nil {
		return errors.NewValueError("GaussianNB.Import", "nil snapshot")
	}
	if snap.SchemaVersion > SnapshotSchemaVersion {
		return errors.Wrapf(errors.ErrSnapshotVersion, "GaussianNB.Import: got version %d, support up to %d",
			snap.SchemaVersion, SnapshotSchemaVersion)
	}

	nClasses := len(snap.ClassCategories)
	if nClasses == 0 {
		return errors.NewValidationError("class_categories", "must not be empty", nClasses)
	}
	if len(snap.Mean) != nClasses {
		return errors.NewValidationError("mean", "row count must match class count", len(snap.Mean))
	}
	if len(snap.Variance) != nClasses {
		return errors.NewValidationError("variance", "row count must match class count", len(snap.Variance))
	}

	nFeatures := len(snap.Mean[0])
	if nFeatures == 0 {
		return errors.NewValidationError("mean", "must have at least one feature column", nFeatures)
	}
	for i := 0; i < nClasses; i++ {
		if len(snap.Mean[i]) != nFeatures {
			return errors.NewValidationError("mean", "ragged matrix", len(snap.Mean[i]))
		}
		if len(snap.Variance[i]) != nFeatures {
			return errors.NewValidationError("variance", "shape must match mean", len(snap.Variance[i]))
		}
	}

	classes := make([]T, nClasses)
	copy(classes, snap.ClassCategories)

	nb.classes = classes
	nb.mean = rowsToDense(snap.Mean)
	nb.variance = rowsToDense(snap.Variance)
	nb.nFeatures = nFeatures
	nb.state.SetDimensions(nFeatures, 0, nClasses)
	nb.state.SetFitted()

	return nil
}

// WriteJSON writes the parameter snapshot to w as indented JSON.
func (nb *GaussianNB[T]) WriteJSON(w io.Writer) error {
	snap, err := nb.Export()
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(snap); err != nil {
		return errors.Wrap(err, "failed to encode snapshot")
	}

	return nil
}

// ReadJSON restores the classifier from a JSON snapshot.
func (nb *GaussianNB[T]) ReadJSON(r io.Reader) error {
	var snap Snapshot[T]
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return errors.Wrap(err, "failed to decode snapshot")
	}
	return nb.Import(&snap)
}

// Save writes the parameter snapshot to a JSON file.
func (nb *GaussianNB[T]) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}
	defer file.Close()

	return nb.WriteJSON(file)
}

// Load restores the classifier from a JSON snapshot file.
func (nb *GaussianNB[T]) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	return nb.ReadJSON(file)
}

func denseToRows(m *mat.Dense) [][]float64 {
	r, c := m.Dims()
	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = make([]float64, c)
		mat.Row(rows[i], i, m)
	}
	return rows
}

func rowsToDense(rows [][]float64) *mat.Dense {
	r, c := len(rows), len(rows[0])
	m := mat.NewDense(r, c, nil)
	for i, row := range rows {
		m.SetRow(i, row)
	}
	return m
}
