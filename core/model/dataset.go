package model

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/modelgrid/pkg/errors"
)

// Dataset is the thin data handle passed between the grid and its
// collaborators. X holds one row per sample and one column per feature;
// Y holds the target, one row per sample. FeatureNames, when present,
// lets recipes address columns by name.
type Dataset struct {
	X            mat.Matrix
	Y            mat.Matrix
	FeatureNames []string
}

// NewDataset validates row agreement between X and Y and, when names are
// given, their agreement with X's column count.
func NewDataset(X, Y mat.Matrix, featureNames []string) (Dataset, error) {
	if X == nil {
		return Dataset{}, errors.WithStack(errors.ErrEmptyData)
	}
	rows, cols := X.Dims()
	if rows == 0 || cols == 0 {
		return Dataset{}, errors.WithStack(errors.ErrEmptyData)
	}
	if Y != nil {
		yRows, _ := Y.Dims()
		if yRows != rows {
			return Dataset{}, errors.NewDimensionError("NewDataset", rows, yRows, 0)
		}
	}
	if len(featureNames) > 0 && len(featureNames) != cols {
		return Dataset{}, errors.NewDimensionError("NewDataset", cols, len(featureNames), 1)
	}
	return Dataset{X: X, Y: Y, FeatureNames: featureNames}, nil
}

// Dims returns the sample and feature counts.
func (d Dataset) Dims() (samples, features int) {
	if d.X == nil {
		return 0, 0
	}
	return d.X.Dims()
}

// ColumnIndex returns the index of the named feature, or -1 when the dataset
// carries no names or the name is unknown.
func (d Dataset) ColumnIndex(name string) int {
	for i, n := range d.FeatureNames {
		if n == name {
			return i
		}
	}
	return -1
}
