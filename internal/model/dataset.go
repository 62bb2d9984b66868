package model

import (
	"errors"
	"fmt"

	"github.com/drakos74/go-ex-machina/xmath"
)

// ErrInvalidDataset is returned for datasets that cannot be trained on.
var ErrInvalidDataset = errors.New("invalid dataset")

// Dataset holds the input values and the targets for training.
// X and Y are fed into the model at every training step and never modified.
type Dataset struct {
	X xmath.Vector `json:"x"`
	Y xmath.Vector `json:"y"`
}

// NewDataset creates a new dataset from the given inputs and targets.
func NewDataset(x, y []float64) Dataset {
	return Dataset{
		X: xmath.Vec(len(x)).With(x...),
		Y: xmath.Vec(len(y)).With(y...),
	}
}

// DefaultDataset is the dataset for y = 2x on four points.
func DefaultDataset() Dataset {
	return NewDataset(DefaultX(), DefaultY())
}

// DefaultX returns the default inputs.
func DefaultX() []float64 {
	return []float64{1, 2, 3, 4}
}

// DefaultY returns the default targets.
func DefaultY() []float64 {
	return []float64{2, 4, 6, 8}
}

// Size returns the number of points in the dataset.
func (ds Dataset) Size() int {
	return len(ds.X)
}

// Validate checks that the dataset has matching, non-empty inputs and targets.
func (ds Dataset) Validate() error {
	if len(ds.X) == 0 {
		return fmt.Errorf("no points: %w", ErrInvalidDataset)
	}
	if len(ds.X) != len(ds.Y) {
		return fmt.Errorf("inputs and targets differ in size %d vs %d: %w", len(ds.X), len(ds.Y), ErrInvalidDataset)
	}
	return nil
}
