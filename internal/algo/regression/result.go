package regression

import (
	lrmath "github.com/drakos74/linear-regression/internal/math"
	"github.com/drakos74/linear-regression/internal/model"
)

// Checkpoint is a snapshot of the training progress.
type Checkpoint struct {
	Step      int     `json:"step"`
	Loss      float64 `json:"loss"`
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

func newCheckpoint(step int, loss float64, params model.Params) Checkpoint {
	return Checkpoint{
		Step:      step,
		Loss:      loss,
		Slope:     params.Slope.Value,
		Intercept: params.Intercept.Value,
	}
}

// Result is the outcome of a training run.
// Losses[i] is the loss before the i-th update, Loss the loss of the final parameters.
// Reference is the closed-form least squares line for the dataset, if one exists,
// and Gap the distance of the learned parameters from it.
type Result struct {
	Steps       int          `json:"steps"`
	Rate        float64      `json:"rate"`
	Initial     []float64    `json:"initial"`
	Params      []float64    `json:"params"`
	Loss        float64      `json:"loss"`
	Losses      []float64    `json:"losses"`
	Checkpoints []Checkpoint `json:"checkpoints"`
	Reference   *lrmath.Line `json:"reference,omitempty"`
	Gap         float64      `json:"gap"`
}

// Slope returns the learned slope.
func (r Result) Slope() float64 {
	return r.Params[0]
}

// Intercept returns the learned intercept.
func (r Result) Intercept() float64 {
	return r.Params[1]
}
