package regression

import (
	"github.com/drakos74/go-ex-machina/xmath"

	"github.com/drakos74/linear-regression/internal/model"
)

// Linear is the linear model W * x + b.
type Linear struct {
	Params model.Params
}

// NewLinear creates a new linear model on top of the given parameters.
// The parameters are shared, updates on the model are visible to the caller.
func NewLinear(params model.Params) *Linear {
	return &Linear{Params: params}
}

// Predict computes W * x + b for each of the given inputs.
func (l *Linear) Predict(x xmath.Vector) xmath.Vector {
	return x.Mult(l.Params.Slope.Value).Op(xmath.Add(l.Params.Intercept.Value))
}

// Errors computes the difference of the predictions from the targets of the dataset.
// The dataset is expected to pass Validate, inputs and targets of different size panic.
func (l *Linear) Errors(ds model.Dataset) xmath.Vector {
	xmath.MustHaveSameSize(ds.X, ds.Y)
	return l.Predict(ds.X).Diff(ds.Y)
}

// Loss computes the sum of squared errors over the dataset.
func (l *Linear) Loss(ds model.Dataset) float64 {
	return loss(l.Errors(ds))
}

// Gradient computes the derivatives of the loss for the slope and the intercept.
func (l *Linear) Gradient(ds model.Dataset) (dw, db float64) {
	return gradient(l.Errors(ds), ds.X)
}

func loss(errs xmath.Vector) float64 {
	return errs.X(errs).Sum()
}

// d(loss)/dW = 2 * sum(e * x)
// d(loss)/db = 2 * sum(e)
func gradient(errs, x xmath.Vector) (dw, db float64) {
	return 2 * errs.Dot(x), 2 * errs.Sum()
}
