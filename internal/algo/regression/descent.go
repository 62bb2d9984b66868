package regression

import (
	"github.com/drakos74/go-ex-machina/xmachina/ml"

	"github.com/drakos74/linear-regression/internal/model"
)

// Optimizer applies a single training step on the model.
type Optimizer interface {
	// Step updates the model parameters and returns the loss before the update.
	Step(m *Linear, ds model.Dataset) float64
}

// GradientDescent is plain batch gradient descent.
// WRate is applied on the slope gradient, BRate on the intercept one.
type GradientDescent struct {
	rate *ml.Learning
}

// NewGradientDescent creates a gradient descent optimizer with the same rate for both parameters.
func NewGradientDescent(rate float64) *GradientDescent {
	return &GradientDescent{rate: ml.Rate(rate)}
}

// WithRates sets different learning rates for the slope and the intercept.
func (g *GradientDescent) WithRates(wRate, bRate float64) *GradientDescent {
	g.rate = ml.Learn(wRate, bRate)
	return g
}

// Step applies new = old - rate * d(loss)/d(param) on both parameters.
// Both gradients are computed on the parameter values before the update.
func (g *GradientDescent) Step(m *Linear, ds model.Dataset) float64 {
	errs := m.Errors(ds)
	l := loss(errs)
	dw, db := gradient(errs, ds.X)
	m.Params.Slope.Sub(g.rate.WRate() * dw)
	m.Params.Intercept.Sub(g.rate.BRate() * db)
	return l
}
