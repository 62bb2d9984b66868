package model

import "fmt"

const (
	// SlopeName is the name of the slope parameter W
	SlopeName = "W"
	// InterceptName is the name of the intercept parameter b
	InterceptName = "b"

	// DefaultSlope is the initial value of the slope
	DefaultSlope = 0.4
	// DefaultIntercept is the initial value of the intercept
	DefaultIntercept = -0.4
)

// Parameter is a named scalar adjusted during training.
type Parameter struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// NewParameter creates a new parameter with the given initial value.
func NewParameter(name string, value float64) *Parameter {
	return &Parameter{
		Name:  name,
		Value: value,
	}
}

// Sub applies an update of the form value = value - delta.
func (p *Parameter) Sub(delta float64) {
	p.Value -= delta
}

func (p Parameter) String() string {
	return fmt.Sprintf("%s=%v", p.Name, p.Value)
}

// Params holds the two trainable parameters of the linear model.
type Params struct {
	Slope     *Parameter `json:"slope"`
	Intercept *Parameter `json:"intercept"`
}

// NewParams creates the slope and intercept parameters with the given initial values.
func NewParams(slope, intercept float64) Params {
	return Params{
		Slope:     NewParameter(SlopeName, slope),
		Intercept: NewParameter(InterceptName, intercept),
	}
}

// DefaultParams creates the parameters with their default initial values.
func DefaultParams() Params {
	return NewParams(DefaultSlope, DefaultIntercept)
}

// Values returns the current parameter values as [W, b].
func (p Params) Values() []float64 {
	return []float64{p.Slope.Value, p.Intercept.Value}
}

// Copy returns a snapshot of the parameters that is not affected by further updates.
func (p Params) Copy() Params {
	return NewParams(p.Slope.Value, p.Intercept.Value)
}

func (p Params) String() string {
	return fmt.Sprintf("[%v %v]", p.Slope.Value, p.Intercept.Value)
}
