package regression

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drakos74/linear-regression/internal/model"
)

func TestLinear_InitialLoss(t *testing.T) {
	linear := NewLinear(model.DefaultParams())
	ds := model.DefaultDataset()

	predictions := linear.Predict(ds.X)
	assert.InDeltaSlice(t, []float64{0, 0.4, 0.8, 1.2}, []float64(predictions), 1e-12)

	errs := linear.Errors(ds)
	assert.InDeltaSlice(t, []float64{-2, -3.6, -5.2, -6.8}, []float64(errs), 1e-12)

	assert.InDelta(t, 90.24, linear.Loss(ds), 1e-9)
}

func TestLinear_MismatchedDataset(t *testing.T) {
	linear := NewLinear(model.DefaultParams())

	for name, ds := range map[string]model.Dataset{
		"fewer-targets": model.NewDataset([]float64{1, 2, 3}, []float64{2, 4}),
		"more-targets":  model.NewDataset([]float64{1, 2}, []float64{2, 4, 6}),
	} {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, ds.Validate())
			assert.Panics(t, func() {
				linear.Errors(ds)
			})
			assert.Panics(t, func() {
				NewGradientDescent(0.01).Step(linear, ds)
			})
		})
	}
}

func TestLinear_Gradient(t *testing.T) {

	type test struct {
		params model.Params
		dw, db float64
	}

	tests := map[string]test{
		"initial": {
			params: model.DefaultParams(),
			// 2 * (-2*1 - 3.6*2 - 5.2*3 - 6.8*4)
			dw: -104,
			// 2 * (-2 - 3.6 - 5.2 - 6.8)
			db: -35.2,
		},
		"optimum": {
			params: model.NewParams(2, 0),
			dw:     0,
			db:     0,
		},
		"offset": {
			params: model.NewParams(2, 1),
			dw:     20,
			db:     8,
		},
	}

	ds := model.DefaultDataset()
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dw, db := NewLinear(tt.params).Gradient(ds)
			assert.InDelta(t, tt.dw, dw, 1e-9)
			assert.InDelta(t, tt.db, db, 1e-9)
		})
	}
}

func TestGradientDescent_Step(t *testing.T) {
	params := model.DefaultParams()
	linear := NewLinear(params)
	ds := model.DefaultDataset()

	loss := NewGradientDescent(0.01).Step(linear, ds)

	// the loss is reported for the parameters before the update
	assert.InDelta(t, 90.24, loss, 1e-9)
	// 0.4 - 0.01 * -104
	assert.InDelta(t, 1.44, params.Slope.Value, 1e-9)
	// -0.4 - 0.01 * -35.2
	assert.InDelta(t, -0.048, params.Intercept.Value, 1e-9)
	assert.Less(t, linear.Loss(ds), loss)
}

func TestGradientDescent_WithRates(t *testing.T) {
	params := model.DefaultParams()
	linear := NewLinear(params)

	NewGradientDescent(0.01).WithRates(0.01, 0).Step(linear, model.DefaultDataset())

	assert.InDelta(t, 1.44, params.Slope.Value, 1e-9)
	// a zero rate freezes the intercept
	assert.Equal(t, -0.4, params.Intercept.Value)
}
