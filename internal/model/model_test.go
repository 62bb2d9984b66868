package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParams(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, []float64{0.4, -0.4}, p.Values())
	assert.Equal(t, SlopeName, p.Slope.Name)
	assert.Equal(t, InterceptName, p.Intercept.Name)

	snapshot := p.Copy()

	p.Slope.Sub(0.1)
	p.Intercept.Sub(-0.4)

	assert.InDelta(t, 0.3, p.Slope.Value, 1e-12)
	assert.Equal(t, 0.0, p.Intercept.Value)
	// the snapshot keeps the initial values
	assert.Equal(t, []float64{0.4, -0.4}, snapshot.Values())
	assert.Equal(t, "[0.4 -0.4]", snapshot.String())
}

func TestDataset_Validate(t *testing.T) {

	type test struct {
		ds  Dataset
		err bool
	}

	tests := map[string]test{
		"default": {
			ds: DefaultDataset(),
		},
		"empty": {
			ds:  NewDataset(nil, nil),
			err: true,
		},
		"mismatch": {
			ds:  NewDataset([]float64{1, 2}, []float64{1}),
			err: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.ds.Validate()
			if tt.err {
				assert.True(t, errors.Is(err, ErrInvalidDataset))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultDataset(t *testing.T) {
	ds := DefaultDataset()
	assert.Equal(t, 4, ds.Size())
	assert.Equal(t, []float64{1, 2, 3, 4}, []float64(ds.X))
	assert.Equal(t, []float64{2, 4, 6, 8}, []float64(ds.Y))

	// the defaults are fresh copies
	x := DefaultX()
	x[0] = 100
	assert.Equal(t, 1.0, DefaultX()[0])
}
