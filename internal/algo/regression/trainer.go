package regression

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/drakos74/linear-regression/internal/buffer"
	lrmath "github.com/drakos74/linear-regression/internal/math"
	"github.com/drakos74/linear-regression/internal/model"
)

// ErrDiverged is returned when the parameters or the loss stop being finite numbers.
var ErrDiverged = errors.New("training diverged")

// Observer receives the loss and the updated parameters after every step.
type Observer interface {
	Observe(loss float64, params model.Params)
}

type voidObserver struct {
}

func (v voidObserver) Observe(loss float64, params model.Params) {
}

// Trainer runs a fixed number of optimizer steps on a linear model.
type Trainer struct {
	config    Config
	optimizer Optimizer
	observer  Observer
}

// NewTrainer creates a new trainer with plain gradient descent at the configured learning rate.
func NewTrainer(cfg Config) *Trainer {
	return &Trainer{
		config:    cfg,
		optimizer: NewGradientDescent(cfg.LearningRate),
		observer:  voidObserver{},
	}
}

// WithOptimizer replaces the optimizer of the trainer.
func (t *Trainer) WithOptimizer(optimizer Optimizer) *Trainer {
	t.optimizer = optimizer
	return t
}

// WithObserver adds an observer for the training steps.
func (t *Trainer) WithObserver(observer Observer) *Trainer {
	t.observer = observer
	return t
}

// Train initialises the parameters and runs all the configured steps on the dataset.
func (t *Trainer) Train() (Result, error) {
	cfg := t.config
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	ds := cfg.Dataset()
	params := cfg.Params()
	linear := NewLinear(params)
	window := buffer.NewRing(cfg.History)

	result := Result{
		Steps:       cfg.Steps,
		Rate:        cfg.LearningRate,
		Initial:     params.Values(),
		Losses:      make([]float64, 0, cfg.Steps),
		Checkpoints: make([]Checkpoint, 0, cfg.Steps/cfg.LogEvery+1),
	}

	for step := 0; step < cfg.Steps; step++ {
		loss := t.optimizer.Step(linear, ds)
		if !lrmath.Finite(loss, params.Slope.Value, params.Intercept.Value) {
			return result, fmt.Errorf("step %d: loss %v params %v: %w", step, loss, params, ErrDiverged)
		}
		result.Losses = append(result.Losses, loss)
		window.Push(loss)
		t.observer.Observe(loss, params)

		if (step+1)%cfg.LogEvery == 0 {
			result.Checkpoints = append(result.Checkpoints, newCheckpoint(step+1, loss, params))
			log.Debug().
				Int("step", step+1).
				Float64("loss", loss).
				Float64("avg-loss", window.Average()).
				Float64(model.SlopeName, params.Slope.Value).
				Float64(model.InterceptName, params.Intercept.Value).
				Msg("training")
		}
	}

	result.Params = params.Values()
	result.Loss = linear.Loss(ds)

	if line, err := lrmath.LinearRegression(ds.X, ds.Y); err == nil {
		result.Reference = &line
		result.Gap = lrmath.Distance(result.Params, []float64{line.Slope, line.Intercept})
	} else {
		log.Warn().
			Err(err).
			Floats64("x", ds.X).
			Floats64("y", ds.Y).
			Msg("could not compute reference line")
	}

	log.Info().
		Int("steps", cfg.Steps).
		Float64("rate", cfg.LearningRate).
		Float64("loss", result.Loss).
		Float64("gap", result.Gap).
		Str("params", params.String()).
		Msg("training complete")

	return result, nil
}
