package regression

import (
	"errors"
	"fmt"

	"github.com/drakos74/linear-regression/internal/model"
)

const (
	// DefaultSteps is the number of gradient descent steps of a training run
	DefaultSteps = 1000
	// DefaultLearningRate is the learning rate of the gradient descent steps
	DefaultLearningRate = 0.01
	// DefaultLogEvery defines how often the trainer reports progress
	DefaultLogEvery = 100
	// DefaultHistory is the size of the loss window used for the progress reports
	DefaultHistory = 10
)

// ErrInvalidConfig is returned for configs that cannot be used for training.
var ErrInvalidConfig = errors.New("invalid config")

// Config defines the training run.
// Steps defines the fixed number of gradient descent steps, there is no convergence check
// LearningRate scales the gradient on every step
// Slope and Intercept are the initial parameter values
// X and Y are the inputs and targets of the dataset
// LogEvery defines the interval in steps for progress logs and checkpoints
// History defines how many of the latest losses are averaged in the progress logs
type Config struct {
	Steps        int       `json:"steps"`
	LearningRate float64   `json:"learning_rate"`
	Slope        float64   `json:"slope"`
	Intercept    float64   `json:"intercept"`
	X            []float64 `json:"x"`
	Y            []float64 `json:"y"`
	LogEvery     int       `json:"log_every"`
	History      int       `json:"history"`
}

// DefaultConfig returns the config of the y = 2x regression.
func DefaultConfig() Config {
	return Config{
		Steps:        DefaultSteps,
		LearningRate: DefaultLearningRate,
		Slope:        model.DefaultSlope,
		Intercept:    model.DefaultIntercept,
		X:            model.DefaultX(),
		Y:            model.DefaultY(),
		LogEvery:     DefaultLogEvery,
		History:      DefaultHistory,
	}
}

// Validate checks that the config can be used for training.
// Zero values for the reporting intervals fall back to their defaults.
func (c *Config) Validate() error {
	if c.Steps <= 0 {
		return fmt.Errorf("steps must be > 0 (got %d): %w", c.Steps, ErrInvalidConfig)
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("learning rate must be > 0 (got %v): %w", c.LearningRate, ErrInvalidConfig)
	}
	if err := c.Dataset().Validate(); err != nil {
		return fmt.Errorf("%s: %w", err.Error(), ErrInvalidConfig)
	}
	if c.LogEvery <= 0 {
		c.LogEvery = DefaultLogEvery
	}
	if c.History <= 0 {
		c.History = DefaultHistory
	}
	return nil
}

// Dataset returns the dataset of the config.
func (c Config) Dataset() model.Dataset {
	return model.NewDataset(c.X, c.Y)
}

// Params returns freshly initialised parameters.
func (c Config) Params() model.Params {
	return model.NewParams(c.Slope, c.Intercept)
}
