package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drakos74/linear-regression/internal/algo/regression"
)

func TestMustLoad(t *testing.T) {
	cfg := regression.Config{}
	b := MustLoad("linreg", &cfg)
	assert.NotEmpty(t, b)

	// the file and the built-in defaults describe the same run
	assert.Equal(t, regression.DefaultConfig(), cfg)
}

func TestMustLoad_Missing(t *testing.T) {
	assert.Panics(t, func() {
		MustLoad("missing", &regression.Config{})
	})
}

func TestMustLoad_Override(t *testing.T) {
	cfg := regression.Config{}
	MustLoad("linreg", &cfg)

	path := filepath.Join(t.TempDir(), "override.json")
	err := os.WriteFile(path, []byte(`{"x": [0, 1], "y": [1, 3]}`), 0644)
	require.NoError(t, err)

	_, err = Load(path, &cfg)
	require.NoError(t, err)

	// the override replaces the dataset but keeps the embedded defaults for the rest
	assert.Equal(t, []float64{0, 1}, cfg.X)
	assert.Equal(t, []float64{1, 3}, cfg.Y)
	assert.Equal(t, regression.DefaultSteps, cfg.Steps)
	assert.Equal(t, regression.DefaultLearningRate, cfg.LearningRate)
}

func TestLoad_Override(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.json")
	err := os.WriteFile(path, []byte(`{"steps": 10, "learning_rate": 0.02}`), 0644)
	require.NoError(t, err)

	cfg := regression.DefaultConfig()
	_, err = Load(path, &cfg)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Steps)
	assert.Equal(t, 0.02, cfg.LearningRate)
	// fields missing from the file are left untouched
	assert.Equal(t, []float64{1, 2, 3, 4}, cfg.X)
	assert.Equal(t, 0.4, cfg.Slope)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.json")
	err := os.WriteFile(path, []byte(`{"steps": "many"}`), 0644)
	require.NoError(t, err)

	_, err = Load(path, &regression.Config{})
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "none.json"), &regression.Config{})
	assert.Error(t, err)
}
