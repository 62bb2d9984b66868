package math

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrNotEnoughPoints is returned when a line cannot be determined from the given points.
var ErrNotEnoughPoints = errors.New("not enough points")

// Line is the closed-form least squares solution for y = Slope * x + Intercept.
type Line struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	R2        float64 `json:"r2"`
}

// LinearRegression computes the least squares line through the given points.
func LinearRegression(x, y []float64) (Line, error) {
	if len(x) != len(y) {
		return Line{}, fmt.Errorf("x and y differ in size %d vs %d: %w", len(x), len(y), ErrNotEnoughPoints)
	}
	if len(x) < 2 {
		return Line{}, fmt.Errorf("need at least 2 points, got %d: %w", len(x), ErrNotEnoughPoints)
	}
	// a single x value defines no line
	if floats.Min(x) == floats.Max(x) {
		return Line{}, fmt.Errorf("all x values are equal to %v: %w", x[0], ErrNotEnoughPoints)
	}
	c, err := Fit(x, y, 1)
	if err != nil {
		return Line{}, err
	}
	intercept, slope := c[0], c[1]
	r2 := stat.RSquared(x, y, nil, intercept, slope)
	// constant targets have no variance to explain
	if !Finite(r2) {
		r2 = 0
	}
	return Line{
		Slope:     slope,
		Intercept: intercept,
		R2:        r2,
	}, nil
}
