package math

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Fit solves the least squares problem for a polynomial of the given degree through the points (x, y)
// using a QR factorisation of the vandermonde matrix.
// The output holds the coefficients of the corresponding powers of x
// c[0] + c[1]x + c[2]x^2 + ...
func Fit(x, y []float64, degree int) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("x and y differ in size %d vs %d: %w", len(x), len(y), ErrNotEnoughPoints)
	}
	if degree < 0 || len(x) <= degree {
		return nil, fmt.Errorf("need more than %d points for degree %d, got %d: %w", degree, degree, len(x), ErrNotEnoughPoints)
	}

	var qr mat.QR
	qr.Factorize(vandermonde(x, degree))

	var c mat.VecDense
	if err := qr.SolveVecTo(&c, false, mat.NewVecDense(len(y), y)); err != nil {
		return nil, fmt.Errorf("could not solve for degree %d: %w", degree, err)
	}

	cc := make([]float64, c.Len())
	for i := range cc {
		cc[i] = c.AtVec(i)
	}
	return cc, nil
}

// vandermonde builds the matrix with rows [1, x, x^2, ... x^degree].
func vandermonde(x []float64, degree int) *mat.Dense {
	v := mat.NewDense(len(x), degree+1, nil)
	for i, xi := range x {
		p := 1.0
		for j := 0; j <= degree; j++ {
			v.Set(i, j, p)
			p *= xi
		}
	}
	return v
}
