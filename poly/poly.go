// Package poly implements random polynomials over a gf.Field, their
// evaluation, and Lagrange interpolation at zero — the mathematical core
// of the (T, N) secret-sharing scheme.
package poly

import (
	"errors"
	"fmt"
	"io"

	"shamir39.dev/gf"
)

var (
	// ErrDuplicateX is returned when two interpolation points share an
	// x-coordinate.
	ErrDuplicateX = errors.New("duplicate x coordinate")
	// ErrNoPoints is returned when interpolation is attempted with no
	// input points.
	ErrNoPoints = errors.New("no points to interpolate")
)

// Polynomial is a random polynomial of fixed degree over a field, whose
// constant term carries the secret.
type Polynomial struct {
	field  *gf.Field
	coeffs []gf.Elem
}

// New constructs a degree-d polynomial over field with coefficient 0
// fixed to secret. Coefficients a_1..a_d are drawn uniformly from the
// field using r, which production callers back with crypto/rand.Reader
// and tests back with a deterministic stream.
func New(field *gf.Field, secret gf.Elem, degree int, r io.Reader) (*Polynomial, error) {
	if degree < 0 {
		return nil, fmt.Errorf("poly: degree must be non-negative, got %d", degree)
	}
	coeffs := make([]gf.Elem, degree+1)
	coeffs[0] = secret
	for i := 1; i <= degree; i++ {
		a, err := field.Random(r)
		if err != nil {
			return nil, fmt.Errorf("poly: %w", err)
		}
		coeffs[i] = a
	}
	return &Polynomial{field: field, coeffs: coeffs}, nil
}

// Degree returns the polynomial's degree.
func (p *Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Eval evaluates the polynomial at x using Horner's method.
func (p *Polynomial) Eval(x gf.Elem) gf.Elem {
	f := p.field
	y := p.coeffs[len(p.coeffs)-1]
	for i := len(p.coeffs) - 2; i >= 0; i-- {
		y = f.Add(f.Mul(y, x), p.coeffs[i])
	}
	return y
}

// Point is one (x, f(x)) sample of a polynomial.
type Point struct {
	X, Y gf.Elem
}

// InterpolateAtZero recovers f(0) from a set of distinct-x points via
// Lagrange interpolation:
//
//	f(0) = sum_j y_j * prod_{m != j} (-x_m) / (x_j - x_m)   (mod p)
//
// Duplicate x-coordinates are a hard error — they are never silently
// deduplicated, since a repeated x with a different y indicates
// conflicting input the caller must not paper over.
func InterpolateAtZero(field *gf.Field, points []Point) (gf.Elem, error) {
	if len(points) == 0 {
		return gf.Elem{}, fmt.Errorf("poly: %w", ErrNoPoints)
	}
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if points[i].X.Equal(points[j].X) {
				return gf.Elem{}, fmt.Errorf("poly: %w", ErrDuplicateX)
			}
		}
	}

	result := field.Zero()
	for j, pj := range points {
		basis := field.One()
		for m, pm := range points {
			if m == j {
				continue
			}
			num := field.Neg(pm.X)
			denom := field.Sub(pj.X, pm.X)
			term, err := field.Div(num, denom)
			if err != nil {
				return gf.Elem{}, fmt.Errorf("poly: %w", err)
			}
			basis = field.Mul(basis, term)
		}
		result = field.Add(result, field.Mul(pj.Y, basis))
	}
	return result, nil
}
