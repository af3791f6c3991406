package poly

import (
	"bytes"
	"testing"

	"shamir39.dev/gf"
)

// staticReader feeds a repeating deterministic byte sequence so
// polynomial construction is reproducible in tests.
func staticReader(seed byte) *bytes.Reader {
	buf := make([]byte, 4096)
	for i := range buf {
		buf[i] = seed + byte(i)
	}
	return bytes.NewReader(buf)
}

func TestEvalAtZeroIsSecret(t *testing.T) {
	field, err := gf.ForWords(12)
	if err != nil {
		t.Fatal(err)
	}
	secret := field.FromUint64(424242)
	p, err := New(field, secret, 2, staticReader(1))
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Eval(field.Zero()); !got.Equal(secret) {
		t.Errorf("Eval(0) = %v, want %v", got.Int(), secret.Int())
	}
}

func TestInterpolateRecoversSecret(t *testing.T) {
	field, err := gf.ForWords(12)
	if err != nil {
		t.Fatal(err)
	}
	secret := field.FromUint64(99999999)
	const degree = 2
	p, err := New(field, secret, degree, staticReader(7))
	if err != nil {
		t.Fatal(err)
	}

	var points []Point
	for i := 1; i <= degree+1; i++ {
		x := field.FromUint64(uint64(i))
		points = append(points, Point{X: x, Y: p.Eval(x)})
	}

	got, err := InterpolateAtZero(field, points)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(secret) {
		t.Errorf("InterpolateAtZero = %v, want %v", got.Int(), secret.Int())
	}
}

func TestInterpolateIsPermutationIndependent(t *testing.T) {
	field, err := gf.ForWords(12)
	if err != nil {
		t.Fatal(err)
	}
	secret := field.FromUint64(123)
	p, err := New(field, secret, 3, staticReader(3))
	if err != nil {
		t.Fatal(err)
	}
	points := []Point{
		{X: field.FromUint64(1), Y: p.Eval(field.FromUint64(1))},
		{X: field.FromUint64(2), Y: p.Eval(field.FromUint64(2))},
		{X: field.FromUint64(3), Y: p.Eval(field.FromUint64(3))},
		{X: field.FromUint64(4), Y: p.Eval(field.FromUint64(4))},
	}
	reversed := []Point{points[3], points[2], points[1], points[0]}

	got1, err := InterpolateAtZero(field, points)
	if err != nil {
		t.Fatal(err)
	}
	got2, err := InterpolateAtZero(field, reversed)
	if err != nil {
		t.Fatal(err)
	}
	if !got1.Equal(got2) {
		t.Errorf("interpolation depends on order: %v != %v", got1.Int(), got2.Int())
	}
}

func TestInterpolateRejectsDuplicateX(t *testing.T) {
	field, err := gf.ForWords(12)
	if err != nil {
		t.Fatal(err)
	}
	points := []Point{
		{X: field.FromUint64(1), Y: field.FromUint64(10)},
		{X: field.FromUint64(1), Y: field.FromUint64(20)},
	}
	if _, err := InterpolateAtZero(field, points); err == nil {
		t.Fatal("expected duplicate x error, got nil")
	}
}

func TestInterpolateRejectsEmpty(t *testing.T) {
	field, err := gf.ForWords(12)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := InterpolateAtZero(field, nil); err == nil {
		t.Fatal("expected error for empty point set")
	}
}

func TestBelowThresholdYieldsWrongSecret(t *testing.T) {
	field, err := gf.ForWords(12)
	if err != nil {
		t.Fatal(err)
	}
	secret := field.FromUint64(55555)
	const threshold = 3
	// A degree-(threshold-1) polynomial needs `threshold` points to
	// interpolate correctly.
	p, err := New(field, secret, threshold-1, staticReader(9))
	if err != nil {
		t.Fatal(err)
	}
	// Supply only threshold-1 points: interpolation still "succeeds"
	// but recovers the constant term of a lower-degree polynomial
	// through the same points, not the true secret.
	points := []Point{
		{X: field.FromUint64(1), Y: p.Eval(field.FromUint64(1))},
		{X: field.FromUint64(2), Y: p.Eval(field.FromUint64(2))},
	}
	got, err := InterpolateAtZero(field, points)
	if err != nil {
		t.Fatal(err)
	}
	if got.Equal(secret) {
		t.Fatal("interpolating below threshold coincidentally recovered the secret")
	}
}
