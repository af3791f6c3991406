package gf

import (
	"bytes"
	"math/big"
	"testing"
)

func TestForWordsRejectsUnsupported(t *testing.T) {
	for _, w := range []int{0, 1, 11, 13, 25} {
		if _, err := ForWords(w); err == nil {
			t.Errorf("ForWords(%d): expected error, got nil", w)
		}
	}
}

func TestArithmeticRoundTrip(t *testing.T) {
	f, err := ForWords(12)
	if err != nil {
		t.Fatal(err)
	}
	a := f.FromUint64(41)
	b := f.FromUint64(7)

	sum := f.Add(a, b)
	if got := f.Sub(sum, b); !got.Equal(a) {
		t.Errorf("Sub(Add(a,b),b) = %v, want %v", got.Int(), a.Int())
	}

	prod := f.Mul(a, b)
	quot, err := f.Div(prod, b)
	if err != nil {
		t.Fatal(err)
	}
	if !quot.Equal(a) {
		t.Errorf("Div(Mul(a,b),b) = %v, want %v", quot.Int(), a.Int())
	}
}

func TestInverseIsMultiplicative(t *testing.T) {
	f, err := ForWords(12)
	if err != nil {
		t.Fatal(err)
	}
	a := f.FromUint64(123456789)
	inv, err := f.Inverse(a)
	if err != nil {
		t.Fatal(err)
	}
	if got := f.Mul(a, inv); !got.Equal(f.One()) {
		t.Errorf("a * a^-1 = %v, want 1", got.Int())
	}
}

func TestInverseOfZeroFails(t *testing.T) {
	f, err := ForWords(12)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Inverse(f.Zero()); err == nil {
		t.Error("Inverse(0): expected error, got nil")
	}
}

func TestRandomStaysInField(t *testing.T) {
	f, err := ForWords(24)
	if err != nil {
		t.Fatal(err)
	}
	byteLen := (f.Prime().BitLen() + 7) / 8
	// Each draw is preceded by one all-0xff block, always >= p and so
	// always rejected, followed by an all-zero block that always lands
	// in the field: exercises the rejection loop without ever starving
	// the reader.
	var src []byte
	for i := 0; i < 8; i++ {
		src = append(src, bytes.Repeat([]byte{0xff}, byteLen)...)
		src = append(src, make([]byte, byteLen)...)
	}
	r := bytes.NewReader(src)
	for i := 0; i < 8; i++ {
		e, err := f.Random(r)
		if err != nil {
			t.Fatal(err)
		}
		if e.Int().Cmp(f.Prime()) >= 0 {
			t.Fatalf("Random() = %v, want < p", e.Int())
		}
	}
}

func TestPrimeForWordsIsJustAboveBoundary(t *testing.T) {
	for _, w := range []int{12, 15, 18, 21, 24} {
		f, err := ForWords(w)
		if err != nil {
			t.Fatal(err)
		}
		bound := new(big.Int).Lsh(big.NewInt(1), uint(11*w))
		if f.Prime().Cmp(bound) <= 0 {
			t.Errorf("W=%d: prime %v not greater than 2^%d", w, f.Prime(), 11*w)
		}
		if !f.p.ProbablyPrime(40) {
			t.Errorf("W=%d: constant %v is not prime", w, f.Prime())
		}
	}
}
