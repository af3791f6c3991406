// Package mnemonic implements the BIP-0039 mnemonic codec: converting
// between word sequences and the big integer they encode, and verifying
// the BIP-0039 checksum.
//
// The value returned by Encode (and consumed by Decode) is the full
// 11*W-bit payload, checksum bits included — not entropy alone. The
// secret-sharing engine built on top of this package must reconstruct s
// verbatim, so the checksum bits travel with the rest of the value.
package mnemonic

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"shamir39.dev/wordlist"
)

const wordBits = 11

var (
	// ErrInvalidLength is returned when a word count is not one of
	// 12, 15, 18, 21, 24.
	ErrInvalidLength = errors.New("invalid mnemonic length")
	// ErrInvalidChecksum is returned when a mnemonic's BIP-0039
	// checksum does not match its entropy.
	ErrInvalidChecksum = errors.New("invalid bip39 checksum")
)

// ValidWordCount reports whether w is one of the five supported
// mnemonic lengths.
func ValidWordCount(w int) bool {
	switch w {
	case 12, 15, 18, 21, 24:
		return true
	default:
		return false
	}
}

// checksumBits returns the number of checksum bits carried by a W-word
// mnemonic (W/3, per BIP-0039).
func checksumBits(w int) int {
	return w / 3
}

// Encode looks up each word's 11-bit index and concatenates them,
// most-significant word first, into a single (11*W)-bit integer. It
// does not validate the BIP-0039 checksum; call Verify for that.
func Encode(words []string, wl *wordlist.List) (*big.Int, error) {
	w := len(words)
	if !ValidWordCount(w) {
		return nil, fmt.Errorf("mnemonic: %w: %d words", ErrInvalidLength, w)
	}
	s := new(big.Int)
	shift := big.NewInt(1 << wordBits)
	for _, word := range words {
		idx, err := wl.WordToIndex(word)
		if err != nil {
			return nil, fmt.Errorf("mnemonic: %w", err)
		}
		s.Mul(s, shift)
		s.Or(s, big.NewInt(int64(idx)))
	}
	return s, nil
}

// Decode splits s into W groups of 11 bits, most-significant first, and
// maps each group to a word via wl.
func Decode(s *big.Int, w int, wl *wordlist.List) ([]string, error) {
	if !ValidWordCount(w) {
		return nil, fmt.Errorf("mnemonic: %w: %d words", ErrInvalidLength, w)
	}
	mask := big.NewInt(1<<wordBits - 1)
	rem := new(big.Int).Set(s)
	words := make([]string, w)
	for i := w - 1; i >= 0; i-- {
		group := new(big.Int).And(rem, mask)
		words[i] = wl.IndexToWord(int(group.Int64()))
		rem.Rsh(rem, wordBits)
	}
	return words, nil
}

// split breaks s's W 11-bit words into an entropy byte slice and the
// raw checksum bits (as the low bits of a byte), using the same
// bit-packing Encode produced.
func split(s *big.Int, w int) (entropy []byte, checksum byte) {
	checkBits := checksumBits(w)
	entBits := w*wordBits - checkBits

	check := new(big.Int).And(s, big.NewInt(1<<checkBits-1))
	ent := new(big.Int).Rsh(s, uint(checkBits))

	entBytes := ent.Bytes()
	padding := entBits/8 - len(entBytes)
	if padding > 0 {
		padded := make([]byte, entBits/8)
		copy(padded[padding:], entBytes)
		entBytes = padded
	}
	return entBytes, byte(check.Int64())
}

// expectedChecksum computes the high checkBits bits of SHA-256(entropy).
func expectedChecksum(entropy []byte, checkBits int) byte {
	sum := sha256.Sum256(entropy)
	return sum[0] >> (8 - checkBits)
}

// Verify recomputes the BIP-0039 checksum for words and reports whether
// it matches. It returns ErrInvalidLength, a wordlist.ErrUnknownWord, or
// ErrInvalidChecksum on failure.
func Verify(words []string, wl *wordlist.List) error {
	w := len(words)
	if !ValidWordCount(w) {
		return fmt.Errorf("mnemonic: %w: %d words", ErrInvalidLength, w)
	}
	s, err := Encode(words, wl)
	if err != nil {
		return err
	}
	entropy, checksum := split(s, w)
	if want := expectedChecksum(entropy, checksumBits(w)); checksum != want {
		return fmt.Errorf("mnemonic: %w", ErrInvalidChecksum)
	}
	return nil
}

// Normalize splits whitespace-delimited phrase text into individual
// words, collapsing repeated whitespace the way callers type it.
func Normalize(phrase string) []string {
	return strings.Fields(phrase)
}

// Join renders words back into a single space-delimited phrase.
func Join(words []string) string {
	return strings.Join(words, " ")
}
