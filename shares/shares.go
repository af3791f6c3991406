// Package shares implements (T, N) Shamir secret sharing over BIP-0039
// mnemonics: splitting a mnemonic into N share mnemonics of which any T
// reconstruct the original, and the optional scheme for embedding a
// share's evaluation point into the last word of a 12-word share.
package shares

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"shamir39.dev/gf"
	"shamir39.dev/mnemonic"
	"shamir39.dev/poly"
	"shamir39.dev/wordlist"
)

const (
	// maxEmbeddedShares is the largest N supported when index embedding
	// is enabled: the last word's low 4 bits hold the index, so only 16
	// distinct values (0..15) fit.
	maxEmbeddedShares = 16
	// embedWordCount is the only mnemonic length index embedding applies
	// to: it needs a recomputable checksum word.
	embedWordCount = 12
)

var (
	// ErrInvalidParameters is returned for out-of-range N, T, or word
	// count combinations.
	ErrInvalidParameters = errors.New("invalid sharing parameters")
	// ErrDuplicateShareIndex is returned when two shares supplied to
	// Combine carry the same index.
	ErrDuplicateShareIndex = errors.New("duplicate share index")
	// ErrEmbeddingInfeasible is returned when no high-7-bit prefix makes
	// a share's last word BIP-0039 valid. Conjectured never to occur for
	// valid secrets; callers should treat it as a hard failure.
	ErrEmbeddingInfeasible = errors.New("no checksum-valid embedding found")
	// ErrMalformedShareLine is returned when a no-embedding "INDEX: words"
	// line cannot be parsed.
	ErrMalformedShareLine = errors.New("malformed share line")
)

// Share is one generated share: its evaluation point and the mnemonic
// words representing its value (with the index embedded in the last
// word, when embedding is enabled).
type Share struct {
	Index int
	Words []string
}

// InputShare is a share supplied for reconstruction: its evaluation
// point, already resolved by the caller (via ExtractIndex for embedded
// shares, or by parsing an "INDEX: words" line otherwise), and its
// mnemonic words.
type InputShare struct {
	Index int
	Words []string
}

// SplitConfig parameterizes Split.
type SplitConfig struct {
	Words    []string
	N, T     int
	Embed    bool
	WordList *wordlist.List
	Rand     io.Reader
}

// Split verifies words as a BIP-0039 mnemonic, encodes it as the
// constant term of a random degree-(T-1) polynomial, and evaluates that
// polynomial at x = 1..N to produce N shares.
func Split(cfg SplitConfig) ([]Share, error) {
	if cfg.T < 1 || cfg.N < cfg.T {
		return nil, fmt.Errorf("shares: %w: need 1 <= T <= N, got T=%d N=%d", ErrInvalidParameters, cfg.T, cfg.N)
	}
	w := len(cfg.Words)
	if cfg.Embed {
		if w != embedWordCount {
			return nil, fmt.Errorf("shares: %w: embedding requires a %d-word mnemonic, got %d", ErrInvalidParameters, embedWordCount, w)
		}
		if cfg.N > maxEmbeddedShares {
			return nil, fmt.Errorf("shares: %w: embedding supports at most %d shares, got %d", ErrInvalidParameters, maxEmbeddedShares, cfg.N)
		}
	}
	if err := mnemonic.Verify(cfg.Words, cfg.WordList); err != nil {
		return nil, fmt.Errorf("shares: %w", err)
	}

	s, err := mnemonic.Encode(cfg.Words, cfg.WordList)
	if err != nil {
		return nil, fmt.Errorf("shares: %w", err)
	}
	field, err := gf.ForWords(w)
	if err != nil {
		return nil, fmt.Errorf("shares: %w", err)
	}
	p, err := poly.New(field, field.FromInt(s), cfg.T-1, cfg.Rand)
	if err != nil {
		return nil, fmt.Errorf("shares: %w", err)
	}

	out := make([]Share, cfg.N)
	for i := 1; i <= cfg.N; i++ {
		y := p.Eval(field.FromUint64(uint64(i)))
		words, err := mnemonic.Decode(y.Int(), w, cfg.WordList)
		if err != nil {
			return nil, fmt.Errorf("shares: %w", err)
		}
		if cfg.Embed {
			words, err = EmbedIndex(words, i-1, cfg.WordList)
			if err != nil {
				return nil, fmt.Errorf("shares: share %d: %w", i, err)
			}
		}
		out[i-1] = Share{Index: i, Words: words}
	}
	return out, nil
}

// Combine reconstructs the original mnemonic from a set of shares via
// Lagrange interpolation at zero. All shares must carry the same word
// count; the field is inferred from it.
func Combine(in []InputShare, wl *wordlist.List) ([]string, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("shares: %w: no shares supplied", ErrInvalidParameters)
	}
	w := len(in[0].Words)
	if !mnemonic.ValidWordCount(w) {
		return nil, fmt.Errorf("shares: %w", mnemonic.ErrInvalidLength)
	}
	field, err := gf.ForWords(w)
	if err != nil {
		return nil, fmt.Errorf("shares: %w", err)
	}

	seen := make(map[int]bool, len(in))
	points := make([]poly.Point, len(in))
	for i, sh := range in {
		if len(sh.Words) != w {
			return nil, fmt.Errorf("shares: %w: share %d has %d words, want %d", ErrInvalidParameters, sh.Index, len(sh.Words), w)
		}
		if sh.Index <= 0 {
			return nil, fmt.Errorf("shares: %w: index %d is not positive", ErrInvalidParameters, sh.Index)
		}
		if seen[sh.Index] {
			return nil, fmt.Errorf("shares: %w: %d", ErrDuplicateShareIndex, sh.Index)
		}
		seen[sh.Index] = true

		y, err := mnemonic.Encode(sh.Words, wl)
		if err != nil {
			return nil, fmt.Errorf("shares: %w", err)
		}
		points[i] = poly.Point{X: field.FromUint64(uint64(sh.Index)), Y: field.FromInt(y)}
	}

	secret, err := poly.InterpolateAtZero(field, points)
	if err != nil {
		return nil, fmt.Errorf("shares: %w", err)
	}
	return mnemonic.Decode(secret.Int(), w, wl)
}

// EmbedIndex rewrites the last word of a 12-word mnemonic so its low 4
// bits equal idx (0..15) while the resulting mnemonic stays BIP-0039
// valid. It searches the high 7 bits of the last word's 11-bit index
// for the first value that yields a valid checksum; encoding and
// decoding agree that the post-substitution value, not the original
// polynomial output, is the share's effective value from this point on.
func EmbedIndex(words []string, idx int, wl *wordlist.List) ([]string, error) {
	if len(words) != embedWordCount {
		return nil, fmt.Errorf("shares: %w: embedding requires %d words, got %d", ErrInvalidParameters, embedWordCount, len(words))
	}
	if idx < 0 || idx > 15 {
		return nil, fmt.Errorf("shares: %w: embed index %d out of range", ErrInvalidParameters, idx)
	}
	candidate := make([]string, len(words))
	copy(candidate, words)
	for high7 := 0; high7 < 128; high7++ {
		candidate[len(candidate)-1] = wl.IndexToWord(high7<<4 | idx)
		if err := mnemonic.Verify(candidate, wl); err == nil {
			return candidate, nil
		}
	}
	return nil, fmt.Errorf("shares: %w", ErrEmbeddingInfeasible)
}

// ExtractIndex reads the share index out of a 12-word mnemonic's last
// word: the low 4 bits of its 11-bit word index.
func ExtractIndex(words []string, wl *wordlist.List) (int, error) {
	if len(words) != embedWordCount {
		return 0, fmt.Errorf("shares: %w: embedding requires %d words, got %d", ErrInvalidParameters, embedWordCount, len(words))
	}
	last, err := wl.WordToIndex(words[len(words)-1])
	if err != nil {
		return 0, fmt.Errorf("shares: %w", err)
	}
	return last & 0xF, nil
}

// ParseShareLine parses a no-embedding reconstruction line of the form
// "INDEX: word1 word2 ... wordW".
func ParseShareLine(line string) (InputShare, error) {
	idxPart, rest, ok := strings.Cut(line, ":")
	if !ok {
		return InputShare{}, fmt.Errorf("shares: %w: missing ':' in %q", ErrMalformedShareLine, line)
	}
	idx, err := strconv.Atoi(strings.TrimSpace(idxPart))
	if err != nil || idx <= 0 {
		return InputShare{}, fmt.Errorf("shares: %w: bad index in %q", ErrMalformedShareLine, line)
	}
	words := mnemonic.Normalize(rest)
	if len(words) == 0 {
		return InputShare{}, fmt.Errorf("shares: %w: no words in %q", ErrMalformedShareLine, line)
	}
	return InputShare{Index: idx, Words: words}, nil
}

// FormatShareLine renders a share in the "INDEX: words" form.
func FormatShareLine(s Share) string {
	return fmt.Sprintf("%d: %s", s.Index, mnemonic.Join(s.Words))
}
