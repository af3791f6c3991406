// Package wordlist provides a bidirectional mapping between a fixed set
// of 2048 distinct words and their 11-bit indices.
package wordlist

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"sync"
)

// Size is the number of words a valid word list contains.
const Size = 2048

var (
	// ErrWrongSize is returned when a word list does not contain
	// exactly Size lines.
	ErrWrongSize = errors.New("word list must contain exactly 2048 words")
	// ErrBlankWord is returned when a word list line is empty.
	ErrBlankWord = errors.New("word list contains a blank line")
	// ErrDuplicateWord is returned when a word list repeats an entry.
	ErrDuplicateWord = errors.New("word list contains a duplicate word")
	// ErrUnknownWord is returned by WordToIndex when a word is not in
	// the list.
	ErrUnknownWord = errors.New("unknown word")
)

// List is an immutable, loaded word list: an ordered sequence of 2048
// distinct words, indexed 0..2047 by line order.
type List struct {
	words   [Size]string
	indices map[string]int
}

// Load reads a line-delimited word list from r. It validates that the
// list has exactly 2048 non-blank lines and no duplicates.
func Load(r io.Reader) (*List, error) {
	l := &List{indices: make(map[string]int, Size)}
	scanner := bufio.NewScanner(r)
	// Valid BIP-0039 lists never exceed a small fixed width; cap each
	// line at 1 KiB, far above any legitimate word. A longer line makes
	// Scan fail and Load return the scanner's error.
	scanner.Buffer(make([]byte, 0, 64), 1024)
	n := 0
	for scanner.Scan() {
		w := scanner.Text()
		if w == "" {
			return nil, fmt.Errorf("wordlist: %w", ErrBlankWord)
		}
		if n >= Size {
			return nil, fmt.Errorf("wordlist: %w", ErrWrongSize)
		}
		if _, dup := l.indices[w]; dup {
			return nil, fmt.Errorf("wordlist: %w: %q", ErrDuplicateWord, w)
		}
		l.words[n] = w
		l.indices[w] = n
		n++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("wordlist: %w", err)
	}
	if n != Size {
		return nil, fmt.Errorf("wordlist: %w", ErrWrongSize)
	}
	return l, nil
}

// WordToIndex looks up a word's 11-bit index.
func (l *List) WordToIndex(w string) (int, error) {
	i, ok := l.indices[w]
	if !ok {
		return 0, fmt.Errorf("wordlist: %w: %q", ErrUnknownWord, w)
	}
	return i, nil
}

// IndexToWord returns the word at index i. It panics if i is not in
// [0, 2048) — callers only ever pass values already reduced mod 2048,
// so an out-of-range index is a programmer error, not a runtime one.
func (l *List) IndexToWord(i int) string {
	if i < 0 || i >= Size {
		panic(fmt.Sprintf("wordlist: index %d out of range", i))
	}
	return l.words[i]
}

//go:embed wordlist_english.txt
var embeddedEnglish embed.FS

var (
	englishOnce sync.Once
	english     *List
	englishErr  error
)

// English returns the module's embedded default BIP-0039 English word
// list, parsed through the same Load path as any externally supplied
// list.
func English() (*List, error) {
	englishOnce.Do(func() {
		f, err := embeddedEnglish.Open("wordlist_english.txt")
		if err != nil {
			englishErr = err
			return
		}
		defer f.Close()
		english, englishErr = Load(f)
	})
	return english, englishErr
}
