package wordlist

import (
	"strconv"
	"strings"
	"testing"
)

func TestEnglishIsWellFormed(t *testing.T) {
	l, err := English()
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < Size; i++ {
		w := l.IndexToWord(i)
		if w == "" {
			t.Fatalf("index %d maps to empty word", i)
		}
		got, err := l.WordToIndex(w)
		if err != nil {
			t.Fatalf("WordToIndex(%q): %v", w, err)
		}
		if got != i {
			t.Fatalf("round trip index %d -> %q -> %d", i, w, got)
		}
	}
}

func TestLoadRejectsWrongSize(t *testing.T) {
	words := make([]string, Size-1)
	for i := range words {
		words[i] = "w" + strconv.Itoa(i)
	}
	_, err := Load(strings.NewReader(strings.Join(words, "\n")))
	if err == nil {
		t.Fatal("expected error for short word list")
	}
}

func TestLoadRejectsDuplicate(t *testing.T) {
	words := make([]string, Size)
	for i := range words {
		words[i] = "w" + strconv.Itoa(i)
	}
	words[Size-1] = words[0]
	_, err := Load(strings.NewReader(strings.Join(words, "\n")))
	if err == nil {
		t.Fatal("expected error for duplicate word")
	}
}

func TestLoadRejectsBlankLine(t *testing.T) {
	words := make([]string, Size)
	for i := range words {
		words[i] = "w" + strconv.Itoa(i)
	}
	words[10] = ""
	_, err := Load(strings.NewReader(strings.Join(words, "\n")))
	if err == nil {
		t.Fatal("expected error for blank word")
	}
}

func TestWordToIndexUnknown(t *testing.T) {
	l, err := English()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.WordToIndex("notaword"); err == nil {
		t.Fatal("expected error for unknown word")
	}
}
