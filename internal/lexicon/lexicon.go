// Package lexicon holds the read-only pronunciation dictionary used while
// serving blend requests.
package lexicon

import (
	"fmt"
	"strings"

	"github.com/f3rmion/blend/internal/phoneme"
	"golang.org/x/text/cases"
)

// Lexicon maps words to their alternative pronunciations and classifies the
// phonemes those pronunciations use. It is never modified after Build, so it
// can be shared between goroutines.
type Lexicon struct {
	words  map[string][]phoneme.Pronunciation
	phones *phoneme.Table
}

// Normalize returns the lookup key for a word: trimmed and case-folded.
func Normalize(word string) string {
	return cases.Fold().String(strings.TrimSpace(word))
}

// Pronunciations returns the alternatives recorded for a word, in the order
// they were first added. The lookup is case-insensitive.
func (l *Lexicon) Pronunciations(word string) ([]phoneme.Pronunciation, bool) {
	prons, ok := l.words[Normalize(word)]
	if !ok || len(prons) == 0 {
		return nil, false
	}
	out := make([]phoneme.Pronunciation, len(prons))
	for i, p := range prons {
		out[i] = p.Clone()
	}
	return out, true
}

// Classify implements phoneme.Classifier.
func (l *Lexicon) Classify(code phoneme.Code) (phoneme.Class, error) {
	return l.phones.Classify(code)
}

// Phones returns the phone set backing Classify.
func (l *Lexicon) Phones() *phoneme.Table {
	return l.phones
}

// Len returns the number of words.
func (l *Lexicon) Len() int {
	return len(l.words)
}

// Builder collects entries before a Lexicon is frozen.
type Builder struct {
	words  map[string][]phoneme.Pronunciation
	phones map[phoneme.Code]string
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		words:  make(map[string][]phoneme.Pronunciation),
		phones: make(map[phoneme.Code]string),
	}
}

// Add records a pronunciation for a word. Empty pronunciations and repeats of
// one already recorded for the word are ignored; Add reports whether the
// entry was kept.
func (b *Builder) Add(word string, p phoneme.Pronunciation) bool {
	key := Normalize(word)
	if key == "" || len(p) == 0 {
		return false
	}
	for _, existing := range b.words[key] {
		if existing.Equal(p) {
			return false
		}
	}
	b.words[key] = append(b.words[key], p.Clone())
	return true
}

// AddPhone records the manner of a phoneme code.
func (b *Builder) AddPhone(code phoneme.Code, manner string) {
	b.phones[code] = manner
}

// Build freezes the builder. When no phones were added the CMU phone set is
// used. Every code used by a pronunciation must be in the phone set.
func (b *Builder) Build() (*Lexicon, error) {
	phones := phoneme.DefaultTable()
	if len(b.phones) > 0 {
		phones = phoneme.NewTable(b.phones)
	}

	for word, prons := range b.words {
		for _, p := range prons {
			for _, code := range p {
				if !phones.Has(code) {
					return nil, fmt.Errorf("word %q: %w: %q", word, phoneme.ErrUnknownCode, code)
				}
			}
		}
	}

	words := make(map[string][]phoneme.Pronunciation, len(b.words))
	for word, prons := range b.words {
		words[word] = prons
	}
	return &Lexicon{words: words, phones: phones}, nil
}
