// Package phoneme provides the core sound types shared by the blending engine.
package phoneme

import (
	"strings"
)

// Code identifies one sound unit (e.g., "AE", "NG"). Equality is symbolic.
type Code string

// Class is the broad phonological class of a Code.
type Class int

const (
	Consonant Class = iota // Anything that is not a vowel
	Vowel                  // Syllable nucleus
)

// String returns the lower-case class name.
func (c Class) String() string {
	if c == Vowel {
		return "vowel"
	}
	return "consonant"
}

// Pronunciation is an ordered sequence of phonemes, start of the word first.
type Pronunciation []Code

// ParsePronunciation splits a space separated phoneme string (e.g., "K AE T").
func ParsePronunciation(s string) Pronunciation {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}
	p := make(Pronunciation, len(fields))
	for i, f := range fields {
		p[i] = Code(strings.ToUpper(f))
	}
	return p
}

// Len returns the number of phonemes.
func (p Pronunciation) Len() int {
	return len(p)
}

// At returns the phoneme at index i, or false when i is out of range.
func (p Pronunciation) At(i int) (Code, bool) {
	if i < 0 || i >= len(p) {
		return "", false
	}
	return p[i], true
}

// Slice returns an owned copy of p[i:j]. It reports false instead of
// panicking when the bounds are invalid.
func (p Pronunciation) Slice(i, j int) (Pronunciation, bool) {
	if i < 0 || j < i || j > len(p) {
		return nil, false
	}
	out := make(Pronunciation, j-i)
	copy(out, p[i:j])
	return out, true
}

// Clone returns an owned copy of p.
func (p Pronunciation) Clone() Pronunciation {
	if p == nil {
		return nil
	}
	out := make(Pronunciation, len(p))
	copy(out, p)
	return out
}

// Equal reports whether p and q hold the same codes in the same order.
func (p Pronunciation) Equal(q Pronunciation) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// String joins the codes with single spaces.
func (p Pronunciation) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = string(c)
	}
	return strings.Join(parts, " ")
}
