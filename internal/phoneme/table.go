package phoneme

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownCode is returned when a code has no entry in the phone set. It
// means the loaded dictionary is inconsistent, not that a request was bad.
var ErrUnknownCode = errors.New("phoneme not in phone set")

// MannerVowel is the manner label the phone set uses for vowels.
const MannerVowel = "vowel"

// Classifier maps a code to its class.
type Classifier interface {
	Classify(code Code) (Class, error)
}

// Table is a read-only phone set: code -> manner of articulation.
type Table struct {
	manners map[Code]string
}

// cmuPhones is the CMU 0.7b phone set.
var cmuPhones = map[Code]string{
	"AA": "vowel", "AE": "vowel", "AH": "vowel", "AO": "vowel", "AW": "vowel",
	"AY": "vowel", "EH": "vowel", "ER": "vowel", "EY": "vowel", "IH": "vowel",
	"IY": "vowel", "OW": "vowel", "OY": "vowel", "UH": "vowel", "UW": "vowel",
	"B": "stop", "D": "stop", "G": "stop", "K": "stop", "P": "stop", "T": "stop",
	"CH": "affricate", "JH": "affricate",
	"DH": "fricative", "F": "fricative", "S": "fricative", "SH": "fricative",
	"TH": "fricative", "V": "fricative", "Z": "fricative", "ZH": "fricative",
	"HH": "aspirate",
	"L": "liquid", "R": "liquid",
	"M": "nasal", "N": "nasal", "NG": "nasal",
	"W": "semivowel", "Y": "semivowel",
}

// NewTable builds a table from a code -> manner map. The map is copied.
func NewTable(manners map[Code]string) *Table {
	t := &Table{manners: make(map[Code]string, len(manners))}
	for code, manner := range manners {
		t.manners[Code(strings.ToUpper(string(code)))] = strings.ToLower(strings.TrimSpace(manner))
	}
	return t
}

// DefaultTable returns the CMU phone set.
func DefaultTable() *Table {
	return NewTable(cmuPhones)
}

// Classify returns Vowel for codes whose manner is "vowel" and Consonant for
// every other known code.
func (t *Table) Classify(code Code) (Class, error) {
	manner, ok := t.manners[code]
	if !ok {
		return Consonant, fmt.Errorf("%w: %q", ErrUnknownCode, code)
	}
	if manner == MannerVowel {
		return Vowel, nil
	}
	return Consonant, nil
}

// Manner returns the recorded manner for a code.
func (t *Table) Manner(code Code) (string, bool) {
	m, ok := t.manners[code]
	return m, ok
}

// Has reports whether the code is in the phone set.
func (t *Table) Has(code Code) bool {
	_, ok := t.manners[code]
	return ok
}

// Len returns the number of codes in the set.
func (t *Table) Len() int {
	return len(t.manners)
}

// Codes returns all codes, sorted.
func (t *Table) Codes() []Code {
	codes := make([]Code, 0, len(t.manners))
	for c := range t.manners {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// IsVowel classifies a single code.
func IsVowel(cls Classifier, code Code) (bool, error) {
	c, err := cls.Classify(code)
	if err != nil {
		return false, err
	}
	return c == Vowel, nil
}

// HasVowel reports whether any phoneme of p is a vowel.
func HasVowel(cls Classifier, p Pronunciation) (bool, error) {
	for _, code := range p {
		v, err := IsVowel(cls, code)
		if err != nil {
			return false, err
		}
		if v {
			return true, nil
		}
	}
	return false, nil
}

// VowelIndices returns the positions of vowels in p, in order.
func VowelIndices(cls Classifier, p Pronunciation) ([]int, error) {
	var idx []int
	for i, code := range p {
		v, err := IsVowel(cls, code)
		if err != nil {
			return nil, err
		}
		if v {
			idx = append(idx, i)
		}
	}
	return idx, nil
}
