// Package segment splits two pronunciations at vowel boundaries when no
// shared phoneme run is usable as a blend point.
package segment

import (
	"math"

	"github.com/f3rmion/blend/internal/phoneme"
)

// Split returns a prefix of first that ends just before one of its vowels and
// a suffix of second that starts at its first vowel. For words with more than
// two vowels the cut goes near the middle vowel; otherwise at the first vowel
// that is not the word's opening sound. Both fragments are empty when no such
// cut exists.
func Split(cls phoneme.Classifier, first, second phoneme.Pronunciation) (phoneme.Pronunciation, phoneme.Pronunciation, error) {
	vowels, err := phoneme.VowelIndices(cls, first)
	if err != nil {
		return nil, nil, err
	}

	i := 0
	if len(vowels) > 2 {
		i = int(math.RoundToEven(float64(len(vowels)) / 2))
	}
	for i < len(vowels) && vowels[i] == 0 {
		i++
	}
	if i >= len(vowels) {
		return nil, nil, nil
	}

	j, err := firstVowel(cls, second)
	if err != nil {
		return nil, nil, err
	}
	if j < 0 {
		return nil, nil, nil
	}

	head, ok := first.Slice(0, vowels[i])
	if !ok {
		return nil, nil, nil
	}
	tail, ok := second.Slice(j, second.Len())
	if !ok {
		return nil, nil, nil
	}
	return head, tail, nil
}

// Failed reports whether a split produced nothing.
func Failed(head, tail phoneme.Pronunciation) bool {
	return len(head) == 0 && len(tail) == 0
}

func firstVowel(cls phoneme.Classifier, p phoneme.Pronunciation) (int, error) {
	for i, code := range p {
		v, err := phoneme.IsVowel(cls, code)
		if err != nil {
			return -1, err
		}
		if v {
			return i, nil
		}
	}
	return -1, nil
}
