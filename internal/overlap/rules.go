package overlap

import (
	"github.com/f3rmion/blend/internal/phoneme"
)

// Admissible applies the blend-point heuristics to a raw match. A match is
// rejected when it:
//   - starts both words, or starts the first word and finishes the second;
//   - finishes both words;
//   - leaves the first word without a vowel before the seam and the second
//     word continues with a consonant;
//   - enters the second word with no vowel left in it and no vowel right
//     before the seam in the first word;
//   - would keep less than half of the combined material, minus one.
func Admissible(cls phoneme.Classifier, a, b phoneme.Pronunciation, m Match) (bool, error) {
	if m.Size < 1 || m.EndA() > len(a) || m.EndB() > len(b) {
		return false, nil
	}

	if m.A == 0 && (m.B == 0 || m.EndB() == len(b)) {
		return false, nil
	}

	if m.EndA() == len(a) && m.EndB() == len(b) {
		return false, nil
	}

	ok, err := leavesFirst(cls, a, b, m)
	if err != nil || !ok {
		return false, err
	}

	ok, err = entersSecond(cls, a, b, m)
	if err != nil || !ok {
		return false, err
	}

	kept := m.A + len(b) - m.B
	if float64(kept) < float64(len(a)+len(b))/2-1 {
		return false, nil
	}

	return true, nil
}

// leavesFirst: the first word's head must hold a vowel, or the phoneme after
// the seam in the second word must be one.
func leavesFirst(cls phoneme.Classifier, a, b phoneme.Pronunciation, m Match) (bool, error) {
	head, _ := a.Slice(0, m.EndA())
	has, err := phoneme.HasVowel(cls, head)
	if err != nil || has {
		return has, err
	}
	next, ok := b.At(m.EndB())
	if !ok {
		return false, nil
	}
	return phoneme.IsVowel(cls, next)
}

// entersSecond: the second word's tail from the match must hold a vowel, or
// the phoneme before the match in the first word must be one.
func entersSecond(cls phoneme.Classifier, a, b phoneme.Pronunciation, m Match) (bool, error) {
	tail, _ := b.Slice(m.B, len(b))
	has, err := phoneme.HasVowel(cls, tail)
	if err != nil || has {
		return has, err
	}
	prev, ok := a.At(m.A - 1)
	if !ok {
		return false, nil
	}
	return phoneme.IsVowel(cls, prev)
}
