// Package overlap finds where two pronunciations share a run of identical
// phonemes and decides whether that run is a usable blend point.
package overlap

import (
	"github.com/f3rmion/blend/internal/phoneme"
)

// Match is a contiguous run of identical phonemes present in both sequences.
type Match struct {
	A    int // Start offset in the first sequence
	B    int // Start offset in the second sequence
	Size int // Number of phonemes in the run, always >= 1
}

// EndA returns the offset just past the run in the first sequence.
func (m Match) EndA() int { return m.A + m.Size }

// EndB returns the offset just past the run in the second sequence.
func (m Match) EndB() int { return m.B + m.Size }

// Candidate is an admissible match together with the pronunciations it was
// found in.
type Candidate struct {
	Match  Match
	First  phoneme.Pronunciation
	Second phoneme.Pronunciation
}

// Fragments cuts both pronunciations at the end of the run: the first keeps
// everything through the shared block, the second keeps everything after it.
func (c Candidate) Fragments() (phoneme.Pronunciation, phoneme.Pronunciation) {
	head, ok := c.First.Slice(0, c.Match.EndA())
	if !ok {
		return nil, nil
	}
	tail, ok := c.Second.Slice(c.Match.EndB(), c.Second.Len())
	if !ok {
		return nil, nil
	}
	return head, tail
}

// Longest returns the longest run of identical codes shared by a and b. On
// equal lengths the run starting earliest in a wins, then earliest in b. It
// reports false when a and b share no code.
func Longest(a, b phoneme.Pronunciation) (Match, bool) {
	var best Match
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)

	for i := range a {
		for j := range b {
			if a[i] == b[j] {
				cur[j+1] = prev[j] + 1
				if k := cur[j+1]; k > best.Size {
					best = Match{A: i - k + 1, B: j - k + 1, Size: k}
				}
			} else {
				cur[j+1] = 0
			}
		}
		prev, cur = cur, prev
	}

	return best, best.Size > 0
}

// FindBest searches every (first, second) pair of alternatives in order and
// returns the admissible match with the greatest size. The earliest pair wins
// ties. Errors only come from the classifier.
func FindBest(cls phoneme.Classifier, firsts, seconds []phoneme.Pronunciation) (Candidate, bool, error) {
	var (
		best  Candidate
		found bool
	)

	for _, a := range firsts {
		for _, b := range seconds {
			m, ok := Longest(a, b)
			if !ok {
				continue
			}
			keep, err := Admissible(cls, a, b, m)
			if err != nil {
				return Candidate{}, false, err
			}
			if !keep {
				continue
			}
			if !found || m.Size > best.Match.Size {
				best = Candidate{Match: m, First: a, Second: b}
				found = true
			}
		}
	}

	return best, found, nil
}
