package orthography

import (
	"iter"
	"strings"

	"github.com/f3rmion/blend/internal/phoneme"
)

// Candidates yields every spelling of the fragment: one letter group per
// phoneme, concatenated, with the last phoneme varying fastest. The sequence
// is lazy and can be ranged over more than once. An empty fragment yields a
// single empty string; a phoneme with no spellings yields nothing.
func (t Table) Candidates(fragment phoneme.Pronunciation) iter.Seq[string] {
	return t.walk(fragment, func(string) bool { return true })
}

// walk enumerates candidates in Candidates order, skipping any branch whose
// partial spelling fails keep.
func (t Table) walk(fragment phoneme.Pronunciation, keep func(string) bool) iter.Seq[string] {
	return func(yield func(string) bool) {
		var visit func(i int, partial string) bool
		visit = func(i int, partial string) bool {
			if i == len(fragment) {
				return yield(partial)
			}
			for _, s := range t[fragment[i]] {
				next := partial + s
				if !keep(next) {
					continue
				}
				if !visit(i+1, next) {
					return false
				}
			}
			return true
		}
		if keep("") {
			visit(0, "")
		}
	}
}

// Spell returns the longest candidate spelling of fragment that ends word
// (anchorEnd) or starts it. When more than one spelling fits, a prefix ending
// in "e" and a suffix starting with "ed" or "ol" give way to the next longest.
// word is expected in lower case. It reports false when nothing fits.
func (t Table) Spell(word string, fragment phoneme.Pronunciation, anchorEnd bool) (string, bool) {
	fits := strings.HasPrefix
	keep := func(partial string) bool { return strings.HasPrefix(word, partial) }
	if anchorEnd {
		fits = strings.HasSuffix
		keep = func(partial string) bool { return strings.Contains(word, partial) }
	}

	var matches []string
	for c := range t.walk(fragment, keep) {
		if fits(word, c) {
			matches = append(matches, c)
		}
	}
	if len(matches) == 0 {
		return "", false
	}

	i := longest(matches)
	if len(matches) > 1 && excluded(matches[i], anchorEnd) {
		matches = append(matches[:i], matches[i+1:]...)
		i = longest(matches)
	}
	return matches[i], true
}

// longest returns the index of the first longest string.
func longest(list []string) int {
	best := 0
	for i, s := range list {
		if len(s) > len(list[best]) {
			best = i
		}
	}
	return best
}

func excluded(s string, anchorEnd bool) bool {
	if anchorEnd {
		return strings.HasPrefix(s, "ed") || strings.HasPrefix(s, "ol")
	}
	return strings.HasSuffix(s, "e")
}
