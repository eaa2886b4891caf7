package blend

import (
	"errors"
	"fmt"
	"strings"

	"github.com/f3rmion/blend/internal/overlap"
	"github.com/f3rmion/blend/internal/phoneme"
)

// Conditions the engine recovers from. They are reported in Result.Reason.
var (
	ErrWordNotFound          = errors.New("word not in pronunciation dictionary")
	ErrUnspellable           = errors.New("no spelling matches the source word")
	ErrSegmentationExhausted = errors.New("no vowel-boundary split in either order")
)

// Kind tells how a portmanteau was produced.
type Kind int

const (
	KindPhonological   Kind = iota // Blended at a shared run of phonemes
	KindNonOverlapping             // Split at vowel boundaries
	KindLastResort                 // Half-split spelling, no usable split
	KindUnspellable                // Half-split spelling, fragment could not be spelled
	KindNotFound                   // Half-split spelling, word missing from the dictionary
)

// String returns the snake_case name used in JSON output.
func (k Kind) String() string {
	switch k {
	case KindPhonological:
		return "phonological"
	case KindNonOverlapping:
		return "non_overlapping"
	case KindLastResort:
		return "last_resort"
	case KindUnspellable:
		return "unspellable"
	case KindNotFound:
		return "not_found"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Result is the outcome of one blend request.
type Result struct {
	Kind      Kind
	Word1     string
	Word2     string
	Text      string   // The portmanteau
	Reversed  bool     // Word2's fragment leads (non-overlapping blends only)
	Missing   []string // Words without a pronunciation (KindNotFound)
	Unspelled []string // Words whose fragment could not be spelled (KindUnspellable)
	Reason    error    // Recovered condition, nil for successful blends

	// Trace data for display.
	Match  *overlap.Match        // Shared run, phonological blends only
	First  phoneme.Pronunciation // Fragment taken from Word1
	Second phoneme.Pronunciation // Fragment taken from Word2
}

// Blended reports whether the result came from pronunciations rather than
// the half-split fallback.
func (r Result) Blended() bool {
	return r.Kind == KindPhonological || r.Kind == KindNonOverlapping
}

// Message describes the result in a sentence.
func (r Result) Message() string {
	switch r.Kind {
	case KindPhonological:
		return fmt.Sprintf("The overlapping blend of %s and %s is %s.", r.Word1, r.Word2, r.Text)
	case KindNonOverlapping:
		if r.Reversed {
			return fmt.Sprintf("There is no phonologically overlapping blend of the words %s and %s, "+
				"nor is there a good non-overlapping portmanteau that can be generated with %s first and %s second. "+
				"A reverse-order non-overlapping portmanteau is %s.",
				r.Word1, r.Word2, r.Word1, r.Word2, r.Text)
		}
		return fmt.Sprintf("There is no phonologically overlapping blend of the words %s and %s. "+
			"A non-overlapping portmanteau is %s.", r.Word1, r.Word2, r.Text)
	case KindNotFound:
		return fmt.Sprintf("The word(s) %s are not present in the source dictionary. "+
			"A last-resort portmanteau for %s and %s is %s.",
			strings.Join(r.Missing, ", "), r.Word1, r.Word2, r.Text)
	case KindUnspellable:
		return fmt.Sprintf("The word(s) %s spell their phonemes in ways we haven't accounted for yet. "+
			"A last-resort portmanteau for %s and %s is %s.",
			strings.Join(r.Unspelled, ", "), r.Word1, r.Word2, r.Text)
	default:
		return fmt.Sprintf("There is no portmanteau that can be formed from the words %s and %s. "+
			"A last-resort portmanteau is %s.", r.Word1, r.Word2, r.Text)
	}
}

// LastResort joins the first half of word1 with the second half of word2,
// counting characters.
func LastResort(word1, word2 string) string {
	r1, r2 := []rune(word1), []rune(word2)
	return string(r1[:len(r1)/2]) + string(r2[len(r2)/2:])
}
