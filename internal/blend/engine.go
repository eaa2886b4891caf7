// Package blend generates portmanteaus from two words by blending their
// pronunciations and spelling the result back from the source words.
package blend

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/f3rmion/blend/internal/orthography"
	"github.com/f3rmion/blend/internal/overlap"
	"github.com/f3rmion/blend/internal/phoneme"
	"github.com/f3rmion/blend/internal/segment"
	"golang.org/x/text/cases"
)

// Lookup returns the recorded pronunciations of a word, case-insensitively.
type Lookup interface {
	Pronunciations(word string) ([]phoneme.Pronunciation, bool)
}

// Engine produces portmanteaus. It keeps no per-request state, so one Engine
// may serve any number of goroutines.
type Engine struct {
	lookup    Lookup
	classes   phoneme.Classifier
	spellings orthography.Table
	logger    *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an engine over read-only dictionary data.
func New(lookup Lookup, classes phoneme.Classifier, spellings orthography.Table, opts ...Option) *Engine {
	e := &Engine{
		lookup:    lookup,
		classes:   classes,
		spellings: spellings,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Generate blends word1 and word2. Every linguistic dead end resolves to a
// Result; the error is non-nil only when the dictionary data is inconsistent
// (a phoneme without a class).
func (e *Engine) Generate(word1, word2 string) (Result, error) {
	res := Result{Word1: word1, Word2: word2}

	prons1, ok1 := e.lookup.Pronunciations(word1)
	prons2, ok2 := e.lookup.Pronunciations(word2)
	if !ok1 || !ok2 {
		if !ok1 {
			res.Missing = append(res.Missing, word1)
		}
		if !ok2 {
			res.Missing = append(res.Missing, word2)
		}
		return e.fallback(res, KindNotFound, ErrWordNotFound), nil
	}

	cand, found, err := overlap.FindBest(e.classes, prons1, prons2)
	if err != nil {
		return Result{}, fmt.Errorf("matching %q and %q: %w", word1, word2, err)
	}

	if found {
		m := cand.Match
		res.Kind = KindPhonological
		res.Match = &m
		res.First, res.Second = cand.Fragments()
	} else {
		res.Kind = KindNonOverlapping
		res.First, res.Second, err = segment.Split(e.classes, prons1[0], prons2[0])
		if err != nil {
			return Result{}, fmt.Errorf("splitting %q and %q: %w", word1, word2, err)
		}
		if segment.Failed(res.First, res.Second) {
			res.Reversed = true
			res.Second, res.First, err = segment.Split(e.classes, prons2[0], prons1[0])
			if err != nil {
				return Result{}, fmt.Errorf("splitting %q and %q: %w", word2, word1, err)
			}
			if segment.Failed(res.First, res.Second) {
				return e.fallback(res, KindLastResort, ErrSegmentationExhausted), nil
			}
		}
	}

	spelled1, ok1 := e.spell(word1, res.First, res.Reversed)
	spelled2, ok2 := e.spell(word2, res.Second, !res.Reversed)
	if !ok1 || !ok2 {
		if !ok1 {
			res.Unspelled = append(res.Unspelled, word1)
		}
		if !ok2 {
			res.Unspelled = append(res.Unspelled, word2)
		}
		return e.fallback(res, KindUnspellable, ErrUnspellable), nil
	}

	if res.Reversed {
		res.Text = spelled2 + spelled1
	} else {
		res.Text = spelled1 + spelled2
	}

	e.logger.Debug("blended words",
		slog.String("word1", word1),
		slog.String("word2", word2),
		slog.String("kind", res.Kind.String()),
		slog.Bool("reversed", res.Reversed),
		slog.String("result", res.Text))
	return res, nil
}

// spell finds the written form of a fragment within word. An empty spelling
// counts as a failure, since it would drop the word from the blend.
func (e *Engine) spell(word string, fragment phoneme.Pronunciation, anchorEnd bool) (string, bool) {
	text := cases.Fold().String(strings.TrimSpace(word))
	s, ok := e.spellings.Spell(text, fragment, anchorEnd)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

func (e *Engine) fallback(res Result, kind Kind, reason error) Result {
	res.Kind = kind
	res.Reason = reason
	res.Text = LastResort(res.Word1, res.Word2)
	e.logger.Debug("fell back to half-split",
		slog.String("word1", res.Word1),
		slog.String("word2", res.Word2),
		slog.String("kind", kind.String()),
		slog.String("reason", reason.Error()),
		slog.String("result", res.Text))
	return res
}
