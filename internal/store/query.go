package store

import (
	"context"
	"fmt"

	"github.com/f3rmion/blend/internal/lexicon"
	"github.com/f3rmion/blend/internal/phoneme"
)

// Counts summarizes the database contents.
type Counts struct {
	Words          int
	Pronunciations int
	Phones         int
}

// Snapshot loads the whole database into an immutable lexicon. When no phone
// set was imported the lexicon falls back to the CMU phone set.
func (s *Store) Snapshot(ctx context.Context) (*lexicon.Lexicon, error) {
	b := lexicon.NewBuilder()

	manners, err := s.phoneManners(ctx)
	if err != nil {
		return nil, err
	}
	for code, manner := range manners {
		b.AddPhone(code, manner)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT word, phonemes FROM pronunciations ORDER BY word, variant")
	if err != nil {
		return nil, fmt.Errorf("loading pronunciations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var word, pron string
		if err := rows.Scan(&word, &pron); err != nil {
			return nil, fmt.Errorf("scanning pronunciation: %w", err)
		}
		b.Add(word, phoneme.ParsePronunciation(pron))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading pronunciations: %w", err)
	}

	return b.Build()
}

// Phones returns the imported phone set, or the CMU phone set when none was
// imported.
func (s *Store) Phones(ctx context.Context) (*phoneme.Table, error) {
	manners, err := s.phoneManners(ctx)
	if err != nil {
		return nil, err
	}
	if len(manners) == 0 {
		return phoneme.DefaultTable(), nil
	}
	return phoneme.NewTable(manners), nil
}

func (s *Store) phoneManners(ctx context.Context) (map[phoneme.Code]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT phoneme, sound_type FROM phonemes")
	if err != nil {
		return nil, fmt.Errorf("loading phonemes: %w", err)
	}
	defer rows.Close()

	manners := make(map[phoneme.Code]string)
	for rows.Next() {
		var code, manner string
		if err := rows.Scan(&code, &manner); err != nil {
			return nil, fmt.Errorf("scanning phoneme: %w", err)
		}
		manners[phoneme.Code(code)] = manner
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading phonemes: %w", err)
	}
	return manners, nil
}

// Pronunciations returns the stored pronunciations of one word in variant order.
func (s *Store) Pronunciations(ctx context.Context, word string) ([]phoneme.Pronunciation, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT phonemes FROM pronunciations WHERE word = ? ORDER BY variant",
		lexicon.Normalize(word))
	if err != nil {
		return nil, fmt.Errorf("looking up %q: %w", word, err)
	}
	defer rows.Close()

	var out []phoneme.Pronunciation
	for rows.Next() {
		var pron string
		if err := rows.Scan(&pron); err != nil {
			return nil, fmt.Errorf("scanning pronunciation: %w", err)
		}
		out = append(out, phoneme.ParsePronunciation(pron))
	}
	return out, rows.Err()
}

// Counts reports how many words, pronunciations and phones are stored.
func (s *Store) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	err := s.db.QueryRowContext(ctx,
		`SELECT
			(SELECT COUNT(DISTINCT word) FROM pronunciations),
			(SELECT COUNT(1) FROM pronunciations),
			(SELECT COUNT(1) FROM phonemes)`,
	).Scan(&c.Words, &c.Pronunciations, &c.Phones)
	if err != nil {
		return Counts{}, fmt.Errorf("counting rows: %w", err)
	}
	return c, nil
}
