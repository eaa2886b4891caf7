package store

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/f3rmion/blend/internal/cmudict"
	"github.com/zeebo/blake3"
)

// ErrImportLocked is returned when another process is importing into the
// same database.
var ErrImportLocked = errors.New("another import holds the database lock")

// Source names the kind of file being imported.
type Source string

const (
	SourcePronunciations Source = "pronunciations"
	SourcePhones         Source = "phones"
)

// ImportResult describes one imported file.
type ImportResult struct {
	Source  Source
	Path    string
	Digest  string
	Entries int
	Skipped bool // Digest matched the previous import
}

// SourceRecord is a row of the sources table.
type SourceRecord struct {
	Name       Source
	Path       string
	Digest     string
	Entries    int
	ImportedAt time.Time
}

// Import loads a dictionary or phone-set file, replacing what the previous
// import of the same source stored. Unchanged files are skipped unless force
// is set.
func (s *Store) Import(ctx context.Context, src Source, path string, force bool) (ImportResult, error) {
	res := ImportResult{Source: src, Path: path}

	ok, err := s.lock.TryLock()
	if err != nil {
		return res, fmt.Errorf("acquire import lock: %w", err)
	}
	if !ok {
		return res, ErrImportLocked
	}
	defer func() { _ = s.lock.Unlock() }()

	res.Digest, err = Digest(path)
	if err != nil {
		return res, err
	}

	if !force {
		prev, found, err := s.SourceDigest(ctx, src)
		if err != nil {
			return res, err
		}
		if found && prev == res.Digest {
			res.Skipped = true
			return res, nil
		}
	}

	rc, err := cmudict.Open(path)
	if err != nil {
		return res, err
	}
	defer rc.Close()

	var load func(context.Context, *sql.Tx) error
	switch src {
	case SourcePronunciations:
		var entries []cmudict.Entry
		err = cmudict.ReadDict(rc, func(e cmudict.Entry) error {
			entries = append(entries, e)
			return nil
		})
		res.Entries = len(entries)
		load = func(ctx context.Context, tx *sql.Tx) error { return insertPronunciations(ctx, tx, entries) }
	case SourcePhones:
		var phones []cmudict.Phone
		err = cmudict.ReadPhones(rc, func(p cmudict.Phone) error {
			phones = append(phones, p)
			return nil
		})
		res.Entries = len(phones)
		load = func(ctx context.Context, tx *sql.Tx) error { return insertPhones(ctx, tx, phones) }
	default:
		return res, fmt.Errorf("unknown source %q", src)
	}
	if err != nil {
		return res, fmt.Errorf("parsing %s: %w", path, err)
	}

	err = s.withTx(ctx, func(tx *sql.Tx) error {
		if err := load(ctx, tx); err != nil {
			return err
		}
		return recordSource(ctx, tx, res)
	})
	if err != nil {
		return res, fmt.Errorf("importing %s from %s: %w", src, path, err)
	}
	return res, nil
}

func insertPronunciations(ctx context.Context, tx *sql.Tx, entries []cmudict.Entry) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM pronunciations"); err != nil {
		return fmt.Errorf("clearing pronunciations: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO pronunciations (word, variant, phonemes) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	variants := make(map[string]int)
	for _, e := range entries {
		variant := variants[e.Word]
		variants[e.Word] = variant + 1
		if _, err := stmt.ExecContext(ctx, e.Word, variant, e.Pronunciation.String()); err != nil {
			return fmt.Errorf("inserting %q: %w", e.Word, err)
		}
	}
	return nil
}

func insertPhones(ctx context.Context, tx *sql.Tx, phones []cmudict.Phone) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM phonemes"); err != nil {
		return fmt.Errorf("clearing phonemes: %w", err)
	}
	for _, p := range phones {
		_, err := tx.ExecContext(ctx,
			"INSERT OR REPLACE INTO phonemes (phoneme, sound_type) VALUES (?, ?)",
			string(p.Code), p.Manner)
		if err != nil {
			return fmt.Errorf("inserting %q: %w", p.Code, err)
		}
	}
	return nil
}

func recordSource(ctx context.Context, tx *sql.Tx, res ImportResult) error {
	_, err := tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO sources (name, path, digest, entries, imported_at)
		 VALUES (?, ?, ?, ?, ?)`,
		string(res.Source), res.Path, res.Digest, res.Entries,
		time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("recording source: %w", err)
	}
	return nil
}

// SourceDigest returns the digest recorded by the last import of src.
func (s *Store) SourceDigest(ctx context.Context, src Source) (string, bool, error) {
	var digest string
	err := s.db.QueryRowContext(ctx,
		"SELECT digest FROM sources WHERE name = ?", string(src)).Scan(&digest)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading source digest: %w", err)
	}
	return digest, true, nil
}

// Sources lists every recorded import.
func (s *Store) Sources(ctx context.Context) ([]SourceRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name, path, digest, entries, imported_at FROM sources ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("listing sources: %w", err)
	}
	defer rows.Close()

	var out []SourceRecord
	for rows.Next() {
		var (
			rec      SourceRecord
			name, at string
		)
		if err := rows.Scan(&name, &rec.Path, &rec.Digest, &rec.Entries, &at); err != nil {
			return nil, fmt.Errorf("scanning source: %w", err)
		}
		rec.Name = Source(name)
		rec.ImportedAt, _ = time.Parse(time.RFC3339Nano, at)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Digest returns the BLAKE3 hash of the file at path, hex encoded.
func Digest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	h := blake3.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
