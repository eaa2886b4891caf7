package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"
)

const testDict = `;;; test dictionary
MOTOR  M OW1 T ER0
HOTEL  HH OW0 T EH1 L
READ  R EH1 D
READ(1)  R IY1 D
`

const testPhones = "AA\tvowel\nD\tstop\nEH\tvowel\nER\tvowel\nHH\taspirate\nIY\tvowel\n" +
	"L\tliquid\nM\tnasal\nOW\tvowel\nR\tliquid\nT\tstop\n"

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "blend.db"))
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpenReopen(t *testing.T) {
	s, dir := openTestStore(t)
	if err := s.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	again, err := Open(filepath.Join(dir, "blend.db"))
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer again.Close()
}

func TestImportAndSnapshot(t *testing.T) {
	ctx := context.Background()
	s, dir := openTestStore(t)

	dictPath := writeFile(t, dir, "dict.txt", testDict)
	phonesPath := writeFile(t, dir, "phones.txt", testPhones)

	res, err := s.Import(ctx, SourcePronunciations, dictPath, false)
	if err != nil {
		t.Fatalf("Import dict error: %v", err)
	}
	if res.Entries != 4 || res.Skipped {
		t.Errorf("dict result = %+v, want 4 entries, not skipped", res)
	}
	if _, err := s.Import(ctx, SourcePhones, phonesPath, false); err != nil {
		t.Fatalf("Import phones error: %v", err)
	}

	counts, err := s.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts error: %v", err)
	}
	if counts != (Counts{Words: 3, Pronunciations: 4, Phones: 11}) {
		t.Errorf("Counts = %+v", counts)
	}

	lex, err := s.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot error: %v", err)
	}
	prons, ok := lex.Pronunciations("Read")
	if !ok || len(prons) != 2 {
		t.Fatalf("Pronunciations(read) = %v, %v", prons, ok)
	}
	if prons[0].String() != "R EH D" || prons[1].String() != "R IY D" {
		t.Errorf("variants = %v, want [R EH D] then [R IY D]", prons)
	}
	if cls, err := lex.Classify("HH"); err != nil || cls.String() != "consonant" {
		t.Errorf("Classify(HH) = %v, %v", cls, err)
	}

	direct, err := s.Pronunciations(ctx, "HOTEL")
	if err != nil || len(direct) != 1 || direct[0].String() != "HH OW T EH L" {
		t.Errorf("store Pronunciations(HOTEL) = %v, %v", direct, err)
	}
}

func TestImportSkipsUnchanged(t *testing.T) {
	ctx := context.Background()
	s, dir := openTestStore(t)
	dictPath := writeFile(t, dir, "dict.txt", testDict)

	if _, err := s.Import(ctx, SourcePronunciations, dictPath, false); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		force       bool
		wantSkipped bool
	}{
		{"unchanged", false, true},
		{"forced", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.Import(ctx, SourcePronunciations, dictPath, tt.force)
			if err != nil {
				t.Fatalf("Import error: %v", err)
			}
			if res.Skipped != tt.wantSkipped {
				t.Errorf("Skipped = %v, want %v", res.Skipped, tt.wantSkipped)
			}
		})
	}

	sources, err := s.Sources(ctx)
	if err != nil {
		t.Fatalf("Sources error: %v", err)
	}
	if len(sources) != 1 || sources[0].Name != SourcePronunciations || sources[0].Entries != 4 {
		t.Errorf("Sources = %+v", sources)
	}
	if sources[0].ImportedAt.IsZero() {
		t.Error("ImportedAt was not recorded")
	}
}

func TestImportReplacesPrevious(t *testing.T) {
	ctx := context.Background()
	s, dir := openTestStore(t)

	first := writeFile(t, dir, "first.txt", testDict)
	second := writeFile(t, dir, "second.txt", "LUNCH  L AH1 N CH\n")

	for _, path := range []string{first, second} {
		if _, err := s.Import(ctx, SourcePronunciations, path, false); err != nil {
			t.Fatal(err)
		}
	}

	counts, err := s.Counts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if counts.Words != 1 || counts.Pronunciations != 1 {
		t.Errorf("Counts = %+v, want only lunch", counts)
	}
}

func TestImportMalformedKeepsData(t *testing.T) {
	ctx := context.Background()
	s, dir := openTestStore(t)

	good := writeFile(t, dir, "good.txt", testDict)
	bad := writeFile(t, dir, "bad.txt", "LONELY\n")

	if _, err := s.Import(ctx, SourcePronunciations, good, false); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Import(ctx, SourcePronunciations, bad, false); err == nil {
		t.Fatal("expected a parse error")
	}

	counts, err := s.Counts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if counts.Pronunciations != 4 {
		t.Errorf("Pronunciations = %d, want the previous 4", counts.Pronunciations)
	}
}

func TestImportLocked(t *testing.T) {
	s, dir := openTestStore(t)
	dictPath := writeFile(t, dir, "dict.txt", testDict)

	other := flock.New(s.Path() + ".lock")
	ok, err := other.TryLock()
	if err != nil || !ok {
		t.Fatalf("TryLock = %v, %v", ok, err)
	}
	defer other.Unlock()

	_, err = s.Import(context.Background(), SourcePronunciations, dictPath, false)
	if !errors.Is(err, ErrImportLocked) {
		t.Errorf("Import error = %v, want ErrImportLocked", err)
	}
}

func TestSnapshotDefaultsPhones(t *testing.T) {
	ctx := context.Background()
	s, dir := openTestStore(t)
	dictPath := writeFile(t, dir, "dict.txt", testDict)

	if _, err := s.Import(ctx, SourcePronunciations, dictPath, false); err != nil {
		t.Fatal(err)
	}
	lex, err := s.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot error: %v", err)
	}
	if lex.Phones().Len() != 39 {
		t.Errorf("phones = %d, want the 39-phone CMU set", lex.Phones().Len())
	}

	phones, err := s.Phones(ctx)
	if err != nil || phones.Len() != 39 {
		t.Errorf("Phones = %v, %v; want the CMU set", phones, err)
	}

	if _, err := s.Import(ctx, SourcePhones, writeFile(t, dir, "phones.txt", testPhones), false); err != nil {
		t.Fatal(err)
	}
	phones, err = s.Phones(ctx)
	if err != nil || phones.Len() != 11 {
		t.Errorf("Phones after import = %v, %v; want 11 codes", phones, err)
	}
}

func TestDigest(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "alpha")
	b := writeFile(t, dir, "b.txt", "alpha")
	c := writeFile(t, dir, "c.txt", "beta")

	da, err := Digest(a)
	if err != nil {
		t.Fatal(err)
	}
	db, _ := Digest(b)
	dc, _ := Digest(c)
	if da != db {
		t.Errorf("equal content gave %s and %s", da, db)
	}
	if da == dc {
		t.Error("different content gave the same digest")
	}
	if len(da) != 64 {
		t.Errorf("digest length = %d, want 64 hex chars", len(da))
	}
}
