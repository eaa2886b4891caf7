package lexicon

import (
	"errors"
	"sync"
	"testing"

	"github.com/f3rmion/blend/internal/phoneme"
)

func TestBuilderKeepsInsertionOrder(t *testing.T) {
	b := NewBuilder()
	b.Add("read", phoneme.ParsePronunciation("R IY D"))
	b.Add("read", phoneme.ParsePronunciation("R EH D"))
	if b.Add("READ", phoneme.ParsePronunciation("R IY D")) {
		t.Error("duplicate pronunciation should be ignored")
	}

	lex, err := b.Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	prons, ok := lex.Pronunciations("Read")
	if !ok {
		t.Fatal("read not found")
	}
	if len(prons) != 2 {
		t.Fatalf("read entries = %d, want 2", len(prons))
	}
	if prons[0].String() != "R IY D" || prons[1].String() != "R EH D" {
		t.Errorf("read = %v, want [R IY D] then [R EH D]", prons)
	}
}

func TestLookupMissing(t *testing.T) {
	lex, err := NewBuilder().Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if _, ok := lex.Pronunciations("xyzzy"); ok {
		t.Error("should not find nonexistent word")
	}
}

func TestPronunciationsAreCopies(t *testing.T) {
	b := NewBuilder()
	b.Add("cat", phoneme.ParsePronunciation("K AE T"))
	lex, _ := b.Build()

	prons, _ := lex.Pronunciations("cat")
	prons[0][0] = "B"

	again, _ := lex.Pronunciations("cat")
	if again[0][0] != "K" {
		t.Errorf("lexicon was mutated through a returned value: %v", again[0])
	}
}

func TestBuildRejectsUnknownCodes(t *testing.T) {
	b := NewBuilder()
	b.AddPhone("K", "stop")
	b.AddPhone("AE", "vowel")
	b.Add("cat", phoneme.ParsePronunciation("K AE T"))

	_, err := b.Build()
	if !errors.Is(err, phoneme.ErrUnknownCode) {
		t.Errorf("Build error = %v, want ErrUnknownCode", err)
	}
}

func TestBuildUsesImportedPhones(t *testing.T) {
	b := NewBuilder()
	b.AddPhone("X1", "vowel")
	b.Add("odd", phoneme.Pronunciation{"X1"})
	lex, err := b.Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	c, err := lex.Classify("X1")
	if err != nil || c != phoneme.Vowel {
		t.Errorf("Classify(X1) = %v, %v; want vowel", c, err)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  Lunch ", "lunch"},
		{"STRASSE", "strasse"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConcurrentReads(t *testing.T) {
	b := NewBuilder()
	b.Add("cat", phoneme.ParsePronunciation("K AE T"))
	lex, _ := b.Build()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, ok := lex.Pronunciations("CAT"); !ok {
					t.Error("cat not found")
					return
				}
			}
		}()
	}
	wg.Wait()
}
