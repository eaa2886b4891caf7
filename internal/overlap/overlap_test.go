package overlap

import (
	"testing"

	"github.com/f3rmion/blend/internal/phoneme"
)

// p is a shorthand to build a pronunciation.
func p(s string) phoneme.Pronunciation { return phoneme.ParsePronunciation(s) }

func TestLongest(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want Match
		ok   bool
	}{
		{"shared_prefix", "K AE T", "K AE R", Match{0, 0, 2}, true},
		{"middle_run", "M OW T ER", "HH OW T EH L", Match{1, 1, 2}, true},
		{"tie_prefers_earliest_in_a", "S AE T IY", "K T OW AE", Match{1, 3, 1}, true},
		{"tie_prefers_earliest_in_b", "AE", "K AE T AE", Match{0, 1, 1}, true},
		{"disjoint", "K AE T", "D OW G", Match{}, false},
		{"empty", "", "D OW G", Match{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Longest(p(tt.a), p(tt.b))
			if ok != tt.ok {
				t.Fatalf("Longest() ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Longest() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAdmissible(t *testing.T) {
	table := phoneme.DefaultTable()

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"starts_both_words", "K AE T", "K AE R", false},
		{"starts_first_finishes_second", "S T AA R", "F AE S T", false},
		{"finishes_both_words", "K AE T S", "B AE T S", false},
		{"no_vowel_leaving_first", "S P R IY", "AH P R T IY", false},
		{"no_vowel_entering_second", "AE M S K T IY", "B AH S K", false},
		{"too_much_discarded", "S AE T IY", "K T OW AE", false},
		{"motor_hotel", "M OW T ER", "HH OW T EH L", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := p(tt.a), p(tt.b)
			m, ok := Longest(a, b)
			if !ok {
				t.Fatal("expected a raw match")
			}
			got, err := Admissible(table, a, b, m)
			if err != nil {
				t.Fatalf("Admissible error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Admissible(%+v) = %v, want %v", m, got, tt.want)
			}
		})
	}
}

func TestAdmissibleShortBlend(t *testing.T) {
	// Keeping one phoneme of two four-phoneme words is below (4+4)/2-1.
	table := phoneme.DefaultTable()
	a, b := p("S AE T IY"), p("K T OW AE")
	got, err := Admissible(table, a, b, Match{A: 0, B: 3, Size: 1})
	if err != nil {
		t.Fatalf("Admissible error: %v", err)
	}
	if got {
		t.Error("blend keeping a single phoneme should be rejected")
	}
}

func TestAdmissibleOutOfRange(t *testing.T) {
	table := phoneme.DefaultTable()
	got, err := Admissible(table, p("K AE"), p("K AE"), Match{A: 1, B: 1, Size: 3})
	if err != nil || got {
		t.Errorf("Admissible(out of range) = %v, %v; want false, nil", got, err)
	}
}

func TestAdmissibleUnknownCode(t *testing.T) {
	table := phoneme.NewTable(map[phoneme.Code]string{"K": "stop"})
	_, err := Admissible(table, p("M K"), p("D K Z"), Match{A: 1, B: 1, Size: 1})
	if err == nil {
		t.Error("expected an error for codes missing from the phone set")
	}
}

func TestFindBest(t *testing.T) {
	table := phoneme.DefaultTable()

	t.Run("largest_wins", func(t *testing.T) {
		firsts := []phoneme.Pronunciation{p("M OW D ER"), p("M OW T ER")}
		seconds := []phoneme.Pronunciation{p("HH OW T EH L")}
		got, ok, err := FindBest(table, firsts, seconds)
		if err != nil || !ok {
			t.Fatalf("FindBest() = %v, %v", ok, err)
		}
		if got.Match.Size != 2 || !got.First.Equal(firsts[1]) {
			t.Errorf("FindBest() = %+v, want size 2 from second alternative", got)
		}
	})

	t.Run("first_pair_wins_ties", func(t *testing.T) {
		firsts := []phoneme.Pronunciation{p("M OW T ER")}
		seconds := []phoneme.Pronunciation{p("HH OW T EH L"), p("HH OW T EH L IY")}
		got, ok, err := FindBest(table, firsts, seconds)
		if err != nil || !ok {
			t.Fatalf("FindBest() = %v, %v", ok, err)
		}
		if !got.Second.Equal(seconds[0]) {
			t.Errorf("FindBest().Second = %v, want %v", got.Second, seconds[0])
		}
	})

	t.Run("rejected_only", func(t *testing.T) {
		_, ok, err := FindBest(table,
			[]phoneme.Pronunciation{p("K AE T")},
			[]phoneme.Pronunciation{p("K AE R")})
		if err != nil || ok {
			t.Errorf("FindBest() = %v, %v; want no match", ok, err)
		}
	})

	t.Run("disjoint", func(t *testing.T) {
		_, ok, err := FindBest(table,
			[]phoneme.Pronunciation{p("K AE T")},
			[]phoneme.Pronunciation{p("D OW G")})
		if err != nil || ok {
			t.Errorf("FindBest() = %v, %v; want no match", ok, err)
		}
	})
}

func TestFragments(t *testing.T) {
	c := Candidate{
		Match:  Match{A: 1, B: 1, Size: 2},
		First:  p("M OW T ER"),
		Second: p("HH OW T EH L"),
	}
	head, tail := c.Fragments()
	if !head.Equal(p("M OW T")) {
		t.Errorf("head = %v, want M OW T", head)
	}
	if !tail.Equal(p("EH L")) {
		t.Errorf("tail = %v, want EH L", tail)
	}
}
