package phoneme

import (
	"errors"
	"testing"
)

func TestParsePronunciation(t *testing.T) {
	p := ParsePronunciation("k ae  T")
	want := Pronunciation{"K", "AE", "T"}
	if !p.Equal(want) {
		t.Fatalf("ParsePronunciation = %v, want %v", p, want)
	}
	if p.String() != "K AE T" {
		t.Errorf("String() = %q, want %q", p.String(), "K AE T")
	}
	if ParsePronunciation("   ") != nil {
		t.Error("blank input should parse to nil")
	}
}

func TestSliceBounds(t *testing.T) {
	p := Pronunciation{"B", "R", "EH", "K"}

	tests := []struct {
		name string
		i, j int
		want Pronunciation
		ok   bool
	}{
		{"full", 0, 4, Pronunciation{"B", "R", "EH", "K"}, true},
		{"prefix", 0, 2, Pronunciation{"B", "R"}, true},
		{"empty_at_end", 4, 4, Pronunciation{}, true},
		{"negative", -1, 2, nil, false},
		{"past_end", 2, 5, nil, false},
		{"inverted", 3, 1, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.Slice(tt.i, tt.j)
			if ok != tt.ok {
				t.Fatalf("Slice(%d, %d) ok = %v, want %v", tt.i, tt.j, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("Slice(%d, %d) = %v, want %v", tt.i, tt.j, got, tt.want)
			}
		})
	}
}

func TestSliceIsOwned(t *testing.T) {
	p := Pronunciation{"K", "AE", "T"}
	s, _ := p.Slice(0, 2)
	s[0] = "B"
	if p[0] != "K" {
		t.Errorf("mutating a slice changed the source: %v", p)
	}
}

func TestAt(t *testing.T) {
	p := Pronunciation{"K", "AE"}
	if c, ok := p.At(1); !ok || c != "AE" {
		t.Errorf("At(1) = %q, %v", c, ok)
	}
	if _, ok := p.At(2); ok {
		t.Error("At(2) should be out of range")
	}
}

func TestClassify(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		code Code
		want Class
	}{
		{"AE", Vowel},
		{"ER", Vowel},
		{"K", Consonant},
		{"W", Consonant},
		{"HH", Consonant},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			got, err := table.Classify(tt.code)
			if err != nil {
				t.Fatalf("Classify(%s) error: %v", tt.code, err)
			}
			if got != tt.want {
				t.Errorf("Classify(%s) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestClassifyIsStable(t *testing.T) {
	table := DefaultTable()
	first, _ := table.Classify("IY")
	for i := 0; i < 100; i++ {
		got, _ := table.Classify("IY")
		if got != first {
			t.Fatalf("call %d: Classify(IY) = %v, want %v", i, got, first)
		}
	}
}

func TestClassifyUnknown(t *testing.T) {
	_, err := DefaultTable().Classify("QX")
	if !errors.Is(err, ErrUnknownCode) {
		t.Errorf("Classify(QX) error = %v, want ErrUnknownCode", err)
	}
}

func TestVowelIndices(t *testing.T) {
	table := DefaultTable()
	// breakfast
	p := ParsePronunciation("B R EH K F AH S T")
	got, err := VowelIndices(table, p)
	if err != nil {
		t.Fatalf("VowelIndices error: %v", err)
	}
	want := []int{2, 5}
	if len(got) != len(want) {
		t.Fatalf("VowelIndices = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("VowelIndices[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	has, _ := HasVowel(table, ParsePronunciation("S T"))
	if has {
		t.Error("S T should have no vowel")
	}
}

func TestNewTableNormalizes(t *testing.T) {
	table := NewTable(map[Code]string{"aa": " Vowel "})
	if !table.Has("AA") {
		t.Fatal("code should be upper-cased")
	}
	if m, _ := table.Manner("AA"); m != "vowel" {
		t.Errorf("Manner(AA) = %q, want vowel", m)
	}
	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1", table.Len())
	}
}
