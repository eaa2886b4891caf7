// Package orthography rebuilds written spellings for phoneme fragments by
// matching candidate letter groups against the source word.
package orthography

import (
	"sort"
	"strings"

	"github.com/f3rmion/blend/internal/phoneme"
)

// Table maps a phoneme to the letter groups that can spell it. An empty
// string means the phoneme may be silent in writing. Order is enumeration
// order only.
type Table map[phoneme.Code][]string

// english holds the spellings for the CMU phone set.
var english = Table{
	"AA": {"augh", "au", "ou", "o", "a", "al"},
	"AE": {"a"},
	"AH": {"u", "a", "o", "e", "i", "y", "ou", ""},
	"AO": {"augh", "o", "aw", "a", "au", "ou"},
	"AW": {"ou", "ow"},
	"AY": {"igh", "ie", "i", "aye", "uy", "y", "ye"},
	"B":  {"be", "bb", "b"},
	"CH": {"tch", "ch", "t"},
	"D":  {"d", "dd", "tt", "de", "ed"},
	"DH": {"th", "the"},
	"EH": {"e", "a", "ie"},
	"ER": {"er", "ar", "ir", "or", "ur", "ure", "r"},
	"EY": {"ay", "ai", "a", "eigh"},
	"F":  {"gh", "ff", "f", "fe"},
	"G":  {"gg", "g", "gue"},
	"HH": {"h"},
	"IH": {"i", "hi", "y", "a", "e"},
	"IY": {"ea", "ee", "ie", "i", "y", "ei", "e"},
	"JH": {"g", "ge", "j"},
	"K":  {"k", "ck", "ch", "c", "kh", "kk", "ke", "x"},
	"L":  {"ll", "l", "le", "ol"},
	"M":  {"mm", "m", "mb", "mn", "me"},
	"N":  {"nn", "kn", "mn", "gn", "n", "ne"},
	"NG": {"ng", "ngue"},
	"OW": {"oa", "owe", "ow", "oe", "aoh", "oh", "o", "hoa"},
	"OY": {"oi", "oy", "aw"},
	"P":  {"pp", "pe", "p"},
	"R":  {"rr", "re", "wr", "r"},
	"S":  {"sc", "ss", "ps", "se", "ce", "c", "s", ""},
	"SH": {"sh", "sch", "ti", "ci"},
	"T":  {"tt", "te", "bt", "t"},
	"TH": {"th"},
	"UH": {"oo", "u"},
	"UW": {"ui", "oo", "ue", "ew", "ewe", "u", "ieu", "eau", "wo"},
	"V":  {"vv", "ve", "v"},
	"W":  {"wh", "we", "w", "u"},
	"Y":  {"yy", "y", ""},
	"Z":  {"zz", "ze", "se", "s", "z"},
	"ZH": {"si", "s"},
}

// DefaultTable returns a copy of the English spelling table.
func DefaultTable() Table {
	return Merge(english, nil)
}

// Merge returns a new table holding base with extra's spellings appended.
// Spellings already listed for a phoneme are not repeated. Neither input is
// modified.
func Merge(base Table, extra map[string][]string) Table {
	out := make(Table, len(base)+len(extra))
	for code, spellings := range base {
		out[code] = append([]string(nil), spellings...)
	}

	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		code := phoneme.Code(strings.ToUpper(strings.TrimSpace(k)))
		for _, s := range extra[k] {
			s = strings.ToLower(strings.TrimSpace(s))
			if !contains(out[code], s) {
				out[code] = append(out[code], s)
			}
		}
	}
	return out
}

// Covers reports whether every code in p has at least one spelling.
func (t Table) Covers(p phoneme.Pronunciation) bool {
	for _, code := range p {
		if len(t[code]) == 0 {
			return false
		}
	}
	return true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
