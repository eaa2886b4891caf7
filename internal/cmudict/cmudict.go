// Package cmudict reads the CMU Pronouncing Dictionary and its phone set.
package cmudict

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/f3rmion/blend/internal/phoneme"
	"github.com/ulikunitz/xz"
)

var (
	// variantSuffix marks alternate entries such as "READ(1)".
	variantSuffix = regexp.MustCompile(`\(\d+\)$`)
	// phonemeSymbol drops stress digits: "AH0" -> "AH".
	phonemeSymbol = regexp.MustCompile(`[A-Z]+`)
)

// Entry is one dictionary line.
type Entry struct {
	Word          string
	Pronunciation phoneme.Pronunciation
}

// Phone is one phone-set line.
type Phone struct {
	Code   phoneme.Code
	Manner string
}

// ReadDict parses dictionary lines ("WORD  PH1 PH2 ...") and calls fn for each
// entry. Comment lines start with ";;;". Words are lower-cased and variant
// suffixes are removed, so alternates share the base word.
func ReadDict(r io.Reader, fn func(Entry) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";;;") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return fmt.Errorf("line %d: expected a word and at least one phoneme", lineNum)
		}

		word := variantSuffix.ReplaceAllString(strings.ToLower(fields[0]), "")
		symbols := phonemeSymbol.FindAllString(strings.Join(fields[1:], " "), -1)
		if len(symbols) == 0 {
			return fmt.Errorf("line %d: no phonemes for %q", lineNum, word)
		}

		pron := make(phoneme.Pronunciation, len(symbols))
		for i, s := range symbols {
			pron[i] = phoneme.Code(s)
		}

		if err := fn(Entry{Word: word, Pronunciation: pron}); err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading dictionary: %w", err)
	}
	return nil
}

// ReadPhones parses phone-set lines ("AA<TAB>vowel").
func ReadPhones(r io.Reader, fn func(Phone) error) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return fmt.Errorf("line %d: expected 2 fields, got %d", lineNum, len(fields))
		}

		p := Phone{
			Code:   phoneme.Code(strings.ToUpper(fields[0])),
			Manner: strings.ToLower(fields[1]),
		}
		if err := fn(p); err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading phones: %w", err)
	}
	return nil
}

// Open opens a dictionary file, decompressing it when the name ends in ".xz".
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if !strings.HasSuffix(strings.ToLower(path), ".xz") {
		return f, nil
	}

	xr, err := xz.NewReader(bufio.NewReader(f))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening xz stream %s: %w", path, err)
	}
	return &xzFile{Reader: xr, file: f}, nil
}

type xzFile struct {
	*xz.Reader
	file *os.File
}

func (x *xzFile) Close() error {
	return x.file.Close()
}
