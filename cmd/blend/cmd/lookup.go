package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/f3rmion/blend/internal/phoneme"
	"github.com/f3rmion/blend/internal/store"
	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <word>...",
	Short: "Show the pronunciations of words",
	Long: `Show every recorded pronunciation of the given words, with the
consonant/vowel pattern the blender works from.

Examples:
  blend lookup breakfast
  blend lookup read lead`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, err := store.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	phones, err := s.Phones(ctx)
	if err != nil {
		return err
	}
	spellings := cfg.SpellingTable()

	var rows [][]string
	for _, word := range args {
		prons, err := s.Pronunciations(ctx, word)
		if err != nil {
			return err
		}
		if len(prons) == 0 {
			rows = append(rows, []string{word, "", "(not in dictionary)", "", ""})
			continue
		}
		for i, p := range prons {
			pattern, err := classPattern(phones, p)
			if err != nil {
				return err
			}
			spellable := "yes"
			if !spellings.Covers(p) {
				spellable = "no"
			}
			rows = append(rows, []string{word, strconv.Itoa(i + 1), p.String(), pattern, spellable})
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"Word", "#", "Phonemes", "Pattern", "Spellable"},
		rows,
		[]columnAlignment{alignLeft, alignRight},
	))
	return nil
}

// classPattern writes C for each consonant and V for each vowel.
func classPattern(cls phoneme.Classifier, p phoneme.Pronunciation) (string, error) {
	var b strings.Builder
	for i, code := range p {
		c, err := cls.Classify(code)
		if err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		if c == phoneme.Vowel {
			b.WriteByte('V')
		} else {
			b.WriteByte('C')
		}
	}
	return b.String(), nil
}
