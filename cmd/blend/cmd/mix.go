package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/f3rmion/blend/internal/blend"
	"github.com/f3rmion/blend/internal/lexicon"
	"github.com/f3rmion/blend/internal/server"
	"github.com/spf13/cobra"
)

var mixCmd = &cobra.Command{
	Use:   "mix <word1> <word2>",
	Short: "Blend two words",
	Long: `Blend two words into a portmanteau.

Examples:
  blend mix motor hotel        # motel
  blend mix breakfast lunch    # brunch
  blend mix --explain eye bat  # show the phoneme fragments used`,
	Args: cobra.ExactArgs(2),
	RunE: runMix,
}

func init() {
	rootCmd.AddCommand(mixCmd)
	mixCmd.Flags().Bool("json", false, "print the result as JSON")
	mixCmd.Flags().Bool("explain", false, "show pronunciations and fragments")
}

func runMix(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	engine, lex, err := newEngine(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	res, err := engine.Generate(args[0], args[1])
	if err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	explain, _ := cmd.Flags().GetBool("explain")
	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(server.AnswerResponse{
			Kind:        res.Kind.String(),
			Portmanteau: res.Text,
			Message:     res.Message(),
			Reversed:    res.Reversed,
			Missing:     res.Missing,
			Unspellable: res.Unspelled,
		})
	}

	fmt.Fprintln(out, res.Message())
	if explain {
		fmt.Fprintln(out)
		fmt.Fprintln(out, explainTable(res, lex))
	}
	return nil
}

// explainTable shows each word's pronunciations and the fragment it gave.
func explainTable(res blend.Result, lex *lexicon.Lexicon) string {
	rows := [][]string{
		explainRow(res.Word1, res.First.String(), res, lex),
		explainRow(res.Word2, res.Second.String(), res, lex),
	}
	if res.Match != nil {
		rows = append(rows, []string{"shared run", "",
			"size " + strconv.Itoa(res.Match.Size) + " at " +
				strconv.Itoa(res.Match.A) + "/" + strconv.Itoa(res.Match.B)})
	}
	return renderTable([]string{"Word", "Pronunciations", "Fragment"}, rows, nil)
}

func explainRow(word, fragment string, res blend.Result, lex *lexicon.Lexicon) []string {
	prons := "(not in dictionary)"
	if list, ok := lex.Pronunciations(word); ok {
		prons = ""
		for i, p := range list {
			if i > 0 {
				prons += "\n"
			}
			prons += p.String()
		}
	}
	if !res.Blended() {
		fragment = "-"
	}
	return []string{word, prons, fragment}
}
