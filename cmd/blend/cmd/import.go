package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/f3rmion/blend/internal/store"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load the pronunciation dictionary into the database",
	Long: `Load the CMU Pronouncing Dictionary and its phone set into the database.

The dictionary may be plain text or xz-compressed (.xz). Files whose
BLAKE3 digest matches the previous import are skipped unless --force is
given. Only one import may run against a database at a time.

Examples:
  blend import
  blend import --dict cmudict-0.7b.xz --phones cmudict-0.7b.phones`,
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().String("dict", "", "pronunciation dictionary (default from config)")
	importCmd.Flags().String("phones", "", "phone set (default from config)")
	importCmd.Flags().Bool("force", false, "re-import unchanged files")
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	logger = logger.With(slog.String("component", "import"))

	force, _ := cmd.Flags().GetBool("force")
	dictPath, _ := cmd.Flags().GetString("dict")
	if dictPath == "" {
		dictPath = cfg.Dictionary.Pronunciations
	}
	phonesPath, _ := cmd.Flags().GetString("phones")
	phonesExplicit := phonesPath != ""
	if !phonesExplicit {
		phonesPath = cfg.Dictionary.Phones
	}

	s, err := store.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := cmd.Context()
	var results []store.ImportResult

	// The phone set is optional: without one the CMU set is used.
	if _, statErr := os.Stat(phonesPath); statErr == nil || phonesExplicit {
		res, err := s.Import(ctx, store.SourcePhones, phonesPath, force)
		if err != nil {
			return err
		}
		results = append(results, res)
	} else if errors.Is(statErr, fs.ErrNotExist) {
		logger.Info("no phone set found, using the CMU phone set", slog.String("path", phonesPath))
	}

	res, err := s.Import(ctx, store.SourcePronunciations, dictPath, force)
	if err != nil {
		return err
	}
	results = append(results, res)

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		status, entries := "imported", strconv.Itoa(r.Entries)
		if r.Skipped {
			status, entries = "unchanged", "-"
		}
		logger.Debug("source processed",
			slog.String("source", string(r.Source)),
			slog.String("path", r.Path),
			slog.String("status", status))
		rows = append(rows, []string{string(r.Source), r.Path, entries, status, r.Digest[:12]})
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderTable(
		[]string{"Source", "Path", "Entries", "Status", "BLAKE3"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
	))

	counts, err := s.Counts(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%d words, %d pronunciations, %d phones in %s\n",
		counts.Words, counts.Pronunciations, counts.Phones, s.Path())
	return nil
}
