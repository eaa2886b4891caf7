package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/blend/internal/config"
	"github.com/f3rmion/blend/internal/store"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize blend configuration and database",
	Long: `Initialize blend in your config directory.

This writes config.yaml with default paths and creates an empty
pronunciation database. Put the CMU dictionary (cmudict.dict, optionally
xz-compressed) and its phone set (cmudict.phones) where the config points,
then run 'blend import'.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	path := getConfigPath()

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	cfg := config.Default()
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.Database = db
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}

	s, err := store.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer s.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initializing blend in %s\n\n", filepath.Dir(path))
	fmt.Fprintf(out, "  Created %s\n", path)
	fmt.Fprintf(out, "  Created %s\n", cfg.Database)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintf(out, "  1. Copy the CMU dictionary to %s\n", cfg.Dictionary.Pronunciations)
	fmt.Fprintf(out, "  2. Copy the phone set to %s\n", cfg.Dictionary.Phones)
	fmt.Fprintln(out, "  3. Run 'blend import', then 'blend mix breakfast lunch'")
	return nil
}
