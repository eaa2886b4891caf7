// Package cmd contains all CLI commands for the blend tool.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/f3rmion/blend/internal/blend"
	"github.com/f3rmion/blend/internal/config"
	"github.com/f3rmion/blend/internal/lexicon"
	"github.com/f3rmion/blend/internal/logging"
	"github.com/f3rmion/blend/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "blend",
	Short: "Blend two words into a portmanteau by how they sound",
	Long: `blend builds portmanteaus from two English words using their
pronunciations in the CMU Pronouncing Dictionary.

It first looks for a run of phonemes the two words share (motor + hotel
gives motel). Failing that, it joins the first word up to a vowel with the
second word from its first vowel (breakfast + lunch gives brunch). The
phonemes are then spelled back using letters taken from the source words.

Running 'blend' without arguments launches the interactive TUI.`,
	SilenceUsage: true,
	RunE:         runInteractive,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/blend/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "pronunciation database (overrides the config file)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")

	viper.BindPFlag("database", rootCmd.PersistentFlags().Lookup("db"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig resolves the config file path and binds BLEND_* variables.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_path", cfgFile)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_path", filepath.Join(dir, config.FileName))
	}

	viper.SetEnvPrefix("BLEND")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// getConfigPath returns the configuration file path.
func getConfigPath() string {
	return viper.GetString("config_path")
}

// loadConfig reads the config file, falling back to defaults when it does not
// exist, and applies flag and environment overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(getConfigPath())
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default()
	} else if err != nil {
		return nil, err
	}

	if v := viper.GetString("database"); v != "" {
		cfg.Database = v
	}
	if v := viper.GetString("server.addr"); v != "" {
		cfg.Server.Addr = v
	}
	if v := viper.GetString("log.level"); v != "" {
		cfg.Log.Level = v
	}
	if v := viper.GetString("log.format"); v != "" {
		cfg.Log.Format = v
	}
	if viper.GetBool("verbose") {
		cfg.Log.Level = "debug"
	}
	return cfg, cfg.Validate()
}

func newLogger(cfg *config.Config) (*slog.Logger, error) {
	return logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Writer: os.Stderr,
	})
}

// loadLexicon reads the whole pronunciation database into memory.
func loadLexicon(ctx context.Context, cfg *config.Config) (*lexicon.Lexicon, error) {
	s, err := store.Open(cfg.Database)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	lex, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if lex.Len() == 0 {
		return nil, fmt.Errorf("no pronunciations in %s; run 'blend import' first", cfg.Database)
	}
	return lex, nil
}

// newEngine loads the lexicon and builds an engine over it.
func newEngine(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*blend.Engine, *lexicon.Lexicon, error) {
	lex, err := loadLexicon(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("lexicon loaded",
		slog.Int("words", lex.Len()),
		slog.Int("phones", lex.Phones().Len()))

	engine := blend.New(lex, lex, cfg.SpellingTable(),
		blend.WithLogger(logger.With(slog.String("component", "engine"))))
	return engine, lex, nil
}
