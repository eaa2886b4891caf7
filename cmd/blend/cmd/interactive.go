package cmd

import (
	"fmt"

	"github.com/f3rmion/blend/internal/logging"
	"github.com/f3rmion/blend/internal/tui"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Launch interactive TUI",
	Long: `Launch an interactive terminal UI for blending words.

Controls:
  Enter    Blend the two words
  Tab      Switch between the word fields
  Ctrl+Y   Copy the result
  Ctrl+T   Show the phoneme trace
  Ctrl+L   Clear the history
  Esc      Quit`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Log lines would tear the alternate screen.
	engine, _, err := newEngine(cmd.Context(), cfg, logging.NewNop())
	if err != nil {
		return err
	}

	if err := tui.Run(engine); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
