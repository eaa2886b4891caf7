package cmd

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/f3rmion/blend/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve blends over HTTP",
	Long: `Serve blends over HTTP.

Endpoints:
  POST /answer   {"word1": "motor", "word2": "hotel"}
  GET  /healthz

The dictionary is loaded once at startup and shared by all requests.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, lex, err := newEngine(ctx, cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("dictionary ready", slog.Int("words", lex.Len()))

	srv := server.New(engine, logger.With(slog.String("component", "server")))
	if err := srv.Run(ctx, cfg.Server.Addr); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

