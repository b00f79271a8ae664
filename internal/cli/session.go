package cli

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Clawdbot7-epcnum/CarryVault/internal/app"
	"github.com/Clawdbot7-epcnum/CarryVault/internal/config"
)

// newFormatter builds the output formatter for a command invocation.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Diagnostics go to stderr to keep JSON clean
		Verbose:   opts.Verbose,
	}
}

// setupLogging configures the process-wide slog handler from the verbose
// flag. Logs always go to the command's error stream.
func setupLogging(opts *RootOptions, cmd *cobra.Command) {
	logLevel := slog.LevelWarn
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// openSession resolves the configuration and opens the application session.
// The --db flag wins over the config file. The database's parent directory
// is created on demand; if that fails the session opens memory-only.
func openSession(opts *RootOptions, cmd *cobra.Command) (*app.Session, config.Config, error) {
	setupLogging(opts, cmd)

	cfg, err := config.Load(opts.Config)
	if err != nil {
		return nil, config.Config{}, WrapExitError(ExitCommandError, "failed to load config", err)
	}
	if opts.Database != "" {
		cfg.Database = opts.Database
	}

	if dir := filepath.Dir(cfg.Database); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			slog.Warn("cannot create database directory", "dir", dir, "error", err)
		}
	}

	sess, err := app.Open(cmdContext(cmd), cfg.Database, slog.Default(), nil)
	if err != nil {
		return nil, config.Config{}, WrapExitError(ExitCommandError, "failed to open database", err)
	}
	return sess, cfg, nil
}

// cmdContext returns the command's context, falling back to Background for
// direct construction in tests.
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
