package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/notifier/internal/config"
	"github.com/vango-dev/notifier/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		errors.Fprint(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "notifier",
		Short: "Render and preview toast notifications",
		Long: `Notifier shows transient toast notifications anchored to one of
nine screen positions and renders them to HTML.

  • Built-in error, warning, success and info kinds
  • Custom kinds themed from notifier.json
  • Auto-dismiss with an optional duration bar`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		previewCmd(),
		showCmd(),
		versionCmd(),
	)
	return root
}

// loadConfig reads path, or the defaults when path is empty. Environment
// overrides apply in both cases.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.FromEnv()
	}
	return config.LoadFile(path)
}

func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}
