package main

import (
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/notifier/internal/config"
	"github.com/vango-dev/notifier/internal/errors"
	"github.com/vango-dev/notifier/pkg/dom"
	"github.com/vango-dev/notifier/pkg/notifier"
	"github.com/vango-dev/notifier/pkg/render"
	"github.com/vango-dev/notifier/pkg/style"
	"github.com/vango-dev/notifier/pkg/timer"
)

func previewCmd() *cobra.Command {
	var (
		configPath string
		out        string
		pretty     bool
		watch      bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a page with one notification per position",
		Long: `Render a standalone HTML page showing a notification at each of the
nine positions. Kinds cycle through the built-in kinds followed by any
custom kinds from the config file.

Examples:
  notifier preview > preview.html
  notifier preview --config notifier.json --out preview.html --pretty
  notifier preview --config notifier.json --out preview.html --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch && (configPath == "" || out == "") {
				return errors.New("N040").
					WithDetail("--watch needs both --config and --out")
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if err := writePreview(cmd, out, cfg, pretty); err != nil {
				return err
			}
			if !watch {
				return nil
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			logger := newLogger(cmd.ErrOrStderr(), cfg)
			return watchConfig(ctx, configPath, logger, func() error {
				cfg, err := loadConfig(configPath)
				if err != nil {
					return err
				}
				return writePreview(cmd, out, cfg, pretty)
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to notifier.json")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the page to a file instead of stdout")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the rendered HTML")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-render whenever the config file changes")

	return cmd
}

// writePreview renders to out, or to the command's stdout when out is empty.
func writePreview(cmd *cobra.Command, out string, cfg *config.Config, pretty bool) error {
	if out == "" {
		return runPreview(cmd.OutOrStdout(), cfg, pretty)
	}

	f, err := os.Create(out)
	if err != nil {
		return errors.FromError(err, "N040").WithDetail("cannot create " + out)
	}
	if err := runPreview(f, cfg, pretty); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.FromError(err, "N040").WithDetail("cannot write " + out)
	}
	success(cmd.ErrOrStderr(), "Wrote %s", out)
	return nil
}

// runPreview renders every position on a frozen clock, so timed
// notifications stay visible with an empty duration bar.
func runPreview(w io.Writer, cfg *config.Config, pretty bool) error {
	doc := dom.New()
	style.Register(doc)

	kinds := []notifier.Kind{
		notifier.KindError,
		notifier.KindWarning,
		notifier.KindSuccess,
		notifier.KindInfo,
	}
	custom := make([]string, 0, len(cfg.Kinds))
	for name := range cfg.Kinds {
		custom = append(custom, name)
	}
	sort.Strings(custom)
	for _, name := range custom {
		if _, err := style.RegisterKind(doc, name, cfg.Kinds[name].Theme()); err != nil {
			return err
		}
		kinds = append(kinds, notifier.Kind(name))
	}

	logger := newLogger(os.Stderr, cfg)
	n := notifier.New(doc, timer.NewFake(time.Time{}),
		notifier.WithLogger(logger),
		notifier.WithTickInterval(cfg.Tick()),
	)

	for p := notifier.TopLeft; p <= notifier.BottomRight; p++ {
		n.SetPosition(int(p))
		kind := kinds[(int(p)-1)%len(kinds)]
		if _, err := n.Show(kind, notifier.Settings{
			Title:           string(kind),
			Message:         "Shown at " + p.String(),
			Duration:        cfg.Duration(),
			ShowDurationBar: cfg.ShowDurationBar,
		}); err != nil {
			return err
		}
	}

	r := render.NewRenderer(render.RendererConfig{Pretty: pretty})
	return doc.Render(w, r, "Notifier preview")
}
