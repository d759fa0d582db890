package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/vango-dev/notifier/internal/config"
	"github.com/vango-dev/notifier/internal/errors"
	"github.com/vango-dev/notifier/pkg/dom"
	"github.com/vango-dev/notifier/pkg/notifier"
	"github.com/vango-dev/notifier/pkg/render"
	"github.com/vango-dev/notifier/pkg/style"
	"github.com/vango-dev/notifier/pkg/timer"
)

type showOptions struct {
	configPath string
	kind       string
	title      string
	message    string
	position   int
	duration   time.Duration
	bar        bool
	metrics    bool
	pretty     bool
}

func showCmd() *cobra.Command {
	opts := showOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one notification and print the page as it changes",
		Long: `Show a single notification on a real clock. The document body is
printed when the notification appears and again when it is removed.
Persistent notifications are printed once.

Examples:
  notifier show --kind success --message "Saved"
  notifier show --kind error --title Oops --message "Upload failed" --duration 3s --bar
  notifier show --kind promo --config notifier.json --message "50% off" --metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("position") {
				if opts.position < 1 || opts.position > 9 {
					return errors.New("N040").
						WithDetail(fmt.Sprintf("--position must be 1-9, got %d", opts.position))
				}
				cfg.Position = opts.position
			}
			if cmd.Flags().Changed("duration") {
				if opts.duration < 0 {
					return errors.New("N040").WithDetail("--duration must not be negative")
				}
				cfg.DurationMs = int(opts.duration.Milliseconds())
			}
			if cmd.Flags().Changed("bar") {
				cfg.ShowDurationBar = opts.bar
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return runShow(ctx, cmd.OutOrStdout(), cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to notifier.json")
	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "info", "Notification kind")
	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "Notification title")
	cmd.Flags().StringVarP(&opts.message, "message", "m", "", "Notification message")
	cmd.Flags().IntVarP(&opts.position, "position", "p", config.DefaultPosition, "Position 1-9")
	cmd.Flags().DurationVarP(&opts.duration, "duration", "d", 0, "Auto-dismiss after this duration")
	cmd.Flags().BoolVar(&opts.bar, "bar", false, "Show the duration bar")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "Print metrics after the notification is removed")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Indent the rendered HTML")

	return cmd
}

func runShow(ctx context.Context, w io.Writer, cfg *config.Config, opts showOptions) error {
	logger := newLogger(os.Stderr, cfg)

	doc := dom.New()
	style.Register(doc)
	if theme, ok := cfg.Kinds[opts.kind]; ok {
		if _, err := style.RegisterKind(doc, opts.kind, theme.Theme()); err != nil {
			return err
		}
	}

	registry := prometheus.NewRegistry()
	metrics := notifier.NewMetrics(
		notifier.WithNamespace(cfg.Metrics.Namespace),
		notifier.WithRegistry(registry),
	)

	loop := timer.NewLoop(timer.WithLogger(logger))
	n := notifier.New(doc, loop,
		notifier.WithPosition(cfg.Position),
		notifier.WithLogger(logger),
		notifier.WithMetrics(metrics),
		notifier.WithTickInterval(cfg.Tick()),
	)

	r := render.NewRenderer(render.RendererConfig{Pretty: opts.pretty})
	var renderErr error
	doc.Observe(func(m dom.Mutation) {
		if m.Type == dom.MutationUpdate || renderErr != nil {
			return
		}
		body, err := doc.RenderBody(r)
		if err != nil {
			renderErr = err
			loop.Stop()
			return
		}
		fmt.Fprintf(w, "<!-- %s -->\n%s\n", m.Type, body)
	})

	var showErr error
	loop.Post(func() {
		_, err := n.Custom(opts.kind, notifier.Settings{
			Title:           opts.title,
			Message:         opts.message,
			Duration:        cfg.Duration(),
			ShowDurationBar: cfg.ShowDurationBar,
			OnAfterRemove:   loop.Stop,
		})
		if err != nil {
			showErr = errors.New("N040").
				WithDetail(fmt.Sprintf("--kind %q", opts.kind)).
				WithSuggestion("Kinds start with a letter or underscore and contain only letters, digits, - and _").
				Wrap(err)
			loop.Stop()
			return
		}
		if cfg.Duration() <= 0 {
			loop.Stop()
		}
	})

	if err := loop.Run(ctx); err != nil && !stderrors.Is(err, context.Canceled) {
		return err
	}
	if showErr != nil {
		return showErr
	}
	if renderErr != nil {
		return renderErr
	}

	if opts.metrics {
		return writeMetrics(w, registry)
	}
	return nil
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return errors.FromError(err, "N020")
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return errors.FromError(err, "N020")
		}
	}
	return nil
}
