package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"rosterview/internal/config"
	"rosterview/internal/logging"
	"rosterview/internal/metrics"
	"rosterview/internal/roster"
	"rosterview/internal/telemetry"
	"rosterview/internal/theme"
	"rosterview/internal/ui"
)

// logOff disables the log file.
const logOff = "off"

// newRootCmd builds the command tree. cfg holds the environment values and
// receives flag overrides.
func newRootCmd(cfg *config.Config) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "rosterview",
		Short: "Browse a crew duty roster in the terminal",
		Long: `rosterview fetches a crew roster and shows it grouped by date.
Press enter on a duty for its details, r to reload, q to quit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), cfg, verbose)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfg.URL, "url", cfg.URL, "roster endpoint ($"+config.EnvURL+")")
	flags.StringVar(&cfg.File, "file", cfg.File, "read the roster from a JSON file instead of --url ($"+config.EnvFile+")")
	flags.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "per-fetch timeout ($"+config.EnvTimeout+" in seconds)")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log file, or \""+logOff+"\" ($"+config.EnvLogFile+")")
	flags.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "serve Prometheus /metrics on this address ($"+config.EnvMetricsAddr+")")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(newPrintCmd(cfg, &verbose))
	return root
}

// services are the process-wide dependencies shared by the commands.
type services struct {
	log     logging.Logger
	tel     *telemetry.Provider
	metrics *metrics.Metrics
	server  *metrics.Server

	done    chan struct{} // closed by close to stop the server watcher
	watched chan struct{} // closed when the server watcher returns
}

func startServices(ctx context.Context, cfg *config.Config, verbose bool) (*services, error) {
	s := &services{log: logging.Nop(), done: make(chan struct{})}
	if cfg.LogFile != "" && cfg.LogFile != logOff {
		l, err := logging.NewFile(cfg.LogFile, verbose)
		if err != nil {
			return nil, err
		}
		s.log = l
	}

	tel, err := telemetry.New(ctx)
	if err != nil {
		return nil, err
	}
	s.tel = tel

	s.metrics = metrics.New("rosterview")
	if cfg.MetricsAddr != "" {
		s.server = metrics.NewServer(s.metrics, cfg.MetricsAddr)
		errc := make(chan error, 1)
		s.server.Start(errc)
		s.watched = make(chan struct{})
		go func() {
			defer close(s.watched)
			select {
			case err := <-errc:
				s.log.Error("metrics server stopped", "addr", cfg.MetricsAddr, "error", err)
			case <-s.done:
			}
		}()
	}

	s.log.Info("rosterview starting",
		"url", cfg.URL, "file", cfg.File, "timeout", cfg.Timeout.String(),
		"tracing", tel.Enabled(), "metrics_addr", cfg.MetricsAddr)
	return s, nil
}

// fetcher returns the roster source selected by cfg.
func (s *services) fetcher(cfg *config.Config) roster.Fetcher {
	opts := []roster.Option{
		roster.WithTimeout(cfg.Timeout),
		roster.WithLogger(s.log),
		roster.WithTelemetry(s.tel),
		roster.WithMetrics(s.metrics),
	}
	if cfg.File != "" {
		src := roster.FileSource{Path: cfg.File}
		return roster.Observed(src, src.URL(), opts...)
	}
	return roster.NewClient(cfg.URL, opts...)
}

func (s *services) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	close(s.done)
	if s.server != nil {
		if err := s.server.Shutdown(ctx); err != nil {
			s.log.Warn("metrics server shutdown", "error", err)
		}
	}
	if err := s.tel.Shutdown(ctx); err != nil {
		s.log.Warn("telemetry shutdown", "error", err)
	}
	_ = s.log.Sync()
}

func runTUI(ctx context.Context, cfg *config.Config, verbose bool) error {
	s, err := startServices(ctx, cfg, verbose)
	if err != nil {
		return err
	}
	defer s.close()

	m := ui.NewAppModel(s.fetcher(cfg), s.log, theme.Default())
	defer m.Close()
	p := tea.NewProgram(m.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
