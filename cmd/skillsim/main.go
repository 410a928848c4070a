package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/udisondev/skillgrowth/internal/config"
	"github.com/udisondev/skillgrowth/internal/data"
	"github.com/udisondev/skillgrowth/internal/game/skill"
	"github.com/udisondev/skillgrowth/internal/notify"
	"github.com/udisondev/skillgrowth/internal/sim"
)

// app holds state shared by subcommands, filled in by the root PersistentPreRunE.
type app struct {
	cfgPath     string
	metricsAddr string
	quiet       bool

	cfg       config.Simulator
	catalog   *data.SkillCatalog
	registry  *prometheus.Registry
	presenter notify.Fanout
	runner    *sim.Runner
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "skillsim",
		Short:         "Skill growth simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context())
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.cfgPath, "config", config.Path(), "path to YAML config")
	rootCmd.PersistentFlags().StringVar(&a.metricsAddr, "metrics-addr", "", "serve prometheus /metrics on this address")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "do not print skill notifications")

	rootCmd.AddCommand(simulateCmd(a))
	rootCmd.AddCommand(migrateCmd(a))
	rootCmd.AddCommand(trainCmd(a))

	return rootCmd
}

func (a *app) setup(ctx context.Context) error {
	cfg, err := config.LoadSimulator(a.cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if a.metricsAddr != "" {
		cfg.MetricsAddr = a.metricsAddr
	}
	a.cfg = cfg

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	a.catalog, err = data.LoadSkillCatalog()
	if err != nil {
		return fmt.Errorf("loading skill catalog: %w", err)
	}

	a.registry = prometheus.NewRegistry()
	a.registry.MustRegister(collectors.NewGoCollector())
	a.presenter = notify.Fanout{notify.NewMetrics(a.registry), notify.NewLog(nil)}
	if !a.quiet {
		loc, err := notify.NewLocalizer(a.catalog, cfg.Locale)
		if err != nil {
			return fmt.Errorf("creating localizer: %w", err)
		}
		a.presenter = append(a.presenter, notify.NewConsole(os.Stdout, loc))
	}

	env := skill.StaticEnvironment{
		LowYield:  cfg.Growth.LowYieldArea,
		Dungeon:   cfg.Growth.DungeonLevel,
		Overworld: cfg.Growth.Overworld,
	}
	a.runner = sim.NewRunner(a.catalog, a.presenter, env, cfg.Growth.MaxPropagationDepth, slog.Default())

	if cfg.MetricsAddr != "" {
		go a.serveMetrics(ctx, cfg.MetricsAddr)
	}
	return nil
}

func (a *app) serveMetrics(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("metrics server started", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("metrics server", "err", err)
	}
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
