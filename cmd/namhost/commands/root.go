// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ik5/namhost/engine"
	"github.com/ik5/namhost/engine/nam"
	"github.com/ik5/namhost/internal/config"
	"github.com/ik5/namhost/internal/logging"
	"github.com/ik5/namhost/metrics"
	"github.com/ik5/namhost/session"
)

var errNoModel = errors.New("no model given, use --model or set model in the config file")

// flags shared by every command
type globalFlags struct {
	configPath      string
	model           string
	maxBufferSize   int
	prewarmOnGrowth bool
	logLevel        string
	logPretty       bool
	metricsAddr     string
}

// Execute runs the command line against the native engine.
func Execute() error {
	return newRootCmd(nam.New()).Execute()
}

func newRootCmd(eng engine.Engine) *cobra.Command {
	var g globalFlags

	root := &cobra.Command{
		Use:   "namhost",
		Short: "Neural amp model host",
		Long: `namhost loads Neural Amp Modeler (.nam) files and runs audio through them.

Settings come from an optional YAML file (--config); flags override it.

Examples:
  # Show what a model expects
  namhost info --model plexi.nam

  # Re-amp a DI track into a 24-bit WAV
  namhost render --model plexi.nam di.wav amped.wav
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "YAML config file")
	pf.StringVarP(&g.model, "model", "m", "", "model file (.nam)")
	pf.IntVar(&g.maxBufferSize, "max-buffer-size", session.DefaultMaximumBufferSize, "initial maximum block size the model is prepared for")
	pf.BoolVar(&g.prewarmOnGrowth, "prewarm-on-growth", false, "prewarm the model whenever the block size grows")
	pf.StringVar(&g.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.BoolVar(&g.logPretty, "log-pretty", false, "human readable logs")
	pf.StringVar(&g.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while running")

	root.AddCommand(newInfoCmd(eng, &g))
	root.AddCommand(newRenderCmd(eng, &g))

	return root
}

// loadConfig reads the config file, if any, and applies the flags the user
// set explicitly on top.
func loadConfig(cmd *cobra.Command, g *globalFlags) (config.Config, error) {
	cfg := config.Default()
	if g.configPath != "" {
		var err error
		if cfg, err = config.Load(g.configPath); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("model") {
		cfg.Model = g.model
	}
	if flags.Changed("max-buffer-size") {
		cfg.MaxBufferSize = g.maxBufferSize
	}
	if flags.Changed("prewarm-on-growth") {
		cfg.PrewarmOnGrowth = g.prewarmOnGrowth
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = g.logLevel
	}
	if flags.Changed("log-pretty") {
		cfg.Log.Pretty = g.logPretty
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr = g.metricsAddr
	}

	return cfg, nil
}

// app is what a command needs once the configuration is settled.
type app struct {
	cfg     config.Config
	log     zerolog.Logger
	metrics *metrics.Metrics
	session *session.Session

	stopMetrics func()
}

// setup builds the logger, metrics and session and loads the model.
func setup(cmd *cobra.Command, eng engine.Engine, cfg config.Config) (*app, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Model == "" {
		return nil, errNoModel
	}

	a := &app{
		cfg:         cfg,
		log:         logging.New(cfg.Log, cmd.ErrOrStderr()),
		metrics:     metrics.New(),
		stopMetrics: func() {},
	}

	if cfg.MetricsAddr != "" {
		stop, err := serveMetrics(cfg.MetricsAddr, a.metrics.Handler(), a.log)
		if err != nil {
			return nil, err
		}
		a.stopMetrics = stop
	}

	a.session = session.New(eng, cfg.MaxBufferSize,
		session.WithLogger(a.log),
		session.WithObserver(a.metrics),
		session.WithPrewarmOnGrowth(cfg.PrewarmOnGrowth),
	)
	a.metrics.Watch(a.session)

	if err := a.session.Load(cfg.Model); err != nil {
		a.stopMetrics()
		return nil, err
	}

	return a, nil
}

func (a *app) close() {
	if err := a.session.Close(); err != nil {
		a.log.Warn().Err(err).Msg("closing session")
	}
	a.stopMetrics()
}

// serveMetrics listens on addr right away so a bad address fails the
// command, then serves in the background until stop is called.
func serveMetrics(addr string, h http.Handler, log zerolog.Logger) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", h)
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("metrics server")
		}
	}()
	log.Info().Str("addr", ln.Addr().String()).Msg("serving metrics")

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Warn().Err(err).Msg("metrics server shutdown")
		}
	}, nil
}
