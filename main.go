package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/brightbridge/server/internal/agent"
	"github.com/brightbridge/server/internal/bridge/dispatch"
	"github.com/brightbridge/server/internal/bridge/mode"
	"github.com/brightbridge/server/internal/bridge/model"
	"github.com/brightbridge/server/internal/core"
	"github.com/brightbridge/server/internal/server"
	logx "github.com/brightbridge/server/pkg/logger"
)

// AppConfig defines all configurable parameters for the bridge, sourced from
// environment variables (loaded from .env for local runs).
type AppConfig struct {
	Server model.ServerConfig
	Mode   model.ModeConfig
	Agent  model.AgentModelConfig
}

func main() {
	stdinMode := flag.Bool("stdin", false, "read one request from stdin, write one result to stdout, and exit")
	flag.Parse()

	ctx := context.Background()

	if err := godotenv.Load(".env"); err != nil {
		logx.Warn().Err(err).Msg("could not load .env file")
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		logx.Fatal().Err(err).Msg("failed to process environment config")
	}

	env := core.ParseEnvironment(cfg.Server.Environment)
	logx.Init(logx.LoggerOpts{Environment: env})

	timeout, err := time.ParseDuration(cfg.Agent.Timeout)
	if err != nil {
		logx.Fatal().Err(err).Str("value", cfg.Agent.Timeout).Msg("invalid AGENT_TIMEOUT")
	}

	sig := mode.SignalsFromConfig(cfg.Mode)
	m := mode.Select(sig)
	logx.Info().
		Str("mode", m.String()).
		Str("environment", env.String()).
		Bool("credential_configured", sig.HasCredential).
		Msg("serving mode selected")

	var adapter model.AgentAdapter
	if m == model.ModeLive {
		adapter, err = agent.NewGeminiAdapter(ctx, agent.Config{
			APIKey:  cfg.Mode.APIKey,
			BaseURL: cfg.Mode.BaseURL,
			Model:   cfg.Agent,
		})
		if err != nil {
			// The dispatcher degrades to mock when no adapter is available.
			logx.Error().Err(err).Msg("failed to initialise live agent adapter")
			adapter = nil
		}
	}

	d := dispatch.New(m, adapter, timeout)

	if *stdinMode {
		runStdin(ctx, d)
		return
	}

	runHTTP(d, cfg.Server, env, sig.HasCredential)
}

// runStdin serves exactly one request over stdin/stdout, matching the wire
// contract of the original process-per-request bridge.
func runStdin(ctx context.Context, d *dispatch.Dispatcher) {
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to read request from stdin")
	}

	res := d.Handle(ctx, raw)
	if err := json.NewEncoder(os.Stdout).Encode(res); err != nil {
		logx.Fatal().Err(err).Msg("failed to write result to stdout")
	}
	if !res.Success {
		os.Exit(1)
	}
}

func runHTTP(d *dispatch.Dispatcher, cfg model.ServerConfig, env core.Environment, credentialSet bool) {
	srv := server.New(d, cfg, env, credentialSet)
	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logx.Info().Str("addr", httpSrv.Addr).Msg("BrightBridge server listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	logx.Info().Msg("shutdown signal received, draining connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logx.Error().Err(err).Msg("graceful shutdown failed")
	}
}
