package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/wijnkelder/cellar"
	"github.com/wijnkelder/cellar/infrastructure/api"
	"github.com/wijnkelder/cellar/infrastructure/auth"
	"github.com/wijnkelder/cellar/internal/config"
	"github.com/wijnkelder/cellar/internal/log"
)

func serveCmd() *cobra.Command {
	var (
		envFile string
		host    string
		port    int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  HOST             Server host to bind to (default: 0.0.0.0)
  PORT             Server port to listen on (default: 8080)
  DATA_DIR         Data directory (default: ~/.cellar)
  DB_URL           Database URL (default: sqlite:///{data_dir}/cellar.db)
  LOG_LEVEL        Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT       Log format: text, json (default: text)
  AUTH_SECRET      HMAC secret for verifying bearer tokens (required)

  OPENAI_BASE_URL  Completion endpoint base URL (default: OpenAI)
  OPENAI_MODEL     Model identifier (default: gpt-4o-mini)
  OPENAI_TEMPERATURE  Sampling temperature (default: 0.7)
  OPENAI_TIMEOUT   Request timeout in seconds (default: 60)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(envFile, host, port)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&host, "host", "", "Server host to bind to (default: 0.0.0.0)")
	cmd.Flags().IntVar(&port, "port", 0, "Server port to listen on (default: 8080)")

	return cmd
}

func runServe(envFile, host string, port int) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}

	// Flags take precedence over env vars.
	cfg = applyServeOverrides(cfg, host, port)

	if cfg.AuthSecret() == "" {
		return errors.New("AUTH_SECRET is required to run the server")
	}

	if err := cfg.EnsureDataDir(); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	logger := log.Configure(cfg)
	slogger := logger.Slog()

	opts := []cellar.Option{
		cellar.WithDataDir(cfg.DataDir()),
		cellar.WithEndpoint(cfg.Endpoint()),
		cellar.WithLogger(slogger),
	}

	dbURL := cfg.DBURL()
	if isSQLite(dbURL) {
		opts = append(opts, cellar.WithSQLite(strings.TrimPrefix(dbURL, "sqlite:///")))
	} else {
		opts = append(opts, cellar.WithPostgres(dbURL))
	}

	attrs := append([]slog.Attr{slog.String("version", version)}, cfg.LogAttrs()...)
	slogger.LogAttrs(context.Background(), slog.LevelInfo, "starting cellar", attrs...)

	client, err := cellar.New(opts...)
	if err != nil {
		return fmt.Errorf("create cellar client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			slogger.Error("failed to close cellar client", slog.Any("error", err))
		}
	}()

	server := api.NewServer(cfg.Addr(), slogger)
	api.MountRoutes(server, api.Dependencies{
		Cellar:   client.Wines,
		Advice:   client.Advice,
		Keys:     client.Keys(),
		Resolver: auth.ContextResolver{},
		Verifier: auth.NewVerifier(cfg.AuthSecret()),
		Logger:   slogger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Start()
	})
	g.Go(func() error {
		<-ctx.Done()
		return server.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// isSQLite checks if the database URL is for SQLite.
func isSQLite(url string) bool {
	return strings.HasPrefix(url, "sqlite:")
}

// applyServeOverrides applies command line flag overrides to the config.
func applyServeOverrides(cfg config.AppConfig, host string, port int) config.AppConfig {
	var opts []config.AppConfigOption

	if host != "" {
		opts = append(opts, config.WithHost(host))
	}
	if port != 0 {
		opts = append(opts, config.WithPort(port))
	}

	return cfg.Apply(opts...)
}
