package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sunglassai/outreach/internal/api"
	"github.com/sunglassai/outreach/internal/auth"
	"github.com/sunglassai/outreach/internal/config"
	"github.com/sunglassai/outreach/internal/crm"
	"github.com/sunglassai/outreach/internal/metrics"
	"github.com/sunglassai/outreach/internal/outreach"
	"github.com/sunglassai/outreach/internal/store"
	"github.com/sunglassai/outreach/internal/template"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

var configFile string

func init() {
	serveCmd.Flags().StringVarP(&configFile, "config", "c", "config.yaml", "Path to configuration file")
}

func runServe(cmd *cobra.Command, args []string) error {
	// A local .env supplies secrets in development; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: parseLogLevel(cfg.Logging.Level),
		})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: parseLogLevel(cfg.Logging.Level),
		})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	kv, err := store.NewBoltStore(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer kv.Close()

	db, err := auth.OpenDB(cfg.Accounts.Path)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.Migrate(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		verifier auth.Verifier
		tokens   *auth.TokenIssuer
	)
	if cfg.Auth.OIDC.Enabled {
		oidcVerifier, err := auth.NewOIDCVerifier(ctx, cfg.Auth.OIDC)
		if err != nil {
			return err
		}
		verifier = oidcVerifier
		logger.Info("using OIDC token verification", "issuer", cfg.Auth.OIDC.IssuerURL)
	} else {
		tokens = auth.NewTokenIssuer([]byte(cfg.Auth.TokenSecret), cfg.Auth.TokenTTL)
		verifier = tokens
	}

	var sender outreach.Sender
	switch cfg.Provider.Type {
	case "smtp":
		sender = outreach.NewSMTPSender(
			cfg.Provider.SMTP.Addr,
			cfg.Provider.SMTP.Username,
			cfg.Provider.SMTP.Password,
			cfg.Provider.FromName,
			cfg.Provider.FromEmail,
		)
	default:
		sender = outreach.NewHTTPSender(
			cfg.Provider.BaseURL,
			cfg.Provider.APIKey,
			cfg.Provider.FromName,
			cfg.Provider.FromEmail,
		)
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	srv := api.NewServer(cfg.Server.ListenAddr, api.Deps{
		Brands:   crm.NewBrandStore(kv),
		Attempts: crm.NewAttemptStore(kv),
		Users:    auth.NewUserStore(db),
		Tokens:   tokens,
		Verifier: verifier,
		OIDC:     cfg.Auth.OIDC,
		Engine:   template.NewEngine(cfg.Sender),
		Sender:   sender,
		Bulk:     outreach.NewBulkSender(sender, cfg.Bulk.BatchSize, cfg.Bulk.DelayBetween, logger),
		Metrics:  m,
		Logger:   logger,
	})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
		logger.Info("shutting down...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	return srv.Shutdown(shutdownCtx)
}

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
