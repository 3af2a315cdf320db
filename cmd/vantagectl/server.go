package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vantagehq/vantage/pkg/audit"
	"github.com/vantagehq/vantage/pkg/cache"
	"github.com/vantagehq/vantage/pkg/config"
	"github.com/vantagehq/vantage/pkg/db"
	"github.com/vantagehq/vantage/pkg/server"
	"github.com/vantagehq/vantage/pkg/server/endpoints"
	"github.com/vantagehq/vantage/pkg/token"
)

func defaultBindAddress() string {
	if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
		return addr
	}
	return "0.0.0.0"
}

func defaultPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8000"
}

func defaultPortInt() int {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			return p
		}
	}
	return 8000
}

func newLogger() (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if raw := os.Getenv("VANTAGE_LOG_LEVEL"); raw != "" {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			return nil, fmt.Errorf("invalid VANTAGE_LOG_LEVEL %q: %w", raw, err)
		}
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the Vantage application server",
	Long: `Run the Vantage application server.

To run the server requires the environment variables VANTAGE_TOKEN_KEY and DATABASE_URL.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Validate required environment variables first (fail fast)
		if _, err := token.Key(); err != nil {
			fmt.Fprintln(os.Stderr, token.KeyEnvVar+" environment variable is required")
			os.Exit(1)
		}
		if os.Getenv("DATABASE_URL") == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		logger, err := newLogger()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer func() { _ = logger.Sync() }()

		cfg := config.Get()
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
			os.Exit(1)
		}

		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to connect to DB: %v\n", err)
			os.Exit(1)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		c := cache.New(ctx, cfg.RedisURL, logger)
		defer func() { _ = c.Close() }()

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")
		s := server.NewServer(database, cfg, c, logger, host, port)

		// Durable audit trail behind the in-process audit logger.
		audit.SetPersister(s.Audit)

		endpoints.RegisterAll(s)

		// SIGHUP reloads the config file without a restart.
		hup := make(chan os.Signal, 1)
		signal.Notify(hup, syscall.SIGHUP)
		go func() {
			for range hup {
				if err := config.Reload(); err != nil {
					logger.Warn("config reload failed", zap.Error(err))
					continue
				}
				logger.Info("configuration reloaded")
			}
		}()

		errCh := make(chan error, 1)
		go func() { errCh <- s.Start() }()
		logger.Info("running server", zap.String("addr", host+":"+port))

		select {
		case err := <-errCh:
			logger.Fatal("server stopped", zap.Error(err))
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
		logger.Info("server stopped")
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
