package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/candidate-matcher/internal/cache"
	"github.com/jonathan/candidate-matcher/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes scoring, ranking and stored score endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config server.port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := appConfig
	if servePort > 0 {
		cfg.Server.Port = servePort
	}

	opts := []server.Option{server.WithLogger(logger)}

	store, err := openStore(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("failed to open score store: %w", err)
	}
	if store != nil {
		defer store.Close()
		opts = append(opts, server.WithStore(store))
		logger.Info("score store enabled", zap.String("driver", cfg.Store.Driver))
	}

	if cfg.Cache.RedisAddr != "" {
		resultCache, err := cache.New(ctx, cfg.Cache.RedisAddr, cfg.Cache.TTL)
		if err != nil {
			return fmt.Errorf("failed to connect result cache: %w", err)
		}
		defer resultCache.Close()
		opts = append(opts, server.WithCache(resultCache))
		logger.Info("result cache enabled", zap.String("addr", cfg.Cache.RedisAddr), zap.Duration("ttl", cfg.Cache.TTL))
	}

	srv := server.New(server.Config{
		Port:        cfg.Server.Port,
		RateLimit:   cfg.Server.RateLimit,
		Burst:       cfg.Server.Burst,
		Concurrency: cfg.Engine.Concurrency,
	}, newEngine(), opts...)

	return srv.Start(ctx)
}
