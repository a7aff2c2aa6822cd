package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"zoo-rooms/internal/platform/config"
	"zoo-rooms/internal/platform/logger"
)

var (
	version    = "0.1.0-dev"
	configPath string
)

// @title zoo-rooms API
// @version 1.0
// @description Animales, rooms, ubicación, favoritos y agregación de favoritos.
// @BasePath /
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:          "zoo-rooms",
		Short:        "HTTP API for zoo animals, rooms and favorite rooms",
		Version:      version,
		SilenceUsage: true,
		RunE:         runServe,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (env vars override it)")

	rootCmd.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}

// setup carga config y logger, compartido por todos los subcomandos.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.AppName,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}
	return cfg, log, nil
}
