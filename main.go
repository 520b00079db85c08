package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"movie-dashboard/config"
	"movie-dashboard/etl"
	"movie-dashboard/storage"
	"movie-dashboard/utils"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLoggerWithConfig(utils.LoggerConfig{Level: cfg.LogLevel, Format: cfg.LogFormat})

	logger.Info("=== Movie ETL starting ===")
	logger.Info("Config: source: %s | store: %s | table: %s | archive: %v",
		cfg.CSVPath, cfg.StoreDriver, cfg.Table, cfg.ArchiveEnabled)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.NewStore(cfg.StoreDriver, cfg.StoreDSN())
	if err != nil {
		logger.Error("Invalid store configuration: %v", err)
		os.Exit(1)
	}

	opts := etl.Options{SourcePath: cfg.CSVPath, Table: cfg.Table}
	if cfg.ArchiveEnabled {
		opts.ArchiveDir = cfg.ArchiveDir
	}

	res, err := etl.New(opts, storage.CSVLoader{}, store, logger).Run(ctx)
	if err != nil {
		logger.Error("ETL run %s failed: %v", res.RunID, err)
		os.Exit(1)
	}

	fmt.Printf("\n  Done. %d rows loaded → %d movies stored in %q (%d dropped)\n\n",
		res.Loaded, res.Written, cfg.Table, res.Dropped)
}
