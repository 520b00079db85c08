// Command report prints the standard movie queries as text tables.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"movie-dashboard/config"
	"movie-dashboard/query"
	"movie-dashboard/services"
	"movie-dashboard/storage"
	"movie-dashboard/utils"
)

func main() {
	limit := flag.Int("limit", 10, "rows per movie listing")
	genre := flag.String("genre", "Action", "genre for the top-by-genre listing")
	minRating := flag.Float64("min-rating", 8.0, "minimum vote_average for the popular listing")
	minVotes := flag.Int64("min-votes", 1000, "minimum vote_count for the popular listing")
	genreLimit := flag.Int("genre-limit", 20, "genre combinations to list")
	flag.Parse()

	cfg := config.Load()
	logger := utils.NewLoggerWithConfig(utils.LoggerConfig{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.NewStore(cfg.StoreDriver, cfg.StoreDSN())
	if err != nil {
		logger.Error("Invalid store configuration: %v", err)
		os.Exit(1)
	}
	q, err := query.New(store, cfg.Table, logger)
	if err != nil {
		logger.Error("Invalid table: %v", err)
		os.Exit(1)
	}

	svc := services.NewReportService(q, logger)
	report, err := svc.Generate(ctx, services.ReportOptions{
		Limit:      *limit,
		Genre:      *genre,
		MinRating:  *minRating,
		MinVotes:   *minVotes,
		GenreLimit: *genreLimit,
	})
	if err != nil {
		logger.Error("Report failed: %v", err)
		os.Exit(1)
	}
	svc.Print(os.Stdout, report)
}
