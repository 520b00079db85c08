// Command dashboard serves the interactive movie dashboard. With -snapshot it
// renders the default view to a PNG file instead and exits.
package main

import (
	"context"
	"flag"
	"net"
	"os"
	"os/signal"
	"syscall"

	"movie-dashboard/config"
	"movie-dashboard/dashboard"
	"movie-dashboard/query"
	"movie-dashboard/snapshot"
	"movie-dashboard/storage"
	"movie-dashboard/utils"
)

func main() {
	addr := flag.String("addr", "", "listen address (overrides DASHBOARD_ADDR)")
	snapshotPath := flag.String("snapshot", "", "write a PNG of the dashboard to this file and exit")
	flag.Parse()

	cfg := config.Load()
	logger := utils.NewLoggerWithConfig(utils.LoggerConfig{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if *addr != "" {
		cfg.DashboardAddr = *addr
	}

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

	srv := dashboard.NewServer(dashboard.Config{Addr: cfg.DashboardAddr}, q, logger)

	if *snapshotPath != "" {
		if err := writeSnapshot(ctx, srv, cfg.ChromeBin, *snapshotPath, logger); err != nil {
			logger.Error("Snapshot failed: %v", err)
			os.Exit(1)
		}
		return
	}

	if err := srv.ListenAndServe(ctx); err != nil {
		logger.Error("Dashboard server stopped: %v", err)
		os.Exit(1)
	}
}

func writeSnapshot(ctx context.Context, srv *dashboard.Server, chromeBin, path string, logger *utils.Logger) error {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return err
	}

	serveCtx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- srv.Serve(serveCtx, ln) }()

	png, err := snapshot.Capture(ctx, snapshot.Options{
		URL:       "http://" + ln.Addr().String() + "/",
		ChromeBin: chromeBin,
	})
	cancel()
	if serveErr := <-done; serveErr != nil {
		logger.Warn("[dashboard] Shutdown after snapshot: %v", serveErr)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, png, 0o644); err != nil {
		return err
	}
	logger.Info("[dashboard] Snapshot written to %s (%d bytes)", path, len(png))
	return nil
}
