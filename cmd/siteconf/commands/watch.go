package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/hatethatcode/siteconf/internal/linkcheck"
	"github.com/hatethatcode/siteconf/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	State         string        `help:"Event log database file (empty disables history)" default:".siteconf/history.db"`
	MetricsAddr   string        `name:"metrics-addr" help:"Prometheus listen address (empty disables metrics)"`
	CheckInterval time.Duration `name:"check-interval" help:"Periodic link check interval (0 disables)"`
	NATSURL       string        `name:"nats-url" help:"NATS server URL for link result caching"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	daemon, err := watch.NewDaemon(root.Config, watch.Options{
		HistoryPath:       w.State,
		MetricsAddr:       w.MetricsAddr,
		LinkCheckInterval: w.CheckInterval,
		LinkCheck:         linkcheck.Options{NATSURL: w.NATSURL},
	})
	if err != nil {
		return fmt.Errorf("failed to create watch daemon: %w", err)
	}

	if err := daemon.Start(ctx); err != nil {
		return fmt.Errorf("failed to start watch daemon: %w", err)
	}
	slog.Info("Watching configuration, press Ctrl-C to stop")

	<-ctx.Done()
	slog.Info("Shutdown signal received, stopping...")

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer stopCancel()
	if err := daemon.Stop(stopCtx); err != nil {
		return fmt.Errorf("failed to stop watch daemon: %w", err)
	}
	slog.Info("Stopped")
	return nil
}
