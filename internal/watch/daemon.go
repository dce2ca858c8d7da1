// Package watch runs the long-lived configuration session: it keeps the
// current configuration in memory, reloads it when the file changes, records
// lifecycle events and optionally verifies links on a schedule.
package watch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/hatethatcode/siteconf/internal/config"
	"github.com/hatethatcode/siteconf/internal/eventstore"
	"github.com/hatethatcode/siteconf/internal/linkcheck"
	"github.com/hatethatcode/siteconf/internal/logfields"
	"github.com/hatethatcode/siteconf/internal/metrics"
)

// Options configures a watch daemon. Zero values disable the optional
// subsystems: history, the metrics listener and scheduled link checks.
type Options struct {
	// HistoryPath is the sqlite event log file. Empty disables history.
	HistoryPath string
	// MetricsAddr is the Prometheus listen address. Empty disables the listener.
	MetricsAddr string
	// LinkCheckInterval schedules periodic link checks. Zero disables them.
	LinkCheckInterval time.Duration
	// LinkCheck configures the link check service used by the schedule.
	LinkCheck linkcheck.Options
}

// Daemon owns the live configuration for one config file.
type Daemon struct {
	configPath string
	opts       Options

	store      eventstore.Store
	recorder   metrics.Recorder
	metricsSrv *metrics.Server
	checker    *linkcheck.Service
	scheduler  gocron.Scheduler
	watcher    *Watcher

	mu      sync.RWMutex
	current *config.SiteConfig
}

// NewDaemon creates a daemon for configPath. Start must be called to begin
// watching. Events are keyed by the absolute config path so a later
// 'history' invocation finds them regardless of working directory.
func NewDaemon(configPath string, opts Options) (*Daemon, error) {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	d := &Daemon{
		configPath: absPath,
		opts:       opts,
		recorder:   metrics.NoopRecorder{},
	}

	if opts.HistoryPath != "" {
		store, err := eventstore.NewSQLiteStore(opts.HistoryPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open event store: %w", err)
		}
		d.store = store
	}

	if opts.MetricsAddr != "" {
		reg := prom.NewRegistry()
		d.recorder = metrics.NewPrometheusRecorder(reg)
		d.metricsSrv = metrics.NewServer(opts.MetricsAddr, reg)
	}

	if opts.LinkCheckInterval > 0 {
		checker, err := linkcheck.NewService(opts.LinkCheck)
		if err != nil {
			d.closeStore()
			return nil, fmt.Errorf("failed to create link check service: %w", err)
		}
		d.checker = checker
	}

	return d, nil
}

// Start loads the configuration, begins watching the file and starts the
// optional subsystems. It returns once everything is running.
func (d *Daemon) Start(ctx context.Context) error {
	cfg, err := config.Load(d.configPath)
	if err != nil {
		d.closeStore()
		return fmt.Errorf("initial configuration load failed: %w", err)
	}
	d.setConfig(cfg)
	d.recordEvent(ctx, eventstore.EventConfigLoaded, nil, map[string]string{
		"snapshot": cfg.Snapshot(),
	})
	slog.Info("Configuration loaded",
		logfields.ConfigPath(d.configPath), logfields.Snapshot(cfg.Snapshot()))

	watcher, err := NewWatcher(d.configPath, d.reload)
	if err != nil {
		d.closeStore()
		return err
	}
	if err := watcher.Start(ctx); err != nil {
		watcher.Stop()
		d.closeStore()
		return err
	}
	d.watcher = watcher

	if d.metricsSrv != nil {
		d.metricsSrv.Start()
	}

	if d.checker != nil {
		if err := d.startSchedule(ctx); err != nil {
			d.stopSubsystems(ctx)
			return err
		}
	}

	return nil
}

// Stop shuts down the daemon and releases all resources.
func (d *Daemon) Stop(ctx context.Context) error {
	d.stopSubsystems(ctx)
	return nil
}

// Config returns the most recently loaded valid configuration.
func (d *Daemon) Config() *config.SiteConfig {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.current
}

func (d *Daemon) setConfig(cfg *config.SiteConfig) {
	d.mu.Lock()
	d.current = cfg
	d.mu.Unlock()
}

// reload handles a debounced change notification. A failed load keeps the
// previous configuration in place.
func (d *Daemon) reload(ctx context.Context) {
	start := time.Now()
	eventID := uuid.NewString()

	newCfg, err := config.Load(d.configPath)
	d.recorder.ObserveReloadDuration(time.Since(start))
	if err != nil {
		d.recorder.IncReloadOutcome(metrics.ReloadOutcomeInvalid)
		d.recordEvent(ctx, eventstore.EventValidationFailed, nil, map[string]string{
			"event_id": eventID,
			"error":    err.Error(),
		})
		slog.Error("Configuration reload failed, keeping previous configuration",
			logfields.ConfigPath(d.configPath), logfields.EventID(eventID), logfields.Error(err))
		return
	}

	oldSnap := d.Config().Snapshot()
	newSnap := newCfg.Snapshot()
	d.setConfig(newCfg)

	if oldSnap == newSnap {
		d.recorder.IncReloadOutcome(metrics.ReloadOutcomeUnchanged)
		slog.Info("Configuration reloaded, no effective change",
			logfields.ConfigPath(d.configPath), logfields.EventID(eventID))
		return
	}

	d.recorder.IncReloadOutcome(metrics.ReloadOutcomeSuccess)
	d.recordEvent(ctx, eventstore.EventConfigReloaded, nil, map[string]string{
		"event_id": eventID,
		"snapshot": newSnap,
	})

	payload, err := json.Marshal(eventstore.SnapshotChange{OldSnapshot: oldSnap, NewSnapshot: newSnap})
	if err == nil {
		d.recordEvent(ctx, eventstore.EventSnapshotChanged, payload, map[string]string{
			"event_id": eventID,
		})
	}
	slog.Info("Configuration reloaded",
		logfields.ConfigPath(d.configPath), logfields.EventID(eventID),
		logfields.Snapshot(newSnap), logfields.DurationMS(float64(time.Since(start).Milliseconds())))
}

func (d *Daemon) startSchedule(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	_, err = scheduler.NewJob(
		gocron.DurationJob(d.opts.LinkCheckInterval),
		gocron.NewTask(func() { d.runLinkCheck(ctx) }),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule link check: %w", err)
	}
	d.scheduler = scheduler
	scheduler.Start()
	slog.Info("Link check schedule started", slog.Duration("interval", d.opts.LinkCheckInterval))
	return nil
}

func (d *Daemon) runLinkCheck(ctx context.Context) {
	cfg := d.Config()
	if cfg == nil {
		return
	}
	targets := linkcheck.TargetsFromConfig(cfg)
	if len(targets) == 0 {
		return
	}
	results, err := d.checker.Check(ctx, targets)
	if err != nil {
		slog.Error("Scheduled link check failed", logfields.Error(err))
		return
	}
	for _, r := range results {
		d.recorder.IncLinkCheckResult(r.OK)
		if !r.Cached {
			d.recorder.ObserveLinkCheckDuration(r.Duration)
		}
	}
}

func (d *Daemon) recordEvent(ctx context.Context, eventType eventstore.EventType, payload []byte, metadata map[string]string) {
	if d.store == nil {
		return
	}
	if err := d.store.Append(ctx, d.configPath, eventType, payload, metadata); err != nil {
		slog.Error("Failed to record event",
			slog.String("event_type", string(eventType)), logfields.Error(err))
	}
}

func (d *Daemon) stopSubsystems(ctx context.Context) {
	if d.scheduler != nil {
		if err := d.scheduler.Shutdown(); err != nil {
			slog.Error("Scheduler shutdown failed", logfields.Error(err))
		}
	}
	if d.watcher != nil {
		d.watcher.Stop()
	}
	if d.metricsSrv != nil {
		if err := d.metricsSrv.Stop(ctx); err != nil {
			slog.Error("Metrics server shutdown failed", logfields.Error(err))
		}
	}
	if d.checker != nil {
		if err := d.checker.Close(); err != nil {
			slog.Error("Link check service close failed", logfields.Error(err))
		}
	}
	d.closeStore()
}

func (d *Daemon) closeStore() {
	if d.store == nil {
		return
	}
	if err := d.store.Close(); err != nil {
		slog.Error("Event store close failed", logfields.Error(err))
	}
	d.store = nil
}
