package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/hatethatcode/siteconf/internal/eventstore"
)

// HistoryCmd implements the 'history' command. It reads the event log a watch
// session wrote and prints it oldest first.
type HistoryCmd struct {
	State string        `help:"Event log database file" default:".siteconf/history.db"`
	Since time.Duration `help:"Only show events newer than this (e.g. 24h)"`
}

func (h *HistoryCmd) Run(_ *Global, root *CLI) error {
	store, err := eventstore.NewSQLiteStore(h.State)
	if err != nil {
		return fmt.Errorf("open event log: %w", err)
	}
	defer func() { _ = store.Close() }()

	// Watch sessions key events by the absolute config path.
	configPath, err := filepath.Abs(root.Config)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}

	ctx := context.Background()
	var events []eventstore.Event
	if h.Since > 0 {
		now := time.Now()
		events, err = store.GetRange(ctx, now.Add(-h.Since), now)
	} else {
		events, err = store.GetByConfigPath(ctx, configPath)
	}
	if err != nil {
		return fmt.Errorf("read event log: %w", err)
	}
	if len(events) == 0 {
		fmt.Println("no events recorded")
		return nil
	}

	for _, e := range events {
		line := fmt.Sprintf("%s  %-18s %s",
			e.Timestamp().Format(time.RFC3339), e.Type(), e.ConfigPath())
		if snap := e.Metadata()["snapshot"]; snap != "" {
			line += fmt.Sprintf("  snapshot=%.12s", snap)
		}
		if errMsg := e.Metadata()["error"]; errMsg != "" {
			line += fmt.Sprintf("  error=%q", errMsg)
		}
		fmt.Println(line)
	}
	return nil
}
