// Package eventstore persists configuration lifecycle events so a site
// operator can answer "when did the config change and what broke" after the
// fact.
package eventstore

import (
	"context"
	"time"
)

// Store is the configuration event log.
type Store interface {
	// Append adds a new event to the store.
	Append(ctx context.Context, configPath string, eventType EventType, payload []byte, metadata map[string]string) error
	// GetByConfigPath retrieves all events for a configuration file, oldest first.
	GetByConfigPath(ctx context.Context, configPath string) ([]Event, error)
	// GetRange retrieves events within a time range, oldest first.
	GetRange(ctx context.Context, start, end time.Time) ([]Event, error)
	// Close releases the store.
	Close() error
}
