package eventstore

import "time"

// EventType names a configuration lifecycle event.
type EventType string

const (
	// EventConfigLoaded is recorded when a watch session loads its initial configuration.
	EventConfigLoaded EventType = "config_loaded"
	// EventConfigReloaded is recorded when a changed file reloads successfully.
	EventConfigReloaded EventType = "config_reloaded"
	// EventValidationFailed is recorded when a changed file fails to load or validate.
	EventValidationFailed EventType = "validation_failed"
	// EventSnapshotChanged is recorded when a reload changes generator-affecting fields.
	EventSnapshotChanged EventType = "snapshot_changed"
)

// Event represents a recorded configuration lifecycle event.
type Event interface {
	// ID returns the unique identifier for this event.
	ID() int64
	// ConfigPath returns the configuration file the event belongs to.
	ConfigPath() string
	// Type returns the event type name.
	Type() EventType
	// Timestamp returns when the event occurred.
	Timestamp() time.Time
	// Payload returns the event data as bytes.
	Payload() []byte
	// Metadata returns optional event metadata.
	Metadata() map[string]string
}

// BaseEvent provides a default implementation of Event.
type BaseEvent struct {
	EventID         int64
	EventConfigPath string
	EventType       EventType
	EventTimestamp  time.Time
	EventPayload    []byte
	EventMetadata   map[string]string
}

func (e *BaseEvent) ID() int64                   { return e.EventID }
func (e *BaseEvent) ConfigPath() string          { return e.EventConfigPath }
func (e *BaseEvent) Type() EventType             { return e.EventType }
func (e *BaseEvent) Timestamp() time.Time        { return e.EventTimestamp }
func (e *BaseEvent) Payload() []byte             { return e.EventPayload }
func (e *BaseEvent) Metadata() map[string]string { return e.EventMetadata }

// SnapshotChange is the payload of EventSnapshotChanged.
type SnapshotChange struct {
	OldSnapshot string `json:"old_snapshot"`
	NewSnapshot string `json:"new_snapshot"`
}
