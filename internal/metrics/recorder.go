// Package metrics defines the observability surface of the watch daemon.
// The Recorder interface keeps callers independent of Prometheus; a nil or
// no-op recorder is always safe.
package metrics

import "time"

// ReloadOutcome labels the result of a configuration reload attempt.
type ReloadOutcome string

const (
	ReloadOutcomeSuccess   ReloadOutcome = "success"
	ReloadOutcomeUnchanged ReloadOutcome = "unchanged"
	ReloadOutcomeInvalid   ReloadOutcome = "invalid"
)

// Recorder records watch daemon activity.
type Recorder interface {
	IncReloadOutcome(outcome ReloadOutcome)
	ObserveReloadDuration(d time.Duration)
	IncLinkCheckResult(ok bool)
	ObserveLinkCheckDuration(d time.Duration)
}

// NoopRecorder discards all observations.
type NoopRecorder struct{}

func (NoopRecorder) IncReloadOutcome(ReloadOutcome)         {}
func (NoopRecorder) ObserveReloadDuration(time.Duration)    {}
func (NoopRecorder) IncLinkCheckResult(bool)                {}
func (NoopRecorder) ObserveLinkCheckDuration(time.Duration) {}
