package linkcheck

import "time"

// BrokenLinkEvent is published when a configured or content link fails
// verification.
type BrokenLinkEvent struct {
	URL        string    `json:"url"`
	Label      string    `json:"label,omitempty"`
	Source     string    `json:"source"` // "links", "social", or a content file path
	StatusCode int       `json:"status_code,omitempty"`
	Error      string    `json:"error,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
