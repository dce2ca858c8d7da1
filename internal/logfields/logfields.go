package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyConfigPath = "config_path"
	KeySnapshot   = "snapshot"
	KeyTheme      = "theme"
	KeyURL        = "url"
	KeyLabel      = "label"
	KeyStatus     = "status"
	KeyPath       = "path"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyEventID    = "event_id"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func ConfigPath(p string) slog.Attr   { return slog.String(KeyConfigPath, p) }
func Snapshot(s string) slog.Attr     { return slog.String(KeySnapshot, s) }
func Theme(t string) slog.Attr        { return slog.String(KeyTheme, t) }
func URL(u string) slog.Attr          { return slog.String(KeyURL, u) }
func Label(l string) slog.Attr        { return slog.String(KeyLabel, l) }
func Status(s string) slog.Attr       { return slog.String(KeyStatus, s) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func EventID(id string) slog.Attr     { return slog.String(KeyEventID, id) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
