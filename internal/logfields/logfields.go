package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyDocDir     = "doc_dir"
	KeyHeader     = "header"
	KeyTool       = "tool"
	KeyBuildID    = "build_id"
	KeyDurationMS = "duration_ms"
	KeyExitCode   = "exit_code"
	KeyFile       = "file"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func DocDir(d string) slog.Attr       { return slog.String(KeyDocDir, d) }
func Header(h string) slog.Attr       { return slog.String(KeyHeader, h) }
func Tool(t string) slog.Attr         { return slog.String(KeyTool, t) }
func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func ExitCode(code int) slog.Attr     { return slog.Int(KeyExitCode, code) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
