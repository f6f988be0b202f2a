package domain

import "log/slog"

// LogLevel is the severity of a message recorded on a telemetry vertex.
// Values match slog levels.
type LogLevel int

const (
	// LogLevelInfo marks progress messages such as the dispatched download.
	LogLevelInfo = LogLevel(slog.LevelInfo)
	// LogLevelWarn marks recoverable problems reported by the task runner.
	LogLevelWarn = LogLevel(slog.LevelWarn)
	// LogLevelError marks a failed dispatch.
	LogLevelError = LogLevel(slog.LevelError)
)

// String returns the slog name of the level.
func (l LogLevel) String() string {
	return slog.Level(l).String()
}
