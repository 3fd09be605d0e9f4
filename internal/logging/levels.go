package logging

import "log/slog"

// LevelTrace is a custom level below Debug for very verbose output.
const LevelTrace slog.Level = slog.LevelDebug - 4

// LevelFromVerbosity maps a -v flag count to a log level.
//
//	0 -> Warn (default: only warnings and errors)
//	1 -> Info
//	2 -> Debug
//	3+ -> Trace
func LevelFromVerbosity(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelWarn
	case v == 1:
		return slog.LevelInfo
	case v == 2:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}
