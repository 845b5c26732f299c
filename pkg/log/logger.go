package log

import (
	"fmt"
	"log/slog"
	"os"
)

// Attribute keys used for error reporting. ErrFmtHandler watches for
// ErrAttrKey and attaches the extracted stacktrace under StacktraceAttrKey.
const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// SetupLogger installs a JSON slog handler as the process default.
// Output goes to stdout with CloudLogging-compatible field naming, wrapped
// so that errors logged via ErrAttr carry their stacktrace.
func SetupLogger(loglevel string) {
	opts := slog.HandlerOptions{
		AddSource:   true,
		Level:       ToLogLevel(loglevel),
		ReplaceAttr: renameForCloudLogging,
	}
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(os.Stdout, &opts))
	slog.SetDefault(slog.New(handler))
}

// renameForCloudLogging maps slog's built-in keys onto the field names
// Google Cloud Logging indexes.
func renameForCloudLogging(groups []string, attr slog.Attr) slog.Attr {
	switch attr.Key {
	case slog.LevelKey:
		attr.Key = "severity"
	case slog.MessageKey:
		attr.Key = "message"
	case slog.SourceKey:
		attr.Key = "logging.googleapis.com/sourceLocation"
	}
	return attr
}

// ToLogLevel parses a level name. Unknown names panic: the level comes
// from operator configuration and a typo should fail loudly at startup.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

// ErrAttr wraps err as a slog attribute under ErrAttrKey.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
