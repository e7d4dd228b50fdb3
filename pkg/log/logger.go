package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// SetupLogger installs a slog JSON backend (Cloud Logging field names) as the
// package provider and as slog's default logger.
func SetupLogger(loglevel string) error {
	level, ok := ParseLevel(loglevel)
	if !ok {
		return fmt.Errorf("invalid log level: %s", loglevel)
	}
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     slog.Level(level),
		// Replace attributes to convert to CloudLogging format.
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				attr = slog.Attr{
					Key:   "severity",
					Value: attr.Value,
				}
			case slog.MessageKey:
				attr = slog.Attr{
					Key:   "message",
					Value: attr.Value,
				}
			case slog.SourceKey:
				attr = slog.Attr{
					Key:   "logging.googleapis.com/sourceLocation",
					Value: attr.Value,
				}
			}
			return attr
		},
	}
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(os.Stdout, &ops))
	sl := slog.New(handler)
	slog.SetDefault(sl)
	SetProvider(&slogProvider{logger: NewSlogLogger(sl)})
	return nil
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}

// SlogLogger adapts *slog.Logger to Logger.
type SlogLogger struct {
	sl *slog.Logger
}

// NewSlogLogger wraps sl.
func NewSlogLogger(sl *slog.Logger) *SlogLogger {
	return &SlogLogger{sl: sl}
}

func (l *SlogLogger) Debug(msg string, fields ...any) { l.sl.Debug(msg, fields...) }
func (l *SlogLogger) Info(msg string, fields ...any)  { l.sl.Info(msg, fields...) }
func (l *SlogLogger) Warn(msg string, fields ...any)  { l.sl.Warn(msg, fields...) }

// Error attaches a leading error value as ErrAttr so ErrFmtHandler can add its stack trace.
func (l *SlogLogger) Error(msg string, fields ...any) {
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			fields = append([]any{ErrAttr(err)}, fields[1:]...)
		}
	}
	l.sl.Error(msg, fields...)
}

func (l *SlogLogger) With(fields ...any) Logger {
	return &SlogLogger{sl: l.sl.With(fields...)}
}

func (l *SlogLogger) Enabled(ctx context.Context, level Level) bool {
	return l.sl.Enabled(ctx, slog.Level(level))
}

type slogProvider struct {
	logger *SlogLogger
}

func (p *slogProvider) GetLogger() Logger { return p.logger }

func (p *slogProvider) GetLoggerWithName(name string) Logger {
	return p.logger.With(ComponentKey, name)
}

// SetLevel is a no-op: the slog handler level is fixed by SetupLogger.
func (p *slogProvider) SetLevel(Level) {}
