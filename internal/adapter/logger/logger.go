package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sort"
)

type LoggerAdapter struct {
	logger *slog.Logger
}

// NewLoggerAdapter writes JSON in production and readable text elsewhere.
func NewLoggerAdapter(env string) *LoggerAdapter {
	return newLoggerAdapter(os.Stdout, env)
}

func newLoggerAdapter(w io.Writer, env string) *LoggerAdapter {
	var handler slog.Handler
	if env == "production" {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return &LoggerAdapter{logger: slog.New(handler)}
}

func (l *LoggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.log(slog.LevelDebug, msg, fields)
}

func (l *LoggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.log(slog.LevelInfo, msg, fields)
}

func (l *LoggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.log(slog.LevelWarn, msg, fields)
}

func (l *LoggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.log(slog.LevelError, msg, fields)
}

func (l *LoggerAdapter) log(level slog.Level, msg string, fields map[string]interface{}) {
	// sorted so the same call always prints the same line
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, fields[k]))
	}
	l.logger.LogAttrs(context.Background(), level, msg, attrs...)
}
