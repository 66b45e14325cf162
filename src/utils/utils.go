package utils

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"scanvator/src/types"
)

// InitLogger installs the default logger: compact time, file:line source, and
// an optional copy of everything written to logPath. The returned func closes the file.
func InitLogger(logPath string, level slog.Level) (func() error, error) {
	var out io.Writer = os.Stdout
	closeFn := func() error { return nil }
	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return closeFn, fmt.Errorf("open log file: %w", err)
		}
		out = io.MultiWriter(os.Stdout, logFile)
		closeFn = logFile.Close
	}

	slog.SetDefault(slog.New(NewHandler(out, level)))
	return closeFn, nil
}

func NewHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format("15:04:05"))
				}
			}
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					file := source.File
					if lastSlash := strings.LastIndexByte(file, '/'); lastSlash >= 0 {
						file = file[lastSlash+1:]
					}
					a.Value = slog.StringValue(fmt.Sprintf("%s:%d", file, source.Line))
				}
			}
			return a
		},
	})
}

// FormatDecision renders a decision for status lines, e.g. "up->7" or "parked".
func FormatDecision(d types.Decision) string {
	if d.Behaviour == types.Parked {
		return "parked"
	}
	return fmt.Sprintf("%s->%d", d.Dir, d.Floor)
}
