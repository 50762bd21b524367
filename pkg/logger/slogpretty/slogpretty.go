// Package slogpretty provides the process logger for the service.
// Locally it renders records as colored, human-readable lines;
// in dev and prod it emits JSON. The minimum level is configurable.
package slogpretty

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	stdLog "log"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
)

const (
	envLocal = "local" // colored output
	envDev   = "dev"   // JSON
	envProd  = "prod"  // JSON
)

// Accepted values for the log level setting, most severe first.
const (
	LevelError = "error"
	LevelWarn  = "warn"
	LevelInfo  = "info"
)

// PrettyHandlerOptions configures PrettyHandler.
type PrettyHandlerOptions struct {
	SlogOpts *slog.HandlerOptions
}

// PrettyHandler is a slog.Handler that prints one colored line per record
// followed by its attributes as indented JSON.
type PrettyHandler struct {
	slog.Handler
	l     *stdLog.Logger
	attrs []slog.Attr
}

// NewPrettyHandler creates a PrettyHandler writing to out.
// Level filtering is delegated to the embedded JSON handler.
func (opts PrettyHandlerOptions) NewPrettyHandler(out io.Writer) *PrettyHandler {
	return &PrettyHandler{
		Handler: slog.NewJSONHandler(out, opts.SlogOpts),
		l:       stdLog.New(out, "", 0),
	}
}

// ParseLevel maps the configured level name onto a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case LevelError:
		return slog.LevelError, nil
	case LevelWarn:
		return slog.LevelWarn, nil
	case LevelInfo, "":
		return slog.LevelInfo, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// SetupLogger builds the process logger for the given environment and
// minimum level, writing to stdout. An unknown level falls back to info.
func SetupLogger(env, level string) *slog.Logger {
	return NewLogger(os.Stdout, env, level)
}

// NewLogger is SetupLogger with an explicit destination.
func NewLogger(out io.Writer, env, level string) *slog.Logger {
	lvl, _ := ParseLevel(level)
	opts := &slog.HandlerOptions{Level: lvl}

	switch env {
	case envLocal:
		return slog.New(PrettyHandlerOptions{SlogOpts: opts}.NewPrettyHandler(out))
	case envDev, envProd:
		return slog.New(slog.NewJSONHandler(out, opts))
	default:
		return slog.New(slog.NewJSONHandler(out, opts))
	}
}

// Handle formats a single record.
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"

	switch r.Level {
	case slog.LevelDebug:
		level = color.MagentaString(level)
	case slog.LevelInfo:
		level = color.BlueString(level)
	case slog.LevelWarn:
		level = color.YellowString(level)
	case slog.LevelError:
		level = color.RedString(level)
	}

	fields := make(map[string]interface{}, r.NumAttrs()+len(h.attrs))

	for _, a := range h.attrs {
		fields[a.Key] = a.Value.Any()
	}

	r.Attrs(func(a slog.Attr) bool {
		fields[a.Key] = a.Value.Any()
		return true
	})

	var b []byte

	if len(fields) > 0 {
		var err error

		b, err = json.MarshalIndent(fields, "", "  ")
		if err != nil {
			return err
		}
	}

	timeStr := r.Time.Format("[15:04:05.000]")
	msg := color.CyanString(r.Message)

	h.l.Println(
		timeStr,
		level,
		msg,
		color.WhiteString(string(b)),
	)

	return nil
}

// WithAttrs returns a handler that adds attrs to every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)

	return &PrettyHandler{
		Handler: h.Handler.WithAttrs(attrs),
		l:       h.l,
		attrs:   merged,
	}
}

// WithGroup delegates to the JSON handler; groups are not rendered specially.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return &PrettyHandler{
		Handler: h.Handler.WithGroup(name),
		l:       h.l,
		attrs:   h.attrs,
	}
}
