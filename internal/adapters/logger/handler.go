package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/protonrun/internal/ui/output"
	"go.trai.ch/protonrun/internal/ui/style"
)

// PrettyHandler is a slog.Handler that writes one coloured line per record.
// Attributes follow the message as key=value pairs in a muted colour; values
// holding spaces or quotes, such as runtime paths, are quoted.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	// attrs are rendered when added so that a later WithGroup does not
	// rename them.
	attrs []string
	group string
}

// NewPrettyHandler creates a PrettyHandler writing to w (stderr when nil).
// The level in opts is read on every record, so a *slog.LevelVar may be
// used to change verbosity later.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var msg string
	var color termenv.Color

	switch {
	case r.Level >= slog.LevelError:
		msg = style.Cross + " " + r.Message
		color = termenv.RGBColor(string(style.Red))
	case r.Level >= slog.LevelWarn:
		msg = style.Warning + " " + r.Message
		color = termenv.RGBColor(string(style.Yellow))
	case r.Level < slog.LevelInfo:
		msg = style.Dot + " " + r.Message
		color = termenv.RGBColor(string(style.Mist))
	default:
		msg = r.Message
		color = termenv.RGBColor(string(style.Slate))
	}

	attrParts := slices.Clone(h.attrs)
	r.Attrs(func(attr slog.Attr) bool {
		attrParts = appendAttr(attrParts, h.group, attr)
		return true
	})

	line := h.out.String(msg).Foreground(color).String()
	if len(attrParts) > 0 {
		muted := termenv.RGBColor(string(style.Mist))
		line += " " + h.out.String(strings.Join(attrParts, " ")).Foreground(muted).String()
	}

	_, err := h.out.WriteString(line + "\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	rendered := slices.Clone(h.attrs)
	for _, attr := range attrs {
		rendered = appendAttr(rendered, h.group, attr)
	}

	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: rendered,
		group: h.group,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	if h.group != "" {
		name = h.group + "." + name
	}
	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: h.attrs,
		group: name,
	}
}

// appendAttr renders attr as key=value under group. Group values are
// flattened into dotted keys and empty attributes are dropped.
func appendAttr(parts []string, group string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return parts
	}

	key := attr.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if attr.Value.Kind() == slog.KindGroup {
		for _, member := range attr.Value.Group() {
			parts = appendAttr(parts, key, member)
		}
		return parts
	}

	return append(parts, key+"="+formatValue(attr.Value.String()))
}

func formatValue(v string) string {
	if v == "" || strings.ContainsAny(v, " \t\n\"=") {
		return strconv.Quote(v)
	}
	return v
}
