package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
	ansiGray   = "\x1b[90m"
	ansiReset  = "\x1b[0m"
)

// field is one rendered key=value pair; keys carry their group prefix.
type field struct {
	key   string
	value slog.Value
}

// consoleHandler writes one human-readable line per record:
//
//	2026-01-02T15:04:05Z INFO counter: word list counted lines=12 distinct=3
//
// The component attribute is hoisted in front of the message.
type consoleHandler struct {
	mu        *sync.Mutex
	out       io.Writer
	level     slog.Leveler
	source    bool
	color     bool
	prefix    string
	component string
	fields    []field
}

func newConsoleHandler(w io.Writer, level slog.Leveler, source, color bool) *consoleHandler {
	return &consoleHandler{mu: &sync.Mutex{}, out: w, level: level, source: source, color: color}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	component := h.component
	fields := h.fields
	if record.NumAttrs() > 0 {
		fields = make([]field, len(h.fields), len(h.fields)+record.NumAttrs())
		copy(fields, h.fields)
		record.Attrs(func(attr slog.Attr) bool {
			fields = h.collect(fields, &component, h.prefix, attr)
			return true
		})
	}

	ts := record.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	var line strings.Builder
	line.WriteString(ts.UTC().Format(time.RFC3339))
	line.WriteByte(' ')
	line.WriteString(h.label(record.Level))
	line.WriteByte(' ')
	if component != "" {
		line.WriteString(component)
		line.WriteString(": ")
	}
	if msg := strings.TrimSpace(record.Message); msg != "" {
		line.WriteString(msg)
	} else {
		line.WriteString("(no message)")
	}
	if h.source {
		if src := record.Source(); src != nil {
			fmt.Fprintf(&line, " [%s:%d]", filepath.Base(src.File), src.Line)
		}
	}
	for _, f := range fields {
		line.WriteByte(' ')
		line.WriteString(f.key)
		line.WriteByte('=')
		line.WriteString(renderValue(f.value))
	}
	line.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, line.String())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.fields = append([]field(nil), h.fields...)
	for _, attr := range attrs {
		next.fields = h.collect(next.fields, &next.component, h.prefix, attr)
	}
	return &next
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

// collect flattens attr into dst. A top-level component attribute sets
// *component instead of becoming a field.
func (h *consoleHandler) collect(dst []field, component *string, prefix string, attr slog.Attr) []field {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return dst
	}
	if attr.Value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			prefix += attr.Key + "."
		}
		for _, member := range attr.Value.Group() {
			dst = h.collect(dst, component, prefix, member)
		}
		return dst
	}
	if prefix == "" && attr.Key == FieldComponent {
		if *component == "" {
			*component = attr.Value.String()
		}
		return dst
	}
	return append(dst, field{key: prefix + attr.Key, value: attr.Value})
}

func (h *consoleHandler) label(level slog.Level) string {
	var name, color string
	switch {
	case level >= slog.LevelError:
		name, color = "ERROR", ansiRed
	case level >= slog.LevelWarn:
		name, color = "WARN", ansiYellow
	case level >= slog.LevelInfo:
		name, color = "INFO", ansiBlue
	default:
		name, color = "DEBUG", ansiGray
	}
	if !h.color {
		return name
	}
	return color + name + ansiReset
}

func renderValue(v slog.Value) string {
	var s string
	switch v.Kind() {
	case slog.KindTime:
		s = v.Time().UTC().Format(time.RFC3339)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			s = err.Error()
		} else {
			s = fmt.Sprint(v.Any())
		}
	default:
		s = v.String()
	}
	if needsQuotes(s) {
		return strconv.Quote(s)
	}
	return s
}

func needsQuotes(s string) bool {
	if s == "" {
		return true
	}
	return strings.IndexFunc(s, func(r rune) bool { return r <= ' ' || r == '=' || r == '"' }) >= 0
}
