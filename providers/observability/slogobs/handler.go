package slogobs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

const timeLayout = "2006-01-02 15:04:05"

// handler is the slog.Handler behind every Observer. Attributes are
// flattened into one map per record (groups become dotted keys) and run
// through renderValue before they are written.
type handler struct {
	format Format
	level  slog.Leveler
	out    io.Writer
	colors bool
	mu     *sync.Mutex
	attrs  []slog.Attr
	prefix string
}

func newHandler(cfg *config) *handler {
	h := &handler{
		format: cfg.format,
		level:  cfg.level,
		out:    cfg.output,
		mu:     &sync.Mutex{},
	}
	if f, ok := cfg.output.(*os.File); ok && h.format != FormatJSON {
		h.colors = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return h
}

func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	fields := make(map[string]any, len(h.attrs)+r.NumAttrs())
	for _, attr := range h.attrs {
		h.flatten(fields, "", attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		h.flatten(fields, h.prefix, attr)
		return true
	})

	var (
		line []byte
		err  error
	)
	switch h.format {
	case FormatJSON:
		line, err = h.encodeJSON(r, fields)
	case FormatPretty:
		line = h.encodePretty(r, fields)
	default:
		line = h.encodeCompact(r, fields)
	}
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.out.Write(line)
	return err
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = slices.Clone(h.attrs)
	for _, attr := range attrs {
		attr.Key = h.prefix + attr.Key
		next.attrs = append(next.attrs, attr)
	}
	return &next
}

func (h *handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

func (h *handler) flatten(fields map[string]any, prefix string, attr slog.Attr) {
	value := attr.Value.Resolve()
	if value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			prefix += attr.Key + "."
		}
		for _, member := range value.Group() {
			h.flatten(fields, prefix, member)
		}
		return
	}
	if attr.Key == "" {
		return
	}

	key := prefix + attr.Key
	switch value.Kind() {
	case slog.KindDuration:
		fields[key] = value.Duration().String()
	case slog.KindTime:
		fields[key] = value.Time().Format(timeLayout)
	default:
		if err, ok := value.Any().(error); ok {
			fields[key] = err.Error()
			return
		}
		fields[key] = renderValue(h.format, value.Any())
	}
}

// encodeCompact: 2006-01-02 15:04:05 LEVEL msg -> {"key":value}
func (h *handler) encodeCompact(r slog.Record, fields map[string]any) []byte {
	var b strings.Builder
	b.WriteString(r.Time.Format(timeLayout))
	b.WriteByte(' ')
	h.writeLevel(&b, r.Level, "%5s")
	b.WriteByte(' ')
	b.WriteString(r.Message)
	if len(fields) > 0 {
		b.WriteString(" -> ")
		encoded, err := json.Marshal(fields)
		if err != nil {
			fmt.Fprintf(&b, "[unencodable attributes: %v]", err)
		} else {
			b.Write(encoded)
		}
	}
	b.WriteByte('\n')
	return []byte(b.String())
}

// encodePretty: [2006-01-02 15:04:05] LEVEL | msg, then "  - key: value" per field.
func (h *handler) encodePretty(r slog.Record, fields map[string]any) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] ", r.Time.Format(timeLayout))
	h.writeLevel(&b, r.Level, "%-5s")
	b.WriteString(" | ")
	b.WriteString(r.Message)
	b.WriteByte('\n')

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		fmt.Fprintf(&b, "  - %s: %v\n", key, fields[key])
	}
	return []byte(b.String())
}

func (h *handler) encodeJSON(r slog.Record, fields map[string]any) ([]byte, error) {
	fields["time"] = r.Time.Format("2006-01-02T15:04:05")
	fields["level"] = levelLabel(r.Level)
	fields["msg"] = r.Message

	encoded, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	return append(encoded, '\n'), nil
}

func (h *handler) writeLevel(b *strings.Builder, level slog.Level, layout string) {
	label := fmt.Sprintf(layout, levelLabel(level))
	if !h.colors {
		b.WriteString(label)
		return
	}
	b.WriteString(levelColor(level))
	b.WriteString(label)
	b.WriteString(colorReset)
}

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorGreen  = "\033[32m"
	colorBlue   = "\033[34m"
)

func levelColor(level slog.Level) string {
	switch {
	case level < slog.LevelInfo:
		return colorBlue
	case level < slog.LevelWarn:
		return colorGreen
	case level < slog.LevelError:
		return colorYellow
	default:
		return colorRed
	}
}
