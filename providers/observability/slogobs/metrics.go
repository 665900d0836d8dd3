package slogobs

import (
	"context"
	"log/slog"
	"sync"

	"github.com/leofalp/calcgo/providers/observability"
)

// Stats summarizes the values recorded on a histogram.
type Stats struct {
	Count int64
	Sum   float64
	Min   float64
	Max   float64
}

// Mean is Sum/Count, or 0 for an empty histogram.
func (s Stats) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}

type metrics struct {
	mu         sync.Mutex
	counters   map[string]*counter
	histograms map[string]*histogram
}

func newMetrics() *metrics {
	return &metrics{
		counters:   make(map[string]*counter),
		histograms: make(map[string]*histogram),
	}
}

func (m *metrics) counterFor(name string, logger *slog.Logger) *counter {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.counters[name]
	if !ok {
		c = &counter{name: name, logger: logger}
		m.counters[name] = c
	}
	return c
}

func (m *metrics) histogramFor(name string, logger *slog.Logger) *histogram {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.histograms[name]
	if !ok {
		h = &histogram{name: name, logger: logger}
		m.histograms[name] = h
	}
	return h
}

func (m *metrics) lookupCounter(name string) (*counter, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.counters[name]
	return c, ok
}

func (m *metrics) lookupHistogram(name string) (*histogram, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.histograms[name]
	return h, ok
}

type counter struct {
	name   string
	logger *slog.Logger

	mu    sync.Mutex
	value int64
}

// Add logs the delta and the new total at DEBUG.
func (c *counter) Add(ctx context.Context, delta int64, attrs ...observability.Attribute) {
	c.mu.Lock()
	c.value += delta
	total := c.value
	c.mu.Unlock()

	head := []slog.Attr{
		slog.String("metric", c.name),
		slog.Int64("delta", delta),
		slog.Int64("value", total),
	}
	c.logger.LogAttrs(ctx, slog.LevelDebug, "Counter", toSlog(head, attrs)...)
}

func (c *counter) total() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

type histogram struct {
	name   string
	logger *slog.Logger

	mu    sync.Mutex
	stats Stats
}

// Record folds value into the running stats and logs it at DEBUG.
func (h *histogram) Record(ctx context.Context, value float64, attrs ...observability.Attribute) {
	h.mu.Lock()
	if h.stats.Count == 0 || value < h.stats.Min {
		h.stats.Min = value
	}
	if h.stats.Count == 0 || value > h.stats.Max {
		h.stats.Max = value
	}
	h.stats.Count++
	h.stats.Sum += value
	h.mu.Unlock()

	head := []slog.Attr{
		slog.String("metric", h.name),
		slog.Float64("value", value),
	}
	h.logger.LogAttrs(ctx, slog.LevelDebug, "Histogram", toSlog(head, attrs)...)
}

func (h *histogram) snapshot() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stats
}
