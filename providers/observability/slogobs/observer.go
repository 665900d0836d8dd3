package slogobs

import (
	"context"
	"log/slog"

	"github.com/leofalp/calcgo/providers/observability"
)

// Observer reports calculator activity as slog records and keeps running
// metric totals in memory.
type Observer struct {
	logger  *slog.Logger
	metrics *metrics
}

var _ observability.Provider = (*Observer)(nil)

// New builds an Observer configured from CALC_LOG_FORMAT and CALC_LOG_LEVEL,
// then opts. Unusable environment values are reported as a WARN record and
// otherwise ignored.
//
//	observer := slogobs.New(slogobs.WithFormat(slogobs.FormatPretty), slogobs.WithLevel(slog.LevelDebug))
//	calc := calculator.New(nil, calculator.WithBuiltins(), calculator.WithObserver(observer))
func New(opts ...Option) *Observer {
	cfg := loadConfig(opts...)
	o := &Observer{
		logger:  slog.New(newHandler(cfg)),
		metrics: newMetrics(),
	}
	for _, problem := range cfg.problems {
		o.logger.Warn("Ignoring log setting", slog.String("reason", problem))
	}
	return o
}

// StartSpan logs the start at DEBUG and returns ctx carrying the span.
func (o *Observer) StartSpan(ctx context.Context, name string, attrs ...observability.Attribute) (context.Context, observability.Span) {
	s := newSpan(o.logger, name, attrs)
	o.logger.LogAttrs(ctx, slog.LevelDebug, "Span started", toSlog(s.header("span.start"), attrs)...)
	return observability.ContextWithSpan(ctx, s), s
}

func (o *Observer) Counter(name string) observability.Counter {
	return o.metrics.counterFor(name, o.logger)
}

func (o *Observer) Histogram(name string) observability.Histogram {
	return o.metrics.histogramFor(name, o.logger)
}

// CounterValue is the running total of a counter, 0 if it was never used.
func (o *Observer) CounterValue(name string) int64 {
	if c, ok := o.metrics.lookupCounter(name); ok {
		return c.total()
	}
	return 0
}

// HistogramStats summarizes every value recorded on a histogram so far.
// ok is false if nothing was recorded.
func (o *Observer) HistogramStats(name string) (stats Stats, ok bool) {
	h, ok := o.metrics.lookupHistogram(name)
	if !ok {
		return Stats{}, false
	}
	return h.snapshot(), true
}

func (o *Observer) Debug(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.LogAttrs(ctx, slog.LevelDebug, msg, toSlog(nil, attrs)...)
}

func (o *Observer) Info(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.LogAttrs(ctx, slog.LevelInfo, msg, toSlog(nil, attrs)...)
}

func (o *Observer) Warn(ctx context.Context, msg string, attrs ...observability.Attribute) {
	o.logger.LogAttrs(ctx, slog.LevelWarn, msg, toSlog(nil, attrs)...)
}

// toSlog appends attrs to dst as slog attributes.
func toSlog(dst []slog.Attr, attrs []observability.Attribute) []slog.Attr {
	for _, attr := range attrs {
		dst = append(dst, slog.Any(attr.Key, attr.Value))
	}
	return dst
}
