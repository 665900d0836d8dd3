// Package slogobs is an observability.Provider that writes calculator
// activity through log/slog.
//
// Spans, counters and histograms all become log records. Invocation spans
// end with a calculator.call attribute such as "add(1, 2) = 3", params
// print as tuples in the compact and pretty formats, and infinite or NaN
// results stay encodable in JSON. Counter totals and histogram stats are
// kept in memory and can be read back with [Observer.CounterValue] and
// [Observer.HistogramStats].
//
// Output is configured by CALC_LOG_FORMAT (compact, pretty, json) and
// CALC_LOG_LEVEL (DEBUG, INFO, WARN, ERROR), overridden by [WithFormat],
// [WithLevel] and [WithOutput].
package slogobs
