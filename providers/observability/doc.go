// Package observability defines how calcgo reports on itself.
//
// A [Provider] bundles tracing, metrics and logging. The calculator takes
// one through calculator.WithObserver, or picks one up per call from the
// context via [ContextWithObserver]. Spans travel with the context too
// ([ContextWithSpan], [SpanFromContext]) so the history store and the tool
// wrapper can add events to the invocation span they run under.
//
// [Operation], [Params] and [Result] build the attributes every invocation
// span carries; semconv.go lists all keys, span, event and metric names.
package observability
