package observability

// Attribute keys, span names, event names and metric names emitted by the
// calculator, its history store and its tool surface.

const (
	// AttrOperationName is the name the operation was invoked under.
	AttrOperationName = "calculator.operation"

	// AttrOperationParams holds the normalized params as []float64.
	AttrOperationParams = "calculator.params"

	AttrOperationParamCount = "calculator.params.count"

	// AttrOperationResult holds the float64 the operation returned.
	AttrOperationResult = "calculator.result"

	// AttrCall is a one-line rendering of a finished invocation, e.g.
	// "add(1, 2) = 3".
	AttrCall = "calculator.call"

	AttrInvocationID = "calculator.invocation.id"

	// AttrInvocationRepeat is true when the invocation replays the last
	// history entry.
	AttrInvocationRepeat = "calculator.invocation.repeat"

	AttrRegistrySize = "calculator.registry.size"

	// AttrRegisteredNames lists the names written or removed by one call.
	AttrRegisteredNames = "calculator.registry.names"
)

const (
	// AttrHistoryLength is the number of entries after a history change.
	AttrHistoryLength = "history.length"

	// AttrHistoryCleared is the number of entries dropped by a reset.
	AttrHistoryCleared = "history.cleared"

	AttrHistoryTimestamp = "history.timestamp"
)

const (
	AttrToolName     = "tool.name"
	AttrToolInput    = "tool.input"
	AttrToolOutput   = "tool.output"
	AttrToolDuration = "tool.duration"
)

const (
	AttrError             = "error"
	AttrStatus            = "status"
	AttrStatusDescription = "status.description"
	AttrSpanID            = "span.id"
	AttrDuration          = "duration"
)

const (
	SpanInvoke = "calculator.invoke"
	SpanRepeat = "calculator.repeat_last"
	SpanReset  = "calculator.reset_history"
)

const (
	EventHistoryAppend      = "history.append"
	EventHistoryClear       = "history.clear"
	EventToolExecutionStart = "tool.execution.start"
	EventToolExecutionEnd   = "tool.execution.end"
)

const (
	// MetricInvocations counts successful and failed invocations.
	MetricInvocations = "calculator.invocations"

	// MetricInvocationErrors counts invocations that returned an error,
	// including ones rejected before lookup.
	MetricInvocationErrors = "calculator.invocation.errors"

	// MetricInvokeDuration records invocation latency in milliseconds.
	MetricInvokeDuration = "calculator.invoke.duration_ms"
)
