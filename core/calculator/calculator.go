package calculator

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/leofalp/calcgo/providers/history"
	"github.com/leofalp/calcgo/providers/history/inmemory"
	"github.com/leofalp/calcgo/providers/observability"
)

// HistoryEntry is one executed operation: (timestamp, operation, params, result).
type HistoryEntry = history.Entry

// Calculator holds an operation registry and the history of invocations.
type Calculator struct {
	registry *registry
	history  history.Provider
	observer observability.Provider
	now      func() time.Time
}

// New creates a calculator preloaded with a copy of operations, which may be nil.
// Nil operations in the table are skipped.
func New(operations Operations, opts ...Option) *Calculator {
	c := &Calculator{
		registry: newRegistry(),
		history:  inmemory.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.registry.merge(operations)
	return c
}

// NewFromAny creates a calculator from an operation table whose type is only
// known at runtime. It accepts nil, [Operations], map[string]Operation,
// map[string]func(...float64) float64, map[string]func(...float64) (float64, error)
// and map[string]any holding those function shapes. Any other value, or a
// table holding a nil or non-function entry, fails with [ErrInvalidParams].
func NewFromAny(operations any, opts ...Option) (*Calculator, error) {
	ops, err := toOperations(operations)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return New(ops, opts...), nil
}

// Register merges operations into the registry, overwriting existing names.
// Nil operations are skipped.
func (c *Calculator) Register(operations Operations) {
	names := c.registry.merge(operations)
	if c.observer != nil {
		c.observer.Debug(context.Background(), "Operations registered",
			observability.Strings(observability.AttrRegisteredNames, names),
			observability.Int(observability.AttrRegistrySize, c.registry.size()),
		)
	}
}

// Unregister removes the named operations and returns the names that were
// registered, sorted. History entries for them are kept, but RepeatLast on
// such an entry fails with [ErrOperationNotFound].
func (c *Calculator) Unregister(names ...string) []string {
	removed := c.registry.remove(names...)
	if c.observer != nil && len(removed) > 0 {
		c.observer.Debug(context.Background(), "Operations unregistered",
			observability.Strings(observability.AttrRegisteredNames, removed),
			observability.Int(observability.AttrRegistrySize, c.registry.size()),
		)
	}
	return removed
}

// RegisterAny is the runtime-typed form of Register. It accepts the same
// shapes as [NewFromAny] and fails with [ErrInvalidOperation] otherwise, in
// which case nothing is registered.
func (c *Calculator) RegisterAny(operations any) error {
	ops, err := toOperations(operations)
	if err != nil {
		if c.observer != nil {
			c.observer.Warn(context.Background(), "Rejected operation registration", observability.Error(err))
		}
		return fmt.Errorf("%w: %v", ErrInvalidOperation, err)
	}
	c.Register(ops)
	return nil
}

// Operations returns the registered operation names, sorted.
func (c *Calculator) Operations() []string {
	return c.registry.names()
}

// observerFor returns the configured observer, falling back to one carried
// by ctx. It may return nil.
func (c *Calculator) observerFor(ctx context.Context) observability.Provider {
	if c.observer != nil {
		return c.observer
	}
	return observability.ObserverFromContext(ctx)
}

// Invoke validates params, runs the named operation and records the call in
// history. Params must be Go integers or floats ([ErrInvalidParams]); booleans
// are rejected rather than read as 0 or 1. The name must be registered
// ([ErrOperationNotFound]). An error from the operation itself is wrapped in
// [ErrOperationFailed] and leaves history untouched.
func (c *Calculator) Invoke(ctx context.Context, name string, params ...any) (float64, error) {
	values, err := normalizeParams(params)
	if err != nil {
		if observer := c.observerFor(ctx); observer != nil {
			observer.Counter(observability.MetricInvocationErrors).Add(ctx, 1, observability.Operation(name))
			observer.Warn(ctx, "Rejected invocation params", observability.Operation(name), observability.Error(err))
		}
		return 0, err
	}
	return c.invoke(ctx, observability.SpanInvoke, name, values)
}

// InvokeFloats is Invoke for callers that already hold float64 params.
func (c *Calculator) InvokeFloats(ctx context.Context, name string, params ...float64) (float64, error) {
	return c.invoke(ctx, observability.SpanInvoke, name, slices.Clone(params))
}

func (c *Calculator) invoke(ctx context.Context, spanName, name string, params []float64) (result float64, err error) {
	if observer := c.observerFor(ctx); observer != nil {
		var span observability.Span
		ctx, span = observer.StartSpan(ctx, spanName,
			observability.String(observability.AttrInvocationID, uuid.NewString()),
			observability.Operation(name),
			observability.Params(params),
			observability.Int(observability.AttrOperationParamCount, len(params)),
			observability.Bool(observability.AttrInvocationRepeat, spanName == observability.SpanRepeat),
		)
		start := time.Now()
		defer func() {
			finish(ctx, observer, span, name, result, err, time.Since(start))
		}()
	}

	op, ok := c.registry.get(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrOperationNotFound, name)
	}

	// History keeps params; the operation sees a copy.
	result, err = op(slices.Clone(params)...)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrOperationFailed, name, err)
	}

	c.history.Append(ctx, HistoryEntry{
		Timestamp: c.now().Format(history.TimestampLayout),
		Operation: name,
		Params:    params,
		Result:    result,
	})
	return result, nil
}

// finish closes the invocation span and records metrics.
func finish(ctx context.Context, observer observability.Provider, span observability.Span, name string, result float64, err error, elapsed time.Duration) {
	nameAttr := observability.Operation(name)

	observer.Counter(observability.MetricInvocations).Add(ctx, 1, nameAttr)
	observer.Histogram(observability.MetricInvokeDuration).Record(ctx, float64(elapsed.Microseconds())/1000, nameAttr)

	if err != nil {
		observer.Counter(observability.MetricInvocationErrors).Add(ctx, 1, nameAttr)
		span.RecordError(err)
		span.SetStatus(observability.StatusError, err.Error())
	} else {
		span.SetAttributes(observability.Result(result))
		span.SetStatus(observability.StatusOK, "")
	}
	span.End()
}

// History returns a copy of every recorded invocation, oldest first.
func (c *Calculator) History(ctx context.Context) []HistoryEntry {
	return c.history.All(ctx)
}

// RecentHistory returns up to n of the most recent entries, oldest first.
func (c *Calculator) RecentHistory(ctx context.Context, n int) []HistoryEntry {
	return c.history.Tail(ctx, n)
}

// HistorySize returns the number of recorded invocations.
func (c *Calculator) HistorySize(ctx context.Context) int {
	return c.history.Count(ctx)
}

// ResetHistory clears the history.
func (c *Calculator) ResetHistory(ctx context.Context) {
	observer := c.observerFor(ctx)
	if observer == nil {
		c.history.Clear(ctx)
		return
	}

	ctx, span := observer.StartSpan(ctx, observability.SpanReset)
	defer span.End()

	cleared := c.history.Count(ctx)
	c.history.Clear(ctx)
	span.SetAttributes(observability.Int(observability.AttrHistoryCleared, cleared))
	span.SetStatus(observability.StatusOK, "")
	observer.Debug(ctx, "History reset", observability.Int(observability.AttrHistoryCleared, cleared))
}

// RepeatLast re-invokes the most recent history entry with its original
// params, which appends a new entry. ok is false when history is empty.
func (c *Calculator) RepeatLast(ctx context.Context) (result float64, ok bool, err error) {
	last, ok := c.history.Last(ctx)
	if !ok {
		if observer := c.observerFor(ctx); observer != nil {
			observer.Debug(ctx, "Nothing to repeat")
		}
		return 0, false, nil
	}
	result, err = c.invoke(ctx, observability.SpanRepeat, last.Operation, last.Params)
	return result, true, err
}
