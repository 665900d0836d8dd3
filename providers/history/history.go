package history

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// TimestampLayout is the layout used for Entry.Timestamp.
const TimestampLayout = "2006-01-02 15:04:05"

// Entry records one executed operation: when it ran, under which name, with
// which parameters, and what it returned.
type Entry struct {
	Timestamp string    `json:"timestamp"`
	Operation string    `json:"operation"`
	Params    []float64 `json:"params"`
	Result    float64   `json:"result"`
}

// Clone returns a copy of e that shares no memory with it.
func (e Entry) Clone() Entry {
	e.Params = slices.Clone(e.Params)
	return e
}

// String renders the entry as ('ts', 'op', (p1, p2), result).
func (e Entry) String() string {
	params := make([]string, len(e.Params))
	for i, p := range e.Params {
		params[i] = fmt.Sprint(p)
	}
	return fmt.Sprintf("('%s', '%s', (%s), %v)", e.Timestamp, e.Operation, strings.Join(params, ", "), e.Result)
}

// Provider stores the history of a single calculator.
type Provider interface {
	// Append stores a copy of entry after all existing entries.
	Append(ctx context.Context, entry Entry)
	// All returns a copy of every entry in execution order.
	All(ctx context.Context) []Entry
	// Last returns the most recent entry, or false when the history is empty.
	Last(ctx context.Context) (Entry, bool)
	// Tail returns up to n of the most recent entries, oldest first, and an
	// empty slice when n <= 0.
	Tail(ctx context.Context, n int) []Entry
	// Count returns the number of stored entries.
	Count(ctx context.Context) int
	// Clear removes every entry.
	Clear(ctx context.Context)
}
