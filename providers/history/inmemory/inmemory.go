package inmemory

import (
	"context"
	"sync"

	"github.com/leofalp/calcgo/providers/history"
	"github.com/leofalp/calcgo/providers/observability"
)

// Store keeps history entries in a slice guarded by a RWMutex.
type Store struct {
	mu      sync.RWMutex
	entries []history.Entry
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		entries: []history.Entry{},
	}
}

var _ history.Provider = (*Store)(nil)

// Append stores a copy of entry. When a span is present in ctx, an append
// event is recorded and the new history length is set on the span.
func (s *Store) Append(ctx context.Context, entry history.Entry) {
	span := observability.SpanFromContext(ctx)

	s.mu.Lock()
	s.entries = append(s.entries, entry.Clone())
	total := len(s.entries)
	s.mu.Unlock()

	if span != nil {
		span.AddEvent(observability.EventHistoryAppend,
			observability.Operation(entry.Operation),
			observability.String(observability.AttrHistoryTimestamp, entry.Timestamp),
		)
		span.SetAttributes(observability.Int(observability.AttrHistoryLength, total))
	}
}

// All returns deep copies of every entry. The result is never nil.
func (s *Store) All(_ context.Context) []history.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]history.Entry, len(s.entries))
	for i, entry := range s.entries {
		out[i] = entry.Clone()
	}
	return out
}

// Last returns a copy of the most recent entry.
func (s *Store) Last(_ context.Context) (history.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.entries) == 0 {
		return history.Entry{}, false
	}
	return s.entries[len(s.entries)-1].Clone(), true
}

// Tail returns up to n of the most recent entries, oldest first.
// It returns an empty slice when n <= 0.
func (s *Store) Tail(_ context.Context, n int) []history.Entry {
	if n <= 0 {
		return []history.Entry{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n > len(s.entries) {
		n = len(s.entries)
	}
	start := len(s.entries) - n
	out := make([]history.Entry, n)
	for i, entry := range s.entries[start:] {
		out[i] = entry.Clone()
	}
	return out
}

func (s *Store) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Clear drops all entries. Returned copies are unaffected, so the backing
// array can be reused.
func (s *Store) Clear(ctx context.Context) {
	if span := observability.SpanFromContext(ctx); span != nil {
		span.AddEvent(observability.EventHistoryClear)
	}

	s.mu.Lock()
	s.entries = s.entries[:0]
	s.mu.Unlock()
}
