package slogobs

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/leofalp/calcgo/providers/observability"
)

type span struct {
	logger *slog.Logger
	id     string
	name   string
	start  time.Time

	mu    sync.Mutex
	attrs []observability.Attribute
	ended bool
}

func newSpan(logger *slog.Logger, name string, attrs []observability.Attribute) *span {
	return &span{
		logger: logger,
		id:     uuid.NewString(),
		name:   name,
		start:  time.Now(),
		attrs:  slices.Clone(attrs),
	}
}

func (s *span) header(event string) []slog.Attr {
	return []slog.Attr{
		slog.String("span", s.name),
		slog.String(observability.AttrSpanID, s.id),
		slog.String("event", event),
	}
}

// End logs the elapsed time and every attribute collected so far. For an
// invocation span the record also carries a one-line rendering of the call
// under AttrCall. Later calls do nothing.
func (s *span) End() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ended {
		return
	}
	s.ended = true

	attrs := append(s.header("span.end"), slog.Duration(observability.AttrDuration, time.Since(s.start)))
	if call, ok := callSummary(s.attrs); ok {
		attrs = append(attrs, slog.String(observability.AttrCall, call))
	}
	s.logger.LogAttrs(context.Background(), slog.LevelDebug, "Span ended", toSlog(attrs, s.attrs)...)
}

func (s *span) SetAttributes(attrs ...observability.Attribute) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attrs = append(s.attrs, attrs...)
}

func (s *span) SetStatus(code observability.StatusCode, description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attrs = append(s.attrs, observability.String(observability.AttrStatus, code.String()))
	if description != "" {
		s.attrs = append(s.attrs, observability.String(observability.AttrStatusDescription, description))
	}
}

// RecordError keeps the message for End and logs it right away at ERROR.
func (s *span) RecordError(err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attrs = append(s.attrs, observability.Error(err))

	attrs := append(s.header("error"), slog.String(observability.AttrError, err.Error()))
	s.logger.LogAttrs(context.Background(), slog.LevelError, "Span error", attrs...)
}

func (s *span) AddEvent(name string, attrs ...observability.Attribute) {
	s.logger.LogAttrs(context.Background(), slog.LevelDebug, "Span event", toSlog(s.header(name), attrs)...)
}
