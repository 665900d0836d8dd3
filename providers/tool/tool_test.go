package tool

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/leofalp/calcgo/providers/observability"
)

// testSpan records event names and attribute keys for assertions.
type testSpan struct {
	events []string
	keys   []string
	errs   []error
}

func (s *testSpan) End() {}

func (s *testSpan) SetStatus(observability.StatusCode, string) {}

func (s *testSpan) RecordError(err error) {
	s.errs = append(s.errs, err)
}

func (s *testSpan) AddEvent(name string, _ ...observability.Attribute) {
	s.events = append(s.events, name)
}

func (s *testSpan) SetAttributes(attrs ...observability.Attribute) {
	for _, attr := range attrs {
		s.keys = append(s.keys, attr.Key)
	}
}

type doubleInput struct {
	Value int `json:"value"`
}

type doubleOutput struct {
	Result int `json:"result"`
}

func double(_ context.Context, in doubleInput) (doubleOutput, error) {
	return doubleOutput{Result: in.Value * 2}, nil
}

func TestNewTool_Info(t *testing.T) {
	plain := NewTool("double", double)
	if info := plain.ToolInfo(); info.Name != "double" || info.Description != "" {
		t.Errorf("unexpected info: %+v", info)
	}

	described := NewTool("double", double, WithDescription("Doubles a value."))
	if got := described.ToolInfo().Description; got != "Doubles a value." {
		t.Errorf("expected description, got %q", got)
	}
}

func TestCall_Success(t *testing.T) {
	out, err := NewTool("double", double).Call(context.Background(), `{"value": 21}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var result doubleOutput
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid output JSON: %v", err)
	}
	if result.Result != 42 {
		t.Errorf("expected 42, got %d", result.Result)
	}
}

func TestCall_RepairsInput(t *testing.T) {
	out, err := NewTool("double", double).Call(context.Background(), `{value: 5,}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != `{"result":10}` {
		t.Errorf("unexpected output %s", out)
	}
}

func TestCall_HandlerError(t *testing.T) {
	errBoom := errors.New("boom")
	failing := NewTool("fail", func(context.Context, doubleInput) (doubleOutput, error) {
		return doubleOutput{}, errBoom
	})

	span := &testSpan{}
	ctx := observability.ContextWithSpan(context.Background(), span)
	out, err := failing.Call(ctx, `{"value": 1}`)
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if out != "" {
		t.Errorf("expected no output, got %q", out)
	}
	if len(span.errs) != 1 {
		t.Errorf("expected the error on the span, got %v", span.errs)
	}
}

func TestCall_SpanEvents(t *testing.T) {
	span := &testSpan{}
	ctx := observability.ContextWithSpan(context.Background(), span)

	if _, err := NewTool("double", double).Call(ctx, `{"value": 1}`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantEvents := []string{observability.EventToolExecutionStart, observability.EventToolExecutionEnd}
	if !reflect.DeepEqual(span.events, wantEvents) {
		t.Errorf("events = %v, want %v", span.events, wantEvents)
	}
	wantKeys := []string{observability.AttrToolDuration, observability.AttrToolOutput}
	if !reflect.DeepEqual(span.keys, wantKeys) {
		t.Errorf("attribute keys = %v, want %v", span.keys, wantKeys)
	}
}

func TestCall_InvalidInput(t *testing.T) {
	if _, err := NewTool("double", double).Call(context.Background(), `[1, 2]`); err == nil {
		t.Error("expected decoding error for array input")
	}
}
