package tool

import (
	"context"
	"encoding/json"
	"time"

	"github.com/leofalp/calcgo/core/parse"
	"github.com/leofalp/calcgo/providers/observability"
)

// Info describes a tool to whoever dispatches calls to it.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// GenericTool is the type-erased view of a [Tool].
type GenericTool interface {
	ToolInfo() Info
	// Call runs the tool on JSON input and returns JSON output.
	Call(ctx context.Context, inputJSON string) (string, error)
}

// Tool binds a name and description to a typed function.
type Tool[I, O any] struct {
	Name        string
	Description string
	Function    func(ctx context.Context, input I) (O, error)
}

var _ GenericTool = (*Tool[struct{}, struct{}])(nil)

type toolOptions struct {
	description string
}

// Option configures a Tool created with [NewTool].
type Option func(*toolOptions)

// WithDescription sets a human-readable description for the tool.
func WithDescription(description string) Option {
	return func(o *toolOptions) {
		o.description = description
	}
}

// NewTool constructs a Tool named name that runs function.
//
//	calc := tool.NewTool("calculator", run, tool.WithDescription("Runs a named operation."))
func NewTool[I, O any](name string, function func(ctx context.Context, input I) (O, error), options ...Option) *Tool[I, O] {
	opts := &toolOptions{}
	for _, option := range options {
		option(opts)
	}
	return &Tool[I, O]{
		Name:        name,
		Description: opts.description,
		Function:    function,
	}
}

func (t *Tool[I, O]) ToolInfo() Info {
	return Info{Name: t.Name, Description: t.Description}
}

// Call decodes inputJSON into I, runs the function and encodes its output.
// When ctx carries a span, start and end events plus input, output, duration
// and any error are recorded on it.
func (t *Tool[I, O]) Call(ctx context.Context, inputJSON string) (string, error) {
	span := observability.SpanFromContext(ctx)
	if span != nil {
		span.AddEvent(observability.EventToolExecutionStart,
			observability.String(observability.AttrToolName, t.Name),
			observability.String(observability.AttrToolInput, observability.TruncateString(inputJSON, observability.DefaultMaxStringLength)),
		)
		defer span.AddEvent(observability.EventToolExecutionEnd)
	}

	start := time.Now()
	output, err := t.run(ctx, inputJSON)
	if span != nil {
		span.SetAttributes(observability.Duration(observability.AttrToolDuration, time.Since(start)))
		if err != nil {
			span.RecordError(err)
		} else {
			span.SetAttributes(observability.String(observability.AttrToolOutput, output))
		}
	}
	return output, err
}

func (t *Tool[I, O]) run(ctx context.Context, inputJSON string) (string, error) {
	input, err := parse.ParseStringAs[I](inputJSON)
	if err != nil {
		return "", err
	}
	output, err := t.Function(ctx, input)
	if err != nil {
		return "", err
	}
	encoded, err := json.Marshal(output)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
