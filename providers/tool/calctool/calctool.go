package calctool

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/leofalp/calcgo/core/calculator"
	"github.com/leofalp/calcgo/providers/tool"
)

// Name is the tool name reported by [NewCalculatorTool].
const Name = "calculator"

// ErrNothingToRepeat is returned for a repeat request on an empty history.
var ErrNothingToRepeat = errors.New("calctool: history is empty, nothing to repeat")

// Input is one of three requests: run Operation with Params, replay the last
// entry when Repeat is set, or read the History most recent entries. Repeat
// takes precedence over History, and both over Operation.
type Input struct {
	Operation string `json:"operation,omitempty"`
	Params    []any  `json:"params,omitempty"`
	Repeat    bool   `json:"repeat,omitempty"`
	History   int    `json:"history,omitempty"`
}

// Output carries the result and the history length after the call. Entries
// is only filled for history requests, which leave Result at zero.
type Output struct {
	Result        float64                   `json:"result"`
	HistoryLength int                       `json:"history_length"`
	Entries       []calculator.HistoryEntry `json:"entries,omitempty"`
}

// NewCalculatorTool wraps calc in a tool. The description lists the
// operations registered at construction time.
func NewCalculatorTool(calc *calculator.Calculator) *tool.Tool[Input, Output] {
	description := "Runs a named numeric operation and records it in history."
	if names := calc.Operations(); len(names) > 0 {
		description += " Operations: " + strings.Join(names, ", ") + "."
	}
	return tool.NewTool(Name, Runner(calc), tool.WithDescription(description))
}

// Runner returns the function executed by the tool, for callers that want to
// skip JSON.
func Runner(calc *calculator.Calculator) func(context.Context, Input) (Output, error) {
	return func(ctx context.Context, in Input) (Output, error) {
		var (
			result float64
			err    error
		)
		switch {
		case in.Repeat:
			var ok bool
			result, ok, err = calc.RepeatLast(ctx)
			if err == nil && !ok {
				err = ErrNothingToRepeat
			}
		case in.History > 0:
			return Output{
				HistoryLength: calc.HistorySize(ctx),
				Entries:       calc.RecentHistory(ctx, in.History),
			}, nil
		case in.History < 0:
			return Output{}, fmt.Errorf("calctool: history must be positive, got %d", in.History)
		case in.Operation == "":
			return Output{}, fmt.Errorf("%w: operation is required", calculator.ErrOperationNotFound)
		default:
			result, err = calc.Invoke(ctx, in.Operation, in.Params...)
		}
		if err != nil {
			return Output{}, err
		}
		return Output{Result: result, HistoryLength: calc.HistorySize(ctx)}, nil
	}
}
