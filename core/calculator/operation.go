package calculator

import "fmt"

// Operation is a numeric function of any number of parameters.
type Operation func(params ...float64) (float64, error)

// OperationFunc adapts an infallible function into an [Operation].
func OperationFunc(fn func(params ...float64) float64) Operation {
	if fn == nil {
		return nil
	}
	return func(params ...float64) (float64, error) {
		return fn(params...), nil
	}
}

// Operations maps operation names to their implementations.
type Operations map[string]Operation

// errNotMapping reports a value that is not a table of operations at all.
type errNotMapping struct {
	got any
}

func (e errNotMapping) Error() string {
	return fmt.Sprintf("expected a mapping of operations, got %T", e.got)
}

// errBadEntry reports a table entry that is not a usable function.
type errBadEntry struct {
	name string
	got  any
}

func (e errBadEntry) Error() string {
	if e.got == nil {
		return fmt.Sprintf("operation %q is nil", e.name)
	}
	return fmt.Sprintf("operation %q: expected a numeric function, got %T", e.name, e.got)
}

// toOperations converts the runtime shapes accepted by NewFromAny and
// RegisterAny into Operations. A nil input yields an empty table.
func toOperations(value any) (Operations, error) {
	out := Operations{}

	switch table := value.(type) {
	case nil:
		return out, nil
	case Operations:
		return fromTyped(table)
	case map[string]Operation:
		return fromTyped(table)
	case map[string]func(...float64) (float64, error):
		for name, fn := range table {
			if fn == nil {
				return nil, errBadEntry{name: name}
			}
			out[name] = fn
		}
		return out, nil
	case map[string]func(...float64) float64:
		for name, fn := range table {
			if fn == nil {
				return nil, errBadEntry{name: name}
			}
			out[name] = OperationFunc(fn)
		}
		return out, nil
	case map[string]any:
		for name, entry := range table {
			op, ok := toOperation(entry)
			if !ok {
				return nil, errBadEntry{name: name, got: entry}
			}
			out[name] = op
		}
		return out, nil
	default:
		return nil, errNotMapping{got: value}
	}
}

func fromTyped(table map[string]Operation) (Operations, error) {
	out := make(Operations, len(table))
	for name, op := range table {
		if op == nil {
			return nil, errBadEntry{name: name}
		}
		out[name] = op
	}
	return out, nil
}

func toOperation(entry any) (Operation, bool) {
	switch fn := entry.(type) {
	case Operation:
		return fn, fn != nil
	case func(...float64) (float64, error):
		return fn, fn != nil
	case func(...float64) float64:
		return OperationFunc(fn), fn != nil
	default:
		return nil, false
	}
}
