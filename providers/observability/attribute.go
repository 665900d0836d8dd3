package observability

import (
	"fmt"
	"slices"
	"time"
)

// Attribute is a key/value pair attached to spans, events, metrics and logs.
type Attribute struct {
	Key   string
	Value any
}

// Operation tags the operation name an invocation was made under.
func Operation(name string) Attribute {
	return Attribute{Key: AttrOperationName, Value: name}
}

// Params tags the normalized params of an invocation. The slice is copied,
// so a span keeps the values it was given even if the caller reuses its
// buffer.
func Params(values []float64) Attribute {
	return Attribute{Key: AttrOperationParams, Value: slices.Clone(values)}
}

// Result tags the value an operation returned.
func Result(value float64) Attribute {
	return Attribute{Key: AttrOperationResult, Value: value}
}

func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Strings copies values.
func Strings(key string, values []string) Attribute {
	return Attribute{Key: key, Value: slices.Clone(values)}
}

func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value}
}

// Error stores the message of err under AttrError; nil becomes "".
func Error(err error) Attribute {
	if err == nil {
		return Attribute{Key: AttrError, Value: ""}
	}
	return Attribute{Key: AttrError, Value: err.Error()}
}

// DefaultMaxStringLength bounds raw tool input recorded on spans.
const DefaultMaxStringLength = 500

// TruncateString cuts s to maxLen bytes and notes the original length.
// maxLen <= 0 means DefaultMaxStringLength.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxStringLength
	}
	if len(s) <= maxLen {
		return s
	}
	return fmt.Sprintf("%s... (truncated, total: %d chars)", s[:maxLen], len(s))
}
