package slogobs

import (
	"math"
	"strconv"
	"strings"

	"github.com/leofalp/calcgo/providers/observability"
)

// formatNumber writes the shortest exact form of f, switching to an exponent
// below 1e-4 and from 1e16 up. Special values come out as +Inf, -Inf and NaN.
func formatNumber(f float64) string {
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatParams renders params as a tuple: (1, 2.5).
func formatParams(params []float64) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, p := range params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatNumber(p))
	}
	b.WriteByte(')')
	return b.String()
}

// callSummary renders a finished invocation from its span attributes:
// "add(1, 2) = 3", or "div(1, 0) failed" when no result was recorded. It
// reports false when the span is not a calculator invocation.
func callSummary(attrs []observability.Attribute) (string, bool) {
	var (
		name      string
		params    []float64
		result    float64
		hasName   bool
		hasResult bool
	)
	for _, attr := range attrs {
		switch attr.Key {
		case observability.AttrOperationName:
			name, hasName = attr.Value.(string)
		case observability.AttrOperationParams:
			params, _ = attr.Value.([]float64)
		case observability.AttrOperationResult:
			result, hasResult = attr.Value.(float64)
		}
	}
	if !hasName {
		return "", false
	}
	call := name + formatParams(params)
	if !hasResult {
		return call + " failed", true
	}
	return call + " = " + formatNumber(result), true
}

// renderValue adapts calculator values for a handler format. Text formats
// show params as a tuple. Every format turns non-finite floats into their
// names, which encoding/json cannot otherwise represent.
func renderValue(format Format, value any) any {
	switch v := value.(type) {
	case float64:
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return formatNumber(v)
		}
		return v
	case []float64:
		if format != FormatJSON {
			return formatParams(v)
		}
		out := make([]any, len(v))
		for i, p := range v {
			out[i] = renderValue(format, p)
		}
		return out
	default:
		return value
	}
}
