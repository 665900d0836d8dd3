package calculator

import (
	"fmt"
	"reflect"
)

// normalizeParams checks that every parameter is an integer or floating
// point value and converts them to float64, preserving order.
func normalizeParams(params []any) ([]float64, error) {
	values := make([]float64, len(params))
	for i, param := range params {
		value, ok := toFloat(param)
		if !ok {
			return nil, fmt.Errorf("%w: param %d is %T, want int or float", ErrInvalidParams, i, param)
		}
		values[i] = value
	}
	return values, nil
}

func toFloat(param any) (float64, bool) {
	switch v := param.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case float32:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	case nil, bool, string:
		return 0, false
	}

	// Named numeric types and the remaining integer widths.
	rv := reflect.ValueOf(param)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
