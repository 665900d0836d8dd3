package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

var errNotWrapped = errors.New("not a schema-wrapped value")

// ParseStringAs parses content into T.
// Strings, bools, integers and floats are converted with strconv (after
// unwrapping a {"type","value"} envelope if needed). Every other type is
// decoded as JSON, repairing the text with jsonrepair when strict decoding
// fails.
//
//	type call struct {
//	    Operation string `json:"operation"`
//	    Params    []any  `json:"params"`
//	}
//	c, err := ParseStringAs[call](`{operation: 'add', params: [1, 2,]}`)
//	n, err := ParseStringAs[int]("42")
func ParseStringAs[T any](content string) (T, error) {
	var result T
	target := reflect.ValueOf(&result).Elem()

	switch target.Kind() {
	case reflect.String:
		if strings.HasPrefix(strings.TrimSpace(content), "{") {
			if unwrapped, err := unwrapPrimitive(content); err == nil {
				target.SetString(unwrapped)
				return result, nil
			}
		}
		target.SetString(content)
		return result, nil

	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		err := setScalar(target, strings.TrimSpace(content))
		if err == nil {
			return result, nil
		}
		if unwrapped, unwrapErr := unwrapPrimitive(content); unwrapErr == nil {
			if retryErr := setScalar(target, unwrapped); retryErr == nil {
				return result, nil
			}
		}
		return result, fmt.Errorf("failed to parse content as %s: %w", target.Kind(), err)

	default:
		if err := decodeJSON(stripCodeFence(content), &result); err != nil {
			return result, err
		}
		return result, nil
	}
}

// setScalar parses s into the scalar value v.
func setScalar(v reflect.Value, s string) error {
	switch v.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	default:
		u, err := strconv.ParseUint(s, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	}
	return nil
}

// decodeJSON unmarshals content into out, falling back to a repaired copy and
// then to a copy with schema envelopes removed.
func decodeJSON(content string, out any) error {
	err := json.Unmarshal([]byte(content), out)
	if err == nil {
		return nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(content)
	if repairErr != nil {
		return fmt.Errorf("failed to unmarshal content as %T and failed to repair JSON: unmarshal error: %w, repair error: %v", out, err, repairErr)
	}
	err = json.Unmarshal([]byte(repaired), out)
	if err == nil {
		return nil
	}

	if unwrapped, unwrapErr := unwrapSchemaValues(repaired); unwrapErr == nil {
		if json.Unmarshal([]byte(unwrapped), out) == nil {
			return nil
		}
	}
	return fmt.Errorf("failed to unmarshal repaired JSON as %T: %w (repaired: %s)", out, err, repaired)
}

// stripCodeFence removes a surrounding ```lang ... ``` block if present.
func stripCodeFence(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") || !strings.HasSuffix(trimmed, "```") || len(trimmed) < 6 {
		return content
	}
	body := trimmed[3 : len(trimmed)-3]
	if newline := strings.IndexByte(body, '\n'); newline >= 0 && !strings.ContainsAny(body[:newline], "{[") {
		body = body[newline+1:]
	}
	return strings.TrimSpace(body)
}

// isEnvelope reports whether m is exactly {"type": ..., "value": ...}.
func isEnvelope(m map[string]any) (any, bool) {
	if len(m) != 2 {
		return nil, false
	}
	if _, ok := m["type"]; !ok {
		return nil, false
	}
	value, ok := m["value"]
	return value, ok
}

// unwrapPrimitive returns the textual form of the value inside an envelope.
func unwrapPrimitive(content string) (string, error) {
	var data map[string]any
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return "", err
	}
	value, ok := isEnvelope(data)
	if !ok {
		return "", errNotWrapped
	}
	switch v := value.(type) {
	case string:
		return v, nil
	case float64, bool:
		return fmt.Sprint(v), nil
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(encoded), nil
	}
}

// unwrapSchemaValues rewrites every envelope in a JSON document with its value.
//
//	{"operation": {"type": "string", "value": "add"}} -> {"operation": "add"}
func unwrapSchemaValues(content string) (string, error) {
	var data any
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return "", err
	}
	encoded, err := json.Marshal(unwrap(data))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func unwrap(data any) any {
	switch v := data.(type) {
	case map[string]any:
		if value, ok := isEnvelope(v); ok {
			return unwrap(value)
		}
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[key] = unwrap(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = unwrap(val)
		}
		return out
	default:
		return data
	}
}
