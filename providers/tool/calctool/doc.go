// Package calctool exposes a [calculator.Calculator] as a JSON-callable
// [tool.Tool]. Input is {"operation": "add", "params": [1, 2]},
// {"repeat": true} or {"history": 5}; output is
// {"result": 3, "history_length": 1}, plus "entries" for history requests.
package calctool
