// Package parse turns loosely formatted text into typed Go values.
//
// Tool input often arrives as almost-JSON: single quotes, trailing commas,
// Python literals, markdown code fences, or values wrapped as
// {"type": ..., "value": ...}. [ParseStringAs] strips fences, repairs the
// JSON with jsonrepair when strict decoding fails, and unwraps such
// envelopes before giving up with an error.
package parse
