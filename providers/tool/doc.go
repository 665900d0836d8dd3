// Package tool wraps typed Go functions so they can be called with JSON text.
//
// [NewTool] binds a name and a func(ctx, I) (O, error); [Tool.Call] decodes
// the input with the tolerant parser in core/parse, runs the function and
// encodes the output as JSON. [GenericTool] hides the type parameters so
// different tools can be dispatched uniformly.
package tool
