// Package calculator implements a calculator built from named operations.
//
// A [Calculator] owns a registry mapping names to [Operation] functions and
// a history of every successful invocation. Each Calculator is independent;
// there is no package-level instance.
//
//	calc := calculator.New(calculator.Operations{
//	    "add": calculator.OperationFunc(func(p ...float64) float64 { return p[0] + p[1] }),
//	})
//	result, err := calc.Invoke(ctx, "add", 1, 2) // 3
//	entries := calc.History(ctx)                 // [('2026-10-19 12:00:00', 'add', (1, 2), 3)]
//
// Parameters may be any Go integer or floating point value and are normalized
// to float64 before the operation runs. Anything else, booleans included, is
// rejected with [ErrInvalidParams]. [NewFromAny] and [Calculator.RegisterAny]
// accept operation tables whose shape is only known at runtime and reject
// values that are not mappings.
//
// A Calculator is meant to be driven by one caller at a time. The registry
// and the default history store lock internally, but sequences such as
// reading the history and then calling [Calculator.RepeatLast] are not atomic.
package calculator
