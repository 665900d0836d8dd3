package calculator

import "errors"

// ErrInvalidParams is returned when invocation parameters are not numeric, or
// when the operations passed to [NewFromAny] are not a mapping of operations.
var ErrInvalidParams = errors.New("calculator: invalid params")

// ErrInvalidOperation is returned by [Calculator.RegisterAny] when its input
// is not a mapping of operations or holds a nil or non-function value.
var ErrInvalidOperation = errors.New("calculator: invalid operation")

// ErrOperationNotFound is returned when invoking a name that was never registered.
var ErrOperationNotFound = errors.New("calculator: operation not found")

// ErrOperationFailed wraps an error returned by the operation itself.
// Failed invocations are not recorded in history.
//
//	if errors.Is(err, calculator.ErrOperationFailed) {
//	    // errors.Unwrap chain also holds the operation's own error
//	}
var ErrOperationFailed = errors.New("calculator: operation failed")

// ErrArity is returned by built-in operations called with the wrong number of params.
var ErrArity = errors.New("calculator: wrong number of params")
