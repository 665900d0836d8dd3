package calculator

import (
	"fmt"
	"math"
)

// Builtins returns a fresh table of the standard operations:
//
//	add  sum of all params (0 with none)
//	sub  first param minus the rest
//	mul  product of all params (1 with none)
//	div  first param divided by the rest, IEEE 754 semantics (x/0 is ±Inf)
//	pow  params[0] raised to params[1]
//	neg  negation of a single param
//	max  largest param
//	min  smallest param
//	avg  arithmetic mean
//
// The "+", "-", "*" and "/" aliases map to add, sub, mul and div.
func Builtins() Operations {
	ops := Operations{
		"add": OperationFunc(add),
		"sub": atLeast(1, sub),
		"mul": OperationFunc(mul),
		"div": atLeast(1, div),
		"pow": exactly(2, func(p ...float64) float64 { return math.Pow(p[0], p[1]) }),
		"neg": exactly(1, func(p ...float64) float64 { return -p[0] }),
		"max": atLeast(1, func(p ...float64) float64 { return fold(math.Max, p) }),
		"min": atLeast(1, func(p ...float64) float64 { return fold(math.Min, p) }),
		"avg": atLeast(1, func(p ...float64) float64 { return add(p...) / float64(len(p)) }),
	}
	ops["+"] = ops["add"]
	ops["-"] = ops["sub"]
	ops["*"] = ops["mul"]
	ops["/"] = ops["div"]
	return ops
}

func add(params ...float64) float64 {
	var sum float64
	for _, p := range params {
		sum += p
	}
	return sum
}

func mul(params ...float64) float64 {
	product := 1.0
	for _, p := range params {
		product *= p
	}
	return product
}

func sub(params ...float64) float64 {
	return params[0] - add(params[1:]...)
}

func div(params ...float64) float64 {
	result := params[0]
	for _, p := range params[1:] {
		result /= p
	}
	return result
}

func fold(fn func(a, b float64) float64, params []float64) float64 {
	acc := params[0]
	for _, p := range params[1:] {
		acc = fn(acc, p)
	}
	return acc
}

func exactly(n int, fn func(...float64) float64) Operation {
	return func(params ...float64) (float64, error) {
		if len(params) != n {
			return 0, fmt.Errorf("%w: want %d, got %d", ErrArity, n, len(params))
		}
		return fn(params...), nil
	}
}

func atLeast(n int, fn func(...float64) float64) Operation {
	return func(params ...float64) (float64, error) {
		if len(params) < n {
			return 0, fmt.Errorf("%w: want at least %d, got %d", ErrArity, n, len(params))
		}
		return fn(params...), nil
	}
}
