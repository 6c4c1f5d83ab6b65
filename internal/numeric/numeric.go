// Package numeric provides small generic arithmetic helpers.
package numeric

import "golang.org/x/exp/constraints"

// Number is any built-in integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Add returns a + b.
func Add[T Number](a, b T) T {
	return a + b
}

// Multiply returns a * b.
func Multiply[T Number](a, b T) T {
	return a * b
}

// ProcessArray returns a new slice holding each element of seq doubled.
// Order and length are preserved and seq is not modified.
func ProcessArray[T Number](seq []T) []T {
	out := make([]T, len(seq))
	for i, v := range seq {
		out[i] = v * 2
	}
	return out
}
