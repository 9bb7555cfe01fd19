package ring

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Filter yields the elements of seq for which keep returns true.
func Filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// Map yields f applied to each element of seq.
func Map[T, R any](seq iter.Seq[T], f func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// Count returns the number of elements in seq.
func Count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// CountFunc returns the number of elements in seq that satisfy pred.
func CountFunc[T any](seq iter.Seq[T], pred func(T) bool) int {
	return Count(Filter(seq, pred))
}

// Collect gathers seq into a new slice.
func Collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}
	return out
}

// Sum adds up a numeric sequence.
func Sum[N constraints.Integer | constraints.Float](seq iter.Seq[N]) N {
	var total N
	for v := range seq {
		total += v
	}
	return total
}
