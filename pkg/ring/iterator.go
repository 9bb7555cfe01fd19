package ring

import "iter"

// Iterator is a forward, single-pass view over a ring's storage.
//
// It holds the storage slice and a slot index and nothing else; it never
// looks at the ring's cursors. Stepping past the End iterator keeps wrapping
// around the storage forever, so a traversal must stop by comparing against
// End:
//
//	for it, end := r.Begin(), r.End(); !it.Equal(end); it.Next() {
//		use(it.Value())
//	}
//
// Any Push or Pop on the ring invalidates iterators obtained before it.
// Comparing iterators from different rings is meaningless.
type Iterator[T any] struct {
	base    []T
	current int
}

// Begin returns an iterator at the oldest element.
func (r *Ring[T]) Begin() Iterator[T] {
	return Iterator[T]{base: r.storage, current: r.read}
}

// End returns an iterator one past the newest element.
func (r *Ring[T]) End() Iterator[T] {
	return Iterator[T]{base: r.storage, current: r.write}
}

// Value returns the element at the iterator's slot. At or past End this is a
// stale or zero value, not an element of the ring.
func (it Iterator[T]) Value() T {
	return it.base[it.current]
}

// Next advances to the following slot, wrapping from the last slot to the first.
func (it *Iterator[T]) Next() {
	it.current++
	if it.current == len(it.base) {
		it.current = 0
	}
}

// Equal reports whether both iterators are at the same slot.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.current == other.current
}

// Index returns the storage slot the iterator points at.
func (it Iterator[T]) Index() int {
	return it.current
}

// Capacity returns the length of the storage the iterator walks.
func (it Iterator[T]) Capacity() int {
	return len(it.base)
}

// All returns a sequence over the live elements, oldest first. The range is
// fixed when iteration starts; mutating the ring during iteration is not supported.
func (r *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it, end := r.Begin(), r.End(); !it.Equal(end); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Enumerate is like All but also yields each element's logical position,
// 0 for the oldest.
func (r *Ring[T]) Enumerate() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for it, end := r.Begin(), r.End(); !it.Equal(end); it.Next() {
			if !yield(i, it.Value()) {
				return
			}
			i++
		}
	}
}
