package ring

import (
	"fmt"
	"log/slog"

	"github.com/c360/ringbuffer/errors"
)

// MinCapacity is the smallest usable capacity. One slot is always kept free,
// so a ring of capacity C holds at most C-1 elements.
const MinCapacity = 2

// Ring is a fixed-capacity FIFO over a preallocated slice.
//
// Only two cursors are kept: read is the slot of the oldest element and write
// is the slot the next Push fills. The ring is empty when read == write and
// full when write+1 wraps onto read, which is why one slot is never used.
//
// Ring is not safe for concurrent use. Callers sharing a ring between
// goroutines must guard every call, including iteration, with their own lock.
type Ring[T any] struct {
	storage []T
	read    int
	write   int

	metrics *ringMetrics
	opts    *ringOptions[T]
}

// New creates an empty ring with the given capacity. Capacity below
// MinCapacity is rejected since such a ring could never hold an element.
func New[T any](capacity int, options ...Option[T]) (*Ring[T], error) {
	if capacity < MinCapacity {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: %d (minimum %d)", errors.ErrInvalidCapacity, capacity, MinCapacity),
			"Ring", "New", "validate capacity")
	}

	opts := applyOptions(options...)

	var metrics *ringMetrics
	if opts.metricsReg != nil && opts.metricsPrefix != "" {
		var err error
		metrics, err = newRingMetrics(opts.metricsReg, opts.metricsPrefix)
		if err != nil {
			return nil, errors.Wrap(err, "Ring", "New", "metrics registration")
		}
	}

	r := &Ring[T]{
		storage: make([]T, capacity),
		metrics: metrics,
		opts:    opts,
	}

	if opts.logger != nil {
		opts.logger.Debug("Ring created",
			slog.Int("capacity", capacity),
			slog.Int("usable", capacity-1),
			slog.Bool("metrics", metrics != nil))
	}

	return r, nil
}

// MustNew is like New but panics on error.
func MustNew[T any](capacity int, options ...Option[T]) *Ring[T] {
	r, err := New[T](capacity, options...)
	if err != nil {
		panic(err)
	}
	return r
}

// Capacity returns the number of slots, one more than the number of elements the ring can hold.
func (r *Ring[T]) Capacity() int {
	return len(r.storage)
}

// Empty reports whether the ring holds no elements.
func (r *Ring[T]) Empty() bool {
	return r.read == r.write
}

// Full reports whether the next Push would be rejected.
func (r *Ring[T]) Full() bool {
	return r.next(r.write) == r.read
}

// Size returns the number of live elements.
func (r *Ring[T]) Size() int {
	if r.write >= r.read {
		return r.write - r.read
	}
	return len(r.storage) - r.read + r.write
}

// Push appends v as the newest element. It returns false and leaves the ring
// untouched when the ring is full.
func (r *Ring[T]) Push(v T) bool {
	if r.Full() {
		if r.metrics != nil {
			r.metrics.recordRejected()
		}
		if r.opts.logger != nil {
			r.opts.logger.Debug("Ring full, push rejected", slog.Int("size", r.Size()))
		}
		if r.opts.rejectCallback != nil {
			r.opts.rejectCallback(v)
		}
		return false
	}

	r.storage[r.write] = v
	r.write = r.next(r.write)

	if r.metrics != nil {
		r.metrics.recordPush(r.Size(), len(r.storage))
	}
	return true
}

// Pop removes and returns the oldest element. The second result is false
// when the ring is empty.
func (r *Ring[T]) Pop() (T, bool) {
	var zero T

	if r.Empty() {
		if r.metrics != nil {
			r.metrics.recordUnderflow()
		}
		return zero, false
	}

	v := r.storage[r.read]
	r.read = r.next(r.read)

	if r.metrics != nil {
		r.metrics.recordPop(r.Size(), len(r.storage))
	}
	return v, true
}

// TryPush is Push with an error result: a full ring yields a transient error
// wrapping errors.ErrBufferFull.
func (r *Ring[T]) TryPush(v T) error {
	if !r.Push(v) {
		return errors.WrapTransient(errors.ErrBufferFull, "Ring", "TryPush", "push")
	}
	return nil
}

// TryPop is Pop with an error result: an empty ring yields a transient error
// wrapping errors.ErrBufferEmpty.
func (r *Ring[T]) TryPop() (T, error) {
	v, ok := r.Pop()
	if !ok {
		return v, errors.WrapTransient(errors.ErrBufferEmpty, "Ring", "TryPop", "pop")
	}
	return v, nil
}

// Front returns the NEWEST element, the one most recently pushed, without
// removing it. Note this is the opposite end from what Pop removes.
func (r *Ring[T]) Front() (T, bool) {
	var zero T
	if r.Empty() {
		return zero, false
	}

	idx := r.write - 1
	if r.write == 0 {
		idx = len(r.storage) - 1
	}
	return r.storage[idx], true
}

// Back returns the OLDEST element, the one Pop would return next, without
// removing it.
func (r *Ring[T]) Back() (T, bool) {
	var zero T
	if r.Empty() {
		return zero, false
	}
	return r.storage[r.read], true
}

// Clear drops every element and rewinds both cursors to slot 0. Storage is
// zeroed so the ring no longer references the dropped values.
func (r *Ring[T]) Clear() {
	clear(r.storage)
	r.read = 0
	r.write = 0

	if r.metrics != nil {
		r.metrics.updateSize(0, len(r.storage))
	}
}

// Close unregisters the ring's metrics, if any. The ring stays usable
// afterwards; it just stops being exported.
func (r *Ring[T]) Close() error {
	if r.metrics == nil {
		return nil
	}
	r.opts.metricsReg.UnregisterComponent(r.opts.metricsPrefix)
	r.metrics = nil
	return nil
}

// Values returns a copy of the live elements, oldest first.
func (r *Ring[T]) Values() []T {
	out := make([]T, 0, r.Size())
	for it, end := r.Begin(), r.End(); !it.Equal(end); it.Next() {
		out = append(out, it.Value())
	}
	return out
}

func (r *Ring[T]) next(i int) int {
	i++
	if i == len(r.storage) {
		return 0
	}
	return i
}

// Apply passes the raw backing storage to f and returns its result. The slice
// covers every slot, including stale ones outside the live range, and aliases
// the ring: f must not retain it past a later Push or Pop.
func Apply[T, R any](r *Ring[T], f func(storage []T) R) R {
	return f(r.storage)
}
