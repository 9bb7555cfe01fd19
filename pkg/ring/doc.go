// Package ring provides a generic fixed-capacity ring buffer with forward iteration.
//
// # Overview
//
// A Ring[T] is a FIFO queue over a slice allocated once at construction. It keeps two
// cursors and nothing else: read (oldest element) and write (next free slot). Because
// "empty" is read == write, the ring reports full when one slot is still free, so a ring
// of capacity C holds at most C-1 elements. A capacity below 2 is rejected by New.
//
//	r, err := ring.New[int](8) // holds up to 7 ints
//	if err != nil {
//		return err
//	}
//
//	r.Push(1)        // true
//	v, ok := r.Pop() // 1, true
//
// Push on a full ring returns false and changes nothing. Pop, Front and Back on an empty
// ring return the zero value and false. TryPush and TryPop return classified transient
// errors (errors.ErrBufferFull, errors.ErrBufferEmpty) for callers that prefer errors.
//
// # Front and Back
//
// Front returns the NEWEST element and Back returns the OLDEST one, the reverse of the
// usual deque naming. Pop removes from the Back end:
//
//	r.Push(42)
//	r.Push(84)
//	r.Front() // 84
//	r.Back()  // 42
//	r.Pop()   // 42
//
// # Iteration
//
// Begin and End return lightweight Iterator values that share the ring's storage. An
// Iterator wraps from the last slot to the first and never looks at the ring's cursors,
// so a loop must stop at End:
//
//	for it, end := r.Begin(), r.End(); !it.Equal(end); it.Next() {
//		fmt.Println(it.Value())
//	}
//
// All exposes the same walk as an iter.Seq for range-over-func, and Filter, Map, Count,
// CountFunc, Collect and Sum compose over such sequences:
//
//	evens := ring.CountFunc(r.All(), func(v int) bool { return v%2 == 0 })
//
// Any Push or Pop invalidates iterators and sequences obtained before it. Reading an
// Iterator at End yields a stale or zero value; this is not checked.
//
// Apply hands the raw backing slice, stale slots included, to a caller-supplied function.
//
// # Heterogeneous Elements
//
// For rings holding several kinds of values, use the closed sum type in the element
// subpackage:
//
//	r := ring.MustNew[element.Element](8)
//	r.Push(element.Int(1))
//	r.Push(element.Text("2"))
//	n := ring.CountFunc(r.All(), element.IsText)
//
// # Thread Safety
//
// A Ring is NOT safe for concurrent use and performs no locking or atomic operations.
// Guard every call, and any iteration that may overlap a mutation, with a lock you own.
//
// # Observability
//
// Options mirror the rest of the module:
//
//	r, err := ring.New[[]byte](1024,
//		ring.WithMetrics[[]byte](registry, "ingest"),
//		ring.WithLogger[[]byte](logger),
//		ring.WithRejectCallback[[]byte](func(b []byte) { dropped += len(b) }),
//	)
//
// Metrics are exported under ringbuffer_ring_* with a component label. Close
// unregisters them.
//
// # Performance Characteristics
//
//   - Push, Pop, Front, Back, Size, Empty, Full: O(1), no allocation
//   - Begin, End: O(1), no allocation
//   - Full traversal and Values: O(n) in live elements
package ring
