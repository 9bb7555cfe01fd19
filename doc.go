// Package ringbuffer is a fixed-capacity FIFO ring buffer for Go with
// optional Prometheus instrumentation.
//
// # Layout
//
//   - pkg/ring: the generic Ring[T], its wrapping iterator and iter.Seq adaptors
//   - pkg/ring/element: a closed set of element kinds for rings holding mixed values
//   - errors: classified errors (transient, invalid, fatal) shared by every package
//   - metric: the Prometheus registry and HTTP exposition server
//   - cmd/ringdemo: a command running a scripted scenario or a concurrent stress load
//
// # Quick Start
//
//	r, err := ring.New[int](8) // holds at most 7 values
//	if err != nil {
//	    return err
//	}
//	r.Push(1)
//	r.Push(2)
//	newest, _ := r.Front() // 2
//	oldest, _ := r.Back()  // 1
//	for v := range r.All() {
//	    fmt.Println(v)
//	}
//
// A ring is not safe for concurrent use. Callers sharing one between
// goroutines wrap it in their own lock, as cmd/ringdemo does in stress mode.
package ringbuffer
