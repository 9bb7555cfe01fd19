package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/c360/ringbuffer/metric"
	"github.com/c360/ringbuffer/pkg/ring"
	"github.com/c360/ringbuffer/pkg/ring/element"
)

// dumpVisitor renders each element on one line with its kind
type dumpVisitor struct {
	w io.Writer
}

func (d dumpVisitor) VisitInt(v element.Int) {
	_, _ = fmt.Fprintf(d.w, "  int    %d\n", int(v))
}

func (d dumpVisitor) VisitText(v element.Text) {
	_, _ = fmt.Fprintf(d.w, "  text   %s\n", strconv.Quote(string(v)))
}

func (d dumpVisitor) VisitPerson(v element.Person) {
	_, _ = fmt.Fprintf(d.w, "  person %s (%d)\n", v.Name, v.Age)
}

// runScenario walks a ring through fill, overflow, inspection and drain,
// printing each step to w.
func runScenario(w io.Writer, r *ring.Ring[element.Element]) error {
	if r.Capacity() < 3 {
		return fmt.Errorf("scenario needs capacity of at least 3, got %d", r.Capacity())
	}
	r.Clear()

	_, _ = fmt.Fprintf(w, "ring capacity=%d usable=%d\n", r.Capacity(), r.Capacity()-1)

	var next int
	for !r.Full() {
		next++
		var e element.Element = element.Int(next)
		if next%2 == 0 {
			e = element.Text(strconv.Itoa(next))
		}
		r.Push(e)
	}
	_, _ = fmt.Fprintf(w, "filled: size=%d full=%t\n", r.Size(), r.Full())

	accepted := r.Push(element.Int(9))
	_, _ = fmt.Fprintf(w, "push 9 when full accepted=%t size=%d\n", accepted, r.Size())

	_, _ = fmt.Fprintln(w, "contents:")
	visitor := dumpVisitor{w: w}
	for it, end := r.Begin(), r.End(); !it.Equal(end); it.Next() {
		element.Visit(visitor, it.Value())
	}

	texts := ring.CountFunc(r.All(), element.IsText)
	_, _ = fmt.Fprintf(w, "text elements: %d\n", texts)

	back, _ := r.Back()
	front, _ := r.Front()
	_, _ = fmt.Fprintf(w, "back=%s front=%s\n", element.Format(back), element.Format(front))

	var popped []string
	for {
		e, ok := r.Pop()
		if !ok {
			break
		}
		popped = append(popped, element.Format(e))
	}
	_, _ = fmt.Fprintf(w, "drained: %s\n", strings.Join(popped, " "))
	_, _ = fmt.Fprintf(w, "empty=%t size=%d\n", r.Empty(), r.Size())

	r.Push(element.Int(42))
	r.Push(element.Int(84))
	back, _ = r.Back()
	front, _ = r.Front()
	_, _ = fmt.Fprintf(w, "after 42, 84: back=%s front=%s\n", element.Format(back), element.Format(front))

	return nil
}

// lockedRing serializes access to a ring shared between goroutines.
// The ring itself carries no synchronization.
type lockedRing struct {
	mu   sync.Mutex
	ring *ring.Ring[element.Element]
}

func (l *lockedRing) push(e element.Element) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ring.Push(e)
}

func (l *lockedRing) pop() (element.Element, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ring.Pop()
}

func (l *lockedRing) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ring.Size()
}

// workerTotals counts what one stress worker did
type workerTotals struct {
	Pushed   int
	Rejected int
	Popped   int
	Empty    int
}

// stressResult summarizes a stress run
type stressResult struct {
	Workers   []workerTotals
	FinalSize int
}

// runStress starts cfg.Workers goroutines that share one ring. Each worker
// pushes for cfg.SwitchEvery operations, then pops for as many, and repeats
// until ctx is done or cfg.Duration elapses.
func runStress(ctx context.Context, cfg *DemoConfig, r *ring.Ring[element.Element],
	metrics *metric.Metrics, logger *slog.Logger,
) (*stressResult, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Duration))
	defer cancel()

	shared := &lockedRing{ring: r}
	result := &stressResult{Workers: make([]workerTotals, cfg.Workers)}

	logger.Info("Stress run starting",
		"workers", cfg.Workers,
		"capacity", r.Capacity(),
		"duration", time.Duration(cfg.Duration),
		"switch_every", cfg.SwitchEvery)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < cfg.Workers; i++ {
		id := i
		g.Go(func() error {
			totals := &result.Workers[id]
			stressWorker(gctx, id, cfg.SwitchEvery, shared, metrics, totals)
			logger.Debug("Stress worker finished",
				"worker", id,
				"pushed", totals.Pushed,
				"rejected", totals.Rejected,
				"popped", totals.Popped,
				"empty", totals.Empty)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.FinalSize = shared.size()
	for id, totals := range result.Workers {
		logger.Info("Stress worker totals",
			"worker", id,
			"pushed", totals.Pushed,
			"rejected", totals.Rejected,
			"popped", totals.Popped,
			"empty", totals.Empty)
	}
	logger.Info("Stress run complete", "final_size", result.FinalSize)

	return result, nil
}

func stressWorker(ctx context.Context, id, switchEvery int, shared *lockedRing,
	metrics *metric.Metrics, totals *workerTotals,
) {
	name := strconv.Itoa(id)
	if metrics != nil {
		metrics.WorkerStarted()
		defer metrics.WorkerStopped()
	}

	record := func(op, result string) {
		if metrics != nil {
			metrics.RecordOperation(name, op, result)
		}
	}

	pushing := true
	for ops := 0; ; ops++ {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if ops > 0 && ops%switchEvery == 0 {
			pushing = !pushing
		}

		if pushing {
			if shared.push(element.Int(ops)) {
				totals.Pushed++
				record("push", metric.ResultOK)
			} else {
				totals.Rejected++
				record("push", metric.ResultRejected)
			}
			continue
		}

		if _, ok := shared.pop(); ok {
			totals.Popped++
			record("pop", metric.ResultOK)
		} else {
			totals.Empty++
			record("pop", metric.ResultEmpty)
		}
	}
}
