package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Operation results recorded by RecordOperation.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultEmpty    = "empty"
)

// Metrics contains workload-level metrics that are not tied to a single ring
type Metrics struct {
	// WorkerOperations counts push/pop attempts by worker, operation and result
	WorkerOperations *prometheus.CounterVec
	// ActiveWorkers is the number of producer/consumer workers currently running
	ActiveWorkers prometheus.Gauge
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		WorkerOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ringbuffer",
				Subsystem: "worker",
				Name:      "operations_total",
				Help:      "Push and pop attempts made by workers, by result",
			},
			[]string{"worker", "operation", "result"},
		),

		ActiveWorkers: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "ringbuffer",
				Subsystem: "worker",
				Name:      "active",
				Help:      "Number of workers currently running",
			},
		),
	}
}

// RecordOperation records one push or pop attempt
func (m *Metrics) RecordOperation(worker, operation, result string) {
	m.WorkerOperations.WithLabelValues(worker, operation, result).Inc()
}

// WorkerStarted increments the active worker gauge
func (m *Metrics) WorkerStarted() {
	m.ActiveWorkers.Inc()
}

// WorkerStopped decrements the active worker gauge
func (m *Metrics) WorkerStopped() {
	m.ActiveWorkers.Dec()
}
