package ring

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/ringbuffer/metric"
)

// ringMetrics holds Prometheus metrics for ring operations.
type ringMetrics struct {
	pushes     prometheus.Counter
	pops       prometheus.Counter
	rejected   prometheus.Counter
	underflows prometheus.Counter

	size        prometheus.Gauge
	utilization prometheus.Gauge
}

func newRingMetrics(registry metric.MetricsRegistrar, prefix string) (*ringMetrics, error) {
	labels := prometheus.Labels{"component": prefix}

	m := &ringMetrics{
		pushes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringbuffer",
			Subsystem:   "ring",
			Name:        "pushes_total",
			ConstLabels: labels,
			Help:        "Total number of successful pushes",
		}),
		pops: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringbuffer",
			Subsystem:   "ring",
			Name:        "pops_total",
			ConstLabels: labels,
			Help:        "Total number of successful pops",
		}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringbuffer",
			Subsystem:   "ring",
			Name:        "rejected_total",
			ConstLabels: labels,
			Help:        "Total number of pushes rejected because the ring was full",
		}),
		underflows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ringbuffer",
			Subsystem:   "ring",
			Name:        "underflows_total",
			ConstLabels: labels,
			Help:        "Total number of pops attempted on an empty ring",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "ringbuffer",
			Subsystem:   "ring",
			Name:        "size",
			ConstLabels: labels,
			Help:        "Current number of elements in the ring",
		}),
		utilization: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "ringbuffer",
			Subsystem:   "ring",
			Name:        "utilization",
			ConstLabels: labels,
			Help:        "Fraction of usable slots in use (0.0 to 1.0)",
		}),
	}

	collectors := []struct {
		name  string
		gauge bool
		c     prometheus.Collector
	}{
		{"ring_pushes", false, m.pushes},
		{"ring_pops", false, m.pops},
		{"ring_rejected", false, m.rejected},
		{"ring_underflows", false, m.underflows},
		{"ring_size", true, m.size},
		{"ring_utilization", true, m.utilization},
	}

	// Roll back only what this call registered so a rejected duplicate
	// leaves the existing ring's metrics alone.
	var registered []string
	for _, c := range collectors {
		var err error
		if c.gauge {
			err = registry.RegisterGauge(prefix, c.name, c.c.(prometheus.Gauge))
		} else {
			err = registry.RegisterCounter(prefix, c.name, c.c.(prometheus.Counter))
		}
		if err != nil {
			for _, name := range registered {
				registry.Unregister(prefix, name)
			}
			return nil, err
		}
		registered = append(registered, c.name)
	}

	return m, nil
}

func (m *ringMetrics) recordPush(size, capacity int) {
	m.pushes.Inc()
	m.updateSize(size, capacity)
}

func (m *ringMetrics) recordPop(size, capacity int) {
	m.pops.Inc()
	m.updateSize(size, capacity)
}

func (m *ringMetrics) recordRejected() {
	m.rejected.Inc()
}

func (m *ringMetrics) recordUnderflow() {
	m.underflows.Inc()
}

// updateSize sets size and utilization; utilization is relative to the
// capacity-1 usable slots.
func (m *ringMetrics) updateSize(size, capacity int) {
	m.size.Set(float64(size))
	m.utilization.Set(float64(size) / float64(capacity-1))
}
