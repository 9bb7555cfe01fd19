// Package metric provides Prometheus-based metrics registration and an HTTP server
// exposing them.
//
// The registry owns a private prometheus.Registry (no global state), the Go runtime and
// process collectors, and a small set of workload metrics (Metrics) shared by the
// command-line tools. Rings register their own counters and gauges through
// ring.WithMetrics, keyed by a component name so that two rings cannot collide silently.
//
// # Basic Usage
//
//	registry := metric.NewMetricsRegistry()
//	server := metric.NewServer(9090, "/metrics", registry)
//	if err := server.Listen(); err != nil {
//	    return err // port in use and similar bind failures surface here
//	}
//	defer server.Stop()
//
//	go func() {
//	    if err := server.Serve(); err != nil {
//	        slog.Error("Metrics server failed", "error", err)
//	    }
//	}()
//
//	r, err := ring.New[int](1024, ring.WithMetrics[int](registry, "ingest"))
//
// The server exposes Prometheus-formatted metrics at http://localhost:9090/metrics
// and a health check at http://localhost:9090/health.
//
// Start is Listen followed by Serve. Once Stop has been called the server never
// serves again: a later Listen or Start returns errors.ErrStopped, and Stop on a
// server that never listened returns errors.ErrNotStarted.
//
// # Registration Errors
//
// Registering the same component/metric pair twice returns a classified invalid error.
// A Prometheus-level name conflict (two components using the same fully-qualified name
// without distinguishing labels) is also invalid. Any other registration failure is fatal.
//
// # Thread Safety
//
// MetricsRegistry is safe for concurrent use. Prometheus collectors are themselves
// concurrency-safe, so rings used under external locking can be scraped at any time.
package metric
