// Package otel provides OpenTelemetry integration for atom-box domain
// metrics.
//
// # Overview
//
// This package implements the atombox.MetricsCollector interface using
// OpenTelemetry, enabling enterprise-grade observability with automatic
// percentile calculation and multi-backend support (Prometheus, Jaeger,
// DataDog, Grafana).
//
// The package is a separate module to keep the atombox core lightweight.
// Applications that don't need metrics collection don't pay for the OTEL
// dependencies.
//
// # Features
//
//   - Automatic Percentiles: OTEL Histograms calculate p50, p95, p99, p99.9
//     latencies for Protect/Retire/Scan
//   - Multi-Backend Support: Works with Prometheus, Jaeger, DataDog, any
//     OTEL-compatible backend
//   - Scan Outcome Tracking: detached/kept/reclaimed counters per scan
//   - Roster Growth Tracking: cumulative hazard slot count
//   - Thread-Safe: lock-free, safe for concurrent use
//   - Low Overhead: allocation-free after construction
//
// # Installation
//
//	go get github.com/Johnabell/atom-box/otel
//
// # Quick Start
//
//	import (
//	    "github.com/Johnabell/atom-box"
//	    atomboxotel "github.com/Johnabell/atom-box/otel"
//	    "go.opentelemetry.io/otel/exporters/prometheus"
//	    "go.opentelemetry.io/otel/sdk/metric"
//	)
//
//	exporter, err := prometheus.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//	defer provider.Shutdown(context.Background())
//
//	metricsCollector, err := atomboxotel.NewOTelMetricsCollector(provider)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	domain, _ := atombox.NewDomain(atombox.Config{
//	    MetricsCollector: metricsCollector,
//	})
//
//	box := atombox.NewAtomicBox(0, domain)
//	box.Store(1)
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":2112", nil))
//
// # Metrics Exposed
//
// Histograms (with automatic percentiles):
//   - atombox_protect_latency_ns
//   - atombox_retire_latency_ns
//   - atombox_scan_latency_ns
//
// Counters:
//   - atombox_protect_looped_total
//   - atombox_scan_detached_total
//   - atombox_scan_kept_total
//   - atombox_scan_reclaimed_total
//   - atombox_roster_size
//
// All metrics are thread-safe and use lock-free OTEL instruments.
//
// # Configuration
//
// Custom meter name (useful for multiple domains in one process):
//
//	collector, err := atomboxotel.NewOTelMetricsCollector(
//	    provider,
//	    atomboxotel.WithMeterName("myapp_config_domain"),
//	)
//
// # Prometheus Queries
//
// P95 protect latency (last 5 minutes):
//
//	histogram_quantile(0.95, rate(atombox_protect_latency_ns_bucket[5m]))
//
// Protect loop rate (how often readers had to retry):
//
//	rate(atombox_protect_looped_total[5m])
//
// Reclaim ratio per scan:
//
//	rate(atombox_scan_reclaimed_total[5m]) / rate(atombox_scan_detached_total[5m])
//
// # Architecture
//
// Separation of concerns:
//
//	atombox (core module)      -- MetricsCollector interface, NoOpMetricsCollector default
//	atombox/otel (this module) -- OTelMetricsCollector, OTEL SDK dependency
//	OTEL MeterProvider         -- aggregation, percentile calculation, export
//	Prometheus / Jaeger / ...  -- backend
//
// This keeps the core lightweight while enabling enterprise observability
// as an optional add-on.
//
// # Thread Safety
//
// All methods are thread-safe and use lock-free OTEL instruments.
//
// # License
//
// Same as atombox core (see LICENSE in main repository).
package otel
