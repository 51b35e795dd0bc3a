// Package otel provides OpenTelemetry integration for atom-box domain metrics.
//
// This package implements the atombox.MetricsCollector interface using
// OpenTelemetry, enabling enterprise-grade observability with automatic
// percentile calculation (p50, p95, p99) and multi-backend support
// (Prometheus, Jaeger, DataDog, Grafana).
//
// # Features
//
//   - Automatic percentile calculation via OTEL Histograms
//   - Protect-loop-ratio tracking (how often the hazard-pointer read loop
//     needed to retry)
//   - Scan outcome breakdown: detached/kept/reclaimed per scan
//   - Roster growth tracking
//   - Thread-safe, lock-free implementation
//   - Optional: separate module, no impact on core atombox performance
//
// # Usage
//
//	import (
//	    "github.com/Johnabell/atom-box"
//	    atomboxotel "github.com/Johnabell/atom-box/otel"
//	    "go.opentelemetry.io/otel/exporters/prometheus"
//	    "go.opentelemetry.io/otel/sdk/metric"
//	)
//
//	exporter, _ := prometheus.New()
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//
//	metricsCollector, _ := atomboxotel.NewOTelMetricsCollector(provider)
//
//	domain, _ := atombox.NewDomain(atombox.Config{
//	    MetricsCollector: metricsCollector,
//	})
//
// # Metrics Exposed
//
//   - atombox_protect_latency_ns: Histogram of Guard.LoadFrom latencies
//   - atombox_protect_looped_total: Counter of loads that needed a retry
//   - atombox_retire_latency_ns: Histogram of Retire latencies
//   - atombox_scan_latency_ns: Histogram of reclamation scan latencies
//   - atombox_scan_detached_total: Counter of records detached by scans
//   - atombox_scan_kept_total: Counter of records still protected at scan time
//   - atombox_scan_reclaimed_total: Counter of records actually reclaimed
//   - atombox_roster_size: Counter summing the slot count reported at each roster growth
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package otel

import (
	"context"
	"errors"

	"github.com/Johnabell/atom-box"
	"go.opentelemetry.io/otel/metric"
)

// OTelMetricsCollector implements atombox.MetricsCollector using
// OpenTelemetry.
//
// Thread-safety: safe for concurrent use by multiple goroutines; the
// underlying OTEL instruments are themselves thread-safe and lock-free.
type OTelMetricsCollector struct {
	protectLatency metric.Int64Histogram
	protectLooped  metric.Int64Counter
	retireLatency  metric.Int64Histogram
	scanLatency    metric.Int64Histogram
	scanDetached   metric.Int64Counter
	scanKept       metric.Int64Counter
	scanReclaimed  metric.Int64Counter
	rosterSize     metric.Int64Counter
}

// Options configures OTelMetricsCollector.
type Options struct {
	// MeterName is the name of the OpenTelemetry meter.
	// Default: "github.com/Johnabell/atom-box"
	MeterName string
}

// Option is a functional option for configuring OTelMetricsCollector.
type Option func(*Options)

// WithMeterName sets a custom meter name, useful for distinguishing
// metrics from multiple domains in the same process.
func WithMeterName(name string) Option {
	return func(o *Options) {
		o.MeterName = name
	}
}

// NewOTelMetricsCollector creates a new OpenTelemetry metrics collector
// bound to provider. Returns an error if provider is nil or if any OTEL
// instrument fails to register.
func NewOTelMetricsCollector(provider metric.MeterProvider, opts ...Option) (*OTelMetricsCollector, error) {
	if provider == nil {
		return nil, errors.New("meter provider cannot be nil")
	}

	options := Options{
		MeterName: "github.com/Johnabell/atom-box",
	}
	for _, opt := range opts {
		opt(&options)
	}

	meter := provider.Meter(options.MeterName)
	collector := &OTelMetricsCollector{}

	var err error
	collector.protectLatency, err = meter.Int64Histogram(
		"atombox_protect_latency_ns",
		metric.WithDescription("Latency of Guard.LoadFrom calls in nanoseconds"),
		metric.WithUnit("ns"),
	)
	if err != nil {
		return nil, err
	}

	collector.protectLooped, err = meter.Int64Counter(
		"atombox_protect_looped_total",
		metric.WithDescription("Total number of LoadFrom calls that retried at least once"),
	)
	if err != nil {
		return nil, err
	}

	collector.retireLatency, err = meter.Int64Histogram(
		"atombox_retire_latency_ns",
		metric.WithDescription("Latency of Retire calls in nanoseconds"),
		metric.WithUnit("ns"),
	)
	if err != nil {
		return nil, err
	}

	collector.scanLatency, err = meter.Int64Histogram(
		"atombox_scan_latency_ns",
		metric.WithDescription("Latency of reclamation scans in nanoseconds"),
		metric.WithUnit("ns"),
	)
	if err != nil {
		return nil, err
	}

	collector.scanDetached, err = meter.Int64Counter(
		"atombox_scan_detached_total",
		metric.WithDescription("Total number of retired records detached by scans"),
	)
	if err != nil {
		return nil, err
	}

	collector.scanKept, err = meter.Int64Counter(
		"atombox_scan_kept_total",
		metric.WithDescription("Total number of retired records still protected at scan time"),
	)
	if err != nil {
		return nil, err
	}

	collector.scanReclaimed, err = meter.Int64Counter(
		"atombox_scan_reclaimed_total",
		metric.WithDescription("Total number of retired records reclaimed"),
	)
	if err != nil {
		return nil, err
	}

	collector.rosterSize, err = meter.Int64Counter(
		"atombox_roster_size",
		metric.WithDescription("Cumulative hazard slot count observed on roster growth"),
	)
	if err != nil {
		return nil, err
	}

	return collector, nil
}

// RecordProtect records one completed Guard.LoadFrom call.
func (c *OTelMetricsCollector) RecordProtect(latencyNs int64, looped bool) {
	ctx := context.Background()
	c.protectLatency.Record(ctx, latencyNs)
	if looped {
		c.protectLooped.Add(ctx, 1)
	}
}

// RecordRetire records one completed Domain.Retire call.
func (c *OTelMetricsCollector) RecordRetire(latencyNs int64) {
	c.retireLatency.Record(context.Background(), latencyNs)
}

// RecordScan records one completed reclamation scan.
func (c *OTelMetricsCollector) RecordScan(latencyNs int64, detached, kept, reclaimed int) {
	ctx := context.Background()
	c.scanLatency.Record(ctx, latencyNs)
	c.scanDetached.Add(ctx, int64(detached))
	c.scanKept.Add(ctx, int64(kept))
	c.scanReclaimed.Add(ctx, int64(reclaimed))
}

// RecordRosterGrowth records the roster growing to slotCount slots.
func (c *OTelMetricsCollector) RecordRosterGrowth(slotCount int) {
	c.rosterSize.Add(context.Background(), int64(slotCount))
}

// Compile-time interface check
var _ atombox.MetricsCollector = (*OTelMetricsCollector)(nil)
