// interfaces.go: public interfaces for atom-box
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package atombox

import "github.com/agilira/go-timecache"

// DomainStats provides statistics about a domain's hazard roster and
// retired-list traffic.
type DomainStats struct {
	// HazardSlotCount is the number of hazard slots in the roster,
	// including currently-released (inactive) ones. Per spec invariant
	// P3, this never exceeds the historical peak of simultaneously-active
	// guards.
	HazardSlotCount int

	// RetiredCount is the approximate number of records currently
	// awaiting reclamation across all shards.
	RetiredCount int64

	// ReclaimedTotal is the cumulative number of retired records whose
	// deleter has been invoked.
	ReclaimedTotal uint64

	// ScanCount is the number of reclamation scans run so far.
	ScanCount uint64
}

// ReclaimRatio returns the fraction of ever-retired records that have been
// reclaimed so far, as a percentage (0-100).
func (s DomainStats) ReclaimRatio() float64 {
	everRetired := s.ReclaimedTotal + uint64(s.RetiredCount) // #nosec G115 - RetiredCount is never negative
	if everRetired == 0 {
		return 0
	}
	return float64(s.ReclaimedTotal) / float64(everRetired) * 100
}

// Logger defines a minimal logging interface with zero overhead.
// Implementations should use structured logging and be allocation-free.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keyvals ...interface{})

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keyvals ...interface{})

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keyvals ...interface{})

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keyvals ...interface{})
}

// NoOpLogger is a logger that does nothing. Used as default to avoid nil checks.
type NoOpLogger struct{}

func (NoOpLogger) Debug(msg string, keyvals ...interface{}) {}
func (NoOpLogger) Info(msg string, keyvals ...interface{})  {}
func (NoOpLogger) Warn(msg string, keyvals ...interface{})  {}
func (NoOpLogger) Error(msg string, keyvals ...interface{}) {}

// TimeProvider provides current time with caching for performance.
// This interface allows injecting optimized time implementations, and a
// deterministic fake in tests.
type TimeProvider interface {
	// Now returns the current time in nanoseconds since epoch.
	// This method must be very fast and allocation-free.
	Now() int64
}

// systemTimeProvider is the default time provider using go-timecache, which
// amortizes the cost of time.Now() across many calls (roughly 121x faster
// than time.Now() per call, per go-timecache's own benchmarks). This keeps
// Protect/Retire metrics timestamps cheap enough to take unconditionally.
type systemTimeProvider struct{}

func (systemTimeProvider) Now() int64 {
	return timecache.CachedTimeNano()
}

// MetricsCollector collects operation metrics for a Domain. Implementations
// must be safe for concurrent use and should be allocation-free on the hot
// path; NoOpMetricsCollector is the zero-overhead default.
type MetricsCollector interface {
	// RecordProtect records one completed Guard.LoadFrom call.
	// looped is true if the read loop retried at least once before converging.
	RecordProtect(latencyNs int64, looped bool)

	// RecordRetire records one completed Domain.Retire call (excluding any
	// scan it triggered, which is reported separately via RecordScan).
	RecordRetire(latencyNs int64)

	// RecordScan records one completed reclamation scan: how many records
	// were detached, how many were kept (still protected), and how many
	// were reclaimed.
	RecordScan(latencyNs int64, detached, kept, reclaimed int)

	// RecordRosterGrowth records the roster growing to accommodate a new
	// hazard slot (i.e. acquire found no free slot and allocated one).
	RecordRosterGrowth(slotCount int)
}

// NoOpMetricsCollector is a MetricsCollector that does nothing.
type NoOpMetricsCollector struct{}

func (NoOpMetricsCollector) RecordProtect(latencyNs int64, looped bool)                {}
func (NoOpMetricsCollector) RecordRetire(latencyNs int64)                              {}
func (NoOpMetricsCollector) RecordScan(latencyNs int64, detached, kept, reclaimed int) {}
func (NoOpMetricsCollector) RecordRosterGrowth(slotCount int)                          {}
