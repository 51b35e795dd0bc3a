// config.go: configuration for the hazard-pointer domain
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package atombox

// Config holds configuration parameters for a Domain.
type Config struct {
	// ReclamationThreshold is the retired-list length at which a Retire
	// call triggers an inline reclamation scan. Must be >= 0; 0 means
	// "use DefaultReclamationThreshold". A negative value is a
	// configuration error.
	ReclamationThreshold int

	// ShardCount is the number of retired-list shards used in bicephany
	// mode (build tag "bicephany"). Ignored when that build tag is off.
	// 0 means "use DefaultShardCount". A negative value is a
	// configuration error.
	ShardCount int

	// Strict enables debug-assertion-style panics on detected protocol
	// misuse: loading from a box into a guard minted by a different
	// domain, and retiring the same pointer twice. DefaultConfig sets it
	// to true; a Config literal that omits it leaves it false, and
	// Validate does not change it. False matches the spec's zero-overhead
	// release-build posture.
	Strict bool

	// Logger is used for scan/reclaim/roster-growth diagnostics.
	// If nil, NoOpLogger is used. Default: NoOpLogger.
	Logger Logger

	// TimeProvider provides current time for metrics timestamps.
	// If nil, a default implementation is used. Default: system time.
	TimeProvider TimeProvider

	// MetricsCollector is used for collecting operation metrics.
	// If nil, NoOpMetricsCollector is used (zero overhead). Default: NoOpMetricsCollector.
	MetricsCollector MetricsCollector

	// OnReclaim is called immediately after a retired record's deleter
	// runs during a scan or during domain Close. This callback must be
	// fast and non-blocking; it runs inline on the scanning goroutine.
	OnReclaim func(ptr interface{})
}

// Validate checks configuration parameters, applies sensible defaults for
// unset (zero) fields, and returns an error for fields that are set to an
// invalid (negative) value.
//
// This method is called automatically by NewDomain, so you typically don't
// need to call it manually. It's exposed so callers can inspect the
// normalized configuration before constructing a domain.
//
// Default values applied:
//   - ReclamationThreshold: DefaultReclamationThreshold if 0
//   - ShardCount: DefaultShardCount if 0
//   - Strict: left as given (the zero value is false); DefaultConfig is
//     the constructor that turns it on
//   - Logger: NoOpLogger{} if nil
//   - TimeProvider: systemTimeProvider{} if nil
//   - MetricsCollector: NoOpMetricsCollector{} if nil
func (c *Config) Validate() error {
	if c.ReclamationThreshold < 0 {
		return NewErrInvalidThreshold(c.ReclamationThreshold)
	}
	if c.ReclamationThreshold == 0 {
		c.ReclamationThreshold = DefaultReclamationThreshold
	}

	if c.ShardCount < 0 {
		return NewErrInvalidShardCount(c.ShardCount)
	}
	if c.ShardCount == 0 {
		c.ShardCount = DefaultShardCount
	}

	if c.Logger == nil {
		c.Logger = NoOpLogger{}
	}

	if c.TimeProvider == nil {
		c.TimeProvider = systemTimeProvider{}
	}

	if c.MetricsCollector == nil {
		c.MetricsCollector = NoOpMetricsCollector{}
	}

	return nil
}

// DefaultConfig returns a configuration with sensible defaults, Strict mode
// enabled.
func DefaultConfig() Config {
	return Config{
		ReclamationThreshold: DefaultReclamationThreshold,
		ShardCount:           DefaultShardCount,
		Strict:               true,
		Logger:               NoOpLogger{},
		TimeProvider:         systemTimeProvider{},
		MetricsCollector:     NoOpMetricsCollector{},
	}
}
