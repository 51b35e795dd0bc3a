// errors.go: structured error handling for atom-box domain operations
//
// This file provides structured error types using the go-errors library,
// enabling rich error context, categorization, and standardized error codes
// for domain construction and protocol-misuse detection.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package atombox

import (
	goerrors "errors"
	"fmt"

	"github.com/agilira/go-errors"
)

// Error codes for atom-box domain operations
const (
	// Configuration errors (1xxx)
	ErrCodeInvalidThreshold  errors.ErrorCode = "ATOMBOX_INVALID_THRESHOLD"
	ErrCodeInvalidShardCount errors.ErrorCode = "ATOMBOX_INVALID_SHARD_COUNT"

	// Protocol-misuse errors (2xxx) - spec §7's "debug assertions", only
	// raised when Config.Strict is true
	ErrCodeCrossDomainGuard errors.ErrorCode = "ATOMBOX_CROSS_DOMAIN_GUARD"
	ErrCodeDoubleRetire     errors.ErrorCode = "ATOMBOX_DOUBLE_RETIRE"
	ErrCodeGuardReused      errors.ErrorCode = "ATOMBOX_GUARD_REUSED_WHILE_LOADING"

	// Internal errors (3xxx)
	ErrCodeInternalError  errors.ErrorCode = "ATOMBOX_INTERNAL_ERROR"
	ErrCodePanicRecovered errors.ErrorCode = "ATOMBOX_PANIC_RECOVERED"
)

// Common error messages
const (
	msgInvalidThreshold  = "invalid reclamation threshold: must be >= 0"
	msgInvalidShardCount = "invalid shard count: must be >= 0"
	msgCrossDomainGuard  = "guard used to load from a box bound to a different domain"
	msgDoubleRetire      = "pointer retired twice on the same domain"
	msgGuardReused       = "guard re-armed for a new load while a previous load was still in flight"
	msgInternalError     = "internal atom-box error"
	msgPanicRecovered    = "panic recovered in atom-box operation"
)

// =============================================================================
// CONFIGURATION ERRORS
// =============================================================================

// NewErrInvalidThreshold creates an error for a negative ReclamationThreshold.
func NewErrInvalidThreshold(threshold int) error {
	return errors.NewWithContext(ErrCodeInvalidThreshold, msgInvalidThreshold, map[string]interface{}{
		"provided_threshold": threshold,
		"minimum_required":   MinReclamationThreshold,
	})
}

// NewErrInvalidShardCount creates an error for a negative ShardCount.
func NewErrInvalidShardCount(shardCount int) error {
	return errors.NewWithContext(ErrCodeInvalidShardCount, msgInvalidShardCount, map[string]interface{}{
		"provided_shard_count": shardCount,
	})
}

// =============================================================================
// PROTOCOL-MISUSE ERRORS (panic payloads under Config.Strict)
// =============================================================================

// NewErrCrossDomainGuard creates an error for a guard/box domain mismatch.
func NewErrCrossDomainGuard() error {
	return errors.NewWithContext(ErrCodeCrossDomainGuard, msgCrossDomainGuard, map[string]interface{}{
		"invariant": "I6: a slot in domain D protects a pointer only against reclamation scans in D",
	}).WithSeverity("critical")
}

// NewErrDoubleRetire creates an error for a pointer retired more than once.
func NewErrDoubleRetire(ptr interface{}) error {
	return errors.NewWithContext(ErrCodeDoubleRetire, msgDoubleRetire, map[string]interface{}{
		"invariant": "I3: a given object pointer is passed to retire at most once",
		"pointer":   fmt.Sprintf("%v", ptr),
	}).WithSeverity("critical")
}

// NewErrGuardReused creates an error for re-arming a guard mid-load.
func NewErrGuardReused() error {
	return errors.NewWithField(ErrCodeGuardReused, msgGuardReused, "invariant", "I1: single-writer slot")
}

// =============================================================================
// INTERNAL ERRORS
// =============================================================================

// NewErrInternal creates a generic internal error.
func NewErrInternal(operation string, cause error) error {
	if cause != nil {
		return errors.Wrap(cause, ErrCodeInternalError, msgInternalError).
			WithContext("operation", operation).
			WithSeverity("warning")
	}
	return errors.NewWithField(ErrCodeInternalError, msgInternalError, "operation", operation).
		WithSeverity("warning")
}

// NewErrPanicRecovered creates an error when a panic is recovered, e.g. from
// a user-supplied deleter or OnReclaim callback during a scan.
func NewErrPanicRecovered(operation string, panicValue interface{}) error {
	return errors.NewWithContext(ErrCodePanicRecovered, msgPanicRecovered, map[string]interface{}{
		"operation":   operation,
		"panic_value": fmt.Sprintf("%v", panicValue),
	}).WithSeverity("critical")
}

// =============================================================================
// ERROR CHECKING HELPERS
// =============================================================================

// IsConfigError checks if error is a configuration error.
func IsConfigError(err error) bool {
	return errors.HasCode(err, ErrCodeInvalidThreshold) || errors.HasCode(err, ErrCodeInvalidShardCount)
}

// IsMisuseError checks if error represents a detected protocol violation.
func IsMisuseError(err error) bool {
	return errors.HasCode(err, ErrCodeCrossDomainGuard) ||
		errors.HasCode(err, ErrCodeDoubleRetire) ||
		errors.HasCode(err, ErrCodeGuardReused)
}

// GetErrorCode extracts the error code from an error.
func GetErrorCode(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}

// GetErrorContext extracts context from an error.
func GetErrorContext(err error) map[string]interface{} {
	if err == nil {
		return nil
	}
	var atomboxErr *errors.Error
	if goerrors.As(err, &atomboxErr) {
		return atomboxErr.Context
	}
	return nil
}
