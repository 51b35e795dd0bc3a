// errors_test.go: unit tests for structured domain errors
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package atombox

import (
	"testing"

	"github.com/agilira/go-errors"
)

func TestErrors_CodesRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code errors.ErrorCode
	}{
		{"invalid threshold", NewErrInvalidThreshold(-1), ErrCodeInvalidThreshold},
		{"invalid shard count", NewErrInvalidShardCount(-1), ErrCodeInvalidShardCount},
		{"cross domain guard", NewErrCrossDomainGuard(), ErrCodeCrossDomainGuard},
		{"double retire", NewErrDoubleRetire("0xdeadbeef"), ErrCodeDoubleRetire},
		{"guard reused", NewErrGuardReused(), ErrCodeGuardReused},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := GetErrorCode(c.err); got != c.code {
				t.Errorf("GetErrorCode() = %v, want %v", got, c.code)
			}
		})
	}
}

func TestErrors_IsConfigError(t *testing.T) {
	if !IsConfigError(NewErrInvalidThreshold(-1)) {
		t.Error("NewErrInvalidThreshold should be a config error")
	}
	if !IsConfigError(NewErrInvalidShardCount(-1)) {
		t.Error("NewErrInvalidShardCount should be a config error")
	}
	if IsConfigError(NewErrDoubleRetire("p")) {
		t.Error("NewErrDoubleRetire should not be classified as a config error")
	}
}

func TestErrors_IsMisuseError(t *testing.T) {
	if !IsMisuseError(NewErrCrossDomainGuard()) {
		t.Error("NewErrCrossDomainGuard should be a misuse error")
	}
	if !IsMisuseError(NewErrDoubleRetire("p")) {
		t.Error("NewErrDoubleRetire should be a misuse error")
	}
	if !IsMisuseError(NewErrGuardReused()) {
		t.Error("NewErrGuardReused should be a misuse error")
	}
	if IsMisuseError(NewErrInvalidThreshold(-1)) {
		t.Error("NewErrInvalidThreshold should not be classified as a misuse error")
	}
}

func TestErrors_GetErrorContext(t *testing.T) {
	err := NewErrInvalidThreshold(-5)
	ctx := GetErrorContext(err)
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}
	if ctx["provided_threshold"] != -5 {
		t.Errorf("context[provided_threshold] = %v, want -5", ctx["provided_threshold"])
	}
}

func TestErrors_GetErrorCodeOnNil(t *testing.T) {
	if got := GetErrorCode(nil); got != "" {
		t.Errorf("GetErrorCode(nil) = %v, want empty", got)
	}
}

func TestErrors_NewErrInternalWrapsCause(t *testing.T) {
	cause := NewErrInvalidThreshold(-1)
	wrapped := NewErrInternal("NewDomain", cause)
	if GetErrorCode(wrapped) != ErrCodeInternalError {
		t.Errorf("GetErrorCode(wrapped) = %v, want %v", GetErrorCode(wrapped), ErrCodeInternalError)
	}
}
