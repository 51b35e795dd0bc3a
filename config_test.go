// config_test.go: unit tests for Domain configuration
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package atombox

import "testing"

func TestConfig_ValidateAppliesDefaults(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.ReclamationThreshold != DefaultReclamationThreshold {
		t.Errorf("ReclamationThreshold = %d, want %d", cfg.ReclamationThreshold, DefaultReclamationThreshold)
	}
	if cfg.ShardCount != DefaultShardCount {
		t.Errorf("ShardCount = %d, want %d", cfg.ShardCount, DefaultShardCount)
	}
	if cfg.Logger == nil {
		t.Error("Logger should default to NoOpLogger")
	}
	if cfg.TimeProvider == nil {
		t.Error("TimeProvider should default to systemTimeProvider")
	}
	if cfg.MetricsCollector == nil {
		t.Error("MetricsCollector should default to NoOpMetricsCollector")
	}
}

func TestConfig_ValidateRejectsNegativeThreshold(t *testing.T) {
	cfg := Config{ReclamationThreshold: -1}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error for a negative ReclamationThreshold")
	}
	if !IsConfigError(err) {
		t.Errorf("error is not classified as a config error: %v", err)
	}
}

func TestConfig_ValidateRejectsNegativeShardCount(t *testing.T) {
	cfg := Config{ShardCount: -1}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error for a negative ShardCount")
	}
	if !IsConfigError(err) {
		t.Errorf("error is not classified as a config error: %v", err)
	}
}

func TestConfig_ValidatePreservesExplicitValues(t *testing.T) {
	cfg := Config{ReclamationThreshold: 50, ShardCount: 4, Strict: false}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.ReclamationThreshold != 50 {
		t.Errorf("ReclamationThreshold = %d, want 50", cfg.ReclamationThreshold)
	}
	if cfg.ShardCount != 4 {
		t.Errorf("ShardCount = %d, want 4", cfg.ShardCount)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Strict {
		t.Error("DefaultConfig should enable Strict mode")
	}
	if cfg.ReclamationThreshold != DefaultReclamationThreshold {
		t.Errorf("ReclamationThreshold = %d, want %d", cfg.ReclamationThreshold, DefaultReclamationThreshold)
	}
}
