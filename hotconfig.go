// hotconfig.go: dynamic domain configuration with Argus integration
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package atombox

import (
	"fmt"
	"sync"
	"time"

	"github.com/agilira/argus"
)

// DomainHotConfig watches a configuration file and reads a Domain's
// tunables - ReclamationThreshold and ShardCount - from it. A reloaded
// ReclamationThreshold is applied to the running domain without rebuilding
// it; a reloaded ShardCount is only recorded in GetConfig and does not
// change the running domain's shards (see applyChanges).
type DomainHotConfig struct {
	domain  *Domain
	watcher *argus.Watcher
	mu      sync.RWMutex
	config  Config

	// OnReload is called after configuration is successfully reloaded.
	// This callback is optional and must be fast and non-blocking.
	OnReload func(oldConfig, newConfig Config)
}

// DomainHotConfigOptions configures hot reload behavior.
type DomainHotConfigOptions struct {
	// ConfigPath is the path to the configuration file to watch.
	// Supports JSON, YAML, TOML, HCL, INI, Properties formats.
	ConfigPath string

	// PollInterval is how often to check for configuration changes.
	// Default: 1 second. Minimum: 100ms.
	PollInterval time.Duration

	// OnReload is called after configuration is successfully reloaded.
	OnReload func(oldConfig, newConfig Config)

	// Logger for hot reload operations. If nil, uses NoOpLogger.
	Logger Logger
}

// NewDomainHotConfig creates a hot-reloadable configuration wrapper around
// domain. It sets up the file watcher; watching begins when Start is
// called.
//
// Example configuration file (YAML):
//
//	domain:
//	  reclamation_threshold: 2000
//	  shard_count: 4
//
// Supported configuration keys:
//   - domain.reclamation_threshold (int): retired-list length that
//     triggers an inline scan
//   - domain.shard_count (int): number of retired-list shards
//     (bicephany build only; ignored otherwise)
func NewDomainHotConfig(domain *Domain, opts DomainHotConfigOptions) (*DomainHotConfig, error) {
	if opts.ConfigPath == "" {
		return nil, fmt.Errorf("config_path is required")
	}

	if opts.PollInterval == 0 {
		opts.PollInterval = 1 * time.Second
	} else if opts.PollInterval < 100*time.Millisecond {
		opts.PollInterval = 100 * time.Millisecond
	}

	if opts.Logger == nil {
		opts.Logger = NoOpLogger{}
	}

	hc := &DomainHotConfig{
		domain:   domain,
		OnReload: opts.OnReload,
		config:   domain.cfg,
	}

	argusConfig := argus.Config{
		PollInterval: opts.PollInterval,
	}

	watcher, err := argus.UniversalConfigWatcherWithConfig(opts.ConfigPath, hc.handleConfigChange, argusConfig)
	if err != nil {
		return nil, err
	}
	hc.watcher = watcher

	return hc, nil
}

// Start begins watching the configuration file for changes.
func (hc *DomainHotConfig) Start() error {
	if hc.watcher.IsRunning() {
		return nil
	}
	return hc.watcher.Start()
}

// Stop stops watching the configuration file.
func (hc *DomainHotConfig) Stop() error {
	return hc.watcher.Stop()
}

// GetConfig returns the most recently applied configuration (thread-safe).
func (hc *DomainHotConfig) GetConfig() Config {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.config
}

// handleConfigChange is called by Argus when the configuration file changes.
func (hc *DomainHotConfig) handleConfigChange(configData map[string]interface{}) {
	hc.mu.Lock()
	oldConfig := hc.config
	newConfig := hc.parseConfig(configData, oldConfig)
	hc.config = newConfig
	hc.mu.Unlock()

	hc.applyChanges(newConfig)

	if hc.OnReload != nil {
		hc.OnReload(oldConfig, newConfig)
	}
}

// parsePositiveInt extracts a positive integer from interface{} value.
// Supports both int and float64 types (YAML/JSON may vary).
func parsePositiveInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		if v > 0 {
			return v, true
		}
	case float64:
		if v > 0 {
			return int(v), true
		}
	}
	return 0, false
}

// parseConfig extracts domain tunables from Argus config data, keeping
// every field from the previous config unless a new value is present.
func (hc *DomainHotConfig) parseConfig(data map[string]interface{}, previous Config) Config {
	config := previous

	domainSection, ok := data["domain"].(map[string]interface{})
	if !ok {
		if _, hasThreshold := data["reclamation_threshold"]; hasThreshold {
			domainSection = data
		} else {
			return config
		}
	}

	if threshold, ok := parsePositiveInt(domainSection["reclamation_threshold"]); ok {
		config.ReclamationThreshold = threshold
	}

	if shards, ok := parsePositiveInt(domainSection["shard_count"]); ok {
		config.ShardCount = shards
	}

	return config
}

// applyChanges pushes the reloaded ReclamationThreshold onto the live
// domain. ShardCount is recorded in GetConfig for observability but, since
// the shard slice is sized once at NewDomain, a change to it only takes
// effect for a new Domain - reshaping a live shard array out from under
// in-flight Retire calls is not attempted here.
func (hc *DomainHotConfig) applyChanges(newConfig Config) {
	hc.domain.SetReclamationThreshold(newConfig.ReclamationThreshold)
}
