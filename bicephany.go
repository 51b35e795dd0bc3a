//go:build bicephany

// bicephany.go: sharded retired-list build for contention relief under
// heavy concurrent retirement.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package atombox

import "unsafe"

const buildMode = "bicephany"

func shardCountFor(cfg Config) int {
	if cfg.ShardCount < 1 {
		return 1
	}
	return cfg.ShardCount
}

// shardFor picks a shard index for the calling goroutine's Retire call.
// It hashes the address of a stack-local variable instead of keeping any
// thread-local or goroutine-local state: stack addresses differ across
// concurrently-running goroutines (each has its own stack), which is
// enough to spread pushes across shards without a dedicated ID scheme.
func shardFor(shardCount int) int {
	var probe byte
	addr := uintptr(unsafe.Pointer(&probe))
	const mixer = 0x9E3779B97F4A7C15 // 64-bit golden ratio
	h := uint64(addr) * mixer
	return int(h % uint64(shardCount))
}
