//go:build !bicephany

// std.go: single retired-list build (default)
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package atombox

// buildMode identifies which sharding build this binary was compiled with.
const buildMode = "std"

// shardCountFor returns the number of retired-list shards a Domain
// allocates. The std build always uses a single shard: Config.ShardCount
// is accepted and validated but otherwise ignored, matching spec §10's
// note that sharding is opt-in.
func shardCountFor(cfg Config) int {
	return 1
}

// shardFor picks which shard the calling goroutine's Retire call lands on.
func shardFor(shardCount int) int {
	return 0
}
