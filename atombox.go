// Package atombox provides a word-sized atomic owning box backed by a
// hazard-pointer safe memory reclamation (SMR) domain.
//
// Example usage:
//
//	box := atombox.NewAtomicBox(42) // binds to the process-wide Global domain
//	guard := box.Domain().NewGuard()
//	defer guard.Release()
//	value := box.Load(guard)
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package atombox

const (
	// Version of the atom-box library
	Version = "v0.1.0-dev"

	// DefaultReclamationThreshold is the retired-list length at which an
	// inline reclamation scan fires. See spec §4.3: a common choice is
	// max(hazard_slot_count*2, 1000); we use a fixed default here and let
	// callers raise it via Config once the roster's expected peak is known.
	DefaultReclamationThreshold = 1000

	// DefaultShardCount is the number of retired-list shards used in
	// bicephany mode.
	DefaultShardCount = 2

	// MinReclamationThreshold is the smallest threshold a Domain runs with:
	// NewDomain replaces 0 with DefaultReclamationThreshold, and
	// SetReclamationThreshold raises smaller values to this one.
	MinReclamationThreshold = 1
)
