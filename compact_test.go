// compact_test.go: unit tests for opt-in hazard-roster compaction
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package atombox

import "testing"

func TestDomain_Compact(t *testing.T) {
	d := newTestDomain(t, 1000)

	g1 := d.NewGuard()
	g2 := d.NewGuard()
	g3 := d.NewGuard()
	g2.Release() // free before compaction; should be dropped from the roster
	g3.Release()

	if d.Stats().HazardSlotCount != 3 {
		t.Fatalf("HazardSlotCount before Compact = %d, want 3", d.Stats().HazardSlotCount)
	}

	if err := d.Compact(); err != nil {
		t.Fatalf("Compact: %v", err)
	}

	if d.Stats().HazardSlotCount != 1 {
		t.Fatalf("HazardSlotCount after Compact = %d, want 1 (only g1 still active)", d.Stats().HazardSlotCount)
	}

	g1.Release()

	g4 := d.NewGuard()
	defer g4.Release()
	if d.Stats().HazardSlotCount > 2 {
		t.Fatalf("HazardSlotCount after a post-compaction NewGuard = %d, want at most 2", d.Stats().HazardSlotCount)
	}
}

func TestDomain_CompactRejectsGlobalDomain(t *testing.T) {
	if err := Global().Compact(); err == nil {
		t.Fatal("Compact on the global domain must be rejected")
	}
}
