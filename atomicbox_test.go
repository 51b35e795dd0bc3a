// atomicbox_test.go: unit tests for AtomicBox[T]
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package atombox

import (
	"testing"
)

// TestAtomicBox_SingleThreadedSanity is concrete scenario 1 from spec §8.
func TestAtomicBox_SingleThreadedSanity(t *testing.T) {
	d := newTestDomain(t, 1000)
	box := NewAtomicBox(42, d)

	g := d.NewGuard()
	if got := box.Load(g); *got != 42 {
		t.Fatalf("Load() = %d, want 42", *got)
	}
	g.Release()

	box.Store(7)

	g2 := d.NewGuard()
	if got := box.Load(g2); *got != 7 {
		t.Fatalf("Load() after Store(7) = %d, want 7", *got)
	}
	g2.Release()

	box.Close()
	if err := d.Close(); err != nil {
		t.Fatalf("domain Close: %v", err)
	}
}

func TestAtomicBox_DefaultsToGlobalDomain(t *testing.T) {
	box := NewAtomicBox("hello", nil)
	if box.Domain() != Global() {
		t.Fatal("a box constructed with a nil domain must bind to Global()")
	}
}

func TestAtomicBox_OmittedDomainDefaultsToGlobal(t *testing.T) {
	box := NewAtomicBox("hello")
	if box.Domain() != Global() {
		t.Fatal("a box constructed with no domain argument must bind to Global()")
	}
}

// TestAtomicBox_StoreThenLoadRoundTrip is the spec's round-trip property:
// store then load returns the stored value.
func TestAtomicBox_StoreThenLoadRoundTrip(t *testing.T) {
	d := newTestDomain(t, 1000)
	box := NewAtomicBox(0, d)

	box.Store(123)
	g := d.NewGuard()
	defer g.Release()
	if got := box.Load(g); *got != 123 {
		t.Fatalf("Load() = %d, want 123", *got)
	}
}

// TestAtomicBox_SwapSequence is the spec's idempotence property: Swap(x)
// followed by Swap(y) yields the original then x.
func TestAtomicBox_SwapSequence(t *testing.T) {
	d := newTestDomain(t, 1000)
	box := NewAtomicBox(1, d)

	oldVal, g1 := box.Swap(2)
	if *oldVal != 1 {
		t.Fatalf("first Swap returned %d, want the original value 1", *oldVal)
	}
	g1.Release()

	oldVal2, g2 := box.Swap(3)
	if *oldVal2 != 2 {
		t.Fatalf("second Swap returned %d, want the intermediate value 2", *oldVal2)
	}
	g2.Release()

	g := d.NewGuard()
	defer g.Release()
	if got := box.Load(g); *got != 3 {
		t.Fatalf("final Load() = %d, want 3", *got)
	}
}

func TestAtomicBox_CompareAndSwap(t *testing.T) {
	d := newTestDomain(t, 1000)
	box := NewAtomicBox(10, d)

	g := d.NewGuard()
	current := box.Load(g)

	stale := 999
	if box.CompareAndSwap(&stale, 20) {
		t.Fatal("CompareAndSwap with a stale expected pointer must fail")
	}

	if !box.CompareAndSwap(current, 20) {
		t.Fatal("CompareAndSwap with the current pointer must succeed")
	}
	g.Release()

	g2 := d.NewGuard()
	defer g2.Release()
	if got := box.Load(g2); *got != 20 {
		t.Fatalf("Load() after CompareAndSwap = %d, want 20", *got)
	}
}

func TestAtomicBox_CrossDomainLoadPanicsUnderStrict(t *testing.T) {
	d1 := newTestDomain(t, 1000)
	d2 := newTestDomain(t, 1000)

	box := NewAtomicBox(1, d1)
	g := d2.NewGuard()
	defer g.Release()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic loading from a box with a guard minted by a different domain")
		}
		if !IsMisuseError(r.(error)) {
			t.Fatalf("recovered panic is not a misuse error: %v", r)
		}
	}()
	box.Load(g)
}

func TestAtomicBox_CloseRetiresCurrentValue(t *testing.T) {
	d := newTestDomain(t, 1)
	box := NewAtomicBox(5, d)
	box.Close()

	stats := d.Stats()
	if stats.ScanCount == 0 {
		t.Fatal("Close should retire the current value, triggering a scan at this threshold")
	}
}
