// guard.go: the hazard-pointer read protocol
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package atombox

import (
	"runtime"
	"sync/atomic"
	"unsafe"
)

// Guard borrows a hazard slot from a Domain for the duration of one or more
// LoadFrom calls. A Guard is not safe for concurrent use by multiple
// goroutines (spec invariant I1: single-writer slot) but may be reused
// sequentially for many loads via LoadFrom before being released.
type Guard struct {
	domain *Domain
	slot   *hazardSlot
	active int32 // 1 while a LoadFrom is logically "in progress"
}

// LoadFrom implements the standard hazard-pointer read protocol against an
// atomic source pointer: publish a candidate value into the hazard slot,
// then re-read the source; if it changed, the candidate might already be
// retired, so the loop retries with the new value. Once a read converges,
// the returned pointer is protected against reclamation by this domain
// until Release (or the next LoadFrom) is called.
//
// src must point at a location only ever mutated with atomic stores/CAS
// (as AtomicBox guarantees for its internal pointer).
func (g *Guard) LoadFrom(src *unsafe.Pointer) unsafe.Pointer {
	if g.domain.cfg.Strict {
		if !atomic.CompareAndSwapInt32(&g.active, 0, 1) {
			panic(NewErrGuardReused())
		}
		defer atomic.StoreInt32(&g.active, 0)
	}

	start := g.domain.cfg.TimeProvider.Now()
	looped := false
	for {
		candidate := atomic.LoadPointer(src)
		g.slot.publish(candidate)
		// runtime.KeepAlive pins candidate through the publish so the Go
		// runtime's (non-moving but still GC-tracked) pointer cannot be
		// considered dead between the store above and the re-read below.
		runtime.KeepAlive(candidate)

		confirm := atomic.LoadPointer(src)
		if confirm == candidate {
			g.domain.cfg.MetricsCollector.RecordProtect(g.domain.cfg.TimeProvider.Now()-start, looped)
			return candidate
		}
		looped = true
		// src moved on between publish and confirm: candidate may already
		// be retired elsewhere. Loop with the fresher value.
	}
}

// Release returns the underlying hazard slot to the domain's free pool.
// After Release, any pointer previously returned by LoadFrom on this Guard
// must not be dereferenced. A released Guard must not be used again.
func (g *Guard) Release() {
	g.slot.release()
}
