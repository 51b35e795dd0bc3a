// hazard_slot.go: per-reader hazard protection slots
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package atombox

import (
	"sync/atomic"
	"unsafe"
)

// hazardSlot is a single hazard pointer slot. A slot is either free (active
// == 0) or claimed by exactly one Guard (active == 1). While claimed, ptr
// holds the address a reader is protecting; a reclamation scan that finds
// ptr in some active slot's snapshot must not reclaim the object at that
// address.
//
// acquire/release never unlink a slot: the roster only grows unless
// Domain.Compact drops inactive slots. This keeps acquire/release free of
// any ABA concern around slot identity.
//
// next is accessed atomically: roster.acquire/grow/snapshot walk it
// concurrently with Domain.Compact relinking it, so a plain field would be
// a data race under -race even though Compact itself requires the caller
// to rule out concurrent roster growth (see Compact's doc comment).
type hazardSlot struct {
	ptr    unsafe.Pointer
	active int32
	next   unsafe.Pointer // *hazardSlot
}

// loadNext atomically reads the next node in the roster chain.
func (s *hazardSlot) loadNext() *hazardSlot {
	return (*hazardSlot)(atomic.LoadPointer(&s.next))
}

// storeNext atomically links n as the next node after s.
func (s *hazardSlot) storeNext(n *hazardSlot) {
	atomic.StorePointer(&s.next, unsafe.Pointer(n))
}

// tryClaim attempts to transition this slot from free to claimed. Returns
// true on success. Many goroutines may race on the same slot; exactly one
// wins.
func (s *hazardSlot) tryClaim() bool {
	return atomic.CompareAndSwapInt32(&s.active, 0, 1)
}

// release clears the protected pointer and marks the slot free again,
// making it available for reuse by any future Guard on this domain.
func (s *hazardSlot) release() {
	atomic.StorePointer(&s.ptr, nil)
	atomic.StoreInt32(&s.active, 0)
}

// publish stores the pointer this slot is protecting. Must only be called
// by the goroutine that holds the claim.
func (s *hazardSlot) publish(p unsafe.Pointer) {
	atomic.StorePointer(&s.ptr, p)
}

// load reads the currently-protected pointer.
func (s *hazardSlot) load() unsafe.Pointer {
	return atomic.LoadPointer(&s.ptr)
}

// isActive reports whether the slot is currently claimed.
func (s *hazardSlot) isActive() bool {
	return atomic.LoadInt32(&s.active) != 0
}
