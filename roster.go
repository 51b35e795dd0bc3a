// roster.go: append-only lock-free hazard slot roster
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package atombox

import (
	"sync/atomic"
	"unsafe"
)

// hazardRoster is an append-only, lock-free singly-linked list of hazard
// slots. Acquire first tries to recycle a free slot already in the list;
// only when every existing slot is claimed does it CAS a new node onto the
// head. Acquire and grow never unlink nodes; only Domain.Compact does,
// dropping inactive slots under its documented quiescence precondition.
// Nodes keep their address for as long as they are linked.
type hazardRoster struct {
	head  unsafe.Pointer // *hazardSlot
	count int32          // node count, for Stats/RecordRosterGrowth; grows by one per grow, reset by Compact
}

// acquire returns a claimed hazard slot, recycling a free one when
// possible and otherwise growing the roster by one node.
func (r *hazardRoster) acquire(metrics MetricsCollector) *hazardSlot {
	for s := r.loadHead(); s != nil; s = s.loadNext() {
		if s.tryClaim() {
			return s
		}
	}
	return r.grow(metrics)
}

// grow CAS-prepends a freshly claimed node onto the roster head. Multiple
// goroutines may race to grow simultaneously; losers retry by walking the
// (now longer) list, which may let them recycle the winner's node if it
// was released in the meantime, or grow again.
func (r *hazardRoster) grow(metrics MetricsCollector) *hazardSlot {
	for {
		head := r.loadHead()
		node := &hazardSlot{active: 1}
		node.storeNext(head)
		if atomic.CompareAndSwapPointer(&r.head, unsafe.Pointer(head), unsafe.Pointer(node)) {
			n := atomic.AddInt32(&r.count, 1)
			if metrics != nil {
				metrics.RecordRosterGrowth(int(n))
			}
			return node
		}
		// lost the race: someone else grew (or released a slot we could
		// have recycled). Retry acquire logic from the new head.
		for s := r.loadHead(); s != nil; s = s.loadNext() {
			if s.tryClaim() {
				return s
			}
		}
	}
}

func (r *hazardRoster) loadHead() *hazardSlot {
	return (*hazardSlot)(atomic.LoadPointer(&r.head))
}

// size returns the number of slots in the roster (active or not): every
// slot ever allocated, unless a Compact has since dropped inactive ones.
func (r *hazardRoster) size() int {
	return int(atomic.LoadInt32(&r.count))
}

// snapshot returns the set of pointers currently protected by any active
// slot. Used by a reclamation scan to decide which retired records are
// still unsafe to free. The returned set is a safe over-approximation: a
// slot may be released concurrently with the walk, in which case its
// pointer simply appears in the snapshot one scan longer than strictly
// necessary, never shorter.
func (r *hazardRoster) snapshot() map[unsafe.Pointer]struct{} {
	out := make(map[unsafe.Pointer]struct{})
	for s := r.loadHead(); s != nil; s = s.loadNext() {
		if p := s.load(); p != nil {
			out[p] = struct{}{}
		}
	}
	return out
}
