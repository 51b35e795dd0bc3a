// compact.go: opt-in hazard-roster compaction
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package atombox

import (
	"errors"
	"sync/atomic"
	"unsafe"
)

// errCompactGlobalDomain is returned by Compact when called on the
// process-wide Global domain, whose roster is never rebuilt (spec
// invariant P3/P4 must hold for the domain every package shares).
var errCompactGlobalDomain = errors.New("atombox: Compact is not supported on the global domain")

// Compact rebuilds d's hazard roster, dropping free slots accumulated from
// a historical peak of concurrent Guards that has since subsided. It is
// the resolution of the spec's open question on roster shrinkage: rather
// than shrinking the live roster in place (which would need every
// in-flight Guard to agree on slot identity mid-flight), Compact builds a
// fresh roster sized to the current number of active slots and swaps it
// in. Any Guard acquired before the swap keeps working against its
// original slot and releases it normally; only future NewGuard calls see
// the smaller roster.
//
// Compact requires exclusive access to the roster's shape: the caller
// must ensure no goroutine is concurrently calling NewGuard (and
// therefore no concurrent acquire/grow/tryClaim) on d while Compact runs,
// typically by calling it from a maintenance goroutine between request
// batches rather than from a hot path. A grow() racing Compact's relink
// would CAS its new node onto a head Compact is about to discard,
// silently dropping a live hazard slot from the roster. Compact does not
// detect or guard against that misuse; callers are responsible for the
// quiescence precondition. A concurrent reclamation scan (which only
// reads the roster via snapshot/loadNext, never mutates it) is always
// safe to run alongside Compact.
//
// Compact is unsupported on the process-wide Global domain, which must
// stay usable by every package in the process for the program's lifetime
// and therefore never rebuilds its roster.
func (d *Domain) Compact() error {
	if d == globalDomain {
		return errCompactGlobalDomain
	}

	var active []*hazardSlot
	for s := d.roster.loadHead(); s != nil; s = s.loadNext() {
		if s.isActive() {
			active = append(active, s)
		}
	}

	// Relink the still-active slots into a fresh chain so the new head
	// only ever walks live (or freed-after-compaction) nodes. Slots keep
	// their identity and current ptr; only the list structure is rebuilt.
	// next is written through the atomic accessor because a concurrent
	// reclamation scan may be walking this same chain via loadNext.
	var head *hazardSlot
	for i := len(active) - 1; i >= 0; i-- {
		active[i].storeNext(head)
		head = active[i]
	}

	// Swap the head pointer and count in. With the quiescence precondition
	// documented above, nothing else can be mutating r.head concurrently,
	// so a concurrent reader (acquire/snapshot) either sees the old chain
	// in full or the new one, never a half-relinked one.
	atomic.StorePointer(&d.roster.head, unsafe.Pointer(head))
	atomic.StoreInt32(&d.roster.count, int32(len(active)))
	return nil
}
