// retired.go: retired records and the retired list(s) awaiting reclamation
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package atombox

import (
	"sync/atomic"
	"unsafe"
)

// retiredRecord is a single object that has been removed from circulation
// by a writer but may still be observed by a concurrently-running reader.
// It sits on a retiredList until a reclamation scan proves no hazard slot
// protects ptr, at which point deleter(ptr) runs exactly once.
type retiredRecord struct {
	ptr     unsafe.Pointer
	deleter func(unsafe.Pointer)
	next    *retiredRecord
}

// retiredList is a single lock-free stack of retired records, pushed to by
// CAS and fully detached for scanning. In bicephany mode a Domain holds one
// retiredList per shard; in the default build it holds exactly one.
type retiredList struct {
	head  unsafe.Pointer // *retiredRecord
	count int64
}

// push CAS-prepends rec onto the list. Wait-free from the caller's
// perspective modulo the retry loop, which only spins under concurrent
// pushers on the same shard.
func (l *retiredList) push(rec *retiredRecord) {
	for {
		head := atomic.LoadPointer(&l.head)
		rec.next = (*retiredRecord)(head)
		if atomic.CompareAndSwapPointer(&l.head, head, unsafe.Pointer(rec)) {
			atomic.AddInt64(&l.count, 1)
			return
		}
	}
}

// detachAll atomically swaps the entire list out for nil and returns the
// head of the detached chain. Concurrent pushers that lose the race with
// detachAll simply land their record on the new (empty) list instead of
// the detached one; nothing is lost either way.
func (l *retiredList) detachAll() *retiredRecord {
	head := atomic.SwapPointer(&l.head, nil)
	return (*retiredRecord)(head)
}

// len returns the approximate number of records currently on the list.
// Approximate because push/reclaim update it independently of the list
// pointer itself; used only for the ReclamationThreshold heuristic and
// Stats, never for correctness.
func (l *retiredList) len() int64 {
	return atomic.LoadInt64(&l.count)
}

func (l *retiredList) addCount(delta int64) {
	atomic.AddInt64(&l.count, delta)
}
