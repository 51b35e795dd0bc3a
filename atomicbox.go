// atomicbox.go: AtomicBox[T], a word-sized atomic owning box
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package atombox

import (
	"sync/atomic"
	"unsafe"
)

// AtomicBox is a generic, thread-safe owning box: it holds exactly one
// *T at a time, swappable atomically, with old values reclaimed through
// its bound Domain once no Guard still protects them. The zero value is
// not usable; construct with NewAtomicBox.
type AtomicBox[T any] struct {
	ptr    unsafe.Pointer // *T
	domain *Domain
}

// NewAtomicBox creates a box holding value, bound to domain (or the
// process-wide Global domain if domain is omitted or nil). Passing more
// than one domain is a programming error; only the first is used.
func NewAtomicBox[T any](value T, domain ...*Domain) *AtomicBox[T] {
	var d *Domain
	if len(domain) > 0 {
		d = domain[0]
	}
	if d == nil {
		d = Global()
	}
	v := value
	return &AtomicBox[T]{
		ptr:    unsafe.Pointer(&v),
		domain: d,
	}
}

// Domain returns the domain this box is bound to. Guards used with Load
// must have been minted by this same domain (spec invariant I6).
func (b *AtomicBox[T]) Domain() *Domain {
	return b.domain
}

// Load reads the current value through g, protecting it against concurrent
// reclamation for as long as g remains held. The returned pointer must not
// be used after g.Release() (or after the next LoadFrom on g).
func (b *AtomicBox[T]) Load(g *Guard) *T {
	if b.domain.cfg.Strict && g.domain != b.domain {
		panic(NewErrCrossDomainGuard())
	}
	p := g.LoadFrom(&b.ptr)
	return (*T)(p)
}

// Store replaces the box's value with a new one, retiring the previous
// value on the box's domain. The old value is reclaimed once no
// outstanding Guard still protects it.
func (b *AtomicBox[T]) Store(value T) {
	v := value
	newPtr := unsafe.Pointer(&v)
	old := atomic.SwapPointer(&b.ptr, newPtr)
	b.domain.retire(old, func(unsafe.Pointer) {
		// The Go garbage collector reclaims the backing memory once no
		// reference to it remains anywhere, including hazard slots; the
		// retired record's job is only to delay that reachability, not
		// to free memory by hand. Once a scan drops the record, nothing
		// here references the old value any more, so the deleter has
		// nothing to do.
	})
}

// Swap replaces the box's value and returns a Guard already protecting the
// previous value, so the caller can inspect it without racing the
// reclamation scan that Store would otherwise trigger. Caller must
// Release the returned Guard when done.
func (b *AtomicBox[T]) Swap(value T) (old *T, guard *Guard) {
	guard = b.domain.NewGuard()
	v := value
	newPtr := unsafe.Pointer(&v)

	for {
		current := guard.LoadFrom(&b.ptr)
		if atomic.CompareAndSwapPointer(&b.ptr, current, newPtr) {
			b.domain.retire(current, func(unsafe.Pointer) {})
			return (*T)(current), guard
		}
	}
}

// CompareAndSwap atomically replaces the box's value with newValue only if
// the current value's address equals old (as returned by a prior Load).
// Reports whether the swap happened. On success, the replaced value is
// retired on the box's domain.
func (b *AtomicBox[T]) CompareAndSwap(old *T, newValue T) bool {
	oldPtr := unsafe.Pointer(old)
	v := newValue
	newPtr := unsafe.Pointer(&v)
	if !atomic.CompareAndSwapPointer(&b.ptr, oldPtr, newPtr) {
		return false
	}
	b.domain.retire(oldPtr, func(unsafe.Pointer) {})
	return true
}

// Close retires the box's current value without replacing it. The box
// must not be used after Close.
func (b *AtomicBox[T]) Close() {
	old := atomic.SwapPointer(&b.ptr, nil)
	if old != nil {
		b.domain.retire(old, func(unsafe.Pointer) {})
	}
}
