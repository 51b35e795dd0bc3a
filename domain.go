// domain.go: hazard-pointer domain - roster, retired list(s), reclamation
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package atombox

import (
	"sync"
	"sync/atomic"
	"unsafe"
)

// Domain owns a hazard slot roster and one or more retired-list shards. It
// is the unit of isolation: a Guard minted by one domain only protects
// against reclamation scans run by that same domain (spec invariant I6).
// Most programs need only the process-wide Global domain; NewDomain exists
// for tests and for isolating unrelated data structures from each other's
// retired-list traffic.
type Domain struct {
	cfg    Config
	roster hazardRoster
	shards []retiredList

	scanning  int32 // CAS guard: at most one inline scan in flight
	closed    int32
	scanCount uint64
	reclaimed uint64

	// reclamationThreshold mirrors cfg.ReclamationThreshold but is read and
	// written atomically so a DomainHotConfig can retune it without racing
	// concurrent Retire calls.
	reclamationThreshold int64

	retiredSeen sync.Map // ptr -> struct{}, only populated when cfg.Strict
}

// threshold returns the current reclamation threshold.
func (d *Domain) threshold() int64 {
	return atomic.LoadInt64(&d.reclamationThreshold)
}

// SetReclamationThreshold retunes the retired-list length that triggers an
// inline scan. Safe to call concurrently with Retire.
func (d *Domain) SetReclamationThreshold(n int) {
	if n < MinReclamationThreshold {
		n = MinReclamationThreshold
	}
	atomic.StoreInt64(&d.reclamationThreshold, int64(n))
}

var (
	globalDomain     *Domain
	globalDomainOnce sync.Once
)

// Global returns the process-wide default domain, created lazily on first
// use with DefaultConfig. Most callers should use this rather than
// managing their own Domain.
func Global() *Domain {
	globalDomainOnce.Do(func() {
		d, err := NewDomain(DefaultConfig())
		if err != nil {
			// DefaultConfig is always valid; a failure here means the
			// package itself is broken.
			panic(NewErrInternal("Global", err))
		}
		globalDomain = d
	})
	return globalDomain
}

// NewDomain constructs a private Domain with the given configuration.
// Zero-value fields are defaulted by Config.Validate; a negative
// ReclamationThreshold or ShardCount is reported as an error rather than
// silently clamped.
func NewDomain(cfg Config) (*Domain, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d := &Domain{
		cfg:                  cfg,
		shards:               make([]retiredList, shardCountFor(cfg)),
		reclamationThreshold: int64(cfg.ReclamationThreshold),
	}
	return d, nil
}

// NewGuard mints a Guard bound to this domain, claiming a hazard slot from
// the roster (recycling one if available, otherwise growing the roster by
// one node; the roster only shrinks through an explicit Compact).
func (d *Domain) NewGuard() *Guard {
	slot := d.roster.acquire(d.cfg.MetricsCollector)
	return &Guard{domain: d, slot: slot}
}

// Stats returns a point-in-time snapshot of roster size and retired/
// reclaimed counters.
func (d *Domain) Stats() DomainStats {
	var retired int64
	for i := range d.shards {
		retired += d.shards[i].len()
	}
	return DomainStats{
		HazardSlotCount: d.roster.size(),
		RetiredCount:    retired,
		ReclaimedTotal:  atomic.LoadUint64(&d.reclaimed),
		ScanCount:       atomic.LoadUint64(&d.scanCount),
	}
}

// Retire announces that ptr is logically unreachable: deleter will run
// exactly once, once no hazard slot anywhere in the domain still protects
// ptr. This is the public half of the domain's Protect/Retire contract
// (spec §2/§6): AtomicBox calls it internally on every Store/Swap/CAS/Close,
// but any lock-free structure built directly on top of a Domain (the
// system's stated purpose - see doc.go) can call it too, with a deleter
// that does real work (closing a file handle, releasing a pooled buffer)
// rather than AtomicBox's no-op (Go's GC already reclaims the memory
// itself once nothing references it).
func (d *Domain) Retire(ptr unsafe.Pointer, deleter func(unsafe.Pointer)) {
	d.retire(ptr, deleter)
}

// retire pushes (ptr, deleter) onto the domain's retired list, detecting
// double-retire under Strict mode, and triggers an inline reclamation scan
// once the owning shard crosses Config.ReclamationThreshold.
func (d *Domain) retire(ptr unsafe.Pointer, deleter func(unsafe.Pointer)) {
	start := d.cfg.TimeProvider.Now()

	if d.cfg.Strict {
		if _, loaded := d.retiredSeen.LoadOrStore(ptr, struct{}{}); loaded {
			panic(NewErrDoubleRetire(ptr))
		}
	}

	shard := &d.shards[shardFor(len(d.shards))]
	shard.push(&retiredRecord{ptr: ptr, deleter: deleter})

	d.cfg.MetricsCollector.RecordRetire(d.cfg.TimeProvider.Now() - start)
	d.cfg.Logger.Debug("atombox: retired", "shard_len", shard.len())

	if shard.len() >= d.threshold() {
		d.maybeScan()
	}
}

// maybeScan runs an inline reclamation scan if no other goroutine is
// currently running one on this domain. Scans never block: a goroutine
// that loses the CAS simply returns, leaving the scan to whichever
// goroutine is already running (or a future Retire call).
func (d *Domain) maybeScan() {
	if !atomic.CompareAndSwapInt32(&d.scanning, 0, 1) {
		return
	}
	defer atomic.StoreInt32(&d.scanning, 0)
	d.scan()
}

// scan detaches every shard's retired list, takes a single roster
// snapshot, and reclaims every detached record whose pointer does not
// appear in the snapshot. Records still protected are pushed back onto
// their shard for a future scan to retry.
func (d *Domain) scan() {
	start := d.cfg.TimeProvider.Now()

	chains := make([]*retiredRecord, len(d.shards))
	detachedCount := 0
	for i := range d.shards {
		head := d.shards[i].detachAll()
		d.shards[i].addCount(-countChain(head))
		chains[i] = head
		detachedCount += int(countChain(head))
	}

	// Fence: every Protect that began before this point has either
	// published into a slot this snapshot will observe, or will observe
	// this scan's retirement on its own next load. See spec §4.3/§5's
	// seq-cst fence discussion; Go's CAS/atomic ops already carry
	// sequential-consistency semantics, so no explicit fence instruction
	// is required beyond the atomic load below.
	protected := d.roster.snapshot()

	kept, reclaimed := 0, 0
	for i, head := range chains {
		for rec := head; rec != nil; {
			next := rec.next
			if _, isProtected := protected[rec.ptr]; isProtected {
				kept++
				d.shards[i].push(&retiredRecord{ptr: rec.ptr, deleter: rec.deleter})
			} else {
				d.reclaim(rec)
				reclaimed++
			}
			rec = next
		}
	}

	atomic.AddUint64(&d.scanCount, 1)
	d.cfg.MetricsCollector.RecordScan(d.cfg.TimeProvider.Now()-start, detachedCount, kept, reclaimed)
	d.cfg.Logger.Debug("atombox: scan complete", "detached", detachedCount, "kept", kept, "reclaimed", reclaimed)
}

// reclaim invokes a retired record's deleter and Config.OnReclaim, then
// forgets the pointer so it can legitimately be reused (and, under Strict
// mode, retired again) by a future allocation at the same address.
func (d *Domain) reclaim(rec *retiredRecord) {
	defer func() {
		if r := recover(); r != nil {
			err := NewErrPanicRecovered("reclaim", r)
			d.cfg.Logger.Error("atombox: panic in deleter", "error", err)
		}
	}()
	rec.deleter(rec.ptr)
	atomic.AddUint64(&d.reclaimed, 1)
	if d.cfg.Strict {
		d.retiredSeen.Delete(rec.ptr)
	}
	if d.cfg.OnReclaim != nil {
		d.cfg.OnReclaim(rec.ptr)
	}
}

// Close reclaims every retired record immediately, without regard to
// hazard protection, and marks the domain closed. Calling Retire on a
// closed domain is intentionally left undefined (spec §7): no detection,
// no panic, matching the spec's own boundary-behavior note that this case
// is a genuine use-after-drop bug in the caller, not a recoverable error.
func (d *Domain) Close() error {
	if !atomic.CompareAndSwapInt32(&d.closed, 0, 1) {
		return nil
	}
	for i := range d.shards {
		head := d.shards[i].detachAll()
		for rec := head; rec != nil; {
			next := rec.next
			d.reclaim(rec)
			rec = next
		}
		d.shards[i].addCount(-d.shards[i].len())
	}
	return nil
}

func countChain(head *retiredRecord) int64 {
	var n int64
	for rec := head; rec != nil; rec = rec.next {
		n++
	}
	return n
}
