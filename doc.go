// Package atombox provides a thread-safe atomic owning box over a
// hazard-pointer safe memory reclamation (SMR) domain.
//
// # Overview
//
// atom-box is designed for building lock-free data structures on top of it:
//   - Safety: readers never observe freed memory, even under concurrent
//     retirement of the object they are reading
//   - Concurrency: lock-free operations using atomic primitives, no mutex
//     held across user code on the hot path
//   - Reclamation: retired objects are eventually reclaimed exactly once,
//     without stop-the-world pauses and without reference counting
//   - Observability: structured errors, pluggable logging and metrics
//
// # Features
//
//   - Hazard Pointers: per-reader protection slots recycled across an
//     append-only roster
//   - Lock-Free Domain: CAS-based roster growth, CAS-based retired-list push
//   - Type-Safe Generics: AtomicBox[T any]
//   - Threshold-Driven Reclamation: an inline scan fires once the retired
//     list crosses a configurable threshold
//   - Bicephany Mode: optional sharded retired lists for contention relief
//   - Structured Errors: rich error context with error codes
//   - Metrics Collection: MetricsCollector interface for observability
//
// # Quick Start
//
//	import "github.com/Johnabell/atom-box"
//
//	type Config struct {
//	    Port int
//	}
//
//	func main() {
//	    box := atombox.NewAtomicBox(Config{Port: 8080})
//	    defer box.Close()
//
//	    domain := box.Domain()
//	    guard := domain.NewGuard()
//	    defer guard.Release()
//
//	    cfg := box.Load(guard)
//	    fmt.Printf("listening on %d\n", cfg.Port)
//
//	    box.Store(Config{Port: 9090})
//	}
//
// # Hazard Pointers
//
// A reader that wants to dereference an atomic pointer without holding a
// lock publishes the pointer it intends to read into a per-reader hazard
// slot, then re-reads the source to confirm the publish raced nobody out.
// A writer that removes a pointer from circulation calls Retire instead of
// freeing it immediately; the domain only reclaims a retired object once
// no hazard slot anywhere in the domain still holds it.
//
//	guard := domain.NewGuard()
//	p := guard.LoadFrom(&atomicSrc)
//	// p is safe to dereference until guard.Release()
//	guard.Release()
//
// # Reclamation Scan
//
// Retire pushes a (pointer, deleter) pair onto the domain's retired list.
// Once the list crosses Config.ReclamationThreshold, the retiring goroutine
// runs an inline scan: detach the retired list, fence, snapshot the roster,
// and reclaim every retired record whose pointer is not in the snapshot.
// Records still protected are pushed back for the next scan. The scan never
// blocks and is bounded by (retired-count * hazard-slot-count).
//
// # Bicephany Mode
//
// With the bicephany build tag, the retired list is split into
// Config.ShardCount shards, each retiring goroutine picking a shard by a
// hash of its own stack address (no thread-locals). This reduces push
// contention under heavy retirement without changing the reclamation
// contract: a scan always detaches every shard.
//
// # Concurrency Model
//
// atom-box uses a lock-free design with atomic operations:
//
//   - Protect (hazard publish): atomic loads/stores, a single loop, no locks
//   - Retire: CAS push onto the retired list, inline scan on threshold
//   - Reclamation scan: an atomic swap detaches the retired list and the
//     roster snapshot uses only atomic loads
//
// No operation blocks. Protect may loop under heavy concurrent writer churn
// but converges with probability 1 (spec §8, boundary behavior).
//
// # Observability
//
// Built-in stats tracking:
//
//	stats := domain.Stats()
//	fmt.Printf("slots: %d, retired: %d, reclaimed: %d\n",
//	    stats.HazardSlotCount, stats.RetiredCount, stats.ReclaimedTotal)
//
// Enterprise observability with OpenTelemetry (optional):
//
//	import atomboxotel "github.com/Johnabell/atom-box/otel"
//
//	exporter, _ := prometheus.New()
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//	metricsCollector, _ := atomboxotel.NewOTelMetricsCollector(provider)
//
//	domain, _ := atombox.NewDomain(atombox.Config{
//	    MetricsCollector: metricsCollector, // optional, zero overhead if nil
//	})
//
// The core atombox package has zero OTEL dependencies. The atombox/otel
// package is a separate module.
//
// # Configuration
//
//	cfg := atombox.Config{
//	    // Optional: retired-list length that triggers an inline scan
//	    ReclamationThreshold: 2000,
//
//	    // Optional: number of retired-list shards (bicephany build only)
//	    ShardCount: 4,
//
//	    // Optional: panic with a structured error on detected misuse
//	    // (cross-domain guard use, double-retire). DefaultConfig sets it
//	    // true; left out of a Config literal it is false.
//	    Strict: true,
//
//	    // Optional: logger for scan/reclaim events (default: NoOpLogger)
//	    Logger: myLogger,
//
//	    // Optional: metrics collector (default: NoOp, zero overhead)
//	    MetricsCollector: metricsCollector,
//
//	    // Optional: custom time provider for testing (default: real time)
//	    TimeProvider: myTimeProvider,
//	}
//
//	domain, err := atombox.NewDomain(cfg)
//
// # Error Handling
//
// atom-box uses structured errors with error codes for everything that is a
// genuine precondition failure (invalid Config), and panics carrying the
// same structured errors for the misuse the spec calls out as "undefined
// behavior caught only by debug assertions" (cross-domain guard use,
// double-retire), gated by Config.Strict:
//
//	domain, err := atombox.NewDomain(atombox.Config{ReclamationThreshold: -1})
//	if err != nil {
//	    if atombox.IsConfigError(err) {
//	        log.Printf("bad config: %v", err)
//	    }
//	}
//
// Available error codes:
//   - ATOMBOX_INVALID_THRESHOLD: ReclamationThreshold is negative
//   - ATOMBOX_INVALID_SHARD_COUNT: ShardCount is negative
//   - ATOMBOX_CROSS_DOMAIN_GUARD: a guard was used to load from a box bound
//     to a different domain
//   - ATOMBOX_DOUBLE_RETIRE: the same pointer was retired twice on the same
//     domain
//
// All errors implement the error interface and can be unwrapped.
//
// # Thread Safety
//
// All Domain, Guard, and AtomicBox operations are safe for concurrent use.
// Tested with -race detector: zero race conditions detected.
//
// # Examples
//
// The repository carries no examples directory. Runnable drivers:
//   - cmd/atombox-stress/: concurrent readers and writers against one
//     AtomicBox, reporting DomainStats
//   - benchmarks/: throughput benchmarks and reclaim-ratio reports (a
//     separate module)
//
// # Packages
//
//   - github.com/Johnabell/atom-box: Core hazard-pointer domain and AtomicBox[T]
//   - github.com/Johnabell/atom-box/otel: OpenTelemetry integration (separate module)
//
// # License
//
// See LICENSE file in the repository.
package atombox
