// hitratio_test.go: reclaim-ratio reporting across workloads and thresholds
//
// Adapted from the teacher's cache hit-ratio comparison: instead of
// measuring how often a Get finds a warm key, this measures how much of
// what a sustained Store/Retire workload produces the domain has actually
// reclaimed by the time it quiesces, across Zipf skew and reclamation
// threshold choices.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package benchmarks

import (
	"testing"

	atombox "github.com/Johnabell/atom-box"
)

// TestReclaimRatio_AcrossThresholds reports how the reclamation threshold
// affects the fraction of ever-retired records a sustained write workload
// has reclaimed by the time it stops, before any final quiescing Close.
func TestReclaimRatio_AcrossThresholds(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping extended reclaim ratio test in short mode")
	}

	const writes = 100_000

	thresholds := []int{16, 256, 1000, 10_000}

	for _, threshold := range thresholds {
		p := NewBoxPool(mediumPoolSize, threshold)

		zipf := NewZipfGenerator(1.0, 1.0, uint64(mediumKeySpace-1))
		for i := 0; i < writes; i++ {
			p.Store(zipf.NextString(), i)
		}

		stats := p.Stats()
		t.Logf("threshold=%-6d reclaim_ratio=%.2f%% scans=%d retired_live=%d reclaimed=%d",
			threshold, stats.ReclaimRatio(), stats.ScanCount, stats.RetiredCount, stats.ReclaimedTotal)

		p.Close()
	}
}

// TestReclaimRatio_AcrossWorkloads reports reclaim ratio under different
// Zipf skew and key-space sizes, mirroring the teacher's per-workload hit
// ratio breakdown.
func TestReclaimRatio_AcrossWorkloads(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping workload reclaim ratio test in short mode")
	}

	workloads := []struct {
		name     string
		s        float64
		keySpace int
	}{
		{"Highly Skewed (s=1.5)", 1.5, mediumKeySpace},
		{"Moderate (s=1.0)", 1.0, mediumKeySpace},
		{"Less Skewed (s=1.01)", 1.01, mediumKeySpace},
		{"Large KeySpace", 1.0, largeKeySpace},
	}

	for _, wl := range workloads {
		t.Logf("\n=== Workload: %s ===", wl.name)

		p := NewBoxPool(mediumPoolSize, atombox.DefaultReclamationThreshold)
		zipf := NewZipfGenerator(wl.s, 1.0, uint64(wl.keySpace-1))

		requests := 100_000
		for i := 0; i < requests; i++ {
			key := zipf.NextString()
			if i%2 == 0 {
				p.Store(key, i)
			} else {
				g := p.domain.NewGuard()
				p.Load(g, key)
				g.Release()
			}
		}

		stats := p.Stats()
		t.Logf("  reclaim_ratio=%.2f%% scans=%d retired_live=%d reclaimed=%d",
			stats.ReclaimRatio(), stats.ScanCount, stats.RetiredCount, stats.ReclaimedTotal)

		p.Close()
	}
}
