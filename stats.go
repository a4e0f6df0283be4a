package faimm

import "sync/atomic"

// Stats are cumulative read statistics for one IndexedFasta.
type Stats struct {
	Views     uint64 // views constructed
	BasesRead uint64 // bases sliced out of the backing during iteration
}

// Stats returns a snapshot of the read statistics. The counters are plain
// atomics; no lock is taken.
func (f *IndexedFasta) Stats() Stats {
	return Stats{
		Views:     atomic.LoadUint64(&f.src.statViews),
		BasesRead: atomic.LoadUint64(&f.src.statBases),
	}
}

// ResetStats zeroes the read statistics.
func (f *IndexedFasta) ResetStats() {
	atomic.StoreUint64(&f.src.statViews, 0)
	atomic.StoreUint64(&f.src.statBases, 0)
}
