package faimm

import (
	"strings"
	"sync/atomic"
)

// View is a window over the base interval [start, end) of one sequence. It
// stores the record geometry and the requested range; byte offsets are
// computed lazily, one line-bounded run at a time, so construction costs
// nothing and line terminators are skipped without copying.
//
// A View is read-only and restartable: Bases, String and CountBases may be
// called any number of times with identical results.
type View struct {
	src     *backing
	rec     FaiRecord
	start   int64
	end     int64
	scratch int
}

// Len returns the number of bases in the view.
func (v *View) Len() int64 { return v.end - v.start }

// Start returns the zero-based base coordinate the view begins at.
func (v *View) Start() int64 { return v.start }

// End returns the (exclusive) base coordinate the view ends at.
func (v *View) End() int64 { return v.end }

// Name returns the name of the sequence the view is part of.
func (v *View) Name() string { return v.rec.Name }

// run returns the bytes of the longest base run that starts at base
// coordinate pos and stays on one fasta line, clipped to the view end.
func (v *View) run(pos int64, scratch []byte) ([]byte, error) {
	line := pos / v.rec.LineBases
	col := pos % v.rec.LineBases
	n := v.rec.LineBases - col
	if rem := v.end - pos; rem < n {
		n = rem
	}
	b, err := v.src.bytes(v.rec.Offset+line*v.rec.LineWidth+col, n, scratch)
	if err == nil {
		atomic.AddUint64(&v.src.statBases, uint64(n))
	}
	return b, err
}

// forEachRun walks the view run by run. fn must not retain the slice it is
// handed; in pread mode it aliases scratch.
func (v *View) forEachRun(scratch []byte, fn func([]byte)) error {
	for pos := v.start; pos < v.end; {
		b, err := v.run(pos, scratch)
		if err != nil {
			return err
		}
		fn(b)
		pos += int64(len(b))
	}
	return nil
}

// Bases returns a fresh iterator over the bases of the view. Iterators are
// independent; requesting one does not consume or mutate the view.
func (v *View) Bases() *Bases {
	it := &Bases{v: v, pos: v.start}
	if v.src.mmap == nil {
		it.scratch = make([]byte, v.scratch)
	}
	return it
}

// acceptedBase is the printable mask applied by String and CountBases.
// Bytes outside it (line terminators are never seen here, but gap and stop
// symbols in sloppy fasta files are) are dropped silently rather than
// reported; this lossy policy is deliberate.
func acceptedBase(b byte) bool { return b >= 'A' && b <= 'z' }

// String materializes the view into a string, dropping any byte outside the
// accepted printable mask. In pread fallback mode an I/O error truncates
// the result; under mmap (the default) String cannot fail.
func (v *View) String() string {
	var sb strings.Builder
	sb.Grow(int(v.Len()))
	scratch := getScratch(int(v.rec.LineBases))
	defer putScratch(scratch)
	v.forEachRun(scratch, func(run []byte) {
		for _, b := range run {
			if acceptedBase(b) {
				sb.WriteByte(b)
			}
		}
	})
	return sb.String()
}

// CountBases tallies the base composition of the view in a single pass.
// Counting sees exactly the bytes String keeps: mask-rejected bytes are not
// counted at all, accepted bytes that are no recognized base symbol land in
// Other.
func (v *View) CountBases() BaseCounts {
	var bc BaseCounts
	scratch := getScratch(int(v.rec.LineBases))
	defer putScratch(scratch)
	v.forEachRun(scratch, func(run []byte) {
		for _, b := range run {
			switch b {
			case 'A', 'a':
				bc.A++
			case 'C', 'c':
				bc.C++
			case 'G', 'g':
				bc.G++
			case 'T', 't':
				bc.T++
			case 'N', 'n':
				bc.N++
			default:
				if acceptedBase(b) {
					bc.Other++
				}
			}
		}
	})
	return bc
}

// Bases iterates over the bases of a View in strictly increasing coordinate
// order, one byte per base, never yielding line terminators. The scan-style
// loop is
//
//	it := v.Bases()
//	for b, ok := it.Next(); ok; b, ok = it.Next() { ... }
//	if err := it.Err(); err != nil { ... }
//
// Err only ever reports pread fallback I/O errors.
type Bases struct {
	v       *View
	pos     int64 // next base coordinate to fetch
	run     []byte
	ri      int
	scratch []byte
	err     error
}

// Next returns the next base. ok is false once the view is exhausted or a
// read failed.
func (it *Bases) Next() (b byte, ok bool) {
	for it.ri >= len(it.run) {
		if it.err != nil || it.pos >= it.v.end {
			return 0, false
		}
		run, err := it.v.run(it.pos, it.scratch)
		if err != nil {
			it.err = err
			return 0, false
		}
		it.run = run
		it.ri = 0
		it.pos += int64(len(run))
	}
	b = it.run[it.ri]
	it.ri++
	return b, true
}

// Err returns the first read error encountered by Next, if any.
func (it *Bases) Err() error { return it.err }

// BaseCounts holds occurrence counts of the common symbols in DNA
// references: A, C, G, T, N (upper or lower case) and an Other bucket for
// everything else that passed the printable mask.
type BaseCounts struct {
	A, C, G, T, N, Other uint64
}

// Total returns the number of counted bases.
func (c BaseCounts) Total() uint64 {
	return c.A + c.C + c.G + c.T + c.N + c.Other
}

// GC returns the fraction of unambiguous bases (A, C, G, T) that are G or
// C, or 0 when there are none.
func (c BaseCounts) GC() float64 {
	acgt := c.A + c.C + c.G + c.T
	if acgt == 0 {
		return 0
	}
	return float64(c.G+c.C) / float64(acgt)
}
