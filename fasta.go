package faimm

import (
	"fmt"
	"sync/atomic"
)

// IndexedFasta combines a parsed fasta index with the mapped sequence data
// it describes. It is immutable after Open and safe for concurrent readers;
// close it only when no Views derived from it are in use anymore.
type IndexedFasta struct {
	fai     *Fai
	src     *backing
	scratch int
}

// Open opens the fasta file at path with default options. The index is
// expected at path + ".fai".
func Open(path string) (*IndexedFasta, error) {
	return OpenWithOptions(path, DefaultOptions())
}

// OpenWithOptions opens the fasta file at path, parses its index and maps
// the sequence data read-only.
func OpenWithOptions(path string, opts Options) (*IndexedFasta, error) {
	indexPath := opts.IndexPath
	if indexPath == "" {
		indexPath = path + ".fai"
	}
	fai, err := OpenFai(indexPath)
	if err != nil {
		return nil, err
	}

	src, err := openBacking(path, !opts.DisableMmap)
	if err != nil {
		return nil, err
	}

	scratch := opts.ScratchSize
	if scratch <= 0 {
		scratch = defaultScratchSize
	}
	return &IndexedFasta{fai: fai, src: src, scratch: scratch}, nil
}

// Fai returns the parsed fasta index.
func (f *IndexedFasta) Fai() *Fai { return f.fai }

// View returns a view over the zero-based half-open base interval
// [start, end) of the sequence at position tid. Construction only computes
// offsets; no sequence bytes are touched until the view is iterated.
func (f *IndexedFasta) View(tid int, start, end int64) (*View, error) {
	rec, ok := f.fai.Record(tid)
	if !ok {
		return nil, fmt.Errorf("%w: tid %d not in index (%d sequences)", ErrRange, tid, f.fai.Len())
	}
	return f.newView(rec, start, end)
}

// ViewByName is View with a name lookup; it fails with ErrNameNotFound when
// the sequence is absent.
func (f *IndexedFasta) ViewByName(name string, start, end int64) (*View, error) {
	tid, ok := f.fai.Tid(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNameNotFound, name)
	}
	return f.View(tid, start, end)
}

// ViewAll returns a view spanning the entire sequence at position tid.
func (f *IndexedFasta) ViewAll(tid int) (*View, error) {
	rec, ok := f.fai.Record(tid)
	if !ok {
		return nil, fmt.Errorf("%w: tid %d not in index (%d sequences)", ErrRange, tid, f.fai.Len())
	}
	return f.newView(rec, 0, rec.Length)
}

// ViewRegion parses a samtools-style region string ("chr", "chr:start-end",
// one-based inclusive) and returns the matching view.
func (f *IndexedFasta) ViewRegion(region string) (*View, error) {
	reg, err := ParseRegion(region)
	if err != nil {
		return nil, err
	}
	tid, ok := f.fai.Tid(reg.Name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNameNotFound, reg.Name)
	}
	if reg.Whole {
		return f.ViewAll(tid)
	}
	return f.View(tid, reg.Start, reg.End)
}

func (f *IndexedFasta) newView(rec FaiRecord, start, end int64) (*View, error) {
	if start < 0 || start > end || end > rec.Length {
		return nil, fmt.Errorf("%w: [%d, %d) of %q (length %d)", ErrRange, start, end, rec.Name, rec.Length)
	}
	// Reject index geometry that points past the mapped data now, so
	// iteration and aggregation can never fault.
	stopByte := rec.Offset + (end/rec.LineBases)*rec.LineWidth + end%rec.LineBases
	if stopByte > f.src.size {
		return nil, fmt.Errorf("%w: %q[%d:%d] needs byte %d but file has %d",
			ErrRange, rec.Name, start, end, stopByte, f.src.size)
	}

	atomic.AddUint64(&f.src.statViews, 1)
	return &View{src: f.src, rec: rec, start: start, end: end, scratch: f.scratch}, nil
}

// Close unmaps the sequence data and closes the underlying file. Views
// derived from f must not be used afterwards.
func (f *IndexedFasta) Close() error {
	return f.src.close()
}
