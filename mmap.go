package faimm

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// backing owns the read-only byte region the views slice from. With mmap
// enabled (the default) byte access is a zero-copy sub-slice of the mapped
// region; otherwise bytes are pread into a caller-supplied scratch buffer.
//
// backing never writes, so concurrent access needs no locking. The read
// statistics are plain atomics, see stats.go.
type backing struct {
	file *os.File
	mmap []byte // nil when mmap is disabled or the file is empty
	size int64

	statViews uint64
	statBases uint64
}

func openBacking(path string, useMmap bool) (*backing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fasta: %w", err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat fasta: %w", err)
	}

	b := &backing{file: f, size: fi.Size()}
	// mmap of a zero-length file fails with EINVAL; an empty region is
	// representable as a nil slice.
	if useMmap && b.size > 0 {
		m, err := unix.Mmap(int(f.Fd()), 0, int(b.size), unix.PROT_READ, unix.MAP_SHARED)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("mmap fasta: %w", err)
		}
		b.mmap = m
	}
	return b, nil
}

// bytes returns n bytes starting at absolute offset off. Under mmap the
// returned slice aliases the mapped region and stays valid until close;
// in fallback mode it aliases scratch (grown when too small) and is only
// valid until the next call reusing that scratch.
func (b *backing) bytes(off, n int64, scratch []byte) ([]byte, error) {
	if off+n > b.size {
		return nil, fmt.Errorf("%w: byte range %d+%d beyond mapped size %d", ErrRange, off, n, b.size)
	}
	if b.mmap != nil {
		return b.mmap[off : off+n], nil
	}
	if int64(len(scratch)) < n {
		scratch = make([]byte, n)
	}
	if _, err := b.file.ReadAt(scratch[:n], off); err != nil {
		return nil, fmt.Errorf("read fasta at %d: %w", off, err)
	}
	return scratch[:n], nil
}

func (b *backing) close() error {
	var firstErr error
	if b.mmap != nil {
		if err := unix.Munmap(b.mmap); err != nil {
			firstErr = fmt.Errorf("munmap fasta: %w", err)
		}
		b.mmap = nil
	}
	if err := b.file.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("close fasta: %w", err)
	}
	return firstErr
}
