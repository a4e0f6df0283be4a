package faimm

import "sync"

const defaultScratchSize = 4096

// scratchPool recycles the buffers the pread fallback fills per run, so
// String and CountBases do not allocate per line. Under mmap the scratch is
// passed along but never touched.
var scratchPool = sync.Pool{
	New: func() any { return make([]byte, defaultScratchSize) },
}

func getScratch(size int) []byte {
	buf := scratchPool.Get().([]byte)
	if len(buf) < size {
		buf = make([]byte, size)
	}
	return buf
}

func putScratch(buf []byte) {
	if len(buf) >= defaultScratchSize {
		scratchPool.Put(buf)
	}
}
