package faimm

// Options configures how an indexed fasta file is opened.
//
//   - IndexPath:   explicit path to the .fai file ("" = fasta path + ".fai")
//   - DisableMmap: read through pread instead of a memory map; views are no
//     longer zero-copy and an I/O error during aggregation truncates the
//     result, but the file can live on filesystems where mmap is unwanted
//   - ScratchSize: initial size of the pooled scratch buffers used by the
//     pread fallback (0 = default)
//
// The zero value selects defaults, see DefaultOptions().
type Options struct {
	IndexPath   string
	DisableMmap bool
	ScratchSize int
}

// DefaultOptions returns the configuration used by Open.
func DefaultOptions() Options {
	return Options{
		ScratchSize: 4096,
	}
}
