// Package faimm provides random access to indexed fasta files (a .fa file
// with an accompanying .fai index) using a read-only memory map of the
// sequence data. It is intended for genome sized references where loading
// the sequence into memory is not an option. Because an indexed fasta file
// stores a limited number of bases per line, separated by (sometimes
// platform-specific) newlines, the mapped bytes cannot be used directly;
// access goes through a View that translates zero-based base coordinates
// into byte ranges and skips the line terminators.
//
// No operation mutates the mapping, the index or a View, so an IndexedFasta
// can be shared freely between goroutines without locking. Views must not be
// used after the IndexedFasta that produced them has been closed.
//
// The library is organised into several files for clarity:
//
//	options.go – configuration struct & defaults
//	errors.go  – sentinel errors
//	fai.go     – fasta index (.fai) parsing & name/position lookup
//	mmap.go    – read-only mapped backing & raw byte access
//	buffer.go  – pooled scratch buffers for the pread fallback
//	fasta.go   – IndexedFasta constructors & view creation
//	view.go    – base-range views, iteration & composition counting
//	region.go  – samtools-style region string parsing
//	stats.go   – lightweight read statistics
package faimm
