package faimm

import "errors"

// Sentinel errors returned (possibly wrapped with extra context) by the
// package. Test with errors.Is.
var (
	// ErrMalformedIndex indicates a structural problem in the .fai file:
	// wrong field count, a non-numeric or negative numeric field, or a
	// line width that does not exceed the bases per line.
	ErrMalformedIndex = errors.New("faimm: malformed fasta index")

	// ErrDuplicateName indicates the .fai file declares the same sequence
	// name twice.
	ErrDuplicateName = errors.New("faimm: duplicate sequence name in index")

	// ErrNameNotFound is returned by name-based lookups when the sequence
	// is not present in the index.
	ErrNameNotFound = errors.New("faimm: sequence name not found")

	// ErrRange is returned for inverted or out-of-bounds interval
	// requests. It is reported before any byte access takes place.
	ErrRange = errors.New("faimm: interval out of range")

	// ErrRegion indicates a region string that could not be parsed.
	ErrRegion = errors.New("faimm: malformed region")
)
