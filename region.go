package faimm

import (
	"fmt"
	"strconv"
	"strings"
)

// Region is a parsed region string. Start and End are zero-based half-open
// base coordinates; when Whole is set the region names an entire sequence
// and Start/End are meaningless.
type Region struct {
	Name  string
	Start int64
	End   int64
	Whole bool
}

// ParseRegion parses samtools-style region strings: "chr7" addresses a
// whole sequence, "chr7:155-732" the one-based inclusive base interval 155
// to 732. Thousands separators are tolerated ("chr7:1,000-2,000"). The name
// may itself contain colons; the split happens at the last one.
func ParseRegion(s string) (Region, error) {
	if s == "" {
		return Region{}, fmt.Errorf("%w: empty string", ErrRegion)
	}
	i := strings.LastIndexByte(s, ':')
	if i < 0 {
		return Region{Name: s, Whole: true}, nil
	}
	name, span := s[:i], s[i+1:]
	if name == "" {
		return Region{}, fmt.Errorf("%w: %q has no sequence name", ErrRegion, s)
	}

	dash := strings.IndexByte(span, '-')
	if dash < 0 {
		return Region{}, fmt.Errorf("%w: %q: interval must be start-end", ErrRegion, s)
	}
	start, err := parseCoord(span[:dash])
	if err != nil {
		return Region{}, fmt.Errorf("%w: %q: %v", ErrRegion, s, err)
	}
	end, err := parseCoord(span[dash+1:])
	if err != nil {
		return Region{}, fmt.Errorf("%w: %q: %v", ErrRegion, s, err)
	}
	if start < 1 || end < start {
		return Region{}, fmt.Errorf("%w: %q: interval is inverted or not one-based", ErrRegion, s)
	}
	// one-based inclusive in, zero-based half-open out
	return Region{Name: name, Start: start - 1, End: end}, nil
}

func parseCoord(s string) (int64, error) {
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad coordinate %q", s)
	}
	return v, nil
}
