package faimm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// FaiRecord stores the length, byte offset and line geometry of a single
// sequence as declared by one line of the .fai index.
type FaiRecord struct {
	Name      string
	Length    int64 // total number of bases
	Offset    int64 // byte offset of the first base in the fasta file
	LineBases int64 // bases per full line
	LineWidth int64 // bytes per full line, including the line terminator
}

// Fai is the parsed fasta index. It maps sequence names to positions and
// stores the per-sequence layout needed to translate base coordinates into
// byte offsets. Records keep the order they have in the index file.
type Fai struct {
	records []FaiRecord
	nameMap map[string]int
}

// ParseFai reads tab-separated index lines (name, length, offset, line
// bases, line width) from r. Structural problems are reported as
// ErrMalformedIndex with the offending line number, repeated names as
// ErrDuplicateName.
func ParseFai(r io.Reader) (*Fai, error) {
	fai := &Fai{nameMap: make(map[string]int)}

	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Text()
		if line == "" {
			continue
		}

		p := strings.Split(line, "\t")
		if len(p) != 5 {
			return nil, fmt.Errorf("%w: line %d: expected 5 fields, got %d", ErrMalformedIndex, lineno, len(p))
		}

		rec := FaiRecord{Name: p[0]}
		for i, dst := range []*int64{&rec.Length, &rec.Offset, &rec.LineBases, &rec.LineWidth} {
			v, err := strconv.ParseInt(p[i+1], 10, 64)
			if err != nil || v < 0 {
				return nil, fmt.Errorf("%w: line %d: field %q is not a non-negative integer", ErrMalformedIndex, lineno, p[i+1])
			}
			*dst = v
		}
		if rec.LineBases == 0 || rec.LineWidth <= rec.LineBases {
			return nil, fmt.Errorf("%w: line %d: line width %d incompatible with %d bases per line",
				ErrMalformedIndex, lineno, rec.LineWidth, rec.LineBases)
		}

		if _, dup := fai.nameMap[rec.Name]; dup {
			return nil, fmt.Errorf("%w: line %d: %q", ErrDuplicateName, lineno, rec.Name)
		}
		fai.nameMap[rec.Name] = len(fai.records)
		fai.records = append(fai.records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read fasta index: %w", err)
	}
	return fai, nil
}

// OpenFai parses the index file at path.
func OpenFai(path string) (*Fai, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fasta index: %w", err)
	}
	defer f.Close()
	return ParseFai(f)
}

// Tid returns the position of the sequence with the given name. A missing
// name is not an error; ok reports whether the name was found.
func (f *Fai) Tid(name string) (tid int, ok bool) {
	tid, ok = f.nameMap[name]
	return
}

// Record returns the index record at position tid, bounds-checked.
func (f *Fai) Record(tid int) (FaiRecord, bool) {
	if tid < 0 || tid >= len(f.records) {
		return FaiRecord{}, false
	}
	return f.records[tid], true
}

// Names returns the sequence names in index order.
func (f *Fai) Names() []string {
	names := make([]string, len(f.records))
	for i, rec := range f.records {
		names[i] = rec.Name
	}
	return names
}

// Len returns the number of sequences in the index.
func (f *Fai) Len() int { return len(f.records) }
