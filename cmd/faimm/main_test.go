package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/veldsla/faimm"
)

// writeFixture writes a two-record genome plus .fai and returns the fasta
// path. "chrA" is 40 bases of repeated ACGT, "chrB" 20 Ns, both wrapped at
// 10 bases per line.
func writeFixture(t *testing.T) string {
	t.Helper()

	records := []struct {
		name string
		seq  string
	}{
		{"chrA", strings.Repeat("ACGT", 10)},
		{"chrB", strings.Repeat("N", 20)},
	}
	const lineBases = 10

	var fasta, fai strings.Builder
	for _, r := range records {
		fasta.WriteString(">" + r.name + "\n")
		offset := fasta.Len()
		for i := 0; i < len(r.seq); i += lineBases {
			fasta.WriteString(r.seq[i:i+lineBases] + "\n")
		}
		fmt.Fprintf(&fai, "%s\t%d\t%d\t%d\t%d\n", r.name, len(r.seq), offset, lineBases, lineBases+1)
	}

	path := filepath.Join(t.TempDir(), "genome.fa")
	if err := os.WriteFile(path, []byte(fasta.String()), 0o644); err != nil {
		t.Fatalf("write fasta: %v", err)
	}
	if err := os.WriteFile(path+".fai", []byte(fai.String()), 0o644); err != nil {
		t.Fatalf("write fai: %v", err)
	}
	return path
}

func openFixture(t *testing.T) *faimm.IndexedFasta {
	t.Helper()
	fa, err := faimm.Open(writeFixture(t))
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	t.Cleanup(func() { fa.Close() })
	return fa
}

func TestPrintNames(t *testing.T) {
	fa := openFixture(t)

	var out strings.Builder
	printNames(fa, &out)
	if got, want := out.String(), "chrA\t40\nchrB\t20\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestWriteFasta(t *testing.T) {
	fa := openFixture(t)

	v, err := fa.ViewRegion("chrA:1-25")
	if err != nil {
		t.Fatalf("view: %v", err)
	}

	var out strings.Builder
	if err := writeFasta(&out, v, 10); err != nil {
		t.Fatalf("write fasta: %v", err)
	}
	want := ">chrA:1-25\n" +
		"ACGTACGTAC\n" +
		"GTACGTACGT\n" +
		"ACGTA\n"
	if out.String() != want {
		t.Fatalf("got %q want %q", out.String(), want)
	}
}

func TestGCReport(t *testing.T) {
	fa := openFixture(t)

	var out strings.Builder
	if err := gcReport(fa, []string{"chrA:1-8", "chrB"}, &out); err != nil {
		t.Fatalf("gc report: %v", err)
	}

	want := "region\tlength\tA\tC\tG\tT\tN\tother\tgc\n" +
		"chrA:1-8\t8\t2\t2\t2\t2\t0\t0\t0.5000\n" +
		"chrB\t20\t0\t0\t0\t0\t20\t0\t0.0000\n"
	if out.String() != want {
		t.Fatalf("got %q want %q", out.String(), want)
	}

	// unknown regions surface the lookup error
	if err := gcReport(fa, []string{"chrZ"}, &out); err == nil {
		t.Fatalf("expected error for unknown sequence")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	cfg := "fasta: /data/genome.fa\nregions:\n  - chr1:1-100\n  - chr2\n"
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	got, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if got.Fasta != "/data/genome.fa" {
		t.Fatalf("fasta = %q", got.Fasta)
	}
	if len(got.Regions) != 2 || got.Regions[0] != "chr1:1-100" || got.Regions[1] != "chr2" {
		t.Fatalf("regions = %v", got.Regions)
	}

	// a config without a fasta path is rejected
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("regions: [chr1]\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadConfig(bad); err == nil {
		t.Fatalf("expected error for config without fasta path")
	}
}

func TestAllRegions(t *testing.T) {
	fa := openFixture(t)
	regions := allRegions(fa)
	if len(regions) != 2 || regions[0] != "chrA" || regions[1] != "chrB" {
		t.Fatalf("regions = %v", regions)
	}
}
