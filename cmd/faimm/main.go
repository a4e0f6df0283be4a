// Command faimm queries indexed fasta files: list the sequences, extract
// regions and report base composition / GC content. The fasta file must
// have a samtools style .fai index next to it.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/veldsla/faimm"
)

const (
	defaultLogLevel    = "info"
	defaultExtractWrap = 60
)

var log = logrus.New()

// setupLogging configures the log level from the LOG_LEVEL environment
// variable (possibly loaded from a .env file).
func setupLogging() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = defaultLogLevel
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("invalid LOG_LEVEL %q, using %s", level, defaultLogLevel)
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
	log.SetOutput(os.Stderr)
}

// runConfig is the optional YAML run configuration for batch composition
// reports: the fasta path plus a list of region strings.
type runConfig struct {
	Fasta   string   `yaml:"fasta"`
	Regions []string `yaml:"regions"`
}

func loadConfig(path string) (*runConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg runConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Fasta == "" {
		return nil, fmt.Errorf("config %s: fasta path missing", path)
	}
	return &cfg, nil
}

func openFasta(path string, noMmap bool) (*faimm.IndexedFasta, error) {
	if path == "" {
		return nil, fmt.Errorf("no fasta file given (use --fasta or a config file)")
	}
	opts := faimm.DefaultOptions()
	opts.DisableMmap = noMmap
	fa, err := faimm.OpenWithOptions(path, opts)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"fasta":     path,
		"sequences": fa.Fai().Len(),
		"mmap":      !noMmap,
	}).Debug("opened indexed fasta")
	return fa, nil
}

// allRegions returns one whole-sequence region per indexed sequence.
func allRegions(fa *faimm.IndexedFasta) []string {
	return fa.Fai().Names()
}

// printNames writes name and length of every indexed sequence as TSV.
func printNames(fa *faimm.IndexedFasta, w io.Writer) {
	for tid, name := range fa.Fai().Names() {
		rec, _ := fa.Fai().Record(tid)
		fmt.Fprintf(w, "%s\t%d\n", name, rec.Length)
	}
}

// writeFasta writes the view as a fasta record, wrapped at width bases.
func writeFasta(w io.Writer, v *faimm.View, width int) error {
	if width <= 0 {
		width = defaultExtractWrap
	}
	seq := v.String()
	if _, err := fmt.Fprintf(w, ">%s:%d-%d\n", v.Name(), v.Start()+1, v.End()); err != nil {
		return err
	}
	for i := 0; i < len(seq); i += width {
		end := i + width
		if end > len(seq) {
			end = len(seq)
		}
		if _, err := fmt.Fprintln(w, seq[i:end]); err != nil {
			return err
		}
	}
	return nil
}

// gcReport writes a TSV composition report for the given regions.
func gcReport(fa *faimm.IndexedFasta, regions []string, w io.Writer) error {
	fmt.Fprintln(w, "region\tlength\tA\tC\tG\tT\tN\tother\tgc")
	for _, region := range regions {
		v, err := fa.ViewRegion(region)
		if err != nil {
			return err
		}
		bc := v.CountBases()
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%.4f\n",
			region, v.Len(), bc.A, bc.C, bc.G, bc.T, bc.N, bc.Other, bc.GC())
	}
	return nil
}

func rootCmd() *cobra.Command {
	var (
		fastaPath string
		noMmap    bool
	)

	root := &cobra.Command{
		Use:           "faimm",
		Short:         "Random access queries on indexed fasta files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&fastaPath, "fasta", "", "indexed fasta file (expects <fasta>.fai)")
	root.PersistentFlags().BoolVar(&noMmap, "no-mmap", false, "read with pread instead of a memory map")

	names := &cobra.Command{
		Use:   "names",
		Short: "List sequence names and lengths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fa, err := openFasta(fastaPath, noMmap)
			if err != nil {
				return err
			}
			defer fa.Close()
			printNames(fa, cmd.OutOrStdout())
			return nil
		},
	}

	var wrap int
	extract := &cobra.Command{
		Use:   "extract region [region ...]",
		Short: "Extract regions as fasta",
		Long: "Extract one or more regions and print them as fasta records.\n" +
			"Regions use one-based inclusive coordinates: chr7:155-732, or a\n" +
			"bare sequence name for the whole sequence.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fa, err := openFasta(fastaPath, noMmap)
			if err != nil {
				return err
			}
			defer fa.Close()
			for _, region := range args {
				v, err := fa.ViewRegion(region)
				if err != nil {
					return err
				}
				if err := writeFasta(cmd.OutOrStdout(), v, wrap); err != nil {
					return err
				}
			}
			return nil
		},
	}
	extract.Flags().IntVar(&wrap, "wrap", defaultExtractWrap, "bases per output line")

	var configPath string
	gc := &cobra.Command{
		Use:   "gc [region ...]",
		Short: "Report base composition and GC content",
		Long: "Report per-region base counts and GC content as TSV. Regions\n" +
			"come from the arguments, from a YAML config file (--config), or\n" +
			"default to every sequence in the index.",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fastaPath
			regions := args
			if configPath != "" {
				cfg, err := loadConfig(configPath)
				if err != nil {
					return err
				}
				path = cfg.Fasta
				if len(regions) == 0 {
					regions = cfg.Regions
				}
			}
			fa, err := openFasta(path, noMmap)
			if err != nil {
				return err
			}
			defer fa.Close()
			if len(regions) == 0 {
				regions = allRegions(fa)
			}
			if err := gcReport(fa, regions, cmd.OutOrStdout()); err != nil {
				return err
			}
			st := fa.Stats()
			log.WithFields(logrus.Fields{
				"views": st.Views,
				"bases": st.BasesRead,
			}).Debug("composition report done")
			return nil
		},
	}
	gc.Flags().StringVar(&configPath, "config", "", "YAML run configuration (fasta path and regions)")

	root.AddCommand(names, extract, gc)
	return root
}

func main() {
	// a .env file may carry LOG_LEVEL; absence is fine
	_ = godotenv.Load()
	setupLogging()

	if err := rootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
