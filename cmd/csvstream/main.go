// Command csvstream validates, re-encodes, and repairs CSV streams.
//
// It reads from a file or stdin, optionally drops or injects a header,
// optionally justifies record lengths, and writes RFC 4180 output with the
// configured line-terminator convention. Files ending in .gz are
// transparently decompressed on input and compressed on output.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"

	"github.com/shapestone/stream-csv/pkg/csv"
)

func main() {
	var (
		inFile      = flag.String("in", "", "Input file (default stdin; .gz decompressed)")
		outFile     = flag.String("out", "", "Output file (default stdout; .gz compressed)")
		validate    = flag.Bool("validate", false, "Validate input and exit")
		useLF       = flag.Bool("lf", false, "Use \\n line terminators instead of \\r\\n")
		trailing    = flag.Bool("trailing", false, "Emit a terminator after the last record")
		forceQuote  = flag.Bool("force-quote", false, "Quote every field")
		justify     = flag.Int("justify", -1, "Expected field count (0 = derive from first record, negative = off)")
		mode        = flag.String("mode", "error", "Length mismatch handling: error, skip-empty, or repair")
		filler      = flag.String("filler", "", "Pad value for -mode repair")
		dropHeader  = flag.Bool("drop-header", false, "Remove the first record")
		addHeader   = flag.String("add-header", "", "Prepend a header record (CSV encoded, e.g. \"name,age\")")
		interactive = flag.Bool("i", false, "Interactive mode with TUI preview")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		csv.SetLogger(logger)
	}

	if *interactive {
		if *inFile == "" {
			fmt.Fprintln(os.Stderr, "Usage: csvstream -i -in <file.csv>")
			os.Exit(1)
		}
		if err := runInteractive(*inFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg := config{
		inFile:     *inFile,
		outFile:    *outFile,
		validate:   *validate,
		justify:    *justify,
		modeName:   *mode,
		filler:     *filler,
		dropHeader: *dropHeader,
		addHeader:  *addHeader,
	}
	cfg.opts = csv.StringifyOptions{
		Terminator:         csv.TerminatorCRLF,
		TrailingTerminator: *trailing,
		ForceQuote:         *forceQuote,
	}
	if *useLF {
		cfg.opts.Terminator = csv.TerminatorLF
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type config struct {
	inFile     string
	outFile    string
	validate   bool
	justify    int
	modeName   string
	filler     string
	dropHeader bool
	addHeader  string
	opts       csv.StringifyOptions
}

func run(cfg config) error {
	if err := cfg.opts.Validate(); err != nil {
		return err
	}

	in, closeIn, err := openInput(cfg.inFile)
	if err != nil {
		return err
	}
	defer closeIn()

	scanner := csv.NewScanner(in)

	if cfg.validate {
		n := 0
		for scanner.Scan() {
			n++
		}
		if err := scanner.Err(); err != nil {
			return err
		}
		fmt.Printf("valid CSV: %d records\n", n)
		return nil
	}

	out, closeOut, err := openOutput(cfg.outFile)
	if err != nil {
		return err
	}

	w := csv.NewWriter(out, cfg.opts)
	if err := pipeline(cfg, scanner, w); err != nil {
		closeOut()
		return err
	}
	if err := w.Flush(); err != nil {
		closeOut()
		return err
	}
	return closeOut()
}

// pipeline wires the record stream: drop header, justify, inject header,
// stringify.
func pipeline(cfg config, scanner *csv.Scanner, w *csv.Writer) error {
	records := scanner.Iter()
	if cfg.dropHeader {
		records = csv.DropHeader(records)
	}

	var justifier *csv.Justifier
	if cfg.justify >= 0 {
		mode, err := parseMode(cfg.modeName)
		if err != nil {
			return err
		}
		justifier = csv.NewJustifier(csv.JustifyOptions{
			ExpectedLength: cfg.justify,
			Mode:           mode,
			Filler:         cfg.filler,
		})
	}

	var header csv.Record
	if cfg.addHeader != "" {
		recs, err := csv.Parse(cfg.addHeader)
		if err != nil {
			return fmt.Errorf("invalid -add-header value: %w", err)
		}
		if len(recs) != 1 {
			return fmt.Errorf("invalid -add-header value: want exactly one record, got %d", len(recs))
		}
		header = recs[0]
		if justifier != nil {
			justifier.JustifyHeader(header)
		}
		if err := w.Write(header); err != nil {
			return err
		}
	}

	for rec := range records {
		if justifier != nil {
			out, keep, err := justifier.Justify(rec)
			if err != nil {
				return err
			}
			if !keep {
				continue
			}
			rec = out
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func parseMode(name string) (csv.MismatchMode, error) {
	switch name {
	case "error":
		return csv.MismatchError, nil
	case "skip-empty":
		return csv.MismatchSkipEmpty, nil
	case "repair":
		return csv.MismatchRepair, nil
	default:
		return 0, fmt.Errorf("unknown -mode %q (want error, skip-empty, or repair)", name)
	}
}

// openInput opens the input source, layering gzip decompression for .gz
// files.
func openInput(path string) (io.Reader, func() error, error) {
	if path == "" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, f.Close, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return gz, func() error {
		if err := gz.Close(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, nil
}

// openOutput opens the output sink, layering gzip compression for .gz
// files.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, f.Close, nil
	}
	gz := gzip.NewWriter(f)
	return gz, func() error {
		if err := gz.Close(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, nil
}
