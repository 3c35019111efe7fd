package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/arnodel/jsonwriter"
	"github.com/arnodel/jsonwriter/encoding/csv"
	"github.com/arnodel/jsonwriter/encoding/json"
	"github.com/arnodel/jsonwriter/token"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

type config struct {
	inputFormat string
	csvHeader   string
	maxDepth    int
	stream      bool
	colorizer   *jsonwriter.Colorizer
	flushValues bool
}

func main() {
	// Do not handle SIGPIPE, we'll do it ourselves (see error handling at the bottom of main).
	signal.Ignore(syscall.SIGPIPE)

	// Display a stack trace on panic
	defer func() {
		if e := recover(); e != nil {
			fmt.Fprintf(os.Stderr, "%s: %s", e, debug.Stack())
		}
	}()

	var cfg config
	var colorMode string

	isTerminal := isatty.IsTerminal(os.Stdout.Fd())

	flag.Usage = printUsage
	flag.StringVar(&cfg.inputFormat, "in", "json", "input format: json, csv, csv-with-header, csvh")
	flag.StringVar(&cfg.csvHeader, "csv-header", "", "comma-separated field names for CSV (only with -in csv)")
	flag.IntVar(&cfg.maxDepth, "max-depth", jsonwriter.DefaultMaxDepth, "maximum nesting depth of the output")
	flag.StringVar(&colorMode, "color", "auto", "colorize output: auto, always, never")
	flag.BoolVar(&cfg.stream, "stream", true, "allow several top-level values, one per line")
	flag.Parse()

	if flag.NArg() > 0 {
		fatalError("unexpected argument: %q\n", flag.Arg(0))
	}

	switch colorMode {
	case "always":
		cfg.colorizer = &jsonwriter.DefaultColorizer
	case "never":
		cfg.colorizer = nil
	case "auto":
		if isTerminal {
			cfg.colorizer = &jsonwriter.DefaultColorizer
		}
	default:
		fatalError("invalid -color value: %q (use auto, always, or never)\n", colorMode)
	}

	// Set up stdout for handling colors
	var stdout io.Writer = os.Stdout
	if cfg.colorizer != nil {
		stdout = colorable.NewColorableStdout()
	}

	// If we are writing to a terminal, flush after each value so user gets feedback early.
	cfg.flushValues = isTerminal

	err := run(cfg, os.Stdin, stdout)
	if err != nil {
		if errors.Is(err, syscall.EPIPE) {
			// stdout is a pipe and something closed it (e.g. 'head' or 'less').
			// In this case we don't want to complain.
			return
		}
		fatalError("error: %s\n", err)
	}
}

// run decodes input according to cfg and writes it out as compact JSON.
func run(cfg config, input io.Reader, output io.Writer) error {
	decoder, err := newDecoder(cfg, input)
	if err != nil {
		return err
	}

	var parseErr error
	stream := token.StartStream(decoder, func(err error) {
		parseErr = err
	})

	out := bufio.NewWriter(output)
	sink := jsonwriter.NewWriterSink(out)
	if cfg.flushValues {
		sink.Flusher = out
	}

	opts := []jsonwriter.Option{
		jsonwriter.WithMaxDepth(cfg.maxDepth),
		jsonwriter.WithColorizer(cfg.colorizer),
	}
	if cfg.stream {
		opts = append(opts, jsonwriter.WithValueSeparator("\n"))
	}
	w := jsonwriter.New(sink, opts...)

	writeErr := token.ConsumeStream(stream, json.NewEncoder(w))

	// Terminate the last value even on error, so the output so far is readable.
	if w.Depth() == 0 && w.Documents() > 0 {
		out.WriteByte('\n')
	}
	flushErr := out.Flush()

	switch {
	case parseErr != nil:
		return fmt.Errorf("error while parsing: %w", parseErr)
	case writeErr != nil:
		return writeErr
	default:
		return flushErr
	}
}

func newDecoder(cfg config, input io.Reader) (token.StreamSource, error) {
	switch cfg.inputFormat {
	case "json":
		if cfg.csvHeader != "" {
			return nil, errors.New("-csv-header can only be used with -in csv")
		}
		return json.NewDecoder(input), nil
	case "csv":
		decoder := csv.NewDecoder(input)
		if cfg.csvHeader != "" {
			decoder.SetFieldNames(strings.Split(cfg.csvHeader, ","))
			decoder.RecordsProduceObjects = true
		}
		return decoder, nil
	case "csv-with-header", "csvh":
		if cfg.csvHeader != "" {
			return nil, errors.New("-csv-header cannot be used with -in csv-with-header (header row already in file)")
		}
		decoder := csv.NewDecoder(input)
		decoder.HasHeader = true
		decoder.RecordsProduceObjects = true
		return decoder, nil
	default:
		return nil, fmt.Errorf("invalid input format: %q", cfg.inputFormat)
	}
}

func fatalError(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, msg, args...)
	os.Exit(1)
}

func printUsage() {
	fmt.Fprint(os.Stderr, `jw - JSON rewriter

USAGE:
  jw [options] < input

DESCRIPTION:
  jw reads JSON or CSV on stdin and writes it out as compact JSON, one
  top-level value per line.  Output is produced as input is read, so
  memory use does not depend on the size of the input.

OPTIONS:
  -in FORMAT        Input format (default: json)
                    Formats: json, csv, csv-with-header (or csvh)
  -csv-header NAMES Comma-separated field names for CSV input
                    Only valid with '-in csv'
  -max-depth N      Fail if values are nested deeper than N (default: 256)
  -stream=false     Fail if the input contains more than one value
  -color MODE       Control color output (default: auto)
                    Modes: auto, always, never

CSV CONVERSIONS:
  Empty fields become null, true and false become booleans, fields that
  look like numbers become numbers and everything else is a string.

EXAMPLES:
  # Compact a JSON file
  jw < data.json

  # CSV to JSON Lines
  jw -in csvh < data.csv
`)
}
