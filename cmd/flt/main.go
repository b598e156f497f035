// Command flt reports whether two flight identifiers name the same flight.
//
// Usage:
//
//	flt [flags] <A> <B>
//	flt [flags] --demo
//	flt [flags] --csv <FILE|->
//	flt -v | --version
//
// Examples:
//
//	$ flt AFL1 AFL0001
//	Codes: AFL1 and AFL0001 - equal
//
//	$ flt --explain "ABC 225" "ABC 123"
//	Codes: ABC 225 and ABC 123 - not equal (mismatch: ABC225 != ABC123)
//
// Flags:
//
//	--demo              Compare the built-in demonstration pairs
//	--csv FILE          Compare pairs from a CSV file with columns a,b ("-" for stdin)
//	--format FORMAT     Output format: text, json or csv
//	--explain           Append the deciding reason and canonical keys to text output
//	--config PATH       Config file (default ~/.config/flt/config.yaml)
//	--log-level LEVEL   trace, debug, info, warn or error
//	--log-format FORMAT console or json
//	-v, --version       Show version information
//
// Flags must come before the identifiers.
//
// Exit status is 0 when a single pair is equal, 3 when it is not, 1 on usage
// errors and 2 when input or configuration cannot be read.
//
// Environment:
//
//	FLT_LOG_LEVEL, FLT_LOG_FORMAT, FLT_FORMAT  Override the config file; also read from ./.env
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/cv/flt/flights"
	"github.com/cv/flt/internal/batch"
	"github.com/cv/flt/internal/config"
	"github.com/cv/flt/internal/logger"
	"github.com/cv/flt/internal/report"
)

// Version information set by goreleaser ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	exitEqual    = 0
	exitUsage    = 1
	exitError    = 2
	exitNotEqual = 3
)

const usage = "usage: flt [flags] <A> <B> | --demo | --csv <FILE|->\n"

// demoPairs covers the interesting corners of the comparison rules.
var demoPairs = []batch.Pair{
	{A: "AB 123", B: "ab 123"},
	{A: "ABC 225", B: "ABC 123"},
	{A: "AFL1", B: "AFL0001"},
	{A: "ABC", B: "ABC0007"},
	{A: "007", B: "00007"},
	{A: "D2 25", B: "D225"},
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("flt", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}

	var showVersion bool
	fs.BoolVar(&showVersion, "v", false, "Show version information")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	demo := fs.Bool("demo", false, "Compare the built-in demonstration pairs")
	csvPath := fs.String("csv", "", "CSV file of pairs with columns a,b (\"-\" for stdin)")
	format := fs.String("format", "", "Output format: text, json or csv")
	explain := fs.Bool("explain", false, "Append reason and canonical keys to text output")
	configPath := fs.String("config", "", "Config file path")
	logLevel := fs.String("log-level", "", "Log level: trace, debug, info, warn or error")
	logFormat := fs.String("log-format", "", "Log format: console or json")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitEqual
		}
		return exitUsage
	}

	if showVersion {
		fmt.Printf("flt %s (commit: %s, built: %s)\n", version, commit, date)
		return exitEqual
	}

	settings, err := loadSettings(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "flt: %v\n", err)
		return exitError
	}
	settings = settings.Override(*logLevel, *logFormat, *format)
	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "flt: %v\n", err)
		return exitUsage
	}

	log := logger.New(logger.Options{Level: settings.LogLevel, Format: settings.LogFormat})
	opt := report.Options{Format: settings.OutputFormat, Explain: *explain}

	if (*demo || *csvPath != "") && fs.NArg() != 0 {
		fmt.Fprint(os.Stderr, usage)
		return exitUsage
	}

	switch {
	case *demo:
		return runBatch(&log, demoPairs, opt)
	case *csvPath != "":
		pairs, err := batch.ReadFile(*csvPath)
		if err != nil {
			log.Error().Err(err).Str("path", *csvPath).Msg("reading pairs")
			return exitError
		}
		return runBatch(&log, pairs, opt)
	}

	if fs.NArg() != 2 {
		fmt.Fprint(os.Stderr, usage)
		return exitUsage
	}

	result := flights.Explain(fs.Arg(0), fs.Arg(1))
	logResult(&log, &result)
	if err := report.Show(os.Stdout, result, opt); err != nil {
		log.Error().Err(err).Msg("writing result")
		return exitError
	}
	if !result.Equal {
		return exitNotEqual
	}
	return exitEqual
}

// loadSettings reads settings from the default locations, or from path
// when one is given. An explicit path must exist.
func loadSettings(path string) (config.Settings, error) {
	loader, err := config.NewLoader()
	if err != nil {
		loader = &config.Loader{DotEnvPath: ".env", Getenv: os.Getenv}
	}
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return config.Settings{}, fmt.Errorf("reading config: %w", err)
		}
		loader.ConfigPath = path
	}
	return loader.Load()
}

func runBatch(log *logger.Logger, pairs []batch.Pair, opt report.Options) int {
	results := batch.CompareAll(pairs)
	for i := range results {
		logResult(log, &results[i])
	}

	if err := report.ShowAll(os.Stdout, results, opt); err != nil {
		log.Error().Err(err).Msg("writing results")
		return exitError
	}

	summary := batch.Summarize(results)
	log.Info().Int("pairs", summary.Total).Int("equal", summary.Equal).Msg("batch compared")
	return exitEqual
}

func logResult(log *logger.Logger, r *flights.Result) {
	log.Debug().
		Str("a", r.A).
		Str("b", r.B).
		Str("reason", string(r.Reason)).
		Str("key_a", r.KeyA).
		Str("key_b", r.KeyB).
		Bool("equal", r.Equal).
		Msg("compared")
}
