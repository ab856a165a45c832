package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/sethvargo/go-envconfig"

	"debateformat-migrate/internal/config"
	"debateformat-migrate/internal/convert"
	"debateformat-migrate/internal/labels"
	"debateformat-migrate/internal/log"
	"debateformat-migrate/internal/source"
)

// Exit codes.
const (
	ExitOK           = 0
	ExitUsage        = 1
	ExitIncompatible = 2
	ExitFailure      = 3
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

type options struct {
	labelsPath    string
	reportPath    string
	requireLabels bool
	verify        bool
	dump          bool
	logLevel      string
	logFormat     string
	input         string
	output        string
}

// parseArgs parses the command line on top of the environment configuration.
// A nil options and nil error mean help was requested.
func parseArgs(args []string, cfg *config.Config, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("debateformat-migrate", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.Usage = func() {
		fmt.Fprint(stderr, `Usage: debateformat-migrate [flags] original_file new_file

Converts a debate format file from schema 1.x to schema 2.0.

Flags:
`)
		fs.PrintDefaults()
	}

	opts := &options{}
	fs.StringVar(&opts.labelsPath, "labels", cfg.LabelsPath, "YAML `file` mapping converted period type refs to names")
	fs.StringVar(&opts.reportPath, "report", cfg.ReportPath, "write the period types needing a name to this YAML `file`")
	fs.BoolVar(&opts.requireLabels, "require-labels", false, "fail if any custom period type has no name")
	fs.BoolVar(&opts.verify, "verify", cfg.Verify, "verify the converted document before writing it")
	fs.BoolVar(&opts.dump, "dump", false, "dump the resolved conversion plan to stderr")
	fs.StringVar(&opts.logLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&opts.logFormat, "log-format", cfg.LogFormat, "log format: console or json")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil
		}

		return nil, &ExitError{Code: ExitUsage}
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return nil, &ExitError{Code: ExitUsage, Message: fmt.Sprintf("expected 2 arguments, got %d", fs.NArg())}
	}

	opts.input = fs.Arg(0)
	opts.output = fs.Arg(1)

	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, lookuper envconfig.Lookuper) error {
	cfg, err := config.LoadWith(ctx, lookuper)
	if err != nil {
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	opts, err := parseArgs(args, cfg, stderr)
	if err != nil || opts == nil {
		return err
	}

	logger, err := log.Configure(log.Config{Level: opts.logLevel, Format: opts.logFormat, Output: stderr})
	if err != nil {
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	ctx = log.NewContext(ctx, logger)

	convOpts := convert.Options{
		RequireLabels: opts.requireLabels,
		Verify:        opts.verify,
	}

	if opts.dump {
		convOpts.Dump = stderr
	}

	if opts.labelsPath != "" {
		f, err := labels.LoadFile(opts.labelsPath)
		if err != nil {
			return &ExitError{Code: ExitFailure, Message: err.Error()}
		}

		convOpts.Labels = f
	}

	res, err := convert.ConvertFile(ctx, opts.input, opts.output, convOpts)
	if err != nil {
		return classify(err)
	}

	if opts.reportPath != "" {
		if err := labels.WriteReport(res.Report, opts.reportPath); err != nil {
			return &ExitError{Code: ExitFailure, Message: err.Error()}
		}
	}

	pending := res.Report.Pending()
	fmt.Fprintf(stdout, "Converted %s to %s (%d custom period types)\n",
		opts.input, opts.output, len(res.Report.Periods))

	for _, e := range pending {
		fmt.Fprintf(stdout, "  needs a name: %s (%s)\n", e.Ref, e.Origin)
	}

	return nil
}

// classify maps a conversion error to its exit code.
func classify(err error) *ExitError {
	code := ExitFailure
	if errors.Is(err, source.ErrIncompatible) {
		code = ExitIncompatible
	}

	return &ExitError{Code: code, Message: "error: " + err.Error()}
}
