package convert

import (
	"context"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"

	"debateformat-migrate/internal/diagnostic"
	"debateformat-migrate/internal/gen"
	"debateformat-migrate/internal/labels"
	"debateformat-migrate/internal/log"
	"debateformat-migrate/internal/plan"
	"debateformat-migrate/internal/source"
)

// Options controls a conversion.
type Options struct {
	// Labels is applied to the custom period types (may be nil).
	Labels *labels.File
	// RequireLabels fails the conversion when a custom period type has no label.
	RequireLabels bool
	// Verify re-reads the produced document before it is returned.
	Verify bool
	// Dump receives a debug dump of the resolved plan (may be nil).
	Dump io.Writer
}

// Result is the outcome of a successful conversion.
type Result struct {
	Plan   *plan.Plan
	Output []byte
	Report *labels.Report
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Convert reads a schema 1.x document from r and returns the 2.0 document.
func Convert(ctx context.Context, r io.Reader, opts Options) (*Result, error) {
	doc, err := source.Parse(r)
	if err != nil {
		return nil, err
	}

	return convertDocument(ctx, doc, opts)
}

// ConvertFile converts the document at inPath and writes the result to
// outPath. Nothing is written if the conversion fails.
func ConvertFile(ctx context.Context, inPath, outPath string, opts Options) (*Result, error) {
	doc, err := source.LoadFile(inPath)
	if err != nil {
		return nil, err
	}

	res, err := convertDocument(ctx, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", inPath, err)
	}

	if err := gen.WriteFile(outPath, res.Output); err != nil {
		return nil, err
	}

	log.FromContext(ctx).Info().
		Str("input", inPath).
		Str("output", outPath).
		Int("period_types", len(res.Plan.PeriodTypes())).
		Msg("converted debate format")

	return res, nil
}

func convertDocument(ctx context.Context, doc *source.Document, opts Options) (*Result, error) {
	logger := log.WithComponent(*log.FromContext(ctx), "convert")

	p, err := plan.NewBuilder(doc).Build()
	if err != nil {
		return nil, err
	}

	labels.Apply(p.Registry, opts.Labels, &p.Diagnostics)

	var labelErr error
	if opts.RequireLabels {
		labelErr = labels.RequireAll(p.Registry, &p.Diagnostics)
	}

	logDiagnostics(logger, p.Diagnostics)

	if opts.Dump != nil {
		dumpConfig.Fdump(opts.Dump, p)
	}

	if p.Diagnostics.HasErrors() {
		if labelErr != nil {
			return nil, labelErr
		}

		return nil, fmt.Errorf("conversion failed: %s", p.Diagnostics.Errors[0])
	}

	out, err := gen.Serialize(p)
	if err != nil {
		return nil, err
	}

	if opts.Verify {
		if err := gen.Verify(out); err != nil {
			return nil, err
		}
	}

	logger.Debug().
		Int("periods", p.Registry.Len()).
		Int("period_types", len(p.PeriodTypes())).
		Int("speech_types", len(p.SpeechTypes)).
		Int("speeches", len(p.Speeches)).
		Msg("conversion complete")

	return &Result{
		Plan:   p,
		Output: out,
		Report: labels.BuildReport(p.Registry),
	}, nil
}

func logDiagnostics(logger zerolog.Logger, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		var ev *zerolog.Event

		switch d.Severity {
		case diagnostic.DiagnosticError:
			ev = logger.Error()
		case diagnostic.DiagnosticWarning:
			ev = logger.Warn()
		default:
			ev = logger.Debug()
		}

		ev.Str("code", d.Code).
			Str("ref", d.Ref).
			Str("location", d.Location).
			Msg(d.Message)
	}
}
