package labels

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"debateformat-migrate/internal/diagnostic"
	"debateformat-migrate/internal/plan"
)

// ErrMissingLabels is returned by RequireAll when a custom period type has no
// label.
var ErrMissingLabels = errors.New("missing period label")

// File is a label map.
type File struct {
	Version string            `yaml:"version"`
	Labels  map[string]string `yaml:"labels"`
}

// LoadFile loads and parses a YAML label map from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read label file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse label YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	if f.Labels == nil {
		f.Labels = map[string]string{}
	}
}

// Apply sets the label of every custom period type found in the map. Custom
// periods left without a label are reported as warnings, and so are labels
// that match no custom period type. A nil File applies nothing.
func Apply(reg *plan.Registry, f *File, diags *diagnostic.Diagnostics) {
	for _, p := range reg.Custom() {
		if f != nil {
			if label := f.Labels[p.ConvertedRef]; label != "" {
				p.Label = label

				continue
			}
		}

		diags.AddWarning(diagnostic.CodePeriodNeedsLabel,
			"no human-readable name supplied", p.Origin, p.ConvertedRef)
	}

	if f == nil {
		return
	}

	var unused []string

	for ref, label := range f.Labels {
		if label == "" {
			continue
		}

		if _, ok := reg.Lookup(ref); !ok {
			unused = append(unused, ref)
		}
	}

	sort.Strings(unused)

	for _, ref := range unused {
		diags.AddWarning(diagnostic.CodeUnusedLabel,
			"label does not match any custom period type", "", ref)
	}
}

// RequireAll records an error diagnostic for every custom period type without
// a label and returns them combined, or nil when all of them have one.
func RequireAll(reg *plan.Registry, diags *diagnostic.Diagnostics) error {
	var merr *multierror.Error

	for _, p := range reg.Custom() {
		if p.Label != "" {
			continue
		}

		err := fmt.Errorf("%w for period type %q (%s)", ErrMissingLabels, p.ConvertedRef, p.Origin)
		merr = multierror.Append(merr, err)

		if diags != nil {
			diags.AddError(diagnostic.CodeMissingLabel, "period type has no label", p.Origin, p.ConvertedRef)
		}
	}

	return merr.ErrorOrNil()
}
