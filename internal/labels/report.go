package labels

import (
	"fmt"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"

	"debateformat-migrate/internal/plan"
)

const reportPerm = 0o644

// Report lists the custom period types of a conversion. Its Labels map can be
// edited and fed back as a label File.
type Report struct {
	Version string            `yaml:"version"`
	Labels  map[string]string `yaml:"labels"`
	Periods []Entry           `yaml:"periods"`
}

// Entry describes one custom period type.
type Entry struct {
	Ref             string `yaml:"ref"`
	OriginalRef     string `yaml:"original_ref"`
	Origin          string `yaml:"origin"`
	Display         string `yaml:"display,omitempty"`
	BackgroundColor string `yaml:"bgcolor,omitempty"`
	POIsAllowed     bool   `yaml:"pois_allowed"`
	Label           string `yaml:"label"`
}

// NeedsLabel reports whether the period type still has no label.
func (e Entry) NeedsLabel() bool {
	return e.Label == ""
}

// BuildReport collects the custom period types of a registry in creation
// order.
func BuildReport(reg *plan.Registry) *Report {
	r := &Report{
		Version: "1",
		Labels:  map[string]string{},
	}

	for _, p := range reg.Custom() {
		e := Entry{
			Ref:         p.ConvertedRef,
			OriginalRef: p.OriginalRef,
			Origin:      p.Origin,
			POIsAllowed: p.POIsAllowed,
			Label:       p.Label,
		}

		if p.Description != nil {
			e.Display = *p.Description
		}

		if p.BackgroundColor != nil {
			e.BackgroundColor = *p.BackgroundColor
		}

		r.Periods = append(r.Periods, e)
		r.Labels[p.ConvertedRef] = p.Label
	}

	return r
}

// Pending returns the entries that still need a label.
func (r *Report) Pending() []Entry {
	var pending []Entry

	for _, e := range r.Periods {
		if e.NeedsLabel() {
			pending = append(pending, e)
		}
	}

	return pending
}

// Marshal serializes a Report to YAML.
func (r *Report) Marshal() ([]byte, error) {
	return yaml.Marshal(r)
}

// WriteReport atomically writes a Report to the given path.
func WriteReport(r *Report, path string) error {
	data, err := r.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal label report: %w", err)
	}

	if err := renameio.WriteFile(path, data, reportPerm); err != nil {
		return fmt.Errorf("failed to write label report %s: %w", path, err)
	}

	return nil
}
