package plan

import (
	"fmt"
	"strconv"

	"debateformat-migrate/internal/diagnostic"
	"debateformat-migrate/internal/match"
)

// Registry tracks every period created during one build and guarantees that
// converted refs are unique across the whole output document.
type Registry struct {
	periods  []*Period
	assigned map[string]*Period
	reserved map[string]struct{}
}

// NewRegistry creates an empty registry with the built-in refs reserved.
func NewRegistry() *Registry {
	reserved := make(map[string]struct{})
	for _, ref := range match.BuiltInRefs() {
		reserved[ref] = struct{}{}
	}

	return &Registry{
		assigned: make(map[string]*Period),
		reserved: reserved,
	}
}

// Add assigns the converted ref of a classified period and records it.
//
// A period matching a built-in preset takes the preset's ref. Any other
// period keeps its local ref unless that is taken by an earlier period or a
// built-in, in which case an integer suffix is appended, counting up from 1.
func (r *Registry) Add(p *Period, diags *diagnostic.Diagnostics) error {
	if p.IsBuiltIn() {
		p.ConvertedRef = p.Preset.Ref()
		r.periods = append(r.periods, p)

		if diags != nil {
			diags.AddInfo(diagnostic.CodePeriodMatchesPreset,
				fmt.Sprintf("matches built-in period type %q", p.ConvertedRef), p.Origin, p.OriginalRef)
		}

		return nil
	}

	if p.OriginalRef == "" {
		return fmt.Errorf("%w: custom period in %s has no ref", ErrInvalidPeriod, p.Origin)
	}

	converted := p.OriginalRef
	for suffix := 1; r.taken(converted); suffix++ {
		converted = p.OriginalRef + strconv.Itoa(suffix)
	}

	p.ConvertedRef = converted
	r.assigned[converted] = p
	r.periods = append(r.periods, p)

	if converted != p.OriginalRef && diags != nil {
		diags.AddInfo(diagnostic.CodePeriodRenamed,
			fmt.Sprintf("renamed to %q to keep period types unique", converted), p.Origin, p.OriginalRef)
	}

	return nil
}

func (r *Registry) taken(ref string) bool {
	if _, ok := r.reserved[ref]; ok {
		return true
	}

	_, ok := r.assigned[ref]

	return ok
}

// Periods returns every registered period in creation order.
func (r *Registry) Periods() []*Period {
	return r.periods
}

// Custom returns the periods that do not match a built-in preset, in creation
// order.
func (r *Registry) Custom() []*Period {
	var custom []*Period

	for _, p := range r.periods {
		if !p.IsBuiltIn() {
			custom = append(custom, p)
		}
	}

	return custom
}

// Lookup returns the custom period with the given converted ref.
func (r *Registry) Lookup(convertedRef string) (*Period, bool) {
	p, ok := r.assigned[convertedRef]

	return p, ok
}

// Len returns the number of registered periods.
func (r *Registry) Len() int {
	return len(r.periods)
}
