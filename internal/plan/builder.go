package plan

import (
	"errors"
	"fmt"

	"debateformat-migrate/internal/diagnostic"
	"debateformat-migrate/internal/match"
	"debateformat-migrate/internal/source"
)

// Builder turns a decoded schema 1.x document into a Plan.
// A Builder owns its period registry and is good for one document.
type Builder struct {
	doc       *source.Document
	registry  *Registry
	resources map[string]*Resource
	diags     diagnostic.Diagnostics
}

// NewBuilder creates a Builder for the given document.
func NewBuilder(doc *source.Document) *Builder {
	return &Builder{
		doc:       doc,
		registry:  NewRegistry(),
		resources: make(map[string]*Resource),
	}
}

// Build runs the full build pipeline and returns the resolved Plan.
// The first unresolved reference aborts the build.
func (b *Builder) Build() (*Plan, error) {
	if b.doc == nil {
		return nil, errors.New("document is required")
	}

	plan := &Plan{
		Name:     b.doc.Name,
		Info:     convertInfo(b.doc.Info),
		Registry: b.registry,
	}

	for i := range b.doc.Resources {
		res, err := b.newResource(&b.doc.Resources[i])
		if err != nil {
			return nil, err
		}

		if _, dup := b.resources[res.Ref]; dup {
			b.diags.AddWarning(diagnostic.CodeDuplicateResource,
				"resource declared more than once, the last declaration wins", resourceLocation(res.Ref), res.Ref)
		}

		b.resources[res.Ref] = res
	}

	prep, err := b.newPrepTime()
	if err != nil {
		return nil, err
	}

	plan.PrepTime = prep

	for i := range b.doc.SpeechTypes {
		st, err := b.newSpeechType(&b.doc.SpeechTypes[i])
		if err != nil {
			return nil, err
		}

		plan.SpeechTypes = append(plan.SpeechTypes, st)
	}

	if b.doc.Speeches != nil {
		for _, s := range b.doc.Speeches.Speeches {
			plan.Speeches = append(plan.Speeches, Speech{Name: s.Name, Type: s.Type})
		}
	}

	plan.Diagnostics = b.diags

	return plan, nil
}

func (b *Builder) newResource(src *source.Resource) (*Resource, error) {
	location := resourceLocation(src.Ref)
	res := &Resource{Ref: src.Ref}

	periods, err := b.newPeriods(src.Periods, location)
	if err != nil {
		return nil, err
	}

	res.Periods = periods
	res.Bells = newBells(src.Bells)

	return res, nil
}

// newPrepTime builds the prep time. A simple <preptime> takes precedence over
// a controlled one when both are present. Schema 1.x prep times cannot
// include resources, so a controlled prep time resolves against its own
// periods straight away.
func (b *Builder) newPrepTime() (*PrepTime, error) {
	switch {
	case b.doc.PrepTime != nil:
		return &PrepTime{Length: b.doc.PrepTime.Length}, nil

	case b.doc.PrepTimeControlled != nil:
		const location = "controlled prep time"

		ct, err := b.newControlledTime(b.doc.PrepTimeControlled, location)
		if err != nil {
			return nil, err
		}

		if err := resolveControlledTime(ct, location); err != nil {
			return nil, err
		}

		return &PrepTime{Length: ct.Length, Controlled: ct}, nil

	default:
		return nil, nil
	}
}

func (b *Builder) newSpeechType(src *source.SpeechType) (*SpeechType, error) {
	location := speechTypeLocation(src.Ref)

	ct, err := b.newControlledTime(&src.ControlledTime, location)
	if err != nil {
		return nil, err
	}

	st := &SpeechType{
		Ref:            src.Ref,
		ControlledTime: *ct,
		ResourceRefs:   src.IncludeRefs(),
	}

	if err := mergeResources(st, b.resources); err != nil {
		return nil, err
	}

	if err := resolveControlledTime(&st.ControlledTime, location); err != nil {
		return nil, err
	}

	return st, nil
}

func (b *Builder) newControlledTime(src *source.ControlledTime, location string) (*ControlledTime, error) {
	periods, err := b.newPeriods(src.Periods, location)
	if err != nil {
		return nil, err
	}

	ct := &ControlledTime{
		Length:  src.Length,
		Periods: periods,
		Bells:   newBells(src.Bells),
	}

	if !source.IsSymbolicNone(src.FirstPeriod) {
		ct.FirstPeriodRef = *src.FirstPeriod
	}

	return ct, nil
}

func (b *Builder) newPeriods(srcs []source.Period, location string) ([]*Period, error) {
	periods := make([]*Period, 0, len(srcs))

	for i := range srcs {
		p, err := b.newPeriod(&srcs[i], location)
		if err != nil {
			return nil, err
		}

		periods = append(periods, p)
	}

	return periods, nil
}

func (b *Builder) newPeriod(src *source.Period, location string) (*Period, error) {
	pois, err := src.POIsAllowedValue()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", location, err)
	}

	desc := ""
	if src.Description != nil {
		desc = *src.Description
	}

	p := &Period{
		OriginalRef:     src.Ref,
		Description:     src.Description,
		BackgroundColor: src.BackgroundColor,
		POIsAllowedRaw:  src.POIsAllowed,
		POIsAllowed:     pois,
		Preset: match.Classify(match.Signature{
			Description:     desc,
			BackgroundColor: src.BackgroundColor,
			POIsAllowed:     pois,
		}),
		Origin: location,
	}

	if err := b.registry.Add(p, &b.diags); err != nil {
		return nil, err
	}

	return p, nil
}

func newBells(srcs []source.Bell) []*Bell {
	bells := make([]*Bell, 0, len(srcs))

	for _, src := range srcs {
		bell := &Bell{
			Time:        src.Time,
			Number:      src.Number,
			PauseOnBell: src.PauseOnBell,
		}

		if !source.IsSymbolicNone(src.NextPeriod) {
			bell.NextPeriodRef = *src.NextPeriod
		}

		bells = append(bells, bell)
	}

	return bells
}

func convertInfo(src *source.Info) *Info {
	if src == nil {
		return nil
	}

	return &Info{
		Regions:     src.Regions,
		Levels:      src.Levels,
		UsedAt:      src.UsedAt,
		Description: src.Description,
	}
}

func resourceLocation(ref string) string {
	return fmt.Sprintf("resource '%s'", ref)
}

func speechTypeLocation(ref string) string {
	return fmt.Sprintf("speech type '%s'", ref)
}
