package plan

import (
	"debateformat-migrate/internal/diagnostic"
	"debateformat-migrate/internal/match"
)

// Plan is the fully resolved model of a converted debate format.
// It is read-only once Build returns.
type Plan struct {
	// Name is the top-level display name (if any).
	Name *string
	// Info is the descriptive block (if any).
	Info *Info
	// PrepTime is the preparation time specification (if any).
	PrepTime *PrepTime
	// SpeechTypes in document order.
	SpeechTypes []*SpeechType
	// Speeches in document order.
	Speeches []Speech
	// Registry holds every period created during the build.
	Registry *Registry
	// Diagnostics contains all warnings and notes from the build.
	Diagnostics diagnostic.Diagnostics
}

// PeriodTypes returns the periods to emit as custom period types, in creation
// order. Built-in matches are excluded.
func (p *Plan) PeriodTypes() []*Period {
	return p.Registry.Custom()
}

// Info is the descriptive block of a format.
type Info struct {
	Regions     []string
	Levels      []string
	UsedAt      []string
	Description *string
}

// Period is a period definition with its globally converted ref.
type Period struct {
	// OriginalRef is the local ref from the source document.
	OriginalRef string
	// Description becomes the display text of a custom period type.
	Description *string
	// BackgroundColor is kept verbatim, including the "#stay" sentinel.
	BackgroundColor *string
	// POIsAllowedRaw is the source attribute value, emitted verbatim.
	POIsAllowedRaw *string
	// POIsAllowed is the interpreted POIsAllowedRaw.
	POIsAllowed bool
	// Preset is the matched built-in preset, or match.PresetNone.
	Preset match.Preset
	// ConvertedRef is unique across the whole converted document.
	ConvertedRef string
	// Label is the human-readable name, supplied from a label map.
	Label string
	// Origin describes where the period was declared.
	Origin string
}

// IsBuiltIn reports whether the period folds into a built-in preset.
func (p *Period) IsBuiltIn() bool {
	return p.Preset.IsBuiltIn()
}

// Bell is a timed event within a controlled-time entity.
type Bell struct {
	Time        *string
	Number      *string
	PauseOnBell *string
	// NextPeriodRef is the symbolic ref; empty means no change of period.
	NextPeriodRef string
	// NextPeriod is set by resolution when NextPeriodRef is not empty.
	NextPeriod *Period
}

// ControlledTime is the shared shape of speech types and controlled prep time.
type ControlledTime struct {
	Length *string
	// FirstPeriodRef is the symbolic ref; empty means none.
	FirstPeriodRef string
	// FirstPeriod is set by resolution when FirstPeriodRef is not empty.
	FirstPeriod *Period
	// Periods holds own periods followed by merged resource periods.
	Periods []*Period
	// Bells holds own bells followed by merged resource bells.
	Bells []*Bell
}

// SpeechType is a named controlled-time entity.
type SpeechType struct {
	Ref string
	ControlledTime
	// ResourceRefs are the explicitly included resources, in declaration order.
	ResourceRefs []string
}

// Resource is a named, reusable bundle of periods and bells.
type Resource struct {
	Ref     string
	Periods []*Period
	Bells   []*Bell
}

// PrepTime is either simple (Controlled is nil) or controlled.
type PrepTime struct {
	Length     *string
	Controlled *ControlledTime
}

// IsControlled reports whether this is a controlled prep time.
func (p *PrepTime) IsControlled() bool {
	return p.Controlled != nil
}

// Speech is a scheduled speech.
type Speech struct {
	Name *string
	Type *string
}
