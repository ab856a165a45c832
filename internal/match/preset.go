package match

import "strings"

//go:generate go tool stringer -type=Preset -linecomment -output=preset_string.go

// Preset is one of the period types built into schema 2.0. Its string form is
// the reserved period-type ref.
type Preset int

const (
	PresetNone        Preset = iota // none
	PresetNormal                    // normal
	PresetPOIsAllowed               // pois-allowed
	PresetWarning                   // warning
	PresetOvertime                  // overtime
)

// Background colours that identify the coloured presets. A colour ending in
// blackSuffix, or the stay sentinel, counts as the normal preset.
const (
	ColorPOIsAllowed = "#7700ff00"
	ColorWarning     = "#77ffcc00"
	ColorOvertime    = "#77ff0000"

	blackSuffix = "000000"
	colorStay   = "#stay"
)

var builtIns = []Preset{PresetNormal, PresetPOIsAllowed, PresetWarning, PresetOvertime}

// Signature is the structural identity of a period used for preset detection.
// Names play no part in it.
type Signature struct {
	Description     string
	BackgroundColor *string
	POIsAllowed     bool
}

// Classify returns the preset whose signature matches, or PresetNone.
// Rules are checked in order and the first match wins.
func Classify(sig Signature) Preset {
	if sig.Description != "" {
		return PresetNone
	}

	color := ""
	if sig.BackgroundColor != nil {
		color = *sig.BackgroundColor
	}

	switch {
	case isBlackOrInherited(sig.BackgroundColor) && !sig.POIsAllowed:
		return PresetNormal
	case color == ColorPOIsAllowed && sig.POIsAllowed:
		return PresetPOIsAllowed
	case color == ColorWarning && !sig.POIsAllowed:
		return PresetWarning
	case color == ColorOvertime && !sig.POIsAllowed:
		return PresetOvertime
	default:
		return PresetNone
	}
}

// an absent colour and the stay sentinel are both treated as black
func isBlackOrInherited(color *string) bool {
	if color == nil {
		return true
	}

	return strings.HasSuffix(*color, blackSuffix) || *color == colorStay
}

// IsBuiltIn reports whether p names a built-in period type.
func (p Preset) IsBuiltIn() bool {
	return p > PresetNone && p <= PresetOvertime
}

// Ref returns the reserved period-type ref, or "" for PresetNone.
func (p Preset) Ref() string {
	if !p.IsBuiltIn() {
		return ""
	}

	return p.String()
}

// BuiltInRefs returns the reserved refs of all built-in period types.
func BuiltInRefs() []string {
	refs := make([]string, 0, len(builtIns))
	for _, p := range builtIns {
		refs = append(refs, p.Ref())
	}

	return refs
}

// PresetByRef returns the built-in preset with the given ref.
func PresetByRef(ref string) (Preset, bool) {
	for _, p := range builtIns {
		if p.Ref() == ref {
			return p, true
		}
	}

	return PresetNone, false
}
