package source

import "encoding/xml"

// Schema 1.x vocabulary constants.
const (
	RootElement = "debateformat"

	// AllResourceRef names the resource included in every speech type.
	AllResourceRef = "#all"
	// StayRef is the "no change" value of firstperiod and nextperiod.
	StayRef = "#stay"
)

// SupportedVersions lists the schema versions accepted by Parse.
var SupportedVersions = []string{"1.0", "1.1"}

// Document is the root <debateformat> element.
type Document struct {
	XMLName       xml.Name
	Name          *string `xml:"name,attr"`
	SchemaVersion *string `xml:"schemaversion,attr"`

	Info               *Info           `xml:"info"`
	Resources          []Resource      `xml:"resource"`
	PrepTime           *PrepTime       `xml:"preptime"`
	PrepTimeControlled *ControlledTime `xml:"preptime-controlled"`
	SpeechTypes        []SpeechType    `xml:"speechtype"`
	Speeches           *Speeches       `xml:"speeches"`
}

// Info is the descriptive <info> block.
type Info struct {
	Regions     []string `xml:"region"`
	Levels      []string `xml:"level"`
	UsedAt      []string `xml:"usedat"`
	Description *string  `xml:"desc"`
}

// Period is a locally scoped <period> definition.
type Period struct {
	Ref             string  `xml:"ref,attr"`
	Description     *string `xml:"desc,attr"`
	BackgroundColor *string `xml:"bgcolor,attr"`
	POIsAllowed     *string `xml:"poisallowed,attr"`
}

// Bell is a <bell> element. NextPeriod is symbolic until resolved.
type Bell struct {
	Time        *string `xml:"time,attr"`
	Number      *string `xml:"number,attr"`
	PauseOnBell *string `xml:"pauseonbell,attr"`
	NextPeriod  *string `xml:"nextperiod,attr"`
}

// ControlledTime holds the attributes and children shared by speech types and
// <preptime-controlled>.
type ControlledTime struct {
	Length      *string  `xml:"length,attr"`
	FirstPeriod *string  `xml:"firstperiod,attr"`
	Periods     []Period `xml:"period"`
	Bells       []Bell   `xml:"bell"`
}

// Resource is a named bundle of periods and bells.
type Resource struct {
	Ref     string   `xml:"ref,attr"`
	Periods []Period `xml:"period"`
	Bells   []Bell   `xml:"bell"`
}

// SpeechType is a <speechtype> element.
type SpeechType struct {
	Ref string `xml:"ref,attr"`
	ControlledTime
	Includes []Include `xml:"include"`
}

// Include is an <include resource="..."/> reference.
type Include struct {
	Resource string `xml:"resource,attr"`
}

// PrepTime is the simple <preptime> element.
type PrepTime struct {
	Length *string `xml:"length,attr"`
}

// Speeches is the <speeches> list.
type Speeches struct {
	Speeches []Speech `xml:"speech"`
}

// Speech is a scheduled speech referencing a speech type.
type Speech struct {
	Name *string `xml:"name,attr"`
	Type *string `xml:"type,attr"`
}

// IncludeRefs returns the referenced resource names in declaration order.
func (s *SpeechType) IncludeRefs() []string {
	refs := make([]string, 0, len(s.Includes))
	for _, inc := range s.Includes {
		refs = append(refs, inc.Resource)
	}

	return refs
}

// POIsAllowedValue interprets the poisallowed attribute. Absent means false.
func (p *Period) POIsAllowedValue() (bool, error) {
	if p.POIsAllowed == nil {
		return false, nil
	}

	switch *p.POIsAllowed {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, invalidValuef("period %q: invalid poisallowed value %q", p.Ref, *p.POIsAllowed)
	}
}

// IsSymbolicNone reports whether a firstperiod/nextperiod value means
// "no period".
func IsSymbolicNone(ref *string) bool {
	return ref == nil || *ref == "" || *ref == StayRef
}
