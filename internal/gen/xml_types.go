package gen

import "encoding/xml"

// Schema 2.0 vocabulary constants.
const (
	RootElement   = "debate-format"
	SchemaVersion = "2.0"
)

type debateFormat struct {
	XMLName       xml.Name `xml:"debate-format"`
	SchemaVersion string   `xml:"schema-version,attr"`

	Name               *string             `xml:"name,omitempty"`
	Info               *infoElement        `xml:"info,omitempty"`
	PeriodTypes        *periodTypesElement `xml:"period-types,omitempty"`
	PrepTime           *prepTimeElement    `xml:"prep-time,omitempty"`
	PrepTimeControlled *controlledElement  `xml:"prep-time-controlled,omitempty"`
	SpeechTypes        speechTypesElement  `xml:"speech-types"`
	Speeches           speechesElement     `xml:"speeches"`
}

type infoElement struct {
	Regions     []string `xml:"region"`
	Levels      []string `xml:"level"`
	UsedAt      []string `xml:"used-at"`
	Description *string  `xml:"description,omitempty"`
}

type periodTypesElement struct {
	PeriodTypes []periodTypeElement `xml:"period-type"`
}

type periodTypeElement struct {
	Ref            string  `xml:"ref,attr"`
	POIsAllowed    *string `xml:"pois-allowed,attr,omitempty"`
	Name           *string `xml:"name,omitempty"`
	Display        *string `xml:"display,omitempty"`
	DefaultBgColor *string `xml:"default-bgcolor,omitempty"`
}

type prepTimeElement struct {
	Length *string `xml:"length,attr,omitempty"`
}

type controlledElement struct {
	Ref         string        `xml:"ref,attr,omitempty"`
	Length      *string       `xml:"length,attr,omitempty"`
	FirstPeriod string        `xml:"first-period,attr,omitempty"`
	Bells       []bellElement `xml:"bell"`
}

type bellElement struct {
	Time        *string `xml:"time,attr,omitempty"`
	Number      *string `xml:"number,attr,omitempty"`
	PauseOnBell *string `xml:"pause-on-bell,attr,omitempty"`
	NextPeriod  string  `xml:"next-period,attr,omitempty"`
}

type speechTypesElement struct {
	SpeechTypes []controlledElement `xml:"speech-type"`
}

type speechesElement struct {
	Speeches []speechElement `xml:"speech"`
}

type speechElement struct {
	Type *string `xml:"type,attr,omitempty"`
	Name *string `xml:"name,omitempty"`
}
