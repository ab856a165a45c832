package gen

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"debateformat-migrate/internal/match"
)

// ErrVerification is returned when a produced document breaks a schema 2.0
// structural rule.
var ErrVerification = errors.New("converted document failed verification")

// Verify decodes a schema 2.0 document and checks the structural rules a
// reader depends on:
//   - the root element and schema version
//   - period-type refs are unique and never shadow a built-in ref
//   - every first-period and next-period names a declared or built-in
//     period type
//   - speech-type refs are unique and every speech names one of them
func Verify(data []byte) error {
	var doc debateFormat

	if err := xml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return fmt.Errorf("%w: %v", ErrVerification, err)
	}

	var merr *multierror.Error

	fail := func(format string, args ...any) {
		merr = multierror.Append(merr, fmt.Errorf(format, args...))
	}

	// The decoder has already rejected any root other than <debate-format>.
	if doc.SchemaVersion != SchemaVersion {
		fail("schema version is %q", doc.SchemaVersion)
	}

	periods := make(map[string]struct{})
	for _, ref := range match.BuiltInRefs() {
		periods[ref] = struct{}{}
	}

	if doc.PeriodTypes != nil {
		for _, pt := range doc.PeriodTypes.PeriodTypes {
			if _, builtIn := match.PresetByRef(pt.Ref); builtIn {
				fail("period type %q redefines a built-in period type", pt.Ref)
				continue
			}

			if _, dup := periods[pt.Ref]; dup {
				fail("period type %q is defined more than once", pt.Ref)
				continue
			}

			periods[pt.Ref] = struct{}{}
		}
	}

	checkControlled := func(location string, el *controlledElement) {
		if el.FirstPeriod != "" {
			if _, ok := periods[el.FirstPeriod]; !ok {
				fail("%s: first period %q is not a period type", location, el.FirstPeriod)
			}
		}

		for _, bell := range el.Bells {
			if bell.NextPeriod == "" {
				continue
			}

			if _, ok := periods[bell.NextPeriod]; !ok {
				fail("%s: bell next period %q is not a period type", location, bell.NextPeriod)
			}
		}
	}

	if doc.PrepTimeControlled != nil {
		checkControlled("prep-time-controlled", doc.PrepTimeControlled)
	}

	speechTypes := make(map[string]struct{})

	for i := range doc.SpeechTypes.SpeechTypes {
		st := &doc.SpeechTypes.SpeechTypes[i]
		location := fmt.Sprintf("speech-type %q", st.Ref)

		if _, dup := speechTypes[st.Ref]; dup {
			fail("%s is defined more than once", location)
		}

		speechTypes[st.Ref] = struct{}{}
		checkControlled(location, st)
	}

	for _, s := range doc.Speeches.Speeches {
		if s.Type == nil {
			continue
		}

		if _, ok := speechTypes[*s.Type]; !ok {
			fail("speech type %q is not defined", *s.Type)
		}
	}

	if err := merr.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", ErrVerification, err)
	}

	return nil
}
