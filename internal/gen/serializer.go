package gen

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"

	"debateformat-migrate/internal/plan"
)

// ErrNotResolved is returned when a plan reaches serialization with a
// symbolic period ref that was never resolved. It indicates a bug in the
// build pipeline, not bad input.
var ErrNotResolved = errors.New("period reference used before resolution")

const indent = "  "

// Serialize renders the plan as an indented schema 2.0 document, starting
// with an XML declaration.
func Serialize(p *plan.Plan) ([]byte, error) {
	if p == nil {
		return nil, errors.New("plan is required")
	}

	doc, err := buildDocument(p)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", indent)

	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding debate format: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding debate format: %w", err)
	}

	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

func buildDocument(p *plan.Plan) (*debateFormat, error) {
	doc := &debateFormat{
		SchemaVersion: SchemaVersion,
		Name:          p.Name,
		Info:          buildInfo(p.Info),
	}

	if custom := p.PeriodTypes(); len(custom) > 0 {
		doc.PeriodTypes = &periodTypesElement{}
		for _, period := range custom {
			doc.PeriodTypes.PeriodTypes = append(doc.PeriodTypes.PeriodTypes, buildPeriodType(period))
		}
	}

	if p.PrepTime != nil {
		if p.PrepTime.IsControlled() {
			el, err := buildControlled("", p.PrepTime.Controlled)
			if err != nil {
				return nil, fmt.Errorf("controlled prep time: %w", err)
			}

			doc.PrepTimeControlled = el
		} else {
			doc.PrepTime = &prepTimeElement{Length: p.PrepTime.Length}
		}
	}

	for _, st := range p.SpeechTypes {
		el, err := buildControlled(st.Ref, &st.ControlledTime)
		if err != nil {
			return nil, fmt.Errorf("speech type %q: %w", st.Ref, err)
		}

		doc.SpeechTypes.SpeechTypes = append(doc.SpeechTypes.SpeechTypes, *el)
	}

	for _, s := range p.Speeches {
		doc.Speeches.Speeches = append(doc.Speeches.Speeches, speechElement{Type: s.Type, Name: s.Name})
	}

	return doc, nil
}

func buildInfo(info *plan.Info) *infoElement {
	if info == nil {
		return nil
	}

	el := &infoElement{
		Regions: nonEmpty(info.Regions),
		Levels:  nonEmpty(info.Levels),
		UsedAt:  nonEmpty(info.UsedAt),
	}

	if info.Description != nil && *info.Description != "" {
		el.Description = info.Description
	}

	return el
}

func buildPeriodType(p *plan.Period) periodTypeElement {
	el := periodTypeElement{
		Ref:            p.ConvertedRef,
		POIsAllowed:    p.POIsAllowedRaw,
		Display:        p.Description,
		DefaultBgColor: p.BackgroundColor,
	}

	if p.Label != "" {
		label := p.Label
		el.Name = &label
	}

	return el
}

func buildControlled(ref string, ct *plan.ControlledTime) (*controlledElement, error) {
	el := &controlledElement{
		Ref:    ref,
		Length: ct.Length,
	}

	if ct.FirstPeriodRef != "" {
		if ct.FirstPeriod == nil {
			return nil, fmt.Errorf("%w: first period %q", ErrNotResolved, ct.FirstPeriodRef)
		}

		el.FirstPeriod = ct.FirstPeriod.ConvertedRef
	}

	for _, bell := range ct.Bells {
		bel, err := buildBell(bell)
		if err != nil {
			return nil, err
		}

		el.Bells = append(el.Bells, bel)
	}

	return el, nil
}

func buildBell(b *plan.Bell) (bellElement, error) {
	el := bellElement{
		Time:        b.Time,
		Number:      b.Number,
		PauseOnBell: b.PauseOnBell,
	}

	if b.NextPeriodRef != "" {
		if b.NextPeriod == nil {
			return el, fmt.Errorf("%w: next period %q of bell", ErrNotResolved, b.NextPeriodRef)
		}

		el.NextPeriod = b.NextPeriod.ConvertedRef
	}

	return el, nil
}

// nonEmpty drops blank entries; an empty element carries nothing to convert.
func nonEmpty(values []string) []string {
	var out []string

	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}

	return out
}
