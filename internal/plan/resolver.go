package plan

import "fmt"

// FindPeriod returns the first period in the merged set whose local ref is
// ref. An empty ref resolves to nil without error.
func (ct *ControlledTime) FindPeriod(ref string) (*Period, error) {
	if ref == "" {
		return nil, nil
	}

	for _, p := range ct.Periods {
		if p.OriginalRef == ref {
			return p, nil
		}
	}

	return nil, fmt.Errorf("%w: no period %q", ErrUnresolvedPeriod, ref)
}

// resolveControlledTime sets the first period and the next period of every
// bell. It must run after resources are merged.
func resolveControlledTime(ct *ControlledTime, location string) error {
	first, err := ct.FindPeriod(ct.FirstPeriodRef)
	if err != nil {
		return fmt.Errorf("%s first period: %w", location, err)
	}

	ct.FirstPeriod = first

	for _, bell := range ct.Bells {
		next, err := ct.FindPeriod(bell.NextPeriodRef)
		if err != nil {
			return fmt.Errorf("%s bell at %s: %w", location, bellTime(bell), err)
		}

		bell.NextPeriod = next
	}

	return nil
}

func bellTime(b *Bell) string {
	if b.Time == nil {
		return "<no time>"
	}

	return *b.Time
}
