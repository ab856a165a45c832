package plan

import "errors"

var (
	// ErrUnknownResource is returned when a speech type includes a resource
	// that is not declared.
	ErrUnknownResource = errors.New("unknown resource")
	// ErrUnresolvedPeriod is returned when a first-period or next-period ref
	// names no period in the entity's merged period set.
	ErrUnresolvedPeriod = errors.New("unresolved period reference")
	// ErrInvalidPeriod is returned for a custom period that has no ref.
	ErrInvalidPeriod = errors.New("invalid period")
)
