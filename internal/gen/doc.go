// Package gen serializes a resolved plan as a schema 2.0 debate format.
//
// Output element order is fixed: name, info, period-types, prep-time or
// prep-time-controlled, speech-types, speeches. Values absent from the source
// document are omitted rather than written as empty placeholders, and the
// schema 1.x vocabulary is renamed on the way out:
//
//	usedat        -> used-at
//	desc          -> description (info) / display (period type)
//	poisallowed   -> pois-allowed
//	pauseonbell   -> pause-on-bell
//	nextperiod    -> next-period
//	firstperiod   -> first-period
//	preptime      -> prep-time
//	speechtype    -> speech-type (wrapped in speech-types)
//
// Custom periods are collected into a single period-types block; periods that
// match a built-in preset are referenced by the preset ref instead.
package gen
