// Package match detects periods that are structurally identical to one of the
// period types built into schema 2.0.
//
// Detection looks only at the description, background colour and whether
// points of information are allowed. The local name of a period is ignored:
// a period called "speaking" with no description, no colour and no POIs is
// the built-in "normal" period.
package match
