// Package labels supplies human-readable names for custom period types.
//
// Schema 1.x periods carried no display name of their own, while schema 2.0
// period types do. Rather than asking for names in the middle of a
// conversion, names are read up front from a YAML label map keyed by the
// converted period-type ref:
//
//	version: "1"
//	labels:
//	  choose: Choosing the motion
//	  choose1: Late choice
//
// After conversion a report lists every custom period type together with its
// label, if any. The report is itself a valid label map: fill in the blanks
// and pass it back on the next run.
package labels
