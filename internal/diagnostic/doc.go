// Package diagnostic provides structured warnings, errors, and
// "why this was converted that way" notes for a migration run.
//
// Key capabilities:
//   - Periods folded into built-in presets
//   - Periods renamed to keep global uniqueness
//   - Custom periods that still need a human-readable label
//   - Duplicate or unused inputs
package diagnostic
