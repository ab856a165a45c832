// Package convert runs the schema 1.x to 2.0 migration pipeline.
//
// A conversion parses the source document, builds and resolves the plan,
// applies period labels, serializes the 2.0 document and optionally verifies
// it. The output file is written only when every step succeeds.
package convert
