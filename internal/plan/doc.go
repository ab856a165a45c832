// Package plan builds the converted model of a debate format: the object graph
// that the schema 2.0 serializer reads.
//
// Build pipeline:
//  1. Create every period in document order (resources, controlled prep time,
//     speech types) and register it, which classifies it against the
//     built-in presets and assigns a globally unique converted ref
//  2. Merge the "#all" resource and every included resource into each speech
//     type, in declaration order
//  3. Resolve the symbolic first-period and next-period refs of every
//     controlled-time entity against its merged period set
//  4. Emit diagnostics (preset matches, renames, duplicate resources)
//
// Steps 2 and 3 run strictly after all entities exist, because a referenced
// period may come from an included resource.
package plan
