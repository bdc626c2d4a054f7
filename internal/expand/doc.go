// Package expand duplicates an annotated declaration under alias names.
//
// Supported declarations and the name that is rewritten:
//   - functions: the function name
//   - struct and interface types: the type name
//   - methods: the leading identifier of the receiver type
//   - constants: the constant name
//
// Clones are deep copies made with dst.Clone, so comments, type parameters,
// bodies and tags travel with every duplicate. A deprecated alias gets an extra
// "Deprecated:" doc paragraph.
package expand
