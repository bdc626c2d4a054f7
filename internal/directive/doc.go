// Package directive finds alias directives in doc comments and parses their
// arguments.
//
// A directive looks like
//
//	// @alias(Short, deprecated(Old, since = "1.2.0", note = "use Short"))
//
// and may continue over several comment lines until its parentheses balance.
// Each entry is either a bare identifier or a deprecated(...) group carrying
// optional since and note string literals. Entry order is preserved.
package directive
