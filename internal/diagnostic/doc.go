// Package diagnostic provides positioned, coded diagnostics for the alias
// generator.
//
// Key capabilities:
//   - Malformed directive argument reports anchored at the offending token
//   - Unsupported declaration reports anchored at the whole declaration
//   - Malformed receiver type reports for aliased methods
//   - Non-fatal lint warnings collected alongside errors
package diagnostic
