// Package logger provides a small wrapper around zap to offer:
//   - a global sugared logger writing console output to stderr,
//   - context helpers (ToContext/FromContext/WithKV),
//   - level configuration and parsing utilities,
//   - convenience functions (Debugf, Infof, WarnKV, etc.).
//
// Stdout is left to command output such as diagnostics and dumps.
package logger
