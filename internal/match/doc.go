// Package match finds near misses among a fixed set of words, so that
// diagnostics can suggest the intended spelling.
package match
