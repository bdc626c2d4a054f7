// Package aliasgen wires configuration, loading, expansion and output into
// the gen and check workflows run by the aliasgen command.
package aliasgen
