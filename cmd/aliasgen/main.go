// Package main provides the CLI entrypoint for aliasgen.
//
// aliasgen reads "@alias(...)" directives from the doc comments of Go
// declarations and emits renamed duplicates of each declaration, optionally
// marked deprecated.
package main

import "aliasgen/cmd/aliasgen/cmd"

func main() {
	cmd.Execute()
}
