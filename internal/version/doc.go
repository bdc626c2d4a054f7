// Package version exposes build metadata and a cobra version subcommand.
package version
