// Package lint reports non-fatal findings about alias directives.
package lint

import (
	"strings"

	"golang.org/x/mod/semver"

	"aliasgen/internal/diagnostic"
	"aliasgen/internal/directive"
)

// Options selects the checks to run.
type Options struct {
	// SemverSince warns when a since value is not a semantic version.
	SemverSince bool
	// DuplicateAliases warns when an alias name repeats within one list.
	DuplicateAliases bool
}

// Check returns warnings for aliases. It never rejects a list.
func Check(aliases directive.AliasList, opts Options) []*diagnostic.Diagnostic {
	var warnings []*diagnostic.Diagnostic

	seen := make(map[string]bool, len(aliases))

	for _, alias := range aliases {
		if opts.DuplicateAliases {
			if seen[alias.Name] {
				warnings = append(warnings, diagnostic.Warningf(diagnostic.CodeDuplicateAlias, alias.Span,
					"alias %s is listed more than once; every occurrence is emitted", alias.Name))
			}

			seen[alias.Name] = true
		}

		if opts.SemverSince && alias.Deprecation != nil && alias.Deprecation.Since != nil {
			since := *alias.Deprecation.Since
			if !IsVersion(since) {
				warnings = append(warnings, diagnostic.Warningf(diagnostic.CodeSinceNotSemver, alias.Span,
					"since %q of alias %s is not a semantic version", since, alias.Name).
					WithSuggestions(`use a version such as "1.2.0" or "v1.2.0"`))
			}
		}
	}

	return warnings
}

// IsVersion reports whether s is a semantic version, with or without the "v" prefix.
func IsVersion(s string) bool {
	if !strings.HasPrefix(s, "v") {
		s = "v" + s
	}

	return semver.IsValid(s)
}
