// Package config loads the aliasgen settings file.
//
// Settings are read from YAML, defaults are applied for absent fields and the
// result is validated. Command-line flags override file values after loading.
package config
