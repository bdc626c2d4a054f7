package config

import (
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the settings of an aliasgen run.
type Config struct {
	// Directive is the directive name, used as "@<Directive>(...)".
	Directive string `yaml:"directive"`
	// Output controls where expansions are written.
	Output Output `yaml:"output"`
	// Lint toggles non-fatal checks.
	Lint Lint `yaml:"lint"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Output controls where expansions are written.
type Output struct {
	// Mode is ModeCompanion or ModeInPlace.
	Mode string `yaml:"mode"`
	// Suffix replaces ".go" in the source file name to form the companion file name.
	Suffix string `yaml:"suffix"`
}

// Lint toggles non-fatal checks.
type Lint struct {
	// SemverSince warns about deprecation since values that are not semantic versions.
	SemverSince bool `yaml:"semver_since"`
	// DuplicateAliases warns about aliases repeated within one directive.
	DuplicateAliases bool `yaml:"duplicate_aliases"`
}

const (
	// DefaultConfigFilename is the settings file looked up when no path is given.
	DefaultConfigFilename = ".aliasgen.yaml"

	// DefaultDirective is the default directive name.
	DefaultDirective = "alias"

	// DefaultSuffix is the default companion file suffix.
	DefaultSuffix = "_alias.go"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"

	// ModeCompanion writes clones into a generated file next to the source.
	ModeCompanion = "companion"

	// ModeInPlace rewrites the source file with the clones after each original.
	ModeInPlace = "inplace"
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errInvalidMode is returned for an unknown output mode.
	errInvalidMode = errors.New("invalid output mode")
	// errInvalidSuffix is returned for a companion suffix that would not produce a distinct Go file.
	errInvalidSuffix = errors.New("invalid output suffix")
	// errInvalidDirective is returned for a directive name that is not an identifier.
	errInvalidDirective = errors.New("invalid directive name")
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Directive: DefaultDirective,
		Output: Output{
			Mode:   ModeCompanion,
			Suffix: DefaultSuffix,
		},
		Lint: Lint{
			SemverSince:      true,
			DuplicateAliases: true,
		},
		LogLevel: DefaultLogLevel,
	}
}

// Load reads configuration from path. An empty path reads DefaultConfigFilename
// if it exists and falls back to Default otherwise.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	return Parse(contents)
}

// Parse parses YAML settings on top of Default and validates them.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills in values explicitly left empty.
func applyDefaults(cfg *Config) {
	if cfg.Directive == "" {
		cfg.Directive = DefaultDirective
	}

	if cfg.Output.Mode == "" {
		cfg.Output.Mode = ModeCompanion
	}

	if cfg.Output.Suffix == "" {
		cfg.Output.Suffix = DefaultSuffix
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}

// Validate checks the settings.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if !token.IsIdentifier(cfg.Directive) {
		return fmt.Errorf("%w: %q", errInvalidDirective, cfg.Directive)
	}

	switch cfg.Output.Mode {
	case ModeCompanion, ModeInPlace:
	default:
		return fmt.Errorf("%w: %q (expected %s or %s)", errInvalidMode, cfg.Output.Mode, ModeCompanion, ModeInPlace)
	}

	suffix := cfg.Output.Suffix
	if !strings.HasSuffix(suffix, ".go") || suffix == ".go" || strings.HasSuffix(suffix, "_test.go") ||
		strings.ContainsRune(suffix, filepath.Separator) {
		return fmt.Errorf("%w: %q", errInvalidSuffix, suffix)
	}

	return nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}
