package aliasgen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"aliasgen/internal/config"
	"aliasgen/internal/diagnostic"
	"aliasgen/internal/gen"
	"aliasgen/internal/logger"
	"aliasgen/internal/source"
)

// Options contains inputs for the gen and check workflows.
type Options struct {
	// ConfigPath is an optional path to the settings file (defaults to .aliasgen.yaml).
	ConfigPath string
	// Patterns are package patterns or .go file paths. Empty means the current package.
	Patterns []string
	// Directive overrides the configured directive name when set.
	Directive string
	// Mode overrides the configured output mode when set.
	Mode string
	// Suffix overrides the configured companion suffix when set.
	Suffix string
	// LogLevel overrides the configured log level when set.
	LogLevel string
	// DryRun prints generated files instead of writing them.
	DryRun bool
	// Dump prints the parsed alias lists during check.
	Dump bool
	// Force lets init overwrite an existing settings file.
	Force bool
	// Stdout receives generated files in dry-run mode and dumps. Defaults to os.Stdout.
	Stdout io.Writer
	// Stderr receives diagnostics. Defaults to os.Stderr.
	Stderr io.Writer
}

var (
	// ErrDiagnostics is returned when any file reported an error diagnostic.
	ErrDiagnostics = errors.New("alias expansion failed")
	// ErrConfigExists is returned by Init when the settings file exists and Force is not set.
	ErrConfigExists = errors.New("settings file already exists")
	// errInvalidLogLevel is returned for an unknown log level.
	errInvalidLogLevel = errors.New("invalid log level")
)

// Run expands every annotated declaration matched by opts.Patterns and writes
// the output files. Nothing is written when any file reports an error.
func Run(ctx context.Context, opts *Options) error {
	opts = withDefaults(opts)

	cfg, files, err := prepare(ctx, opts)
	if err != nil {
		return err
	}

	g := gen.NewGenerator(gen.ConfigFrom(cfg))

	out, diags, err := g.Generate(ctx, files)
	report(opts.Stderr, diags)

	if err != nil {
		return err
	}

	if diags.HasErrors() {
		return fmt.Errorf("%w: %d error(s)", ErrDiagnostics, len(diags.Errors))
	}

	if opts.DryRun {
		for _, f := range out {
			fmt.Fprintf(opts.Stdout, "// %s\n%s\n", f.Filename, f.Content)
		}

		return nil
	}

	if err = gen.WriteFiles(out); err != nil {
		return err
	}

	for _, f := range out {
		logger.Infof(ctx, "wrote %s", f.Filename)
	}

	return nil
}

// Check validates every directive matched by opts.Patterns without writing
// anything.
func Check(ctx context.Context, opts *Options) error {
	opts = withDefaults(opts)

	cfg, files, err := prepare(ctx, opts)
	if err != nil {
		return err
	}

	g := gen.NewGenerator(gen.ConfigFrom(cfg))

	var (
		diags diagnostic.Diagnostics
		sites int
	)

	for _, file := range files {
		if err = ctx.Err(); err != nil {
			return err
		}

		res := g.ExpandFile(ctx, file)
		diags.Merge(res.Diagnostics)
		sites += len(res.Expansions)

		if !opts.Dump {
			continue
		}

		for _, exp := range res.Expansions {
			fmt.Fprintf(opts.Stdout, "%s %s %s\n", file.Span(exp.Site.Decl).Start, exp.Result.Kind.Describe(), exp.Result.Name)
			spew.Fdump(opts.Stdout, exp.Aliases)
		}
	}

	report(opts.Stderr, diags)

	if diags.HasErrors() {
		return fmt.Errorf("%w: %d error(s)", ErrDiagnostics, len(diags.Errors))
	}

	logger.Infof(ctx, "checked %d file(s), %d annotated declaration(s)", len(files), sites)

	return nil
}

// Init writes a settings file holding the defaults with the command line
// overrides applied.
func Init(ctx context.Context, opts *Options) error {
	opts = withDefaults(opts)

	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultConfigFilename
	}

	if _, err := os.Stat(path); err == nil && !opts.Force {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	cfg := config.Default()
	applyOverrides(cfg, opts)

	if err := config.Save(path, cfg); err != nil {
		return err
	}

	logger.Infof(ctx, "wrote %s", path)

	return nil
}

// withDefaults returns a copy of opts with writers filled in.
func withDefaults(opts *Options) *Options {
	o := Options{}
	if opts != nil {
		o = *opts
	}

	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}

	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}

	return &o
}

// prepare loads settings, applies overrides and parses the requested files.
func prepare(ctx context.Context, opts *Options) (*config.Config, []*source.File, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, nil, err
	}

	level, ok := logger.ParseLogLevel(cfg.LogLevel)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", errInvalidLogLevel, cfg.LogLevel)
	}

	logger.SetLevel(level)
	logger.DebugKV(ctx, "settings loaded",
		"directive", cfg.Directive,
		"mode", cfg.Output.Mode,
		"suffix", cfg.Output.Suffix,
	)

	loader := source.NewLoader()

	var files []*source.File
	if isFileList(opts.Patterns) {
		files, err = loader.LoadFiles(opts.Patterns...)
	} else {
		files, err = loader.Load(opts.Patterns...)
	}

	if err != nil {
		return nil, nil, err
	}

	logger.Debugf(ctx, "loaded %d file(s)", len(files))

	return cfg, files, nil
}

// loadConfig reads the settings file and applies the command line overrides.
func loadConfig(opts *Options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	applyOverrides(cfg, opts)

	if err = config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyOverrides copies the options set on the command line into cfg.
func applyOverrides(cfg *config.Config, opts *Options) {
	if opts.Directive != "" {
		cfg.Directive = opts.Directive
	}

	if opts.Mode != "" {
		cfg.Output.Mode = opts.Mode
	}

	if opts.Suffix != "" {
		cfg.Output.Suffix = opts.Suffix
	}

	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
}

// isFileList reports whether every pattern names a Go file.
func isFileList(patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	for _, p := range patterns {
		if !strings.HasSuffix(p, ".go") {
			return false
		}
	}

	return true
}

// report writes diagnostics, errors first.
func report(w io.Writer, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fmt.Fprintf(w, "%s: %s\n", strings.ToLower(d.Severity.String()), d)
	}
}
