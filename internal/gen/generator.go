package gen

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"golang.org/x/tools/imports"

	"aliasgen/internal/config"
	"aliasgen/internal/diagnostic"
	"aliasgen/internal/directive"
	"aliasgen/internal/expand"
	"aliasgen/internal/lint"
	"aliasgen/internal/logger"
	"aliasgen/internal/source"
)

// GeneratedHeader starts every companion file.
const GeneratedHeader = "// Code generated by aliasgen. DO NOT EDIT."

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Directive is the directive name without the "@".
	Directive string
	// Mode is config.ModeCompanion or config.ModeInPlace.
	Mode string
	// Suffix forms companion file names.
	Suffix string
	// Lint selects the warnings reported alongside expansion.
	Lint lint.Options
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return ConfigFrom(config.Default())
}

// ConfigFrom builds a generator configuration from loaded settings.
func ConfigFrom(cfg *config.Config) GeneratorConfig {
	return GeneratorConfig{
		Directive: cfg.Directive,
		Mode:      cfg.Output.Mode,
		Suffix:    cfg.Output.Suffix,
		Lint: lint.Options{
			SemverSince:      cfg.Lint.SemverSince,
			DuplicateAliases: cfg.Lint.DuplicateAliases,
		},
	}
}

// Generator expands annotated declarations and renders output files.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(cfg GeneratorConfig) *Generator {
	return &Generator{config: cfg}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the path the file is written to.
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Expansion is one expanded declaration.
type Expansion struct {
	Site    source.Site
	Aliases directive.AliasList
	Result  expand.Result
}

// FileResult is the outcome of expanding every site of one file.
type FileResult struct {
	File        *source.File
	Expansions  []Expansion
	Diagnostics diagnostic.Diagnostics
}

// ExpandFile expands every annotated declaration of file. Sites that fail are
// reported in the diagnostics and contribute no expansion.
func (g *Generator) ExpandFile(ctx context.Context, file *source.File) FileResult {
	res := FileResult{File: file}
	ctx = logger.WithKV(ctx, "file", file.Path)

	sites, diags := file.Sites(g.config.Directive)
	res.Diagnostics.Merge(diags)

	for _, site := range sites {
		aliases, err := site.Directive.Parse()
		if err != nil {
			res.Diagnostics.AddError(err)
			continue
		}

		for _, w := range lint.Check(aliases, g.config.Lint) {
			res.Diagnostics.Add(w)
		}

		out, err := expand.Expand(expand.Request{
			Decl:      site.Decl,
			Aliases:   aliases,
			Directive: site.Directive,
			Locator:   file,
		})
		if err != nil {
			res.Diagnostics.AddError(err)
			continue
		}

		logger.DebugKV(ctx, "expanded declaration",
			"kind", out.Kind.Describe(),
			"name", out.Name,
			"aliases", aliases.Names(),
		)

		res.Expansions = append(res.Expansions, Expansion{
			Site:    site,
			Aliases: aliases,
			Result:  out,
		})
	}

	return res
}

// Generate expands files and renders one output file per source file that has
// expansions. Files with error diagnostics are skipped; the diagnostics of all
// files are returned. The error is reserved for rendering failures and
// cancellation.
func (g *Generator) Generate(ctx context.Context, files []*source.File) ([]GeneratedFile, diagnostic.Diagnostics, error) {
	var (
		out   []GeneratedFile
		diags diagnostic.Diagnostics
	)

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, diags, err
		}

		res := g.ExpandFile(ctx, file)
		diags.Merge(res.Diagnostics)

		if res.Diagnostics.HasErrors() {
			logger.Warnf(ctx, "skipping %s: %d error(s)", file.Path, len(res.Diagnostics.Errors))
			continue
		}

		if len(res.Expansions) == 0 {
			continue
		}

		gf, err := g.Render(res)
		if err != nil {
			return nil, diags, fmt.Errorf("generating %s: %w", file.Path, err)
		}

		out = append(out, gf)
	}

	return out, diags, nil
}

// Render renders the expansions of one file in the configured mode.
func (g *Generator) Render(res FileResult) (GeneratedFile, error) {
	switch g.config.Mode {
	case config.ModeInPlace:
		return g.renderInPlace(res)
	default:
		return g.renderCompanion(res)
	}
}

// CompanionPath returns the companion file path for a source file.
func CompanionPath(path, suffix string) string {
	return strings.TrimSuffix(path, ".go") + suffix
}

// renderCompanion renders the clones of a file into a generated file that
// carries the source's build constraints and the imports the clones use.
func (g *Generator) renderCompanion(res FileResult) (GeneratedFile, error) {
	file := res.File
	filename := CompanionPath(file.Path, g.config.Suffix)

	out := &dst.File{Name: dst.NewIdent(file.PackageName())}

	for _, imp := range file.Imports() {
		if clone, ok := dst.Clone(imp).(dst.Decl); ok {
			out.Decls = append(out.Decls, clone)
		}
	}

	for _, exp := range res.Expansions {
		out.Decls = append(out.Decls, exp.Result.Clones()...)
	}

	var buf bytes.Buffer

	buf.WriteString(header(file))

	if err := decorator.Fprint(&buf, out); err != nil {
		return GeneratedFile{}, fmt.Errorf("printing %s: %w", filename, err)
	}

	formatted, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		_ = writeDebugUnformatted(filename, buf.Bytes())

		return GeneratedFile{Filename: filename, Content: buf.Bytes()}, fmt.Errorf("formatting code: %w", err)
	}

	return GeneratedFile{Filename: filename, Content: formatted}, nil
}

// renderInPlace renders the source file with each annotated declaration
// replaced by its original and clones.
func (g *Generator) renderInPlace(res FileResult) (GeneratedFile, error) {
	file := res.File

	byIndex := make(map[int]expand.Result, len(res.Expansions))
	for _, exp := range res.Expansions {
		byIndex[exp.Site.Index] = exp.Result
	}

	decls := make([]dst.Decl, 0, len(file.Syntax.Decls))
	for i, decl := range file.Syntax.Decls {
		if r, ok := byIndex[i]; ok {
			decls = append(decls, r.Decls...)
			continue
		}

		decls = append(decls, decl)
	}

	out := *file.Syntax
	out.Decls = decls

	var buf bytes.Buffer
	if err := decorator.Fprint(&buf, &out); err != nil {
		return GeneratedFile{}, fmt.Errorf("printing %s: %w", file.Path, err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		_ = writeDebugUnformatted(file.Path, buf.Bytes())

		return GeneratedFile{Filename: file.Path, Content: buf.Bytes()}, fmt.Errorf("formatting code: %w", err)
	}

	return GeneratedFile{Filename: file.Path, Content: formatted}, nil
}

// header returns the generated-code header followed by the build constraints
// of the source file.
func header(file *source.File) string {
	var b strings.Builder

	b.WriteString(GeneratedHeader)
	b.WriteString("\n\n")

	var constraints []string
	for _, line := range file.Syntax.Decs.Start {
		if strings.HasPrefix(line, "//go:build ") || strings.HasPrefix(line, "// +build ") {
			constraints = append(constraints, line)
		}
	}

	if len(constraints) > 0 {
		b.WriteString(strings.Join(constraints, "\n"))
		b.WriteString("\n\n")
	}

	return b.String()
}
