package aliasgen

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aliasgen/internal/config"
)

func writeSource(t *testing.T, dir, name, src string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	return path
}

func TestRun_WritesCompanion(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "consts.go", "package consts\n\n// @alias(B)\nconst A = 1\n")

	var stderr bytes.Buffer

	err := Run(t.Context(), &Options{Patterns: []string{path}, Stderr: &stderr})
	require.NoError(t, err)
	assert.Empty(t, stderr.String())

	b, err := os.ReadFile(filepath.Join(dir, "consts_alias.go"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "const B = 1")

	orig, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(orig), "@alias(B)")
}

func TestRun_ErrorWritesNothing(t *testing.T) {
	dir := t.TempDir()
	good := writeSource(t, dir, "good.go", "package p\n\n// @alias(B)\nconst A = 1\n")
	bad := writeSource(t, dir, "bad.go", "package p\n\n// @alias(W)\nvar v = 1\n")

	var stderr bytes.Buffer

	err := Run(t.Context(), &Options{Patterns: []string{good, bad}, Stderr: &stderr})
	require.ErrorIs(t, err, ErrDiagnostics)
	assert.Contains(t, stderr.String(), "[unsupported-declaration]")
	assert.Contains(t, stderr.String(), "bad.go:4:1")

	_, err = os.Stat(filepath.Join(dir, "good_alias.go"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_DryRun(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "f.go", "package f\n\n// @alias(G)\nfunc F() {}\n")

	var stdout bytes.Buffer

	err := Run(t.Context(), &Options{Patterns: []string{path}, DryRun: true, Stdout: &stdout})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "func G()")

	_, err = os.Stat(filepath.Join(dir, "f_alias.go"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_InPlaceFromConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "f.go", "package f\n\n// @dup(G)\nfunc F() {}\n")
	cfgPath := writeSource(t, dir, "settings.yaml", "directive: dup\noutput:\n  mode: inplace\n")

	err := Run(t.Context(), &Options{ConfigPath: cfgPath, Patterns: []string{path}})
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "func F()")
	assert.Contains(t, string(b), "func G()")
	assert.NotContains(t, string(b), "@dup")
}

func TestRun_InvalidOverride(t *testing.T) {
	err := Run(t.Context(), &Options{Mode: "sideways", Patterns: []string{"x.go"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output mode")

	err = Run(t.Context(), &Options{LogLevel: "loud", Patterns: []string{"x.go"}})
	require.ErrorIs(t, err, errInvalidLogLevel)
}

func TestCheck_Dump(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "c.go", "package c\n\n// @alias(B, deprecated(C, since = \"soon\"))\nconst A = 1\n")

	var stdout, stderr bytes.Buffer

	err := Check(t.Context(), &Options{Patterns: []string{path}, Dump: true, Stdout: &stdout, Stderr: &stderr})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "constant A")
	assert.Contains(t, stdout.String(), `Name: (string) (len=1) "B"`)
	assert.Contains(t, stderr.String(), "warning:")
	assert.Contains(t, stderr.String(), "[since-not-semver]")

	_, err = os.Stat(filepath.Join(dir, "c_alias.go"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCheck_ReportsErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "c.go", "package c\n\n// @alias()\nconst A = 1\n")

	var stderr bytes.Buffer

	err := Check(t.Context(), &Options{Patterns: []string{path}, Stderr: &stderr})
	require.ErrorIs(t, err, ErrDiagnostics)
	assert.Contains(t, stderr.String(), "[malformed-arguments]")
}

func TestIsFileList(t *testing.T) {
	assert.False(t, isFileList(nil))
	assert.True(t, isFileList([]string{"a.go", "b/c.go"}))
	assert.False(t, isFileList([]string{"a.go", "./..."}))
}

func TestInit_WritesSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	err := Init(t.Context(), &Options{ConfigPath: path, Mode: config.ModeInPlace, Directive: "dup"})
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dup", cfg.Directive)
	assert.Equal(t, config.ModeInPlace, cfg.Output.Mode)
	assert.Equal(t, config.DefaultSuffix, cfg.Output.Suffix)

	err = Init(t.Context(), &Options{ConfigPath: path})
	require.ErrorIs(t, err, ErrConfigExists)

	require.NoError(t, Init(t.Context(), &Options{ConfigPath: path, Force: true}))

	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultDirective, cfg.Directive)
}

func TestInit_RejectsInvalidOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	err := Init(t.Context(), &Options{ConfigPath: path, Suffix: "x.txt"})
	require.Error(t, err)

	_, err = os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
