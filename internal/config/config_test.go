package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte("{}"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, "alias", cfg.Directive)
	require.Equal(t, ModeCompanion, cfg.Output.Mode)
	require.Equal(t, "_alias.go", cfg.Output.Suffix)
	require.True(t, cfg.Lint.SemverSince)
	require.True(t, cfg.Lint.DuplicateAliases)
}

func TestParse_Overrides(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(`
directive: rename
output:
  mode: inplace
lint:
  semver_since: false
log_level: debug
`))
	require.NoError(t, err)
	require.Equal(t, "rename", cfg.Directive)
	require.Equal(t, ModeInPlace, cfg.Output.Mode)
	require.Equal(t, DefaultSuffix, cfg.Output.Suffix)
	require.False(t, cfg.Lint.SemverSince)
	require.True(t, cfg.Lint.DuplicateAliases)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestParse_EmptyValuesFallBack(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte("directive: \"\"\noutput:\n  suffix: \"\"\n"))
	require.NoError(t, err)
	require.Equal(t, DefaultDirective, cfg.Directive)
	require.Equal(t, DefaultSuffix, cfg.Output.Suffix)
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	cases := map[string]error{
		"output: {mode: overwrite}":        errInvalidMode,
		"output: {suffix: .go}":            errInvalidSuffix,
		"output: {suffix: _alias.txt}":     errInvalidSuffix,
		"output: {suffix: _alias_test.go}": errInvalidSuffix,
		"directive: \"my-alias\"":          errInvalidDirective,
	}

	for data, want := range cases {
		_, err := Parse([]byte(data))
		require.ErrorIs(t, err, want, data)
	}

	_, err := Parse([]byte("directive: [oops"))
	require.ErrorContains(t, err, "unmarshal settings")
}

func TestLoadAndSave(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")

	cfg := Default()
	cfg.Output.Mode = ModeInPlace
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	require.ErrorIs(t, Save(path, nil), errConfigIsNotSet)
}
