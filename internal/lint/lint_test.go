package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aliasgen/internal/diagnostic"
	"aliasgen/internal/directive"
)

func TestIsVersion(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"0.1.0", "v1.2.3", "1.2", "v2", "1.0.0-rc.1"} {
		assert.True(t, IsVersion(v), v)
	}

	for _, v := range []string{"", "next", "1.2.3.4", "vv1"} {
		assert.False(t, IsVersion(v), v)
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	aliases, err := directive.Parse(`(A, deprecated(B, since = "soon"), A, deprecated(C, since = "0.1.0"))`, nil)
	require.NoError(t, err)

	all := Check(aliases, Options{SemverSince: true, DuplicateAliases: true})
	require.Len(t, all, 2)

	assert.Equal(t, diagnostic.CodeSinceNotSemver, all[0].Code)
	assert.Equal(t, diagnostic.SeverityWarning, all[0].Severity)
	assert.Contains(t, all[0].Message, `"soon"`)

	assert.Equal(t, diagnostic.CodeDuplicateAlias, all[1].Code)
	assert.Equal(t, 36, all[1].Span.Start.Column)

	assert.Empty(t, Check(aliases, Options{}))
}
