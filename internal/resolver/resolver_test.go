package resolver

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLiteral(t *testing.T) {
	dir := t.TempDir()

	roots, err := Resolve(Spec{Text: dir, Mode: Literal})
	require.NoError(t, err)
	assert.Equal(t, []string{dir}, roots)
}

func TestResolveLiteralNotFound(t *testing.T) {
	spec := Spec{Text: filepath.Join("no", "such", "path"), Mode: Literal}

	roots, err := Resolve(spec)
	assert.Nil(t, roots)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, spec, nf.Spec)
	assert.Equal(t, "LiteralPath not found: 'no/such/path'", filepath.ToSlash(err.Error()))
}

func TestResolveLiteralIgnoresWildcards(t *testing.T) {
	// A literal spec never expands metacharacters: a directory that would
	// match the text as a pattern does not satisfy it.
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "data1"), 0o755))

	_, err := Resolve(Spec{Text: filepath.Join(dir, "data?"), Mode: Literal})
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestResolvePattern(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"run_1", "run_2", "other"} {
		require.NoError(t, os.Mkdir(filepath.Join(dir, name), 0o755))
	}

	roots, err := Resolve(Spec{Text: filepath.Join(dir, "run_*"), Mode: Pattern})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "run_1"),
		filepath.Join(dir, "run_2"),
	}, roots)
}

func TestResolvePatternWithoutMetacharacters(t *testing.T) {
	dir := t.TempDir()

	roots, err := Resolve(Spec{Text: dir, Mode: Pattern})
	require.NoError(t, err)
	assert.Equal(t, []string{dir}, roots)
}

func TestResolvePatternNotFound(t *testing.T) {
	spec := Spec{Text: filepath.Join(t.TempDir(), "nothing*"), Mode: Pattern}

	_, err := Resolve(spec)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Contains(t, err.Error(), "Path not found")
	assert.Contains(t, err.Error(), spec.Text)
}

func TestResolveBadPatternPropagates(t *testing.T) {
	_, err := Resolve(Spec{Text: "[", Mode: Pattern})
	require.Error(t, err)

	var nf *NotFoundError
	assert.False(t, errors.As(err, &nf), "malformed pattern must not normalize to not-found")
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "Path", Pattern.String())
	assert.Equal(t, "LiteralPath", Literal.String())
}
