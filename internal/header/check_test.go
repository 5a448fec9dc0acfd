package header

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cderrors "git.home.luguber.info/inful/cratedoc/internal/errors"
)

const katexHeader = `<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/katex@0.16.11/dist/katex.min.css">
<script defer src="https://cdn.jsdelivr.net/npm/katex@0.16.11/dist/katex.min.js"></script>
<script defer src="https://cdn.jsdelivr.net/npm/katex@0.16.11/dist/contrib/auto-render.min.js"></script>
<script>
    document.addEventListener("DOMContentLoaded", function() {
        renderMathInElement(document.body, {
            delimiters: [
                {left: "$$", right: "$$", display: true},
                {left: "$", right: "$", display: false}
            ]
        });
    });
</script>
`

func writeHeader(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "katex.html")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCheckKatexHeader(t *testing.T) {
	result, err := Check(writeHeader(t, katexHeader))
	require.NoError(t, err)

	assert.Empty(t, result.Warnings)
	assert.True(t, result.Injects())
	assert.Equal(t, 3, result.Elements["script"])
	assert.Equal(t, 1, result.Elements["link"])
}

func TestCheckMissingFile(t *testing.T) {
	_, err := Check(filepath.Join(t.TempDir(), "katex.html"))
	require.Error(t, err)

	var ce *cderrors.CratedocError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, cderrors.CategoryFileSystem, ce.Category)
}

func TestCheckEmptyFile(t *testing.T) {
	result, err := Check(writeHeader(t, "  \n\t\n"))
	require.NoError(t, err)

	assert.False(t, result.Injects())
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "empty")
}

func TestCheckNoInjectingElements(t *testing.T) {
	result, err := Check(writeHeader(t, "<!-- math support --><p>hello</p>"))
	require.NoError(t, err)

	assert.False(t, result.Injects())
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[len(result.Warnings)-1], "inject nothing")
}

func TestCheckUnclosedScript(t *testing.T) {
	result, err := Check(writeHeader(t, `<script>var x = 1;`))
	require.NoError(t, err)

	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "unclosed")
}
