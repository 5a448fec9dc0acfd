package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "cargo", cfg.Tool)
	assert.Equal(t, "doc", cfg.Subcommand)
	assert.True(t, cfg.NoDeps)
	assert.Equal(t, filepath.Join("target", "doc"), cfg.DocDir)
	assert.Equal(t, "./katex.html", cfg.Header)
	assert.Equal(t, "RUSTDOCFLAGS", cfg.FlagsVar)
}

func TestLoadAppliesYAMLOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cratedoc.yaml")
	content := `
tool: rustdoc-wrapper
no_deps: false
extra_args: ["--document-private-items"]
header: ./math.html
watch:
  debounce: 500ms
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "rustdoc-wrapper", cfg.Tool)
	assert.False(t, cfg.NoDeps)
	assert.Equal(t, []string{"--document-private-items"}, cfg.ExtraArgs)
	assert.Equal(t, "./math.html", cfg.Header)
	// Untouched keys keep their defaults.
	assert.Equal(t, "doc", cfg.Subcommand)
	assert.Equal(t, 500*time.Millisecond, cfg.DebounceDuration())
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("DOCS_OUT", "build/docs")
	path := filepath.Join(t.TempDir(), "cratedoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("doc_dir: ${DOCS_OUT}\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "build/docs", cfg.DocDir)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvTool, "cross")
	t.Setenv(EnvHeader, "./injected.html")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "cross", cfg.Tool)
	assert.Equal(t, "./injected.html", cfg.Header)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.Tool = "  "
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Watch.Debounce = "soon"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.DocDir = ""
	assert.Error(t, cfg.Validate())
}

func TestToolArgs(t *testing.T) {
	cfg := Default()
	assert.Equal(t, []string{"doc", "--no-deps"}, cfg.ToolArgs())

	cfg.NoDeps = false
	cfg.ExtraArgs = []string{"--document-private-items"}
	assert.Equal(t, []string{"doc", "--document-private-items"}, cfg.ToolArgs())
}

func TestHeaderFlag(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "--html-in-header ./katex.html", cfg.HeaderFlag())
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cratedoc.yaml")

	require.NoError(t, Init(path, false))

	// Second run without force must refuse to clobber.
	require.Error(t, Init(path, false))
	require.NoError(t, Init(path, true))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cargo", cfg.Tool)
}
