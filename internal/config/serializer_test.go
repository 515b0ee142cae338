package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFileRoundTripsUntouchedSettings(t *testing.T) {
	dir := t.TempDir()
	content := "# Base profile\n# curated by hand\n\ndata=mods\n\ncontent=Morrowind.esm\nfallback=iColor,128,64,255\nlua-debug=true\n"
	root := writeConfig(t, dir, content)

	cfg, err := Load(root, testResolver())
	require.NoError(t, err)

	rendered := cfg.RenderFile(root)
	// Byte-identical apart from the trailer.
	assert.Equal(t, content+Trailer+"\n", rendered)
}

func TestRenderFileKeepsTrailingComments(t *testing.T) {
	dir := t.TempDir()
	content := "data=mods\n# notes kept at the bottom\n"
	root := writeConfig(t, dir, content)

	cfg, err := Load(root, testResolver())
	require.NoError(t, err)
	assert.Equal(t, content+Trailer+"\n", cfg.RenderFile(root))
}

func TestRenderFileFiltersBySource(t *testing.T) {
	tmp := t.TempDir()
	a := writeConfig(t, filepath.Join(tmp, "a"), "content=A.esm\nconfig=../b\n")
	b := writeConfig(t, filepath.Join(tmp, "b"), "content=B.esm\n")

	cfg, err := Load(a, testResolver())
	require.NoError(t, err)

	renderedA := cfg.RenderFile(a)
	assert.Contains(t, renderedA, "content=A.esm\n")
	assert.Contains(t, renderedA, "config=../b\n")
	assert.NotContains(t, renderedA, "B.esm")

	renderedB := cfg.RenderFile(b)
	assert.Equal(t, "content=B.esm\n"+Trailer+"\n", renderedB)
}

func TestRenderFileReflectsMutation(t *testing.T) {
	dir := t.TempDir()
	root := writeConfig(t, dir, "# pick your plugins\ncontent=A.esm\n")

	cfg, err := Load(root, testResolver())
	require.NoError(t, err)
	require.NoError(t, cfg.AddContentFile("B.esm"))

	rendered := cfg.RenderFile(root)
	assert.Equal(t, "# pick your plugins\ncontent=A.esm\ncontent=B.esm\n"+Trailer+"\n", rendered)
}

func TestSaveRewritesUserConfig(t *testing.T) {
	tmp := t.TempDir()
	a := writeConfig(t, filepath.Join(tmp, "a"), "config=../b\n")
	b := writeConfig(t, filepath.Join(tmp, "b"), "content=B.esm\n")

	cfg, err := Load(a, testResolver())
	require.NoError(t, err)
	require.Equal(t, b, cfg.UserConfigFile())

	require.NoError(t, cfg.AddContentFile("C.esm"))
	require.NoError(t, cfg.Save())

	data, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, "content=B.esm\ncontent=C.esm\n"+Trailer+"\n", string(data))

	// The root file was not touched.
	data, err = os.ReadFile(a)
	require.NoError(t, err)
	assert.Equal(t, "config=../b\n", string(data))
}

func TestSaveSubConfigTargetsNamedDirectory(t *testing.T) {
	tmp := t.TempDir()
	a := writeConfig(t, filepath.Join(tmp, "a"), "config=../b\nconfig=../c\n")
	writeConfig(t, filepath.Join(tmp, "b"), "content=B.esm\n")
	writeConfig(t, filepath.Join(tmp, "c"), "content=C.esm\n")

	cfg, err := Load(a, testResolver())
	require.NoError(t, err)

	require.NoError(t, cfg.SaveSubConfig(filepath.Join(tmp, "b")))
	data, err := os.ReadFile(filepath.Join(tmp, "b", ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, "content=B.esm\n"+Trailer+"\n", string(data))
}

func TestSaveSubConfigRejectsUnknownDirectory(t *testing.T) {
	dir := t.TempDir()
	root := writeConfig(t, dir, "data=mods\n")

	cfg, err := Load(root, testResolver())
	require.NoError(t, err)

	err = cfg.SaveSubConfig(filepath.Join(dir, "elsewhere"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "not a sub-configuration"))
}

func TestSaveToMissingDirectoryFails(t *testing.T) {
	dir := t.TempDir()
	root := writeConfig(t, dir, "data=mods\n")

	cfg, err := Load(root, testResolver())
	require.NoError(t, err)

	err = cfg.SaveTo(filepath.Join(dir, "missing", ConfigFileName))
	require.Error(t, err)
}

func TestWriteProbeCleansUpAfterItself(t *testing.T) {
	dir := t.TempDir()
	require.True(t, canWriteDir(dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUserConfigWritable(t *testing.T) {
	dir := t.TempDir()
	root := writeConfig(t, dir, "data=mods\n")

	cfg, err := Load(root, testResolver())
	require.NoError(t, err)
	assert.True(t, cfg.UserConfigWritable())
}
