package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunit-heesungyang/tintty/internal/scheme"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestListSchemes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Dracula.minttyrc", "Red=255,85,85\n")
	writeFile(t, dir, "Nord.itermcolors", "<plist><dict></dict></plist>")
	writeFile(t, dir, "converted.yml", "colors:\n")
	writeFile(t, dir, "notes.txt", "not a scheme")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.minttyrc"), 0755))

	entries, err := New(dir).ListSchemes()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "Dracula.minttyrc", entries[0].Name)
	assert.Equal(t, "mintty", entries[0].Format)
	assert.Equal(t, "Nord.itermcolors", entries[1].Name)
	assert.Equal(t, "iterm", entries[1].Format)
	assert.Equal(t, "converted.yml", entries[2].Name)
	assert.Equal(t, "alacritty", entries[2].Format)
}

func TestListSchemes_MissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope")).ListSchemes()
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scheme.minttyrc", "Blue=202,169,250\n")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, scheme.Color{Red: 202, Green: 169, Blue: 250}, s.Blue)
}

func TestLoad_UndetectableFormat(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scheme.conf", "Blue=202,169,250\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "/tmp/Dracula.yml", OutputPath("/tmp/Dracula.minttyrc"))
	assert.Equal(t, "Dracula.yml", OutputPath("Dracula.itermcolors"))
}

func TestWriteConverted(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "mini.minttyrc", "Red=255,85,85\n")

	out, err := WriteConverted(src)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "mini.yml"), out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "red:     '0xff5555'")
}
