package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestConvertCommand_DetectsFormat(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "mini.minttyrc")
	require.NoError(t, os.WriteFile(src, []byte("Red=255,85,85\n"), 0644))

	out, err := runCommand(t, "convert", src)
	require.NoError(t, err)
	assert.Contains(t, out, "red:     '0xff5555'")
}

func TestConvertCommand_ExplicitFormat(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "exported.txt")
	require.NoError(t, os.WriteFile(src, []byte("Blue=202,169,250\n"), 0644))

	out, err := runCommand(t, "convert", "--input-format", "mintty", src)
	require.NoError(t, err)
	assert.Contains(t, out, "blue:    '0xcaa9fa'")
}

func TestConvertCommand_OutputFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "mini.minttyrc")
	dst := filepath.Join(dir, "mini.yml")
	require.NoError(t, os.WriteFile(src, []byte("Red=255,85,85\n"), 0644))

	_, err := runCommand(t, "convert", "-o", dst, src)
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(data), "red:     '0xff5555'")
}

func TestConvertCommand_UnknownFormat(t *testing.T) {
	_, err := runCommand(t, "convert", "--input-format", "kitty", "whatever")
	assert.ErrorContains(t, err, "unknown input format")
}

func TestConvertCommand_StdinNeedsFormat(t *testing.T) {
	_, err := runCommand(t, "convert", "--input-format", "", "-")
	assert.ErrorContains(t, err, "requires --input-format")
}

func TestPreviewCommand(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "mini.minttyrc")
	require.NoError(t, os.WriteFile(src, []byte("BackgroundColour=40,42,54\n"), 0644))

	out, err := runCommand(t, "preview", src)
	require.NoError(t, err)
	assert.Contains(t, out, "0x282a36")
}
