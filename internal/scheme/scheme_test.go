package scheme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

func TestToYAML_DefaultScheme(t *testing.T) {
	want := `colors:
  # Default colors
  primary:
    background: '0x000000'
    foreground: '0x000000'

  # Normal colors
  normal:
    black:   '0x000000'
    red:     '0x000000'
    green:   '0x000000'
    yellow:  '0x000000'
    blue:    '0x000000'
    magenta: '0x000000'
    cyan:    '0x000000'
    white:   '0x000000'

  # Bright colors
  bright:
    black:   '0x000000'
    red:     '0x000000'
    green:   '0x000000'
    yellow:  '0x000000'
    blue:    '0x000000'
    magenta: '0x000000'
    cyan:    '0x000000'
    white:   '0x000000'
`
	scheme := &Scheme{}
	assert.Equal(t, want, scheme.ToYAML())
}

func TestParse_Dispatch(t *testing.T) {
	scheme, err := Parse(FormatMintty, "Red=255,85,85")
	assert.NoError(t, err)
	assert.Equal(t, Color{Red: 255, Green: 85, Blue: 85}, scheme.Red)

	scheme, err = Parse(FormatITerm, readFixture(t, "Dracula.itermcolors"))
	assert.NoError(t, err)
	assert.Equal(t, Color{Red: 248, Green: 248, Blue: 242}, scheme.Foreground)
}

func TestParse_UnknownFormat(t *testing.T) {
	_, err := Parse(Format(42), "")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
