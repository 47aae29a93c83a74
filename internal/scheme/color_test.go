package scheme

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColor(t *testing.T) {
	c, err := ParseColor("12,3,255")
	assert.NoError(t, err)
	assert.Equal(t, Color{Red: 12, Green: 3, Blue: 255}, c)
}

func TestParseColor_InvalidFormat(t *testing.T) {
	for _, input := range []string{"123", "1,2", "1,2,3,4", ""} {
		_, err := ParseColor(input)
		assert.ErrorIs(t, err, ErrInvalidFormat, "input %q", input)
	}
}

func TestParseColor_ParseIntError(t *testing.T) {
	for _, input := range []string{"abc,3,fo", "1,2,z", "256,0,0", "-1,0,0", "1.5,2,3"} {
		_, err := ParseColor(input)
		assert.Error(t, err, "input %q", input)
		assert.NotErrorIs(t, err, ErrInvalidFormat, "input %q", input)

		// The underlying strconv failure stays reachable for diagnostics.
		var numErr *strconv.NumError
		assert.True(t, errors.As(err, &numErr), "input %q", input)
	}
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "0x0c03ff", Color{Red: 12, Green: 3, Blue: 255}.Hex())
	assert.Equal(t, "0x7b04ff", Color{Red: 123, Green: 4, Blue: 255}.Hex())
	assert.Equal(t, "0x000000", Color{}.Hex())
}

func TestColorHTML(t *testing.T) {
	assert.Equal(t, "#7b04ff", Color{Red: 123, Green: 4, Blue: 255}.HTML())
}

func TestParseHex(t *testing.T) {
	for _, prefix := range []string{"0x", "#"} {
		c, err := ParseHex(prefix + "7b04ff")
		assert.NoError(t, err)
		assert.Equal(t, Color{Red: 123, Green: 4, Blue: 255}, c)
	}
}

func TestParseHex_Invalid(t *testing.T) {
	for _, input := range []string{"7b04ff", "0x7b04f", "#7b04ffff", "0xzzzzzz", ""} {
		_, err := ParseHex(input)
		assert.Error(t, err, "input %q", input)
	}
}
