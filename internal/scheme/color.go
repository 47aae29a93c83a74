package scheme

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFormat reports input whose shape is wrong: a color value without
// exactly three fields, a malformed scheme line, or an unexpected plist tree.
var ErrInvalidFormat = errors.New("invalid format")

// Color is a single sRGB color with 8-bit channels.
type Color struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// ParseColor parses a "R,G,B" triple of decimal 0-255 components.
func ParseColor(s string) (Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("color %q: %w", s, ErrInvalidFormat)
	}

	var channels [3]uint8
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return Color{}, fmt.Errorf("color channel %q: %w", part, err)
		}
		channels[i] = uint8(n)
	}

	return Color{Red: channels[0], Green: channels[1], Blue: channels[2]}, nil
}

// ParseHex parses a six-digit hex color with a "0x" or "#" prefix,
// the two spellings used by Alacritty configs.
func ParseHex(s string) (Color, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "#")
	if len(digits) == len(s) || len(digits) != 6 {
		return Color{}, fmt.Errorf("hex color %q: %w", s, ErrInvalidFormat)
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("hex color %q: %w", s, err)
		}
		channels[i] = uint8(n)
	}

	return Color{Red: channels[0], Green: channels[1], Blue: channels[2]}, nil
}

// Hex renders the color as a lowercase "0x"-prefixed literal, e.g. "0x7b04ff".
// This is the spelling Alacritty scheme files use.
func (c Color) Hex() string {
	return fmt.Sprintf("0x%02x%02x%02x", c.Red, c.Green, c.Blue)
}

// HTML renders the color as "#rrggbb" for terminal styling libraries.
func (c Color) HTML() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red, c.Green, c.Blue)
}
