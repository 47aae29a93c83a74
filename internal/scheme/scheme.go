package scheme

import "fmt"

// Scheme is a normalized terminal color scheme: foreground, background,
// and the 16 ANSI palette entries. The zero value has every slot black;
// parsers overwrite slots as they recognize keys, so a scheme is always
// fully populated.
type Scheme struct {
	Foreground Color
	Background Color

	Black   Color
	Red     Color
	Green   Color
	Yellow  Color
	Blue    Color
	Magenta Color
	Cyan    Color
	White   Color

	BrightBlack   Color
	BrightRed     Color
	BrightGreen   Color
	BrightYellow  Color
	BrightBlue    Color
	BrightMagenta Color
	BrightCyan    Color
	BrightWhite   Color
}

// Parse converts raw scheme text of the given source format.
func Parse(f Format, content string) (*Scheme, error) {
	switch f {
	case FormatITerm:
		return ParseITerm(content)
	case FormatMintty:
		return ParseMintty(content)
	}
	return nil, fmt.Errorf("unknown format %d: %w", f, ErrInvalidFormat)
}

// ToYAML renders the scheme in Alacritty's colors layout. The layout is a
// fixed template: consumers diff the output against reference files, so
// field order, indentation and comments must not change.
func (s *Scheme) ToYAML() string {
	return fmt.Sprintf(`colors:
  # Default colors
  primary:
    background: '%s'
    foreground: '%s'

  # Normal colors
  normal:
    black:   '%s'
    red:     '%s'
    green:   '%s'
    yellow:  '%s'
    blue:    '%s'
    magenta: '%s'
    cyan:    '%s'
    white:   '%s'

  # Bright colors
  bright:
    black:   '%s'
    red:     '%s'
    green:   '%s'
    yellow:  '%s'
    blue:    '%s'
    magenta: '%s'
    cyan:    '%s'
    white:   '%s'
`,
		s.Background.Hex(),
		s.Foreground.Hex(),
		s.Black.Hex(),
		s.Red.Hex(),
		s.Green.Hex(),
		s.Yellow.Hex(),
		s.Blue.Hex(),
		s.Magenta.Hex(),
		s.Cyan.Hex(),
		s.White.Hex(),
		s.BrightBlack.Hex(),
		s.BrightRed.Hex(),
		s.BrightGreen.Hex(),
		s.BrightYellow.Hex(),
		s.BrightBlue.Hex(),
		s.BrightMagenta.Hex(),
		s.BrightCyan.Hex(),
		s.BrightWhite.Hex(),
	)
}
