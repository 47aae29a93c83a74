package scheme

import (
	"fmt"
	"strings"
)

// minttyKeys maps every recognized minttyrc name to the scheme slot it
// assigns. Bold* names are mintty's spelling of the bright variants.
var minttyKeys = map[string]func(*Scheme) *Color{
	"ForegroundColour": func(s *Scheme) *Color { return &s.Foreground },
	"BackgroundColour": func(s *Scheme) *Color { return &s.Background },
	"Black":            func(s *Scheme) *Color { return &s.Black },
	"Red":              func(s *Scheme) *Color { return &s.Red },
	"Green":            func(s *Scheme) *Color { return &s.Green },
	"Yellow":           func(s *Scheme) *Color { return &s.Yellow },
	"Blue":             func(s *Scheme) *Color { return &s.Blue },
	"Magenta":          func(s *Scheme) *Color { return &s.Magenta },
	"Cyan":             func(s *Scheme) *Color { return &s.Cyan },
	"White":            func(s *Scheme) *Color { return &s.White },
	"BoldBlack":        func(s *Scheme) *Color { return &s.BrightBlack },
	"BoldRed":          func(s *Scheme) *Color { return &s.BrightRed },
	"BoldGreen":        func(s *Scheme) *Color { return &s.BrightGreen },
	"BoldYellow":       func(s *Scheme) *Color { return &s.BrightYellow },
	"BoldBlue":         func(s *Scheme) *Color { return &s.BrightBlue },
	"BoldMagenta":      func(s *Scheme) *Color { return &s.BrightMagenta },
	"BoldCyan":         func(s *Scheme) *Color { return &s.BrightCyan },
	"BoldWhite":        func(s *Scheme) *Color { return &s.BrightWhite },
}

// ParseMintty parses minttyrc content, one Name=R,G,B assignment per line.
// Any malformed line or unrecognized name aborts the whole parse.
func ParseMintty(content string) (*Scheme, error) {
	scheme := &Scheme{}
	for _, line := range strings.Split(content, "\n") {
		// minttyrc files usually come from Windows.
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		parts := strings.Split(line, "=")
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %q: %w", line, ErrInvalidFormat)
		}

		color, err := ParseColor(parts[1])
		if err != nil {
			return nil, fmt.Errorf("line %q: %w", line, err)
		}

		name := parts[0]
		slot, ok := minttyKeys[name]
		if !ok {
			return nil, fmt.Errorf("color name %q: %w", name, ErrInvalidFormat)
		}
		*slot(scheme) = color
	}
	return scheme, nil
}
