package scheme

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// itermKeys maps the plist color entries to scheme slots. Ansi 0-7 are the
// base palette, 8-15 the bright variants. Other entries that appear in
// .itermcolors files (cursor, selection, ...) are skipped, not rejected.
var itermKeys = map[string]func(*Scheme) *Color{
	"Ansi 0 Color":     func(s *Scheme) *Color { return &s.Black },
	"Ansi 1 Color":     func(s *Scheme) *Color { return &s.Red },
	"Ansi 2 Color":     func(s *Scheme) *Color { return &s.Green },
	"Ansi 3 Color":     func(s *Scheme) *Color { return &s.Yellow },
	"Ansi 4 Color":     func(s *Scheme) *Color { return &s.Blue },
	"Ansi 5 Color":     func(s *Scheme) *Color { return &s.Magenta },
	"Ansi 6 Color":     func(s *Scheme) *Color { return &s.Cyan },
	"Ansi 7 Color":     func(s *Scheme) *Color { return &s.White },
	"Ansi 8 Color":     func(s *Scheme) *Color { return &s.BrightBlack },
	"Ansi 9 Color":     func(s *Scheme) *Color { return &s.BrightRed },
	"Ansi 10 Color":    func(s *Scheme) *Color { return &s.BrightGreen },
	"Ansi 11 Color":    func(s *Scheme) *Color { return &s.BrightYellow },
	"Ansi 12 Color":    func(s *Scheme) *Color { return &s.BrightBlue },
	"Ansi 13 Color":    func(s *Scheme) *Color { return &s.BrightMagenta },
	"Ansi 14 Color":    func(s *Scheme) *Color { return &s.BrightCyan },
	"Ansi 15 Color":    func(s *Scheme) *Color { return &s.BrightWhite },
	"Background Color": func(s *Scheme) *Color { return &s.Background },
	"Foreground Color": func(s *Scheme) *Color { return &s.Foreground },
}

// plistNode is a generic element of the plist XML tree. Only dict, key and
// real elements are interpreted; everything else rides along as opaque nodes.
type plistNode struct {
	XMLName  xml.Name
	Text     string      `xml:",chardata"`
	Children []plistNode `xml:",any"`
}

func (n *plistNode) childrenNamed(name string) []*plistNode {
	var out []*plistNode
	for i := range n.Children {
		if n.Children[i].XMLName.Local == name {
			out = append(out, &n.Children[i])
		}
	}
	return out
}

// ParseITerm parses .itermcolors plist content. The root dict pairs color
// names with component dicts; each component dict pairs component names with
// real values in [0.0, 1.0], scaled to 8-bit channels by truncation.
func ParseITerm(content string) (*Scheme, error) {
	var root plistNode
	if err := xml.Unmarshal([]byte(content), &root); err != nil {
		return nil, fmt.Errorf("parsing plist: %w", err)
	}

	dicts := root.childrenNamed("dict")
	if len(dicts) == 0 {
		return nil, fmt.Errorf("plist has no root dict: %w", ErrInvalidFormat)
	}
	rootDict := dicts[0]

	keys := rootDict.childrenNamed("key")
	values := rootDict.childrenNamed("dict")
	if len(keys) != len(values) {
		return nil, fmt.Errorf("root dict has %d keys but %d color dicts: %w",
			len(keys), len(values), ErrInvalidFormat)
	}

	scheme := &Scheme{}
	for i, key := range keys {
		color, err := parseITermColor(values[i])
		if err != nil {
			return nil, fmt.Errorf("color %q: %w", nodeText(key), err)
		}
		if slot, ok := itermKeys[nodeText(key)]; ok {
			*slot(scheme) = color
		}
	}
	return scheme, nil
}

func parseITermColor(dict *plistNode) (Color, error) {
	keys := dict.childrenNamed("key")
	values := dict.childrenNamed("real")
	if len(keys) != len(values) {
		return Color{}, fmt.Errorf("%d component keys but %d values: %w",
			len(keys), len(values), ErrInvalidFormat)
	}

	var color Color
	for i, key := range keys {
		value, err := strconv.ParseFloat(nodeText(values[i]), 64)
		if err != nil {
			return Color{}, fmt.Errorf("component %q: %w", nodeText(key), err)
		}
		channel := uint8(value * 255)

		switch nodeText(key) {
		case "Red Component":
			color.Red = channel
		case "Green Component":
			color.Green = channel
		case "Blue Component":
			color.Blue = channel
		default:
			return Color{}, fmt.Errorf("component %q: %w", nodeText(key), ErrInvalidFormat)
		}
	}
	return color, nil
}

func nodeText(n *plistNode) string {
	return strings.TrimSpace(n.Text)
}
