package scheme

import "strings"

// Format identifies one of the supported source scheme formats.
type Format int

const (
	FormatITerm Format = iota
	FormatMintty
)

func (f Format) String() string {
	switch f {
	case FormatITerm:
		return "iterm"
	case FormatMintty:
		return "mintty"
	}
	return ""
}

// ParseFormat matches a format name exactly; ok is false for anything else.
func ParseFormat(name string) (Format, bool) {
	switch name {
	case "iterm":
		return FormatITerm, true
	case "mintty":
		return FormatMintty, true
	}
	return 0, false
}

// DetectFormat guesses the source format from a filename by its
// conventional extension marker; ok is false when neither matches.
func DetectFormat(filename string) (Format, bool) {
	if strings.Contains(filename, ".itermcolors") {
		return FormatITerm, true
	}
	if strings.Contains(filename, ".minttyrc") {
		return FormatMintty, true
	}
	return 0, false
}
