package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/lunit-heesungyang/tintty/internal/scheme"
)

const swatchBlock = "      "

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeading)
	labelStyle   = lipgloss.NewStyle().Foreground(ColorLabel)
	hexStyle     = lipgloss.NewStyle().Foreground(ColorMuted)
)

type slotEntry struct {
	label string
	color scheme.Color
}

// RenderScheme renders every slot of a scheme as labeled color swatches,
// grouped the same way the YAML output is: primary, normal, bright.
func RenderScheme(s *scheme.Scheme) string {
	sections := []struct {
		heading string
		slots   []slotEntry
	}{
		{"primary", []slotEntry{
			{"background", s.Background},
			{"foreground", s.Foreground},
		}},
		{"normal", []slotEntry{
			{"black", s.Black},
			{"red", s.Red},
			{"green", s.Green},
			{"yellow", s.Yellow},
			{"blue", s.Blue},
			{"magenta", s.Magenta},
			{"cyan", s.Cyan},
			{"white", s.White},
		}},
		{"bright", []slotEntry{
			{"black", s.BrightBlack},
			{"red", s.BrightRed},
			{"green", s.BrightGreen},
			{"yellow", s.BrightYellow},
			{"blue", s.BrightBlue},
			{"magenta", s.BrightMagenta},
			{"cyan", s.BrightCyan},
			{"white", s.BrightWhite},
		}},
	}

	var sb strings.Builder
	for i, section := range sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(headingStyle.Render(section.heading))
		sb.WriteString("\n")
		for _, slot := range section.slots {
			sb.WriteString(renderSlot(slot.label, slot.color))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func renderSlot(label string, c scheme.Color) string {
	padded := label + strings.Repeat(" ", labelWidth-runewidth.StringWidth(label))
	swatch := lipgloss.NewStyle().Background(lipgloss.Color(c.HTML())).Render(swatchBlock)
	return "  " + labelStyle.Render(padded) + swatch + "  " + hexStyle.Render(c.Hex())
}

// labelWidth fits the longest slot label ("background") plus one space.
const labelWidth = 11
