package scheme

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type alacrittyPalette struct {
	Black   string `yaml:"black"`
	Red     string `yaml:"red"`
	Green   string `yaml:"green"`
	Yellow  string `yaml:"yellow"`
	Blue    string `yaml:"blue"`
	Magenta string `yaml:"magenta"`
	Cyan    string `yaml:"cyan"`
	White   string `yaml:"white"`
}

type alacrittyColors struct {
	Colors struct {
		Primary struct {
			Background string `yaml:"background"`
			Foreground string `yaml:"foreground"`
		} `yaml:"primary"`
		Normal alacrittyPalette `yaml:"normal"`
		Bright alacrittyPalette `yaml:"bright"`
	} `yaml:"colors"`
}

// ParseAlacritty reads the colors section of an Alacritty YAML config back
// into a Scheme. Slots missing from the config stay black.
func ParseAlacritty(content []byte) (*Scheme, error) {
	var cfg alacrittyColors
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing alacritty config: %w", err)
	}

	scheme := &Scheme{}
	slots := []struct {
		value string
		slot  *Color
	}{
		{cfg.Colors.Primary.Background, &scheme.Background},
		{cfg.Colors.Primary.Foreground, &scheme.Foreground},
		{cfg.Colors.Normal.Black, &scheme.Black},
		{cfg.Colors.Normal.Red, &scheme.Red},
		{cfg.Colors.Normal.Green, &scheme.Green},
		{cfg.Colors.Normal.Yellow, &scheme.Yellow},
		{cfg.Colors.Normal.Blue, &scheme.Blue},
		{cfg.Colors.Normal.Magenta, &scheme.Magenta},
		{cfg.Colors.Normal.Cyan, &scheme.Cyan},
		{cfg.Colors.Normal.White, &scheme.White},
		{cfg.Colors.Bright.Black, &scheme.BrightBlack},
		{cfg.Colors.Bright.Red, &scheme.BrightRed},
		{cfg.Colors.Bright.Green, &scheme.BrightGreen},
		{cfg.Colors.Bright.Yellow, &scheme.BrightYellow},
		{cfg.Colors.Bright.Blue, &scheme.BrightBlue},
		{cfg.Colors.Bright.Magenta, &scheme.BrightMagenta},
		{cfg.Colors.Bright.Cyan, &scheme.BrightCyan},
		{cfg.Colors.Bright.White, &scheme.BrightWhite},
	}
	for _, s := range slots {
		if s.value == "" {
			continue
		}
		color, err := ParseHex(s.value)
		if err != nil {
			return nil, err
		}
		*s.slot = color
	}
	return scheme, nil
}
