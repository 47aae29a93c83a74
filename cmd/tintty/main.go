package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lunit-heesungyang/tintty/internal/scheme"
	"github.com/lunit-heesungyang/tintty/internal/storage"
	"github.com/lunit-heesungyang/tintty/internal/tui"
	"github.com/lunit-heesungyang/tintty/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "tintty",
	Short: "Convert terminal color schemes to Alacritty's format",
	Long: `tintty converts terminal color schemes between formats.

It reads iTerm2 (.itermcolors) or mintty (.minttyrc) scheme definitions
and emits the equivalent Alacritty YAML colors section.

Features:
  - Convert a scheme file or stdin to Alacritty YAML
  - Preview any scheme's palette as color swatches in the terminal
  - Browse and convert a directory of schemes with a TUI picker`,
}

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert a scheme file to Alacritty YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formatName, _ := cmd.Flags().GetString("input-format")
		output, _ := cmd.Flags().GetString("output")

		sch, err := readScheme(args[0], formatName)
		if err != nil {
			return err
		}

		if output == "" {
			fmt.Fprint(cmd.OutOrStdout(), sch.ToYAML())
			return nil
		}
		if err := os.WriteFile(output, []byte(sch.ToYAML()), 0644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Render a scheme's palette as color swatches",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sch, err := storage.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.RenderScheme(sch))
		return nil
	},
}

var pickCmd = &cobra.Command{
	Use:   "pick [dir]",
	Short: "Browse a directory of schemes with a TUI picker",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := ""
		if len(args) > 0 {
			dir = args[0]
		}

		p := tea.NewProgram(tui.New(dir), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running TUI: %w", err)
		}
		return nil
	},
}

// readScheme parses the named file, or stdin when path is "-". The format
// flag wins over filename detection and is required for stdin.
func readScheme(path, formatName string) (*scheme.Scheme, error) {
	if formatName != "" {
		format, ok := scheme.ParseFormat(formatName)
		if !ok {
			return nil, fmt.Errorf("unknown input format %q (want iterm or mintty)", formatName)
		}

		var data []byte
		var err error
		if path == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(path)
		}
		if err != nil {
			return nil, fmt.Errorf("reading scheme: %w", err)
		}
		return scheme.Parse(format, string(data))
	}

	if path == "-" {
		return nil, fmt.Errorf("reading from stdin requires --input-format")
	}
	return storage.Load(path)
}

func init() {
	convertCmd.Flags().StringP("input-format", "i", "", "Source format: iterm or mintty (default: detect from filename)")
	convertCmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(pickCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
