package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lunit-heesungyang/tintty/internal/scheme"
)

// Entry is a scheme file found on disk together with its detected format.
// Format is the human-readable format name ("iterm", "mintty", "alacritty").
type Entry struct {
	Name   string
	Path   string
	Format string
}

// Storage locates and loads color-scheme files under a directory.
type Storage struct {
	Dir string
}

// New creates a Storage rooted at dir, defaulting to the current directory.
func New(dir string) *Storage {
	if dir == "" {
		dir, _ = os.Getwd()
	}
	return &Storage{Dir: dir}
}

// ListSchemes returns every recognized scheme file directly under Dir,
// sorted by name. Alacritty YAML files are included so converted output
// can be previewed alongside its sources.
func (s *Storage) ListSchemes() ([]Entry, error) {
	files, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("reading scheme dir: %w", err)
	}

	var entries []Entry
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		name := f.Name()
		format, ok := detectAny(name)
		if !ok {
			continue
		}
		entries = append(entries, Entry{
			Name:   name,
			Path:   filepath.Join(s.Dir, name),
			Format: format,
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Load reads and parses a scheme file, picking the parser by filename.
func Load(path string) (*scheme.Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scheme: %w", err)
	}

	format, ok := detectAny(filepath.Base(path))
	if !ok {
		return nil, fmt.Errorf("cannot detect scheme format of %q", path)
	}

	switch format {
	case "alacritty":
		return scheme.ParseAlacritty(data)
	default:
		f, _ := scheme.ParseFormat(format)
		return scheme.Parse(f, string(data))
	}
}

// OutputPath is where the converted scheme for src gets written:
// the source name with its extension replaced by .yml.
func OutputPath(src string) string {
	ext := filepath.Ext(src)
	return strings.TrimSuffix(src, ext) + ".yml"
}

// WriteConverted converts a source scheme file and writes the Alacritty
// YAML next to it, returning the output path.
func WriteConverted(src string) (string, error) {
	sch, err := Load(src)
	if err != nil {
		return "", err
	}

	out := OutputPath(src)
	if err := os.WriteFile(out, []byte(sch.ToYAML()), 0644); err != nil {
		return "", fmt.Errorf("writing converted scheme: %w", err)
	}
	return out, nil
}

func detectAny(filename string) (string, bool) {
	if f, ok := scheme.DetectFormat(filename); ok {
		return f.String(), true
	}
	if strings.HasSuffix(filename, ".yml") || strings.HasSuffix(filename, ".yaml") {
		return "alacritty", true
	}
	return "", false
}
