// Package style resolves the zero-width markup the layout engine
// carries through its output. Tag names map to lipgloss styles loaded
// from a YAML stylesheet; a transform then keeps, strips or applies the
// tags on fully rendered lines.
package style

import (
	_ "embed"
	"os"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/outstanding/pkg/errors"
)

//go:embed styles.yaml
var defaultStylesheet []byte

// ColorDef is an adaptive color definition: one value for light
// terminal backgrounds, one for dark.
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is one style definition. Foreground and Background name
// entries of the colors section.
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Strike     bool   `yaml:"strike,omitempty"`
	Faint      bool   `yaml:"faint,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Config is the stylesheet file layout.
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Registry maps tag names to concrete lipgloss styles.
type Registry struct {
	colors map[string]lipgloss.AdaptiveColor
	styles map[string]lipgloss.Style
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the registry built from the embedded stylesheet.
func Default() *Registry {
	defaultOnce.Do(func() {
		reg, err := Parse(defaultStylesheet)
		if err != nil {
			// the embedded stylesheet is validated by tests; failing
			// to parse it is a build defect
			panic(err)
		}
		defaultReg = reg
	})
	return defaultReg
}

// Load reads and parses a stylesheet file.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrStyleLoad, "failed to read stylesheet %s", path)
	}
	return Parse(data)
}

// Parse builds a registry from stylesheet YAML. A style referencing an
// unknown color is rejected outright rather than rendering wrong.
func Parse(data []byte) (*Registry, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(err, errors.ErrStyleParse, "failed to parse stylesheet")
	}

	reg := &Registry{
		colors: make(map[string]lipgloss.AdaptiveColor, len(config.Colors)),
		styles: make(map[string]lipgloss.Style, len(config.Styles)),
	}
	for name, def := range config.Colors {
		reg.colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}
	for name, def := range config.Styles {
		s, err := reg.build(name, def)
		if err != nil {
			return nil, err
		}
		reg.styles[name] = s
	}
	return reg, nil
}

func (r *Registry) build(name string, def StyleDef) (lipgloss.Style, error) {
	s := lipgloss.NewStyle()
	if def.Bold {
		s = s.Bold(true)
	}
	if def.Italic {
		s = s.Italic(true)
	}
	if def.Underline {
		s = s.Underline(true)
	}
	if def.Strike {
		s = s.Strikethrough(true)
	}
	if def.Faint {
		s = s.Faint(true)
	}
	if def.Foreground != "" {
		color, ok := r.colors[def.Foreground]
		if !ok {
			return s, errors.Newf(errors.ErrStyleParse,
				"style %q references unknown color %q", name, def.Foreground)
		}
		s = s.Foreground(color)
	}
	if def.Background != "" {
		color, ok := r.colors[def.Background]
		if !ok {
			return s, errors.Newf(errors.ErrStyleParse,
				"style %q references unknown color %q", name, def.Background)
		}
		s = s.Background(color)
	}
	return s, nil
}

// Get retrieves a style by name.
func (r *Registry) Get(name string) (lipgloss.Style, bool) {
	s, ok := r.styles[name]
	return s, ok
}

// Style retrieves a style by name, falling back to an empty style so
// unknown tags degrade to plain text.
func (r *Registry) Style(name string) lipgloss.Style {
	return r.styles[name]
}

// Merge combines named styles in order, later styles inheriting from
// earlier ones.
func (r *Registry) Merge(names ...string) lipgloss.Style {
	out := lipgloss.NewStyle()
	for _, name := range names {
		out = out.Inherit(r.Style(name))
	}
	return out
}

// Names lists the registered style names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.styles))
	for name := range r.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
