// Package styles holds the colors of pngico's terminal output.
//
// Styles are looked up by semantic name ("Success", "Warning", ...) and
// use adaptive colors, so the same name reads well on light and dark
// terminals. The palette lives in the embedded styles.yaml.
package styles

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Names of the styles the CLI renders with
const (
	Success = "Success"
	Warning = "Warning"
	Error   = "Error"
	Muted   = "Muted"
)

type colorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

type styleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
}

type palette struct {
	Colors map[string]colorDef `yaml:"colors"`
	Styles map[string]styleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

var registry = map[string]lipgloss.Style{}

func init() {
	if err := Load(embeddedStyles); err != nil {
		// Unstyled output is still usable
		registry = map[string]lipgloss.Style{}
	}
}

// Load replaces the registry with the styles defined in data
func Load(data []byte) error {
	var p palette
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("failed to parse styles: %w", err)
	}

	loaded := make(map[string]lipgloss.Style, len(p.Styles))
	for name, def := range p.Styles {
		style := lipgloss.NewStyle().Bold(def.Bold)
		if def.Foreground != "" {
			c, ok := p.Colors[def.Foreground]
			if !ok {
				return fmt.Errorf("style %s: unknown color %q", name, def.Foreground)
			}
			style = style.Foreground(lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark})
		}
		loaded[name] = style
	}
	registry = loaded
	return nil
}

// GetStyle returns the named style, or a plain one for unknown names
func GetStyle(name string) lipgloss.Style {
	if style, ok := registry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}
