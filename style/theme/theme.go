/*
Package theme supplies the variable context for stylesheet resolution.

A theme maps `$variable` names to concrete values. Themes carry a fixed
set of base colors (primary, secondary, background, …) plus free-form
variables; user themes are YAML files loaded from a directory.

The theme is injected into the parser as a read-only lookup, so that resolution
never reaches for ambient global state.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The posting authors
*/
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bryanwills/posting/style"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer traces with key 'posting.theme'.
func tracer() tracing.Trace {
	return tracing.Select("posting.theme")
}

// Theme is a named set of base colors plus free-form variables.
type Theme struct {
	Name       string            `yaml:"name"`
	Primary    string            `yaml:"primary"`
	Secondary  string            `yaml:"secondary"`
	Background string            `yaml:"background"`
	Surface    string            `yaml:"surface"`
	Panel      string            `yaml:"panel"`
	Warning    string            `yaml:"warning"`
	Error      string            `yaml:"error"`
	Success    string            `yaml:"success"`
	Accent     string            `yaml:"accent"`
	Dark       bool              `yaml:"dark"`
	Variables  map[string]string `yaml:"variables"`

	// Optional metadata, not used by resolution.
	Author      string `yaml:"author"`
	Description string `yaml:"description"`
	Homepage    string `yaml:"homepage"`
}

// Resolve maps a `$variable` name to its value. Free-form variables take
// precedence over the base color names, so a theme may override e.g.
// "primary" per variable. Part of interface sheet.VariableLookup.
func (t *Theme) Resolve(name string) (style.Property, bool) {
	if t == nil {
		return style.NullStyle, false
	}
	if v, ok := t.Variables[name]; ok {
		return style.Property(v), true
	}
	v := ""
	switch name {
	case "primary":
		v = t.Primary
	case "secondary":
		v = t.Secondary
	case "background":
		v = t.Background
	case "surface":
		v = t.Surface
	case "panel":
		v = t.Panel
	case "warning":
		v = t.Warning
	case "error":
		v = t.Error
	case "success":
		v = t.Success
	case "accent":
		v = t.Accent
	}
	if v == "" {
		return style.NullStyle, false
	}
	return style.Property(v), true
}

// Load reads a single YAML theme file. A theme without a name is invalid.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	if t.Name == "" {
		return nil, fmt.Errorf("invalid theme file %s: a `name` is required", path)
	}
	return &t, nil
}

// LoadDir loads all user themes (*.yaml, *.yml) from a directory.
// It returns a mapping from theme name to theme.
func LoadDir(dir string) (map[string]*Theme, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("theme directory %s: %w", dir, err)
	}
	themes := make(map[string]*Theme)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		t, err := Load(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		tracer().P("theme", t.Name).Debugf("loaded user theme")
		themes[t.Name] = t
	}
	return themes, nil
}

// Builtin returns the builtin theme set.
func Builtin() map[string]*Theme {
	themes := make(map[string]*Theme, len(builtinThemes))
	for _, t := range builtinThemes {
		themes[t.Name] = t
	}
	return themes
}

var builtinThemes = []*Theme{
	{
		Name:       "galaxy",
		Primary:    "#8A2BE2",
		Secondary:  "#a684e8",
		Warning:    "#FFD700",
		Error:      "#FF4500",
		Success:    "#00FA9A",
		Accent:     "#FF69B4",
		Background: "#0F0F1F",
		Surface:    "#1E1E3F",
		Panel:      "#2D2B55",
		Dark:       true,
		Variables: map[string]string{
			"input-cursor-background": "#8A2BE2",
			"footer-background":       "transparent",
		},
	},
	{
		Name:       "nautilus",
		Primary:    "#0077BE",
		Secondary:  "#20B2AA",
		Warning:    "#FFD700",
		Error:      "#FF6347",
		Success:    "#32CD32",
		Accent:     "#FF8C00",
		Background: "#001F3F",
		Surface:    "#003366",
		Panel:      "#005A8C",
		Dark:       true,
	},
	{
		Name:       "nebula",
		Primary:    "#4169E1",
		Secondary:  "#9400D3",
		Warning:    "#FFD700",
		Error:      "#FF1493",
		Success:    "#00FF7F",
		Accent:     "#FF00FF",
		Background: "#0A0A23",
		Surface:    "#1C1C3C",
		Panel:      "#2E2E5E",
		Dark:       true,
	},
	{
		Name:       "cobalt",
		Primary:    "#334D5C",
		Secondary:  "#4878A6",
		Warning:    "#FFAA22",
		Error:      "#E63946",
		Success:    "#4CAF50",
		Accent:     "#D94E64",
		Surface:    "#27343B",
		Panel:      "#2D3E46",
		Background: "#1F262A",
		Dark:       true,
	},
	{
		Name:       "twilight",
		Primary:    "#367588",
		Secondary:  "#5F9EA0",
		Warning:    "#FFD700",
		Error:      "#FF6347",
		Success:    "#00FA9A",
		Accent:     "#FF7F50",
		Background: "#191970",
		Surface:    "#3B3B6D",
		Panel:      "#4C516D",
		Dark:       true,
	},
	{
		Name:       "hacker",
		Primary:    "#00FF00",
		Secondary:  "#3A9F3A",
		Warning:    "#00FF66",
		Error:      "#FF0000",
		Success:    "#00DD00",
		Accent:     "#00FF33",
		Background: "#000000",
		Surface:    "#0A0A0A",
		Panel:      "#111111",
		Dark:       true,
		Variables: map[string]string{
			"method-get":     "#00FF00",
			"method-post":    "#00DD00",
			"method-put":     "#00BB00",
			"method-delete":  "#FF0000",
			"method-patch":   "#00FF33",
			"method-options": "#3A9F3A",
			"method-head":    "#00FF66",
		},
	},
}
