// Package config handles configuration loading and validation for plotmark.
package config

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"plotmark/internal/plot"
)

// Limits for the number of stacked chart panels.
const (
	MinPanels = 1
	MaxPanels = 4
)

// Config holds the application configuration.
type Config struct {
	View         View         `yaml:"view"`
	Pens         Pens         `yaml:"pens"`
	Lines        []LineConfig `yaml:"lines"`
	Spans        [][2]string  `yaml:"spans"`        // pairs of line names measured against each other
	Epsilon      float64      `yaml:"epsilon"`      // coordinate comparison tolerance
	Step         int          `yaml:"step"`         // nudge distance for [ and ]
	Panels       int          `yaml:"panels"`       // most panels stacked at once
	Interactions Interactions `yaml:"interactions"` // surface pointer behaviour
	Files        Files        `yaml:"files"`
}

// View sets the initial visible ranges. Empty ranges fit the data.
type View struct {
	X   []float64 `yaml:"x"`
	Y   []float64 `yaml:"y"`
	Fit bool      `yaml:"fit"` // rescale to the data whenever a file loads
}

// PenConfig describes the stroke of one line state.
type PenConfig struct {
	Width float64 `yaml:"width"`
	Color string  `yaml:"color"` // #RRGGBB
}

// Pens holds one pen per visual state. Hovered and dragging colors are
// derived from the idle color when left empty.
type Pens struct {
	Idle     PenConfig `yaml:"idle"`
	Hovered  PenConfig `yaml:"hovered"`
	Dragging PenConfig `yaml:"dragging"`
}

// LineConfig places a marker line at startup. A line is created on every
// panel unless Panel picks one (1-based). All copies of a line, and all
// lines sharing a Group, move together.
type LineConfig struct {
	Name    string  `yaml:"name"`
	Axis    string  `yaml:"axis"` // x or y
	At      float64 `yaml:"at"`
	Panel   int     `yaml:"panel"`
	Group   string  `yaml:"group"`
	Movable *bool   `yaml:"movable"`
	Offset  int     `yaml:"offset"`
}

// Interactions toggles the surface's own pointer behaviour.
type Interactions struct {
	Drag   bool `yaml:"drag"`   // pan by dragging empty space
	Zoom   bool `yaml:"zoom"`   // zoom with the wheel
	Select bool `yaml:"select"` // a press selects the line under it
}

// Files configures the sidebar.
type Files struct {
	Dir     string `yaml:"dir"`
	Pattern string `yaml:"pattern"` // doublestar glob, matched against names relative to Dir
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		View: View{Fit: true},
		Pens: Pens{
			Idle: PenConfig{Width: 2, Color: "#E6E6E6"},
		},
		Epsilon: plot.DefaultEpsilon,
		Step:    1,
		Panels:  MaxPanels,
		Interactions: Interactions{
			Drag:   true,
			Zoom:   true,
			Select: true,
		},
		Files: Files{
			Dir:     ".",
			Pattern: "*.{csv,json,txt}",
		},
	}
}

// Load reads configuration from the given path. If path is empty or
// doesn't exist, returns defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() error {
	defaults := DefaultConfig()
	if c.Epsilon == 0 {
		c.Epsilon = defaults.Epsilon
	}
	if c.Step == 0 {
		c.Step = defaults.Step
	}
	if c.Panels == 0 {
		c.Panels = defaults.Panels
	}
	if c.Files.Dir == "" {
		c.Files.Dir = defaults.Files.Dir
	}
	if c.Files.Pattern == "" {
		c.Files.Pattern = defaults.Files.Pattern
	}
	for i := range c.Lines {
		if c.Lines[i].Axis == "" {
			c.Lines[i].Axis = "x"
		}
	}
	return c.Pens.applyDefaults(defaults.Pens)
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if err := validateRange("view.x", c.View.X); err != nil {
		return err
	}
	if err := validateRange("view.y", c.View.Y); err != nil {
		return err
	}

	if err := c.Pens.Validate(); err != nil {
		return err
	}

	if c.Epsilon <= 0 {
		return fmt.Errorf("epsilon must be positive")
	}
	if c.Step < 1 {
		return fmt.Errorf("step must be at least 1")
	}
	if c.Panels < MinPanels || c.Panels > MaxPanels {
		return fmt.Errorf("panels must be between %d and %d", MinPanels, MaxPanels)
	}

	if !doublestar.ValidatePattern(c.Files.Pattern) {
		return fmt.Errorf("files.pattern %q is not a valid glob", c.Files.Pattern)
	}

	axes := make(map[string]plot.Axis, len(c.Lines))
	for i, l := range c.Lines {
		if l.Name == "" {
			return fmt.Errorf("line %d: name is required", i)
		}
		if _, dup := axes[l.Name]; dup {
			return fmt.Errorf("duplicate line name %q", l.Name)
		}
		a, err := plot.ParseAxis(l.Axis)
		if err != nil {
			return fmt.Errorf("line %q: %w", l.Name, err)
		}
		axes[l.Name] = a
		if l.Panel < 0 || l.Panel > c.Panels {
			return fmt.Errorf("line %q: panel must be between 0 and %d", l.Name, c.Panels)
		}
	}

	groups := make(map[string]plot.Axis)
	for _, l := range c.Lines {
		if l.Group == "" {
			continue
		}
		a := axes[l.Name]
		if g, ok := groups[l.Group]; ok && g != a {
			return fmt.Errorf("group %q mixes x and y lines", l.Group)
		}
		groups[l.Group] = a
	}

	for i, s := range c.Spans {
		a, okA := axes[s[0]]
		b, okB := axes[s[1]]
		switch {
		case !okA || !okB:
			return fmt.Errorf("span %d: unknown line in %q-%q", i, s[0], s[1])
		case s[0] == s[1]:
			return fmt.Errorf("span %d: needs two different lines", i)
		case a != b:
			return fmt.Errorf("span %d: %q and %q move on different axes", i, s[0], s[1])
		}
	}

	return nil
}

func validateRange(key string, r []float64) error {
	switch {
	case len(r) == 0:
		return nil
	case len(r) != 2:
		return fmt.Errorf("%s must have exactly two values", key)
	case r[0] == r[1]:
		return fmt.Errorf("%s must not be empty", key)
	}
	return nil
}

// AxisValue returns the parsed axis. Call after Validate.
func (l LineConfig) AxisValue() plot.Axis {
	a, _ := plot.ParseAxis(l.Axis)
	return a
}

// IsMovable defaults to true.
func (l LineConfig) IsMovable() bool {
	return l.Movable == nil || *l.Movable
}

// OnPanel reports whether the line belongs on panel i (0-based).
func (l LineConfig) OnPanel(i int) bool {
	return l.Panel == 0 || l.Panel == i+1
}

// XRange returns the configured x range, if any.
func (v View) XRange() (plot.Range, bool) { return toRange(v.X) }

// YRange returns the configured y range, if any.
func (v View) YRange() (plot.Range, bool) { return toRange(v.Y) }

func toRange(r []float64) (plot.Range, bool) {
	if len(r) != 2 {
		return plot.Range{}, false
	}
	return plot.Range{Lower: r[0], Upper: r[1]}.Normalize(), true
}

// SurfaceInteractions converts the toggles to the surface bit set.
func (i Interactions) SurfaceInteractions() plot.Interaction {
	var out plot.Interaction
	if i.Drag {
		out |= plot.InteractRangeDrag
	}
	if i.Zoom {
		out |= plot.InteractRangeZoom
	}
	if i.Select {
		out |= plot.InteractSelectItems
	}
	return out
}
