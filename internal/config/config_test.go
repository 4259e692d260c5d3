package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plotmark/internal/plot"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "plotmark.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, plot.DefaultEpsilon, cfg.Epsilon)
	assert.Equal(t, 1, cfg.Step)
	assert.Equal(t, MaxPanels, cfg.Panels)
	assert.True(t, cfg.View.Fit)
	assert.Equal(t, "*.{csv,json,txt}", cfg.Files.Pattern)
	assert.Equal(t, plot.InteractAll, cfg.Interactions.SurfaceInteractions())
	assert.Equal(t, "#E6E6E6", cfg.Pens.Idle.Color)
	assert.NotEmpty(t, cfg.Pens.Hovered.Color)
	assert.NotEmpty(t, cfg.Pens.Dragging.Color)
	assert.Equal(t, 3.0, cfg.Pens.Dragging.Width)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, cfg.Lines)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
view:
  x: [10, 0]
  fit: false
pens:
  idle: {width: 1, color: "#336699"}
  dragging: {color: "#ff0000"}
lines:
  - name: A
    at: 2
    group: cursors
  - name: B
    at: 8
    group: cursors
  - name: level
    axis: y
    at: 0.5
    panel: 2
    movable: false
spans:
  - [A, B]
interactions:
  zoom: false
panels: 2
step: 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	r, ok := cfg.View.XRange()
	require.True(t, ok)
	assert.Equal(t, plot.Range{Lower: 0, Upper: 10}, r)
	_, ok = cfg.View.YRange()
	assert.False(t, ok)
	assert.False(t, cfg.View.Fit)

	assert.Equal(t, plot.InteractRangeDrag|plot.InteractSelectItems, cfg.Interactions.SurfaceInteractions())
	assert.Equal(t, 2, cfg.Panels)
	assert.Equal(t, 5, cfg.Step)

	require.Len(t, cfg.Lines, 3)
	assert.Equal(t, plot.AxisX, cfg.Lines[0].AxisValue())
	assert.True(t, cfg.Lines[0].IsMovable())
	assert.True(t, cfg.Lines[0].OnPanel(1))
	assert.Equal(t, plot.AxisY, cfg.Lines[2].AxisValue())
	assert.False(t, cfg.Lines[2].IsMovable())
	assert.False(t, cfg.Lines[2].OnPanel(0))
	assert.True(t, cfg.Lines[2].OnPanel(1))
	assert.Equal(t, [][2]string{{"A", "B"}}, cfg.Spans)

	assert.Equal(t, "#ff0000", cfg.Pens.Dragging.Color)
	assert.Equal(t, 2.0, cfg.Pens.Dragging.Width)
	assert.NotEqual(t, cfg.Pens.Idle.Color, cfg.Pens.Hovered.Color)
	assert.Equal(t, plot.Pen{Width: 1, Color: "#336699"}, cfg.Pens.Idle.Pen())
}

func TestLoad_ParseError(t *testing.T) {
	_, err := Load(writeConfig(t, "lines: [\n"))
	assert.ErrorContains(t, err, "parse config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "defaults",
			mutate: func(*Config) {},
		},
		{
			name:    "short range",
			mutate:  func(c *Config) { c.View.X = []float64{1} },
			wantErr: "view.x must have exactly two values",
		},
		{
			name:    "empty range",
			mutate:  func(c *Config) { c.View.Y = []float64{3, 3} },
			wantErr: "view.y must not be empty",
		},
		{
			name:    "zero width pen",
			mutate:  func(c *Config) { c.Pens.Hovered.Width = -1 },
			wantErr: "pens.hovered.width",
		},
		{
			name:    "bad color",
			mutate:  func(c *Config) { c.Pens.Dragging.Color = "orange" },
			wantErr: "pens.dragging.color",
		},
		{
			name:    "epsilon",
			mutate:  func(c *Config) { c.Epsilon = -1 },
			wantErr: "epsilon must be positive",
		},
		{
			name:    "too many panels",
			mutate:  func(c *Config) { c.Panels = 9 },
			wantErr: "panels must be between",
		},
		{
			name:    "bad glob",
			mutate:  func(c *Config) { c.Files.Pattern = "*.{csv" },
			wantErr: "not a valid glob",
		},
		{
			name:    "unnamed line",
			mutate:  func(c *Config) { c.Lines = []LineConfig{{Axis: "x"}} },
			wantErr: "line 0: name is required",
		},
		{
			name:    "duplicate line",
			mutate:  func(c *Config) { c.Lines = []LineConfig{{Name: "A", Axis: "x"}, {Name: "A", Axis: "x"}} },
			wantErr: "duplicate line name",
		},
		{
			name:    "bad axis",
			mutate:  func(c *Config) { c.Lines = []LineConfig{{Name: "A", Axis: "z"}} },
			wantErr: "unknown axis",
		},
		{
			name:    "panel out of range",
			mutate:  func(c *Config) { c.Lines = []LineConfig{{Name: "A", Axis: "x", Panel: 7}} },
			wantErr: "panel must be between",
		},
		{
			name: "mixed group",
			mutate: func(c *Config) {
				c.Lines = []LineConfig{{Name: "A", Axis: "x", Group: "g"}, {Name: "B", Axis: "y", Group: "g"}}
			},
			wantErr: "mixes x and y",
		},
		{
			name: "span unknown line",
			mutate: func(c *Config) {
				c.Lines = []LineConfig{{Name: "A", Axis: "x"}}
				c.Spans = [][2]string{{"A", "B"}}
			},
			wantErr: "unknown line",
		},
		{
			name: "span across axes",
			mutate: func(c *Config) {
				c.Lines = []LineConfig{{Name: "A", Axis: "x"}, {Name: "B", Axis: "y"}}
				c.Spans = [][2]string{{"A", "B"}}
			},
			wantErr: "different axes",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			require.NoError(t, cfg.applyDefaults())
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestPens_DerivedColorsDiffer(t *testing.T) {
	p := Pens{Idle: PenConfig{Width: 2, Color: "#404040"}}

	require.NoError(t, p.applyDefaults(DefaultConfig().Pens))

	assert.NotEqual(t, p.Idle.Color, p.Hovered.Color)
	assert.NotEqual(t, p.Idle.Color, p.Dragging.Color)
	assert.NotEqual(t, p.Hovered.Color, p.Dragging.Color)
	assert.NoError(t, p.Validate())
}

func TestPens_BadIdleColor(t *testing.T) {
	p := Pens{Idle: PenConfig{Width: 2, Color: "grey"}}

	assert.ErrorContains(t, p.applyDefaults(DefaultConfig().Pens), "pens.idle.color")
}
