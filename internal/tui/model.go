package tui

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"plotmark/internal/config"
	"plotmark/internal/series"
)

// Layout of the screen around the chart.
const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string

	cfg *config.Config
	log zerolog.Logger

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	data  series.Data
	chart *chart

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// marker table
	showTable bool
	tbl       table.Model

	keys keyMap
	help help.Model

	// hover readout
	hovering bool
	hoverX   float64
	hoverY   float64
}

func New(cfg *config.Config, log zerolog.Logger) Model {
	m := Model{
		showSidebar: false,
		helpVisible: true,
		status:      "plotmark ready",
		cfg:         cfg,
		log:         log,
		keys:        defaultKeyMap(),
		help:        help.New(),
	}
	m.cwd = cfg.Files.Dir
	if abs, err := filepath.Abs(m.cwd); err == nil {
		m.cwd = abs
	}
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste x y pairs, one per line. '# name' starts a series, a blank line ends one. ctrl+s plots; Esc cancels."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// marker table setup
	m.tbl = table.New(table.WithFocused(true), table.WithColumns(markerColumns()))
	m.tbl.SetHeight(12)
	m.refreshDir()
	m.setData(series.Data{}, "")
	m.status = "plotmark ready"
	return m
}

// NewWithPath preloads a file's data at launch.
func NewWithPath(cfg *config.Config, log zerolog.Logger, path string) Model {
	m := New(cfg, log)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// chartArea is where the panels live in terminal cells; View and the
// mouse handling must agree on it.
func (m Model) chartArea() (x, y, w, h int) {
	contentWidth := max(10, m.width)
	sw := 0
	if m.showSidebar {
		sw = sidebarWidth + 1
	}
	w = max(10, contentWidth-sw-1)
	h = max(4, m.height-headerHeight-footerHeight)
	return sw, headerHeight, w, h
}

func (m *Model) relayout() {
	if m.chart == nil {
		return
	}
	m.chart.stack.Layout(m.chartArea())
}

// setData replaces the chart with one showing d.
func (m *Model) setData(d series.Data, label string) {
	if m.chart != nil {
		m.chart.close()
	}
	m.data = d
	m.chart = newChart(m.cfg, m.log, d)
	m.relayout()
	if label != "" {
		m.status = loadedStatus(label, d, m.chart.stack.Len())
	}
	if m.showTable {
		m.refreshTable()
	}
}
