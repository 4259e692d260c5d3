package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"plotmark/internal/plot"
	"plotmark/internal/series"
)

// Keyboard view steps.
const (
	panFraction = 0.1
	zoomStep    = 1.2
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.relayout()
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-headerHeight-footerHeight-2)
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		if m.showTable && (msg.String() == "up" || msg.String() == "down") {
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		if cmd, done := m.handleKey(msg); done {
			return m, cmd
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
		if m.showTable {
			m.refreshTable()
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.pasteMode = false
		m.ta.Blur()
		m.status = "view mode"
		return m, nil
	case key.Matches(msg, m.keys.Render):
		text := strings.TrimSpace(m.ta.Value())
		if text == "" {
			m.status = "paste: empty"
			return m, nil
		}
		d, err := series.ParseText(text)
		if err != nil {
			m.status = "paste error: " + err.Error()
			return m, nil
		}
		m.selPath = ""
		m.setData(d, "paste")
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// handleKey runs global key commands. done is false when the key should
// still reach the sidebar list.
func (m *Model) handleKey(msg tea.KeyMsg) (cmd tea.Cmd, done bool) {
	c := m.chart
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit, true
	case key.Matches(msg, m.keys.Up):
		if m.showSidebar {
			return nil, false
		}
		c.pan(plot.AxisY, panFraction)
	case key.Matches(msg, m.keys.Down):
		if m.showSidebar {
			return nil, false
		}
		c.pan(plot.AxisY, -panFraction)
	case key.Matches(msg, m.keys.Left):
		c.pan(plot.AxisX, -panFraction)
	case key.Matches(msg, m.keys.Right):
		c.pan(plot.AxisX, panFraction)
	case key.Matches(msg, m.keys.ZoomIn):
		c.zoom(1 / zoomStep)
		m.status = "zoom in"
	case key.Matches(msg, m.keys.ZoomOut):
		c.zoom(zoomStep)
		m.status = "zoom out"
	case key.Matches(msg, m.keys.Rescale):
		c.rescale()
		m.status = "fit to data"
	case key.Matches(msg, m.keys.Next):
		if l := c.cycle(); l != nil {
			m.status = "selected " + describe(l)
		}
	case key.Matches(msg, m.keys.NudgeDn):
		m.report(c.nudge(-1), func() string { return "nudged " + describe(c.sel) })
	case key.Matches(msg, m.keys.NudgeUp):
		m.report(c.nudge(1), func() string { return "nudged " + describe(c.sel) })
	case key.Matches(msg, m.keys.Movable):
		m.report(c.toggleMovable(), func() string {
			return fmt.Sprintf("%s movable: %v", c.sel.Name(), c.sel.Movable())
		})
	case key.Matches(msg, m.keys.Visible):
		m.report(c.toggleVisible(), func() string {
			return fmt.Sprintf("%s visible: %v", c.sel.Name(), c.sel.Visible())
		})
	case key.Matches(msg, m.keys.AddX):
		m.status = "added " + describe(c.addLine(plot.AxisX))
	case key.Matches(msg, m.keys.AddY):
		m.status = "added " + describe(c.addLine(plot.AxisY))
	case key.Matches(msg, m.keys.Sync):
		n, err := c.syncWithPrevious()
		m.report(err, func() string {
			return fmt.Sprintf("%s synced with %s (%d lines)", c.sel.Name(), c.prev.Name(), n)
		})
	case key.Matches(msg, m.keys.PanDrag):
		m.status = fmt.Sprintf("drag pan: %v", c.toggleInteraction(plot.InteractRangeDrag))
	case key.Matches(msg, m.keys.WheelZm):
		m.status = fmt.Sprintf("wheel zoom: %v", c.toggleInteraction(plot.InteractRangeZoom))
	case key.Matches(msg, m.keys.Table):
		m.showTable = !m.showTable
		if m.showTable {
			m.refreshTable()
		}
	case key.Matches(msg, m.keys.Sidebar):
		m.showSidebar = !m.showSidebar
		m.relayout()
		if m.showSidebar {
			m.refreshDir()
			m.l.SetSize(sidebarWidth-2, m.height-headerHeight-footerHeight-2)
		}
	case key.Matches(msg, m.keys.Paste):
		m.pasteMode = true
		m.ta.SetValue("")
		m.ta.Focus()
		m.status = "paste mode"
	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
	case key.Matches(msg, m.keys.MoreHelp):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Open):
		if m.showSidebar {
			if it, ok := m.l.SelectedItem().(fileItem); ok {
				m.loadPath(it.path)
			}
		}
	default:
		return nil, false
	}
	if m.showTable {
		m.refreshTable()
	}
	return nil, true
}

// report shows err, or the success message when there is none.
func (m *Model) report(err error, ok func() string) {
	if err != nil {
		m.status = err.Error()
		return
	}
	m.status = ok()
}
