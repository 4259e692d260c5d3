package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	ZoomIn   key.Binding
	ZoomOut  key.Binding
	Rescale  key.Binding
	Next     key.Binding
	NudgeDn  key.Binding
	NudgeUp  key.Binding
	Movable  key.Binding
	Visible  key.Binding
	AddX     key.Binding
	AddY     key.Binding
	Sync     key.Binding
	Table    key.Binding
	PanDrag  key.Binding
	WheelZm  key.Binding
	Sidebar  key.Binding
	Open     key.Binding
	Paste    key.Binding
	Help     key.Binding
	Quit     key.Binding
	Render   key.Binding
	Cancel   key.Binding
	MoreHelp key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "pan up")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "pan down")),
		Left:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "pan left")),
		Right:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "pan right")),
		ZoomIn:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut:  key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "zoom out")),
		Rescale:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "fit data")),
		Next:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next line")),
		NudgeDn:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "nudge back")),
		NudgeUp:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "nudge fwd")),
		Movable:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "lock/unlock")),
		Visible:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "show/hide")),
		AddX:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "add x line")),
		AddY:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "add y line")),
		Sync:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sync with prev")),
		Table:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "markers")),
		PanDrag:  key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "drag pan")),
		WheelZm:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "wheel zoom")),
		Sidebar:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "files")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Paste:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paste")),
		Help:     key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "hide help")),
		MoreHelp: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Render:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "plot")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.NudgeDn, k.NudgeUp, k.Rescale, k.Sidebar, k.Paste, k.Table, k.MoreHelp, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.ZoomIn, k.ZoomOut, k.Rescale},
		{k.Next, k.NudgeDn, k.NudgeUp, k.Movable, k.Visible, k.Sync},
		{k.AddX, k.AddY, k.Table, k.PanDrag, k.WheelZm},
		{k.Sidebar, k.Open, k.Paste, k.Help, k.MoreHelp, k.Quit},
	}
}

// pasteKeys is the help shown while the paste editor is open.
type pasteKeys struct{ k keyMap }

func (p pasteKeys) ShortHelp() []key.Binding { return []key.Binding{p.k.Render, p.k.Cancel} }
