package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	UpDown  key.Binding
	Visual  key.Binding
	Menu    key.Binding
	Search  key.Binding
	NextHit key.Binding
	Theme   key.Binding
	Mode    key.Binding
	Open    key.Binding
	Reload  key.Binding
	Quit    key.Binding
	Enter   key.Binding
	Close   key.Binding
	Dirac   key.Binding
	Forget  key.Binding
	ClearHi key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		UpDown:  key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "move")),
		Visual:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "select range")),
		Menu:    key.NewBinding(key.WithKeys("enter", "m"), key.WithHelp("enter", "recolor menu")),
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		NextHit: key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n/N", "next/prev match")),
		Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Mode:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "spinor/MO mode")),
		Open:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open file")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Dirac:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "open as DIRAC output")),
		Forget:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "forget recent")),
		ClearHi: key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "clear history")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.UpDown, k.Visual, k.Menu, k.Search, k.Theme, k.Open, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.UpDown, k.Visual, k.Menu, k.Search, k.NextHit},
		{k.Theme, k.Mode, k.Open, k.Reload, k.Quit},
	}
}

type pickerKeyMap struct {
	keyMap
}

func (k pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.UpDown, k.Enter, k.Dirac, k.Forget, k.Close, k.Quit}
}

func (k pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.UpDown, k.Enter, k.Dirac, k.Forget, k.ClearHi, k.Close, k.Quit}}
}
