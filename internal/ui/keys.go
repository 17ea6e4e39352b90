package ui

import (
	"github.com/atomicstack/burrow/internal/format/table"
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the global bindings shown in the footer and the Keys notice.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	NextLink key.Binding
	PrevLink key.Binding
	Select   key.Binding
	OpenURL  key.Binding
	Back     key.Binding
	SaveAs   key.Binding
	Bookmark key.Binding
	Copy     key.Binding
	Filter   key.Binding
	Pane     key.Binding
	Menubar  key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", " "),
			key.WithHelp("pgdn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first line"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last line"),
		),
		NextLink: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next link"),
		),
		PrevLink: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "previous link"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		OpenURL: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to URL"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "backspace"),
			key.WithHelp("b", "back"),
		),
		SaveAs: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save page"),
		),
		Bookmark: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "bookmark"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy address"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Pane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Menubar: key.NewBinding(
			key.WithKeys("esc", "f10"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.OpenURL, k.Back, k.SaveAs, k.Filter, k.Menubar, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End, k.NextLink, k.PrevLink},
		{k.Select, k.OpenURL, k.Back, k.SaveAs, k.Bookmark, k.Copy},
		{k.Filter, k.Pane, k.Menubar, k.Quit},
	}
}

func (m *Model) keyHelpLines() []string {
	rows := [][]string{}
	for _, group := range m.keys.FullHelp() {
		for _, b := range group {
			h := b.Help()
			rows = append(rows, []string{h.Key, h.Desc})
		}
	}
	return table.Format(rows, nil)
}
