package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up            key.Binding
	Down          key.Binding
	ExtendUp      key.Binding
	ExtendDown    key.Binding
	Toggle        key.Binding
	MoveUp        key.Binding
	MoveDown      key.Binding
	Clear         key.Binding
	Delete        key.Binding
	SortAll       key.Binding
	SortSelection key.Binding
	Save          key.Binding
	Parse         key.Binding
	Copy          key.Binding
	Help          key.Binding
	Quit          key.Binding
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
		ExtendUp: key.NewBinding(
			key.WithKeys("shift+up"),
			key.WithHelp("shift+↑", "extend up"),
		),
		ExtendDown: key.NewBinding(
			key.WithKeys("shift+down"),
			key.WithHelp("shift+↓", "extend down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K", "alt+up"),
			key.WithHelp("K", "move up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J", "alt+down"),
			key.WithHelp("J", "move down"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		SortAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "sort all"),
		),
		SortSelection: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort selection"),
		),
		Save: key.NewBinding(
			key.WithKeys("w", "ctrl+s"),
			key.WithHelp("w", "save"),
		),
		Parse: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "parse"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy citation"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Delete, k.SortAll, k.SortSelection, k.Save, k.Parse, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.ExtendUp, k.ExtendDown},
		{k.Toggle, k.MoveUp, k.MoveDown, k.Clear},
		{k.Delete, k.SortAll, k.SortSelection},
		{k.Save, k.Parse, k.Copy, k.Help, k.Quit},
	}
}
