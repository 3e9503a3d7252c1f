package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every binding of the viewer.
type keyMap struct {
	NewGraph  key.Binding
	NextStart key.Binding
	NextGoal  key.Binding
	Run       key.Binding
	Step      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NewGraph: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new graph"),
		),
		NextStart: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "next start"),
		),
		NextGoal: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "next goal"),
		),
		Run: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "run"),
		),
		Step: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "step"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Step, k.NewGraph, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Run, k.Step},
		{k.NewGraph, k.NextStart, k.NextGoal},
		{k.Help, k.Quit},
	}
}
