package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit        key.Binding
	ForceQuit   key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	Filter      key.Binding
	ClearFilter key.Binding
	Refresh     key.Binding
	Credits     key.Binding
	Open        key.Binding
	Back        key.Binding
	Confirm     key.Binding
	Cancel      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
		NextTab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch tab")),
		PrevTab:     key.NewBinding(key.WithKeys("shift+tab")),
		Filter:      key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		ClearFilter: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filter")),
		Refresh:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Credits:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "credits")),
		Open:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Back:        key.NewBinding(key.WithKeys("esc", "backspace", "q"), key.WithHelp("esc", "back")),
		Confirm:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "ok")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// listKeys are appended to the list's own help.
func (k keyMap) listKeys() []key.Binding {
	return []key.Binding{k.Open, k.Filter, k.ClearFilter, k.NextTab, k.Refresh, k.Credits}
}
