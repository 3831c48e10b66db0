package monthpicker

import "github.com/charmbracelet/bubbles/v2/key"

// KeyMap lists the bindings understood by the picker.
type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Column   key.Binding
	PrevYear key.Binding
	NextYear key.Binding
	Select   key.Binding
	Clear    key.Binding
	Close    key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev month")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next month")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Column:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch year")),
		PrevYear: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev year")),
		NextYear: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next year")),
		Select:   key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("enter", "select")),
		Clear:    key.NewBinding(key.WithKeys("c", "backspace"), key.WithHelp("c", "clear")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.PrevYear, k.NextYear, k.Clear, k.Close, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Column, k.PrevYear, k.NextYear},
		{k.Select, k.Clear, k.Close, k.Quit},
	}
}
