package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the gradient editor.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Add         key.Binding
	Remove      key.Binding
	Left        key.Binding
	Right       key.Binding
	FarLeft     key.Binding
	FarRight    key.Binding
	OpacityDown key.Binding
	OpacityUp   key.Binding
	EditColor   key.Binding
	Settle      key.Binding
	ToggleType  key.Binding
	AngleDown   key.Binding
	AngleUp     key.Binding
	ToggleShape key.Binding
	CenterLeft  key.Binding
	CenterRight key.Binding
	CenterUp    key.Binding
	CenterDown  key.Binding
	Copy        key.Binding
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

// DefaultKeyMap returns the default key bindings for the editor.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous stop"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next stop"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add stop"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "d"),
			key.WithHelp("x", "remove stop"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/→", "position ±1"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "position +1"),
		),
		FarLeft: key.NewBinding(
			key.WithKeys("shift+left"),
			key.WithHelp("shift+←/→", "position ±10"),
		),
		FarRight: key.NewBinding(
			key.WithKeys("shift+right"),
			key.WithHelp("shift+→", "position +10"),
		),
		OpacityDown: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[/]", "opacity ±5%"),
		),
		OpacityUp: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "opacity +5%"),
		),
		EditColor: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit color"),
		),
		Settle: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply order"),
		),
		ToggleType: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "linear/radial"),
		),
		AngleDown: key.NewBinding(
			key.WithKeys(","),
			key.WithHelp(",/.", "angle ±5°"),
		),
		AngleUp: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "angle +5°"),
		),
		ToggleShape: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "circle/ellipse"),
		),
		CenterLeft: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H/L", "center x ±5%"),
		),
		CenterRight: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "center x +5%"),
		),
		CenterUp: key.NewBinding(
			key.WithKeys("K"),
			key.WithHelp("K/J", "center y ±5%"),
		),
		CenterDown: key.NewBinding(
			key.WithKeys("J"),
			key.WithHelp("J", "center y +5%"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy css"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the one-line help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Remove, k.Left, k.EditColor, k.Copy, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help. Paired keys
// (left/right, [/]) are listed once.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Add, k.Remove, k.Settle},
		{k.Left, k.FarLeft, k.OpacityDown, k.EditColor},
		{k.ToggleType, k.AngleDown, k.ToggleShape, k.CenterLeft, k.CenterUp},
		{k.Copy, k.Help, k.Quit, k.ForceQuit},
	}
}
