package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sdeming/dropjack-sub000/internal/core"
)

// KeyMap binds keys to game actions.
type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	SoftDrop key.Binding
	HardDrop key.Binding
	Confirm  key.Binding
	Back     key.Binding
	Pause    key.Binding
	Yes      key.Binding
	No       key.Binding
	Erase    key.Binding
	Quit     key.Binding

	// ForceQuit leaves immediately from any screen.
	ForceQuit key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "mode"),
		),
		SoftDrop: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "soft drop"),
		),
		HardDrop: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "hard drop"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "no"),
		),
		Erase: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "erase"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
	}
}

// ShortHelp returns the bindings shown in the help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.SoftDrop, k.HardDrop, k.Pause, k.Quit}
}

// FullHelp returns every binding, grouped.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.SoftDrop, k.HardDrop},
		{k.Confirm, k.Back, k.Pause, k.Erase},
		{k.Yes, k.No, k.Quit, k.ForceQuit},
	}
}

// actions returns each binding with the action it triggers.
func (k KeyMap) actions() []struct {
	binding key.Binding
	action  core.Action
} {
	return []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Up, core.ActionUp},
		{k.SoftDrop, core.ActionDown},
		{k.HardDrop, core.ActionDrop},
		{k.Confirm, core.ActionConfirm},
		{k.Back, core.ActionBack},
		{k.Pause, core.ActionPause},
		{k.Yes, core.ActionYes},
		{k.No, core.ActionNo},
		{k.Erase, core.ActionErase},
		{k.Quit, core.ActionQuit},
	}
}

// Apply records msg in frame: the matching actions plus any typed letters,
// which the initials prompt reads. It reports whether msg is a force quit.
func (k KeyMap) Apply(msg tea.KeyMsg, frame *core.InputFrame) bool {
	if key.Matches(msg, k.ForceQuit) {
		return true
	}
	for _, a := range k.actions() {
		if key.Matches(msg, a.binding) {
			frame.Set(a.action)
		}
	}
	if msg.Type == tea.KeyRunes && !msg.Alt {
		for _, r := range msg.Runes {
			frame.AddRune(r)
		}
	}
	return false
}
