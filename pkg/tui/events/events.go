// Package events defines the Bubble Tea messages exchanged between picker
// components and their hosts.
package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/google/uuid"

	"tableflip.dev/monthpick/pkg/picker"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// NewComponentID returns a fresh random component id.
func NewComponentID() ComponentID {
	return ComponentID(uuid.NewString())
}

// MonthChangeMsg is emitted when a picker commits or clears its selection.
type MonthChangeMsg struct {
	Component ComponentID
	Mode      picker.Mode
	Change    picker.Change
}

// Describe renders the change in a human-friendly format for logs.
func (m MonthChangeMsg) Describe() string {
	if m.Change.Cleared {
		return fmt.Sprintf(`mode:%q cleared`, m.Mode)
	}
	return fmt.Sprintf(`mode:%q tokens:%q`, m.Mode, m.Change.Tokens)
}

// MonthChangeCmd wraps a change as a command.
func MonthChangeCmd(component ComponentID, mode picker.Mode, change picker.Change) tea.Cmd {
	return func() tea.Msg {
		return MonthChangeMsg{Component: component, Mode: mode, Change: change}
	}
}

// PickerClosedMsg is emitted when the popup is dismissed without a commit.
// Discarded reports whether a half made range was thrown away.
type PickerClosedMsg struct {
	Component ComponentID
	Discarded bool
}

// Describe renders the close in a human-friendly format for logs.
func (m PickerClosedMsg) Describe() string {
	return fmt.Sprintf(`discarded:%t`, m.Discarded)
}

// PickerClosedCmd wraps a close as a command.
func PickerClosedCmd(component ComponentID, discarded bool) tea.Cmd {
	return func() tea.Msg {
		return PickerClosedMsg{Component: component, Discarded: discarded}
	}
}
