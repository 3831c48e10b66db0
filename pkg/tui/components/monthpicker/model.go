// Package monthpicker hosts a picker.Picker inside a Bubble Tea model.
package monthpicker

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/monthpick/pkg/month"
	"tableflip.dev/monthpick/pkg/picker"
	"tableflip.dev/monthpick/pkg/tui/components/monthgrid"
	"tableflip.dev/monthpick/pkg/tui/events"
	"tableflip.dev/monthpick/pkg/tui/theme"
)

// Options configures the component.
type Options struct {
	ID          events.ComponentID
	Picker      picker.Options
	Theme       *theme.Theme
	Placeholder string
	// QuitOnCommit ends the program after the first committed selection.
	QuitOnCommit bool
	// StartOpen shows the calendar immediately.
	StartOpen bool
}

// Model renders a month picker and translates keys into picker operations.
type Model struct {
	id          events.ComponentID
	picker      *picker.Picker
	theme       theme.Theme
	keys        KeyMap
	help        help.Model
	placeholder string

	quitOnCommit bool
	quitting     bool

	col    int
	cursor int

	pending []picker.Change
	last    *picker.Change

	width  int
	height int
}

// New constructs the component. Any OnChange in opts.Picker is still called.
func New(opts Options) *Model {
	m := &Model{
		id:           opts.ID,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		placeholder:  opts.Placeholder,
		quitOnCommit: opts.QuitOnCommit,
	}
	if m.id == "" {
		m.id = events.NewComponentID()
	}
	if opts.Theme != nil {
		m.theme = *opts.Theme
	} else {
		m.theme = theme.Default()
	}
	if m.placeholder == "" {
		m.placeholder = "Pick month"
		if opts.Picker.Mode == picker.Range {
			m.placeholder = "Pick month range"
		}
	}

	pickerOpts := opts.Picker
	external := pickerOpts.OnChange
	pickerOpts.OnChange = func(c picker.Change) {
		m.pending = append(m.pending, c)
		m.last = &c
		if external != nil {
			external(c)
		}
	}
	m.picker = picker.New(pickerOpts)
	m.resetCursor()
	if opts.StartOpen {
		m.picker.Open()
	}
	return m
}

// ID returns the component id used on emitted events.
func (m *Model) ID() events.ComponentID { return m.id }

// Picker exposes the underlying selection engine.
func (m *Model) Picker() *picker.Picker { return m.picker }

// Result returns the last committed or cleared change.
func (m *Model) Result() (picker.Change, bool) {
	if m.last == nil {
		return picker.Change{}, false
	}
	return *m.last, true
}

// Cursor returns the month under the keyboard cursor.
func (m *Model) Cursor() month.Month {
	return month.New(m.picker.View().Year(m.col), m.cursor)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles key presses and window sizing.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyPressMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	cmds = append(cmds, m.flush()...)
	if m.quitting {
		cmds = append(cmds, tea.Quit)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return nil
	case key.Matches(msg, m.keys.Clear):
		m.picker.Clear()
		m.resetCursor()
		return nil
	}

	if !m.picker.IsOpen() {
		switch {
		case key.Matches(msg, m.keys.Select):
			m.picker.Open()
			m.hover()
		case key.Matches(msg, m.keys.Close):
			m.quitting = true
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Close):
		_, partial := m.picker.Selection().(picker.Partial)
		m.picker.Close()
		return events.PickerClosedCmd(m.id, partial)
	case key.Matches(msg, m.keys.Select):
		m.picker.Select(m.Cursor())
		if !m.picker.IsOpen() && m.quitOnCommit {
			m.quitting = true
		}
		return nil
	case key.Matches(msg, m.keys.Left):
		m.move(-1)
	case key.Matches(msg, m.keys.Right):
		m.move(1)
	case key.Matches(msg, m.keys.Up):
		if m.cursor-monthgrid.PerRow >= 0 {
			m.cursor -= monthgrid.PerRow
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor+monthgrid.PerRow < 12 {
			m.cursor += monthgrid.PerRow
		}
	case key.Matches(msg, m.keys.Column):
		m.col = (m.col + 1) % m.picker.View().Columns()
	case key.Matches(msg, m.keys.PrevYear):
		m.picker.PrevYear(m.col)
	case key.Matches(msg, m.keys.NextYear):
		m.picker.NextYear(m.col)
	default:
		return nil
	}
	m.hover()
	return nil
}

// move shifts the cursor by delta months, spilling into the neighbouring
// column or year at the edges.
func (m *Model) move(delta int) {
	next := m.cursor + delta
	cols := m.picker.View().Columns()
	switch {
	case next < 0:
		if m.col > 0 {
			m.col--
		} else {
			m.picker.PrevYear(m.col)
		}
		m.cursor = 11
	case next > 11:
		if m.col < cols-1 {
			m.col++
		} else {
			m.picker.NextYear(m.col)
		}
		m.cursor = 0
	default:
		m.cursor = next
	}
}

func (m *Model) hover() {
	m.picker.Hover(m.Cursor())
}

func (m *Model) resetCursor() {
	m.col = 0
	m.cursor = 0
	if c, ok := m.picker.Selection().(picker.Complete); ok {
		for i, y := range m.picker.Years() {
			if y == c.From.Year {
				m.col, m.cursor = i, c.From.Month
				return
			}
		}
	}
	now := m.picker.Current()
	for i, y := range m.picker.Years() {
		if y == now.Year {
			m.col, m.cursor = i, now.Month
			return
		}
	}
}

func (m *Model) flush() []tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(m.pending))
	for _, c := range m.pending {
		cmds = append(cmds, events.MonthChangeCmd(m.id, m.picker.Mode(), c))
	}
	m.pending = nil
	return cmds
}

// View renders the input line and, when open, the calendar popup.
func (m *Model) View() (string, *tea.Cursor) {
	return m.Render(), nil
}

// Render returns the component as a string.
func (m *Model) Render() string {
	lines := []string{m.renderInput()}
	if m.picker.IsOpen() {
		lines = append(lines, m.theme.Popup.Frame.Render(m.renderColumns()))
	}
	lines = append(lines, m.help.View(m.keys))
	return strings.Join(lines, "\n")
}

func (m *Model) renderInput() string {
	indicator := m.theme.Input.Indicator.Render("▾")
	if m.picker.IsOpen() {
		indicator = m.theme.Input.Indicator.Render("▴")
	}
	label := m.picker.Label()
	if label == "" {
		return lipgloss.JoinHorizontal(lipgloss.Top, m.theme.Input.Placeholder.Render(m.placeholder), " ", indicator)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.theme.Input.Value.Render(label), " ", indicator)
}

func (m *Model) renderColumns() string {
	view := m.picker.View()
	cols := make([]monthgrid.Column, 0, view.Columns())
	for i := 0; i < view.Columns(); i++ {
		c := monthgrid.Column{
			Year:    view.Year(i),
			Tiles:   m.picker.Column(i),
			Focused: i == m.col,
			Cursor:  -1,
		}
		if i == m.col {
			c.Cursor = m.cursor
		}
		cols = append(cols, c)
	}
	return monthgrid.RenderColumns(cols, m.theme)
}
