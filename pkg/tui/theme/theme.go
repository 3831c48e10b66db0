package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the month picker.
type Theme struct {
	Input  InputTheme
	Popup  PopupTheme
	Tiles  TileTheme
	Footer FooterTheme
}

// InputTheme styles the single line that shows the committed value.
type InputTheme struct {
	Value       lipgloss.Style
	Placeholder lipgloss.Style
	Indicator   lipgloss.Style
}

// PopupTheme frames the open calendar.
type PopupTheme struct {
	Frame      lipgloss.Style
	Year       lipgloss.Style
	YearFocus  lipgloss.Style
	ColumnGap  int
	TileWidth  int
	TileMargin int
}

// TileTheme styles month tiles by state.
type TileTheme struct {
	Normal   lipgloss.Style
	Disabled lipgloss.Style
	Selected lipgloss.Style
	InRange  lipgloss.Style
	Preview  lipgloss.Style
	Current  lipgloss.Style
	Cursor   lipgloss.Style
}

// FooterTheme styles the status line under the popup.
type FooterTheme struct {
	Status lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	year := lipgloss.NewStyle().Bold(true)

	return Theme{
		Input: InputTheme{
			Value:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
			Indicator:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		Popup: PopupTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Year:       year.Foreground(lipgloss.Color("245")),
			YearFocus:  year.Foreground(lipgloss.Color("212")),
			ColumnGap:  3,
			TileWidth:  5,
			TileMargin: 1,
		},
		Tiles: TileTheme{
			Normal:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
			Selected: lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")).Bold(true),
			InRange:  lipgloss.NewStyle().Background(lipgloss.Color("24")).Foreground(lipgloss.Color("15")),
			Preview:  lipgloss.NewStyle().Background(lipgloss.Color("238")).Foreground(lipgloss.Color("15")),
			Current:  lipgloss.NewStyle().Underline(true),
			Cursor:   lipgloss.NewStyle().Reverse(true),
		},
		Footer: FooterTheme{
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
	}
}
