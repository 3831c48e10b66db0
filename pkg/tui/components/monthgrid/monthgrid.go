// Package monthgrid renders a year of month tiles as a 4x3 grid.
package monthgrid

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/monthpick/pkg/picker"
	"tableflip.dev/monthpick/pkg/tui/theme"
)

// PerRow is the number of month tiles on each grid row.
const PerRow = 3

// Column is one year column of the picker.
type Column struct {
	Year    int
	Tiles   []picker.Tile
	Focused bool
	// Cursor is the tile under the keyboard cursor, or -1 for none.
	Cursor int
}

// Render produces the multi-line grid for a column: a year header followed
// by rows of PerRow tiles.
func Render(col Column, th theme.Theme) string {
	tileWidth := th.Popup.TileWidth
	gap := strings.Repeat(" ", th.Popup.TileMargin)
	rowWidth := PerRow*tileWidth + (PerRow-1)*th.Popup.TileMargin

	lines := []string{renderHeader(col, th, rowWidth)}
	for start := 0; start < len(col.Tiles); start += PerRow {
		end := min(start+PerRow, len(col.Tiles))
		cells := make([]string, 0, PerRow)
		for i := start; i < end; i++ {
			cells = append(cells, renderTile(col.Tiles[i], i == col.Cursor, tileWidth, th.Tiles))
		}
		lines = append(lines, strings.Join(cells, gap))
	}
	return strings.Join(lines, "\n")
}

// RenderColumns lays several columns out side by side.
func RenderColumns(cols []Column, th theme.Theme) string {
	rendered := make([]string, 0, len(cols)*2)
	for i, c := range cols {
		if i > 0 {
			rendered = append(rendered, strings.Repeat(" ", th.Popup.ColumnGap))
		}
		rendered = append(rendered, Render(c, th))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func renderHeader(col Column, th theme.Theme, width int) string {
	style := th.Popup.Year
	if col.Focused {
		style = th.Popup.YearFocus
	}
	text := fmt.Sprintf("‹ %d ›", col.Year)
	return style.Render(center(text, width))
}

func renderTile(t picker.Tile, cursor bool, width int, th theme.TileTheme) string {
	style := th.Normal
	switch {
	case t.Selected:
		style = th.Selected
	case t.Preview:
		style = th.Preview
	case t.InRange:
		style = th.InRange
	case t.Disabled:
		style = th.Disabled
	}
	if t.Current {
		style = style.Inherit(th.Current)
	}
	if cursor {
		style = style.Inherit(th.Cursor)
	}
	return style.Render(center(t.Name, width))
}

// center pads s with spaces to width printable cells.
func center(s string, width int) string {
	w := ansi.PrintableRuneWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
