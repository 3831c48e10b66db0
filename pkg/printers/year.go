package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/monthpick/pkg/month"
	"tableflip.dev/monthpick/pkg/picker"
)

const cellWidth = len("Sep  ")

// PrintYear prints the twelve months of year as a 4x3 grid, styled by the
// picker's view of each month: faint when disabled, inverted when selected,
// highlighted inside a committed range and underlined for the current month.
func (pp *PrettyPrint) PrintYear(p *picker.Picker, year int) {
	w := pp.out()

	tf := color.New(color.FgWhite, color.Italic)
	title := fmt.Sprint(year)
	width := 3*cellWidth - 1
	mid := (width - len(title)) / 2
	_, _ = tf.Fprintf(w, "%s%s\n", strings.Repeat(" ", max(mid, 0)), title)

	for row := 0; row < 4; row++ {
		for col := 0; col < 3; col++ {
			t := p.Tile(month.New(year, row*3+col))
			name := t.Name + strings.Repeat(" ", max(cellWidth-1-len([]rune(t.Name)), 0))
			_, _ = tileColor(t).Fprint(w, name)
			if col < 2 {
				_, _ = fmt.Fprint(w, " ")
			}
		}
		_, _ = fmt.Fprint(w, "\n")
	}
	_, _ = fmt.Fprint(w, "\n")
}

// Legend explains the styles used by PrintYear.
func (pp *PrettyPrint) Legend() {
	w := pp.out()
	entries := []struct {
		tile picker.Tile
		text string
	}{
		{picker.Tile{}, "selectable"},
		{picker.Tile{Disabled: true}, "disabled"},
		{picker.Tile{Selected: true}, "selected"},
		{picker.Tile{InRange: true}, "in range"},
		{picker.Tile{Current: true}, "current month"},
	}
	for i, e := range entries {
		if i > 0 {
			_, _ = fmt.Fprint(w, "  ")
		}
		_, _ = tileColor(e.tile).Fprint(w, e.text)
	}
	_, _ = fmt.Fprint(w, "\n")
}

func tileColor(t picker.Tile) *color.Color {
	var attrs []color.Attribute
	switch {
	case t.Selected:
		attrs = append(attrs, color.ReverseVideo, color.Bold)
	case t.InRange:
		attrs = append(attrs, color.FgHiCyan, color.Bold)
	case t.Disabled:
		attrs = append(attrs, color.Faint, color.CrossedOut)
	default:
		attrs = append(attrs, color.FgHiWhite)
	}
	if t.Current {
		attrs = append(attrs, color.Underline)
	}
	return color.New(attrs...)
}
