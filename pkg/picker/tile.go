package picker

import (
	"tableflip.dev/monthpick/pkg/month"
)

// Tile describes how a single month should be presented.
type Tile struct {
	Month month.Month
	Name  string

	Disabled bool
	// Selected marks a range endpoint, the pending first endpoint, or the
	// single selected month.
	Selected bool
	// InRange marks months inside a committed selection.
	InRange bool
	// Preview marks months inside the hover preview.
	Preview bool
	// Current marks the month containing Now.
	Current bool
}

// Tile computes the presentation state of m. Constraints are evaluated on
// every call.
func (p *Picker) Tile(m month.Month) Tile {
	t := Tile{
		Month:    m,
		Name:     month.ShortName(m, p.locale),
		Disabled: p.constraints.Disabled(m),
		Current:  p.Current().Equal(m),
	}

	switch s := p.selection.(type) {
	case Partial:
		t.Selected = s.From.Equal(m)
		if p.hover != nil && !p.hover.Equal(s.From) {
			t.Preview = month.Within(m, s.From, *p.hover)
		}
	case Complete:
		t.Selected = s.From.Equal(m) || s.To.Equal(m)
		t.InRange = s.Contains(m)
	}
	return t
}

// Column returns the twelve tiles of the year shown in column col.
func (p *Picker) Column(col int) []Tile {
	if col < 0 || col >= p.view.Columns() {
		return nil
	}
	year := p.view.Year(col)
	tiles := make([]Tile, 12)
	for i := range tiles {
		tiles[i] = p.Tile(month.New(year, i))
	}
	return tiles
}
