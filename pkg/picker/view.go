package picker

// View holds the year shown by each calendar column. Single pickers have
// one column, range pickers two; for two columns the right year is always
// greater than the left one.
type View struct {
	years []int
}

func newView(mode Mode, left, right int) View {
	if mode == Range {
		v := View{years: []int{left, right}}
		v.clamp(1)
		return v
	}
	return View{years: []int{left}}
}

// Columns returns the number of year columns.
func (v View) Columns() int { return len(v.years) }

// Year returns the year shown in column col, or 0 when col is out of range.
func (v View) Year(col int) int {
	if col < 0 || col >= len(v.years) {
		return 0
	}
	return v.years[col]
}

// Years returns a copy of the displayed years, left to right.
func (v View) Years() []int {
	return append([]int(nil), v.years...)
}

func (v *View) set(col, year int) bool {
	if col < 0 || col >= len(v.years) {
		return false
	}
	v.years[col] = year
	v.clamp(col)
	return true
}

// clamp restores right > left, keeping the column that was just moved as
// close as possible to the requested year.
func (v *View) clamp(col int) {
	if len(v.years) != 2 {
		return
	}
	if col == 0 {
		v.years[0] = min(v.years[0], v.years[1]-1)
		return
	}
	v.years[1] = max(v.years[1], v.years[0]+1)
}
