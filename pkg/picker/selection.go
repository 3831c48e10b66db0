package picker

import (
	"tableflip.dev/monthpick/pkg/month"
)

// Selection is the committed state of a picker. It is one of Empty, Partial
// or Complete.
type Selection interface {
	isSelection()
}

// Empty means nothing is selected.
type Empty struct{}

// Partial means the first endpoint of a range has been chosen.
type Partial struct {
	From month.Month
}

// Complete is a committed selection with From not after To. Single pickers
// commit a Complete whose endpoints are equal.
type Complete struct {
	From month.Month
	To   month.Month
}

func (Empty) isSelection()    {}
func (Partial) isSelection()  {}
func (Complete) isSelection() {}

func complete(a, b month.Month) Complete {
	from, to := month.Ordered(a, b)
	return Complete{From: from, To: to}
}

// Months returns every month covered by the selection.
func (c Complete) Months() []month.Month {
	return month.Span(c.From, c.To)
}

// Contains reports whether m lies inside the selection.
func (c Complete) Contains(m month.Month) bool {
	return month.Within(m, c.From, c.To)
}
