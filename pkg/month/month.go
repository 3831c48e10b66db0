// Package month models calendar months and the "MM/YYYY" tokens used to
// exchange them.
package month

import "time"

// Month identifies a calendar month. Month is zero based (0 = January).
type Month struct {
	Year  int
	Month int
}

// New returns the month for year and a zero based month number.
func New(year, month int) Month {
	return Month{Year: year, Month: month}
}

// Of returns the month containing t.
func Of(t time.Time) Month {
	return Month{Year: t.Year(), Month: int(t.Month()) - 1}
}

// FromIndex is the inverse of Index.
func FromIndex(idx int) Month {
	year := idx / 12
	m := idx % 12
	if m < 0 {
		m += 12
		year--
	}
	return Month{Year: year, Month: m}
}

// Index linearizes the month as year*12+month so months compare as ints.
func (m Month) Index() int {
	return m.Year*12 + m.Month
}

// Valid reports whether the month number is within 0-11.
func (m Month) Valid() bool {
	return m.Month >= 0 && m.Month <= 11
}

// Add returns the month n calendar months away.
func (m Month) Add(n int) Month {
	return FromIndex(m.Index() + n)
}

// Compare returns -1, 0 or 1 when m is before, equal to or after o.
func (m Month) Compare(o Month) int {
	switch a, b := m.Index(), o.Index(); {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Before reports whether m is chronologically before o.
func (m Month) Before(o Month) bool { return m.Index() < o.Index() }

// After reports whether m is chronologically after o.
func (m Month) After(o Month) bool { return m.Index() > o.Index() }

// Equal reports whether both months are the same.
func (m Month) Equal(o Month) bool { return m.Index() == o.Index() }

// Time returns midnight UTC on the first day of the month.
func (m Month) Time() time.Time {
	return time.Date(m.Year, time.Month(m.Month+1), 1, 0, 0, 0, 0, time.UTC)
}

// String renders the canonical "MM/YYYY" token.
func (m Month) String() string {
	return Format(m.Month, m.Year)
}
