package month

// Span returns every month from the earlier of a and b to the later one,
// inclusive and ascending. The endpoints may be given in either order.
func Span(a, b Month) []Month {
	lo, hi := a.Index(), b.Index()
	if lo > hi {
		lo, hi = hi, lo
	}
	out := make([]Month, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, FromIndex(i))
	}
	return out
}

// SpanTokens is Span rendered as "MM/YYYY" tokens.
func SpanTokens(a, b Month) []string {
	return Tokens(Span(a, b))
}

// Within reports whether m lies between a and b inclusive, in either order.
func Within(m, a, b Month) bool {
	lo, hi := a.Index(), b.Index()
	if lo > hi {
		lo, hi = hi, lo
	}
	idx := m.Index()
	return idx >= lo && idx <= hi
}

// Ordered returns a and b sorted chronologically.
func Ordered(a, b Month) (Month, Month) {
	if b.Before(a) {
		return b, a
	}
	return a, b
}
