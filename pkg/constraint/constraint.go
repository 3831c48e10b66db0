// Package constraint decides which months a picker may select.
package constraint

import (
	"tableflip.dev/monthpick/pkg/month"
)

// Reason names the check that rejected a month.
type Reason int

const (
	// ReasonNone means the month is selectable.
	ReasonNone Reason = iota
	// ReasonDisallowed means the month is on the disallow-list.
	ReasonDisallowed
	// ReasonNotAllowed means an allow-list exists and the month is not on it.
	ReasonNotAllowed
	// ReasonBeforeMin means the month precedes the lower bound.
	ReasonBeforeMin
	// ReasonAfterMax means the month follows the upper bound.
	ReasonAfterMax
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "selectable"
	case ReasonDisallowed:
		return "disallowed"
	case ReasonNotAllowed:
		return "not in allow-list"
	case ReasonBeforeMin:
		return "before min"
	case ReasonAfterMax:
		return "after max"
	}
	return "unknown"
}

// Set holds the constraints applied to candidate months. A nil Allowed means
// every month passes the allow-list check; a non-nil empty Allowed lets
// nothing through. Min and Max are inclusive.
type Set struct {
	Disallowed []month.Month
	Allowed    []month.Month
	Min        *month.Month
	Max        *month.Month
}

// Tokens is the "MM/YYYY" form of a Set, as found in configuration.
type Tokens struct {
	Disallowed []string
	Allowed    []string
	Min        string
	Max        string
}

// FromTokens builds a Set. Malformed bounds are ignored, malformed list
// entries never match anything.
func FromTokens(t Tokens) Set {
	s := Set{
		Disallowed: month.ParseAll(t.Disallowed),
		Allowed:    month.ParseAll(t.Allowed),
	}
	if m, ok := month.Parse(t.Min); ok {
		s.Min = &m
	}
	if m, ok := month.Parse(t.Max); ok {
		s.Max = &m
	}
	return s
}

// Disabled reports whether m cannot be selected.
func (s Set) Disabled(m month.Month) bool {
	return s.Reason(m) != ReasonNone
}

// Selectable reports whether m can be selected.
func (s Set) Selectable(m month.Month) bool {
	return s.Reason(m) == ReasonNone
}

// Reason returns the first failing check, in the order disallow-list,
// allow-list, min, max.
func (s Set) Reason(m month.Month) Reason {
	if contains(s.Disallowed, m) {
		return ReasonDisallowed
	}
	if s.Allowed != nil && !contains(s.Allowed, m) {
		return ReasonNotAllowed
	}
	if s.Min != nil && m.Before(*s.Min) {
		return ReasonBeforeMin
	}
	if s.Max != nil && m.After(*s.Max) {
		return ReasonAfterMax
	}
	return ReasonNone
}

// IsZero reports whether the set constrains nothing.
func (s Set) IsZero() bool {
	return len(s.Disallowed) == 0 && s.Allowed == nil && s.Min == nil && s.Max == nil
}

// Tokens renders the set back to its "MM/YYYY" form.
func (s Set) Tokens() Tokens {
	t := Tokens{
		Disallowed: month.Tokens(s.Disallowed),
		Allowed:    month.Tokens(s.Allowed),
	}
	if s.Min != nil {
		t.Min = s.Min.String()
	}
	if s.Max != nil {
		t.Max = s.Max.String()
	}
	return t
}

func contains(list []month.Month, m month.Month) bool {
	for _, v := range list {
		if v.Equal(m) {
			return true
		}
	}
	return false
}
