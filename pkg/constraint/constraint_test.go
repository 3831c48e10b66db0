package constraint

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tableflip.dev/monthpick/pkg/month"
)

func mustMonth(t *testing.T, token string) month.Month {
	t.Helper()
	m, ok := month.Parse(token)
	require.True(t, ok, "parse %q", token)
	return m
}

func ptr(m month.Month) *month.Month { return &m }

func TestEmptySetAllowsEverything(t *testing.T) {
	var s Set
	require.True(t, s.IsZero())
	for i := 0; i < 36; i++ {
		require.True(t, s.Selectable(month.New(2024, 0).Add(i)))
	}
}

func TestMinMaxInclusive(t *testing.T) {
	s := Set{
		Min: ptr(mustMonth(t, "01/2025")),
		Max: ptr(mustMonth(t, "06/2025")),
	}
	require.Equal(t, ReasonBeforeMin, s.Reason(mustMonth(t, "12/2024")))
	require.False(t, s.Disabled(mustMonth(t, "01/2025")))
	require.False(t, s.Disabled(mustMonth(t, "06/2025")))
	require.Equal(t, ReasonAfterMax, s.Reason(mustMonth(t, "07/2025")))
}

func TestDisallowedAlwaysWins(t *testing.T) {
	blocked := mustMonth(t, "03/2025")
	sets := []Set{
		{Disallowed: []month.Month{blocked}},
		{Disallowed: []month.Month{blocked}, Allowed: []month.Month{blocked}},
		{Disallowed: []month.Month{blocked}, Min: ptr(mustMonth(t, "01/2025")), Max: ptr(mustMonth(t, "12/2025"))},
	}
	for _, s := range sets {
		require.True(t, s.Disabled(blocked))
		require.Equal(t, ReasonDisallowed, s.Reason(blocked))
	}
}

func TestAllowListExcludesOthersWithinBounds(t *testing.T) {
	s := Set{
		Allowed: []month.Month{mustMonth(t, "02/2025"), mustMonth(t, "04/2025")},
		Min:     ptr(mustMonth(t, "01/2025")),
		Max:     ptr(mustMonth(t, "12/2025")),
	}
	for i := 0; i < 12; i++ {
		m := month.New(2025, i)
		want := m.Month == 1 || m.Month == 3
		require.Equal(t, want, s.Selectable(m), "month %s", m)
	}
	require.Equal(t, ReasonNotAllowed, s.Reason(mustMonth(t, "03/2025")))
}

func TestEmptyAllowListSelectsNothing(t *testing.T) {
	s := Set{Allowed: []month.Month{}}
	require.False(t, s.IsZero())
	require.True(t, s.Disabled(mustMonth(t, "01/2025")))
}

func TestFromTokens(t *testing.T) {
	s := FromTokens(Tokens{
		Disallowed: []string{"05/2025", "garbage"},
		Allowed:    []string{"bad"},
		Min:        "not-a-month",
		Max:        "08/2025",
	})
	require.Len(t, s.Disallowed, 1)
	require.NotNil(t, s.Allowed)
	require.Empty(t, s.Allowed)
	require.Nil(t, s.Min)
	require.NotNil(t, s.Max)
	require.Equal(t, "08/2025", s.Max.String())

	// Malformed allow-list entries match nothing, but the list still applies.
	require.Equal(t, ReasonNotAllowed, s.Reason(mustMonth(t, "01/2025")))

	back := s.Tokens()
	require.Equal(t, []string{"05/2025"}, back.Disallowed)
	require.Equal(t, "08/2025", back.Max)
	require.Empty(t, back.Min)
}

func TestReasonString(t *testing.T) {
	require.Equal(t, "selectable", ReasonNone.String())
	require.Equal(t, "before min", ReasonBeforeMin.String())
	require.Equal(t, "unknown", Reason(42).String())
}
