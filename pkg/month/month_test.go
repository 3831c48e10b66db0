package month

import (
	"testing"
	"time"
)

func mustTime(t *testing.T, v string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, v)
	if err != nil {
		t.Fatalf("parse %q: %v", v, err)
	}
	return ts
}

func TestCompare(t *testing.T) {
	a := New(2024, 11)
	b := New(2025, 0)
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Fatalf("unexpected compare results")
	}
	if !a.Before(b) || !b.After(a) || !a.Equal(New(2024, 11)) {
		t.Fatalf("unexpected ordering helpers")
	}
	if b.Index()-a.Index() != 1 {
		t.Fatalf("expected adjacent indices")
	}
}

func TestAdd(t *testing.T) {
	m := New(2025, 0)
	if got := m.Add(-1); got != New(2024, 11) {
		t.Fatalf("Add(-1) = %+v", got)
	}
	if got := m.Add(25); got != New(2027, 1) {
		t.Fatalf("Add(25) = %+v", got)
	}
}
