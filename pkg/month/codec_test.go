package month

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		month, year int
		want        string
	}{
		{0, 2025, "01/2025"},
		{2, 2025, "03/2025"},
		{11, 2024, "12/2024"},
		{5, 12345, "06/12345"},
		{8, 7, "09/7"},
	}
	for _, tt := range tests {
		if got := Format(tt.month, tt.year); got != tt.want {
			t.Fatalf("Format(%d, %d) = %q, want %q", tt.month, tt.year, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		token string
		want  Month
		ok    bool
	}{
		{"03/2025", Month{Year: 2025, Month: 2}, true},
		{"12/2024", Month{Year: 2024, Month: 11}, true},
		{"1/2030", Month{Year: 2030, Month: 0}, true},
		{"07/123456", Month{Year: 123456, Month: 6}, true},
		{"", Month{}, false},
		{"2025", Month{}, false},
		{"03/2025/01", Month{}, false},
		{"ab/2025", Month{}, false},
		{"03/20x5", Month{}, false},
		{"13/2025", Month{}, false},
		{"00/2025", Month{}, false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.token)
		if ok != tt.ok {
			t.Fatalf("Parse(%q) ok = %v, want %v", tt.token, ok, tt.ok)
		}
		if ok && got != tt.want {
			t.Fatalf("Parse(%q) = %+v, want %+v", tt.token, got, tt.want)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for year := -3; year <= 3000; year += 7 {
		for m := 0; m < 12; m++ {
			got, ok := Parse(Format(m, year))
			if !ok {
				t.Fatalf("round trip of %d/%d failed to parse", m, year)
			}
			if got != New(year, m) {
				t.Fatalf("round trip of %d/%d = %+v", m, year, got)
			}
		}
	}
}

func TestParseStrict(t *testing.T) {
	if _, err := ParseStrict("nope"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	m, err := ParseStrict("05/2025")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.String() != "05/2025" {
		t.Fatalf("unexpected month %s", m)
	}
}

func TestParseAllDropsMalformed(t *testing.T) {
	got := Tokens(ParseAll([]string{"01/2025", "bad", "02/2025"}))
	if len(got) != 2 || got[0] != "01/2025" || got[1] != "02/2025" {
		t.Fatalf("unexpected tokens: %v", got)
	}
	if ParseAll(nil) != nil {
		t.Fatalf("expected nil for nil input")
	}
}
