package month

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidToken is returned by ParseStrict for tokens that are not "MM/YYYY".
var ErrInvalidToken = errors.New("invalid month token")

// Format renders a zero based month and a year as "MM/YYYY". The month is
// written one based and zero padded; the year is written as-is.
func Format(month, year int) string {
	return fmt.Sprintf("%02d/%d", month+1, year)
}

// Parse reads a "MM/YYYY" token. It reports false when the token does not
// have exactly two integer parts or the month is not 1-12.
func Parse(token string) (Month, bool) {
	parts := strings.Split(token, "/")
	if len(parts) != 2 {
		return Month{}, false
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Month{}, false
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Month{}, false
	}
	if m < 1 || m > 12 {
		return Month{}, false
	}
	return Month{Year: y, Month: m - 1}, true
}

// ParseStrict is Parse for callers that want an error, such as CLI arguments.
func ParseStrict(token string) (Month, error) {
	m, ok := Parse(token)
	if !ok {
		return Month{}, fmt.Errorf("%w %q (expected MM/YYYY)", ErrInvalidToken, token)
	}
	return m, nil
}

// ParseAll parses every token, dropping the malformed ones.
func ParseAll(tokens []string) []Month {
	if tokens == nil {
		return nil
	}
	out := make([]Month, 0, len(tokens))
	for _, t := range tokens {
		if m, ok := Parse(t); ok {
			out = append(out, m)
		}
	}
	return out
}

// Tokens formats each month as "MM/YYYY".
func Tokens(months []Month) []string {
	if months == nil {
		return nil
	}
	out := make([]string, len(months))
	for i, m := range months {
		out[i] = m.String()
	}
	return out
}
