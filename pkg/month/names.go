package month

import (
	"errors"
	"fmt"
	"strings"
)

// Locale selects the language used for month names.
type Locale string

const (
	// English month names.
	English Locale = "en"
	// German month names.
	German Locale = "de"

	// DefaultLocale is used when no locale is configured.
	DefaultLocale = German
)

// ErrUnknownLocale is returned by ParseLocale for unsupported locales.
var ErrUnknownLocale = errors.New("unknown locale")

var shortNames = map[Locale][12]string{
	English: {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	German:  {"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
}

// Locales lists the supported locales.
func Locales() []Locale {
	return []Locale{English, German}
}

// ParseLocale maps a user supplied name ("en", "DE", "en-US") to a Locale.
// An empty name yields DefaultLocale.
func ParseLocale(name string) (Locale, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultLocale, nil
	}
	if i := strings.IndexAny(name, "-_"); i > 0 {
		name = name[:i]
	}
	l := Locale(name)
	if _, ok := shortNames[l]; !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownLocale, name)
	}
	return l, nil
}

// ShortNames returns the abbreviated month names, January first. Unknown
// locales fall back to DefaultLocale.
func ShortNames(l Locale) [12]string {
	if names, ok := shortNames[l]; ok {
		return names
	}
	return shortNames[DefaultLocale]
}

// ShortName returns the abbreviated name of m's month.
func ShortName(m Month, l Locale) string {
	if !m.Valid() {
		return ""
	}
	return ShortNames(l)[m.Month]
}

// Label renders a month for display, for example "Mar 2025".
func Label(m Month, l Locale) string {
	return fmt.Sprintf("%s %d", ShortName(m, l), m.Year)
}
