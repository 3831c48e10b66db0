// Package picker implements the month and month-range selection engine.
//
// A Picker owns a Selection (Empty, Partial or Complete), a hover preview
// and the years shown by its calendar columns. Everything is driven by
// explicit method calls from a host UI; nothing runs in the background and
// a Picker must not be shared between goroutines.
package picker

import (
	"io"
	"log"
	"strings"
	"time"

	"tableflip.dev/monthpick/pkg/constraint"
	"tableflip.dev/monthpick/pkg/month"
)

// Mode is the cardinality of a picker.
type Mode int

const (
	// Single pickers commit one month per selection.
	Single Mode = iota
	// Range pickers commit an inclusive span chosen in two steps.
	Range
)

func (m Mode) String() string {
	if m == Range {
		return "range"
	}
	return "single"
}

// Logger receives diagnostic output. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...any)
}

// Change is delivered to OnChange whenever a selection is committed or
// cleared. Tokens holds one token for single pickers and the full inclusive
// span for range pickers.
type Change struct {
	Tokens  []string
	Cleared bool
}

func (c Change) String() string {
	if c.Cleared {
		return "cleared"
	}
	return strings.Join(c.Tokens, ",")
}

// Options configures a Picker.
type Options struct {
	Mode        Mode
	Locale      month.Locale
	Constraints constraint.Set

	// Default seeds the selection: one token for single pickers, or the
	// first and last month of a range. Unparseable defaults are ignored.
	Default []string

	// Now defaults to time.Now.
	Now func() time.Time

	OnChange func(Change)
	Logger   Logger
}

// Picker is the selection state machine.
type Picker struct {
	mode        Mode
	locale      month.Locale
	constraints constraint.Set
	now         func() time.Time
	onChange    func(Change)
	logger      Logger

	selection Selection
	hover     *month.Month
	view      View
	open      bool
}

// New creates a picker, seeding the selection from opts.Default.
func New(opts Options) *Picker {
	p := &Picker{
		mode:        opts.Mode,
		locale:      opts.Locale,
		constraints: opts.Constraints,
		now:         opts.Now,
		onChange:    opts.OnChange,
		logger:      opts.Logger,
		selection:   Empty{},
	}
	if p.locale == "" {
		p.locale = month.DefaultLocale
	}
	if p.now == nil {
		p.now = time.Now
	}
	if p.logger == nil {
		p.logger = log.New(io.Discard, "", 0)
	}
	p.seed(opts.Default)
	return p
}

func (p *Picker) seed(defaults []string) {
	p.view = p.resetView()
	if len(defaults) == 0 {
		return
	}

	if p.mode == Single {
		if m, ok := month.Parse(defaults[0]); ok {
			p.selection = complete(m, m)
		}
		return
	}

	from, okFrom := month.Parse(defaults[0])
	to, okTo := month.Parse(defaults[len(defaults)-1])
	if !okFrom || !okTo {
		p.logger.Printf("picker: ignoring unparseable default range %v", defaults)
		return
	}
	c := complete(from, to)
	p.selection = c
	right := c.To.Year
	if right <= c.From.Year {
		right = c.From.Year + 1
	}
	p.view = newView(Range, c.From.Year, right)
}

func (p *Picker) currentYear() int {
	return p.now().Year()
}

func (p *Picker) resetView() View {
	year := p.currentYear()
	if p.mode == Range {
		return newView(Range, year-1, year)
	}
	return newView(Single, year, 0)
}

// Current returns the month containing the picker's clock reading.
func (p *Picker) Current() month.Month {
	return month.Of(p.now())
}

// Mode returns the picker's cardinality.
func (p *Picker) Mode() Mode { return p.mode }

// Locale returns the locale used for labels.
func (p *Picker) Locale() month.Locale { return p.locale }

// SetLocale changes the locale used for labels.
func (p *Picker) SetLocale(l month.Locale) { p.locale = l }

// Constraints returns the active constraint set.
func (p *Picker) Constraints() constraint.Set { return p.constraints }

// SetConstraints replaces the constraint set. The committed selection is
// left untouched; new constraints only affect future selections.
func (p *Picker) SetConstraints(s constraint.Set) { p.constraints = s }

// Selection returns the committed selection state.
func (p *Picker) Selection() Selection { return p.selection }

// Disabled reports whether m is rejected by the current constraints.
func (p *Picker) Disabled(m month.Month) bool {
	return p.constraints.Disabled(m)
}

// Select applies a user pick of m. It returns false, and changes nothing,
// when m is disabled.
func (p *Picker) Select(m month.Month) bool {
	if reason := p.constraints.Reason(m); reason != constraint.ReasonNone {
		p.logger.Printf("picker: rejected %s: %s", m, reason)
		return false
	}

	if p.mode == Single {
		p.selection = complete(m, m)
		p.commit(Change{Tokens: []string{m.String()}})
		return true
	}

	switch s := p.selection.(type) {
	case Partial:
		c := complete(s.From, m)
		p.selection = c
		p.hover = nil
		p.commit(Change{Tokens: month.SpanTokens(c.From, c.To)})
	default:
		p.selection = Partial{From: m}
		p.hover = nil
		p.logger.Printf("picker: range started at %s", m)
	}
	return true
}

func (p *Picker) commit(c Change) {
	p.logger.Printf("picker: committed %s", c)
	p.open = false
	if p.onChange != nil {
		p.onChange(c)
	}
}

// Clear drops the selection and hover preview and resets the view years.
func (p *Picker) Clear() {
	p.selection = Empty{}
	p.hover = nil
	p.view = p.resetView()
	p.logger.Printf("picker: cleared")
	if p.onChange != nil {
		p.onChange(Change{Cleared: true})
	}
}

// Open shows the picker.
func (p *Picker) Open() { p.open = true }

// Close hides the picker. A half made range selection is discarded.
func (p *Picker) Close() {
	p.open = false
	p.hover = nil
	if _, ok := p.selection.(Partial); ok {
		p.selection = Empty{}
		p.logger.Printf("picker: discarded partial selection on close")
	}
}

// Toggle opens a closed picker and closes an open one.
func (p *Picker) Toggle() {
	if p.open {
		p.Close()
		return
	}
	p.Open()
}

// IsOpen reports whether the picker is shown.
func (p *Picker) IsOpen() bool { return p.open }

// Hover records m as the hover target. It only has an effect on range
// pickers while the second endpoint is still missing.
func (p *Picker) Hover(m month.Month) bool {
	if p.mode != Range {
		return false
	}
	if _, ok := p.selection.(Partial); !ok {
		return false
	}
	p.hover = &m
	return true
}

// Unhover clears the hover target.
func (p *Picker) Unhover() { p.hover = nil }

// Hovered returns the hover target, if any.
func (p *Picker) Hovered() (month.Month, bool) {
	if p.hover == nil {
		return month.Month{}, false
	}
	return *p.hover, true
}

// Preview returns the provisional span between the first endpoint and the
// hover target, or nil when there is nothing to preview.
func (p *Picker) Preview() []month.Month {
	s, ok := p.selection.(Partial)
	if !ok || p.hover == nil || p.hover.Equal(s.From) {
		return nil
	}
	return month.Span(s.From, *p.hover)
}

// View returns the displayed years.
func (p *Picker) View() View { return p.view }

// Years returns the displayed years, left to right.
func (p *Picker) Years() []int { return p.view.Years() }

// SetYear shows year in column col, clamped for range pickers.
func (p *Picker) SetYear(col, year int) bool { return p.view.set(col, year) }

// PrevYear moves column col back one year.
func (p *Picker) PrevYear(col int) bool { return p.view.set(col, p.view.Year(col)-1) }

// NextYear moves column col forward one year.
func (p *Picker) NextYear(col int) bool { return p.view.set(col, p.view.Year(col)+1) }

// Value returns the committed tokens: one for single pickers, the inclusive
// span for range pickers, nil otherwise.
func (p *Picker) Value() []string {
	c, ok := p.selection.(Complete)
	if !ok {
		return nil
	}
	if p.mode == Single {
		return []string{c.From.String()}
	}
	return month.SpanTokens(c.From, c.To)
}

// Label renders the committed selection for an input field, for example
// "Mar 2025" or "Jan 2025 – Mar 2025". It is empty without a commit.
func (p *Picker) Label() string {
	c, ok := p.selection.(Complete)
	if !ok {
		return ""
	}
	if p.mode == Single {
		return month.Label(c.From, p.locale)
	}
	return month.Label(c.From, p.locale) + " – " + month.Label(c.To, p.locale)
}
