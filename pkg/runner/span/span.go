package span

import (
	"context"
	"fmt"
	"io"

	"tableflip.dev/monthpick/pkg/month"
	"tableflip.dev/monthpick/pkg/printers"
)

// Span prints every month between two tokens, both ends included.
type Span struct {
	From   string
	To     string
	Locale month.Locale
	JSON   bool
	Out    io.Writer
}

func (n *Span) Do(_ context.Context) error {
	from, err := month.ParseStrict(n.From)
	if err != nil {
		return fmt.Errorf("from: %w", err)
	}
	to, err := month.ParseStrict(n.To)
	if err != nil {
		return fmt.Errorf("to: %w", err)
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		return pp.JSON(month.SpanTokens(from, to))
	}
	pp.MonthTable(month.Span(from, to), n.Locale)
	return nil
}
