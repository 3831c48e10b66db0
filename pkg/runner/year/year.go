package year

import (
	"context"
	"io"

	"tableflip.dev/monthpick/pkg/picker"
	"tableflip.dev/monthpick/pkg/printers"
)

// Year prints a twelve month overview of one year as the picker sees it.
type Year struct {
	Year    int
	Options picker.Options
	Out     io.Writer
}

func (n *Year) Do(_ context.Context) error {
	p := picker.New(n.Options)
	y := n.Year
	if y == 0 {
		y = p.Current().Year
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.PrintYear(p, y)
	if label := p.Label(); label != "" {
		pp.Title(label)
	}
	pp.Legend()
	return nil
}
