package check

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/monthpick/pkg/constraint"
	"tableflip.dev/monthpick/pkg/month"
	"tableflip.dev/monthpick/pkg/printers"
)

// Result is the verdict for one token.
type Result struct {
	Token      string `json:"token"`
	Valid      bool   `json:"valid"`
	Selectable bool   `json:"selectable"`
	Reason     string `json:"reason"`
}

// Check evaluates tokens against a constraint set.
type Check struct {
	Tokens      []string
	Constraints constraint.Set
	JSON        bool
	Out         io.Writer
}

func (n *Check) Results() []Result {
	results := make([]Result, 0, len(n.Tokens))
	for _, t := range n.Tokens {
		m, ok := month.Parse(t)
		if !ok {
			results = append(results, Result{Token: t, Reason: "malformed token"})
			continue
		}
		r := n.Constraints.Reason(m)
		results = append(results, Result{
			Token:      m.String(),
			Valid:      true,
			Selectable: r == constraint.ReasonNone,
			Reason:     r.String(),
		})
	}
	return results
}

func (n *Check) Do(_ context.Context) error {
	results := n.Results()

	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		return pp.JSON(results)
	}

	ok := color.New(color.FgGreen)
	no := color.New(color.FgRed)
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Token"), bold.Sprint("Status"), bold.Sprint("Reason"))
	for _, r := range results {
		status := no.Sprint("no")
		if r.Selectable {
			status = ok.Sprint("yes")
		}
		tbl.AddRow(r.Token, status, r.Reason)
	}
	_, _ = fmt.Fprintln(out(n.Out), tbl)
	return nil
}

func out(w io.Writer) io.Writer {
	if w == nil {
		return color.Output
	}
	return w
}
