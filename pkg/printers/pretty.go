package printers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/monthpick/pkg/month"
)

// PrettyPrint writes human readable output. Out defaults to color.Output.
type PrettyPrint struct {
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// Tokens prints one token per line, or a JSON array.
func (pp *PrettyPrint) Tokens(tokens []string, asJSON bool) error {
	if asJSON {
		if tokens == nil {
			tokens = []string{}
		}
		return pp.JSON(tokens)
	}
	for _, t := range tokens {
		_, _ = fmt.Fprintln(pp.out(), t)
	}
	return nil
}

// JSON prints v as a single line of JSON.
func (pp *PrettyPrint) JSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(pp.out(), string(b))
	return nil
}

// MonthTable prints months with their position and localized label.
func (pp *PrettyPrint) MonthTable(months []month.Month, locale month.Locale) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("#"), bold.Sprint("Month"), bold.Sprint("Label"))
	for i, m := range months {
		tbl.AddRow(i+1, m.String(), month.Label(m, locale))
	}

	_, _ = fmt.Fprintln(pp.out(), tbl)
}
