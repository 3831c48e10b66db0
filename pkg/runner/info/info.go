package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/monthpick/pkg/config"
	"tableflip.dev/monthpick/pkg/printers"
)

type Info struct {
	Config *config.Config
	JSON   bool
	Out    io.Writer
}

func (n *Info) Do(_ context.Context) error {
	if n.Config == nil {
		return errors.New("can not show info, no config")
	}
	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		return pp.JSON(n.Config)
	}

	w := n.Out
	if w == nil {
		w = color.Output
	}

	if override := os.Getenv(config.EnvConfigPath); override != "" {
		_, _ = fmt.Fprintln(w, config.EnvConfigPath, "found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(w, config.EnvConfigPath, "env var not set")
	}

	source := n.Config.Source
	if source == "" {
		source = "(none)"
	}
	_, _ = fmt.Fprintln(w, "Config.file:", source)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(config.KeyMode, n.Config.Mode)
	tbl.AddRow(config.KeyLocale, n.Config.Locale)
	tbl.AddRow(config.KeyMin, orDash(n.Config.Min))
	tbl.AddRow(config.KeyMax, orDash(n.Config.Max))
	tbl.AddRow(config.KeyAllow, orDash(strings.Join(n.Config.Allow, ", ")))
	tbl.AddRow(config.KeyDisallow, orDash(strings.Join(n.Config.Disallow, ", ")))
	tbl.AddRow(config.KeyDefault, orDash(strings.Join(n.Config.Default, ", ")))
	_, _ = fmt.Fprintln(w, tbl)
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
