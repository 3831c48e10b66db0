package commands

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/monthpick/pkg/commands/options"
	"tableflip.dev/monthpick/pkg/config"
	"tableflip.dev/monthpick/pkg/runner/pick"
)

// ErrNoTTY is returned when pick is run without an interactive terminal.
var ErrNoTTY = errors.New("pick needs an interactive terminal")

func addPick(topLevel *cobra.Command) {
	po := &options.PickerOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Open the interactive month picker and print the selection.",
		Example: `
monthpick pick
monthpick pick --mode range --min 01/2024 --max 12/2025
monthpick pick --mode range --default 03/2025,06/2025 --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if !isTerminal(os.Stdin.Fd()) || !isTerminal(os.Stderr.Fd()) {
				return oo.HandleError(ErrNoTTY)
			}
			c, err := config.Load(cmd.Flags())
			if err != nil {
				return oo.HandleError(err)
			}
			p := pick.Pick{
				Config: c,
				JSON:   oo.JSON,
				Out:    cmd.OutOrStdout(),
			}
			return oo.HandleError(p.Do(context.Background()))
		},
	}

	options.AddPickerArgs(cmd, po)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

var isTerminal = func(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
