package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/monthpick/pkg/commands/options"
	"tableflip.dev/monthpick/pkg/config"
	"tableflip.dev/monthpick/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	po := &options.PickerOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the effective picker configuration and where it came from.",
		Example: `
monthpick info
MONTHPICK_MODE=range monthpick info --json
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			c, err := config.Load(cmd.Flags())
			if err != nil {
				return oo.HandleError(err)
			}
			s := info.Info{
				Config: c,
				JSON:   oo.JSON,
				Out:    cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddPickerArgs(cmd, po)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
