package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/monthpick/pkg/commands/options"
	"tableflip.dev/monthpick/pkg/config"
	"tableflip.dev/monthpick/pkg/runner/check"
)

func addCheck(topLevel *cobra.Command) {
	po := &options.PickerOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "check TOKEN...",
		Short: "Report whether each month could be selected.",
		Example: `
monthpick check 01/2025 07/2025 --min 03/2025
monthpick check 12/2024 --disallow 12/2024 --json
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			c, err := config.Load(cmd.Flags())
			if err != nil {
				return oo.HandleError(err)
			}
			ch := check.Check{
				Tokens:      args,
				Constraints: c.Constraints(),
				JSON:        oo.JSON,
				Out:         cmd.OutOrStdout(),
			}
			return oo.HandleError(ch.Do(context.Background()))
		},
	}

	options.AddPickerArgs(cmd, po)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
