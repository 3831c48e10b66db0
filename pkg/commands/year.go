package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/monthpick/pkg/commands/options"
	"tableflip.dev/monthpick/pkg/config"
	"tableflip.dev/monthpick/pkg/runner/year"
)

func addYear(topLevel *cobra.Command) {
	po := &options.PickerOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "year [YEAR]",
		Short: "Print a twelve month overview of a year under the constraints.",
		Example: `
monthpick year
monthpick year 2025 --min 03/2025 --disallow 08/2025
monthpick year 2025 --mode range --default 02/2025,05/2025
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			c, err := config.Load(cmd.Flags())
			if err != nil {
				return oo.HandleError(err)
			}
			opts, err := c.PickerOptions()
			if err != nil {
				return oo.HandleError(err)
			}
			y := year.Year{
				Options: opts,
				Out:     cmd.OutOrStdout(),
			}
			if len(args) == 1 {
				if y.Year, err = strconv.Atoi(args[0]); err != nil {
					return oo.HandleError(fmt.Errorf("invalid year %q: %w", args[0], err))
				}
			}
			return oo.HandleError(y.Do(context.Background()))
		},
	}

	options.AddPickerArgs(cmd, po)

	topLevel.AddCommand(cmd)
}
