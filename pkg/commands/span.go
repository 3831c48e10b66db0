package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/monthpick/pkg/commands/options"
	"tableflip.dev/monthpick/pkg/config"
	"tableflip.dev/monthpick/pkg/month"
	"tableflip.dev/monthpick/pkg/runner/span"
)

func addSpan(topLevel *cobra.Command) {
	po := &options.PickerOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "span FROM TO",
		Short: "Print every month from FROM to TO, both included.",
		Example: `
monthpick span 11/2024 02/2025
monthpick span 02/2025 11/2024 --locale en --json
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			c, err := config.Load(cmd.Flags())
			if err != nil {
				return oo.HandleError(err)
			}
			locale, err := month.ParseLocale(c.Locale)
			if err != nil {
				return oo.HandleError(err)
			}
			s := span.Span{
				From:   args[0],
				To:     args[1],
				Locale: locale,
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
