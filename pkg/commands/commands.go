package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use: "monthpick",
		Short: base.Wrap80("Pick a month or a range of months on the command " +
			"line, and check months against min, max, allow and disallow " +
			"constraints."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addPick(topLevel)
	addSpan(topLevel)
	addCheck(topLevel)
	addYear(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
}
