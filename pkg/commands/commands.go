package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "dayplan",
		Short: base.Wrap80("Hour-slot day journals and plans with ordered task queues."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addTask(topLevel)
	addDay(topLevel)
	addCreate(topLevel)
	addSet(topLevel)
	addAppend(topLevel)
	addClear(topLevel)
	addSpan(topLevel)
	addVersion(topLevel)
}
