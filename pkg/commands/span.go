package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/runner/span"
	"tableflip.dev/dayplan/pkg/slot"
)

func addSpan(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "span",
		Short: "Work with multi-hour range entries",
		Example: `
dayplan span set --from=9am --to=11am deep work
dayplan span rm --from=9am --to=11am
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addSpanSet(cmd)
	addSpanRemove(cmd)

	topLevel.AddCommand(cmd)
}

func spanBounds(from, to string) (slot.Hour, slot.Hour, error) {
	start, err := slot.Parse(from)
	if err != nil {
		return 0, 0, err
	}
	end, err := slot.Parse(to)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func addSpanSet(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	so := &options.ScheduleOptions{}
	to := &options.TaskRefOptions{}
	from, until := "", ""
	message := ""

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Add or replace a range by its exact bounds",
		Example: `
dayplan span set --from=9am --to=11am deep work
dayplan span set --from=1pm --to=3pm --task=<task id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			message = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			d, err := do.GetDate()
			if err != nil {
				return err
			}
			kind, err := so.GetKind()
			if err != nil {
				return err
			}
			start, end, err := spanBounds(from, until)
			if err != nil {
				return err
			}
			listKind, err := to.GetListKind()
			if err != nil {
				return err
			}
			if message == "" && to.TaskID == "" {
				return errors.New("requires text or --task")
			}
			schedules, _, err := loadSchedules()
			if err != nil {
				return err
			}
			s := span.Set{
				Date:      d,
				Kind:      kind,
				Start:     start,
				End:       end,
				Text:      message,
				TaskID:    to.TaskID,
				ListKind:  listKind,
				Schedules: schedules,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddKindArg(cmd, so)
	options.AddTaskRefArgs(cmd, to)
	cmd.Flags().StringVar(&from, "from", "", "First hour-slot of the range.")
	cmd.Flags().StringVar(&until, "to", "", "Last hour-slot of the range.")

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addSpanRemove(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	so := &options.ScheduleOptions{}
	from, until := "", ""

	cmd := &cobra.Command{
		Use:     "remove",
		Aliases: []string{"rm"},
		Short:   "Remove the range with exactly the given bounds",
		Example: `
dayplan span rm --from=9am --to=11am
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			d, err := do.GetDate()
			if err != nil {
				return err
			}
			kind, err := so.GetKind()
			if err != nil {
				return err
			}
			start, end, err := spanBounds(from, until)
			if err != nil {
				return err
			}
			schedules, _, err := loadSchedules()
			if err != nil {
				return err
			}
			s := span.Remove{
				Date:      d,
				Kind:      kind,
				Start:     start,
				End:       end,
				Schedules: schedules,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddKindArg(cmd, so)
	cmd.Flags().StringVar(&from, "from", "", "First hour-slot of the range.")
	cmd.Flags().StringVar(&until, "to", "", "Last hour-slot of the range.")

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
