package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/runner/slotops"
)

func addSet(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	so := &options.ScheduleOptions{}
	to := &options.TaskRefOptions{}
	message := ""

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set an hour-slot to text or a task reference",
		Example: `
dayplan set --at=8am gym
dayplan set --at=9am --task=<task id>
dayplan set --view=journal --on=251125 --at=3pm long meeting
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
			hour, err := so.GetHour()
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
			s := slotops.Set{
				Date:      d,
				Kind:      kind,
				Hour:      hour,
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
	options.AddScheduleArgs(cmd, so)
	options.AddTaskRefArgs(cmd, to)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addAppend(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	so := &options.ScheduleOptions{}
	message := ""

	cmd := &cobra.Command{
		Use:   "append",
		Short: "Append a line of text to an hour-slot",
		Long: base.Wrap80("Append joins text onto the slot with a newline. " +
			"Slots holding a task reference are atomic and refuse appends."),
		Example: `
dayplan append --view=journal --at=8am went for a run
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires text")
			}
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
			hour, err := so.GetHour()
			if err != nil {
				return err
			}
			schedules, _, err := loadSchedules()
			if err != nil {
				return err
			}
			s := slotops.Append{
				Date:      d,
				Kind:      kind,
				Hour:      hour,
				Text:      message,
				Schedules: schedules,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddScheduleArgs(cmd, so)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addClear(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	so := &options.ScheduleOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear an hour-slot",
		Example: `
dayplan clear --at=8am
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
			hour, err := so.GetHour()
			if err != nil {
				return err
			}
			schedules, _, err := loadSchedules()
			if err != nil {
				return err
			}
			s := slotops.Clear{
				Date:      d,
				Kind:      kind,
				Hour:      hour,
				Schedules: schedules,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddScheduleArgs(cmd, so)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
