package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/resolve"
	"tableflip.dev/dayplan/pkg/runner/create"
	"tableflip.dev/dayplan/pkg/runner/day"
	"tableflip.dev/dayplan/pkg/schedule"
	"tableflip.dev/dayplan/pkg/store"
)

func loadSchedules() (*schedule.Store, *resolve.Engine, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, nil, err
	}
	m, err := loadQueues()
	if err != nil {
		return nil, nil, err
	}
	return &schedule.Store{Persistence: p}, &resolve.Engine{Tasks: m}, nil
}

func addDay(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	so := &options.ScheduleOptions{}
	raw := false

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show a day's journal or plan, resolved against the task queues",
		Example: `
dayplan day
dayplan day --view=journal --on=251125
dayplan day --raw
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
			schedules, engine, err := loadSchedules()
			if err != nil {
				return err
			}
			s := day.Day{
				Date:      d,
				Kind:      kind,
				Raw:       raw,
				Schedules: schedules,
				Engine:    engine,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddKindArg(cmd, so)
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the stored document instead of the resolved view.")

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addCreate(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	so := &options.ScheduleOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create the schedule document for a date",
		Long: base.Wrap80("Create writes an empty document for the date and view. " +
			"It is idempotent: creating an existing document reports so and never resets content."),
		Example: `
dayplan create --view=journal
dayplan create --on=251126
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
			schedules, _, err := loadSchedules()
			if err != nil {
				return err
			}
			s := create.Create{
				Date:      d,
				Kind:      kind,
				Schedules: schedules,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddKindArg(cmd, so)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
