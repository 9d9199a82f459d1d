package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/dates"
	"tableflip.dev/dayplan/pkg/queue"
	"tableflip.dev/dayplan/pkg/runner/add"
	"tableflip.dev/dayplan/pkg/runner/complete"
	"tableflip.dev/dayplan/pkg/runner/list"
	"tableflip.dev/dayplan/pkg/runner/move"
	"tableflip.dev/dayplan/pkg/runner/promote"
	"tableflip.dev/dayplan/pkg/runner/remove"
	"tableflip.dev/dayplan/pkg/runner/update"
	"tableflip.dev/dayplan/pkg/store"
)

func loadQueues() (*queue.Manager, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	return &queue.Manager{Persistence: p}, nil
}

func addTask(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Work with the ordered task queues",
		Example: `
dayplan task add call the bank --due=today
dayplan task list --daily=today
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTaskAdd(cmd)
	addTaskList(cmd)
	addTaskDone(cmd)
	addTaskRemove(cmd)
	addTaskEdit(cmd)
	addTaskMove(cmd)
	addTaskPromote(cmd)

	topLevel.AddCommand(cmd)
}

func addTaskAdd(topLevel *cobra.Command) {
	qo := &options.QueueOptions{}
	io := &options.IDOptions{}
	message := ""
	due := ""
	position := -1

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to a queue",
		Example: `
dayplan task add call the bank
dayplan task add water plants -k want --due=251128
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires task text")
			}
			message = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			kind, err := qo.GetKind()
			if err != nil {
				return err
			}
			scope, err := qo.GetScope()
			if err != nil {
				return err
			}
			var d dates.Date
			if due != "" {
				if due == "today" {
					d = dates.Today()
				} else if d, err = dates.Parse(due); err != nil {
					return err
				}
			}
			m, err := loadQueues()
			if err != nil {
				return err
			}
			s := add.Add{
				Kind:     kind,
				Scope:    scope,
				Text:     message,
				Due:      d,
				Position: position,
				ShowID:   io.ShowID,
				Queues:   m,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddQueueArgs(cmd, qo)
	options.AddShowIDArgs(cmd, io)
	cmd.Flags().StringVar(&due, "due", "", "Due date; due tasks surface in that day's queue.")
	cmd.Flags().IntVar(&position, "position", -1, "Insert position, 0 is highest priority; default appends.")

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addTaskList(topLevel *cobra.Command) {
	qo := &options.QueueOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List a queue in priority order",
		Example: `
dayplan task list
dayplan task list --daily=today --all
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			kind, err := qo.GetKind()
			if err != nil {
				return err
			}
			scope, err := qo.GetScope()
			if err != nil {
				return err
			}
			m, err := loadQueues()
			if err != nil {
				return err
			}
			s := list.List{
				Kind:   kind,
				Scope:  scope,
				All:    qo.All,
				ShowID: io.ShowID,
				Queues: m,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddQueueArgs(cmd, qo)
	options.AddAllQueuesArg(cmd, qo)
	options.AddShowIDArgs(cmd, io)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addTaskDone(topLevel *cobra.Command) {
	qo := &options.QueueOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "done",
		Aliases: []string{"complete", "completed"},
		Short:   "Mark a task completed",
		Example: `
dayplan task done <task id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			kind, err := qo.GetKind()
			if err != nil {
				return err
			}
			scope, err := qo.GetScope()
			if err != nil {
				return err
			}
			m, err := loadQueues()
			if err != nil {
				return err
			}
			s := complete.Complete{
				Kind:   kind,
				Scope:  scope,
				ID:     io.ID,
				Queues: m,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddQueueArgs(cmd, qo)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addTaskRemove(topLevel *cobra.Command) {
	qo := &options.QueueOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "remove",
		Aliases: []string{"rm"},
		Short:   "Remove a task from a queue",
		Example: `
dayplan task remove <task id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			kind, err := qo.GetKind()
			if err != nil {
				return err
			}
			scope, err := qo.GetScope()
			if err != nil {
				return err
			}
			m, err := loadQueues()
			if err != nil {
				return err
			}
			s := remove.Remove{
				Kind:   kind,
				Scope:  scope,
				ID:     io.ID,
				Queues: m,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddQueueArgs(cmd, qo)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addTaskEdit(topLevel *cobra.Command) {
	qo := &options.QueueOptions{}
	io := &options.IDOptions{}
	text := ""
	due := ""

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Update a task's text or due date",
		Example: `
dayplan task edit <task id> --text="call the other bank"
dayplan task edit <task id> --due=251128
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			kind, err := qo.GetKind()
			if err != nil {
				return err
			}
			scope, err := qo.GetScope()
			if err != nil {
				return err
			}
			s := update.Update{
				Kind:  kind,
				Scope: scope,
				ID:    io.ID,
			}
			if cmd.Flags().Changed("text") {
				s.Text = &text
			}
			if cmd.Flags().Changed("due") {
				d := dates.Date("")
				if due != "" {
					if due == "today" {
						d = dates.Today()
					} else if d, err = dates.Parse(due); err != nil {
						return err
					}
				}
				s.Due = &d
			}
			if s.Text == nil && s.Due == nil {
				return errors.New("nothing to update; pass --text and/or --due")
			}
			if s.Queues, err = loadQueues(); err != nil {
				return err
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddQueueArgs(cmd, qo)
	cmd.Flags().StringVar(&text, "text", "", "New task text.")
	cmd.Flags().StringVar(&due, "due", "", `New due date; empty clears it.`)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addTaskMove(topLevel *cobra.Command) {
	qo := &options.QueueOptions{}
	io := &options.IDOptions{}
	position := 0

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Reorder a task within its queue",
		Example: `
dayplan task move <task id> 0
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a task id and a position")
			}
			io.ID = args[0]
			p, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.New("position must be a number")
			}
			position = p
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			kind, err := qo.GetKind()
			if err != nil {
				return err
			}
			scope, err := qo.GetScope()
			if err != nil {
				return err
			}
			m, err := loadQueues()
			if err != nil {
				return err
			}
			s := move.Move{
				Kind:     kind,
				Scope:    scope,
				ID:       io.ID,
				Position: position,
				Queues:   m,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddQueueArgs(cmd, qo)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addTaskPromote(topLevel *cobra.Command) {
	qo := &options.QueueOptions{}
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Pull due backlog tasks into the day's queue",
		Example: `
dayplan task promote
dayplan task promote --on=251128
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			kind, err := qo.GetKind()
			if err != nil {
				return err
			}
			d, err := do.GetDate()
			if err != nil {
				return err
			}
			m, err := loadQueues()
			if err != nil {
				return err
			}
			s := promote.Promote{
				Kind:   kind,
				Date:   d,
				Queues: m,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddQueueArgs(cmd, qo)
	options.AddDateArgs(cmd, do)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
