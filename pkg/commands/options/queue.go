package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/dates"
	"tableflip.dev/dayplan/pkg/task"
)

// QueueOptions selects the queue a task command operates on.
type QueueOptions struct {
	KindString  string
	DailyString string
	All         bool
}

// AddQueueArgs wires the queue selection flags.
func AddQueueArgs(cmd *cobra.Command, o *QueueOptions) {
	cmd.Flags().StringVarP(&o.KindString, "kind", "k", string(task.HaveToDo),
		`Which list: "have-to-do" (have) or "want-to-do" (want).`)
	cmd.Flags().StringVar(&o.DailyString, "daily", "",
		`Operate on a date's daily queue instead of the general backlog, example: --daily=today.`)
}

// AddAllQueuesArg registers the flag that targets every list kind.
func AddAllQueuesArg(cmd *cobra.Command, o *QueueOptions) {
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Show every list kind.")
}

// GetKind resolves the list-kind flag.
func (o *QueueOptions) GetKind() (task.ListKind, error) {
	return task.ParseListKind(o.KindString)
}

// GetScope resolves the scope flag; no --daily means the general
// backlog.
func (o *QueueOptions) GetScope() (task.Scope, error) {
	if o.DailyString == "" {
		return task.General(), nil
	}
	if o.DailyString == "today" {
		return task.Daily(dates.Today()), nil
	}
	d, err := dates.Parse(o.DailyString)
	if err != nil {
		return task.Scope{}, err
	}
	return task.Daily(d), nil
}
