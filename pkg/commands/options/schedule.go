package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/schedule"
	"tableflip.dev/dayplan/pkg/slot"
	"tableflip.dev/dayplan/pkg/task"
)

// ScheduleOptions selects the day view and hour a schedule command
// operates on.
type ScheduleOptions struct {
	KindString string
	AtString   string
}

// AddScheduleArgs wires the view and hour flags.
func AddScheduleArgs(cmd *cobra.Command, o *ScheduleOptions) {
	AddKindArg(cmd, o)
	cmd.Flags().StringVar(&o.AtString, "at", "",
		`The hour-slot, one of `+"7am..6am"+`, example: --at=8am.`)
}

// AddKindArg wires only the view flag, for commands without an hour.
func AddKindArg(cmd *cobra.Command, o *ScheduleOptions) {
	cmd.Flags().StringVar(&o.KindString, "view", string(schedule.Plan),
		`Which day view: "journal" (what happened) or "plan" (what is intended).`)
}

// GetKind resolves the view flag.
func (o *ScheduleOptions) GetKind() (schedule.Kind, error) {
	return schedule.ParseKind(o.KindString)
}

// GetHour resolves the hour flag.
func (o *ScheduleOptions) GetHour() (slot.Hour, error) {
	return slot.Parse(o.AtString)
}

// TaskRefOptions captures the flags that bind a slot or range to a
// queued task instead of free text.
type TaskRefOptions struct {
	TaskID     string
	KindString string
}

// AddTaskRefArgs wires the task-reference flags.
func AddTaskRefArgs(cmd *cobra.Command, o *TaskRefOptions) {
	cmd.Flags().StringVar(&o.TaskID, "task", "",
		"Bind the entry to a queued task id instead of text.")
	cmd.Flags().StringVar(&o.KindString, "task-kind", string(task.HaveToDo),
		"List kind the referenced task belongs to.")
}

// GetListKind resolves the referenced task's list kind.
func (o *TaskRefOptions) GetListKind() (task.ListKind, error) {
	return task.ParseListKind(o.KindString)
}
