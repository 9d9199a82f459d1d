// Package slotops provides the runner logic for single-slot edits on
// a day's journal or plan.
package slotops

import (
	"context"
	"fmt"

	"tableflip.dev/dayplan/pkg/dates"
	"tableflip.dev/dayplan/pkg/entry"
	"tableflip.dev/dayplan/pkg/schedule"
	"tableflip.dev/dayplan/pkg/slot"
	"tableflip.dev/dayplan/pkg/task"
)

// Set replaces one slot wholesale, with either free text or a task
// reference.
type Set struct {
	Date dates.Date
	Kind schedule.Kind
	Hour slot.Hour

	Text     string
	TaskID   string
	ListKind task.ListKind

	Schedules *schedule.Store
}

func (n *Set) Do(ctx context.Context) error {
	e := entry.NewText(n.Text)
	if n.TaskID != "" {
		e = entry.NewTaskRef(n.TaskID, n.ListKind)
	}
	change, err := n.Schedules.SetSlot(ctx, n.Date, n.Kind, n.Hour, e)
	if err != nil {
		return err
	}
	report(n.Kind, n.Date, n.Hour, change)
	return nil
}

// Append joins text onto a slot; task-reference slots refuse it.
type Append struct {
	Date dates.Date
	Kind schedule.Kind
	Hour slot.Hour
	Text string

	Schedules *schedule.Store
}

func (n *Append) Do(ctx context.Context) error {
	change, err := n.Schedules.AppendTextToSlot(ctx, n.Date, n.Kind, n.Hour, n.Text)
	if err != nil {
		return err
	}
	report(n.Kind, n.Date, n.Hour, change)
	return nil
}

// Clear empties a slot; clearing an empty slot is fine.
type Clear struct {
	Date dates.Date
	Kind schedule.Kind
	Hour slot.Hour

	Schedules *schedule.Store
}

func (n *Clear) Do(ctx context.Context) error {
	change, err := n.Schedules.ClearSlot(ctx, n.Date, n.Kind, n.Hour)
	if err != nil {
		return err
	}
	if change.Previous.IsEmpty() {
		fmt.Printf("%s %s %s was already empty\n", n.Kind, n.Date, n.Hour)
		return nil
	}
	fmt.Printf("cleared %s %s %s (was %q)\n", n.Kind, n.Date, n.Hour, change.Previous.String())
	return nil
}

func report(kind schedule.Kind, date dates.Date, hour slot.Hour, change schedule.SlotChange) {
	fmt.Printf("%s %s %s: %q\n", kind, date, hour, change.New.String())
}
