// Package span provides the runner logic for multi-hour range entries.
package span

import (
	"context"
	"fmt"

	"tableflip.dev/dayplan/pkg/dates"
	"tableflip.dev/dayplan/pkg/entry"
	"tableflip.dev/dayplan/pkg/schedule"
	"tableflip.dev/dayplan/pkg/slot"
	"tableflip.dev/dayplan/pkg/task"
)

// Set upserts a range by its exact bounds.
type Set struct {
	Date  dates.Date
	Kind  schedule.Kind
	Start slot.Hour
	End   slot.Hour

	Text     string
	TaskID   string
	ListKind task.ListKind

	Schedules *schedule.Store
}

func (n *Set) Do(ctx context.Context) error {
	payload := entry.NewText(n.Text)
	if n.TaskID != "" {
		payload = entry.NewTaskRef(n.TaskID, n.ListKind)
	}
	r, err := entry.NewRange(n.Start, n.End, payload)
	if err != nil {
		return err
	}
	change, err := n.Schedules.SetRange(ctx, n.Date, n.Kind, r)
	if err != nil {
		return err
	}
	if change.Created {
		fmt.Printf("added %s to %s %s\n", r, n.Kind, n.Date)
	} else {
		fmt.Printf("replaced %s on %s %s\n", r, n.Kind, n.Date)
	}
	return nil
}

// Remove deletes the range with exactly the given bounds.
type Remove struct {
	Date  dates.Date
	Kind  schedule.Kind
	Start slot.Hour
	End   slot.Hour

	Schedules *schedule.Store
}

func (n *Remove) Do(ctx context.Context) error {
	removed, err := n.Schedules.RemoveRange(ctx, n.Date, n.Kind, n.Start, n.End)
	if err != nil {
		return err
	}
	if removed {
		fmt.Printf("removed %s-%s from %s %s\n", n.Start, n.End, n.Kind, n.Date)
	} else {
		fmt.Printf("no range %s-%s on %s %s\n", n.Start, n.End, n.Kind, n.Date)
	}
	return nil
}
