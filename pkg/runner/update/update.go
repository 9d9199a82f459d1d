package update

import (
	"context"

	"tableflip.dev/dayplan/pkg/dates"
	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/queue"
	"tableflip.dev/dayplan/pkg/task"
)

// Update patches a queued task's text and/or due date.
type Update struct {
	Kind  task.ListKind
	Scope task.Scope
	ID    string
	Text  *string
	Due   *dates.Date

	Queues *queue.Manager
}

func (n *Update) Do(ctx context.Context) error {
	p := queue.Patch{Text: n.Text, DueDate: n.Due}
	if _, err := n.Queues.Update(ctx, n.Kind, n.Scope, n.ID, p); err != nil {
		return err
	}

	all, err := n.Queues.List(ctx, n.Kind, n.Scope)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: true}
	pp.Queue(n.Kind, n.Scope, all)
	return nil
}
