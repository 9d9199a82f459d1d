package add

import (
	"context"

	"tableflip.dev/dayplan/pkg/dates"
	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/queue"
	"tableflip.dev/dayplan/pkg/task"
)

// Add appends a task to a queue.
type Add struct {
	Kind     task.ListKind
	Scope    task.Scope
	Text     string
	Due      dates.Date
	Position int
	ShowID   bool

	Queues *queue.Manager
}

func (n *Add) Do(ctx context.Context) error {
	t := task.New(n.Text)
	t.DueDate = n.Due

	if _, err := n.Queues.Append(ctx, n.Kind, n.Scope, t, n.Position); err != nil {
		return err
	}

	all, err := n.Queues.List(ctx, n.Kind, n.Scope)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Queue(n.Kind, n.Scope, all)
	return nil
}
