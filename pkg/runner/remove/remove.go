package remove

import (
	"context"
	"fmt"

	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/queue"
	"tableflip.dev/dayplan/pkg/task"
)

// Remove deletes a task from a queue. Schedule entries referencing
// the id are left alone; they show the missing-task placeholder from
// then on.
type Remove struct {
	Kind  task.ListKind
	Scope task.Scope
	ID    string

	Queues *queue.Manager
}

func (n *Remove) Do(ctx context.Context) error {
	removed, err := n.Queues.Remove(ctx, n.Kind, n.Scope, n.ID)
	if err != nil {
		return err
	}
	fmt.Printf("removed %q\n\n", removed.Text)

	all, err := n.Queues.List(ctx, n.Kind, n.Scope)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Queue(n.Kind, n.Scope, all)
	return nil
}
