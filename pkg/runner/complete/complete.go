// Package complete provides the runner logic for marking tasks done.
package complete

import (
	"context"

	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/queue"
	"tableflip.dev/dayplan/pkg/task"
)

// Complete marks a queued task as completed. The task keeps its
// position.
type Complete struct {
	Kind  task.ListKind
	Scope task.Scope
	ID    string

	Queues *queue.Manager
}

func (n *Complete) Do(ctx context.Context) error {
	if _, err := n.Queues.Complete(ctx, n.Kind, n.Scope, n.ID); err != nil {
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
