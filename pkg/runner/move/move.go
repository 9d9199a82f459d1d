package move

import (
	"context"
	"fmt"

	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/queue"
	"tableflip.dev/dayplan/pkg/task"
)

// Move reorders a task within its queue. Position 0 is the highest
// priority; a move onto the current position is a quiet success.
type Move struct {
	Kind     task.ListKind
	Scope    task.Scope
	ID       string
	Position int

	Queues *queue.Manager
}

func (n *Move) Do(ctx context.Context) error {
	m, err := n.Queues.Reorder(ctx, n.Kind, n.Scope, n.ID, n.Position)
	if err != nil {
		return err
	}
	if m.PreviousPosition == m.NewPosition {
		fmt.Printf("already at position %d\n\n", m.NewPosition)
	} else {
		fmt.Printf("moved %d -> %d\n\n", m.PreviousPosition, m.NewPosition)
	}

	all, err := n.Queues.List(ctx, n.Kind, n.Scope)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Queue(n.Kind, n.Scope, all)
	return nil
}
