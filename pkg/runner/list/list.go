package list

import (
	"context"

	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/queue"
	"tableflip.dev/dayplan/pkg/task"
)

// List prints one queue, or every queue for the scope when Kind is
// unset.
type List struct {
	Kind   task.ListKind
	Scope  task.Scope
	All    bool
	ShowID bool

	Queues *queue.Manager
}

func (n *List) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{ShowID: n.ShowID}

	kinds := []task.ListKind{n.Kind}
	if n.All || n.Kind == "" {
		kinds = task.Kinds()
	}

	for _, kind := range kinds {
		all, err := n.Queues.List(ctx, kind, n.Scope)
		if err != nil {
			return err
		}
		pp.Queue(kind, n.Scope, all)
	}
	return nil
}
