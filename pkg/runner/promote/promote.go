package promote

import (
	"context"
	"fmt"

	"tableflip.dev/dayplan/pkg/dates"
	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/queue"
	"tableflip.dev/dayplan/pkg/task"
)

// Promote pulls backlog tasks due on Date to the front of that date's
// daily queue. Safe to run repeatedly.
type Promote struct {
	Kind task.ListKind
	Date dates.Date

	Queues *queue.Manager
}

func (n *Promote) Do(ctx context.Context) error {
	promoted, err := n.Queues.AutoPromoteDue(ctx, n.Kind, n.Date)
	if err != nil {
		return err
	}
	switch len(promoted) {
	case 0:
		fmt.Println("nothing due to promote")
	case 1:
		fmt.Println("promoted 1 task")
	default:
		fmt.Printf("promoted %d tasks\n", len(promoted))
	}
	fmt.Println("")

	all, err := n.Queues.List(ctx, n.Kind, task.Daily(n.Date))
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Queue(n.Kind, task.Daily(n.Date), all)
	return nil
}
