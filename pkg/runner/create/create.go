package create

import (
	"context"
	"fmt"

	"tableflip.dev/dayplan/pkg/dates"
	"tableflip.dev/dayplan/pkg/schedule"
)

// Create bootstraps the schedule document for one (date, kind).
// Creating twice is fine; existing content is never reset.
type Create struct {
	Date dates.Date
	Kind schedule.Kind

	Schedules *schedule.Store
}

func (n *Create) Do(ctx context.Context) error {
	created, err := n.Schedules.CreateForDate(ctx, n.Date, n.Kind)
	if err != nil {
		return err
	}
	if created {
		fmt.Printf("created %s for %s\n", n.Kind, n.Date)
	} else {
		fmt.Printf("%s for %s already exists\n", n.Kind, n.Date)
	}
	return nil
}
