package day

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tableflip.dev/dayplan/pkg/dates"
	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/resolve"
	"tableflip.dev/dayplan/pkg/schedule"
	"tableflip.dev/dayplan/pkg/store"
)

// Day prints a date's journal or plan, resolved against live task
// state, or the raw stored document with Raw.
type Day struct {
	Date dates.Date
	Kind schedule.Kind
	Raw  bool

	Schedules *schedule.Store
	Engine    *resolve.Engine
}

func (n *Day) Do(ctx context.Context) error {
	doc, err := n.Schedules.Read(ctx, n.Date, n.Kind)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fmt.Printf("no %s for %s\n", n.Kind, n.Date)
			return nil
		}
		return err
	}

	if n.Raw {
		data, err := doc.Marshal()
		if err != nil {
			return err
		}
		var pretty any
		if err := json.Unmarshal(data, &pretty); err != nil {
			return err
		}
		out, err := json.MarshalIndent(pretty, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	resolved, err := n.Engine.Resolve(ctx, doc, n.Date)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(fmt.Sprintf("%s %s", n.Kind, n.Date))
	pp.Day(resolved)
	return nil
}
