// Package resolve turns stored schedule documents into display-ready
// views. Resolution is a read-only join: task references are looked
// up against live queue state (the date's daily queue first, then the
// general backlog) and never mutate anything. A reference whose task
// no longer exists degrades to a placeholder instead of failing, so a
// deleted task can never break reading a day back.
package resolve

import (
	"context"

	"tableflip.dev/dayplan/pkg/dates"
	"tableflip.dev/dayplan/pkg/entry"
	"tableflip.dev/dayplan/pkg/schedule"
	"tableflip.dev/dayplan/pkg/slot"
	"tableflip.dev/dayplan/pkg/task"
)

// MissingTaskText is the fixed placeholder shown for a dangling task
// reference.
const MissingTaskText = "(task not found)"

// Lookup finds the task a reference points at. Implemented by
// queue.Manager.
type Lookup interface {
	Find(ctx context.Context, kind task.ListKind, date dates.Date, id string) (task.Task, bool, error)
}

// Engine resolves documents against live task state.
type Engine struct {
	Tasks Lookup
}

// Slot is one resolved hour. Output only; never persisted.
type Slot struct {
	Hour      slot.Hour     `json:"hour"`
	Kind      entry.Kind    `json:"kind"`
	Text      string        `json:"text"`
	TaskID    string        `json:"taskId,omitempty"`
	ListKind  task.ListKind `json:"listKind,omitempty"`
	Completed bool          `json:"completed,omitempty"`
}

// Range is one resolved multi-hour span.
type Range struct {
	Start slot.Hour `json:"start"`
	End   slot.Hour `json:"end"`
	Slot
}

// Document is a fully resolved day view. Slots appear in canonical
// order and contain only non-empty hours: an empty entry resolves to
// absence, not to empty text.
type Document struct {
	Date   dates.Date `json:"date"`
	Slots  []Slot     `json:"slots"`
	Ranges []Range    `json:"ranges"`
}

// Resolve projects the document for date into its display view. It is
// safe to call repeatedly; queue state is only read.
func (e *Engine) Resolve(ctx context.Context, doc *schedule.Document, date dates.Date) (*Document, error) {
	out := &Document{Date: date, Slots: []Slot{}, Ranges: []Range{}}
	if doc == nil {
		return out, nil
	}

	for _, h := range slot.All() {
		stored := doc.Slot(h)
		if stored.IsEmpty() {
			continue
		}
		resolved, err := e.resolveEntry(ctx, stored, date)
		if err != nil {
			return nil, err
		}
		resolved.Hour = h
		out.Slots = append(out.Slots, resolved)
	}

	for _, r := range doc.Ranges {
		if r.Payload.IsEmpty() {
			continue
		}
		resolved, err := e.resolveEntry(ctx, r.Payload, date)
		if err != nil {
			return nil, err
		}
		resolved.Hour = r.Start
		out.Ranges = append(out.Ranges, Range{Start: r.Start, End: r.End, Slot: resolved})
	}

	return out, nil
}

func (e *Engine) resolveEntry(ctx context.Context, stored entry.Entry, date dates.Date) (Slot, error) {
	if stored.Kind == entry.Text {
		return Slot{Kind: entry.Text, Text: stored.Text}, nil
	}

	s := Slot{
		Kind:     entry.TaskRef,
		TaskID:   stored.TaskID,
		ListKind: stored.ListKind,
	}
	t, ok, err := e.Tasks.Find(ctx, stored.ListKind, date, stored.TaskID)
	if err != nil {
		return Slot{}, err
	}
	if !ok {
		s.Text = MissingTaskText
		s.Completed = false
		return s, nil
	}
	s.Text = t.Text
	s.Completed = t.Completed
	return s, nil
}
