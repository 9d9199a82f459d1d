package resolve

import (
	"context"
	"testing"

	"tableflip.dev/dayplan/pkg/dates"
	"tableflip.dev/dayplan/pkg/entry"
	"tableflip.dev/dayplan/pkg/queue"
	"tableflip.dev/dayplan/pkg/schedule"
	"tableflip.dev/dayplan/pkg/slot"
	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/task"
)

var testDate = dates.Date("2025-11-25")

func fixture(t *testing.T) (*Engine, *queue.Manager, *schedule.Document) {
	t.Helper()
	m := &queue.Manager{Persistence: store.NewMemory()}
	return &Engine{Tasks: m}, m, schedule.NewDocument()
}

func hour(t *testing.T, name string) slot.Hour {
	t.Helper()
	h, err := slot.Parse(name)
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func TestResolveFiltersEmptySlots(t *testing.T) {
	e, _, doc := fixture(t)
	doc.SetSlot(hour(t, "8am"), entry.NewText("gym"))

	resolved, err := e.Resolve(context.Background(), doc, testDate)
	if err != nil {
		t.Fatal(err)
	}
	if len(resolved.Slots) != 1 {
		t.Fatalf("expected 1 resolved slot, got %d", len(resolved.Slots))
	}
	got := resolved.Slots[0]
	if got.Hour != hour(t, "8am") || got.Text != "gym" || got.Kind != entry.Text {
		t.Fatalf("resolved %+v", got)
	}
}

func TestResolveKeepsCanonicalOrder(t *testing.T) {
	e, _, doc := fixture(t)
	doc.SetSlot(hour(t, "1am"), entry.NewText("late"))
	doc.SetSlot(hour(t, "7am"), entry.NewText("early"))
	doc.SetSlot(hour(t, "3pm"), entry.NewText("afternoon"))

	resolved, err := e.Resolve(context.Background(), doc, testDate)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"early", "afternoon", "late"}
	for i, s := range resolved.Slots {
		if s.Text != want[i] {
			t.Fatalf("slot %d = %q, want %q", i, s.Text, want[i])
		}
	}
}

func TestResolveJoinsTaskState(t *testing.T) {
	ctx := context.Background()
	e, m, doc := fixture(t)

	added, err := m.Append(ctx, task.HaveToDo, task.General(), task.Task{Text: "call the bank"}, -1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Complete(ctx, task.HaveToDo, task.General(), added.ID); err != nil {
		t.Fatal(err)
	}
	doc.SetSlot(hour(t, "9am"), entry.NewTaskRef(added.ID, task.HaveToDo))

	resolved, err := e.Resolve(ctx, doc, testDate)
	if err != nil {
		t.Fatal(err)
	}
	got := resolved.Slots[0]
	if got.Kind != entry.TaskRef || got.Text != "call the bank" || !got.Completed {
		t.Fatalf("resolved %+v", got)
	}
	if got.TaskID != added.ID || got.ListKind != task.HaveToDo {
		t.Fatalf("reference identity lost: %+v", got)
	}
}

func TestResolvePrefersDailyState(t *testing.T) {
	ctx := context.Background()
	e, m, doc := fixture(t)

	if _, err := m.Append(ctx, task.HaveToDo, task.General(), task.Task{ID: "t", Text: "general text"}, -1); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Append(ctx, task.HaveToDo, task.Daily(testDate), task.Task{ID: "t2", Text: "daily text"}, -1); err != nil {
		t.Fatal(err)
	}
	doc.SetSlot(hour(t, "9am"), entry.NewTaskRef("t2", task.HaveToDo))

	resolved, err := e.Resolve(ctx, doc, testDate)
	if err != nil {
		t.Fatal(err)
	}
	if resolved.Slots[0].Text != "daily text" {
		t.Fatalf("resolved %+v, want the daily queue's state", resolved.Slots[0])
	}
}

func TestResolveDanglingReferenceDegrades(t *testing.T) {
	e, _, doc := fixture(t)
	doc.SetSlot(hour(t, "9am"), entry.NewTaskRef("deleted", task.HaveToDo))

	resolved, err := e.Resolve(context.Background(), doc, testDate)
	if err != nil {
		t.Fatalf("resolution must not fail on a dangling reference: %v", err)
	}
	got := resolved.Slots[0]
	if got.Text != MissingTaskText {
		t.Fatalf("placeholder text %q", got.Text)
	}
	if got.Completed {
		t.Fatal("dangling reference must resolve as not completed")
	}
}

func TestResolveRanges(t *testing.T) {
	ctx := context.Background()
	e, m, doc := fixture(t)

	added, err := m.Append(ctx, task.WantToDo, task.General(), task.Task{Text: "write"}, -1)
	if err != nil {
		t.Fatal(err)
	}
	textRange, _ := entry.NewRange(hour(t, "9am"), hour(t, "11am"), entry.NewText("deep work"))
	taskRange, _ := entry.NewRange(hour(t, "1pm"), hour(t, "3pm"), entry.NewTaskRef(added.ID, task.WantToDo))
	doc.Ranges = append(doc.Ranges, textRange, taskRange)

	resolved, err := e.Resolve(ctx, doc, testDate)
	if err != nil {
		t.Fatal(err)
	}
	if len(resolved.Ranges) != 2 {
		t.Fatalf("expected 2 resolved ranges, got %d", len(resolved.Ranges))
	}
	if resolved.Ranges[0].Start != hour(t, "9am") || resolved.Ranges[0].End != hour(t, "11am") {
		t.Fatalf("range bounds lost: %+v", resolved.Ranges[0])
	}
	if resolved.Ranges[1].Text != "write" {
		t.Fatalf("task range resolved as %+v", resolved.Ranges[1])
	}
}

func TestResolveIsReadOnly(t *testing.T) {
	ctx := context.Background()
	e, m, doc := fixture(t)

	if _, err := m.Append(ctx, task.HaveToDo, task.General(), task.Task{ID: "t", Text: "x"}, -1); err != nil {
		t.Fatal(err)
	}
	doc.SetSlot(hour(t, "9am"), entry.NewTaskRef("t", task.HaveToDo))

	first, err := e.Resolve(ctx, doc, testDate)
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.Resolve(ctx, doc, testDate)
	if err != nil {
		t.Fatal(err)
	}
	if len(first.Slots) != len(second.Slots) || first.Slots[0] != second.Slots[0] {
		t.Fatal("repeated resolution should be identical")
	}

	general, _ := m.List(ctx, task.HaveToDo, task.General())
	if len(general) != 1 {
		t.Fatal("resolution mutated queue state")
	}
}

func TestResolveNilDocument(t *testing.T) {
	e, _, _ := fixture(t)
	resolved, err := e.Resolve(context.Background(), nil, testDate)
	if err != nil {
		t.Fatal(err)
	}
	if len(resolved.Slots) != 0 || len(resolved.Ranges) != 0 {
		t.Fatalf("nil document resolved as %+v", resolved)
	}
}
