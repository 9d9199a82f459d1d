package schedule

import (
	"context"
	"errors"
	"testing"

	"tableflip.dev/dayplan/pkg/dates"
	"tableflip.dev/dayplan/pkg/entry"
	"tableflip.dev/dayplan/pkg/slot"
	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/task"
)

var testDate = dates.Date("2025-11-25")

func newStore() *Store {
	return &Store{Persistence: store.NewMemory()}
}

func mustCreate(t *testing.T, s *Store, kind Kind) {
	t.Helper()
	if _, err := s.CreateForDate(context.Background(), testDate, kind); err != nil {
		t.Fatal(err)
	}
}

func hour(t *testing.T, name string) slot.Hour {
	t.Helper()
	h, err := slot.Parse(name)
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func TestCreateForDateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newStore()

	created, err := s.CreateForDate(ctx, testDate, Plan)
	if err != nil {
		t.Fatal(err)
	}
	if !created {
		t.Fatal("first create should report created")
	}

	if _, err := s.SetSlot(ctx, testDate, Plan, hour(t, "8am"), entry.NewText("gym")); err != nil {
		t.Fatal(err)
	}

	created, err = s.CreateForDate(ctx, testDate, Plan)
	if err != nil {
		t.Fatal(err)
	}
	if created {
		t.Fatal("second create should report already exists")
	}

	doc, err := s.Read(ctx, testDate, Plan)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Slot(hour(t, "8am")).Text != "gym" {
		t.Fatal("second create reset existing content")
	}
}

func TestCreateJournalUsesFormatPrototype(t *testing.T) {
	ctx := context.Background()
	s := newStore()

	proto := NewDocument()
	proto.SetSlot(hour(t, "7am"), entry.NewText("wake up"))
	data, err := proto.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	k := store.Key{Category: FormatCategory, Name: string(Journal)}
	if err := s.Persistence.Write(k, data); err != nil {
		t.Fatal(err)
	}

	mustCreate(t, s, Journal)
	doc, err := s.Read(ctx, testDate, Journal)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Slot(hour(t, "7am")).Text != "wake up" {
		t.Fatal("journal should bootstrap from the format prototype")
	}
}

func TestCreateJournalWithoutPrototypeFallsBack(t *testing.T) {
	s := newStore()
	mustCreate(t, s, Journal)
	doc, err := s.Read(context.Background(), testDate, Journal)
	if err != nil {
		t.Fatal(err)
	}
	for _, h := range slot.All() {
		if !doc.Slot(h).IsEmpty() {
			t.Fatalf("slot %s should start empty", h)
		}
	}
}

func TestSetSlotRequiresDocument(t *testing.T) {
	s := newStore()
	_, err := s.SetSlot(context.Background(), testDate, Plan, hour(t, "8am"), entry.NewText("gym"))
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSetSlotReportsPrevious(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	mustCreate(t, s, Plan)

	change, err := s.SetSlot(ctx, testDate, Plan, hour(t, "8am"), entry.NewText("gym"))
	if err != nil {
		t.Fatal(err)
	}
	if !change.Previous.IsEmpty() || change.New.Text != "gym" {
		t.Fatalf("change %+v", change)
	}

	change, err = s.SetSlot(ctx, testDate, Plan, hour(t, "8am"), entry.NewTaskRef("t1", task.HaveToDo))
	if err != nil {
		t.Fatal(err)
	}
	if change.Previous.Text != "gym" || change.New.TaskID != "t1" {
		t.Fatalf("change %+v", change)
	}
}

func TestAppendTextJoinsWithNewline(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	mustCreate(t, s, Plan)
	h := hour(t, "8am")

	change, err := s.AppendTextToSlot(ctx, testDate, Plan, h, "gym")
	if err != nil {
		t.Fatal(err)
	}
	if change.New.Text != "gym" {
		t.Fatalf("first append gave %q", change.New.Text)
	}

	change, err = s.AppendTextToSlot(ctx, testDate, Plan, h, "run")
	if err != nil {
		t.Fatal(err)
	}
	if change.New.Text != "gym\nrun" {
		t.Fatalf("second append gave %q, want gym\\nrun", change.New.Text)
	}
}

func TestAppendTextToTaskRefIsRefused(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	mustCreate(t, s, Plan)
	h := hour(t, "9am")

	if _, err := s.SetSlot(ctx, testDate, Plan, h, entry.NewTaskRef("t1", task.HaveToDo)); err != nil {
		t.Fatal(err)
	}

	_, err := s.AppendTextToSlot(ctx, testDate, Plan, h, "notes")
	if !errors.Is(err, ErrImmutableEntry) {
		t.Fatalf("expected ErrImmutableEntry, got %v", err)
	}

	// The failed append must not have touched the slot.
	doc, _ := s.Read(ctx, testDate, Plan)
	if doc.Slot(h).TaskID != "t1" {
		t.Fatalf("slot mutated to %+v", doc.Slot(h))
	}
}

func TestClearSlotIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	mustCreate(t, s, Plan)
	h := hour(t, "8am")

	if _, err := s.SetSlot(ctx, testDate, Plan, h, entry.NewText("gym")); err != nil {
		t.Fatal(err)
	}
	change, err := s.ClearSlot(ctx, testDate, Plan, h)
	if err != nil {
		t.Fatal(err)
	}
	if change.Previous.Text != "gym" || !change.New.IsEmpty() {
		t.Fatalf("change %+v", change)
	}

	change, err = s.ClearSlot(ctx, testDate, Plan, h)
	if err != nil {
		t.Fatal(err)
	}
	if !change.Previous.IsEmpty() {
		t.Fatalf("second clear should report an empty deletion, got %+v", change)
	}
}

func TestSetRangeRejectsMisorderedBounds(t *testing.T) {
	s := newStore()
	mustCreate(t, s, Plan)

	r := entry.Range{Start: hour(t, "9am"), End: hour(t, "8am"), Payload: entry.NewText("x")}
	if _, err := s.SetRange(context.Background(), testDate, Plan, r); !errors.Is(err, entry.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestSetRangeUpsertsByExactBounds(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	mustCreate(t, s, Plan)

	nine, eleven := hour(t, "9am"), hour(t, "11am")
	first, _ := entry.NewRange(nine, eleven, entry.NewText("deep work"))

	change, err := s.SetRange(ctx, testDate, Plan, first)
	if err != nil {
		t.Fatal(err)
	}
	if !change.Created {
		t.Fatal("first set should create")
	}

	second, _ := entry.NewRange(nine, eleven, entry.NewText("meetings"))
	change, err = s.SetRange(ctx, testDate, Plan, second)
	if err != nil {
		t.Fatal(err)
	}
	if change.Created || change.Previous == nil || change.Previous.Text != "deep work" {
		t.Fatalf("upsert change %+v", change)
	}

	// Overlapping bounds are a distinct range, not a replacement.
	overlapping, _ := entry.NewRange(hour(t, "10am"), hour(t, "12pm"), entry.NewText("also this"))
	change, err = s.SetRange(ctx, testDate, Plan, overlapping)
	if err != nil {
		t.Fatal(err)
	}
	if !change.Created {
		t.Fatal("different bounds should append")
	}

	doc, _ := s.Read(ctx, testDate, Plan)
	if len(doc.Ranges) != 2 {
		t.Fatalf("expected 2 ranges, got %d", len(doc.Ranges))
	}
}

func TestRemoveRange(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	mustCreate(t, s, Plan)

	nine, eleven := hour(t, "9am"), hour(t, "11am")
	r, _ := entry.NewRange(nine, eleven, entry.NewText("deep work"))
	if _, err := s.SetRange(ctx, testDate, Plan, r); err != nil {
		t.Fatal(err)
	}

	removed, err := s.RemoveRange(ctx, testDate, Plan, nine, eleven)
	if err != nil {
		t.Fatal(err)
	}
	if !removed {
		t.Fatal("expected removal")
	}

	removed, err = s.RemoveRange(ctx, testDate, Plan, nine, eleven)
	if err != nil {
		t.Fatal(err)
	}
	if removed {
		t.Fatal("removing a missing range reports false, not an error")
	}
}

func TestReadManyMapsMissingToNil(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	mustCreate(t, s, Plan)

	other := dates.Date("2025-11-26")
	docs, err := s.ReadMany(ctx, []dates.Date{testDate, other}, Plan)
	if err != nil {
		t.Fatal(err)
	}
	if docs[testDate] == nil {
		t.Fatal("existing date should map to its document")
	}
	if docs[other] != nil {
		t.Fatal("missing date should map to nil")
	}
}
