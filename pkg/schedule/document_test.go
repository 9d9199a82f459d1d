package schedule

import (
	"strings"
	"testing"

	"tableflip.dev/dayplan/pkg/entry"
	"tableflip.dev/dayplan/pkg/slot"
)

func TestUnmarshalDocumentUpgradesLegacySlots(t *testing.T) {
	// Old documents stored slot values as bare strings and carried no
	// ranges collection.
	raw := `{"slots":{"8am":"gym","9am":{"text":"standup"},"10am":{"taskId":"t1","listKind":"have-to-do"}}}`

	doc, err := UnmarshalDocument([]byte(raw))
	if err != nil {
		t.Fatal(err)
	}

	eight, _ := slot.Parse("8am")
	if e := doc.Slot(eight); e.Kind != entry.Text || e.Text != "gym" {
		t.Fatalf("legacy bare string decoded as %+v", e)
	}
	ten, _ := slot.Parse("10am")
	if e := doc.Slot(ten); e.Kind != entry.TaskRef || e.TaskID != "t1" {
		t.Fatalf("task ref decoded as %+v", e)
	}

	if len(doc.Slots) != slot.Count {
		t.Fatalf("normalisation should fill all %d slots, got %d", slot.Count, len(doc.Slots))
	}
	if doc.Ranges == nil {
		t.Fatal("ranges should normalise to an empty collection")
	}
}

func TestMarshalWritesNormalisedShapes(t *testing.T) {
	doc := NewDocument()
	eight, _ := slot.Parse("8am")
	doc.SetSlot(eight, entry.NewText("gym"))

	data, err := doc.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"8am":{"text":"gym"}`) {
		t.Fatalf("text slot not structured: %s", data)
	}
	if !strings.Contains(string(data), `"7am":""`) {
		t.Fatalf("empty slot should persist as the empty string: %s", data)
	}
}
