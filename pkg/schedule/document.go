// Package schedule owns the per-date documents behind the two
// parallel day views: the retrospective journal and the prospective
// plan. A document maps each of the 24 fixed hour-slots to an entry
// and carries an ordered list of multi-hour ranges. Ranges are
// addressed by their exact (start, end) pair; overlapping ranges with
// different bounds are accepted and never reconciled against each
// other.
package schedule

import (
	"encoding/json"
	"fmt"
	"strings"

	"tableflip.dev/dayplan/pkg/entry"
	"tableflip.dev/dayplan/pkg/slot"
)

// Kind separates the two day views.
type Kind string

const (
	Journal Kind = "journal"
	Plan    Kind = "plan"
)

// ParseKind converts a string to a Kind.
func ParseKind(raw string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "journal":
		return Journal, nil
	case "plan":
		return Plan, nil
	}
	return "", fmt.Errorf("schedule: unknown kind %q", raw)
}

// Document is one day's schedule. Slots is keyed by slot name and
// always carries all 24 slots once normalised.
type Document struct {
	Slots  map[string]entry.Entry `json:"slots"`
	Ranges []entry.Range          `json:"ranges"`
}

// NewDocument returns a document with every slot empty.
func NewDocument() *Document {
	d := &Document{
		Slots:  make(map[string]entry.Entry, slot.Count),
		Ranges: []entry.Range{},
	}
	for _, name := range slot.Names() {
		d.Slots[name] = entry.Entry{}
	}
	return d
}

// Slot returns the entry stored for the hour.
func (d *Document) Slot(h slot.Hour) entry.Entry {
	return d.Slots[h.String()]
}

// SetSlot replaces the entry stored for the hour wholesale.
func (d *Document) SetSlot(h slot.Hour, e entry.Entry) {
	d.Slots[h.String()] = e
}

// RangeIndex finds the range with exactly the given bounds, or -1.
func (d *Document) RangeIndex(start, end slot.Hour) int {
	for i, r := range d.Ranges {
		if r.Matches(start, end) {
			return i
		}
	}
	return -1
}

// normalize fills missing slots and drops unknown slot names so the
// rest of the code can assume the full fixed grid.
func (d *Document) normalize() {
	slots := make(map[string]entry.Entry, slot.Count)
	for _, name := range slot.Names() {
		slots[name] = d.Slots[name]
	}
	d.Slots = slots
	if d.Ranges == nil {
		d.Ranges = []entry.Range{}
	}
}

// Marshal serialises the document with normalised entry shapes.
func (d *Document) Marshal() ([]byte, error) {
	d.normalize()
	return json.Marshal(d)
}

// UnmarshalDocument deserialises a schedule document. Legacy slot
// shapes are normalised by the entry codec; missing slots are filled
// empty.
func UnmarshalDocument(data []byte) (*Document, error) {
	d := &Document{}
	if err := json.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("schedule: decode document: %w", err)
	}
	d.normalize()
	return d, nil
}
