package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"tableflip.dev/dayplan/pkg/dates"
	"tableflip.dev/dayplan/pkg/entry"
	"tableflip.dev/dayplan/pkg/slot"
	"tableflip.dev/dayplan/pkg/store"
)

var (
	// ErrImmutableEntry reports an append against a task-reference
	// slot; task references are atomic and never merged with text.
	ErrImmutableEntry = errors.New("schedule: entry is immutable")
)

// FormatCategory holds external format definitions; the journal
// prototype document lives at format/journal.
const FormatCategory = "format"

// Store provides the schedule operations over a document store. Each
// operation is one read-modify-write of a single (date, kind)
// document.
type Store struct {
	Persistence store.Persistence

	mu sync.Mutex
}

// SlotChange reports a slot mutation.
type SlotChange struct {
	Previous entry.Entry `json:"previous"`
	New      entry.Entry `json:"new"`
}

// RangeChange reports a range upsert.
type RangeChange struct {
	Created  bool         `json:"created"`
	Previous *entry.Entry `json:"previous,omitempty"`
}

func key(date dates.Date, kind Kind) store.Key {
	return store.Key{Category: string(kind), Name: date.String()}
}

// CreateForDate writes an empty document for (date, kind) unless one
// exists; creating twice reports created=false and leaves content
// alone. The journal kind bootstraps from the external format
// prototype when one is stored; the plan kind always starts from the
// generated empty grid.
func (s *Store) CreateForDate(ctx context.Context, date dates.Date, kind Kind) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(date, kind)
	if s.Persistence.Exists(k) {
		return false, nil
	}

	doc, err := s.template(kind)
	if err != nil {
		return false, err
	}
	if err := s.write(k, doc); err != nil {
		return false, err
	}
	return true, nil
}

// template returns the bootstrap document for the kind. The two kinds
// differ only here, never in shape.
func (s *Store) template(kind Kind) (*Document, error) {
	if kind != Journal {
		return NewDocument(), nil
	}
	data, err := s.Persistence.Read(store.Key{Category: FormatCategory, Name: string(Journal)})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return NewDocument(), nil
		}
		return nil, err
	}
	return UnmarshalDocument(data)
}

// Read returns the document for (date, kind), or store.ErrNotFound.
func (s *Store) Read(ctx context.Context, date dates.Date, kind Kind) (*Document, error) {
	data, err := s.Persistence.Read(key(date, kind))
	if err != nil {
		return nil, err
	}
	return UnmarshalDocument(data)
}

// ReadMany returns a document per requested date; missing dates map
// to nil rather than an error.
func (s *Store) ReadMany(ctx context.Context, ds []dates.Date, kind Kind) (map[dates.Date]*Document, error) {
	out := make(map[dates.Date]*Document, len(ds))
	for _, d := range ds {
		doc, err := s.Read(ctx, d, kind)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				out[d] = nil
				continue
			}
			return nil, err
		}
		out[d] = doc
	}
	return out, nil
}

// Dates lists the dates a document exists for, in order.
func (s *Store) Dates(ctx context.Context, kind Kind) []dates.Date {
	names := s.Persistence.Names(ctx, string(kind))
	out := make([]dates.Date, 0, len(names))
	for _, n := range names {
		d, err := dates.Parse(n)
		if err != nil {
			continue
		}
		out = append(out, d)
	}
	return out
}

// SetSlot replaces the hour's entry wholesale. The document must
// already exist.
func (s *Store) SetSlot(ctx context.Context, date dates.Date, kind Kind, hour slot.Hour, e entry.Entry) (SlotChange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.Read(ctx, date, kind)
	if err != nil {
		return SlotChange{}, err
	}
	previous := doc.Slot(hour)
	doc.SetSlot(hour, e)
	if err := s.write(key(date, kind), doc); err != nil {
		return SlotChange{}, err
	}
	return SlotChange{Previous: previous, New: e}, nil
}

// AppendTextToSlot joins text onto the hour's existing entry with a
// newline. Valid only against empty or text slots; a task reference
// is immutable.
func (s *Store) AppendTextToSlot(ctx context.Context, date dates.Date, kind Kind, hour slot.Hour, text string) (SlotChange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.Read(ctx, date, kind)
	if err != nil {
		return SlotChange{}, err
	}
	previous := doc.Slot(hour)

	var next entry.Entry
	switch previous.Kind {
	case entry.TaskRef:
		return SlotChange{}, fmt.Errorf("%w: %s %s %s holds a task reference", ErrImmutableEntry, date, kind, hour)
	case entry.Text:
		joined := previous.Text
		if add := strings.TrimSpace(text); add != "" {
			joined = joined + "\n" + add
		}
		next = entry.NewText(joined)
	default:
		next = entry.NewText(text)
	}

	doc.SetSlot(hour, next)
	if err := s.write(key(date, kind), doc); err != nil {
		return SlotChange{}, err
	}
	return SlotChange{Previous: previous, New: next}, nil
}

// ClearSlot empties the hour. Clearing an already-empty slot succeeds
// and reports the empty deletion.
func (s *Store) ClearSlot(ctx context.Context, date dates.Date, kind Kind, hour slot.Hour) (SlotChange, error) {
	return s.SetSlot(ctx, date, kind, hour, entry.Entry{})
}

// SetRange validates and upserts a range by its exact (start, end)
// pair: a matching range is replaced, anything else is appended.
func (s *Store) SetRange(ctx context.Context, date dates.Date, kind Kind, r entry.Range) (RangeChange, error) {
	if err := r.Validate(); err != nil {
		return RangeChange{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.Read(ctx, date, kind)
	if err != nil {
		return RangeChange{}, err
	}

	change := RangeChange{Created: true}
	if i := doc.RangeIndex(r.Start, r.End); i >= 0 {
		previous := doc.Ranges[i].Payload
		change = RangeChange{Created: false, Previous: &previous}
		doc.Ranges[i] = r
	} else {
		doc.Ranges = append(doc.Ranges, r)
	}

	if err := s.write(key(date, kind), doc); err != nil {
		return RangeChange{}, err
	}
	return change, nil
}

// RemoveRange deletes the range with exactly the given bounds;
// removing a range that is not there reports removed=false, not an
// error.
func (s *Store) RemoveRange(ctx context.Context, date dates.Date, kind Kind, start, end slot.Hour) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.Read(ctx, date, kind)
	if err != nil {
		return false, err
	}
	i := doc.RangeIndex(start, end)
	if i < 0 {
		return false, nil
	}
	doc.Ranges = append(doc.Ranges[:i], doc.Ranges[i+1:]...)
	if err := s.write(key(date, kind), doc); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) write(k store.Key, doc *Document) error {
	data, err := doc.Marshal()
	if err != nil {
		return fmt.Errorf("schedule: encode %s: %w", k, err)
	}
	if err := s.Persistence.EnsureCategory(k.Category); err != nil {
		return err
	}
	return s.Persistence.Write(k, data)
}
