// Package queue owns the ordered task queues: one persistent general
// backlog plus per-date daily subsets, per list kind. Every mutation
// is a full read-modify-write of a single queue document; operations
// that touch the general and a daily queue (due-date promotion) write
// the two documents non-atomically and converge by being idempotent.
package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"tableflip.dev/dayplan/pkg/dates"
	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/task"
)

// Category is the store container queue documents live in.
const Category = "queue"

// Manager provides the queue operations over a document store.
type Manager struct {
	Persistence store.Persistence

	// Now is the clock used for completion timestamps. Defaults to
	// time.Now.
	Now func() time.Time

	mu sync.Mutex
}

// Move reports a reorder outcome.
type Move struct {
	PreviousPosition int `json:"previousPosition"`
	NewPosition      int `json:"newPosition"`
}

// Patch is a partial task update; nil fields are left unchanged and
// a pointer to the empty value clears the field.
type Patch struct {
	Text    *string     `json:"text,omitempty"`
	DueDate *dates.Date `json:"dueDate,omitempty"`
}

func key(kind task.ListKind, scope task.Scope) store.Key {
	name := string(kind)
	if scope.IsDaily() {
		name = fmt.Sprintf("%s.%s", kind, scope.Date())
	}
	return store.Key{Category: Category, Name: name}
}

func (m *Manager) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

// load reads a queue document; a missing document is an empty queue.
func (m *Manager) load(kind task.ListKind, scope task.Scope) (*task.Queue, error) {
	data, err := m.Persistence.Read(key(kind, scope))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &task.Queue{Tasks: []task.Task{}}, nil
		}
		return nil, err
	}
	q, err := task.UnmarshalQueue(data)
	if err != nil {
		return nil, fmt.Errorf("queue: decode %s %s: %w", kind, scope, err)
	}
	return q, nil
}

func (m *Manager) save(kind task.ListKind, scope task.Scope, q *task.Queue) error {
	data, err := q.Marshal()
	if err != nil {
		return fmt.Errorf("queue: encode %s %s: %w", kind, scope, err)
	}
	if err := m.Persistence.EnsureCategory(Category); err != nil {
		return err
	}
	return m.Persistence.Write(key(kind, scope), data)
}

// List returns the queue content in priority order, completed tasks
// included.
func (m *Manager) List(ctx context.Context, kind task.ListKind, scope task.Scope) ([]task.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, err := m.load(kind, scope)
	if err != nil {
		return nil, err
	}
	return q.Tasks, nil
}

// Append inserts t at position, clamped into [0, len]; a negative
// position appends. A missing id is generated. Appending a task with
// a due date to the general backlog also seeds that date's daily
// queue, and appending into a daily queue backfills the general
// backlog so the task keeps a persistent home.
func (m *Manager) Append(ctx context.Context, kind task.ListKind, scope task.Scope, t task.Task, position int) (task.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t.ID == "" {
		t.ID = task.NewID()
	}
	if position < 0 {
		position = int(^uint(0) >> 1) // clamp to append
	}

	q, err := m.load(kind, scope)
	if err != nil {
		return task.Task{}, err
	}
	if _, err := q.Insert(t, position); err != nil {
		return task.Task{}, err
	}
	if err := m.save(kind, scope, q); err != nil {
		return task.Task{}, err
	}

	switch {
	case !scope.IsDaily() && !t.DueDate.IsZero():
		// Due tasks surface in their day's working subset up front.
		if _, err := m.promoteLocked(kind, t.DueDate, []task.Task{t}); err != nil {
			return task.Task{}, err
		}
	case scope.IsDaily():
		general, err := m.load(kind, task.General())
		if err != nil {
			return task.Task{}, err
		}
		if !general.Contains(t.ID) {
			if _, err := general.Append(t); err != nil {
				return task.Task{}, err
			}
			if err := m.save(kind, task.General(), general); err != nil {
				return task.Task{}, err
			}
		}
	}

	return t, nil
}

// Remove deletes the task from the scope's queue. Entries elsewhere
// that reference the id are left to degrade at resolution time.
func (m *Manager) Remove(ctx context.Context, kind task.ListKind, scope task.Scope, id string) (task.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	q, err := m.load(kind, scope)
	if err != nil {
		return task.Task{}, err
	}
	removed, ok := q.Remove(id)
	if !ok {
		return task.Task{}, fmt.Errorf("%w: %s in %s %s", task.ErrNotFound, id, kind, scope)
	}
	if err := m.save(kind, scope, q); err != nil {
		return task.Task{}, err
	}
	return removed, nil
}

// Update applies a partial patch to the task.
func (m *Manager) Update(ctx context.Context, kind task.ListKind, scope task.Scope, id string, p Patch) (task.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	q, err := m.load(kind, scope)
	if err != nil {
		return task.Task{}, err
	}
	t, ok := q.Get(id)
	if !ok {
		return task.Task{}, fmt.Errorf("%w: %s in %s %s", task.ErrNotFound, id, kind, scope)
	}
	if p.Text != nil {
		t.Text = *p.Text
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	q.Replace(t)
	if err := m.save(kind, scope, q); err != nil {
		return task.Task{}, err
	}
	return t, nil
}

// Reorder moves the task to newPosition, clamped into the queue. A
// move onto the current position succeeds without touching the
// document.
func (m *Manager) Reorder(ctx context.Context, kind task.ListKind, scope task.Scope, id string, newPosition int) (Move, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	q, err := m.load(kind, scope)
	if err != nil {
		return Move{}, err
	}
	previous, now, err := q.Move(id, newPosition)
	if err != nil {
		return Move{}, fmt.Errorf("%w: %s in %s %s", err, id, kind, scope)
	}
	if previous != now {
		if err := m.save(kind, scope, q); err != nil {
			return Move{}, err
		}
	}
	return Move{PreviousPosition: previous, NewPosition: now}, nil
}

// Complete marks the task done with a timestamp. Completed tasks keep
// their position; consumers filter them as needed.
func (m *Manager) Complete(ctx context.Context, kind task.ListKind, scope task.Scope, id string) (task.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	q, err := m.load(kind, scope)
	if err != nil {
		return task.Task{}, err
	}
	t, ok := q.Get(id)
	if !ok {
		return task.Task{}, fmt.Errorf("%w: %s in %s %s", task.ErrNotFound, id, kind, scope)
	}
	t.Completed = true
	t.CompletedAt = dates.Timestamp{Time: m.now()}
	q.Replace(t)
	if err := m.save(kind, scope, q); err != nil {
		return task.Task{}, err
	}
	return t, nil
}

// AutoPromoteDue prepends the general-backlog tasks due on date to
// that date's daily queue, as one block in backlog order, skipping ids
// already present. Running it again for the same date is a no-op.
func (m *Manager) AutoPromoteDue(ctx context.Context, kind task.ListKind, date dates.Date) ([]task.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	general, err := m.load(kind, task.General())
	if err != nil {
		return nil, err
	}
	due := make([]task.Task, 0)
	for _, t := range general.Tasks {
		if t.DueDate == date {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return []task.Task{}, nil
	}
	return m.promoteLocked(kind, date, due)
}

// promoteLocked prepends candidates to the date's daily queue,
// skipping ids already there, and reports what was actually added.
// Callers hold m.mu.
func (m *Manager) promoteLocked(kind task.ListKind, date dates.Date, candidates []task.Task) ([]task.Task, error) {
	daily, err := m.load(kind, task.Daily(date))
	if err != nil {
		return nil, err
	}
	added := daily.Prepend(candidates)
	if len(added) == 0 {
		return added, nil
	}
	if err := m.save(kind, task.Daily(date), daily); err != nil {
		return nil, err
	}
	return added, nil
}

// Find looks a task up for resolution: the date's daily queue first,
// then the general backlog. It never mutates queue state.
func (m *Manager) Find(ctx context.Context, kind task.ListKind, date dates.Date, id string) (task.Task, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !date.IsZero() {
		daily, err := m.load(kind, task.Daily(date))
		if err != nil {
			return task.Task{}, false, err
		}
		if t, ok := daily.Get(id); ok {
			return t, true, nil
		}
	}
	general, err := m.load(kind, task.General())
	if err != nil {
		return task.Task{}, false, err
	}
	if t, ok := general.Get(id); ok {
		return t, true, nil
	}
	return task.Task{}, false, nil
}
