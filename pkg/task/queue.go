package task

import "encoding/json"

// Queue is an ordered sequence of tasks where position 0 is the
// highest priority. Positions are dense; ids are unique within one
// queue. Priority is positional, so the structure is an indexable
// slice with O(n) repositioning rather than a comparator heap.
type Queue struct {
	Tasks []Task `json:"tasks"`
}

// Len returns the number of tasks, completed ones included.
func (q *Queue) Len() int {
	return len(q.Tasks)
}

// IndexOf returns the position of id, or -1.
func (q *Queue) IndexOf(id string) int {
	for i, t := range q.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Contains reports whether id is present.
func (q *Queue) Contains(id string) bool {
	return q.IndexOf(id) >= 0
}

// Get returns the task with the given id.
func (q *Queue) Get(id string) (Task, bool) {
	if i := q.IndexOf(id); i >= 0 {
		return q.Tasks[i], true
	}
	return Task{}, false
}

// Insert places t at position, clamping into [0, len]. A position at
// or past the end appends. Inserting an id already present is refused
// so queue ids stay unique.
func (q *Queue) Insert(t Task, position int) (int, error) {
	if q.Contains(t.ID) {
		return -1, ErrDuplicate
	}
	position = clamp(position, 0, len(q.Tasks))
	q.Tasks = append(q.Tasks, Task{})
	copy(q.Tasks[position+1:], q.Tasks[position:])
	q.Tasks[position] = t
	return position, nil
}

// Append places t at the end of the queue.
func (q *Queue) Append(t Task) (int, error) {
	return q.Insert(t, len(q.Tasks))
}

// Remove deletes the task with the given id, closing the gap.
func (q *Queue) Remove(id string) (Task, bool) {
	i := q.IndexOf(id)
	if i < 0 {
		return Task{}, false
	}
	t := q.Tasks[i]
	q.Tasks = append(q.Tasks[:i], q.Tasks[i+1:]...)
	return t, true
}

// Move repositions id to newPosition, clamped into [0, len-1]. Moving
// to the current position is a successful no-op, not an error.
func (q *Queue) Move(id string, newPosition int) (previous, now int, err error) {
	previous = q.IndexOf(id)
	if previous < 0 {
		return -1, -1, ErrNotFound
	}
	newPosition = clamp(newPosition, 0, len(q.Tasks)-1)
	if newPosition == previous {
		return previous, previous, nil
	}
	t := q.Tasks[previous]
	q.Tasks = append(q.Tasks[:previous], q.Tasks[previous+1:]...)
	q.Tasks = append(q.Tasks, Task{})
	copy(q.Tasks[newPosition+1:], q.Tasks[newPosition:])
	q.Tasks[newPosition] = t
	return previous, newPosition, nil
}

// Replace overwrites the task currently stored under t.ID in place.
func (q *Queue) Replace(t Task) bool {
	i := q.IndexOf(t.ID)
	if i < 0 {
		return false
	}
	q.Tasks[i] = t
	return true
}

// Prepend inserts a block of tasks ahead of the existing content,
// preserving the block's relative order. Ids already present are
// skipped.
func (q *Queue) Prepend(tasks []Task) []Task {
	added := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if q.Contains(t.ID) {
			continue
		}
		added = append(added, t)
	}
	if len(added) == 0 {
		return added
	}
	q.Tasks = append(append([]Task{}, added...), q.Tasks...)
	return added
}

// Marshal serialises the queue document.
func (q *Queue) Marshal() ([]byte, error) {
	if q.Tasks == nil {
		q.Tasks = []Task{}
	}
	return json.Marshal(q)
}

// UnmarshalQueue deserialises a queue document, upgrading the legacy
// shape where the document is a bare array of tasks.
func UnmarshalQueue(data []byte) (*Queue, error) {
	if len(data) == 0 {
		return &Queue{Tasks: []Task{}}, nil
	}
	q := &Queue{}
	if err := json.Unmarshal(data, q); err == nil {
		if q.Tasks == nil {
			q.Tasks = []Task{}
		}
		return q, nil
	}
	var legacy []Task
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, err
	}
	return &Queue{Tasks: legacy}, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
