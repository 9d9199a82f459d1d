// Package entry models the content of one schedule cell as a sum
// type: empty, free text, or a reference to a queued task. Acceptance
// of the deprecated bare-string shape is confined to the JSON
// boundary here; nothing downstream branches on raw shapes.
package entry

import (
	"encoding/json"
	"fmt"
	"strings"

	"tableflip.dev/dayplan/pkg/task"
)

// Kind discriminates the entry variants.
type Kind int

const (
	Empty Kind = iota
	Text
	TaskRef
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Text:
		return "text"
	case TaskRef:
		return "task"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Entry is one slot's content. Exactly one variant is active; the
// zero value is Empty.
type Entry struct {
	Kind     Kind
	Text     string
	TaskID   string
	ListKind task.ListKind
}

// NewText builds a text entry, normalising whitespace-only input to
// Empty.
func NewText(text string) Entry {
	text = strings.TrimSpace(text)
	if text == "" {
		return Entry{}
	}
	return Entry{Kind: Text, Text: text}
}

// NewTaskRef builds a task-reference entry.
func NewTaskRef(id string, kind task.ListKind) Entry {
	return Entry{Kind: TaskRef, TaskID: id, ListKind: kind}
}

// IsEmpty reports whether the entry holds no content.
func (e Entry) IsEmpty() bool {
	return e.Kind == Empty
}

// persisted is the structured wire shape shared by the text and
// task-reference variants.
type persisted struct {
	Text     string        `json:"text,omitempty"`
	TaskID   string        `json:"taskId,omitempty"`
	ListKind task.ListKind `json:"listKind,omitempty"`
}

// MarshalJSON always writes the normalised shapes: empty entries are
// the empty string, never an object.
func (e Entry) MarshalJSON() ([]byte, error) {
	switch e.Kind {
	case Empty:
		return json.Marshal("")
	case Text:
		return json.Marshal(persisted{Text: e.Text})
	case TaskRef:
		return json.Marshal(persisted{TaskID: e.TaskID, ListKind: e.ListKind})
	}
	return nil, fmt.Errorf("entry: cannot marshal %s", e.Kind)
}

// UnmarshalJSON accepts the structured shape, the deprecated bare
// string, and null, normalising all of them.
func (e *Entry) UnmarshalJSON(b []byte) error {
	if strings.TrimSpace(string(b)) == "null" {
		*e = Entry{}
		return nil
	}
	var legacy string
	if err := json.Unmarshal(b, &legacy); err == nil {
		*e = NewText(legacy)
		return nil
	}
	var p persisted
	if err := json.Unmarshal(b, &p); err != nil {
		return fmt.Errorf("entry: unrecognised shape: %w", err)
	}
	if p.TaskID != "" {
		*e = NewTaskRef(p.TaskID, p.ListKind)
		return nil
	}
	*e = NewText(p.Text)
	return nil
}

func (e Entry) String() string {
	switch e.Kind {
	case Text:
		return e.Text
	case TaskRef:
		return fmt.Sprintf("task %s (%s)", e.TaskID, e.ListKind)
	}
	return ""
}
