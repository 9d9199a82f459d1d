// Package task models the obligations and desires tracked in ordered
// queues, split by list kind and scope.
package task

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tableflip.dev/dayplan/pkg/dates"
)

var (
	// ErrNotFound reports a task id missing from the queue it was
	// looked up in.
	ErrNotFound = errors.New("task: not found")
	// ErrDuplicate reports an insert that would repeat an id within
	// one queue.
	ErrDuplicate = errors.New("task: id already queued")
)

// ListKind partitions queues by obligation vs desire.
type ListKind string

const (
	HaveToDo ListKind = "have-to-do"
	WantToDo ListKind = "want-to-do"
)

// Kinds returns the supported list kinds.
func Kinds() []ListKind {
	return []ListKind{HaveToDo, WantToDo}
}

// ParseListKind converts a string (and a few aliases) to a ListKind.
func ParseListKind(raw string) (ListKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "have-to-do", "have", "must":
		return HaveToDo, nil
	case "want-to-do", "want":
		return WantToDo, nil
	}
	return "", fmt.Errorf("task: unknown list kind %q", raw)
}

// Scope names the queue a task lives in: the persistent general
// backlog, or one date's daily working subset. The zero value is the
// general scope.
type Scope struct {
	date dates.Date
}

// General is the persistent backlog scope.
func General() Scope {
	return Scope{}
}

// Daily is the working-subset scope for one date.
func Daily(d dates.Date) Scope {
	return Scope{date: d}
}

// IsDaily reports whether the scope is a per-date subset.
func (s Scope) IsDaily() bool {
	return !s.date.IsZero()
}

// Date returns the scope's date; zero for the general scope.
func (s Scope) Date() dates.Date {
	return s.date
}

func (s Scope) String() string {
	if s.IsDaily() {
		return "daily:" + s.date.String()
	}
	return "general"
}

// Task is one queue item. Its id is stable across scopes: the same
// task can sit in the general backlog and appear in a daily queue
// under the same id.
type Task struct {
	ID          string          `json:"id"`
	Text        string          `json:"text"`
	Completed   bool            `json:"completed"`
	DueDate     dates.Date      `json:"dueDate,omitempty"`
	CompletedAt dates.Timestamp `json:"completedAt,omitempty"`
}

// New creates an unsaved task with a fresh id.
func New(text string) Task {
	return Task{ID: NewID(), Text: text}
}

// NewID generates a stable opaque task identifier.
func NewID() string {
	return uuid.NewString()
}
