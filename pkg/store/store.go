// Package store persists JSON documents under composite keys. A key
// is (category, name): categories are containers like "journal",
// "plan" or "queue", names identify one document within a category.
//
// The store offers no optimistic-concurrency token and no cross-key
// transactions. Two writers racing on the same key resolve to the
// last full-document write; callers own their read-modify-write
// windows.
package store

import (
	"context"
	"errors"
)

// ErrNotFound reports a missing document.
var ErrNotFound = errors.New("store: document not found")

// Key addresses one document.
type Key struct {
	Category string
	Name     string
}

func (k Key) String() string {
	return k.Category + "/" + k.Name
}

// Persistence is the document store contract.
type Persistence interface {
	// Exists reports whether a document is present under key.
	Exists(key Key) bool
	// Read returns the document bytes, or ErrNotFound.
	Read(key Key) ([]byte, error)
	// Write replaces the full document under key.
	Write(key Key, data []byte) error
	// Names lists the document names present in a category.
	Names(ctx context.Context, category string) []string
	// EnsureCategory creates the category container if needed.
	EnsureCategory(category string) error
}
