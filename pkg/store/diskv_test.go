package store

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type tempConfig struct {
	path string
}

func (c *tempConfig) BasePath() string { return c.path }

func TestDiskvRoundTrip(t *testing.T) {
	p, err := Load(&tempConfig{path: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}

	key := Key{Category: "queue", Name: "have-to-do"}
	if p.Exists(key) {
		t.Fatal("fresh store should be empty")
	}
	if _, err := p.Read(key); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := p.Write(key, []byte(`{"tasks":[]}`)); err != nil {
		t.Fatal(err)
	}
	if !p.Exists(key) {
		t.Fatal("written key should exist")
	}
	data, err := p.Read(key)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"tasks":[]}` {
		t.Fatalf("read back %s", data)
	}
}

func TestDiskvNamesPerCategory(t *testing.T) {
	p, err := Load(&tempConfig{path: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}

	for _, k := range []Key{
		{Category: "plan", Name: "2025-11-25"},
		{Category: "plan", Name: "2025-11-24"},
		{Category: "journal", Name: "2025-11-25"},
	} {
		if err := p.Write(k, []byte(`{}`)); err != nil {
			t.Fatal(err)
		}
	}

	got := p.Names(context.Background(), "plan")
	want := []string{"2025-11-24", "2025-11-25"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Names(plan) = %v, want %v", got, want)
	}
}

func TestMemoryMatchesContract(t *testing.T) {
	m := NewMemory()
	key := Key{Category: "queue", Name: "want-to-do"}

	if _, err := m.Read(key); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := m.Write(key, []byte("doc")); err != nil {
		t.Fatal(err)
	}
	data, err := m.Read(key)
	if err != nil {
		t.Fatal(err)
	}

	// Mutating the returned slice must not leak into the store.
	data[0] = 'x'
	again, _ := m.Read(key)
	if string(again) != "doc" {
		t.Fatalf("store leaked a shared buffer: %s", again)
	}
}
