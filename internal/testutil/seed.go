// Package testutil provides helpers shared by package tests.
package testutil

import (
	"testing"

	"todo/internal/store"
	"todo/internal/task"
)

// SeedTask describes a task to pre-load into a store.
type SeedTask struct {
	Title       string
	Description *string
	Completed   bool
}

// NewStore returns a store holding the given tasks, added in order so
// they receive ids 1..n.
func NewStore(t *testing.T, seeds ...SeedTask) *store.Store {
	t.Helper()

	s := store.New()
	for _, seed := range seeds {
		added, err := s.Add(seed.Title, seed.Description)
		if err != nil {
			t.Fatalf("seed %q: %v", seed.Title, err)
		}
		if seed.Completed {
			if _, err := s.MarkComplete(added.ID()); err != nil {
				t.Fatalf("seed %q: %v", seed.Title, err)
			}
		}
	}
	return s
}

// Titles returns a store seed list of incomplete tasks without descriptions.
func Titles(titles ...string) []SeedTask {
	seeds := make([]SeedTask, 0, len(titles))
	for _, title := range titles {
		seeds = append(seeds, SeedTask{Title: title})
	}
	return seeds
}

// Desc is task.Desc, re-exported to keep seed literals short.
func Desc(s string) *string {
	return task.Desc(s)
}
