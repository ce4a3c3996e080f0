// Package service defines the interface the presentation layers use to
// reach task storage.
package service

import "todo/internal/task"

// Service defines the task operations available to the menu, the
// interactive browser and the commands. None of them import the store
// directly.
//
// Every id argument must be positive; anything else fails with
// task.ErrInvalidArgument before a lookup happens. A task that does not
// exist is reported as a nil result, never as an error.
type Service interface {
	// Add creates a task with the next id. A nil description means none.
	Add(title string, description *string) (*task.Task, error)

	// List returns all tasks in insertion order as an independent slice.
	List() []*task.Task

	// Get returns the live task so setters on it are visible to the store.
	Get(id int) (*task.Task, error)

	// Update replaces the title and/or description; nil leaves a field as is.
	Update(id int, title, description *string) (*task.Task, error)

	// Delete removes a task permanently and reports whether it existed.
	Delete(id int) (bool, error)

	// MarkComplete sets the completed flag.
	MarkComplete(id int) (*task.Task, error)

	// MarkIncomplete clears the completed flag.
	MarkIncomplete(id int) (*task.Task, error)

	// NextID returns the id the next Add will assign without consuming it.
	NextID() int

	// Len returns the number of tasks currently stored.
	Len() int
}
