// Package store keeps the in-memory task collection.
package store

import (
	"todo/internal/service"
	"todo/internal/task"
)

var _ service.Service = (*Store)(nil)

// Store owns every task it creates and the id counter. Tasks are kept in
// insertion order; ids start at 1 and are never reused.
//
// A Store is not safe for concurrent use. Callers that share one across
// goroutines must serialize every call behind a single mutex.
type Store struct {
	tasks  []*task.Task
	nextID int
}

// New returns an empty store.
func New() *Store {
	return &Store{nextID: 1}
}

// Add creates a task with the next id and appends it.
func (s *Store) Add(title string, description *string) (*task.Task, error) {
	t, err := task.New(s.nextID, title, description, false)
	if err != nil {
		return nil, err
	}
	s.tasks = append(s.tasks, t)
	s.nextID++
	return t, nil
}

// List returns a copy of the task sequence in insertion order. The slice
// is never nil.
func (s *Store) List() []*task.Task {
	result := make([]*task.Task, len(s.tasks))
	copy(result, s.tasks)
	return result
}

// Get returns the live task with id, or nil if there is none.
func (s *Store) Get(id int) (*task.Task, error) {
	if err := task.ValidateID(id); err != nil {
		return nil, err
	}
	_, t := s.find(id)
	return t, nil
}

// Update replaces the title and/or description of a task. A nil argument
// leaves that field unchanged. It returns nil if the task does not exist.
func (s *Store) Update(id int, title, description *string) (*task.Task, error) {
	if err := task.ValidateID(id); err != nil {
		return nil, err
	}
	if title != nil {
		if err := task.ValidateTitle(*title); err != nil {
			return nil, err
		}
	}

	_, t := s.find(id)
	if t == nil {
		return nil, nil
	}
	if title != nil {
		if err := t.SetTitle(*title); err != nil {
			return nil, err
		}
	}
	if description != nil {
		t.SetDescription(description)
	}
	return t, nil
}

// Delete removes the task with id. It reports false if there was none.
func (s *Store) Delete(id int) (bool, error) {
	if err := task.ValidateID(id); err != nil {
		return false, err
	}
	i, t := s.find(id)
	if t == nil {
		return false, nil
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return true, nil
}

// MarkComplete sets the completed flag. It returns nil if the task does
// not exist.
func (s *Store) MarkComplete(id int) (*task.Task, error) {
	return s.setCompleted(id, true)
}

// MarkIncomplete clears the completed flag. It returns nil if the task
// does not exist.
func (s *Store) MarkIncomplete(id int) (*task.Task, error) {
	return s.setCompleted(id, false)
}

// NextID returns the id the next Add will assign.
func (s *Store) NextID() int {
	return s.nextID
}

// Len returns the number of tasks currently stored.
func (s *Store) Len() int {
	return len(s.tasks)
}

func (s *Store) setCompleted(id int, completed bool) (*task.Task, error) {
	if err := task.ValidateID(id); err != nil {
		return nil, err
	}
	_, t := s.find(id)
	if t == nil {
		return nil, nil
	}
	t.SetCompleted(completed)
	return t, nil
}

func (s *Store) find(id int) (int, *task.Task) {
	for i, t := range s.tasks {
		if t.ID() == id {
			return i, t
		}
	}
	return -1, nil
}
