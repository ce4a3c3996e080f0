// Package task defines the to-do record and its validation rules.
package task

import (
	"fmt"
	"strings"
)

// Task is a single to-do item. The zero value is not usable; tasks are
// created by New and can never be observed in an invalid state.
type Task struct {
	id          int
	title       string
	description *string
	completed   bool
}

// New validates its arguments and returns a task. The title is stored
// trimmed; the description is stored verbatim. A nil description means
// the task has none.
func New(id int, title string, description *string, completed bool) (*Task, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	return &Task{
		id:          id,
		title:       normalizeTitle(title),
		description: cloneString(description),
		completed:   completed,
	}, nil
}

// Desc returns a pointer to s, for passing an explicit description.
func Desc(s string) *string {
	return &s
}

// ID returns the task identifier.
func (t *Task) ID() int { return t.id }

// Title returns the trimmed title.
func (t *Task) Title() string { return t.title }

// Completed reports whether the task is done.
func (t *Task) Completed() bool { return t.completed }

// Description returns the description and whether one is set. An empty
// string with ok == true is a present, empty description.
func (t *Task) Description() (string, bool) {
	if t.description == nil {
		return "", false
	}
	return *t.description, true
}

// SetTitle replaces the title after applying the construction rule.
func (t *Task) SetTitle(title string) error {
	if err := ValidateTitle(title); err != nil {
		return err
	}
	t.title = normalizeTitle(title)
	return nil
}

// SetDescription replaces the description verbatim. Passing nil clears it.
func (t *Task) SetDescription(description *string) {
	t.description = cloneString(description)
}

// SetCompleted sets the completion flag.
func (t *Task) SetCompleted(completed bool) {
	t.completed = completed
}

// String renders the task as "[x] 1. Title - description".
func (t *Task) String() string {
	status := "[ ]"
	if t.completed {
		status = "[x]"
	}
	s := fmt.Sprintf("%s %d. %s", status, t.id, t.title)
	if t.description != nil {
		s += " - " + *t.description
	}
	return s
}

func normalizeTitle(title string) string {
	return strings.TrimSpace(title)
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
