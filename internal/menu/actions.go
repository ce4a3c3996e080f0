package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"todo/internal/output"
	"todo/internal/task"
)

// action is one numbered menu entry.
type action struct {
	key   string
	name  string
	label string
	run   func(ctx context.Context, s *Session) error
}

// actions in menu order. Keys are their 1-based positions.
var actions = []action{
	{"1", "add", "Add Task", addTask},
	{"2", "view", "View Tasks", viewTasks},
	{"3", "update", "Update Task", updateTask},
	{"4", "delete", "Delete Task", deleteTask},
	{"5", "complete", "Mark Task Complete", markComplete},
	{"6", "incomplete", "Mark Task Incomplete", markIncomplete},
	{"7", "exit", "Exit", exitMenu},
}

func findAction(key string) (action, bool) {
	for _, a := range actions {
		if a.key == key {
			return a, true
		}
	}
	return action{}, false
}

// handled reports store errors that are shown to the user and do not end
// the session.
func (s *Session) handled(err error) bool {
	if errors.Is(err, task.ErrInvalidArgument) {
		s.printError(err)
		return true
	}
	return false
}

func addTask(ctx context.Context, s *Session) error {
	title, err := s.ask(ctx, "Enter task title: ")
	if err != nil {
		return err
	}
	if title == "" {
		fmt.Fprintln(s.out, "Error: Task title cannot be empty.")
		return nil
	}

	descInput, err := s.ask(ctx, "Enter task description (optional, press Enter to skip): ")
	if err != nil {
		return err
	}
	var desc *string
	if descInput != "" {
		desc = &descInput
	}

	t, err := s.svc.Add(title, desc)
	if err != nil {
		if s.handled(err) {
			return nil
		}
		return err
	}
	s.logger.Debug("task added", "id", t.ID())
	fmt.Fprintf(s.out, "Task '%s' added successfully with ID %d.\n", t.Title(), t.ID())
	return nil
}

func viewTasks(ctx context.Context, s *Session) error {
	tasks := s.svc.List()
	if len(tasks) == 0 {
		fmt.Fprintln(s.out, output.EmptyList)
		return nil
	}
	return output.WriteTasks(s.out, s.opts.Format, tasks)
}

func updateTask(ctx context.Context, s *Session) error {
	id, ok, err := s.askID(ctx, "Enter task ID to update: ")
	if err != nil || !ok {
		return err
	}

	t, err := s.svc.Get(id)
	if err != nil {
		if s.handled(err) {
			return nil
		}
		return err
	}
	if t == nil {
		fmt.Fprintf(s.out, "Error: Task with ID %d not found.\n", id)
		return nil
	}

	fmt.Fprintf(s.out, "Current task: %s\n", t)

	currentDesc := "(none)"
	if d, ok := t.Description(); ok {
		currentDesc = d
	}
	titleInput, err := s.ask(ctx, fmt.Sprintf("Enter new title (current: '%s', press Enter to keep current): ", t.Title()))
	if err != nil {
		return err
	}
	descInput, err := s.ask(ctx, fmt.Sprintf("Enter new description (current: '%s', press Enter to keep current): ", currentDesc))
	if err != nil {
		return err
	}

	var newTitle, newDesc *string
	if titleInput != "" {
		newTitle = &titleInput
	}
	if descInput != "" {
		newDesc = &descInput
	}

	updated, err := s.svc.Update(id, newTitle, newDesc)
	if err != nil {
		if s.handled(err) {
			return nil
		}
		return err
	}
	if updated == nil {
		fmt.Fprintf(s.out, "Error: Failed to update task with ID %d.\n", id)
		return nil
	}
	s.logger.Debug("task updated", "id", id, "title_changed", newTitle != nil, "description_changed", newDesc != nil)
	fmt.Fprintf(s.out, "Task with ID %d updated successfully.\n", id)
	return nil
}

func deleteTask(ctx context.Context, s *Session) error {
	id, ok, err := s.askID(ctx, "Enter task ID to delete: ")
	if err != nil || !ok {
		return err
	}

	t, err := s.svc.Get(id)
	if err != nil {
		if s.handled(err) {
			return nil
		}
		return err
	}
	if t == nil {
		fmt.Fprintf(s.out, "Error: Task with ID %d not found.\n", id)
		return nil
	}

	if s.opts.ConfirmDelete {
		answer, err := s.ask(ctx, fmt.Sprintf("Are you sure you want to delete task '%s'? (y/N): ", t.Title()))
		if err != nil {
			return err
		}
		if !confirmed(answer) {
			fmt.Fprintln(s.out, "Deletion canceled.")
			return nil
		}
	}

	deleted, err := s.svc.Delete(id)
	if err != nil {
		if s.handled(err) {
			return nil
		}
		return err
	}
	if !deleted {
		fmt.Fprintf(s.out, "Error: Failed to delete task with ID %d.\n", id)
		return nil
	}
	s.logger.Debug("task deleted", "id", id)
	fmt.Fprintf(s.out, "Task with ID %d deleted successfully.\n", id)
	return nil
}

func markComplete(ctx context.Context, s *Session) error {
	return setStatus(ctx, s, true)
}

func markIncomplete(ctx context.Context, s *Session) error {
	return setStatus(ctx, s, false)
}

func setStatus(ctx context.Context, s *Session, completed bool) error {
	word := "incomplete"
	mark := s.svc.MarkIncomplete
	if completed {
		word = "complete"
		mark = s.svc.MarkComplete
	}

	id, ok, err := s.askID(ctx, fmt.Sprintf("Enter task ID to mark %s: ", word))
	if err != nil || !ok {
		return err
	}

	t, err := mark(id)
	if err != nil {
		if s.handled(err) {
			return nil
		}
		return err
	}
	if t == nil {
		fmt.Fprintf(s.out, "Error: Task with ID %d not found.\n", id)
		return nil
	}
	s.logger.Debug("task status changed", "id", id, "completed", completed)
	fmt.Fprintf(s.out, "Task with ID %d marked as %s.\n", id, word)
	return nil
}

func exitMenu(ctx context.Context, s *Session) error {
	return errExit
}

// confirmed accepts "y" or "yes" in any case.
func confirmed(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
