package menu

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"todo/internal/logging"
	"todo/internal/output"
	"todo/internal/store"
	"todo/internal/testutil"
)

// runMenu feeds lines to a session over s and returns everything written.
func runMenu(t *testing.T, s *store.Store, opts Options, lines ...string) string {
	t.Helper()

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	sess := New(s, in, &out, opts)
	if err := sess.Run(context.Background()); err != nil {
		t.Fatalf("Run() err = %v", err)
	}
	return out.String()
}

func defaultOpts() Options {
	return Options{Format: output.FormatText, ConfirmDelete: true}
}

func assertContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\nfull output:\n%s", want, out)
		}
	}
}

func TestMenu_WelcomeAndExit(t *testing.T) {
	out := runMenu(t, store.New(), defaultOpts(), "7")

	expected := Welcome + "\n" +
		"\n" +
		"--- Todo Application ---\n" +
		"1. Add Task\n" +
		"2. View Tasks\n" +
		"3. Update Task\n" +
		"4. Delete Task\n" +
		"5. Mark Task Complete\n" +
		"6. Mark Task Incomplete\n" +
		"7. Exit\n" +
		"------------------------\n" +
		"Enter your choice (1-7): " +
		Goodbye + "\n"
	if out != expected {
		t.Errorf("expected:\n%q\ngot:\n%q", expected, out)
	}
}

func TestMenu_InvalidChoice(t *testing.T) {
	out := runMenu(t, store.New(), defaultOpts(), "9", "abc", "7")

	if n := strings.Count(out, "Invalid choice. Please enter a number between 1 and 7.\n"); n != 2 {
		t.Errorf("expected 2 invalid-choice messages, got %d\n%s", n, out)
	}
}

func TestMenu_AddAndView(t *testing.T) {
	s := store.New()
	out := runMenu(t, s, defaultOpts(),
		"1", "  Buy milk  ", "",
		"1", "Call mom", "about Sunday",
		"2",
		"7",
	)

	assertContains(t, out,
		"Task 'Buy milk' added successfully with ID 1.\n",
		"Task 'Call mom' added successfully with ID 2.\n",
		"\n--- Task List ---\n[ ] 1. Buy milk\n[ ] 2. Call mom - about Sunday\n-----------------\n",
	)
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if _, ok := s.List()[0].Description(); ok {
		t.Error("blank description input should leave description absent")
	}
}

func TestMenu_AddEmptyTitle(t *testing.T) {
	s := store.New()
	out := runMenu(t, s, defaultOpts(), "1", "   ", "7")

	assertContains(t, out, "Error: Task title cannot be empty.\n")
	if s.Len() != 0 || s.NextID() != 1 {
		t.Errorf("store changed: Len=%d NextID=%d", s.Len(), s.NextID())
	}
}

func TestMenu_ViewEmpty(t *testing.T) {
	out := runMenu(t, store.New(), defaultOpts(), "2", "7")
	assertContains(t, out, "No tasks found.\n")
}

func TestMenu_ViewJSON(t *testing.T) {
	s := testutil.NewStore(t, testutil.Titles("Buy milk")...)
	opts := defaultOpts()
	opts.Format = output.FormatJSON

	out := runMenu(t, s, opts, "2", "7")
	assertContains(t, out, "\"title\": \"Buy milk\"", "\"description\": null")
}

func TestMenu_Update(t *testing.T) {
	s := testutil.NewStore(t, testutil.SeedTask{Title: "Old", Description: testutil.Desc("keep")})
	out := runMenu(t, s, defaultOpts(), "3", "1", "New title", "", "7")

	assertContains(t, out,
		"Current task: [ ] 1. Old - keep\n",
		"Enter new title (current: 'Old', press Enter to keep current): ",
		"Enter new description (current: 'keep', press Enter to keep current): ",
		"Task with ID 1 updated successfully.\n",
	)
	got, _ := s.Get(1)
	if got.Title() != "New title" {
		t.Errorf("Title = %q", got.Title())
	}
	if d, _ := got.Description(); d != "keep" {
		t.Errorf("Description = %q, want keep", d)
	}
}

func TestMenu_UpdateShowsMissingDescription(t *testing.T) {
	s := testutil.NewStore(t, testutil.Titles("Solo")...)
	out := runMenu(t, s, defaultOpts(), "3", "1", "", "added", "7")

	assertContains(t, out, "(current: '(none)', press Enter to keep current)", "Task with ID 1 updated successfully.\n")
	got, _ := s.Get(1)
	if d, ok := got.Description(); !ok || d != "added" {
		t.Errorf("Description = (%q, %v)", d, ok)
	}
}

func TestMenu_IDErrors(t *testing.T) {
	tests := []struct {
		name   string
		choice string
		input  string
		want   string
	}{
		{"update not a number", "3", "abc", "Error: Task ID must be a number.\n"},
		{"delete negative", "4", "-1", "Error: Task ID must be a number.\n"},
		{"complete zero", "5", "0", "Error: Task ID must be a positive integer.\n"},
		{"incomplete missing", "6", "42", "Error: Task with ID 42 not found.\n"},
		{"update missing", "3", "42", "Error: Task with ID 42 not found.\n"},
		{"delete missing", "4", "42", "Error: Task with ID 42 not found.\n"},
		{"complete overflow", "5", "99999999999999999999999", "Error: Task ID must be a number.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runMenu(t, store.New(), defaultOpts(), tt.choice, tt.input, "7")
			assertContains(t, out, tt.want)
		})
	}
}

func TestMenu_DeleteConfirmed(t *testing.T) {
	s := testutil.NewStore(t, testutil.Titles("Task A", "Task B")...)
	out := runMenu(t, s, defaultOpts(), "4", "1", "YES", "7")

	assertContains(t, out,
		"Are you sure you want to delete task 'Task A'? (y/N): ",
		"Task with ID 1 deleted successfully.\n",
	)
	list := s.List()
	if len(list) != 1 || list[0].ID() != 2 {
		t.Errorf("List() = %v", list)
	}
}

func TestMenu_DeleteCanceled(t *testing.T) {
	s := testutil.NewStore(t, testutil.Titles("Task A")...)
	out := runMenu(t, s, defaultOpts(), "4", "1", "n", "7")

	assertContains(t, out, "Deletion canceled.\n")
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestMenu_DeleteWithoutConfirmation(t *testing.T) {
	s := testutil.NewStore(t, testutil.Titles("Task A")...)
	opts := defaultOpts()
	opts.ConfirmDelete = false

	out := runMenu(t, s, opts, "4", "1", "7")
	if strings.Contains(out, "Are you sure") {
		t.Error("confirmation prompt shown with ConfirmDelete=false")
	}
	assertContains(t, out, "Task with ID 1 deleted successfully.\n")
}

func TestMenu_MarkCompleteThenIncomplete(t *testing.T) {
	s := testutil.NewStore(t, testutil.Titles("Walk dog")...)
	out := runMenu(t, s, defaultOpts(), "5", "1", "2", "6", "1", "2", "7")

	assertContains(t, out,
		"Task with ID 1 marked as complete.\n",
		"[x] 1. Walk dog\n",
		"Task with ID 1 marked as incomplete.\n",
	)
	tail := out[strings.LastIndex(out, "--- Task List ---"):]
	if !strings.Contains(tail, "[ ] 1. Walk dog\n") {
		t.Errorf("final list should show incomplete task:\n%s", tail)
	}
}

func TestMenu_EOFEndsSession(t *testing.T) {
	var out bytes.Buffer
	sess := New(store.New(), strings.NewReader("1\nhalf"), &out, defaultOpts())

	if err := sess.Run(context.Background()); err != nil {
		t.Fatalf("Run() err = %v, want nil", err)
	}
	if strings.Contains(out.String(), Goodbye) {
		t.Error("goodbye printed on EOF")
	}
}

func TestMenu_ContextCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	var out bytes.Buffer
	sess := New(store.New(), pr, &out, defaultOpts())

	done := make(chan error, 1)
	go func() { done <- sess.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() err = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}

func TestMenu_LogsActions(t *testing.T) {
	var logs bytes.Buffer
	logger, err := logging.New(&logs, logging.Options{Level: "debug", Format: "logfmt"})
	if err != nil {
		t.Fatal(err)
	}
	opts := defaultOpts()
	opts.Logger = logger

	runMenu(t, store.New(), opts, "1", "Buy milk", "", "7")

	assertContains(t, logs.String(), "action=add", "msg=\"task added\"", "id=1")
}

func TestConfirmed(t *testing.T) {
	for _, in := range []string{"y", "Y", "yes", " YES "} {
		if !confirmed(in) {
			t.Errorf("confirmed(%q) = false", in)
		}
	}
	for _, in := range []string{"", "n", "no", "yep"} {
		if confirmed(in) {
			t.Errorf("confirmed(%q) = true", in)
		}
	}
}
