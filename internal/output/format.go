// Package output provides formatters for task output.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"todo/internal/task"
)

const (
	// ListHeader opens the framed task list.
	ListHeader = "--- Task List ---"

	// ListFooter closes the framed task list.
	ListFooter = "-----------------"

	// EmptyList is printed when there are no tasks.
	EmptyList = "No tasks found."
)

// Format is a task list output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat returns the Format named by s (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format: %s", s)
	}
}

// FormatTask writes one rendered task line.
// Format: "[x] {id}. {title} - {description}"
func FormatTask(w io.Writer, t *task.Task) {
	fmt.Fprintln(w, normalizeLine(t.String()))
}

// FormatTaskList writes the framed list, or EmptyList when there are no
// tasks.
func FormatTaskList(w io.Writer, tasks []*task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, EmptyList)
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, ListHeader)
	for _, t := range tasks {
		FormatTask(w, t)
	}
	fmt.Fprintln(w, ListFooter)
}

// WriteTasks writes tasks in the given format. Text uses FormatTaskList;
// json and yaml write the structured records.
func WriteTasks(w io.Writer, format Format, tasks []*task.Task) error {
	if format == FormatText {
		FormatTaskList(w, tasks)
		return nil
	}
	return WriteRecords(w, format, task.Records(tasks))
}

// WriteRecords writes structured records as json (2-space indent,
// trailing newline) or yaml. Records are checked against the task schema
// first.
func WriteRecords(w io.Writer, format Format, records []task.Record) error {
	if err := task.ValidateRecords(records); err != nil {
		return fmt.Errorf("invalid task records: %w", err)
	}
	if records == nil {
		records = []task.Record{}
	}

	var data []byte
	var err error
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal json: %w", err)
		}
		data = append(data, '\n')
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		data = buf.Bytes()
	default:
		return fmt.Errorf("unsupported record format: %s", format)
	}

	_, err = w.Write(data)
	return err
}

// normalizeLine replaces newlines so a task always renders on one line.
func normalizeLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
