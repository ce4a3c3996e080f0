package task

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// Record is the structured form of a task. Description is nil when the
// task has none.
type Record struct {
	ID          int     `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Description *string `json:"description" yaml:"description"`
	Completed   bool    `json:"completed" yaml:"completed"`
}

// Record returns the structured form of the task.
func (t *Task) Record() Record {
	return Record{
		ID:          t.id,
		Title:       t.title,
		Description: cloneString(t.description),
		Completed:   t.completed,
	}
}

// Records converts tasks to records, preserving order.
func Records(tasks []*Task) []Record {
	out := make([]Record, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Record())
	}
	return out
}

//go:embed task.schema.json
var schemaJSON string

const schemaURL = "mem://todo/task.schema.json"

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("load record schema: %w", err)
			return
		}
		schema, schemaErr = compiler.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile record schema: %w", schemaErr)
		}
	})
	return schema, schemaErr
}

// RecordError reports a schema violation at a path such as "[0].title".
type RecordError struct {
	Path string
	Err  error
}

func (e *RecordError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// ValidateRecords checks records against the embedded task schema. It
// returns the first violation found, or nil.
func ValidateRecords(records []Record) error {
	s, err := compiledSchema()
	if err != nil {
		return err
	}

	if records == nil {
		records = []Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unmarshal records: %w", err)
	}

	if err := s.Validate(doc); err != nil {
		ve, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return err
		}
		return firstLeaf(ve)
	}
	return nil
}

func firstLeaf(ve *jsonschema.ValidationError) error {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return &RecordError{
		Path: pointerToPath(ve.InstanceLocation),
		Err:  fmt.Errorf("%s", ve.Message),
	}
}

// pointerToPath turns "/0/title" into "[0].title".
func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}
	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
