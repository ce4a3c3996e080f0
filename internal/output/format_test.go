package output_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"todo/internal/output"
	"todo/internal/task"
	"todo/internal/testutil"
)

func TestFormatTaskList_Golden(t *testing.T) {
	s := testutil.NewStore(t,
		testutil.SeedTask{Title: "Buy milk"},
		testutil.SeedTask{Title: "Call mom", Description: testutil.Desc("about Sunday"), Completed: true},
		testutil.SeedTask{Title: "Deleted"},
		testutil.SeedTask{Title: "Empty note", Description: testutil.Desc("")},
	)
	if ok, _ := s.Delete(3); !ok {
		t.Fatal("Delete(3) = false")
	}

	var buf bytes.Buffer
	output.FormatTaskList(&buf, s.List())
	testutil.GoldenString(t, "task_list", buf.String())
}

func TestFormatTaskList_Empty(t *testing.T) {
	var buf bytes.Buffer
	output.FormatTaskList(&buf, nil)
	if buf.String() != "No tasks found.\n" {
		t.Errorf("expected %q, got %q", "No tasks found.\n", buf.String())
	}
}

func TestFormatTask_MultilineDescription(t *testing.T) {
	tk, _ := task.New(1, "Plan", task.Desc("line one\nline two"), false)

	var buf bytes.Buffer
	output.FormatTask(&buf, tk)
	expected := "[ ] 1. Plan - line one line two\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    output.Format
		wantErr bool
	}{
		{"text", output.FormatText, false},
		{"JSON", output.FormatJSON, false},
		{" yaml ", output.FormatYAML, false},
		{"xml", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := output.ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteTasks_JSON(t *testing.T) {
	s := testutil.NewStore(t,
		testutil.SeedTask{Title: "Buy milk"},
		testutil.SeedTask{Title: "Call mom", Description: testutil.Desc("soon"), Completed: true},
	)

	var buf bytes.Buffer
	if err := output.WriteTasks(&buf, output.FormatJSON, s.List()); err != nil {
		t.Fatalf("WriteTasks() err = %v", err)
	}

	expected := `[
  {
    "id": 1,
    "title": "Buy milk",
    "description": null,
    "completed": false
  },
  {
    "id": 2,
    "title": "Call mom",
    "description": "soon",
    "completed": true
  }
]
`
	if buf.String() != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, buf.String())
	}
}

func TestWriteTasks_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := output.WriteTasks(&buf, output.FormatJSON, nil); err != nil {
		t.Fatalf("WriteTasks() err = %v", err)
	}
	if buf.String() != "[]\n" {
		t.Errorf("expected %q, got %q", "[]\n", buf.String())
	}
}

func TestWriteTasks_YAML(t *testing.T) {
	s := testutil.NewStore(t, testutil.SeedTask{Title: "Buy milk"})

	var buf bytes.Buffer
	if err := output.WriteTasks(&buf, output.FormatYAML, s.List()); err != nil {
		t.Fatalf("WriteTasks() err = %v", err)
	}

	for _, want := range []string{"- id: 1\n", "title: Buy milk\n", "description: null\n", "completed: false\n"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("yaml output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestWriteTasks_Text(t *testing.T) {
	s := testutil.NewStore(t, testutil.Titles("a")...)

	var buf bytes.Buffer
	if err := output.WriteTasks(&buf, output.FormatText, s.List()); err != nil {
		t.Fatalf("WriteTasks() err = %v", err)
	}
	if !strings.Contains(buf.String(), "[ ] 1. a\n") {
		t.Errorf("unexpected text output %q", buf.String())
	}
}

func TestWriteRecords_RejectsInvalid(t *testing.T) {
	var buf bytes.Buffer
	err := output.WriteRecords(&buf, output.FormatJSON, []task.Record{{ID: 0, Title: "x"}})
	if err == nil {
		t.Fatal("expected schema error")
	}
	if buf.Len() != 0 {
		t.Errorf("expected nothing written, got %q", buf.String())
	}
}

func TestWriteRecords_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := output.WriteRecords(&buf, output.FormatText, nil); err == nil {
		t.Fatal("expected error for text records")
	}
}

func TestWriteRecords_JSONIsParseable(t *testing.T) {
	recs := []task.Record{{ID: 9, Title: "t", Description: task.Desc("")}}

	var buf bytes.Buffer
	if err := output.WriteRecords(&buf, output.FormatJSON, recs); err != nil {
		t.Fatalf("WriteRecords() err = %v", err)
	}
	var decoded []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if decoded[0]["description"] != "" {
		t.Errorf("description: got %v, want empty string", decoded[0]["description"])
	}
}
