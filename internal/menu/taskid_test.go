package menu

import (
	"errors"
	"testing"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"  42 ", 42, false},
		{"007", 7, false},
		{"0", 0, false},
		{"", 0, true},
		{"   ", 0, true},
		{"abc", 0, true},
		{"-1", 0, true},
		{"+3", 0, true},
		{"1.5", 0, true},
		{"1 2", 0, true},
		{"99999999999999999999999", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseID(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrNotANumber) {
					t.Fatalf("expected ErrNotANumber, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
