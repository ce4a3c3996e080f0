package menu

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNotANumber indicates the task id input was not a decimal number.
var ErrNotANumber = errors.New("task ID must be a number")

// ParseID parses a task id typed by the user. Surrounding whitespace is
// ignored; anything other than ASCII digits is rejected. Zero parses
// successfully and is left for the store to reject.
func ParseID(input string) (int, error) {
	input = strings.TrimSpace(input)
	if !isAllDigits(input) {
		return 0, ErrNotANumber
	}
	id, err := strconv.Atoi(input)
	if err != nil {
		// Only overflow is possible here.
		return 0, ErrNotANumber
	}
	return id, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
