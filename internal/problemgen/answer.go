package problemgen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/multiz/internal/equation"
)

// ErrEmptyAnswer is returned when the player submitted nothing.
var ErrEmptyAnswer = errors.New("empty answer")

// ParseAnswer converts typed input to an integer.
//
// Normalization rules:
// - Whitespace is trimmed
// - Leading zeros are ignored (e.g., "007" is 7)
func ParseAnswer(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, ErrEmptyAnswer
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", input, err)
	}
	return n, nil
}

// CheckAnswer reports whether input is the value of q's unknown role.
// Non-numeric input is an error, not an incorrect answer.
func CheckAnswer(input string, q equation.Question) (bool, error) {
	n, err := ParseAnswer(input)
	if err != nil {
		return false, err
	}
	return n == q.Answer(), nil
}
