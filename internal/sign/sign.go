// Package sign classifies integers entered on the command line.
package sign

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/sivchari/drills/internal/console"
)

// Sign is the result of classifying an integer.
type Sign int

// Possible classifications.
const (
	Negative Sign = iota - 1
	Zero
	Positive
)

// ErrInvalidInput is returned when a line is not a base-10 integer.
var ErrInvalidInput = errors.New("invalid integer input")

// String returns the lower-case name of the sign.
func (s Sign) String() string {
	switch s {
	case Negative:
		return "negative"
	case Zero:
		return "zero"
	case Positive:
		return "positive"
	default:
		return fmt.Sprintf("Sign(%d)", int(s))
	}
}

// Classify returns the sign of n.
func Classify(n int) Sign {
	switch {
	case n > 0:
		return Positive
	case n < 0:
		return Negative
	default:
		return Zero
	}
}

// Message returns the sentence reported for s.
func Message(s Sign) string {
	return "The number is " + s.String()
}

// Parse trims line and parses it as a 32-bit base-10 integer.
func Parse(line string) (int, error) {
	n, err := strconv.ParseInt(console.Trim(line), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, line)
	}

	return int(n), nil
}
