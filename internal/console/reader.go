// Package console reads line-oriented input from a terminal or pipe.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Reader returns one line at a time from an underlying reader.
// Lines have no length limit.
type Reader struct {
	reader *bufio.Reader
}

// NewReader creates a new line reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		reader: bufio.NewReader(r),
	}
}

// ReadLine returns the next line without its terminator.
// It returns io.EOF once the input is exhausted.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read line: %w", err)
	}

	if err != nil && line == "" {
		return "", io.EOF
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, nil
}

// Trim removes leading and trailing ASCII control characters and spaces.
// Other Unicode whitespace such as U+00A0 is kept.
func Trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return r <= ' '
	})
}
