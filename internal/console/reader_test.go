package console

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadLine(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "empty content",
			content:  "",
			expected: nil,
		},
		{
			name:     "single line",
			content:  "42\n",
			expected: []string{"42"},
		},
		{
			name:     "no trailing newline",
			content:  "Toyota\nCorolla\n2020",
			expected: []string{"Toyota", "Corolla", "2020"},
		},
		{
			name:     "crlf terminators",
			content:  "a\r\nb\r\n",
			expected: []string{"a", "b"},
		},
		{
			name:     "blank line",
			content:  "\n",
			expected: []string{""},
		},
		{
			name:     "line longer than 64 KiB",
			content:  strings.Repeat("9", 70000) + "\nnext\n",
			expected: []string{strings.Repeat("9", 70000), "next"},
		},
		{
			name:     "long final line without newline",
			content:  strings.Repeat("x", 100000),
			expected: []string{strings.Repeat("x", 100000)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reader := NewReader(strings.NewReader(tc.content))

			var lines []string

			for {
				line, err := reader.ReadLine()
				if errors.Is(err, io.EOF) {
					break
				}

				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}

				lines = append(lines, line)
			}

			if diff := cmp.Diff(tc.expected, lines); diff != "" {
				t.Errorf("lines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestReadLine_Error(t *testing.T) {
	reader := NewReader(failingReader{})

	_, err := reader.ReadLine()
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if errors.Is(err, io.EOF) {
		t.Errorf("expected read error, got io.EOF")
	}
}

func TestTrim(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"spaces and tabs", " \t42\t ", "42"},
		{"control characters", "\x00\x1f7\r", "7"},
		{"non-breaking space kept", "5\u00a0", "5\u00a0"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Trim(tt.in); got != tt.want {
				t.Errorf("Trim(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
