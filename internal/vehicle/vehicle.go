// Package vehicle reads a car record from line input and prints its details.
package vehicle

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sivchari/drills/internal/console"
)

var (
	// ErrMissingLine is returned when the input ends before all fields are read.
	ErrMissingLine = errors.New("missing input line")
	// ErrInvalidYear is returned when the year line is not a base-10 integer.
	ErrInvalidYear = errors.New("invalid year")
)

// Vehicle is a car record. Fields are set once by New.
type Vehicle struct {
	Brand string
	Model string
	Year  int
}

// New creates a new vehicle.
func New(brand, model string, year int) Vehicle {
	return Vehicle{
		Brand: brand,
		Model: model,
		Year:  year,
	}
}

// Read reads brand, model and year from r, one per line, in that order.
func Read(r io.Reader) (Vehicle, error) {
	reader := console.NewReader(r)

	fields := []string{"brand", "model", "year"}
	values := make([]string, 0, len(fields))

	for _, field := range fields {
		line, err := reader.ReadLine()
		if errors.Is(err, io.EOF) {
			return Vehicle{}, fmt.Errorf("%w: %s", ErrMissingLine, field)
		}

		if err != nil {
			return Vehicle{}, err
		}

		values = append(values, console.Trim(line))
	}

	year, err := strconv.ParseInt(values[2], 10, 32)
	if err != nil {
		return Vehicle{}, fmt.Errorf("%w: %w", ErrInvalidYear, err)
	}

	return New(values[0], values[1], int(year)), nil
}

// Details returns the report printed for v.
func (v Vehicle) Details() string {
	var sb strings.Builder

	sb.WriteString("Car Details:\n")
	fmt.Fprintf(&sb, "Brand: %s\n", v.Brand)
	fmt.Fprintf(&sb, "Model: %s\n", v.Model)
	fmt.Fprintf(&sb, "Year: %d\n", v.Year)

	return sb.String()
}

// WriteDetails writes the report for v to w.
func (v Vehicle) WriteDetails(w io.Writer) error {
	if _, err := io.WriteString(w, v.Details()); err != nil {
		return fmt.Errorf("failed to write details: %w", err)
	}

	return nil
}
