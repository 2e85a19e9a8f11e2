package sign

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/sivchari/drills/internal/config"
	"github.com/sivchari/drills/internal/console"
)

// Messages written when no classification is possible.
const (
	InvalidInputMessage = "Invalid input. Please enter an integer."
	NoInputMessage      = "No input provided."
)

// Checker prompts for one number and reports its sign.
type Checker struct {
	config *config.SignConfig
	logger *zap.Logger
}

// NewChecker creates a new checker.
func NewChecker(cfg *config.SignConfig, logger *zap.Logger) *Checker {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Checker{
		config: cfg,
		logger: logger,
	}
}

// Run writes the prompt to out, reads at most one line from in and writes
// exactly one result line. Bad input is reported on out and is not an error;
// only I/O failures are returned.
func (c *Checker) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if _, err := fmt.Fprintf(out, "%s\n%s", c.config.Banner, c.config.Prompt); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	line, err := console.NewReader(in).ReadLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	result := c.evaluate(line, err == nil)

	if _, err := fmt.Fprintln(out, result); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	return nil
}

func (c *Checker) evaluate(line string, ok bool) string {
	if !ok {
		c.logger.Debug("input stream ended before any line")

		return NoInputMessage
	}

	n, err := Parse(line)
	if err != nil {
		c.logger.Debug("rejected input", zap.Error(err))

		return InvalidInputMessage
	}

	s := Classify(n)
	c.logger.Debug("classified input", zap.Int("value", n), zap.Stringer("sign", s))

	return Message(s)
}
