package vehicle

import (
	"context"
	"io"

	"go.uber.org/zap"
)

// Printer reads one vehicle and prints its details.
type Printer struct {
	logger *zap.Logger
}

// NewPrinter creates a new printer.
func NewPrinter(logger *zap.Logger) *Printer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Printer{logger: logger}
}

// Run reads a vehicle from in and writes its details to out.
// Nothing is written when the input is incomplete or the year is invalid.
func (p *Printer) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	v, err := Read(in)
	if err != nil {
		return err
	}

	p.logger.Debug("read vehicle",
		zap.String("brand", v.Brand),
		zap.String("model", v.Model),
		zap.Int("year", v.Year))

	return v.WriteDetails(out)
}
