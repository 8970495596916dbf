// Package output provides context-aware output for bump.
// Stdout is used for primary data output (tables, URLs).
// Stderr (via log package) is used for diagnostics.
package output

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/raphi011/bump/internal/ui/styles"
)

type ctxKey struct{}

// Printer writes primary output (data, tables, URLs) to stdout.
type Printer struct {
	w io.Writer
}

// New creates a new Printer writing to the given writer.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// WithPrinter attaches a Printer to the context.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, &Printer{w: w})
}

// FromContext retrieves the Printer from context.
// Returns a Printer writing to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return &Printer{w: os.Stdout}
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Successf writes a success-styled line.
func (p *Printer) Successf(format string, a ...any) {
	fmt.Fprintln(p.w, styles.SuccessStyle.Render(fmt.Sprintf(format, a...)))
}

// Errorf writes an error-styled line.
func (p *Printer) Errorf(format string, a ...any) {
	fmt.Fprintln(p.w, styles.ErrorStyle.Render(fmt.Sprintf(format, a...)))
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}
