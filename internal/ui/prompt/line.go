package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Line is a plain prompt: numbered options on out, one line read from
// in. Invalid input re-asks; EOF cancels.
type Line struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewLine creates a Line prompt reading from in and writing to out.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{in: bufio.NewScanner(in), out: out}
}

func (l *Line) Choose(prompt string, options []string) (Choice, error) {
	if len(options) == 0 {
		return Choice{Cancelled: true}, nil
	}

	fmt.Fprintln(l.out, prompt)
	for i, opt := range options {
		fmt.Fprintf(l.out, "  %d) %s\n", i+1, opt)
	}

	for {
		fmt.Fprintf(l.out, "> ")
		if !l.in.Scan() {
			if err := l.in.Err(); err != nil {
				return Choice{}, err
			}
			return Choice{Cancelled: true}, nil
		}
		answer := strings.TrimSpace(l.in.Text())

		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
			return Choice{Index: n - 1, Value: options[n-1]}, nil
		}
		for i, opt := range options {
			if strings.EqualFold(answer, opt) {
				return Choice{Index: i, Value: opt}, nil
			}
		}
		fmt.Fprintf(l.out, "enter a number between 1 and %d\n", len(options))
	}
}
