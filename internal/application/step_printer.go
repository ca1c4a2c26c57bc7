package application

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bnema/cardsort-cli/internal/domain"
)

// StepPrinter writes the instruction protocol. Transfer instructions carry no
// trailing newline and accumulate on one line while the same pile drains; a
// pile switch or a report line breaks the line first. Close emits the
// trailing newline the stream contract requires on termination.
type StepPrinter struct {
	w       io.Writer
	midLine bool
}

func NewStepPrinter(w io.Writer) *StepPrinter {
	return &StepPrinter{w: w}
}

func (p *StepPrinter) Print(step domain.Step) error {
	for _, size := range step.Sorted {
		if err := p.breakLine(); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(p.w, "Pile of %d cards is already shuffled.\n", size); err != nil {
			return err
		}
	}

	if len(step.Queue) > 0 {
		if err := p.breakLine(); err != nil {
			return err
		}
		sizes := make([]string, len(step.Queue))
		for i, size := range step.Queue {
			sizes[i] = strconv.Itoa(size)
		}
		if _, err := fmt.Fprintf(p.w, "(%s)\n", strings.Join(sizes, " ")); err != nil {
			return err
		}
	}

	if step.Transfer != nil {
		if p.midLine {
			if _, err := io.WriteString(p.w, " "); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(p.w, "%d to %s", step.Transfer.Cards, step.Transfer.Target); err != nil {
			return err
		}
		p.midLine = true
	}

	return nil
}

func (p *StepPrinter) breakLine() error {
	if !p.midLine {
		return nil
	}
	p.midLine = false

	_, err := io.WriteString(p.w, "\n")
	return err
}

// Close ends the transcript with the trailing newline emitted on both
// termination paths, work exhausted or input stream closed.
func (p *StepPrinter) Close() error {
	p.midLine = false

	_, err := io.WriteString(p.w, "\n")
	return err
}
