// Package textdiff compares two versions of a document line by line.
package textdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Op is the kind of a diff line.
type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

// Line is one line of a diff, without its line ending.
type Line struct {
	Op   Op
	Text string
}

// Lines diffs from against to.
func Lines(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out []Line
	for _, d := range diffs {
		var op Op
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		default:
			op = Equal
		}
		for _, l := range strings.SplitAfter(d.Text, "\n") {
			if l == "" {
				continue
			}
			out = append(out, Line{Op: op, Text: strings.TrimRight(l, "\r\n")})
		}
	}
	return out
}

// Changed reports whether any line differs.
func Changed(lines []Line) bool {
	for _, l := range lines {
		if l.Op != Equal {
			return true
		}
	}
	return false
}

// Stats counts inserted and deleted lines.
func Stats(lines []Line) (inserted, deleted int) {
	for _, l := range lines {
		switch l.Op {
		case Insert:
			inserted++
		case Delete:
			deleted++
		}
	}
	return inserted, deleted
}

// Printer writes diffs in a unified-like layout.
type Printer struct {
	// Context is the number of unchanged lines kept around each change.
	Context int

	header func(format string, a ...any) string
	insert func(format string, a ...any) string
	delete func(format string, a ...any) string
}

// NewPrinter creates a printer, colored or plain.
func NewPrinter(colored bool) *Printer {
	p := &Printer{Context: 3}
	if !colored {
		p.header, p.insert, p.delete = fmt.Sprintf, fmt.Sprintf, fmt.Sprintf
		return p
	}
	p.header = forced(color.New(color.Bold))
	p.insert = forced(color.New(color.FgGreen))
	p.delete = forced(color.New(color.FgRed))
	return p
}

func forced(c *color.Color) func(format string, a ...any) string {
	c.EnableColor()
	return c.SprintfFunc()
}

// Write prints the diff of from and to under the two names.
func (p *Printer) Write(w io.Writer, fromName, toName string, lines []Line) error {
	if !Changed(lines) {
		return nil
	}
	if _, err := fmt.Fprintln(w, p.header("--- %s", fromName)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, p.header("+++ %s", toName)); err != nil {
		return err
	}

	keep := p.visible(lines)
	skipped := false
	for i, l := range lines {
		if !keep[i] {
			skipped = true
			continue
		}
		if skipped {
			if _, err := fmt.Fprintln(w, p.header("@@ line %d @@", i+1)); err != nil {
				return err
			}
			skipped = false
		}
		var s string
		switch l.Op {
		case Insert:
			s = p.insert("+%s", l.Text)
		case Delete:
			s = p.delete("-%s", l.Text)
		default:
			s = " " + l.Text
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

// visible marks the changed lines and their context.
func (p *Printer) visible(lines []Line) []bool {
	keep := make([]bool, len(lines))
	for i, l := range lines {
		if l.Op == Equal {
			continue
		}
		lo, hi := i-p.Context, i+p.Context
		if lo < 0 {
			lo = 0
		}
		if hi > len(lines)-1 {
			hi = len(lines) - 1
		}
		for j := lo; j <= hi; j++ {
			keep[j] = true
		}
	}
	return keep
}
