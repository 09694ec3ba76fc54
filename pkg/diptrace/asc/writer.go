package asc

import (
	"io"
	"strings"
)

const indentStep = "  "

// WriteItem writes an item and its sub-items at the given indentation using
// "\n" line endings. The root writes only its children.
func WriteItem(w io.Writer, it *Item, indent string) error {
	var b strings.Builder
	appendItem(&b, it, indent, "\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteTo writes the document. Unmodified documents come out byte for byte
// as they were read, less blank lines and surrounding whitespace. Indentation
// is regenerated and tabs or runs of blanks between tokens become one space.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, f.String())
	return int64(n), err
}

func (f *File) String() string {
	var b strings.Builder
	appendItem(&b, f.Root, "", f.lineEnding())
	return b.String()
}

func (f *File) lineEnding() string {
	if f.LineEnding == "" {
		return "\n"
	}
	return f.LineEnding
}

func appendItem(b *strings.Builder, it *Item, indent, eol string) {
	if it.kind == KindRoot {
		for _, child := range it.children {
			appendItem(b, child, indent, eol)
		}
		return
	}

	b.WriteString(indent)
	b.WriteByte('(')
	b.WriteString(it.Identifier)
	for _, a := range it.Attributes {
		b.WriteByte(' ')
		b.WriteString(a.Text())
	}

	switch {
	case len(it.children) > 0:
		b.WriteString(eol)
		for _, child := range it.children {
			appendItem(b, child, indent+indentStep, eol)
		}
		b.WriteString(indent)
	case it.MayHaveSubItems:
		b.WriteString(eol)
		b.WriteString(indent)
	}
	b.WriteByte(')')
	b.WriteString(eol)
}
