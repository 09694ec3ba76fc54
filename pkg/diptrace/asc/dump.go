package asc

import (
	"fmt"
	"io"
	"strings"
)

// DumpOptions controls Dump output.
type DumpOptions struct {
	// Attributes adds the attribute values after each identifier.
	Attributes bool

	// MaxDepth stops descending below this depth. Zero means unlimited.
	MaxDepth int
}

// Dump prints the identifier outline of a tree, three spaces per level.
func Dump(w io.Writer, it *Item, opts DumpOptions) error {
	return dump(w, it, "", 0, opts)
}

func dump(w io.Writer, it *Item, indent string, depth int, opts DumpOptions) error {
	next := indent
	if it.kind != KindRoot {
		line := indent + it.Identifier
		if opts.Attributes && len(it.Attributes) > 0 {
			vals := make([]string, len(it.Attributes))
			for i, a := range it.Attributes {
				vals[i] = a.Text()
			}
			line += " " + strings.Join(vals, " ")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		next = indent + "   "
		depth++
	}

	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		return nil
	}
	for _, child := range it.children {
		if err := dump(w, child, next, depth, opts); err != nil {
			return err
		}
	}
	return nil
}
