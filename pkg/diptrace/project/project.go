// Package project pairs a DipTrace schematic with its board and keeps the
// component and net numbering of the two documents consistent while they
// are edited.
package project

import (
	"fmt"
	"io"

	"github.com/OpenTraceLab/OpenTraceASCII/pkg/diptrace/asc"
	"github.com/OpenTraceLab/OpenTraceASCII/pkg/diptrace/ops"
)

// Project holds the schematic and board trees together with the number
// allocators derived from them.
type Project struct {
	schematic *asc.File
	board     *asc.File

	componentNumbers NumberAllocator
	hiddenIDs        NumberAllocator
	netNumbers       NumberAllocator

	componentPresence PresenceMap
	netPresence       PresenceMap
}

// New creates a project with two empty documents.
func New() *Project {
	p := &Project{
		schematic: &asc.File{Root: asc.NewRoot(), LineEnding: "\n"},
		board:     &asc.File{Root: asc.NewRoot(), LineEnding: "\n"},
	}
	p.componentPresence = PresenceMap{}
	p.netPresence = PresenceMap{}
	return p
}

// Load parses both documents.
func Load(schematic, board io.Reader) (*Project, error) {
	p := New()
	if err := p.ParseSchematic(schematic); err != nil {
		return nil, err
	}
	if err := p.ParseBoard(board); err != nil {
		return nil, err
	}
	return p, nil
}

// ParseSchematic replaces the schematic tree and rescans the project.
func (p *Project) ParseSchematic(r io.Reader) error {
	f, err := asc.Parse(r)
	if err != nil {
		return fmt.Errorf("failed to parse schematic: %w", err)
	}
	prev := p.schematic
	p.schematic = f
	if err := p.scan(); err != nil {
		p.schematic = prev
		return fmt.Errorf("failed to scan schematic: %w", err)
	}
	return nil
}

// ParseBoard replaces the board tree and rescans the project.
func (p *Project) ParseBoard(r io.Reader) error {
	f, err := asc.Parse(r)
	if err != nil {
		return fmt.Errorf("failed to parse board: %w", err)
	}
	prev := p.board
	p.board = f
	if err := p.scan(); err != nil {
		p.board = prev
		return fmt.Errorf("failed to scan board: %w", err)
	}
	return nil
}

// WriteSchematic serializes the schematic tree.
func (p *Project) WriteSchematic(w io.Writer) error {
	_, err := p.schematic.WriteTo(w)
	return err
}

// WriteBoard serializes the board tree.
func (p *Project) WriteBoard(w io.Writer) error {
	_, err := p.board.WriteTo(w)
	return err
}

// File returns the parsed document.
func (p *Project) File(doc Document) *asc.File {
	if doc == Board {
		return p.board
	}
	return p.schematic
}

// Components returns the component items of a document. A document without
// a component collection has none.
func (p *Project) Components(doc Document) []*asc.Item {
	if c := p.collection(doc, "Components"); c != nil {
		return c.Children()
	}
	return nil
}

// Nets returns the net items of a document.
func (p *Project) Nets(doc Document) []*asc.Item {
	if c := p.collection(doc, "Nets"); c != nil {
		return c.Children()
	}
	return nil
}

func (p *Project) collection(doc Document, name string) *asc.Item {
	if doc == Board {
		return p.board.Root.Path("Board", name)
	}
	return p.schematic.Root.Path("Schematic", name)
}

// ComponentNumbers returns the allocator for component numbers.
func (p *Project) ComponentNumbers() *NumberAllocator { return &p.componentNumbers }

// HiddenIDs returns the allocator for component hidden ids.
func (p *Project) HiddenIDs() *NumberAllocator { return &p.hiddenIDs }

// NetNumbers returns the allocator for net numbers.
func (p *Project) NetNumbers() *NumberAllocator { return &p.netNumbers }

// ComponentPresence returns which documents carry each component number.
func (p *Project) ComponentPresence() PresenceMap { return p.componentPresence }

// NetPresence returns which documents carry each net number.
func (p *Project) NetPresence() PresenceMap { return p.netPresence }

// scan rebuilds allocators and presence maps from both trees. The project
// state changes only when both trees scan cleanly.
func (p *Project) scan() error {
	var componentNumbers, hiddenIDs, netNumbers NumberAllocator
	componentPresence, netPresence := PresenceMap{}, PresenceMap{}

	for _, doc := range []Document{Schematic, Board} {
		for _, c := range p.Components(doc) {
			n, err := c.FieldInt(ops.FieldNumber)
			if err != nil {
				return fmt.Errorf("%s component: %w", doc, err)
			}
			componentNumbers.Observe(n)
			componentPresence.Mark(n, doc)

			if c.Child(ops.FieldHiddenID) != nil {
				h, err := c.FieldInt(ops.FieldHiddenID)
				if err != nil {
					return fmt.Errorf("%s component %d: %w", doc, n, err)
				}
				hiddenIDs.Observe(h)
			}
		}

		for _, net := range p.Nets(doc) {
			n, err := net.FieldInt(ops.FieldNumber)
			if err != nil {
				return fmt.Errorf("%s net: %w", doc, err)
			}
			netNumbers.Observe(n)
			netPresence.Mark(n, doc)
		}
	}

	p.componentNumbers, p.hiddenIDs, p.netNumbers = componentNumbers, hiddenIDs, netNumbers
	p.componentPresence, p.netPresence = componentPresence, netPresence
	return nil
}

// IsReferenceInUse reports whether a component in either document carries
// the reference designator.
func (p *Project) IsReferenceInUse(ref string) bool {
	return p.nameInUse(p.Components, ops.ComponentNameSlot, ref)
}

// IsNetNameInUse reports whether a net in either document carries the name.
func (p *Project) IsNetNameInUse(name string) bool {
	return p.nameInUse(p.Nets, ops.NetNameSlot, name)
}

func (p *Project) nameInUse(items func(Document) []*asc.Item, slot int, name string) bool {
	for _, doc := range []Document{Schematic, Board} {
		for _, it := range items(doc) {
			if s, ok := it.ValueAt(slot); ok && s == name {
				return true
			}
		}
	}
	return false
}
