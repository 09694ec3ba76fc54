package project

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceASCII/pkg/diptrace/asc"
	"github.com/OpenTraceLab/OpenTraceASCII/pkg/diptrace/ops"
)

// Net pairs the schematic and board items of one net. Either may be nil
// when the net exists in one document only.
type Net struct {
	Schematic *asc.Item
	Board     *asc.Item
}

// Name returns the net name.
func (n Net) Name() string {
	for _, it := range n.items() {
		if name, ok := it.ValueAt(ops.NetNameSlot); ok {
			return name
		}
	}
	return ""
}

func (n Net) items() []*asc.Item {
	var items []*asc.Item
	if n.Schematic != nil {
		items = append(items, n.Schematic)
	}
	if n.Board != nil {
		items = append(items, n.Board)
	}
	return items
}

// Net looks up a net by name in both documents.
func (p *Project) Net(name string) (Net, error) {
	var n Net
	n.Schematic = findByName(p.Nets(Schematic), name)
	n.Board = findByName(p.Nets(Board), name)
	if n.Schematic == nil && n.Board == nil {
		return Net{}, &asc.NotFoundError{What: fmt.Sprintf("net %q", name)}
	}
	return n, nil
}

func findByName(items []*asc.Item, name string) *asc.Item {
	for _, it := range items {
		if s, ok := it.ValueAt(ops.NetNameSlot); ok && s == name {
			return it
		}
	}
	return nil
}

// DuplicateNet copies the net under a new name in both documents. The copies
// share one new net number. Nothing changes on failure.
func (p *Project) DuplicateNet(n Net, name string) (Net, error) {
	if p.IsNetNameInUse(name) {
		return Net{}, &NetNameExistsError{Name: name}
	}
	if n.Schematic == nil && n.Board == nil {
		return Net{}, &asc.NotFoundError{What: "net items"}
	}

	number := p.netNumbers.Peek()
	id := ops.Identity{Number: number, Name: name, NameSlot: ops.NetNameSlot}

	var dup Net
	var err error
	if n.Schematic != nil {
		if dup.Schematic, err = ops.CloneWithIdentity(n.Schematic, id); err != nil {
			return Net{}, fmt.Errorf("failed to duplicate schematic net: %w", err)
		}
	}
	if n.Board != nil {
		if dup.Board, err = ops.CloneWithIdentity(n.Board, id); err != nil {
			return Net{}, fmt.Errorf("failed to duplicate board net: %w", err)
		}
	}

	schParent := p.collection(Schematic, "Nets")
	brdParent := p.collection(Board, "Nets")
	if dup.Schematic != nil && schParent == nil {
		return Net{}, &asc.NotFoundError{What: "Schematic/Nets"}
	}
	if dup.Board != nil && brdParent == nil {
		return Net{}, &asc.NotFoundError{What: "Board/Nets"}
	}

	if dup.Schematic != nil {
		schParent.AddChild(dup.Schematic)
		p.netPresence.Mark(number, Schematic)
	}
	if dup.Board != nil {
		brdParent.AddChild(dup.Board)
		p.netPresence.Mark(number, Board)
	}
	p.netNumbers.Next()

	return dup, nil
}

// RenameNet changes the name of the net in both documents.
func (p *Project) RenameNet(n Net, name string) error {
	if p.IsNetNameInUse(name) {
		return &NetNameExistsError{Name: name}
	}
	items := n.items()
	for _, it := range items {
		if _, err := it.StringAt(ops.NetNameSlot); err != nil {
			return err
		}
	}
	for _, it := range items {
		if err := ops.Rename(it, ops.NetNameSlot, name); err != nil {
			return err
		}
	}
	return nil
}
