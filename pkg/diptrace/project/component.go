package project

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceASCII/pkg/diptrace/asc"
	"github.com/OpenTraceLab/OpenTraceASCII/pkg/diptrace/ops"
)

// Component is one component as it appears in both documents: all parts of
// a multi-part schematic symbol and the board footprint.
type Component struct {
	Parts     []*asc.Item
	Footprint *asc.Item
}

// Reference returns the reference designator.
func (c Component) Reference() string {
	for _, it := range c.items() {
		if ref, ok := it.ValueAt(ops.ComponentNameSlot); ok {
			return ref
		}
	}
	return ""
}

// Number returns the component number shared by all items.
func (c Component) Number() (int, error) {
	items := c.items()
	if len(items) == 0 {
		return 0, &asc.NotFoundError{What: "component items"}
	}
	return items[0].FieldInt(ops.FieldNumber)
}

func (c Component) items() []*asc.Item {
	items := append([]*asc.Item(nil), c.Parts...)
	if c.Footprint != nil {
		items = append(items, c.Footprint)
	}
	return items
}

// Component looks up a component by reference designator. Board footprints
// are matched by reference, falling back to the component number.
func (p *Project) Component(ref string) (Component, error) {
	var c Component
	for _, it := range p.Components(Schematic) {
		if s, ok := it.ValueAt(ops.ComponentNameSlot); ok && s == ref {
			c.Parts = append(c.Parts, it)
		}
	}

	for _, it := range p.Components(Board) {
		if s, ok := it.ValueAt(ops.ComponentNameSlot); ok && s == ref {
			c.Footprint = it
			break
		}
	}
	if c.Footprint == nil && len(c.Parts) > 0 {
		if n, err := c.Parts[0].FieldInt(ops.FieldNumber); err == nil {
			for _, it := range p.Components(Board) {
				if m, err := it.FieldInt(ops.FieldNumber); err == nil && m == n {
					c.Footprint = it
					break
				}
			}
		}
	}

	if len(c.Parts) == 0 && c.Footprint == nil {
		return Component{}, &asc.NotFoundError{What: fmt.Sprintf("component %q", ref)}
	}
	return c, nil
}

// DuplicateComponent copies every part and the footprint of c under a new
// reference. The copies share one new component number and one new hidden
// id. Nothing changes if the reference is taken or a copy cannot be built.
func (p *Project) DuplicateComponent(c Component, ref string) (Component, error) {
	if p.IsReferenceInUse(ref) {
		return Component{}, &ReferenceExistsError{Name: ref}
	}
	if len(c.Parts) == 0 && c.Footprint == nil {
		return Component{}, &asc.NotFoundError{What: "component items"}
	}

	number := p.componentNumbers.Peek()
	hidden := p.hiddenIDs.Peek()
	id := ops.Identity{
		Number:   number,
		HiddenID: &hidden,
		Name:     ref,
		NameSlot: ops.ComponentNameSlot,
	}

	var dup Component
	for _, part := range c.Parts {
		clone, err := ops.CloneWithIdentity(part, id)
		if err != nil {
			return Component{}, fmt.Errorf("failed to duplicate part: %w", err)
		}
		dup.Parts = append(dup.Parts, clone)
	}
	if c.Footprint != nil {
		fid := id
		if c.Footprint.Child(ops.FieldHiddenID) == nil {
			fid.HiddenID = nil
		}
		clone, err := ops.CloneWithIdentity(c.Footprint, fid)
		if err != nil {
			return Component{}, fmt.Errorf("failed to duplicate footprint: %w", err)
		}
		dup.Footprint = clone
	}

	schParent := p.collection(Schematic, "Components")
	brdParent := p.collection(Board, "Components")
	if len(dup.Parts) > 0 && schParent == nil {
		return Component{}, &asc.NotFoundError{What: "Schematic/Components"}
	}
	if dup.Footprint != nil && brdParent == nil {
		return Component{}, &asc.NotFoundError{What: "Board/Components"}
	}

	// Commit.
	for _, part := range dup.Parts {
		schParent.AddChild(part)
	}
	if dup.Footprint != nil {
		brdParent.AddChild(dup.Footprint)
		p.componentPresence.Mark(number, Board)
	}
	if len(dup.Parts) > 0 {
		p.componentPresence.Mark(number, Schematic)
	}
	p.componentNumbers.Next()
	p.hiddenIDs.Next()

	return dup, nil
}

// RenameComponent changes the reference designator on every item of c.
func (p *Project) RenameComponent(c Component, ref string) error {
	if p.IsReferenceInUse(ref) {
		return &ReferenceExistsError{Name: ref}
	}
	items := c.items()
	for _, it := range items {
		if _, err := it.StringAt(ops.ComponentNameSlot); err != nil {
			return err
		}
	}
	for _, it := range items {
		if err := ops.Rename(it, ops.ComponentNameSlot, ref); err != nil {
			return err
		}
	}
	return nil
}

// MoveComponent moves the items of c in one document: every schematic part,
// or the board footprint. With relative set, x and y are offsets.
func (p *Project) MoveComponent(c Component, doc Document, x, y float64, relative bool) error {
	items, err := c.itemsIn(doc)
	if err != nil {
		return err
	}
	for _, it := range items {
		if err := ops.CheckMove(it); err != nil {
			return err
		}
	}
	for _, it := range items {
		if relative {
			err = ops.MoveRelative(it, x, y)
		} else {
			err = ops.MoveAbsolute(it, x, y)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// RotateComponent sets or, with relative set, turns the angle of the items
// of c in one document.
func (p *Project) RotateComponent(c Component, doc Document, degrees int, relative bool) error {
	items, err := c.itemsIn(doc)
	if err != nil {
		return err
	}
	for _, it := range items {
		if err := ops.CheckRotate(it); err != nil {
			return err
		}
	}
	for _, it := range items {
		if relative {
			err = ops.RotateRelative(it, degrees)
		} else {
			err = ops.RotateAbsolute(it, degrees)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (c Component) itemsIn(doc Document) ([]*asc.Item, error) {
	if doc == Board {
		if c.Footprint == nil {
			return nil, &asc.NotFoundError{What: fmt.Sprintf("board footprint of %q", c.Reference())}
		}
		return []*asc.Item{c.Footprint}, nil
	}
	if len(c.Parts) == 0 {
		return nil, &asc.NotFoundError{What: fmt.Sprintf("schematic parts of %q", c.Reference())}
	}
	return c.Parts, nil
}
