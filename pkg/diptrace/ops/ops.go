// Package ops implements structural edits on DipTrace items: duplication
// with a new identity, renaming, renumbering, moving and rotating.
//
// Every operation validates the fields it touches before changing anything,
// so a failed call leaves the tree as it was.
package ops

import (
	"strconv"

	"github.com/OpenTraceLab/OpenTraceASCII/pkg/diptrace/asc"
)

// Fixed sub-item names.
const (
	FieldNumber   = "Number"
	FieldHiddenID = "HiddenId"
	FieldX        = "X"
	FieldY        = "Y"
	FieldAngle    = "Angle"
)

// Name slots of the items that carry a reference or a net name.
const (
	ComponentNameSlot = 1
	NetNameSlot       = 0
)

// Identity is the set of fields that distinguish a duplicate from its
// original.
type Identity struct {
	Number   int
	HiddenID *int // nil keeps the copied hidden id
	Name     string
	NameSlot int
}

// Duplicate deep-copies it and appends the copy to parent.
func Duplicate(it, parent *asc.Item) *asc.Item {
	c := it.Clone()
	parent.AddChild(c)
	return c
}

// CloneWithIdentity returns a detached deep copy of it with the name,
// Number and, if requested, HiddenId rewritten.
func CloneWithIdentity(it *asc.Item, id Identity) (*asc.Item, error) {
	if err := checkString(it, id.NameSlot); err != nil {
		return nil, err
	}
	if _, err := intField(it, FieldNumber); err != nil {
		return nil, err
	}
	if id.HiddenID != nil {
		if _, err := intField(it, FieldHiddenID); err != nil {
			return nil, err
		}
	}

	c := it.Clone()
	c.Attributes[id.NameSlot].(*asc.StringAttr).Value = id.Name
	num, _ := intField(c, FieldNumber)
	num.SetInt(id.Number)
	if id.HiddenID != nil {
		hid, _ := intField(c, FieldHiddenID)
		hid.SetInt(*id.HiddenID)
	}
	return c, nil
}

// DuplicateWithIdentity is CloneWithIdentity followed by appending the copy
// to parent, the original's container.
func DuplicateWithIdentity(it, parent *asc.Item, id Identity) (*asc.Item, error) {
	c, err := CloneWithIdentity(it, id)
	if err != nil {
		return nil, err
	}
	parent.AddChild(c)
	return c, nil
}

// Rename replaces the string attribute in the given slot.
func Rename(it *asc.Item, slot int, name string) error {
	if err := checkString(it, slot); err != nil {
		return err
	}
	it.Attributes[slot].(*asc.StringAttr).Value = name
	return nil
}

// Renumber sets the integer value of a numbering sub-item such as Number or
// HiddenId.
func Renumber(it *asc.Item, field string, n int) error {
	attr, err := intField(it, field)
	if err != nil {
		return err
	}
	attr.SetInt(n)
	return nil
}

// MoveAbsolute sets the X and Y sub-items.
func MoveAbsolute(it *asc.Item, x, y float64) error {
	return move(it, func(float64) float64 { return x }, func(float64) float64 { return y })
}

// MoveRelative adds dx and dy to the X and Y sub-items.
func MoveRelative(it *asc.Item, dx, dy float64) error {
	return move(it, func(v float64) float64 { return v + dx }, func(v float64) float64 { return v + dy })
}

// CheckMove reports the error a move of it would fail with, if any.
func CheckMove(it *asc.Item) error {
	if _, err := numericField(it, FieldX); err != nil {
		return err
	}
	_, err := numericField(it, FieldY)
	return err
}

func move(it *asc.Item, fx, fy func(float64) float64) error {
	x, err := numericField(it, FieldX)
	if err != nil {
		return err
	}
	y, err := numericField(it, FieldY)
	if err != nil {
		return err
	}

	vx, _ := asc.Numeric(x)
	vy, _ := asc.Numeric(y)
	setCoordinate(it, FieldX, x, fx(vx))
	setCoordinate(it, FieldY, y, fy(vy))
	return nil
}

// setCoordinate writes a coordinate as a double. Integer coordinates are
// replaced by a double attribute.
func setCoordinate(it *asc.Item, field string, attr asc.Attribute, v float64) {
	switch a := attr.(type) {
	case *asc.DoubleAttr:
		a.SetFloat(v)
	case *asc.PercentAttr:
		a.SetFloat(v)
	default:
		it.Child(field).Attributes[0] = asc.NewDouble(v)
	}
}

// RotateAbsolute sets the Angle sub-item. Angles are not normalized.
func RotateAbsolute(it *asc.Item, degrees int) error {
	return rotate(it, func(float64) float64 { return float64(degrees) })
}

// RotateRelative adds degrees to the Angle sub-item.
func RotateRelative(it *asc.Item, degrees int) error {
	return rotate(it, func(v float64) float64 { return v + float64(degrees) })
}

// CheckRotate reports the error a rotation of it would fail with, if any.
func CheckRotate(it *asc.Item) error {
	_, err := angleField(it)
	return err
}

// rotate applies f to the angle. Integer angles stay integers and double
// angles keep their fraction.
func rotate(it *asc.Item, f func(float64) float64) error {
	attr, err := angleField(it)
	if err != nil {
		return err
	}
	switch a := attr.(type) {
	case *asc.IntegerAttr:
		a.SetInt(int(f(float64(a.Int()))))
	case *asc.DoubleAttr:
		a.SetFloat(f(a.Float()))
	}
	return nil
}

// angleField accepts integer angles and the double angles some board
// items carry.
func angleField(it *asc.Item) (asc.Attribute, error) {
	attr, err := it.Field(FieldAngle)
	if err != nil {
		return nil, err
	}
	switch attr.(type) {
	case *asc.IntegerAttr, *asc.DoubleAttr:
		return attr, nil
	}
	return nil, &asc.TypeMismatchError{Item: it.Identifier + "/" + FieldAngle, Expected: "integer", Found: attr.TypeName()}
}

func intField(it *asc.Item, field string) (*asc.IntegerAttr, error) {
	attr, err := it.Field(field)
	if err != nil {
		return nil, err
	}
	v, ok := attr.(*asc.IntegerAttr)
	if !ok {
		return nil, &asc.TypeMismatchError{Item: it.Identifier + "/" + field, Expected: "integer", Found: attr.TypeName()}
	}
	return v, nil
}

func numericField(it *asc.Item, field string) (asc.Attribute, error) {
	attr, err := it.Field(field)
	if err != nil {
		return nil, err
	}
	if _, ok := asc.Numeric(attr); !ok {
		return nil, &asc.TypeMismatchError{Item: it.Identifier + "/" + field, Expected: "number", Found: attr.TypeName()}
	}
	return attr, nil
}

func checkString(it *asc.Item, slot int) error {
	attr, ok := it.Attr(slot)
	if !ok {
		return &asc.NotFoundError{What: it.Identifier + " attribute " + strconv.Itoa(slot)}
	}
	if _, ok := attr.(*asc.StringAttr); !ok {
		return &asc.TypeMismatchError{Item: it.Identifier, Expected: "string", Found: attr.TypeName()}
	}
	return nil
}
