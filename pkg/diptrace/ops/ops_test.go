package ops

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/OpenTraceLab/OpenTraceASCII/pkg/diptrace/asc"
)

const components = `(Components
  (Component "Resistor" "R1" "10k"
    (Number 3)
    (HiddenId 7)
    (X 1.000)
    (Y 2)
    (Angle 0)
    (Pins
      (Pin 0
        (Number 1)
      )
    )
  )
)
`

func parseComponents(t *testing.T) (parent, comp *asc.Item) {
	t.Helper()
	f, err := asc.ParseString(components)
	if err != nil {
		t.Fatal(err)
	}
	parent = f.Root.Child("Components")
	return parent, parent.Child("Component")
}

// outline records the parts of a subtree that duplication must keep.
type outline struct {
	Identifier string
	Attrs      int
	Children   []outline
}

func outlineOf(it *asc.Item) outline {
	o := outline{Identifier: it.Identifier, Attrs: len(it.Attributes)}
	for _, c := range it.Children() {
		o.Children = append(o.Children, outlineOf(c))
	}
	return o
}

func TestDuplicate(t *testing.T) {
	parent, comp := parseComponents(t)

	c := Duplicate(comp, parent)
	if len(parent.Children()) != 2 || parent.Children()[1] != c {
		t.Fatal("duplicate not appended to parent")
	}
	if diff := cmp.Diff(outlineOf(comp), outlineOf(c)); diff != "" {
		t.Errorf("outline mismatch (-want +got):\n%s", diff)
	}
	if n, _ := c.FieldInt(FieldNumber); n != 3 {
		t.Errorf("Number = %d, want 3 (no renumbering)", n)
	}
}

func TestDuplicateWithIdentity(t *testing.T) {
	parent, comp := parseComponents(t)
	hidden := 8

	c, err := DuplicateWithIdentity(comp, parent, Identity{
		Number:   4,
		HiddenID: &hidden,
		Name:     "R2",
		NameSlot: ComponentNameSlot,
	})
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(outlineOf(comp), outlineOf(c)); diff != "" {
		t.Errorf("outline mismatch (-want +got):\n%s", diff)
	}
	if ref, _ := c.StringAt(1); ref != "R2" {
		t.Errorf("reference = %q, want R2", ref)
	}
	if n, _ := c.FieldInt(FieldNumber); n != 4 {
		t.Errorf("Number = %d, want 4", n)
	}
	if h, _ := c.FieldInt(FieldHiddenID); h != 8 {
		t.Errorf("HiddenId = %d, want 8", h)
	}
	// Nested numbers belong to pins and are left alone.
	if n, _ := c.Path("Pins", "Pin").FieldInt(FieldNumber); n != 1 {
		t.Errorf("pin Number = %d, want 1", n)
	}

	if ref, _ := comp.StringAt(1); ref != "R1" {
		t.Errorf("original reference = %q, want R1", ref)
	}
	if n, _ := comp.FieldInt(FieldNumber); n != 3 {
		t.Errorf("original Number = %d, want 3", n)
	}
	if len(parent.Children()) != 2 {
		t.Errorf("parent children = %d, want 2", len(parent.Children()))
	}
}

func TestCloneWithIdentityFailsCleanly(t *testing.T) {
	hidden := 1
	tests := []struct {
		name string
		item *asc.Item
		id   Identity
		want error
	}{
		{
			name: "missing number",
			item: asc.NewItem("Net", asc.NewString("GND")),
			id:   Identity{Number: 2, Name: "VCC", NameSlot: NetNameSlot},
			want: asc.ErrMissingField,
		},
		{
			name: "name slot not a string",
			item: asc.NewItem("Net", asc.NewInteger(5)),
			id:   Identity{Number: 2, Name: "VCC", NameSlot: NetNameSlot},
			want: asc.ErrAttributeTypeMismatch,
		},
		{
			name: "name slot missing",
			item: asc.NewItem("Component", asc.NewString("x")),
			id:   Identity{Number: 2, Name: "R9", NameSlot: ComponentNameSlot},
			want: asc.ErrNotFound,
		},
		{
			name: "missing hidden id",
			item: func() *asc.Item {
				it := asc.NewItem("Component", asc.NewString("x"), asc.NewString("R1"))
				it.AddChild(asc.NewItem(FieldNumber, asc.NewInteger(1)))
				return it
			}(),
			id:   Identity{Number: 2, HiddenID: &hidden, Name: "R2", NameSlot: ComponentNameSlot},
			want: asc.ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent := asc.NewItem("Parent")
			_, err := DuplicateWithIdentity(tt.item, parent, tt.id)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			if len(parent.Children()) != 0 {
				t.Error("failed duplicate was appended")
			}
		})
	}
}

func TestMoveRelativeAdditive(t *testing.T) {
	_, a := parseComponents(t)
	_, b := parseComponents(t)

	for i := 0; i < 2; i++ {
		if err := MoveRelative(a, 1.5, -2.0); err != nil {
			t.Fatal(err)
		}
	}
	if err := MoveRelative(b, 3.0, -4.0); err != nil {
		t.Fatal(err)
	}

	for _, field := range []string{FieldX, FieldY} {
		va, _ := a.FieldFloat(field)
		vb, _ := b.FieldFloat(field)
		if va != vb {
			t.Errorf("%s: twice = %v, once = %v", field, va, vb)
		}
	}
	if x, _ := a.FieldFloat(FieldX); x != 4 {
		t.Errorf("X = %v, want 4", x)
	}
	if y, _ := a.FieldFloat(FieldY); y != -2 {
		t.Errorf("Y = %v, want -2", y)
	}
}

func TestMoveAbsolute(t *testing.T) {
	_, comp := parseComponents(t)
	if err := MoveAbsolute(comp, -0.0004, 12.3456); err != nil {
		t.Fatal(err)
	}

	x, _ := comp.Field(FieldX)
	y, _ := comp.Field(FieldY)
	if x.Text() != "0.000" {
		t.Errorf("X text = %q, want 0.000", x.Text())
	}
	// Y was written as an integer and is promoted.
	if _, ok := y.(*asc.DoubleAttr); !ok || y.Text() != "12.346" {
		t.Errorf("Y = %#v (%q), want double 12.346", y, y.Text())
	}
}

func TestMoveChecksBothFields(t *testing.T) {
	it := asc.NewItem("Pin")
	it.AddChild(asc.NewItem(FieldX, asc.NewDouble(1)))

	if err := MoveAbsolute(it, 5, 5); !errors.Is(err, asc.ErrMissingField) {
		t.Fatalf("error = %v, want ErrMissingField", err)
	}
	if x, _ := it.FieldFloat(FieldX); x != 1 {
		t.Errorf("X = %v after failed move, want 1", x)
	}

	it.AddChild(asc.NewItem(FieldY, asc.NewString("up")))
	if err := MoveRelative(it, 1, 1); !errors.Is(err, asc.ErrAttributeTypeMismatch) {
		t.Errorf("error = %v, want ErrAttributeTypeMismatch", err)
	}
}

func TestRotate(t *testing.T) {
	_, comp := parseComponents(t)

	steps := []struct {
		abs  bool
		deg  int
		want int
	}{
		{false, 90, 90},
		{false, 300, 390},
		{true, -45, -45},
		{false, -360, -405},
	}
	for _, s := range steps {
		var err error
		if s.abs {
			err = RotateAbsolute(comp, s.deg)
		} else {
			err = RotateRelative(comp, s.deg)
		}
		if err != nil {
			t.Fatal(err)
		}
		if got, _ := comp.FieldInt(FieldAngle); got != s.want {
			t.Errorf("Angle = %d, want %d", got, s.want)
		}
	}

	if err := RotateAbsolute(asc.NewItem("Net"), 10); !errors.Is(err, asc.ErrMissingField) {
		t.Errorf("error = %v, want ErrMissingField", err)
	}
}

func TestRotateDoubleAngle(t *testing.T) {
	f, err := asc.ParseString("(Pad\n  (Angle 45.500)\n)\n")
	if err != nil {
		t.Fatal(err)
	}
	pad := f.Root.Child("Pad")

	for _, deg := range []int{0, 90} {
		if err := RotateRelative(pad, deg); err != nil {
			t.Fatal(err)
		}
	}
	attr, _ := pad.Field(FieldAngle)
	if got := attr.Text(); got != "135.500" {
		t.Errorf("Angle after relative rotation = %s, want 135.500", got)
	}

	if err := RotateAbsolute(pad, -30); err != nil {
		t.Fatal(err)
	}
	attr, _ = pad.Field(FieldAngle)
	if got := attr.Text(); got != "-30.000" {
		t.Errorf("Angle after absolute rotation = %s, want -30.000", got)
	}
}

func TestRenameRenumber(t *testing.T) {
	_, comp := parseComponents(t)

	if err := Rename(comp, ComponentNameSlot, "R42"); err != nil {
		t.Fatal(err)
	}
	if ref, _ := comp.StringAt(1); ref != "R42" {
		t.Errorf("reference = %q, want R42", ref)
	}
	if err := Renumber(comp, FieldHiddenID, 99); err != nil {
		t.Fatal(err)
	}
	if h, _ := comp.FieldInt(FieldHiddenID); h != 99 {
		t.Errorf("HiddenId = %d, want 99", h)
	}
	if err := Renumber(comp, FieldX, 1); !errors.Is(err, asc.ErrAttributeTypeMismatch) {
		t.Errorf("Renumber(X) error = %v, want ErrAttributeTypeMismatch", err)
	}
}
