package asc

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/OpenTraceLab/OpenTraceASCII/pkg/diptrace/geom"
)

func sampleShapes(t *testing.T) (component, free Shape) {
	t.Helper()
	f, err := ParseString(sampleSchematic)
	if err != nil {
		t.Fatal(err)
	}
	c, ok := AsShape(f.Root.Path("Schematic", "Components", "Component", "Shapes", "Shape"))
	if !ok {
		t.Fatal("component shape not decoded as shape")
	}
	s, ok := AsShape(f.Root.Path("Schematic", "Shapes", "Shape"))
	if !ok {
		t.Fatal("free shape not decoded as shape")
	}
	return c, s
}

func TestItemNumberedLayer(t *testing.T) {
	c, _ := sampleShapes(t)

	if !c.ItemNumbered() {
		t.Fatal("component shape should use item numbering")
	}
	layer, err := c.PlacementLayer()
	if err != nil {
		t.Fatal(err)
	}
	// Code 1 is TOP_SILK in the item table and TOP_ASSY in the attribute table.
	if layer != LayerTopSilk {
		t.Errorf("PlacementLayer() = %s, want TOP_SILK", layer)
	}
	if layer.Side() != SideTop {
		t.Errorf("Side() = %s, want TOP", layer.Side())
	}
}

func TestItemNumberedShape(t *testing.T) {
	c, _ := sampleShapes(t)

	dt, err := c.DrawingType()
	if err != nil || dt != DrawingRectangle {
		t.Errorf("DrawingType() = %s, %v, want RECTANGLE", dt, err)
	}
	if locked, err := c.Locked(); err != nil || locked {
		t.Errorf("Locked() = %v, %v, want false", locked, err)
	}
	points, err := c.Points()
	if err != nil {
		t.Fatal(err)
	}
	want := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 5}}
	if diff := cmp.Diff(want, points); diff != "" {
		t.Errorf("Points() mismatch (-want +got):\n%s", diff)
	}
	desc, err := c.Description()
	if err != nil {
		t.Fatal(err)
	}
	if desc != "RECTANGLE N TOP_SILK (0, 0) (10, 5)" {
		t.Errorf("Description() = %q", desc)
	}
	if _, err := c.Name(); !errors.Is(err, ErrMissingField) {
		t.Errorf("Name() error = %v, want ErrMissingField", err)
	}
}

func TestAttributeNumberedShape(t *testing.T) {
	_, s := sampleShapes(t)

	if s.ItemNumbered() {
		t.Fatal("free shape should use attribute numbering")
	}

	dt, err := s.DrawingType()
	if err != nil || dt != DrawingText {
		t.Errorf("DrawingType() = %s, %v, want TEXT", dt, err)
	}
	layer, err := s.PlacementLayer()
	if err != nil || layer != LayerTopSilk {
		t.Errorf("PlacementLayer() = %s, %v, want TOP_SILK", layer, err)
	}
	if name, _ := s.Name(); name != "Label" {
		t.Errorf("Name() = %q, want Label", name)
	}
	if font, _ := s.FontName(); font != "Tahoma" {
		t.Errorf("FontName() = %q, want Tahoma", font)
	}
	if size, _ := s.FontSize(); size != 12 {
		t.Errorf("FontSize() = %d, want 12", size)
	}

	bb, err := s.Bounds()
	if err != nil {
		t.Fatal(err)
	}
	if bb.Min != (geom.Point{X: 1, Y: 2}) || bb.Max != (geom.Point{X: 5, Y: 6}) {
		t.Errorf("Bounds() = %+v", bb)
	}

	desc, err := s.Description()
	if err != nil {
		t.Fatal(err)
	}
	if desc != "TEXT Y TOP_SILK (1, 2) (3, 4) (5, 6)" {
		t.Errorf("Description() = %q", desc)
	}
}

const sizedComponent = `(Component "Diode" "D1" SOD-123
  (X 5.000)
  (Y -2.000)
  (Width 4.000)
  (Height 2.000)
  (Shapes
    (Shape 2 "N" 0 -0.500 -0.500 0.500 0.500 0.000 0.000 "" "Tahoma" 0 8)
  )
)
`

func TestComponentShapePoints(t *testing.T) {
	f, err := ParseString(sizedComponent)
	if err != nil {
		t.Fatal(err)
	}
	comp := f.Root.Child("Component")

	g, err := ComponentGeometryOf(comp)
	if err != nil {
		t.Fatal(err)
	}
	if want := (ComponentGeometry{X: 5, Y: -2, Width: 4, Height: 2}); g != want {
		t.Errorf("ComponentGeometryOf() = %+v, want %+v", g, want)
	}

	s, ok := AsShape(comp.Path("Shapes", "Shape"))
	if !ok {
		t.Fatal("component shape not decoded as shape")
	}
	points, err := s.PointsIn(comp)
	if err != nil {
		t.Fatal(err)
	}
	want := []geom.Point{{X: -2, Y: -1}, {X: 2, Y: 1}, {X: 0, Y: 0}}
	if diff := cmp.Diff(want, points); diff != "" {
		t.Errorf("PointsIn() mismatch (-want +got):\n%s", diff)
	}
	raw, _ := s.Points()
	if raw[1] != (geom.Point{X: 0.5, Y: 0.5}) {
		t.Errorf("Points() = %v, want unscaled geometry", raw)
	}

	desc, err := s.DescriptionIn(comp)
	if err != nil {
		t.Fatal(err)
	}
	if desc != "RECTANGLE N TOP_SILK (-2, -1) (2, 1) (0, 0)" {
		t.Errorf("DescriptionIn() = %q", desc)
	}

	if _, err := s.PointsIn(comp.Child("Shapes")); !errors.Is(err, ErrMissingField) {
		t.Errorf("PointsIn() without size error = %v, want ErrMissingField", err)
	}
}

func TestCodeTables(t *testing.T) {
	tests := []struct {
		name string
		got  func() (PlacementLayer, error)
		want PlacementLayer
	}{
		{"attr 12", func() (PlacementLayer, error) { return PlacementLayerByAttrCode(12) }, LayerBoardCutout},
		{"item 10", func() (PlacementLayer, error) { return PlacementLayerByItemCode(10) }, LayerBoardCutout},
		{"attr -901", func() (PlacementLayer, error) { return PlacementLayerByAttrCode(-901) }, LayerUserNonSignal},
		{"item 15", func() (PlacementLayer, error) { return PlacementLayerByItemCode(15) }, LayerUserNonSignal},
		{"item 0", func() (PlacementLayer, error) { return PlacementLayerByItemCode(0) }, LayerTopAssy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.got()
			if err != nil || got != tt.want {
				t.Errorf("got %s, %v, want %s", got, err, tt.want)
			}
		})
	}

	if _, err := PlacementLayerByAttrCode(11); !errors.Is(err, ErrNotFound) {
		t.Errorf("attr code 11 error = %v, want ErrNotFound", err)
	}
	if _, err := DrawingTypeByItemCode(1); !errors.Is(err, ErrNotFound) {
		t.Errorf("item code 1 error = %v, want ErrNotFound", err)
	}
	if dt, _ := DrawingTypeByItemCode(6); dt != DrawingText {
		t.Errorf("item code 6 = %s, want TEXT", dt)
	}
	if dt, _ := DrawingTypeByAttrCode(9); dt.String() != "FILLED_POLYGON" {
		t.Errorf("attr code 9 = %s, want FILLED_POLYGON", dt)
	}
	if len(PlacementLayers()) != 14 {
		t.Errorf("PlacementLayers() = %d layers, want 14", len(PlacementLayers()))
	}
}

func TestAsShapeRejectsGeneric(t *testing.T) {
	if _, ok := AsShape(NewItem("Component")); ok {
		t.Error("AsShape accepted a generic item")
	}
	if _, ok := AsShape(nil); ok {
		t.Error("AsShape accepted nil")
	}
}
