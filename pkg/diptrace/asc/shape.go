package asc

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/OpenTraceASCII/pkg/diptrace/geom"
)

// DrawingType is the kind of figure a shape draws.
type DrawingType int

const (
	DrawingNone DrawingType = iota
	DrawingNone2
	DrawingLine
	DrawingRectangle
	DrawingEllipse
	DrawingFilledRectangle
	DrawingFilledEllipse
	DrawingArc
	DrawingText
	DrawingPolyline
	DrawingFilledPolygon
)

// drawingCodes holds the attribute code and the item code of each drawing
// type. The vendor numbers the two encodings differently; codes at -90x have
// not been seen in item-numbered files.
var drawingCodes = []struct {
	Type     DrawingType
	Name     string
	AttrCode int
	ItemCode int
}{
	{DrawingNone, "NONE", -1, -901},
	{DrawingNone2, "NONE_2", 0, -902},
	{DrawingLine, "LINE", 1, 0},
	{DrawingRectangle, "RECTANGLE", 2, 2},
	{DrawingEllipse, "ELLIPSE", 3, -905},
	{DrawingFilledRectangle, "FILLED_RECTANGLE", 4, 3},
	{DrawingFilledEllipse, "FILLED_ELLIPSE", 5, -907},
	{DrawingArc, "ARC", 6, -908},
	{DrawingText, "TEXT", 7, 6},
	{DrawingPolyline, "POLYLINE", 8, -910},
	{DrawingFilledPolygon, "FILLED_POLYGON", 9, -911},
}

func (d DrawingType) String() string {
	if int(d) >= 0 && int(d) < len(drawingCodes) {
		return drawingCodes[d].Name
	}
	return fmt.Sprintf("DrawingType(%d)", int(d))
}

// DrawingTypeByAttrCode decodes the attribute-numbering code.
func DrawingTypeByAttrCode(code int) (DrawingType, error) {
	for _, c := range drawingCodes {
		if c.AttrCode == code {
			return c.Type, nil
		}
	}
	return 0, &NotFoundError{What: fmt.Sprintf("drawing type attribute code %d", code)}
}

// DrawingTypeByItemCode decodes the item-numbering code.
func DrawingTypeByItemCode(code int) (DrawingType, error) {
	for _, c := range drawingCodes {
		if c.ItemCode == code {
			return c.Type, nil
		}
	}
	return 0, &NotFoundError{What: fmt.Sprintf("drawing type item code %d", code)}
}

// Side is the board side a placement layer belongs to.
type Side int

const (
	SideUnknown Side = iota
	SideTop
	SideBottom
	SideBoth
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "TOP"
	case SideBottom:
		return "BOTTOM"
	case SideBoth:
		return "BOTH"
	default:
		return "UNKNOWN"
	}
}

// PlacementLayer is the layer a shape or marking is drawn on.
type PlacementLayer int

const (
	LayerNone PlacementLayer = iota
	LayerTopSilk
	LayerTopAssy
	LayerTopMask
	LayerTopPaste
	LayerBottomPaste
	LayerBottomMask
	LayerBottomAssy
	LayerBottomSilk
	LayerSignalPlane
	LayerRouteKeepout
	LayerPlaceKeepout
	LayerBoardCutout
	LayerUserNonSignal
)

var placementCodes = []struct {
	Layer    PlacementLayer
	Name     string
	AttrCode int
	ItemCode int
	Side     Side
}{
	{LayerNone, "NO_LAYER", -1, -1, SideUnknown},
	{LayerTopSilk, "TOP_SILK", 0, 1, SideTop},
	{LayerTopAssy, "TOP_ASSY", 1, 0, SideTop},
	{LayerTopMask, "TOP_MASK", 2, 6, SideTop},
	{LayerTopPaste, "TOP_PASTE", 3, 7, SideTop},
	{LayerBottomPaste, "BOTTOM_PASTE", 4, 8, SideBottom},
	{LayerBottomMask, "BOTTOM_MASK", 5, 9, SideBottom},
	{LayerBottomAssy, "BOTTOM_ASSY", 6, 5, SideBottom},
	{LayerBottomSilk, "BOTTOM_SILK", 7, 4, SideBottom},
	{LayerSignalPlane, "SIGNAL_PLANE", 8, 3, SideUnknown},
	{LayerRouteKeepout, "ROUTE_KEEPOUT", 9, 2, SideUnknown},
	{LayerPlaceKeepout, "PLACE_KEEPOUT", 10, 11, SideUnknown},
	{LayerBoardCutout, "BOARD_CUTOUT", 12, 10, SideBoth},
	{LayerUserNonSignal, "USER_NON_SIGNAL_LAYER", -901, 15, SideUnknown},
}

// PlacementLayers lists every layer in declaration order.
func PlacementLayers() []PlacementLayer {
	layers := make([]PlacementLayer, len(placementCodes))
	for i, c := range placementCodes {
		layers[i] = c.Layer
	}
	return layers
}

func (l PlacementLayer) String() string {
	if int(l) >= 0 && int(l) < len(placementCodes) {
		return placementCodes[l].Name
	}
	return fmt.Sprintf("PlacementLayer(%d)", int(l))
}

// Side returns the board side the layer sits on.
func (l PlacementLayer) Side() Side {
	if int(l) >= 0 && int(l) < len(placementCodes) {
		return placementCodes[l].Side
	}
	return SideUnknown
}

// PlacementLayerByAttrCode decodes the attribute-numbering code.
func PlacementLayerByAttrCode(code int) (PlacementLayer, error) {
	for _, c := range placementCodes {
		if c.AttrCode == code {
			return c.Layer, nil
		}
	}
	return 0, &NotFoundError{What: fmt.Sprintf("placement layer attribute code %d", code)}
}

// PlacementLayerByItemCode decodes the item-numbering code.
func PlacementLayerByItemCode(code int) (PlacementLayer, error) {
	for _, c := range placementCodes {
		if c.ItemCode == code {
			return c.Layer, nil
		}
	}
	return 0, &NotFoundError{What: fmt.Sprintf("placement layer item code %d", code)}
}

// MarkingType selects the text a component marking shows.
type MarkingType int

const (
	MarkingText MarkingType = iota
	MarkingName
	MarkingRefDes
	MarkingValue
)

func (m MarkingType) String() string {
	switch m {
	case MarkingText:
		return "TEXT"
	case MarkingName:
		return "NAME"
	case MarkingRefDes:
		return "REFDES"
	case MarkingValue:
		return "VALUE"
	}
	return fmt.Sprintf("MarkingType(%d)", int(m))
}

// Shape reads the drawing fields of a shape item. Free-standing shapes keep
// their fields in attributes at fixed positions; component shapes have no
// attributes and keep them in named sub-items.
type Shape struct {
	item *Item
}

// Attribute positions used by free-standing shapes.
const (
	shapeAttrType     = 0
	shapeAttrLocked   = 1
	shapeAttrLayer    = 2
	shapeAttrPoints   = 3
	shapeAttrName     = 9
	shapeAttrFontName = 10
	shapeAttrFontSize = 12

	shapeAttrPointCount = 3
)

// AsShape returns the shape facet of a shape item.
func AsShape(it *Item) (Shape, bool) {
	if it == nil || it.kind != KindShape {
		return Shape{}, false
	}
	return Shape{item: it}, true
}

// Item returns the underlying item.
func (s Shape) Item() *Item {
	return s.item
}

// ItemNumbered reports whether the fields come from named sub-items.
func (s Shape) ItemNumbered() bool {
	return len(s.item.Attributes) == 0
}

func (s Shape) intField(name string, attr int) (int, error) {
	var v float64
	var err error
	if s.ItemNumbered() {
		v, err = s.item.FieldFloat(name)
	} else {
		v, err = s.item.FloatAt(attr)
	}
	return int(v), err
}

func (s Shape) stringField(name string, attr int) (string, error) {
	if s.ItemNumbered() {
		return s.item.FieldString(name)
	}
	return s.item.StringAt(attr)
}

// DrawingType decodes the figure type with the table matching the encoding.
func (s Shape) DrawingType() (DrawingType, error) {
	code, err := s.intField("ShapeType", shapeAttrType)
	if err != nil {
		return 0, err
	}
	if s.ItemNumbered() {
		return DrawingTypeByItemCode(code)
	}
	return DrawingTypeByAttrCode(code)
}

// Locked reports whether the shape is locked ("Y").
func (s Shape) Locked() (bool, error) {
	v, err := s.stringField("Locked", shapeAttrLocked)
	if err != nil {
		return false, err
	}
	return v == "Y", nil
}

// LayerCode returns the raw layer code.
func (s Shape) LayerCode() (int, error) {
	return s.intField("Layer", shapeAttrLayer)
}

// PlacementLayer decodes the layer code with the table matching the encoding.
func (s Shape) PlacementLayer() (PlacementLayer, error) {
	code, err := s.LayerCode()
	if err != nil {
		return 0, err
	}
	if s.ItemNumbered() {
		return PlacementLayerByItemCode(code)
	}
	return PlacementLayerByAttrCode(code)
}

// Points returns the shape geometry. Item-numbered shapes list one point per
// sub-item of "Points"; free-standing shapes carry three x/y pairs.
func (s Shape) Points() ([]geom.Point, error) {
	if s.ItemNumbered() {
		list := s.item.Child("Points")
		if list == nil {
			return nil, &FieldError{Item: s.item.Identifier, Field: "Points"}
		}
		points := make([]geom.Point, 0, len(list.children))
		for _, p := range list.children {
			x, err := p.FloatAt(0)
			if err != nil {
				return nil, err
			}
			y, err := p.FloatAt(1)
			if err != nil {
				return nil, err
			}
			points = append(points, geom.Point{X: x, Y: y})
		}
		return points, nil
	}

	points := make([]geom.Point, 0, shapeAttrPointCount)
	for i := 0; i < shapeAttrPointCount; i++ {
		x, err := s.item.FloatAt(shapeAttrPoints + i*2)
		if err != nil {
			return nil, err
		}
		y, err := s.item.FloatAt(shapeAttrPoints + i*2 + 1)
		if err != nil {
			return nil, err
		}
		points = append(points, geom.Point{X: x, Y: y})
	}
	return points, nil
}

// ComponentGeometry is the placement and size of a component. Shapes listed
// under a component's "Shapes" are in units of its width and height.
type ComponentGeometry struct {
	X, Y          float64
	Width, Height float64
}

// ComponentGeometryOf reads the X, Y, Width and Height sub-items of it.
func ComponentGeometryOf(it *Item) (ComponentGeometry, error) {
	var g ComponentGeometry
	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{"X", &g.X},
		{"Y", &g.Y},
		{"Width", &g.Width},
		{"Height", &g.Height},
	} {
		v, err := it.FieldFloat(f.name)
		if err != nil {
			return ComponentGeometry{}, err
		}
		*f.dst = v
	}
	return g, nil
}

// PointsIn returns the shape points scaled by the size of the component that
// owns the shape.
func (s Shape) PointsIn(component *Item) ([]geom.Point, error) {
	g, err := ComponentGeometryOf(component)
	if err != nil {
		return nil, err
	}
	points, err := s.Points()
	if err != nil {
		return nil, err
	}
	for i := range points {
		points[i].X *= g.Width
		points[i].Y *= g.Height
	}
	return points, nil
}

// Bounds returns the box spanned by the shape points.
func (s Shape) Bounds() (geom.BoundingBox, error) {
	points, err := s.Points()
	if err != nil {
		return geom.BoundingBox{}, err
	}
	return geom.BoundsOf(points), nil
}

func (s Shape) Name() (string, error) {
	return s.stringField("Name", shapeAttrName)
}

func (s Shape) FontName() (string, error) {
	return s.stringField("FontName", shapeAttrFontName)
}

func (s Shape) FontSize() (int, error) {
	return s.intField("FontSize", shapeAttrFontSize)
}

// Description renders the shape as "TYPE Y|N LAYER (x, y)...".
func (s Shape) Description() (string, error) {
	points, err := s.Points()
	if err != nil {
		return "", err
	}
	return s.describe(points)
}

// DescriptionIn is Description with the points scaled by the owning
// component.
func (s Shape) DescriptionIn(component *Item) (string, error) {
	points, err := s.PointsIn(component)
	if err != nil {
		return "", err
	}
	return s.describe(points)
}

func (s Shape) describe(points []geom.Point) (string, error) {
	dt, err := s.DrawingType()
	if err != nil {
		return "", err
	}
	locked, err := s.Locked()
	if err != nil {
		return "", err
	}
	layerName := "Shape has no placement layer"
	if layer, err := s.PlacementLayer(); err == nil {
		layerName = layer.String()
	}

	var b strings.Builder
	b.WriteString(dt.String())
	if locked {
		b.WriteString(" Y ")
	} else {
		b.WriteString(" N ")
	}
	b.WriteString(layerName)
	for _, p := range points {
		fmt.Fprintf(&b, " (%.0f, %.0f)", p.X, p.Y)
	}
	return b.String(), nil
}
