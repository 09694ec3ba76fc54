package render

import (
	"fmt"
	"image/color"

	"github.com/OpenTraceLab/OpenTraceASCII/pkg/diptrace/asc"
	"github.com/OpenTraceLab/OpenTraceASCII/pkg/diptrace/project"
)

// SideTransparency selects how shapes on the side out of focus are drawn.
type SideTransparency int

const (
	// TransparencyNone hides them.
	TransparencyNone SideTransparency = iota
	// TransparencyPart draws them dimmed.
	TransparencyPart
	// TransparencyFull draws them in full colour.
	TransparencyFull
)

func (t SideTransparency) String() string {
	switch t {
	case TransparencyPart:
		return "PART"
	case TransparencyFull:
		return "FULL"
	default:
		return "NONE"
	}
}

// Layer numbers of the two board sides.
const (
	TopLayer    = 0
	BottomLayer = 1
)

// View describes one drawing pass. Shapes on the side out of focus are
// drawn in an earlier pass than the side in focus.
type View struct {
	LayerInFocus int
	LayerToDraw  int
	Transparency SideTransparency

	// Layers hides placement layers. Nil shows everything.
	Layers *LayerConfig
}

// NonSignalLayers finds the board's user non-signal layers.
type NonSignalLayers interface {
	NonSignalLayer(number int) (project.NonSignalLayer, error)
}

// Paint is the outcome of resolving a shape for a pass.
type Paint struct {
	Visible bool
	Layer   int
	Color   color.NRGBA
}

// Resolve decides whether a shape is drawn in the given pass and with which
// colour.
func Resolve(s asc.Shape, layers NonSignalLayers, v View) (Paint, error) {
	dt, err := s.DrawingType()
	if err != nil {
		return Paint{}, err
	}
	if dt == asc.DrawingNone {
		return Paint{}, nil
	}

	placement, err := s.PlacementLayer()
	if err != nil {
		return Paint{}, err
	}
	if v.Layers != nil && !v.Layers.IsVisible(placement) {
		return Paint{}, nil
	}

	layerNo, full, err := resolveLayer(s, placement, layers, v.LayerInFocus)
	if err != nil {
		return Paint{}, err
	}

	p := Paint{Layer: layerNo}
	if layerNo != v.LayerToDraw {
		return p, nil
	}

	if layerNo == v.LayerInFocus {
		p.Visible, p.Color = true, full
		return p, nil
	}
	switch v.Transparency {
	case TransparencyPart:
		p.Visible, p.Color = true, Dim(full)
	case TransparencyFull:
		p.Visible, p.Color = true, full
	}
	return p, nil
}

func resolveLayer(s asc.Shape, placement asc.PlacementLayer, layers NonSignalLayers, focus int) (int, color.NRGBA, error) {
	code, err := s.LayerCode()
	if err != nil {
		return 0, color.NRGBA{}, err
	}

	if placement == asc.LayerUserNonSignal {
		if layers == nil {
			return 0, color.NRGBA{}, &asc.NotFoundError{What: fmt.Sprintf("non signal layer %d", code)}
		}
		l, err := layers.NonSignalLayer(code)
		if err != nil {
			return 0, color.NRGBA{}, fmt.Errorf("failed to resolve layer %d: %w", code, err)
		}
		side, err := l.SideCode()
		if err != nil {
			return 0, color.NRGBA{}, err
		}
		c, err := l.Color()
		if err != nil {
			return 0, color.NRGBA{}, err
		}
		// Side 0 means the layer is not tied to a side.
		layerNo := focus
		if side != 0 {
			layerNo = side - 1
		}
		return layerNo, toNRGBA(c), nil
	}

	full, ok := LayerColor(placement)
	if !ok {
		return 0, color.NRGBA{}, &asc.NotFoundError{What: fmt.Sprintf("color for placement layer %s", placement)}
	}

	switch placement.Side() {
	case asc.SideTop:
		return TopLayer, full, nil
	case asc.SideBottom:
		return BottomLayer, full, nil
	case asc.SideBoth:
		return focus, full, nil
	default:
		return code, full, nil
	}
}
