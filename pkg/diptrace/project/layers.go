package project

import (
	"fmt"
	"image/color"

	"github.com/OpenTraceLab/OpenTraceASCII/pkg/diptrace/asc"
	"github.com/OpenTraceLab/OpenTraceASCII/pkg/diptrace/ops"
)

// SignalLayer is a copper layer listed under Board/Layers.
type SignalLayer struct {
	item *asc.Item
}

func (l SignalLayer) Item() *asc.Item { return l.item }

// Name returns the layer name (attribute 0).
func (l SignalLayer) Name() (string, error) {
	return l.item.StringAt(0)
}

// Number returns the layer number sub-item.
func (l SignalLayer) Number() (int, error) {
	return l.item.FieldInt(ops.FieldNumber)
}

// NonSignalLayer is a mechanical or marking layer listed under
// Board/NonSignals.
type NonSignalLayer struct {
	item *asc.Item
}

// Attribute positions of a non-signal layer.
const (
	nonSignalName   = 0
	nonSignalSide   = 1
	nonSignalNumber = 2
	nonSignalColor  = 3
)

func (l NonSignalLayer) Item() *asc.Item { return l.item }

func (l NonSignalLayer) Name() (string, error) {
	return l.item.StringAt(nonSignalName)
}

// SideCode returns the raw side value.
func (l NonSignalLayer) SideCode() (int, error) {
	return l.item.IntAt(nonSignalSide)
}

func (l NonSignalLayer) Number() (int, error) {
	return l.item.IntAt(nonSignalNumber)
}

// Color unpacks the 0xRRGGBB colour value.
func (l NonSignalLayer) Color() (color.RGBA, error) {
	v, err := l.item.IntAt(nonSignalColor)
	if err != nil {
		return color.RGBA{}, err
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}

// SignalLayers lists the board signal layers.
func (p *Project) SignalLayers() []SignalLayer {
	var out []SignalLayer
	for _, it := range p.boardList("Layers") {
		out = append(out, SignalLayer{item: it})
	}
	return out
}

// SignalLayer finds a signal layer by number.
func (p *Project) SignalLayer(number int) (SignalLayer, error) {
	for _, l := range p.SignalLayers() {
		if n, err := l.Number(); err == nil && n == number {
			return l, nil
		}
	}
	return SignalLayer{}, &asc.NotFoundError{What: fmt.Sprintf("PCB layer %d", number)}
}

// NonSignalLayers lists the board non-signal layers.
func (p *Project) NonSignalLayers() []NonSignalLayer {
	var out []NonSignalLayer
	for _, it := range p.boardList("NonSignals") {
		out = append(out, NonSignalLayer{item: it})
	}
	return out
}

// NonSignalLayer finds a non-signal layer by number.
func (p *Project) NonSignalLayer(number int) (NonSignalLayer, error) {
	for _, l := range p.NonSignalLayers() {
		if n, err := l.Number(); err == nil && n == number {
			return l, nil
		}
	}
	return NonSignalLayer{}, &asc.NotFoundError{What: fmt.Sprintf("PCB non signal layer %d", number)}
}

func (p *Project) boardList(name string) []*asc.Item {
	if c := p.board.Root.Path("Board", name); c != nil {
		return c.Children()
	}
	return nil
}
