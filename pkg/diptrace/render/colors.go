// Package render answers the questions a drawing surface asks about a
// DipTrace shape: which pass it belongs to and in which colour. It does no
// drawing itself.
package render

import (
	"image/color"

	"github.com/OpenTraceLab/OpenTraceASCII/pkg/diptrace/asc"
)

// DipTrace default placement layer colors
var layerColors = map[asc.PlacementLayer]color.NRGBA{
	asc.LayerTopPaste:     {R: 153, G: 132, B: 47, A: 255},
	asc.LayerTopAssy:      {R: 138, G: 138, B: 138, A: 255},
	asc.LayerTopSilk:      {R: 0, G: 180, B: 0, A: 255},
	asc.LayerTopMask:      {R: 46, G: 71, B: 86, A: 255},
	asc.LayerSignalPlane:  {R: 255, G: 255, B: 170, A: 255},
	asc.LayerRouteKeepout: {R: 80, G: 60, B: 60, A: 255},
	asc.LayerBottomPaste:  {R: 153, G: 132, B: 47, A: 255},
	asc.LayerBottomMask:   {R: 46, G: 71, B: 86, A: 255},
	asc.LayerBottomSilk:   {R: 53, G: 53, B: 255, A: 255},
	asc.LayerBottomAssy:   {R: 138, G: 138, B: 138, A: 255},
	asc.LayerBoardCutout:  {R: 128, G: 0, B: 188, A: 255},
	asc.LayerPlaceKeepout: {R: 80, G: 80, B: 60, A: 255},
}

// dimFactor divides each channel of a colour on the side out of focus.
const dimFactor = 5

// LayerColor returns the colour of a placement layer. Layers without a fixed
// colour (no layer, user non-signal layers) report false.
func LayerColor(layer asc.PlacementLayer) (color.NRGBA, bool) {
	c, ok := layerColors[layer]
	return c, ok
}

// Dim returns the colour used for shapes on the side out of focus.
func Dim(c color.NRGBA) color.NRGBA {
	return color.NRGBA{
		R: c.R / dimFactor,
		G: c.G / dimFactor,
		B: c.B / dimFactor,
		A: c.A,
	}
}

// toNRGBA converts a layer colour read from the board file.
func toNRGBA(c color.RGBA) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
