package render

import "github.com/OpenTraceLab/OpenTraceASCII/pkg/diptrace/asc"

// LayerConfig controls which placement layers are visible
type LayerConfig struct {
	visible        map[asc.PlacementLayer]bool
	defaultVisible bool
}

// NewLayerConfig creates a new layer configuration with all layers visible
func NewLayerConfig() *LayerConfig {
	return &LayerConfig{
		visible:        make(map[asc.PlacementLayer]bool),
		defaultVisible: true,
	}
}

// SetVisible sets the visibility of a specific layer
func (lc *LayerConfig) SetVisible(layer asc.PlacementLayer, visible bool) {
	lc.visible[layer] = visible
}

// IsVisible returns whether a layer is visible
func (lc *LayerConfig) IsVisible(layer asc.PlacementLayer) bool {
	if visible, exists := lc.visible[layer]; exists {
		return visible
	}
	return lc.defaultVisible
}

// HideAll hides all layers
func (lc *LayerConfig) HideAll() {
	lc.visible = make(map[asc.PlacementLayer]bool)
	lc.defaultVisible = false
}

// ShowAll shows all layers
func (lc *LayerConfig) ShowAll() {
	lc.visible = make(map[asc.PlacementLayer]bool)
	lc.defaultVisible = true
}

// ShowOnly shows only the specified layers, hiding all others
func (lc *LayerConfig) ShowOnly(layers ...asc.PlacementLayer) {
	lc.HideAll()
	for _, layer := range layers {
		lc.SetVisible(layer, true)
	}
}

// ShowSide shows only the layers that sit on one side of the board
func (lc *LayerConfig) ShowSide(side asc.Side) {
	lc.HideAll()
	for _, layer := range asc.PlacementLayers() {
		if layer.Side() == side {
			lc.SetVisible(layer, true)
		}
	}
}

func (lc *LayerConfig) ShowSilkscreenOnly() {
	lc.ShowOnly(asc.LayerTopSilk, asc.LayerBottomSilk)
}

func (lc *LayerConfig) HideKeepouts() {
	lc.SetVisible(asc.LayerRouteKeepout, false)
	lc.SetVisible(asc.LayerPlaceKeepout, false)
}
