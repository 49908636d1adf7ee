package tilemap

import (
	"image"

	"github.com/plus3/stagecraft/game"
)

// Layered stacks several grids sharing one tileset. Layers draw in slice order.
type Layered struct {
	Tileset    image.Image
	TileWidth  int
	TileHeight int
	Layers     [][][]int
}

// Draw has the game.DrawFunc signature and renders at the entity position
func (m *Layered) Draw(e *game.Entity, s game.Surface) {
	m.DrawAt(s, e.X, e.Y)
}

func (m *Layered) DrawAt(s game.Surface, x, y float64) {
	for _, layer := range m.Layers {
		drawGrid(s, m.Tileset, m.TileWidth, m.TileHeight, layer, x, y)
	}
}

// Layer returns a single-layer view of layer i
func (m *Layered) Layer(i int) *Tilemap {
	return &Tilemap{
		Tileset:    m.Tileset,
		TileWidth:  m.TileWidth,
		TileHeight: m.TileHeight,
		Data:       m.Layers[i],
	}
}

// Size returns the size of the largest layer in pixels
func (m *Layered) Size() (float64, float64) {
	var w, h float64
	for _, layer := range m.Layers {
		lw, lh := gridSize(layer, m.TileWidth, m.TileHeight)
		w, h = max(w, lw), max(h, lh)
	}
	return w, h
}

// Colliders merges the colliders of every layer
func (m *Layered) Colliders(x, y float64, solid func(tile int) bool) []game.Collider {
	var colliders []game.Collider
	for _, layer := range m.Layers {
		colliders = append(colliders, gridColliders(layer, m.TileWidth, m.TileHeight, x, y, solid)...)
	}
	return colliders
}
