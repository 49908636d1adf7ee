// Package tilemap draws grids of tiles from a single-row tileset and derives
// colliders from them. Tile 0 is empty; tile n is the n-th tile of the row.
package tilemap

import (
	"image"

	"github.com/plus3/stagecraft/game"
)

// Tilemap is a single grid of tile indices, indexed Data[row][column]
type Tilemap struct {
	Tileset    image.Image
	TileWidth  int
	TileHeight int
	Data       [][]int
}

// Source returns the tileset region of tile
func (m *Tilemap) Source(tile int) image.Rectangle {
	return tileSource(tile, m.TileWidth, m.TileHeight)
}

// Draw renders the map with its top-left corner at the entity position.
// It has the game.DrawFunc signature, so a map can be an entity's draw hook.
func (m *Tilemap) Draw(e *game.Entity, s game.Surface) {
	m.DrawAt(s, e.X, e.Y)
}

// DrawAt renders every non-empty tile with the map's top-left corner at (x, y)
func (m *Tilemap) DrawAt(s game.Surface, x, y float64) {
	drawGrid(s, m.Tileset, m.TileWidth, m.TileHeight, m.Data, x, y)
}

// TileAt returns the tile at column, row, or 0 outside the grid
func (m *Tilemap) TileAt(column, row int) int {
	return tileAt(m.Data, column, row)
}

// Size returns the map size in pixels
func (m *Tilemap) Size() (float64, float64) {
	return gridSize(m.Data, m.TileWidth, m.TileHeight)
}

// Colliders returns one collider per horizontal run of solid tiles, offset by (x, y)
func (m *Tilemap) Colliders(x, y float64, solid func(tile int) bool) []game.Collider {
	return gridColliders(m.Data, m.TileWidth, m.TileHeight, x, y, solid)
}

func tileSource(tile, tileWidth, tileHeight int) image.Rectangle {
	return image.Rect(tile*tileWidth, 0, (tile+1)*tileWidth, tileHeight)
}

func drawGrid(s game.Surface, tileset image.Image, tileWidth, tileHeight int, data [][]int, originX, originY float64) {
	for row, tiles := range data {
		for column, tile := range tiles {
			if tile == 0 {
				continue
			}
			s.DrawImage(tileset,
				tileSource(tile, tileWidth, tileHeight),
				originX+float64(column*tileWidth),
				originY+float64(row*tileHeight),
			)
		}
	}
}

func tileAt(data [][]int, column, row int) int {
	if row < 0 || row >= len(data) || column < 0 || column >= len(data[row]) {
		return 0
	}
	return data[row][column]
}

func gridSize(data [][]int, tileWidth, tileHeight int) (float64, float64) {
	columns := 0
	for _, tiles := range data {
		columns = max(columns, len(tiles))
	}
	return float64(columns * tileWidth), float64(len(data) * tileHeight)
}

func gridColliders(data [][]int, tileWidth, tileHeight int, originX, originY float64, solid func(tile int) bool) []game.Collider {
	var colliders []game.Collider

	for row, tiles := range data {
		start := -1
		flush := func(end int) {
			if start < 0 {
				return
			}
			colliders = append(colliders, game.StaticCollider{
				X:      originX + float64(start*tileWidth),
				Y:      originY + float64(row*tileHeight),
				Width:  float64((end - start) * tileWidth),
				Height: float64(tileHeight),
			})
			start = -1
		}

		for column, tile := range tiles {
			if tile != 0 && solid(tile) {
				if start < 0 {
					start = column
				}
				continue
			}
			flush(column)
		}
		flush(len(tiles))
	}

	return colliders
}

// Solid returns a predicate matching the given tiles
func Solid(tiles ...int) func(tile int) bool {
	set := make(map[int]struct{}, len(tiles))
	for _, t := range tiles {
		set[t] = struct{}{}
	}
	return func(tile int) bool {
		_, ok := set[tile]
		return ok
	}
}

// AnyTile treats every non-empty tile as solid
func AnyTile(tile int) bool {
	return tile != 0
}
