package tilemap

import (
	"errors"
	"fmt"
	"image"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

// Definition is the on-disk form of a layered map. Tileset names an image
// that the caller resolves, usually through an assets.Loader.
type Definition struct {
	Tileset    string          `yaml:"tileset"`
	TileWidth  int             `yaml:"tile_width"`
	TileHeight int             `yaml:"tile_height"`
	Solid      []int           `yaml:"solid"`
	Layers     [][][]int       `yaml:"layers"`
	Generate   *GenerateConfig `yaml:"generate"`
}

// Decode reads a YAML map definition
func Decode(r io.Reader) (Definition, error) {
	var d Definition

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return Definition{}, fmt.Errorf("decode tilemap: %w", err)
	}

	if d.TileWidth <= 0 || d.TileHeight <= 0 {
		return Definition{}, fmt.Errorf("invalid tile size %dx%d", d.TileWidth, d.TileHeight)
	}
	return d, nil
}

// Build creates the layered map. A generate section is appended as an extra layer.
func (d Definition) Build(tileset image.Image) *Layered {
	layers := d.Layers
	if d.Generate != nil {
		layers = append(layers[:len(layers):len(layers)], Generate(*d.Generate))
	}

	return &Layered{
		Tileset:    tileset,
		TileWidth:  d.TileWidth,
		TileHeight: d.TileHeight,
		Layers:     layers,
	}
}

// IsSolid reports whether tile is listed as solid. With no list, every non-empty tile is solid.
func (d Definition) IsSolid(tile int) bool {
	if tile == 0 {
		return false
	}
	if len(d.Solid) == 0 {
		return true
	}
	return slices.Contains(d.Solid, tile)
}
