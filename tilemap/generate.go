package tilemap

import (
	"github.com/aquilax/go-perlin"
)

// Band maps noise values up to Max (exclusive) to Tile
type Band struct {
	Max  float64 `yaml:"max"`
	Tile int     `yaml:"tile"`
}

// GenerateConfig controls noise-based grid generation
type GenerateConfig struct {
	Columns int     `yaml:"columns"`
	Rows    int     `yaml:"rows"`
	Seed    int64   `yaml:"seed"`
	Scale   float64 `yaml:"scale"`

	// Bands are checked in order; values above every band are left empty
	Bands []Band `yaml:"bands"`
}

const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = int32(3)
)

// Generate fills a Rows x Columns grid from 2D Perlin noise. The same seed always yields the same grid.
func Generate(cfg GenerateConfig) [][]int {
	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, cfg.Seed)

	scale := cfg.Scale
	if scale <= 0 {
		scale = 0.1
	}

	data := make([][]int, cfg.Rows)
	for row := range data {
		data[row] = make([]int, cfg.Columns)
		for column := range data[row] {
			value := noise.Noise2D(float64(column)*scale, float64(row)*scale)
			data[row][column] = band(cfg.Bands, value)
		}
	}
	return data
}

func band(bands []Band, value float64) int {
	for _, b := range bands {
		if value < b.Max {
			return b.Tile
		}
	}
	return 0
}

// Ground returns a grid whose lowest rows are filled with tile and carved by noise above a base height.
// Column heights vary by at most amplitude rows around base.
func Ground(columns, rows, base, amplitude int, tile int, seed int64) [][]int {
	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed)

	data := make([][]int, rows)
	for row := range data {
		data[row] = make([]int, columns)
	}

	for column := 0; column < columns; column++ {
		offset := int(noise.Noise1D(float64(column)*0.15) * float64(amplitude))
		offset = max(-amplitude, min(amplitude, offset))
		height := max(0, min(rows, base+offset))

		for row := rows - height; row < rows; row++ {
			data[row][column] = tile
		}
	}
	return data
}
