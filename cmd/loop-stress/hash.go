package main

import (
	"image"

	"github.com/cespare/xxhash/v2"
)

// frameHash fingerprints the pixels of img so runs with the same seed and
// tick count can be compared
func frameHash(img image.Image) uint64 {
	if img == nil {
		return 0
	}

	digest := xxhash.New()
	bounds := img.Bounds()
	px := make([]byte, 0, bounds.Dx()*4)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		px = px[:0]
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			px = append(px, byte(r>>8), byte(g>>8), byte(b>>8), byte(a>>8))
		}
		digest.Write(px)
	}
	return digest.Sum64()
}
