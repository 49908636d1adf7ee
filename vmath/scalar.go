package vmath

import (
	"math"
	"math/rand/v2"
)

const (
	DegToRadFactor = math.Pi / 180
	RadToDegFactor = 180 / math.Pi
)

// DegToRad converts degrees to radians
func DegToRad(degrees float64) float64 {
	return degrees * DegToRadFactor
}

// RadToDeg converts radians to degrees
func RadToDeg(radians float64) float64 {
	return radians * RadToDegFactor
}

// WrapDegrees maps an angle in (-360, +inf) onto [0, 360)
func WrapDegrees(angle float64) float64 {
	return math.Mod(angle+360, 360)
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Lerp interpolates linearly between start and end
func Lerp(start, end, t float64) float64 {
	return start + (end-start)*t
}

// Smoothstep returns the Hermite interpolation of t between the edges start and end.
// t is clamped so the result stays in [0, 1].
func Smoothstep(start, end, t float64) float64 {
	t = Clamp((t-start)/(end-start), 0, 1)
	return t * t * (3 - 2*t)
}

// RandomRange returns a value in [min, max). A nil rng uses the global source.
func RandomRange(rng *rand.Rand, min, max float64) float64 {
	return uniform(rng)*(max-min) + min
}

// RandomInt returns floor(RandomRange(min, max))
func RandomInt(rng *rand.Rand, min, max int) int {
	return int(math.Floor(RandomRange(rng, float64(min), float64(max))))
}

// RandomDirection returns a unit vector pointing in a uniformly random direction
func RandomDirection(rng *rand.Rand) Vec2 {
	angle := RandomRange(rng, 0, 2*math.Pi)
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

func uniform(rng *rand.Rand) float64 {
	if rng == nil {
		return rand.Float64()
	}
	return rng.Float64()
}
