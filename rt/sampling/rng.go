// Package sampling provides the stateless per-pixel random number generator
// used by the Monte Carlo integrator. Every draw is a pure function of
// (pixel coordinate, caller seed, frame time), so arbitrarily many pixel
// workers can sample concurrently with no shared state.
package sampling

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Hash coefficients for the sine-fract scalar hash. Not statistically
// rigorous, but deterministic and cheap, which is all the stylized
// low-resolution output needs.
const (
	hashX    = 12.9898
	hashY    = 78.233
	hashSeed = 37.719
	hashTime = 0.61803
	hashMul  = 43758.5453
)

// RNG is an immutable per-pixel sampling context. Construct one per pixel
// worker and thread it through the integrator call chain.
type RNG struct {
	Pixel mgl32.Vec2
	Time  float32
}

func New(pixel mgl32.Vec2, time float32) RNG {
	return RNG{Pixel: pixel, Time: time}
}

// Unit returns a pseudo-random scalar in [0,1). Identical (pixel, seed,
// time) inputs yield identical outputs.
func (r RNG) Unit(seed float32) float32 {
	d := r.Pixel.X()*hashX + r.Pixel.Y()*hashY + seed*hashSeed + r.Time*hashTime
	return fract(float32(math.Sin(float64(d))) * hashMul)
}

// Scalar returns a pseudo-random scalar in [-1,1).
func (r RNG) Scalar(seed float32) float32 {
	return r.Unit(seed)*2 - 1
}

// UnitVector returns a pseudo-random direction built from three independent
// scalar draws, normalized. If all three draws are exactly zero the result
// is undefined; the probability is negligible and callers do not guard it.
func (r RNG) UnitVector(seed float32) mgl32.Vec3 {
	v := mgl32.Vec3{
		r.Scalar(seed),
		r.Scalar(seed + 1),
		r.Scalar(seed + 2),
	}
	return v.Normalize()
}

func fract(x float32) float32 {
	return x - float32(math.Floor(float64(x)))
}
