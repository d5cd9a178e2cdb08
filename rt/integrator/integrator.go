// Package integrator evaluates the rendering equation for one primary ray.
// Two strategies are provided: a fixed-depth Monte Carlo path tracer and a
// single-bounce direct-lighting evaluator with a Cook-Torrance BRDF. Both
// are pure functions of (scene, ray, rng); neither keeps state between
// invocations, so one value can serve any number of concurrent pixel
// workers.
package integrator

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/chroma3d/chroma/rt/core"
	"github.com/chroma3d/chroma/rt/intersect"
	"github.com/chroma3d/chroma/rt/sampling"
)

// Integrator computes the color carried back along a primary ray.
type Integrator interface {
	Li(s *core.Scene, ray intersect.Ray, rng sampling.RNG) mgl32.Vec3
}
