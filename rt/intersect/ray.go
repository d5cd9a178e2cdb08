// Package intersect holds the ray/primitive intersection kernels and the
// linear closest-hit query over a committed scene.
package intersect

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Ray is an origin plus a direction. The intersection math tolerates a
// non-unit direction; shading assumes unit length, so callers that feed
// hits into the integrator should normalize.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

func NewRay(origin, dir mgl32.Vec3) Ray {
	return Ray{Origin: origin, Dir: dir}
}

// At is the point at parametric distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}
