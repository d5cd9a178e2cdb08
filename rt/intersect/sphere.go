package intersect

import (
	"math"

	"github.com/chroma3d/chroma/rt/core"
)

// Sphere intersects a ray with an analytic sphere. The quadratic is solved
// in half-b form: a·t² + 2·halfB·t + c = 0 with a = dot(d,d),
// halfB = dot(o-c,d), c = dot(o-c,o-c) - r². A negative discriminant or a
// nearest root behind the origin is a miss; NaNs never escape.
func Sphere(ray Ray, sphere core.Sphere) Hit {
	oc := ray.Origin.Sub(sphere.Center)
	a := ray.Dir.Dot(ray.Dir)
	halfB := oc.Dot(ray.Dir)
	c := oc.Dot(oc) - sphere.Radius*sphere.Radius

	disc := halfB*halfB - a*c
	if disc < 0 {
		return miss()
	}

	t := (-halfB - float32(math.Sqrt(float64(disc)))) / a
	if t < 0 {
		return miss()
	}

	pos := ray.At(t)
	return Hit{
		Ok:         true,
		Position:   pos,
		Normal:     pos.Sub(sphere.Center).Mul(1 / sphere.Radius),
		MaterialID: sphere.MaterialID,
		T:          t,
	}
}
