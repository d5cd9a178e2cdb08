package intersect

import (
	"github.com/go-gl/mathgl/mgl32"
)

// slabEpsilon guards the near-zero direction components in the slab test so
// the division cannot produce inf/NaN that would leak into shading.
const slabEpsilon = 1e-9

// AABB is the slab test used for coarse per-mesh rejection. It reports
// whether the ray's parametric interval inside the box is non-empty and not
// entirely behind the origin. A ray starting inside the box hits.
func AABB(ray Ray, minB, maxB mgl32.Vec3) bool {
	tMin := float32(0)
	tMax := float32(1e30)

	for axis := 0; axis < 3; axis++ {
		d := ray.Dir[axis]
		o := ray.Origin[axis]
		lo, hi := minB[axis], maxB[axis]

		if d > -slabEpsilon && d < slabEpsilon {
			// Parallel to this slab: inside or nothing.
			if o < lo || o > hi {
				return false
			}
			continue
		}

		inv := 1 / d
		t0 := (lo - o) * inv
		t1 := (hi - o) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMin > tMax {
			return false
		}
	}
	return true
}
