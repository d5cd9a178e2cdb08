package intersect

import (
	"github.com/go-gl/mathgl/mgl32"
)

// detEpsilon rejects triangles viewed edge-on, where the edge/direction
// basis becomes singular and the inverse would blow up.
const detEpsilon = 1e-12

// Triangle intersects a ray with a single triangle given by its world-space
// corners and per-corner shading normals. The ray is expressed in the basis
// (e1, e2, -d) of the two triangle edges and the negated ray direction;
// inverting that 3×3 system yields (u, v, t) directly. A hit requires
// t ≥ 0, u ≥ 0, v ≥ 0 and u+v ≤ 1.
//
// The returned normal interpolates the corner normals barycentrically when
// they are non-zero, otherwise it is the geometric face normal.
func Triangle(ray Ray, p0, p1, p2, n0, n1, n2 mgl32.Vec3) Hit {
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)
	negDir := ray.Dir.Mul(-1)

	// Column-major basis [e1 e2 -d].
	m := mgl32.Mat3{
		e1.X(), e1.Y(), e1.Z(),
		e2.X(), e2.Y(), e2.Z(),
		negDir.X(), negDir.Y(), negDir.Z(),
	}
	det := m.Det()
	if det > -detEpsilon && det < detEpsilon {
		return miss()
	}

	uvt := m.Inv().Mul3x1(ray.Origin.Sub(p0))
	u, v, t := uvt.X(), uvt.Y(), uvt.Z()
	if t < 0 || u < 0 || v < 0 || u+v > 1 {
		return miss()
	}

	normal := faceNormal(e1, e2)
	if n0.LenSqr() > 0 && n1.LenSqr() > 0 && n2.LenSqr() > 0 {
		w := 1 - u - v
		normal = n0.Mul(w).Add(n1.Mul(u)).Add(n2.Mul(v)).Normalize()
	}

	return Hit{
		Ok:       true,
		Position: ray.At(t),
		Normal:   normal,
		T:        t,
	}
}

func faceNormal(e1, e2 mgl32.Vec3) mgl32.Vec3 {
	n := e1.Cross(e2)
	if n.LenSqr() == 0 {
		// Degenerate triangle; any unit vector keeps shading finite.
		return mgl32.Vec3{0, 1, 0}
	}
	return n.Normalize()
}
