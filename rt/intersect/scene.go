package intersect

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/chroma3d/chroma/rt/core"
)

// ClosestHit scans every primitive of the committed scene and keeps the hit
// with the smallest non-negative t. The scan runs in buffer order (spheres,
// then meshes, then triangles within a mesh) and only a strictly smaller t
// replaces the current best, so equal-distance ties keep the earliest
// primitive. Meshes whose world AABB the ray misses are skipped wholesale.
func ClosestHit(s *core.Scene, ray Ray) Hit {
	best := miss()

	for _, sphere := range s.Spheres {
		if h := Sphere(ray, sphere); h.Ok && (!best.Ok || h.T < best.T) {
			best = h
		}
	}

	for mi := range s.Meshes {
		mesh := &s.Meshes[mi]
		if !AABB(ray, mesh.MinAABB, mesh.MaxAABB) {
			continue
		}
		if h := meshHit(s, mesh, ray); h.Ok && (!best.Ok || h.T < best.T) {
			best = h
		}
	}
	return best
}

// Occluded reports whether anything blocks the ray before maxDist. It is the
// boolean shadow query: the first qualifying hit ends the scan, closest-hit
// order is irrelevant.
func Occluded(s *core.Scene, ray Ray, maxDist float32) bool {
	for _, sphere := range s.Spheres {
		if h := Sphere(ray, sphere); h.Ok && h.T < maxDist {
			return true
		}
	}

	for mi := range s.Meshes {
		mesh := &s.Meshes[mi]
		if !AABB(ray, mesh.MinAABB, mesh.MaxAABB) {
			continue
		}
		for tri := mesh.FirstIndex; tri < mesh.FirstIndex+mesh.NumIndices; tri += 3 {
			p0, p1, p2, n0, n1, n2 := triangleCorners(s, mesh, tri)
			if h := Triangle(ray, p0, p1, p2, n0, n1, n2); h.Ok && h.T < maxDist {
				return true
			}
		}
	}
	return false
}

// meshHit is the closest hit against one mesh's triangle span.
func meshHit(s *core.Scene, mesh *core.Mesh, ray Ray) Hit {
	best := miss()
	for tri := mesh.FirstIndex; tri < mesh.FirstIndex+mesh.NumIndices; tri += 3 {
		p0, p1, p2, n0, n1, n2 := triangleCorners(s, mesh, tri)
		if h := Triangle(ray, p0, p1, p2, n0, n1, n2); h.Ok && (!best.Ok || h.T < best.T) {
			h.MaterialID = mesh.MaterialID
			best = h
		}
	}
	return best
}

// triangleCorners fetches one triangle of a mesh span, carried to world
// space by the mesh transform and normal matrix.
func triangleCorners(s *core.Scene, mesh *core.Mesh, first int32) (p0, p1, p2, n0, n1, n2 mgl32.Vec3) {
	v0 := s.Vertices[s.Indices[first]]
	v1 := s.Vertices[s.Indices[first+1]]
	v2 := s.Vertices[s.Indices[first+2]]

	p0 = mesh.Transform.Mul4x1(v0.Position.Vec4(1)).Vec3()
	p1 = mesh.Transform.Mul4x1(v1.Position.Vec4(1)).Vec3()
	p2 = mesh.Transform.Mul4x1(v2.Position.Vec4(1)).Vec3()

	n0 = transformNormal(mesh, v0)
	n1 = transformNormal(mesh, v1)
	n2 = transformNormal(mesh, v2)
	return
}

func transformNormal(mesh *core.Mesh, v core.Vertex) mgl32.Vec3 {
	if !v.HasNormal() {
		return mgl32.Vec3{}
	}
	n := mesh.NormalMatrix.Mul3x1(v.Normal)
	if n.LenSqr() == 0 {
		return mgl32.Vec3{}
	}
	return n.Normalize()
}
