package intersect

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/chroma3d/chroma/rt/core"
)

// quadAsset is a unit quad in the XY plane facing +Z.
func quadAsset(t *testing.T) *core.MeshAsset {
	t.Helper()
	verts := []core.Vertex{
		{Position: mgl32.Vec3{-1, -1, 0}},
		{Position: mgl32.Vec3{1, -1, 0}},
		{Position: mgl32.Vec3{1, 1, 0}},
		{Position: mgl32.Vec3{-1, 1, 0}},
	}
	return core.NewMeshAsset(verts, []uint32{0, 1, 2, 0, 2, 3})
}

// wallScene commits two parallel quads at z = -2 (material 0) and z = -5
// (material 1), sharing one asset.
func wallScene(t *testing.T) *core.Scene {
	t.Helper()
	s := core.NewScene()
	id, err := s.RegisterMesh(quadAsset(t))
	if err != nil {
		t.Fatal(err)
	}

	near := core.NewTransform()
	near.Position = mgl32.Vec3{0, 0, -2}
	if _, err := s.AddObject(id, 0, near); err != nil {
		t.Fatal(err)
	}

	far := core.NewTransform()
	far.Position = mgl32.Vec3{0, 0, -5}
	far.Scale = mgl32.Vec3{3, 3, 1}
	if _, err := s.AddObject(id, 1, far); err != nil {
		t.Fatal(err)
	}

	if err := s.Commit(); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestClosestHitPicksNearest(t *testing.T) {
	s := wallScene(t)
	ray := NewRay(mgl32.Vec3{0, 0, 2}, mgl32.Vec3{0, 0, -1})

	hit := ClosestHit(s, ray)
	if !hit.Ok {
		t.Fatal("expected a hit")
	}
	if hit.MaterialID != 0 {
		t.Errorf("material = %d, want the nearer wall (0)", hit.MaterialID)
	}
	if got, want := hit.T, float32(4); got < want-tol || got > want+tol {
		t.Errorf("t = %v, want %v", got, want)
	}

	// Past the near wall's extent only the scaled far wall remains.
	side := NewRay(mgl32.Vec3{2, 0, 2}, mgl32.Vec3{0, 0, -1})
	hit = ClosestHit(s, side)
	if !hit.Ok || hit.MaterialID != 1 {
		t.Errorf("hit = %+v, want the far wall (material 1)", hit)
	}
}

func TestClosestHitTieKeepsFirst(t *testing.T) {
	s := core.NewScene()
	s.AddSphere(core.NewSphere(mgl32.Vec3{0, 0, 0}, 1, 7))
	s.AddSphere(core.NewSphere(mgl32.Vec3{0, 0, 0}, 1, 8))

	hit := ClosestHit(s, NewRay(mgl32.Vec3{0, 0, -5}, mgl32.Vec3{0, 0, 1}))
	if !hit.Ok {
		t.Fatal("expected a hit")
	}
	if hit.MaterialID != 7 {
		t.Errorf("material = %d, want the earlier sphere (7)", hit.MaterialID)
	}
}

// The AABB check is pure culling: any ray whose triangles report a hit must
// also pass the box test, so removing the check can never change the hit set
// over the fixture meshes.
func TestAABBRejectionIsConservative(t *testing.T) {
	s := wallScene(t)

	for iy := -6; iy <= 6; iy++ {
		for ix := -6; ix <= 6; ix++ {
			ray := NewRay(
				mgl32.Vec3{float32(ix) * 0.5, float32(iy) * 0.5, 3},
				mgl32.Vec3{0.05, -0.02, -1},
			)
			for mi := range s.Meshes {
				mesh := &s.Meshes[mi]
				if meshHit(s, mesh, ray).Ok && !AABB(ray, mesh.MinAABB, mesh.MaxAABB) {
					t.Fatalf("mesh %d: triangle hit for ray %+v but AABB rejected it", mi, ray)
				}
			}
		}
	}
}

func TestOccludedRespectsMaxDistance(t *testing.T) {
	s := core.NewScene()
	s.AddSphere(core.NewSphere(mgl32.Vec3{0, 0, -10}, 1, 0))

	ray := NewRay(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -1})
	if Occluded(s, ray, 5) {
		t.Error("occluder beyond maxDist must not count")
	}
	if !Occluded(s, ray, 20) {
		t.Error("occluder before maxDist must count")
	}
}

func TestOccludedSeesMeshes(t *testing.T) {
	s := wallScene(t)

	ray := NewRay(mgl32.Vec3{0, 0, 2}, mgl32.Vec3{0, 0, -1})
	if !Occluded(s, ray, 100) {
		t.Error("wall must occlude")
	}
	if Occluded(s, ray, 1) {
		t.Error("wall is 4 units away, maxDist 1 must not see it")
	}
}
