package intersect

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/chroma3d/chroma/rt/core"
)

const tol = 1e-5

func approx(t *testing.T, name string, got, want mgl32.Vec3) {
	t.Helper()
	if !got.ApproxEqualThreshold(want, tol) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestSphereFrontalHit(t *testing.T) {
	ray := NewRay(mgl32.Vec3{0, 0, -100}, mgl32.Vec3{0, 0, 1})
	sphere := core.NewSphere(mgl32.Vec3{0, 0, 0}, 50, 3)

	hit := Sphere(ray, sphere)
	if !hit.Ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(float64(hit.T-50)) > tol {
		t.Errorf("t = %v, want 50", hit.T)
	}
	approx(t, "position", hit.Position, mgl32.Vec3{0, 0, -50})
	approx(t, "normal", hit.Normal, mgl32.Vec3{0, 0, -1})
	if hit.MaterialID != 3 {
		t.Errorf("material = %d, want 3", hit.MaterialID)
	}
}

func TestSphereMissNegativeDiscriminant(t *testing.T) {
	ray := NewRay(mgl32.Vec3{0, 10, -100}, mgl32.Vec3{0, 0, 1})
	sphere := core.NewSphere(mgl32.Vec3{0, 0, 0}, 5, 0)

	if Sphere(ray, sphere).Ok {
		t.Error("ray passing above the sphere should miss")
	}
}

func TestSphereBehindOrigin(t *testing.T) {
	ray := NewRay(mgl32.Vec3{0, 0, 100}, mgl32.Vec3{0, 0, 1})
	sphere := core.NewSphere(mgl32.Vec3{0, 0, 0}, 50, 0)

	if Sphere(ray, sphere).Ok {
		t.Error("sphere behind the ray origin should miss")
	}
}

func TestSphereNonUnitDirection(t *testing.T) {
	// The quadratic handles non-unit directions; t scales inversely.
	ray := NewRay(mgl32.Vec3{0, 0, -100}, mgl32.Vec3{0, 0, 2})
	sphere := core.NewSphere(mgl32.Vec3{0, 0, 0}, 50, 0)

	hit := Sphere(ray, sphere)
	if !hit.Ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(float64(hit.T-25)) > tol {
		t.Errorf("t = %v, want 25", hit.T)
	}
	approx(t, "position", hit.Position, mgl32.Vec3{0, 0, -50})
}
