package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Material is the shading description shared by spheres and mesh objects.
// Albedo components are expected in [0,1]; Emission is a scalar radiance
// multiplier over Albedo.
type Material struct {
	Albedo    mgl32.Vec3
	Roughness float32
	Metalness float32
	Emission  float32
}

func NewMaterial(albedo mgl32.Vec3) Material {
	return Material{
		Albedo:    albedo,
		Roughness: 1.0,
		Metalness: 0.0,
	}
}

// Emissive reports whether the material acts as a light source.
func (m Material) Emissive() bool {
	return m.Emission > 0
}

// Emitted is the radiance leaving an emissive surface.
func (m Material) Emitted() mgl32.Vec3 {
	return m.Albedo.Mul(m.Emission)
}

// Helper for default white
func DefaultMaterial() Material {
	return NewMaterial(mgl32.Vec3{1, 1, 1})
}
