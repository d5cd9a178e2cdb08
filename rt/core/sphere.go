package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Sphere is the analytic primitive used by the simpler scene variants.
// Radius must be positive.
type Sphere struct {
	Center     mgl32.Vec3
	Radius     float32
	MaterialID int32
}

func NewSphere(center mgl32.Vec3, radius float32, materialID int32) Sphere {
	return Sphere{
		Center:     center,
		Radius:     radius,
		MaterialID: materialID,
	}
}
