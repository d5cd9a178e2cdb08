package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Light is a point light with inverse-square falloff.
type Light struct {
	Position mgl32.Vec3
	Strength float32
	Color    mgl32.Vec3
}

func NewLight(position mgl32.Vec3, strength float32, color mgl32.Vec3) Light {
	return Light{
		Position: position,
		Strength: strength,
		Color:    color,
	}
}
