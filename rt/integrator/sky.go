package integrator

import (
	"github.com/go-gl/mathgl/mgl32"
)

// SkyMode selects how a path that escapes the scene picks up its
// environment contribution.
type SkyMode int

const (
	// SkyAdd adds a constant ambient term to the path's gathered light.
	SkyAdd SkyMode = iota
	// SkyTint multiplies the path throughput by the sky color before adding
	// the ambient term.
	SkyTint
)

// SkyPolicy is the tunable environment-termination policy. The observed
// ambient strengths range from 0.5 to 0.7 depending on scene; none is
// canonical, so the knob is exposed.
type SkyPolicy struct {
	Mode     SkyMode
	Strength float32
	Color    mgl32.Vec3
}

// DefaultSky is a constant 0.5 ambient add.
func DefaultSky() SkyPolicy {
	return SkyPolicy{Mode: SkyAdd, Strength: 0.5}
}

// apply folds the environment contribution into a terminated path's
// throughput and gathered light.
func (p SkyPolicy) apply(color mgl32.Vec3, light float32) (mgl32.Vec3, float32) {
	switch p.Mode {
	case SkyTint:
		return mulElem(color, p.Color), light + p.Strength
	default:
		return color, light + p.Strength
	}
}
