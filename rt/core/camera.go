package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// WorldUp is the fixed up reference used when building the camera basis.
var WorldUp = mgl32.Vec3{0, 1, 0}

// Camera is a look-at camera described by an eye and a target point.
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
}

func NewCamera(eye, target mgl32.Vec3) Camera {
	return Camera{Eye: eye, Target: target}
}

// Forward is the unit view direction.
func (c Camera) Forward() mgl32.Vec3 {
	return c.Target.Sub(c.Eye).Normalize()
}

// Basis returns the orthonormal camera frame (forward, right, up).
// Right is built against WorldUp; if the view direction is (nearly)
// parallel to WorldUp an alternate reference axis is substituted so the
// frame stays well defined.
func (c Camera) Basis() (forward, right, up mgl32.Vec3) {
	forward = c.Forward()

	ref := WorldUp
	if cross := forward.Cross(ref); cross.LenSqr() < 1e-8 {
		ref = mgl32.Vec3{0, 0, 1}
	}
	right = forward.Cross(ref).Normalize()
	up = forward.Cross(right).Normalize()
	return forward, right, up
}
