package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex matches the layout of the renderer's flat vertex buffer. Positions
// are in object space; normals are optional and reported by HasNormal.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}

// HasNormal reports whether the vertex carries a usable shading normal.
// A zero normal means "interpolate nothing, use the face normal".
func (v Vertex) HasNormal() bool {
	return v.Normal.LenSqr() > 0
}
