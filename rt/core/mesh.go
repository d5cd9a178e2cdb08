package core

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// MeshID addresses a registered mesh asset. Several scene objects may share
// one asset with different transforms and materials.
type MeshID string

func NewMeshID() MeshID {
	return MeshID(uuid.NewString())
}

// MeshAsset is reusable geometry as authored: object-space vertices plus a
// triangle index list (three indices per triangle).
type MeshAsset struct {
	ID       MeshID
	Vertices []Vertex
	Indices  []uint32
}

func NewMeshAsset(vertices []Vertex, indices []uint32) *MeshAsset {
	return &MeshAsset{
		ID:       NewMeshID(),
		Vertices: vertices,
		Indices:  indices,
	}
}

// Mesh is one entry of the committed scene's flat mesh buffer: a span of the
// global index buffer plus the per-object shading and culling data. The AABB
// is in world space and must enclose every transformed vertex of the span;
// an under-sized box silently drops hits, which is the accepted price of
// box-only culling.
type Mesh struct {
	FirstIndex int32
	NumIndices int32
	MaterialID int32
	MinAABB    mgl32.Vec3
	MaxAABB    mgl32.Vec3
	Transform  mgl32.Mat4

	// NormalMatrix carries normals to world space (inverse transpose of the
	// upper-left of Transform), precomputed at commit time.
	NormalMatrix mgl32.Mat3
}
