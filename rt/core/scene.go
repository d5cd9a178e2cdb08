package core

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// ObjectID addresses one placed object so the host can move it between frames.
type ObjectID string

func NewObjectID() ObjectID {
	return ObjectID(uuid.NewString())
}

// Object is a placed instance of a registered mesh asset.
type Object struct {
	ID         ObjectID
	Mesh       MeshID
	MaterialID int32
	Transform  *Transform
}

// Scene is the scene store. The host mutates it through the Add/Register
// methods, then calls Commit to rebuild the flat buffers the kernels read.
// Between Commit and the end of a dispatch the buffers are read-only.
type Scene struct {
	registry  map[MeshID]*MeshAsset
	meshOrder []MeshID
	objects   []*Object

	// Flat buffers consumed by the intersector and integrator.
	Vertices  []Vertex
	Indices   []uint32
	Meshes    []Mesh
	Spheres   []Sphere
	Materials []Material
	Lights    []Light

	Camera Camera
	Time   Time
}

func NewScene() *Scene {
	return &Scene{
		registry: make(map[MeshID]*MeshAsset),
	}
}

// RegisterMesh adds a mesh asset to the scene's registry. The asset's index
// count must be a multiple of 3 (one triangle per three indices).
func (s *Scene) RegisterMesh(asset *MeshAsset) (MeshID, error) {
	if len(asset.Indices)%3 != 0 {
		return "", fmt.Errorf("mesh %s: index count %d is not a multiple of 3", asset.ID, len(asset.Indices))
	}
	for _, idx := range asset.Indices {
		if int(idx) >= len(asset.Vertices) {
			return "", fmt.Errorf("mesh %s: index %d out of range (%d vertices)", asset.ID, idx, len(asset.Vertices))
		}
	}
	if _, dup := s.registry[asset.ID]; !dup {
		s.meshOrder = append(s.meshOrder, asset.ID)
	}
	s.registry[asset.ID] = asset
	return asset.ID, nil
}

// AddObject places an instance of a registered mesh.
func (s *Scene) AddObject(mesh MeshID, materialID int32, transform *Transform) (*Object, error) {
	if _, ok := s.registry[mesh]; !ok {
		return nil, fmt.Errorf("unknown mesh %s", mesh)
	}
	if transform == nil {
		transform = NewTransform()
	}
	obj := &Object{
		ID:         NewObjectID(),
		Mesh:       mesh,
		MaterialID: materialID,
		Transform:  transform,
	}
	s.objects = append(s.objects, obj)
	return obj, nil
}

// Object looks up a placed object by ID.
func (s *Scene) Object(id ObjectID) (*Object, bool) {
	for _, obj := range s.objects {
		if obj.ID == id {
			return obj, true
		}
	}
	return nil, false
}

// AddMaterial appends a material and returns its slot.
func (s *Scene) AddMaterial(m Material) int32 {
	s.Materials = append(s.Materials, m)
	return int32(len(s.Materials) - 1)
}

func (s *Scene) AddSphere(sphere Sphere) {
	s.Spheres = append(s.Spheres, sphere)
}

func (s *Scene) AddLight(light Light) {
	s.Lights = append(s.Lights, light)
}

// Material returns the material at the given slot, or the default white
// material when the slot is out of range. Kernels must always shade with
// something.
func (s *Scene) Material(id int32) Material {
	if id < 0 || int(id) >= len(s.Materials) {
		return DefaultMaterial()
	}
	return s.Materials[id]
}

// Commit rebuilds the flat vertex/index/mesh buffers from the registered
// assets and placed objects. Registered assets are packed once in
// registration order with rebased indices; each object contributes one mesh
// entry spanning its asset's index range, with its transform, material slot
// and a world-space AABB computed from the transformed vertices.
func (s *Scene) Commit() error {
	s.Vertices = s.Vertices[:0]
	s.Indices = s.Indices[:0]
	s.Meshes = s.Meshes[:0]

	firstIndex := make(map[MeshID]int32, len(s.meshOrder))
	for _, id := range s.meshOrder {
		asset := s.registry[id]
		base := uint32(len(s.Vertices))
		firstIndex[id] = int32(len(s.Indices))
		for _, idx := range asset.Indices {
			s.Indices = append(s.Indices, base+idx)
		}
		s.Vertices = append(s.Vertices, asset.Vertices...)
	}

	for _, obj := range s.objects {
		asset := s.registry[obj.Mesh]
		o2w := obj.Transform.ObjectToWorld()
		minB, maxB := worldBounds(asset.Vertices, o2w)

		s.Meshes = append(s.Meshes, Mesh{
			FirstIndex:   firstIndex[obj.Mesh],
			NumIndices:   int32(len(asset.Indices)),
			MaterialID:   obj.MaterialID,
			MinAABB:      minB,
			MaxAABB:      maxB,
			Transform:    o2w,
			NormalMatrix: o2w.Inv().Transpose().Mat3(),
		})
	}
	return nil
}

// worldBounds is the min/max of the vertices carried through the transform.
func worldBounds(vertices []Vertex, o2w mgl32.Mat4) (mgl32.Vec3, mgl32.Vec3) {
	inf := float32(math.Inf(1))
	minB := mgl32.Vec3{inf, inf, inf}
	maxB := mgl32.Vec3{-inf, -inf, -inf}

	for _, v := range vertices {
		w := o2w.Mul4x1(v.Position.Vec4(1)).Vec3()
		minB = mgl32.Vec3{min(minB.X(), w.X()), min(minB.Y(), w.Y()), min(minB.Z(), w.Z())}
		maxB = mgl32.Vec3{max(maxB.X(), w.X()), max(maxB.Y(), w.Y()), max(maxB.Z(), w.Z())}
	}
	return minB, maxB
}
