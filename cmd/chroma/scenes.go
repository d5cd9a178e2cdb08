package main

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/chroma3d/chroma/rt/core"
)

// Built-in demo scenes, keyed by the --scene flag.
var sceneBuilders = map[string]func() (*core.Scene, error){
	"spheres": buildSphereScene,
	"meshes":  buildMeshScene,
}

func sceneNames() string {
	names := make([]string, 0, len(sceneBuilders))
	for name := range sceneBuilders {
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

func buildScene(name string) (*core.Scene, error) {
	builder, ok := sceneBuilders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (have: %s)", name, sceneNames())
	}
	return builder()
}

// buildSphereScene is a sphere-only scene lit by one emissive sphere,
// intended for the path-traced mode.
func buildSphereScene() (*core.Scene, error) {
	s := core.NewScene()
	s.Camera = core.NewCamera(mgl32.Vec3{0, 0.6, 2}, mgl32.Vec3{0, 0.1, 0})

	ground := s.AddMaterial(core.Material{Albedo: mgl32.Vec3{0.55, 0.52, 0.45}, Roughness: 1})
	red := s.AddMaterial(core.Material{Albedo: mgl32.Vec3{0.85, 0.2, 0.15}, Roughness: 0.9})
	steel := s.AddMaterial(core.Material{Albedo: mgl32.Vec3{0.7, 0.75, 0.8}, Roughness: 0.15, Metalness: 0.9})
	lamp := s.AddMaterial(core.Material{Albedo: mgl32.Vec3{1, 0.95, 0.85}, Roughness: 1, Emission: 5})

	s.AddSphere(core.NewSphere(mgl32.Vec3{0, -30, 0}, 30, ground))
	s.AddSphere(core.NewSphere(mgl32.Vec3{-0.25, 0.12, 0}, 0.12, red))
	s.AddSphere(core.NewSphere(mgl32.Vec3{0.22, 0.15, 0}, 0.15, steel))
	s.AddSphere(core.NewSphere(mgl32.Vec3{0, 0.55, -0.4}, 0.1, lamp))

	return s, s.Commit()
}

// buildMeshScene is a cube on a ground plane under one point light,
// intended for the direct-lighting mode.
func buildMeshScene() (*core.Scene, error) {
	s := core.NewScene()
	s.Camera = core.NewCamera(mgl32.Vec3{0.8, 0.7, 1.2}, mgl32.Vec3{0, 0.1, 0})

	floor := s.AddMaterial(core.Material{Albedo: mgl32.Vec3{0.6, 0.6, 0.58}, Roughness: 0.95})
	box := s.AddMaterial(core.Material{Albedo: mgl32.Vec3{0.2, 0.45, 0.8}, Roughness: 0.35, Metalness: 0.1})

	planeID, err := s.RegisterMesh(planeAsset(2))
	if err != nil {
		return nil, err
	}
	cubeID, err := s.RegisterMesh(cubeAsset(0.3))
	if err != nil {
		return nil, err
	}

	if _, err := s.AddObject(planeID, floor, nil); err != nil {
		return nil, err
	}
	cubeAt := core.NewTransform()
	cubeAt.Position = mgl32.Vec3{0, 0.15, 0}
	cubeAt.Rotation = mgl32.QuatRotate(mgl32.DegToRad(30), mgl32.Vec3{0, 1, 0})
	if _, err := s.AddObject(cubeID, box, cubeAt); err != nil {
		return nil, err
	}

	s.AddLight(core.NewLight(mgl32.Vec3{0.6, 1.2, 0.5}, 1.8, mgl32.Vec3{1, 0.96, 0.9}))
	s.AddLight(core.NewLight(mgl32.Vec3{-0.8, 0.8, -0.3}, 0.6, mgl32.Vec3{0.6, 0.7, 1}))

	return s, s.Commit()
}

// planeAsset is a ground quad of the given half-extent in the XZ plane.
func planeAsset(half float32) *core.MeshAsset {
	up := mgl32.Vec3{0, 1, 0}
	verts := []core.Vertex{
		{Position: mgl32.Vec3{-half, 0, -half}, Normal: up},
		{Position: mgl32.Vec3{half, 0, -half}, Normal: up},
		{Position: mgl32.Vec3{half, 0, half}, Normal: up},
		{Position: mgl32.Vec3{-half, 0, half}, Normal: up},
	}
	return core.NewMeshAsset(verts, []uint32{0, 2, 1, 0, 3, 2})
}

// cubeAsset is an axis-aligned cube of the given half-extent, one quad per
// face with face normals.
func cubeAsset(half float32) *core.MeshAsset {
	faces := []struct {
		normal  mgl32.Vec3
		corners [4]mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-half, -half, half}, {half, -half, half}, {half, half, half}, {-half, half, half}}},
		{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{half, -half, -half}, {-half, -half, -half}, {-half, half, -half}, {half, half, -half}}},
		{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{half, -half, half}, {half, -half, -half}, {half, half, -half}, {half, half, half}}},
		{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-half, -half, -half}, {-half, -half, half}, {-half, half, half}, {-half, half, -half}}},
		{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-half, half, half}, {half, half, half}, {half, half, -half}, {-half, half, -half}}},
		{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-half, -half, -half}, {half, -half, -half}, {half, -half, half}, {-half, -half, half}}},
	}

	var verts []core.Vertex
	var indices []uint32
	for _, f := range faces {
		base := uint32(len(verts))
		for _, c := range f.corners {
			verts = append(verts, core.Vertex{Position: c, Normal: f.normal})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return core.NewMeshAsset(verts, indices)
}
