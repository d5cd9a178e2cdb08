package integrator

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/chroma3d/chroma/rt/core"
	"github.com/chroma3d/chroma/rt/intersect"
	"github.com/chroma3d/chroma/rt/sampling"
)

// shadowBias offsets shadow-ray origins off the surface.
const shadowBias = 1e-3

// DirectLit is the single-bounce Cook-Torrance strategy: one closest-hit
// query, then one shadow ray per scene light.
type DirectLit struct {
	Background mgl32.Vec3
}

func NewDirectLit(background mgl32.Vec3) DirectLit {
	return DirectLit{Background: background}
}

// Li shades the closest hit with a GGX + Smith + Schlick microfacet BRDF.
// An emissive hit returns its emitted radiance directly; a miss returns the
// background. Lights occluded before their distance contribute nothing,
// whatever the material.
func (dl DirectLit) Li(s *core.Scene, ray intersect.Ray, rng sampling.RNG) mgl32.Vec3 {
	hit := intersect.ClosestHit(s, ray)
	if !hit.Ok {
		return dl.Background
	}

	mat := s.Material(hit.MaterialID)
	if mat.Emissive() {
		return clamp01(mat.Emitted())
	}

	n := hit.Normal
	v := ray.Dir.Mul(-1).Normalize()
	nDotV := max(n.Dot(v), 0)
	f0 := mixVec(mgl32.Vec3{0.04, 0.04, 0.04}, mat.Albedo, mat.Metalness)

	var sum mgl32.Vec3
	for _, lt := range s.Lights {
		toLight := lt.Position.Sub(hit.Position)
		dist := toLight.Len()
		if dist <= 0 {
			continue
		}
		l := toLight.Mul(1 / dist)

		nDotL := n.Dot(l)
		if nDotL <= 0 {
			continue
		}

		shadow := intersect.NewRay(hit.Position.Add(n.Mul(shadowBias)), l)
		if intersect.Occluded(s, shadow, dist) {
			continue
		}

		h := v.Add(l).Normalize()
		d := distributionGGX(max(n.Dot(h), 0), mat.Roughness)
		g := geometrySmith(nDotV, nDotL, mat.Roughness)
		f := fresnelSchlick(max(h.Dot(v), 0), f0)

		specular := f.Mul(d * g / (4*nDotV*nDotL + brdfEpsilon))
		kDiffuse := white.Sub(f).Mul(1 - mat.Metalness)
		diffuse := mulElem(kDiffuse, mat.Albedo).Mul(1 / math.Pi)

		radiance := lt.Color.Mul(lt.Strength / (dist * dist))
		sum = sum.Add(mulElem(diffuse.Add(specular), radiance).Mul(nDotL))
	}

	return clamp01(sum)
}
