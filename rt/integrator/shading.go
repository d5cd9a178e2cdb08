package integrator

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// brdfEpsilon keeps the specular denominator away from zero at grazing
// angles.
const brdfEpsilon = 1e-4

var white = mgl32.Vec3{1, 1, 1}

// distributionGGX is the GGX/Trowbridge-Reitz normal distribution.
func distributionGGX(nDotH, roughness float32) float32 {
	a := roughness * roughness
	a2 := a * a
	denom := nDotH*nDotH*(a2-1) + 1
	denom = math.Pi * denom * denom
	return a2 / (denom + brdfEpsilon)
}

// geometrySmith is the Smith joint shadow-masking term with k = roughness²/2.
func geometrySmith(nDotV, nDotL, roughness float32) float32 {
	k := roughness * roughness / 2
	return schlickGGX(nDotV, k) * schlickGGX(nDotL, k)
}

func schlickGGX(cosTheta, k float32) float32 {
	return cosTheta / (cosTheta*(1-k) + k + brdfEpsilon)
}

// fresnelSchlick is Schlick's approximation of the Fresnel reflectance.
func fresnelSchlick(cosTheta float32, f0 mgl32.Vec3) mgl32.Vec3 {
	m := float32(math.Pow(float64(clamp(1-cosTheta, 0, 1)), 5))
	return f0.Add(white.Sub(f0).Mul(m))
}

// reflect mirrors d about the unit normal n.
func reflect(d, n mgl32.Vec3) mgl32.Vec3 {
	return d.Sub(n.Mul(2 * d.Dot(n)))
}

// mixVec is the GLSL-style linear blend a·(1-t) + b·t.
func mixVec(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

func mulElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}

func clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func clamp01(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{clamp(v.X(), 0, 1), clamp(v.Y(), 0, 1), clamp(v.Z(), 0, 1)}
}
