package integrator

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/chroma3d/chroma/rt/core"
	"github.com/chroma3d/chroma/rt/intersect"
	"github.com/chroma3d/chroma/rt/sampling"
)

// PathTraced is the multi-bounce Monte Carlo strategy. It is a biased,
// fixed-depth estimator: no Russian roulette, no importance sampling. Good
// enough for stylized low-resolution output, not physically exact.
type PathTraced struct {
	Bounces int
	Samples int
	Sky     SkyPolicy
}

// NewPathTraced builds a path tracer with the given depth and sample count
// (both clamped to at least 1) and the default sky policy.
func NewPathTraced(bounces, samples int) PathTraced {
	if bounces < 1 {
		bounces = 1
	}
	if samples < 1 {
		samples = 1
	}
	return PathTraced{Bounces: bounces, Samples: samples, Sky: DefaultSky()}
}

// Li traces Samples independent paths of up to Bounces segments each.
// Per bounce: a miss terminates the path with the sky contribution; a hit
// multiplies the throughput by the albedo blended toward white by
// metalness, gathers the material's emission, then continues from
// hitPosition + normal with a direction blending the mirror reflection
// toward a random scatter direction by roughness. The sample average is
// clamped to [0,1].
func (pt PathTraced) Li(s *core.Scene, ray intersect.Ray, rng sampling.RNG) mgl32.Vec3 {
	var total mgl32.Vec3

	for sample := 0; sample < pt.Samples; sample++ {
		color := white
		light := float32(0)
		r := ray

		for bounce := 0; bounce < pt.Bounces; bounce++ {
			hit := intersect.ClosestHit(s, r)
			if !hit.Ok {
				color, light = pt.Sky.apply(color, light)
				break
			}

			mat := s.Material(hit.MaterialID)
			color = mulElem(color, mixVec(mat.Albedo, white, mat.Metalness))
			light += mat.Emission

			// Offset along the normal so the next segment does not
			// re-intersect the surface it left.
			origin := hit.Position.Add(hit.Normal)
			reflected := reflect(r.Dir.Normalize(), hit.Normal)
			scatter := rng.UnitVector(pathSeed(sample, bounce))
			dir := mixVec(reflected, scatter, mat.Roughness)
			if dir.LenSqr() < 1e-12 {
				// Reflection and scatter cancelled out; keep the scatter.
				dir = scatter
			}
			r = intersect.NewRay(origin, dir.Normalize())
		}

		total = total.Add(color.Mul(light))
	}

	return clamp01(total.Mul(1 / float32(pt.Samples)))
}

// pathSeed decorrelates the scatter draws across samples and bounces.
func pathSeed(sample, bounce int) float32 {
	return float32(sample)*7.31 + float32(bounce)*3.7
}
