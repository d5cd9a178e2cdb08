package palette

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Metric measures how far a palette entry is from a shaded color. Smaller
// is closer.
type Metric interface {
	Distance(entry, color mgl32.Vec3) float32
}

// Euclidean is plain RGB distance.
type Euclidean struct{}

func (Euclidean) Distance(entry, color mgl32.Vec3) float32 {
	return entry.Sub(color).Len()
}

// Perceptual weights the Euclidean distance by hue alignment: entries
// pointing in a different direction in RGB space are penalized even when
// their magnitudes are close. K and Bias are scene-tuning constants; both
// observed pairs are provided as presets rather than guessing a canonical
// one.
type Perceptual struct {
	K    float32
	Bias float32
}

// PerceptualSoft is the milder observed tuning.
func PerceptualSoft() Perceptual {
	return Perceptual{K: 0.5, Bias: 0.5}
}

// PerceptualStrong is the harsher observed tuning.
func PerceptualStrong() Perceptual {
	return Perceptual{K: 0.95, Bias: 0}
}

func (p Perceptual) Distance(entry, color mgl32.Vec3) float32 {
	dist := entry.Sub(color).Len()

	// normalize(0) is undefined; exact black carries no hue, so fall back
	// to the unweighted distance.
	if entry.LenSqr() == 0 || color.LenSqr() == 0 {
		return dist
	}

	align := entry.Normalize().Dot(color.Normalize())
	return dist * (1 - p.K*(align+p.Bias))
}
