package palette

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Quantizer maps continuous colors to their nearest palette entry under a
// chosen metric. It is read-only after construction and safe for concurrent
// use from any number of pixel workers.
type Quantizer struct {
	palette Palette
	metric  Metric
}

// NewQuantizer builds a quantizer. A nil metric defaults to Euclidean; an
// empty palette defaults to the built-in table.
func NewQuantizer(p Palette, m Metric) *Quantizer {
	if len(p) == 0 {
		p = Default()
	}
	if m == nil {
		m = Euclidean{}
	}
	return &Quantizer{palette: p, metric: m}
}

// Palette exposes the quantizer's table.
func (q *Quantizer) Palette() Palette {
	return q.palette
}

// Quantize returns the index and color of the entry closest to c. The scan
// is linear and only a strictly smaller distance replaces the running best,
// so ties resolve to the lowest index.
func (q *Quantizer) Quantize(c mgl32.Vec3) (int, mgl32.Vec3) {
	bestIdx := 0
	bestDist := float32(math.Inf(1))

	for i, entry := range q.palette {
		if d := q.metric.Distance(entry, c); d < bestDist {
			bestDist = d
			bestIdx = i
		}
	}
	return bestIdx, q.palette[bestIdx]
}
