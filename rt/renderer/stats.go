package renderer

import (
	"time"
)

// FrameStats summarizes one frame dispatch.
type FrameStats struct {
	Width      int
	Height     int
	Tiles      int
	Workers    int
	Traces     int
	RenderTime time.Duration
}
