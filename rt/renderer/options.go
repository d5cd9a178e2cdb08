package renderer

import (
	"errors"
	"fmt"
	"runtime"
)

// Defaults matching the engine's low-resolution render target.
const (
	DefaultWidth    = 480
	DefaultHeight   = 270
	DefaultTileSize = 16
	DefaultZoom     = 1000
)

var errNoIntegrator = errors.New("renderer: integrator is required")

// Options configures a frame dispatch.
type Options struct {
	// Render target size in pixels. Zero selects the 480×270 default.
	Width  int
	Height int

	// TileSize is the square dispatch-group edge. Tiles at the right and
	// bottom borders are clipped to the target.
	TileSize int

	// PixelSize replicates one trace across an N×N block of output pixels,
	// a deliberate resolution-reduction trick. 1 traces every pixel.
	PixelSize int

	// Zoom scales the camera-plane offset per pixel. Larger values narrow
	// the view.
	Zoom float32

	// FlipY mirrors the output vertically. Purely an output-orientation
	// convention.
	FlipY bool

	// Workers is the goroutine pool size. Zero selects NumCPU.
	Workers int
}

func (o *Options) applyDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.TileSize == 0 {
		o.TileSize = DefaultTileSize
	}
	if o.PixelSize == 0 {
		o.PixelSize = 1
	}
	if o.Zoom == 0 {
		o.Zoom = DefaultZoom
	}
	if o.Workers == 0 {
		o.Workers = runtime.NumCPU()
	}
}

func (o *Options) validate() error {
	if o.Width < 1 || o.Height < 1 {
		return fmt.Errorf("renderer: invalid target size %dx%d", o.Width, o.Height)
	}
	if o.TileSize < 1 {
		return fmt.Errorf("renderer: invalid tile size %d", o.TileSize)
	}
	if o.PixelSize < 1 {
		return fmt.Errorf("renderer: invalid pixel size %d", o.PixelSize)
	}
	if o.Zoom <= 0 {
		return fmt.Errorf("renderer: zoom must be positive, got %g", o.Zoom)
	}
	if o.Workers < 1 {
		return fmt.Errorf("renderer: invalid worker count %d", o.Workers)
	}
	return nil
}
