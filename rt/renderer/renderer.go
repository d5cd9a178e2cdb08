// Package renderer is the frame driver: it turns a committed scene into a
// palette-quantized image by dispatching the per-pixel kernel across a pool
// of tile workers.
package renderer

import (
	"image"
	"image/color"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/chroma3d/chroma/log"
	"github.com/chroma3d/chroma/rt/core"
	"github.com/chroma3d/chroma/rt/integrator"
	"github.com/chroma3d/chroma/rt/intersect"
	"github.com/chroma3d/chroma/rt/palette"
	"github.com/chroma3d/chroma/rt/sampling"
)

var logger = log.New("renderer")

// Renderer drives frame dispatches. It holds no per-frame state; Render may
// be called repeatedly, and concurrently for distinct scenes.
type Renderer struct {
	opts       Options
	integrator integrator.Integrator
	quantizer  *palette.Quantizer
}

// New validates the options and builds a renderer. A nil quantizer gets the
// default palette under the Euclidean metric.
func New(integ integrator.Integrator, quant *palette.Quantizer, opts Options) (*Renderer, error) {
	if integ == nil {
		return nil, errNoIntegrator
	}
	if quant == nil {
		quant = palette.NewQuantizer(nil, nil)
	}
	opts.applyDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Renderer{
		opts:       opts,
		integrator: integ,
		quantizer:  quant,
	}, nil
}

// Render produces one frame. The scene's flat buffers are read-only for the
// duration of the dispatch; each tile worker writes only its own pixels, so
// the whole frame is order-independent.
func (r *Renderer) Render(s *core.Scene) (*image.RGBA, FrameStats, error) {
	start := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, r.opts.Width, r.opts.Height))

	tiles := r.tiles()
	work := make(chan image.Rectangle, len(tiles))
	for _, t := range tiles {
		work <- t
	}
	close(work)

	var wg sync.WaitGroup
	for w := 0; w < r.opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tile := range work {
				r.renderTile(s, img, tile)
			}
		}()
	}
	wg.Wait()

	stats := FrameStats{
		Width:      r.opts.Width,
		Height:     r.opts.Height,
		Tiles:      len(tiles),
		Workers:    r.opts.Workers,
		Traces:     traceCount(r.opts),
		RenderTime: time.Since(start),
	}
	logger.Infof("frame %dx%d rendered: %d tiles, %d workers, %s",
		stats.Width, stats.Height, stats.Tiles, stats.Workers, stats.RenderTime)
	return img, stats, nil
}

// tiles splits the target into TileSize×TileSize rectangles, clipping the
// right and bottom borders.
func (r *Renderer) tiles() []image.Rectangle {
	var out []image.Rectangle
	ts := r.opts.TileSize
	for y := 0; y < r.opts.Height; y += ts {
		for x := 0; x < r.opts.Width; x += ts {
			out = append(out, image.Rect(x, y,
				min(x+ts, r.opts.Width), min(y+ts, r.opts.Height)))
		}
	}
	return out
}

// renderTile runs the per-pixel kernel over one tile. With PixelSize > 1
// only block-base pixels inside the tile are traced; the quantized color is
// replicated across the block.
func (r *Renderer) renderTile(s *core.Scene, img *image.RGBA, tile image.Rectangle) {
	ps := r.opts.PixelSize
	forward, right, up := s.Camera.Basis()

	for y := tile.Min.Y; y < tile.Max.Y; y++ {
		if y%ps != 0 {
			continue
		}
		for x := tile.Min.X; x < tile.Max.X; x++ {
			if x%ps != 0 {
				continue
			}

			ray := r.primaryRay(s.Camera.Eye, forward, right, up, x, y)
			rng := sampling.New(mgl32.Vec2{float32(x), float32(y)}, s.Time.Elapsed)

			shaded := r.integrator.Li(s, ray, rng)
			_, quantized := r.quantizer.Quantize(shaded)

			r.writeBlock(img, x, y, quantized)
		}
	}
}

// primaryRay builds the orthographic primary ray for one output pixel:
// the origin slides along the camera plane by the pixel's offset from the
// viewport center, scaled by zoom, and the direction is the view forward.
func (r *Renderer) primaryRay(eye, forward, right, up mgl32.Vec3, x, y int) intersect.Ray {
	cx := float32(x) - float32(r.opts.Width)/2
	cy := float32(y) - float32(r.opts.Height)/2
	scale := 2 / r.opts.Zoom

	origin := eye.
		Add(right.Mul(cx * scale)).
		Add(up.Mul(cy * scale))
	return intersect.NewRay(origin, forward)
}

// writeBlock stores one quantized color into a PixelSize×PixelSize block,
// applying the vertical flip convention at the last moment.
func (r *Renderer) writeBlock(img *image.RGBA, x, y int, c mgl32.Vec3) {
	px := color.RGBA{
		R: channelByte(c.X()),
		G: channelByte(c.Y()),
		B: channelByte(c.Z()),
		A: 0xff,
	}

	for dy := 0; dy < r.opts.PixelSize && y+dy < r.opts.Height; dy++ {
		for dx := 0; dx < r.opts.PixelSize && x+dx < r.opts.Width; dx++ {
			outY := y + dy
			if r.opts.FlipY {
				outY = r.opts.Height - 1 - outY
			}
			img.SetRGBA(x+dx, outY, px)
		}
	}
}

func channelByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(v*255 + 0.5)
}

func traceCount(o Options) int {
	bx := (o.Width + o.PixelSize - 1) / o.PixelSize
	by := (o.Height + o.PixelSize - 1) / o.PixelSize
	return bx * by
}
