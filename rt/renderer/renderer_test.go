package renderer

import (
	"image"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chroma3d/chroma/rt/core"
	"github.com/chroma3d/chroma/rt/integrator"
	"github.com/chroma3d/chroma/rt/palette"
)

// glowScene fills the whole viewport with one overdriven emissive sphere so
// every trace lands on the same clamped color.
func glowScene(t *testing.T) *core.Scene {
	t.Helper()
	s := core.NewScene()
	mat := s.AddMaterial(core.Material{Albedo: mgl32.Vec3{1, 1, 1}, Roughness: 1, Emission: 10})
	s.AddSphere(core.NewSphere(mgl32.Vec3{0, 0, -50}, 40, mat))
	s.Camera = core.NewCamera(mgl32.Vec3{0, 0, 2}, mgl32.Vec3{0, 0, -50})
	require.NoError(t, s.Commit())
	return s
}

func newTestRenderer(t *testing.T, opts Options) *Renderer {
	t.Helper()
	r, err := New(integrator.NewPathTraced(1, 1), palette.NewQuantizer(nil, palette.Euclidean{}), opts)
	require.NoError(t, err)
	return r
}

func TestRenderOutputIsPaletteOnly(t *testing.T) {
	r := newTestRenderer(t, Options{Width: 32, Height: 24, Workers: 4})

	img, stats, err := r.Render(glowScene(t))
	require.NoError(t, err)
	assert.Equal(t, 32, stats.Width)
	assert.Equal(t, 24, stats.Height)
	assert.Equal(t, 4, stats.Tiles, "32x24 target in 16x16 tiles")

	// The sphere is white-hot everywhere: every pixel must be the palette's
	// pure white entry.
	for y := 0; y < 24; y++ {
		for x := 0; x < 32; x++ {
			px := img.RGBAAt(x, y)
			require.Equal(t, uint8(0xff), px.R, "pixel %d,%d", x, y)
			require.Equal(t, uint8(0xff), px.G, "pixel %d,%d", x, y)
			require.Equal(t, uint8(0xff), px.B, "pixel %d,%d", x, y)
			require.Equal(t, uint8(0xff), px.A, "pixel %d,%d", x, y)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	s := core.NewScene()
	mat := s.AddMaterial(core.Material{Albedo: mgl32.Vec3{0.7, 0.4, 0.3}, Roughness: 0.7})
	s.AddSphere(core.NewSphere(mgl32.Vec3{0, 0, -5}, 2, mat))
	s.Camera = core.NewCamera(mgl32.Vec3{0, 0, 2}, mgl32.Vec3{0, 0, -5})
	require.NoError(t, s.Commit())

	r := newTestRenderer(t, Options{Width: 48, Height: 32})

	a, _, err := r.Render(s)
	require.NoError(t, err)
	b, _, err := r.Render(s)
	require.NoError(t, err)

	assert.Equal(t, a.Pix, b.Pix, "same scene snapshot must render identically")
}

func TestRenderPixelReplication(t *testing.T) {
	r := newTestRenderer(t, Options{Width: 16, Height: 16, PixelSize: 4})

	img, _, err := r.Render(glowScene(t))
	require.NoError(t, err)

	// Every pixel of a 4x4 block must equal its block base.
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			base := img.RGBAAt((x/4)*4, (y/4)*4)
			require.Equal(t, base, img.RGBAAt(x, y), "pixel %d,%d differs from block base", x, y)
		}
	}
}

func TestRenderFlipY(t *testing.T) {
	// A sphere in the upper half of camera space: with FlipY its pixels land
	// in the opposite half compared to the unflipped render.
	s := core.NewScene()
	mat := s.AddMaterial(core.Material{Albedo: mgl32.Vec3{1, 1, 1}, Roughness: 1, Emission: 10})
	s.AddSphere(core.NewSphere(mgl32.Vec3{0, 0.02, -5}, 0.012, mat))
	s.Camera = core.NewCamera(mgl32.Vec3{0, 0, 2}, mgl32.Vec3{0, 0, -5})
	require.NoError(t, s.Commit())

	lit := func(img *image.RGBA) (top, bottom int) {
		b := img.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if img.RGBAAt(x, y).R > 0x80 {
					if y < b.Max.Y/2 {
						top++
					} else {
						bottom++
					}
				}
			}
		}
		return top, bottom
	}

	plain := newTestRenderer(t, Options{Width: 32, Height: 32})
	flipped := newTestRenderer(t, Options{Width: 32, Height: 32, FlipY: true})

	imgPlain, _, err := plain.Render(s)
	require.NoError(t, err)
	imgFlipped, _, err := flipped.Render(s)
	require.NoError(t, err)

	pTop, pBottom := lit(imgPlain)
	fTop, fBottom := lit(imgFlipped)
	require.NotZero(t, pTop+pBottom, "sphere must be visible")
	assert.Equal(t, pTop, fBottom, "flip must mirror lit rows")
	assert.Equal(t, pBottom, fTop, "flip must mirror lit rows")
}

func TestOptionsValidation(t *testing.T) {
	integ := integrator.NewPathTraced(1, 1)

	_, err := New(nil, nil, Options{})
	assert.ErrorIs(t, err, errNoIntegrator)

	_, err = New(integ, nil, Options{Width: -1})
	assert.Error(t, err)

	_, err = New(integ, nil, Options{PixelSize: -2})
	assert.Error(t, err)

	_, err = New(integ, nil, Options{Zoom: -5})
	assert.Error(t, err)

	r, err := New(integ, nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, DefaultWidth, r.opts.Width)
	assert.Equal(t, DefaultHeight, r.opts.Height)
	assert.Equal(t, DefaultTileSize, r.opts.TileSize)
	assert.Equal(t, float32(DefaultZoom), r.opts.Zoom)
}

func TestUpscale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 3))
	dst := Upscale(src, 3)
	assert.Equal(t, image.Rect(0, 0, 12, 9), dst.Bounds())

	same := Upscale(src, 1)
	assert.Same(t, src, same, "factor 1 is a no-op")
}
