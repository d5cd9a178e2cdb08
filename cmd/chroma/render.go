package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/urfave/cli"

	"github.com/chroma3d/chroma/rt/integrator"
	"github.com/chroma3d/chroma/rt/palette"
	"github.com/chroma3d/chroma/rt/renderer"
)

// renderScene is the action behind "chroma render".
func renderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	scene, err := buildScene(ctx.String("scene"))
	if err != nil {
		return err
	}

	integ, err := buildIntegrator(ctx)
	if err != nil {
		return err
	}

	metric, err := buildMetric(ctx.String("metric"))
	if err != nil {
		return err
	}
	quant := palette.NewQuantizer(palette.Default(), metric)

	r, err := renderer.New(integ, quant, renderer.Options{
		Width:     ctx.Int("width"),
		Height:    ctx.Int("height"),
		PixelSize: ctx.Int("pixel-size"),
		FlipY:     true,
	})
	if err != nil {
		return err
	}

	img, stats, err := r.Render(scene)
	if err != nil {
		return err
	}

	out := ctx.String("out")
	if err := renderer.WritePNG(renderer.Upscale(img, ctx.Int("upscale")), out); err != nil {
		return err
	}

	logger.Noticef("wrote %s (%dx%d, %d tiles, %s)",
		out, stats.Width, stats.Height, stats.Tiles, stats.RenderTime)
	return nil
}

func buildIntegrator(ctx *cli.Context) (integrator.Integrator, error) {
	switch mode := ctx.String("mode"); mode {
	case "path":
		return integrator.NewPathTraced(ctx.Int("bounces"), ctx.Int("spp")), nil
	case "direct":
		return integrator.NewDirectLit(mgl32.Vec3{0.05, 0.05, 0.08}), nil
	default:
		return nil, fmt.Errorf("unknown integrator mode %q", mode)
	}
}

func buildMetric(name string) (palette.Metric, error) {
	switch name {
	case "euclidean":
		return palette.Euclidean{}, nil
	case "perceptual-soft":
		return palette.PerceptualSoft(), nil
	case "perceptual-strong":
		return palette.PerceptualStrong(), nil
	default:
		return nil, fmt.Errorf("unknown palette metric %q", name)
	}
}
