package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/chroma3d/chroma/log"
)

var logger = log.New("chroma")

func main() {
	app := cli.NewApp()
	app.Name = "chroma"
	app.Usage = "render stylized palette-quantized frames"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a demo scene to a PNG file",
			Description: `
Render one frame of a built-in demo scene with either the path-traced or the
direct-lighting integrator, quantize it onto the 32-color palette, and write
the result to disk.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene",
					Value: "spheres",
					Usage: "demo scene name (" + sceneNames() + ")",
				},
				cli.StringFlag{
					Name:  "mode",
					Value: "path",
					Usage: "integrator mode: path or direct",
				},
				cli.StringFlag{
					Name:  "metric",
					Value: "euclidean",
					Usage: "palette metric: euclidean, perceptual-soft or perceptual-strong",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 0,
					Usage: "frame width (0 = default 480)",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 0,
					Usage: "frame height (0 = default 270)",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 4,
					Usage: "samples per pixel (path mode)",
				},
				cli.IntFlag{
					Name:  "bounces",
					Value: 4,
					Usage: "path depth (path mode)",
				},
				cli.IntFlag{
					Name:  "pixel-size",
					Value: 1,
					Usage: "replicate one trace across an NxN pixel block",
				},
				cli.IntFlag{
					Name:  "upscale",
					Value: 1,
					Usage: "nearest-neighbor upscale factor for the output file",
				},
				cli.StringFlag{
					Name:  "out",
					Value: "frame.png",
					Usage: "output PNG path",
				},
			},
			Action: renderScene,
		},
		{
			Name:   "palette",
			Usage:  "print the built-in 32-color palette",
			Action: showPalette,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	} else if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}
}
