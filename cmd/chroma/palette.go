package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/chroma3d/chroma/rt/palette"
)

// showPalette is the action behind "chroma palette".
func showPalette(ctx *cli.Context) error {
	setupLogging(ctx)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Index", "Hex", "R", "G", "B"})

	for i, c := range palette.Default() {
		r := uint8(c.X()*255 + 0.5)
		g := uint8(c.Y()*255 + 0.5)
		b := uint8(c.Z()*255 + 0.5)
		table.Append([]string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("#%02x%02x%02x", r, g, b),
			fmt.Sprintf("%.3f", c.X()),
			fmt.Sprintf("%.3f", c.Y()),
			fmt.Sprintf("%.3f", c.Z()),
		})
	}

	table.Render()
	return nil
}
