// Package palette snaps continuous linear colors onto a small fixed color
// set, which is what gives the renderer its stylized look.
package palette

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Palette is an ordered color table. Entry order matters: the quantizer's
// tie-break keeps the lowest index, so reordering a palette changes output.
type Palette []mgl32.Vec3

// default32 is the fixed 32-entry table, authored as 8-bit sRGB.
var default32 = [32][3]uint8{
	{0xbe, 0x4a, 0x2f}, {0xd7, 0x76, 0x43}, {0xea, 0xd4, 0xaa}, {0xe4, 0xa6, 0x72},
	{0xb8, 0x6f, 0x50}, {0x73, 0x3e, 0x39}, {0x3e, 0x27, 0x31}, {0xa2, 0x26, 0x33},
	{0xe4, 0x3b, 0x44}, {0xf7, 0x76, 0x22}, {0xfe, 0xae, 0x34}, {0xfe, 0xe7, 0x61},
	{0x63, 0xc7, 0x4d}, {0x3e, 0x89, 0x48}, {0x26, 0x5c, 0x42}, {0x19, 0x3c, 0x3e},
	{0x12, 0x4e, 0x89}, {0x00, 0x99, 0xdb}, {0x2c, 0xe8, 0xf5}, {0xff, 0xff, 0xff},
	{0xc0, 0xcb, 0xdc}, {0x8b, 0x9b, 0xb4}, {0x5a, 0x69, 0x88}, {0x3a, 0x44, 0x66},
	{0x26, 0x2b, 0x44}, {0x18, 0x14, 0x25}, {0xff, 0x00, 0x44}, {0x68, 0x38, 0x6c},
	{0xb5, 0x50, 0x88}, {0xf6, 0x75, 0x7a}, {0xe8, 0xb7, 0x96}, {0xc2, 0x85, 0x69},
}

// Default returns the built-in 32-color palette with channels in [0,1].
func Default() Palette {
	p := make(Palette, len(default32))
	for i, c := range default32 {
		p[i] = mgl32.Vec3{
			float32(c[0]) / 255,
			float32(c[1]) / 255,
			float32(c[2]) / 255,
		}
	}
	return p
}
