// Package testpattern applies a palette to Peter Kovesi's color map
// test image, a horizontal ramp with a sinusoidal modulation whose
// amplitude fades towards the bottom. See
// http://peterkovesi.com/projects/colourmaps/colourmaptestimage.html
package testpattern

import (
	"image"
	"math"
)

const (
	// W and H are the dimensions of the rendered test pattern.
	W = 512
	H = 128
)

// Render maps the test image through the palette by nearest-index
// lookup and returns the result.
func Render(palette []byte) *image.NRGBA {
	n := len(palette) / 3
	img := image.NewNRGBA(image.Rect(0, 0, W, H))
	for y := 0; y < H; y++ {
		v := 1 - float64(y)/(H-1)
		row := img.Pix[y*img.Stride:]
		for x := 0; x < W; x++ {
			u := float64(x) / (W - 1)
			ramp := u
			modulation := 0.05 * math.Sin(W/8*2*math.Pi*u)
			value := ramp + v*v*modulation
			i := int(math.Round(value * float64(n-1)))
			if i < 0 {
				i = 0
			} else if i >= n {
				i = n - 1
			}
			row[4*x+0] = palette[3*i+0]
			row[4*x+1] = palette[3*i+1]
			row[4*x+2] = palette[3*i+2]
			row[4*x+3] = 0xff
		}
	}
	return img
}
