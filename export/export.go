// Package export renders a generated palette into the common exchange
// formats: CSV, ParaView-style JSON, plain PPM, and image strips.
package export

import (
	"encoding/json"
	"fmt"
	"image"
	"strings"
)

// CSV renders the palette as one "r, g, b" line per entry.
func CSV(palette []byte) string {
	var b strings.Builder
	for i := 0; i+2 < len(palette); i += 3 {
		fmt.Fprintf(&b, "%d, %d, %d\n", palette[i], palette[i+1], palette[i+2])
	}
	return b.String()
}

type jsonColorMap struct {
	ColorSpace string    `json:"ColorSpace"`
	Name       string    `json:"Name"`
	NanColor   []float64 `json:"NanColor"`
	RGBPoints  []float64 `json:"RGBPoints"`
}

// JSON renders the palette as a ParaView color map preset: a single
// map with a flat RGBPoints list of (position, r, g, b) tuples, the
// position in [0,1] and the channels normalized to [0,1].
func JSON(palette []byte, name string) ([]byte, error) {
	n := len(palette) / 3
	points := make([]float64, 0, 4*n)
	for i := 0; i < n; i++ {
		points = append(points,
			float64(i)/float64(n-1),
			float64(palette[3*i+0])/255,
			float64(palette[3*i+1])/255,
			float64(palette[3*i+2])/255)
	}
	maps := []jsonColorMap{{
		ColorSpace: "RGB",
		Name:       name,
		NanColor:   []float64{-1, -1, -1},
		RGBPoints:  points,
	}}
	return json.MarshalIndent(maps, "", "  ")
}

// PPM renders the palette as a plain-text PPM image of size n x 1.
func PPM(palette []byte) string {
	n := len(palette) / 3
	var b strings.Builder
	b.WriteString("P3\n")
	fmt.Fprintf(&b, "%d 1\n", n)
	b.WriteString("255\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%d %d %d\n", palette[3*i], palette[3*i+1], palette[3*i+2])
	}
	return b.String()
}

// Image renders the palette as an n x height image strip, one column
// per entry.
func Image(palette []byte, height int) *image.NRGBA {
	n := len(palette) / 3
	img := image.NewNRGBA(image.Rect(0, 0, n, height))
	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < n; x++ {
			row[4*x+0] = palette[3*x+0]
			row[4*x+1] = palette[3*x+1]
			row[4*x+2] = palette[3*x+2]
			row[4*x+3] = 0xff
		}
	}
	return img
}
