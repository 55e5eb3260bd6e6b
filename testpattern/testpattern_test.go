package testpattern

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	palette := []byte{10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 110, 120}
	img := Render(palette)

	require.Equal(t, W, img.Bounds().Dx())
	require.Equal(t, H, img.Bounds().Dy())

	// The left edge maps to the first entry: the ramp is zero there and
	// the modulation term vanishes at u=0.
	require.Equal(t, color.NRGBA{10, 20, 30, 255}, img.NRGBAAt(0, 0))
	require.Equal(t, color.NRGBA{10, 20, 30, 255}, img.NRGBAAt(0, H-1))

	// On the bottom row the modulation has faded out completely, so the
	// right edge maps to the last entry.
	require.Equal(t, color.NRGBA{100, 110, 120, 255}, img.NRGBAAt(W-1, H-1))

	// Every pixel is an exact palette entry and fully opaque.
	for y := 0; y < H; y += 16 {
		for x := 0; x < W; x += 32 {
			c := img.NRGBAAt(x, y)
			require.EqualValues(t, 255, c.A)
			found := false
			for i := 0; i+2 < len(palette); i += 3 {
				if c.R == palette[i] && c.G == palette[i+1] && c.B == palette[i+2] {
					found = true
					break
				}
			}
			require.True(t, found, "pixel (%d,%d) = %+v not in palette", x, y, c)
		}
	}
}
