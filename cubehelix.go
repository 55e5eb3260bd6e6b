package colormap

import (
	"math"

	"github.com/scivis/colormap/colorspace"
)

// CubeHelix generates Green's cube helix color map: a gray ramp from
// black to white with a helix of deviations in hue around it. Higher
// saturation values may lead to clipping. The hue parameter sets the
// hue of the first color, rotations the number of revolutions
// (negative rotates backwards), and gamma an optional gamma
// correction.
func CubeHelix(n int, dst []byte, opts ...Option) int {
	p := params{
		hue:        CubeHelixDefaultHue,
		rotations:  CubeHelixDefaultRotations,
		saturation: CubeHelixDefaultSaturation,
		gamma:      CubeHelixDefaultGamma,
	}
	p.apply(opts)

	return generate(n, dst, func(i int, out []byte) bool {
		fract := cellCentered(i, n)
		angle := 2 * math.Pi * (p.hue/3 + 1 + p.rotations*fract)
		fract = math.Pow(fract, p.gamma)
		amp := p.saturation * fract * (1 - fract) / 2
		s := math.Sin(angle)
		c := math.Cos(angle)
		srgb := colorspace.SRGB{
			R: fract + amp*(-0.14861*c+1.78277*s),
			G: fract + amp*(-0.29227*c-0.90649*s),
			B: fract + amp*(1.97294*c),
		}
		return putSRGB(srgb, out)
	})
}
