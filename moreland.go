package colormap

import (
	"math"

	"github.com/scivis/colormap/colorspace"
)

func srgbBytesToMSH(r, g, b uint8) colorspace.MSH {
	srgb := colorspace.SRGB{R: byteToFloat(r), G: byteToFloat(g), B: byteToFloat(b)}
	return colorspace.LabToMSH(colorspace.XYZToLab(colorspace.RGBToXYZ(colorspace.SRGBToRGB(srgb))))
}

// adjustHue spins the hue of a saturated color so that interpolating
// towards an unsaturated color of magnitude unsaturatedM does not pass
// through muddy intermediates.
func adjustHue(msh colorspace.MSH, unsaturatedM float64) float64 {
	if msh.M >= unsaturatedM-0.1 {
		return msh.H
	}
	hueSpin := msh.S * math.Sqrt(unsaturatedM*unsaturatedM-msh.M*msh.M) /
		(msh.M * math.Sin(msh.S))
	if msh.H > -math.Pi/3 {
		return msh.H + hueSpin
	}
	return msh.H - hueSpin
}

func mshMix(a colorspace.MSH, t float64, b colorspace.MSH) colorspace.MSH {
	return colorspace.MSH{
		M: (1-t)*a.M + t*b.M,
		S: (1-t)*a.S + t*b.S,
		H: (1-t)*a.H + t*b.H,
	}
}

// Moreland generates a diverging map between two sRGB endpoint colors
// by interpolating in MSH space. When both endpoints are saturated and
// their hues differ by more than 60 degrees, a white midpoint is
// inserted and the hues are spun away from it. The first and last
// entries equal the endpoint colors exactly.
func Moreland(n int, dst []byte, opts ...Option) int {
	p := params{
		color0: [3]uint8{MorelandDefaultR0, MorelandDefaultG0, MorelandDefaultB0},
		color1: [3]uint8{MorelandDefaultR1, MorelandDefaultG1, MorelandDefaultB1},
	}
	p.apply(opts)

	omsh0 := srgbBytesToMSH(p.color0[0], p.color0[1], p.color0[2])
	omsh1 := srgbBytesToMSH(p.color1[0], p.color1[1], p.color1[2])
	placeWhite := omsh0.S >= 0.05 && omsh1.S >= 0.05 &&
		colorspace.HueDiff(omsh0.H, omsh1.H) > math.Pi/3
	mmid := math.Max(math.Max(omsh0.M, omsh1.M), 88)

	return generate(n, dst, func(i int, out []byte) bool {
		msh0 := omsh0
		msh1 := omsh1
		t := endpointInclusive(i, n)
		if placeWhite {
			if t < 0.5 {
				msh1 = colorspace.MSH{M: mmid}
				t *= 2
			} else {
				msh0 = colorspace.MSH{M: mmid}
				t = 2*t - 1
			}
		}
		if msh0.S < 0.05 && msh1.S >= 0.05 {
			msh0.H = adjustHue(msh1, msh0.M)
		} else if msh0.S >= 0.05 && msh1.S < 0.05 {
			msh1.H = adjustHue(msh0, msh1.M)
		}
		return putLab(colorspace.MSHToLab(mshMix(msh0, t, msh1)), out)
	})
}
