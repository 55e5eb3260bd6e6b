package colormap

import (
	"math"

	"github.com/scivis/colormap/colorspace"
)

// The isoluminant maps hold lightness constant so that the data is
// encoded purely in chroma and hue. The saturation target is always
// capped by the gamut boundary at the working lightness.

func isoluminantChroma(l, hue, saturation float64) float64 {
	s := math.Min(colorspace.MaxSaturation(l, hue), saturation*colorspace.RedSaturation())
	return colorspace.Chroma(l, s)
}

// IsoluminantSequential generates a map of constant lightness whose
// chroma ramps from neutral gray to the most saturated displayable
// color of the given hue.
func IsoluminantSequential(n int, dst []byte, opts ...Option) int {
	p := params{
		luminance:  IsoluminantDefaultLuminance,
		saturation: IsoluminantDefaultSaturation,
		hue:        IsoluminantDefaultHue,
	}
	p.apply(opts)

	l := math.Max(0.01, p.luminance*100)
	cmax := isoluminantChroma(l, p.hue, p.saturation)

	return generate(n, dst, func(i int, out []byte) bool {
		t := cellCentered(i, n)
		return putLCH(colorspace.LCH{L: l, C: t * cmax, H: p.hue}, out)
	})
}

// IsoluminantDiverging generates a map of constant lightness whose
// chroma runs from saturated at one hue through neutral gray in the
// middle to saturated at the diverged hue.
func IsoluminantDiverging(n int, dst []byte, opts ...Option) int {
	p := params{
		luminance:  IsoluminantDefaultLuminance,
		saturation: IsoluminantDefaultSaturation,
		hue:        IsoluminantDefaultHue,
		divergence: IsoluminantDefaultDivergence,
	}
	p.apply(opts)

	l := math.Max(0.01, p.luminance*100)
	hue1 := p.hue + p.divergence
	cmax0 := isoluminantChroma(l, p.hue, p.saturation)
	cmax1 := isoluminantChroma(l, hue1, p.saturation)

	return generate(n, dst, func(i int, out []byte) bool {
		t := cellCentered(i, n)
		var lch colorspace.LCH
		lch.L = l
		if t < 0.5 {
			lch.C = (1 - 2*t) * cmax0
			lch.H = p.hue
		} else {
			lch.C = (2*t - 1) * cmax1
			lch.H = hue1
		}
		return putLCH(lch, out)
	})
}

// IsoluminantQualitative generates a map of constant lightness and
// saturation with hues spaced across the divergence range.
func IsoluminantQualitative(n int, dst []byte, opts ...Option) int {
	p := params{
		luminance:  IsoluminantDefaultLuminance,
		saturation: IsoluminantDefaultSaturation,
		hue:        IsoluminantDefaultHue,
		divergence: IsoluminantDefaultDivergence,
	}
	p.apply(opts)

	l := math.Max(0.01, p.luminance*100)
	divergence := p.divergence * (float64(n) - 1) / float64(n)

	return generate(n, dst, func(i int, out []byte) bool {
		t := cellCentered(i, n)
		h := math.Mod(p.hue+t*divergence, 2*math.Pi)
		return putLCH(colorspace.LCH{L: l, C: isoluminantChroma(l, h, p.saturation), H: h}, out)
	})
}
