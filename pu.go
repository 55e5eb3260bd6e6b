package colormap

import (
	"math"

	"github.com/scivis/colormap/blackbody"
	"github.com/scivis/colormap/colorspace"
)

// uniformLC computes the LCH value at position t of a path between
// lch0 (at t0) and lch1 (at t1) whose perceptual arc length varies
// linearly with t: the point's LUV distance to the endpoints is s*d
// and (1-s)*d, where s is t relative to [t0,t1] and d the total
// distance. Lightness and hue are linear in s; the chroma is solved
// from the two distance constraints.
//
// Each constraint is a quadratic with two roots, giving four chroma
// candidates. The one within [min(C0,C1),max(C0,C1)] with the smallest
// total deviation from the constraints wins; if none qualifies the
// chroma falls back to the endpoint average. Negative radicands are
// clamped to zero, a deliberate approximation rather than a failure.
func uniformLC(t, t0, t1 float64, lch0, lch1 colorspace.LCH, d, hue float64) colorspace.LCH {
	s := (t - t0) / (t1 - t0)

	var lcht colorspace.LCH
	lcht.H = hue
	lcht.L = (1-s)*lch0.L + s*lch1.L

	var cs [4]float64
	tmp00 := lch0.C * math.Cos(lcht.H-lch0.H)
	tmp01 := math.Max(0, sqr(tmp00)-sqr(lcht.L-lch0.L)-sqr(lch0.C)+sqr(s*d))
	cs[0] = tmp00 + math.Sqrt(tmp01)
	cs[1] = tmp00 - math.Sqrt(tmp01)
	tmp10 := lch1.C * math.Cos(lcht.H-lch1.H)
	tmp11 := math.Max(0, sqr(tmp10)-sqr(lcht.L-lch1.L)-sqr(lch1.C)+sqr((1-s)*d))
	cs[2] = tmp10 + math.Sqrt(tmp11)
	cs[3] = tmp10 - math.Sqrt(tmp11)

	minC := math.Min(lch0.C, lch1.C)
	maxC := math.Max(lch0.C, lch1.C)
	best := -1
	var bestErr float64
	for i, c := range cs {
		if c < minC || c > maxC {
			continue
		}
		cand := colorspace.LCH{L: lcht.L, C: c, H: lcht.H}
		e := math.Abs(colorspace.Distance(lch0, cand)-s*d) +
			math.Abs(colorspace.Distance(lch1, cand)-(1-s)*d)
		if best == -1 || e < bestErr {
			best, bestErr = i, e
		}
	}
	if best == -1 {
		lcht.C = 0.5 * (lch0.C + lch1.C)
	} else {
		lcht.C = cs[best]
	}
	return lcht
}

func puSequentialLightness(n int, dst []byte, p params) int {
	lch00 := colorspace.LCH{L: (1 - p.lightnessRange) * 100, C: 0, H: p.hue}
	lch10 := colorspace.LCH{L: p.lightnessRange * 100, C: 0, H: p.hue}
	var lch05 colorspace.LCH
	lch05.L = 0.5*lch00.L + 0.5*lch10.L
	lch05.C = colorspace.Chroma(lch05.L, 5*p.saturation)
	lch05.H = p.hue

	d0 := colorspace.Distance(lch00, lch05)
	d1 := colorspace.Distance(lch05, lch10)

	return generate(n, dst, func(i int, out []byte) bool {
		t := cellCentered(i, n)
		var lch colorspace.LCH
		if t <= 0.5 {
			lch = uniformLC(t, 0, 0.5, lch00, lch05, d0, p.hue)
		} else {
			lch = uniformLC(t, 0.5, 1, lch05, lch10, d1, p.hue)
		}
		return putLCH(lch, out)
	})
}

// PUSequentialLightness generates a sequential map of a single hue
// whose perceptual distance grows linearly while lightness ramps
// through an explicit midpoint. It returns the number of clipped
// entries.
func PUSequentialLightness(n int, dst []byte, opts ...Option) int {
	p := params{
		lightnessRange: PUSequentialLightnessDefaultLightnessRange,
		saturation:     PUSequentialLightnessDefaultSaturation,
		hue:            PUSequentialLightnessDefaultHue,
	}
	p.apply(opts)
	return puSequentialLightness(n, dst, p)
}

func puSequentialSaturation(n int, dst []byte, p params) int {
	lightness := math.Max(0.01, p.lightness*100)

	lch00 := colorspace.LCH{L: lightness, H: p.hue}
	lch00.C = colorspace.Chroma(lch00.L, 1-p.saturationRange)
	lch10 := colorspace.LCH{L: lightness, H: p.hue}
	lch10.C = colorspace.Chroma(lch10.L, p.saturationRange*5*p.saturation)

	d := colorspace.Distance(lch00, lch10)

	return generate(n, dst, func(i int, out []byte) bool {
		t := cellCentered(i, n)
		return putLCH(uniformLC(t, 0, 1, lch00, lch10, d, p.hue), out)
	})
}

// PUSequentialSaturation generates a constant-lightness sequential map
// whose saturation grows with linearly increasing perceptual distance.
func PUSequentialSaturation(n int, dst []byte, opts ...Option) int {
	p := params{
		saturationRange: PUSequentialSaturationDefaultSaturationRange,
		lightness:       PUSequentialSaturationDefaultLightness,
		saturation:      PUSequentialSaturationDefaultSaturation,
		hue:             PUSequentialSaturationDefaultHue,
	}
	p.apply(opts)
	return puSequentialSaturation(n, dst, p)
}

// PUSequentialRainbow generates a sequential map whose hue additionally
// rotates around the hue circle.
func PUSequentialRainbow(n int, dst []byte, opts ...Option) int {
	p := params{
		lightnessRange: PUSequentialRainbowDefaultLightnessRange,
		hue:            PUSequentialRainbowDefaultHue,
		rotations:      PUSequentialRainbowDefaultRotations,
		saturation:     PUSequentialRainbowDefaultSaturation,
	}
	p.apply(opts)

	var lch00, lch10, lch05 colorspace.LCH
	lch00.L = (1 - p.lightnessRange) * 100
	lch00.C = colorspace.Chroma(lch00.L, (1-p.lightnessRange)*p.saturation)
	lch00.H = p.hue
	lch10.L = p.lightnessRange * 100
	lch10.C = colorspace.Chroma(lch10.L, (1-p.lightnessRange)*p.saturation)
	lch10.H = p.hue + p.rotations*2*math.Pi
	lch05.L = 0.5 * (lch00.L + lch10.L)
	lch05.C = colorspace.Chroma(lch05.L, p.saturation)
	lch05.H = p.hue + 0.5*p.rotations*2*math.Pi

	d0 := colorspace.Distance(lch00, lch05)
	d1 := colorspace.Distance(lch05, lch10)

	return generate(n, dst, func(i int, out []byte) bool {
		t := cellCentered(i, n)
		h := p.hue + t*p.rotations*2*math.Pi
		var lch colorspace.LCH
		if t <= 0.5 {
			lch = uniformLC(t, 0, 0.5, lch00, lch05, d0, h)
		} else {
			lch = uniformLC(t, 0.5, 1, lch05, lch10, d1, h)
		}
		return putLCH(lch, out)
	})
}

// PUSequentialBlackBody generates a sequential map whose hue follows
// the color of a black body radiator across a temperature range. The
// spectral integration supplies hue and chroma only; lightness follows
// the map's own ramp.
func PUSequentialBlackBody(n int, dst []byte, opts ...Option) int {
	p := params{
		temperature:      PUSequentialBlackBodyDefaultTemperature,
		temperatureRange: PUSequentialBlackBodyDefaultRange,
		saturation:       PUSequentialBlackBodyDefaultSaturation,
	}
	p.apply(opts)

	return generate(n, dst, func(i int, out []byte) bool {
		fract := cellCentered(i, n)
		temp := p.temperature + fract*p.temperatureRange
		xyz := colorspace.AdjustY(blackbody.XYZ(temp), 10)
		lch := colorspace.LUVToLCH(colorspace.XYZToLUV(xyz))
		lch.L = math.Max(0.01, fract*100)
		lch.C = colorspace.Chroma(lch.L, (1-fract)*p.saturation)
		return putLCH(lch, out)
	})
}

// PUDivergingLightness generates a diverging map built from two
// PUSequentialLightness halves that meet in the middle.
func PUDivergingLightness(n int, dst []byte, opts ...Option) int {
	p := params{
		lightnessRange: PUDivergingLightnessDefaultLightnessRange,
		saturation:     PUDivergingLightnessDefaultSaturation,
		hue:            PUDivergingLightnessDefaultHue,
		divergence:     PUDivergingLightnessDefaultDivergence,
	}
	p.apply(opts)

	lowerN := n / 2
	higherN := n - lowerN
	clipped := 0

	ph := p
	ph.hue = p.hue + p.divergence
	clipped += puSequentialLightness(higherN, dst, ph)
	// Mirror the second arm into the upper half, reversed.
	for i := 0; i < higherN; i++ {
		copy(dst[3*lowerN+3*i:3*lowerN+3*i+3], dst[3*(higherN-1-i):3*(higherN-1-i)+3])
	}
	clipped += puSequentialLightness(lowerN, dst, p)
	return clipped
}

// PUDivergingSaturation generates a diverging map built from two
// PUSequentialSaturation halves that meet in the middle.
func PUDivergingSaturation(n int, dst []byte, opts ...Option) int {
	p := params{
		saturationRange: PUDivergingSaturationDefaultSaturationRange,
		lightness:       PUDivergingSaturationDefaultLightness,
		saturation:      PUDivergingSaturationDefaultSaturation,
		hue:             PUDivergingSaturationDefaultHue,
		divergence:      PUDivergingSaturationDefaultDivergence,
	}
	p.apply(opts)

	lowerN := n / 2
	higherN := n - lowerN
	clipped := 0

	clipped += puSequentialSaturation(lowerN, dst[3*lowerN:], p)
	// Mirror the first arm into the lower half, reversed.
	for i := 0; i < lowerN; i++ {
		copy(dst[3*i:3*i+3], dst[3*lowerN+3*(lowerN-1-i):3*lowerN+3*(lowerN-1-i)+3])
	}
	ph := p
	ph.hue = p.hue + p.divergence
	clipped += puSequentialSaturation(higherN, dst[3*lowerN:], ph)
	return clipped
}

// PUQualitativeHue generates a qualitative map of constant lightness
// and saturation with hues spaced evenly across the divergence range.
func PUQualitativeHue(n int, dst []byte, opts ...Option) int {
	p := params{
		hue:        PUQualitativeHueDefaultHue,
		divergence: PUQualitativeHueDefaultDivergence,
		lightness:  PUQualitativeHueDefaultLightness,
		saturation: PUQualitativeHueDefaultSaturation,
	}
	p.apply(opts)

	divergence := p.divergence * (float64(n) - 1) / float64(n)
	l := math.Max(0.01, p.lightness*100)
	c := colorspace.Chroma(l, p.saturation*5)

	return generate(n, dst, func(i int, out []byte) bool {
		t := cellCentered(i, n)
		return putLCH(colorspace.LCH{L: l, C: c, H: p.hue + t*divergence}, out)
	})
}
