package colormap

import (
	"math"

	"github.com/scivis/colormap/colorspace"
)

// multiHueAt returns the hue at position t by piecewise-linear
// interpolation over sorted (hue, position) control points, clamped at
// the ends.
func multiHueAt(t float64, values, positions []float64) float64 {
	if len(values) < 1 {
		return 0
	}
	if len(values) == 1 || t <= positions[0] {
		return values[0]
	}
	if t >= positions[len(positions)-1] {
		return values[len(values)-1]
	}
	i := 0
	for ; i < len(values)-2; i++ {
		if t >= positions[i] && t < positions[i+1] {
			break
		}
	}
	alpha := (t - positions[i]) / (positions[i+1] - positions[i])
	return (1-alpha)*values[i] + alpha*values[i+1]
}

// multiHueCompute is the multi-hue variant of uniformLC. Hue jumps in
// multi-hue maps are intentionally large, so hue enters the distance
// terms as a plain third axis instead of through a rotation, and the
// chroma is taken as the average of the closest pair among the four
// candidate roots.
func multiHueCompute(t, t0, t1 float64, lch0, lch1 colorspace.LCH, d float64,
	values, positions []float64) colorspace.LCH {
	tt := (t - t0) / (t1 - t0)

	var lcht colorspace.LCH
	lcht.H = multiHueAt(t, values, positions)
	lcht.L = (1-tt)*lch0.L + tt*lch1.L

	tmp0 := math.Max(0, sqr(tt*d)-sqr(lch0.L-lcht.L)-sqr(lch0.H-lcht.H))
	c0 := lch0.C + math.Sqrt(tmp0)
	c1 := lch0.C - math.Sqrt(tmp0)

	tmp1 := math.Max(0, sqr((1-tt)*d)-sqr(lch1.L-lcht.L)-sqr(lch1.H-lcht.H))
	c2 := lch1.C + math.Sqrt(tmp1)
	c3 := lch1.C - math.Sqrt(tmp1)

	lcht.C = (1-tt)*lch0.C + tt*lch1.C
	minDist := math.Inf(1)
	if c0 >= 0 {
		d2 := math.Abs(c0 - c2)
		d3 := math.Abs(c0 - c3)
		if d2 < d3 {
			minDist = d2
			lcht.C = 0.5 * (c0 + c2)
		} else {
			minDist = d3
			lcht.C = 0.5 * (c0 + c3)
		}
	}
	if c1 >= 0 {
		d2 := math.Abs(c1 - c2)
		d3 := math.Abs(c1 - c3)
		if d2 < minDist && d2 < d3 {
			lcht.C = 0.5 * (c1 + c2)
		} else if d3 < minDist {
			lcht.C = 0.5 * (c1 + c3)
		}
	}
	return lcht
}

// PUSequentialMultiHue generates a sequential map whose hue follows
// caller-supplied control points while lightness ramps between the two
// endpoints through an explicit midpoint saturation. The first and
// last entries hit the endpoints exactly.
func PUSequentialMultiHue(n int, dst []byte, opts ...Option) int {
	p := params{
		hueValues:    PUSequentialMultiHueDefaultHueValues,
		huePositions: PUSequentialMultiHueDefaultHuePositions,
		l0:           PUSequentialMultiHueDefaultL0,
		s0:           PUSequentialMultiHueDefaultS0,
		l1:           PUSequentialMultiHueDefaultL1,
		s1:           PUSequentialMultiHueDefaultS1,
		s05:          PUSequentialMultiHueDefaultS05,
	}
	p.apply(opts)

	var lch00, lch10, lch05 colorspace.LCH
	lch00.L = p.l0
	lch00.C = colorspace.Chroma(lch00.L, p.s0)
	lch00.H = multiHueAt(0, p.hueValues, p.huePositions)
	lch10.L = p.l1
	lch10.C = colorspace.Chroma(lch10.L, p.s1)
	lch10.H = multiHueAt(1, p.hueValues, p.huePositions)
	lch05.L = 0.5 * (p.l0 + p.l1)
	lch05.H = multiHueAt(0.5, p.hueValues, p.huePositions)
	lch05.C = colorspace.Chroma(lch05.L, p.s05)

	d0 := colorspace.Distance(lch00, lch05)
	d1 := colorspace.Distance(lch05, lch10)

	return generate(n, dst, func(i int, out []byte) bool {
		t := endpointInclusive(i, n)
		var lch colorspace.LCH
		if t <= 0.5 {
			lch = multiHueCompute(t, 0, 0.5, lch00, lch05, d0, p.hueValues, p.huePositions)
		} else {
			lch = multiHueCompute(t, 0.5, 1, lch05, lch10, d1, p.hueValues, p.huePositions)
		}
		return putLCH(lch, out)
	})
}
