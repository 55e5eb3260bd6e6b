package colormap

import (
	"math"

	"github.com/scivis/colormap/colorspace"
)

func luvAdd(a, b colorspace.LUV) colorspace.LUV {
	return colorspace.LUV{L: a.L + b.L, U: a.U + b.U, V: a.V + b.V}
}

func luvScale(s float64, a colorspace.LUV) colorspace.LUV {
	return colorspace.LUV{L: s * a.L, U: s * a.U, V: s * a.V}
}

// luvMix is (1-alpha)*a + alpha*b.
func luvMix(a colorspace.LUV, alpha float64, b colorspace.LUV) colorspace.LUV {
	return luvAdd(luvScale(1-alpha, a), luvScale(alpha, b))
}

// mixHue interpolates between two hues along the shorter arc.
func mixHue(alpha, h0, h1 float64) float64 {
	m := math.Mod(math.Pi+h1-h0, 2*math.Pi) - math.Pi
	return math.Mod(h0+alpha*m, 2*math.Pi)
}

// bezier evaluates the quadratic Bezier through b0, b1, b2 at t.
func bezier(b0, b1, b2 colorspace.LUV, t float64) colorspace.LUV {
	a := (1 - t) * (1 - t)
	b := 2 * (1 - t) * t
	c := t * t
	return luvAdd(luvAdd(luvScale(a, b0), luvScale(b, b1)), luvScale(c, b2))
}

// invBezier inverts a quadratic Bezier in one dimension: it returns the
// parameter at which the curve through b0, b1, b2 takes the value v.
// The radicand is clamped so it never goes negative.
func invBezier(b0, b1, b2, v float64) float64 {
	return (b0 - b1 + math.Sqrt(math.Max(b1*b1-b0*b2+(b0-2*b1+b2)*v, 0))) /
		(b0 - 2*b1 + b2)
}

// brewerPath is the two-segment quadratic Bezier color path of the
// Wijffelaars method: p0 (black) via the most saturated point to p2
// (towards white, bent by warmth), with the inner control points q0,
// q1, q2 pulled in by the saturation parameter.
type brewerPath struct {
	p0, p2     colorspace.LUV
	q0, q1, q2 colorspace.LUV
	contrast   float64
	brightness float64
}

func newBrewerPath(hue, saturation, warmth, contrast, brightness float64) brewerPath {
	pb := colorspace.BrightPoint()
	pbLCH := colorspace.LUVToLCH(pb)
	pbs := colorspace.Saturation(pbLCH.L, pbLCH.C)

	p0 := colorspace.LCHToLUV(colorspace.LCH{L: 0, C: 0, H: hue})
	p1 := colorspace.MostSaturated(hue)
	var p2LCH colorspace.LCH
	p2LCH.L = (1-warmth)*100 + warmth*pb.L
	p2LCH.H = mixHue(warmth, hue, pbLCH.H)
	p2LCH.C = colorspace.Chroma(p2LCH.L,
		math.Min(colorspace.MaxSaturation(p2LCH.L, p2LCH.H), warmth*saturation*pbs))
	p2 := colorspace.LCHToLUV(p2LCH)

	q0 := luvMix(p0, saturation, p1)
	q2 := luvMix(p2, saturation, p1)
	q1 := luvScale(0.5, luvAdd(q0, q2))

	return brewerPath{p0: p0, p2: p2, q0: q0, q1: q1, q2: q2,
		contrast: contrast, brightness: brightness}
}

// at returns the path color whose lightness follows the exponential
// brightness ramp at normalized position t in [0,1]. The lightness-only
// component of the relevant Bezier segment is inverted to find the
// curve parameter, then the full curve is evaluated there.
func (bp *brewerPath) at(t float64) colorspace.LUV {
	l := 125 - 125*math.Pow(0.2, (1-bp.contrast)*bp.brightness+t*bp.contrast)
	var bt float64
	if l <= bp.q1.L {
		bt = 0.5 * invBezier(bp.p0.L, bp.q0.L, bp.q1.L, l)
	} else {
		bt = 0.5*invBezier(bp.q1.L, bp.q2.L, bp.p2.L, l) + 0.5
	}
	if bt <= 0.5 {
		return bezier(bp.p0, bp.q0, bp.q1, 2*bt)
	}
	return bezier(bp.q1, bp.q2, bp.p2, 2*(bt-0.5))
}

// BrewerSequential generates a sequential color map of the given hue.
// It returns the number of clipped entries.
func BrewerSequential(n int, dst []byte, opts ...Option) int {
	p := params{
		hue:        BrewerSequentialDefaultHue,
		contrast:   BrewerSequentialDefaultContrast,
		saturation: BrewerSequentialDefaultSaturation,
		brightness: BrewerSequentialDefaultBrightness,
		warmth:     BrewerSequentialDefaultWarmth,
	}
	p.apply(opts)

	path := newBrewerPath(p.hue, p.saturation, p.warmth, p.contrast, p.brightness)
	return generate(n, dst, func(i int, out []byte) bool {
		return putLUV(path.at(cellCentered(i, n)), out)
	})
}

// BrewerDiverging generates a diverging color map. Half of the entries
// have the given hue, the other half the hue at the given divergence,
// and they meet at a neutral color in the middle.
func BrewerDiverging(n int, dst []byte, opts ...Option) int {
	p := params{
		hue:        BrewerDivergingDefaultHue,
		divergence: BrewerDivergingDefaultDivergence,
		contrast:   BrewerDivergingDefaultContrast,
		saturation: BrewerDivergingDefaultSaturation,
		brightness: BrewerDivergingDefaultBrightness,
		warmth:     BrewerDivergingDefaultWarmth,
	}
	p.apply(opts)

	hue1 := p.hue + p.divergence
	if hue1 >= 2*math.Pi {
		hue1 -= 2 * math.Pi
	}

	pbLCH := colorspace.LUVToLCH(colorspace.BrightPoint())
	path0 := newBrewerPath(p.hue, p.saturation, p.warmth, p.contrast, p.brightness)
	path1 := newBrewerPath(hue1, p.saturation, p.warmth, p.contrast, p.brightness)

	return generate(n, dst, func(i int, out []byte) bool {
		var c colorspace.LUV
		if n%2 == 1 && i == n/2 {
			// Neutral color in the middle of the map.
			c0 := path0.at(1)
			c1 := path1.at(1)
			if n <= 9 {
				// Discrete maps get an explicitly constructed neutral
				// entry; the raw blend looks muddy.
				sn := 0.5 * (colorspace.LUVSaturation(c0) + colorspace.LUVSaturation(c1)) * p.warmth
				l := 0.5 * (c0.L + c1.L)
				cc := colorspace.Chroma(l, math.Min(colorspace.MaxSaturation(l, pbLCH.H), sn))
				c = colorspace.LCHToLUV(colorspace.LCH{L: l, C: cc, H: pbLCH.H})
			} else {
				c = luvScale(0.5, luvAdd(c0, c1))
			}
		} else {
			t := cellCentered(i, n)
			if i < n/2 {
				c = path0.at(2 * t)
			} else {
				c = path1.at(2 * (1 - t))
			}
		}
		return putLUV(c, out)
	})
}

// BrewerQualitative generates a qualitative color map: all entries
// share the same saturation while hue walks the divergence range and
// lightness oscillates with the angular distance from yellow.
func BrewerQualitative(n int, dst []byte, opts ...Option) int {
	p := params{
		hue:        BrewerQualitativeDefaultHue,
		divergence: BrewerQualitativeDefaultDivergence,
		contrast:   BrewerQualitativeDefaultContrast,
		saturation: BrewerQualitativeDefaultSaturation,
		brightness: BrewerQualitativeDefaultBrightness,
	}
	p.apply(opts)

	ylch := colorspace.LUVToLCH(colorspace.BrightPoint())
	rs := colorspace.RedSaturation()

	eps := p.hue / (2 * math.Pi)
	r := p.divergence / (2 * math.Pi)
	l0 := p.brightness * ylch.L
	l1 := (1 - p.contrast) * l0

	return generate(n, dst, func(i int, out []byte) bool {
		t := cellCentered(i, n)
		ch := math.Mod(2*math.Pi*(eps+t*r), 2*math.Pi)
		alpha := colorspace.HueDiff(ch, ylch.H) / math.Pi
		cl := (1-alpha)*l0 + alpha*l1
		cs := math.Min(colorspace.MaxSaturation(cl, ch), p.saturation*rs)
		c := colorspace.LCHToLUV(colorspace.LCH{L: cl, C: colorspace.Chroma(cl, cs), H: ch})
		return putLUV(c, out)
	})
}
