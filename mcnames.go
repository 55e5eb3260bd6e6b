package colormap

import (
	"math"

	"github.com/scivis/colormap/colorspace"
)

func cart2pol(x, y float64) (theta, rho float64) {
	return math.Atan2(y, x), math.Hypot(x, y)
}

func pol2cart(theta, rho float64) (x, y float64) {
	return rho * math.Cos(theta), rho * math.Sin(theta)
}

// mcNamesWindow is a cosh based window function over [0,1] bounding the
// amplitude of the spiral.
func mcNamesWindow(t float64) float64 {
	ww := math.Sqrt(3.0 / 8.0)
	acosh2 := math.Acosh(2)
	return 0.95 * ww * (2 - math.Cosh(acosh2*(2*t-1)))
}

// McNames generates McNames' sequential map: a spiral through RGB space
// around the gray diagonal with the given number of periods. The maps
// are not perceptually linear in luminance; prefer CubeHelix.
func McNames(n int, dst []byte, opts ...Option) int {
	p := params{periods: McNamesDefaultPeriods}
	p.apply(opts)

	sqrt3 := math.Sqrt(3)
	a12 := math.Asin(1 / sqrt3)
	a23 := math.Pi / 4

	return generate(n, dst, func(i int, out []byte) bool {
		t := 1 - cellCentered(i, n)
		w := mcNamesWindow(t)
		tt := (1 - t) * sqrt3
		ttt := (tt - sqrt3/2) * p.periods * 2 * math.Pi / sqrt3

		r0 := tt
		g0 := w * math.Cos(ttt)
		b0 := w * math.Sin(ttt)
		ag, rd := cart2pol(r0, g0)
		r1, g1 := pol2cart(ag+a12, rd)
		b1 := b0
		ag, rd = cart2pol(r1, b1)
		r2, b2 := pol2cart(ag+a23, rd)
		g2 := g1

		return putSRGB(colorspace.SRGB{R: r2, G: g2, B: b2}, out)
	})
}
