// Package colorspace implements the color space conversions needed for
// perceptual color map generation: sRGB, linear RGB, CIE XYZ, CIELUV and
// its polar form LCH(uv), CIELAB, and Moreland's MSH space.
//
// Each space gets its own value type so that a value from one space can
// never be passed where another is expected without an explicit
// conversion call.
//
// Conventions:
// - D65 white is used everywhere.
// - RGB means linear RGB; SRGB is gamma encoded. Both are in [0,1].
// - XYZ, LUV and similar values are on the original (unnormalized)
//   scale, typically [0,100].
// - All hue angles are in radians, wrapped to [0,2*pi).
//
// None of the functions clamp their results unless documented; clamping
// happens only at the 8-bit quantization boundary in the caller.
package colorspace

import (
	"math"
)

// SRGB is a gamma encoded sRGB color with components nominally in [0,1].
type SRGB struct{ R, G, B float64 }

// RGB is a linear RGB color (sRGB primaries, no gamma) in [0,1].
type RGB struct{ R, G, B float64 }

// XYZ is a CIE 1931 tristimulus value relative to D65, Y in [0,100].
type XYZ struct{ X, Y, Z float64 }

// LUV is a CIE 1976 L*u*v* color, L in [0,100].
type LUV struct{ L, U, V float64 }

// LCH is the polar form of LUV: lightness, chroma, hue (radians).
type LCH struct{ L, C, H float64 }

// Lab is a CIE 1976 L*a*b* color, L in [0,100].
type Lab struct{ L, A, B float64 }

// MSH is Moreland's magnitude/saturation/hue space derived from Lab.
type MSH struct{ M, S, H float64 }

// WhiteD65 is the D65 reference white used by all conversions.
var WhiteD65 = XYZ{95.047, 100.000, 108.883}

var (
	whiteUPrime = uPrime(WhiteD65)
	whiteVPrime = vPrime(WhiteD65)
)

func uPrime(c XYZ) float64 {
	return 4 * c.X / (c.X + 15*c.Y + 3*c.Z)
}

func vPrime(c XYZ) float64 {
	return 9 * c.Y / (c.X + 15*c.Y + 3*c.Z)
}

func sqr(x float64) float64 { return x * x }

func clamp(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}

// AdjustY rescales c to the luminance y while keeping its chromaticity.
func AdjustY(c XYZ, y float64) XYZ {
	sum := c.X + c.Y + c.Z
	cx := c.X / sum
	cy := c.Y / sum
	r := y / cy
	return XYZ{r * cx, y, r * (1 - cx - cy)}
}

// HueDiff returns the absolute angular difference between two hues,
// folded into [0,pi].
func HueDiff(h0, h1 float64) float64 {
	t := math.Abs(h1 - h0)
	if t < math.Pi {
		return t
	}
	return 2*math.Pi - t
}

// Saturation is the LCH saturation C/L, guarded against division by
// zero at black.
func Saturation(l, c float64) float64 {
	return c / math.Max(l, 1e-8)
}

// Chroma is the inverse of Saturation: the chroma that gives
// saturation s at lightness l.
func Chroma(l, s float64) float64 {
	return s * l
}
