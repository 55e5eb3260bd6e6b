package colorspace

import (
	"math"
	"sync"
)

// The six sRGB cube corners with maximal chroma (R, Y, G, C, B, M)
// partition the hue circle into six sectors. Within a sector the most
// saturated displayable color lies on one cube edge: two components are
// pinned to 0 or 1 and only one is free. Their LCH hues are fixed by
// the primaries and D65, so they are computed once per process.

func srgbToLCHHue(c SRGB) float64 {
	return LUVToLCH(XYZToLUV(RGBToXYZ(SRGBToRGB(c)))).H
}

var cornerHues = sync.OnceValue(func() [6]float64 {
	return [6]float64{
		srgbToLCHHue(SRGB{1, 0, 0}),
		srgbToLCHHue(SRGB{1, 1, 0}),
		srgbToLCHHue(SRGB{0, 1, 0}),
		srgbToLCHHue(SRGB{0, 1, 1}),
		srgbToLCHHue(SRGB{0, 0, 1}),
		srgbToLCHHue(SRGB{1, 0, 1}),
	}
})

// BrightPoint returns the LUV coordinates of sRGB yellow, the
// practical maximum-lightness hue anchor of the Wijffelaars method.
var BrightPoint = sync.OnceValue(func() LUV {
	return XYZToLUV(RGBToXYZ(RGB{1, 1, 0}))
})

// RedSaturation returns the LCH saturation of pure sRGB red, the
// largest saturation reachable anywhere in the gamut.
var RedSaturation = sync.OnceValue(func() float64 {
	return LUVSaturation(XYZToLUV(RGBToXYZ(RGB{1, 0, 0})))
})

// MostSaturated returns the most saturated color in the sRGB gamut for
// the given LCH hue, as an LUV value. This is the core of the
// Wijffelaars palette construction.
//
// The sector of the query hue pins two RGB components to {0,1}; the
// third follows from a single linear equation obtained by projecting
// the LCH->LUV->XYZ chain onto the hue direction. The solve is exact,
// no iteration is involved.
func MostSaturated(lchHue float64) LUV {
	h := cornerHues()

	// i is the free component, j is pinned to 0, k is pinned to 1.
	var i, j, k int
	switch {
	case lchHue < h[0]:
		i, j, k = 2, 1, 0
	case lchHue < h[1]:
		i, j, k = 1, 2, 0
	case lchHue < h[2]:
		i, j, k = 0, 2, 1
	case lchHue < h[3]:
		i, j, k = 2, 0, 1
	case lchHue < h[4]:
		i, j, k = 1, 0, 2
	case lchHue < h[5]:
		i, j, k = 0, 1, 2
	default:
		i, j, k = 2, 1, 0
	}

	m := [3][3]float64{
		{0.4124, 0.3576, 0.1805},
		{0.2126, 0.7152, 0.0722},
		{0.0193, 0.1192, 0.9505},
	}
	alpha := -math.Sin(lchHue)
	beta := math.Cos(lchHue)
	t := alpha*whiteUPrime + beta*whiteVPrime

	var srgb [3]float64
	srgb[j] = 0
	srgb[k] = 1
	q0 := t*(m[0][k]+15*m[1][k]+3*m[2][k]) - (4*alpha*m[0][k] + 9*beta*m[1][k])
	q1 := t*(m[0][i]+15*m[1][i]+3*m[2][i]) - (4*alpha*m[0][i] + 9*beta*m[1][i])
	srgb[i] = srgbEncode(clamp(-q0/q1, 0, 1))

	return XYZToLUV(RGBToXYZ(SRGBToRGB(SRGB{srgb[0], srgb[1], srgb[2]})))
}

// MaxSaturation returns the largest saturation that stays inside the
// sRGB gamut at lightness l and the given hue. It interpolates between
// the gamut boundary point for that hue and the achromatic endpoint at
// L=0 or L=100, whichever side of the boundary point l lies on.
func MaxSaturation(l, hue float64) float64 {
	pmid := MostSaturated(hue)
	var pendL float64
	if l > pmid.L {
		pendL = 100
	}
	alpha := (pendL - l) / (pendL - pmid.L)
	return alpha * LUVSaturation(pmid)
}
