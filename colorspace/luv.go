package colorspace

import (
	"math"
)

// XYZToLUV converts XYZ to LUV. The standard piecewise rule at
// Y/Yn <= (6/29)^3 avoids the cube root singularity near black.
func XYZToLUV(c XYZ) LUV {
	var luv LUV
	yr := c.Y / WhiteD65.Y
	if yr <= (6.0*6.0*6.0)/(29.0*29.0*29.0) {
		luv.L = (29.0 * 29.0 * 29.0) / (3.0 * 3.0 * 3.0) * yr
	} else {
		luv.L = 116*math.Cbrt(yr) - 16
	}
	luv.U = 13 * luv.L * (uPrime(c) - whiteUPrime)
	luv.V = 13 * luv.L * (vPrime(c) - whiteVPrime)
	return luv
}

// LUVToXYZ inverts XYZToLUV, with the matching piecewise rule at L <= 8.
func LUVToXYZ(c LUV) XYZ {
	var xyz XYZ
	up := c.U/(13*c.L) + whiteUPrime
	vp := c.V/(13*c.L) + whiteVPrime
	if c.L <= 8 {
		xyz.Y = WhiteD65.Y * c.L * (3.0 * 3.0 * 3.0) / (29.0 * 29.0 * 29.0)
	} else {
		tmp := (c.L + 16) / 116
		xyz.Y = WhiteD65.Y * tmp * tmp * tmp
	}
	xyz.X = xyz.Y * (9 * up) / (4 * vp)
	xyz.Z = xyz.Y * (12 - 3*up - 20*vp) / (4 * vp)
	return xyz
}

// LUVToLCH converts to the polar form. The hue is wrapped to [0,2*pi).
func LUVToLCH(c LUV) LCH {
	lch := LCH{c.L, math.Hypot(c.U, c.V), math.Atan2(c.V, c.U)}
	if lch.H < 0 {
		lch.H += 2 * math.Pi
	}
	return lch
}

// LCHToLUV converts from the polar form back to LUV.
func LCHToLUV(c LCH) LUV {
	return LUV{c.L, c.C * math.Cos(c.H), c.C * math.Sin(c.H)}
}

// LUVSaturation is the LCH saturation of an LUV color.
func LUVSaturation(c LUV) float64 {
	return Saturation(c.L, math.Hypot(c.U, c.V))
}

// Distance is the Euclidean distance in LUV between two LCH colors,
// computed directly from the polar values via the law of cosines.
func Distance(a, b LCH) float64 {
	return math.Sqrt(sqr(a.L-b.L) + sqr(a.C) + sqr(b.C) - 2*a.C*b.C*math.Cos(a.H-b.H))
}
