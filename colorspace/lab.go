package colorspace

import (
	"math"
)

func labF(t float64) float64 {
	if t > (6.0*6.0*6.0)/(29.0*29.0*29.0) {
		return math.Cbrt(t)
	}
	return (29.0*29.0)/(3.0*6.0*6.0)*t + 4.0/29.0
}

func labInvF(t float64) float64 {
	if t > 6.0/29.0 {
		return t * t * t
	}
	return (3.0 * 6.0 * 6.0) / (29.0 * 29.0) * (t - 4.0/29.0)
}

// XYZToLab converts XYZ to CIELAB.
func XYZToLab(c XYZ) Lab {
	fx := labF(c.X / WhiteD65.X)
	fy := labF(c.Y / WhiteD65.Y)
	fz := labF(c.Z / WhiteD65.Z)
	return Lab{116*fy - 16, 500 * (fx - fy), 200 * (fy - fz)}
}

// LabToXYZ inverts XYZToLab.
func LabToXYZ(c Lab) XYZ {
	t := (c.L + 16) / 116
	return XYZ{
		WhiteD65.X * labInvF(t+c.A/500),
		WhiteD65.Y * labInvF(t),
		WhiteD65.Z * labInvF(t-c.B/200),
	}
}

// LabToMSH converts CIELAB to Moreland's MSH space: M is the Euclidean
// norm of (L,a,b), s the angle away from the L axis, h the hue angle in
// the a-b plane. Degenerate values default to zero rather than NaN.
func LabToMSH(c Lab) MSH {
	var msh MSH
	msh.M = math.Sqrt(c.L*c.L + c.A*c.A + c.B*c.B)
	if msh.M > 1e-3 {
		msh.S = math.Acos(c.L / msh.M)
	}
	if msh.S > 1e-3 {
		msh.H = math.Atan2(c.B, c.A)
	}
	return msh
}

// MSHToLab inverts LabToMSH.
func MSHToLab(c MSH) Lab {
	return Lab{
		c.M * math.Cos(c.S),
		c.M * math.Sin(c.S) * math.Cos(c.H),
		c.M * math.Sin(c.S) * math.Sin(c.H),
	}
}
