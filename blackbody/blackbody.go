// Package blackbody computes CIE XYZ tristimulus values for black body
// radiators by integrating Planck's law against the CIE 1931 2 degree
// standard observer color matching functions.
package blackbody

import (
	"math"

	"github.com/scivis/colormap/colorspace"
)

// Planck returns the spectral radiance of a black body at the given
// temperature (Kelvin) and wavelength (meters).
func Planck(temperature, lambda float64) float64 {
	const (
		c = 299792458.0     // speed of light in vacuum
		h = 6.626070041e-34 // Planck's constant
		k = 1.38064853e-23  // Boltzmann constant
	)
	return 2 * h * c * c * math.Pow(lambda, -5) /
		(math.Exp(h*c/(lambda*k*temperature)) - 1)
}

// cmf returns the CIE 1931 2 degree standard observer color matching
// function at an integer wavelength in nanometers, linearly
// interpolated between the 5nm table entries. Outside [380,780] the
// observer does not respond and zero is returned.
func cmf(lambda int) (x, y, z float64) {
	if lambda < 380 || lambda > 780 {
		return 0, 0, 0
	}
	i := (lambda - 380) / 5
	e := cmfXYZ[i]
	x, y, z = e[0], e[1], e[2]
	if lambda%5 != 0 {
		e1 := cmfXYZ[i+1]
		alpha := float64(lambda%5) / 5
		x = (1-alpha)*x + alpha*e1[0]
		y = (1-alpha)*y + alpha*e1[1]
		z = (1-alpha)*z + alpha*e1[2]
	}
	return
}

// XYZ integrates the radiosity of a black body at the given temperature
// (Kelvin) over the visible spectrum, 360 to 830 nm in 5nm steps.
// The result is unnormalized; callers rescale it to a reference
// luminance with colorspace.AdjustY. Extreme temperatures can overflow
// to +Inf, this is not guarded against.
func XYZ(temperature float64) colorspace.XYZ {
	const stepsize = 5
	const s = stepsize * 1e-9 // step in meters
	var xyz colorspace.XYZ
	for lambda := 360; lambda <= 830; lambda += stepsize {
		l := float64(lambda) * 1e-9
		radiosity := math.Pi * Planck(temperature, l)
		x, y, z := cmf(lambda)
		xyz.X += s * radiosity * x
		xyz.Y += s * radiosity * y
		xyz.Z += s * radiosity * z
	}
	return xyz
}
