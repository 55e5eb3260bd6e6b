package colorspace

import (
	"math"
)

// srgbEncode applies the piecewise sRGB gamma to one linear component.
// Out-of-range inputs pass through the formula unclamped.
func srgbEncode(x float64) float64 {
	if x <= 0.0031308 {
		return x * 12.92
	}
	return 1.055*math.Pow(x, 1/2.4) - 0.055
}

// srgbDecode inverts srgbEncode.
func srgbDecode(x float64) float64 {
	if x <= 0.04045 {
		return x / 12.92
	}
	return math.Pow((x+0.055)/1.055, 2.4)
}

// RGBToSRGB gamma encodes a linear RGB color.
func RGBToSRGB(c RGB) SRGB {
	return SRGB{srgbEncode(c.R), srgbEncode(c.G), srgbEncode(c.B)}
}

// SRGBToRGB removes the gamma encoding from an sRGB color.
func SRGBToRGB(c SRGB) RGB {
	return RGB{srgbDecode(c.R), srgbDecode(c.G), srgbDecode(c.B)}
}

// Rec.709 primaries under D65, with the XYZ result scaled to [0,100].
// Matrix values from http://terathon.com/blog/rgb-xyz-conversion-matrix-accuracy/

// RGBToXYZ converts linear RGB to XYZ.
func RGBToXYZ(c RGB) XYZ {
	return XYZ{
		100 * (0.412391*c.R + 0.357584*c.G + 0.180481*c.B),
		100 * (0.212639*c.R + 0.715169*c.G + 0.072192*c.B),
		100 * (0.019331*c.R + 0.119195*c.G + 0.950532*c.B),
	}
}

// XYZToRGB converts XYZ to linear RGB. The result is not clamped and
// may lie outside [0,1] for out-of-gamut input.
func XYZToRGB(c XYZ) RGB {
	return RGB{
		0.01 * (+3.240970*c.X - 1.537383*c.Y - 0.498611*c.Z),
		0.01 * (-0.969244*c.X + 1.875968*c.Y + 0.041555*c.Z),
		0.01 * (+0.055630*c.X - 0.203977*c.Y + 1.056972*c.Z),
	}
}

// XYZToRGBClamped is XYZToRGB with each component clamped to [0,1].
func XYZToRGBClamped(c XYZ) RGB {
	r := XYZToRGB(c)
	return RGB{clamp(r.R, 0, 1), clamp(r.G, 0, 1), clamp(r.B, 0, 1)}
}
