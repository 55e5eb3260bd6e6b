package colormap

import (
	"math"
	"sync/atomic"

	"github.com/kovidgoyal/go-parallel"

	"github.com/scivis/colormap/colorspace"
)

// The two sampling conventions used by the generators. Cell-centered
// sampling never touches the path endpoints exactly; endpoint-inclusive
// sampling guarantees the first and last entries equal them.
func cellCentered(i, n int) float64 {
	return (float64(i) + 0.5) / float64(n)
}

func endpointInclusive(i, n int) float64 {
	return float64(i) / float64(n-1)
}

func sqr(x float64) float64 { return x * x }

func byteToFloat(x uint8) float64 { return float64(x) / 255 }

// floatToByte quantizes x in [0,1] to a byte and reports whether it had
// to be clamped into range.
func floatToByte(x float64) (uint8, bool) {
	v := int(math.Round(x * 255))
	if v < 0 {
		return 0, true
	}
	if v > 255 {
		return 255, true
	}
	return uint8(v), false
}

// putSRGB quantizes one color into a 3-byte palette entry and reports
// whether any channel was clipped.
func putSRGB(c colorspace.SRGB, dst []byte) bool {
	r, cr := floatToByte(c.R)
	g, cg := floatToByte(c.G)
	b, cb := floatToByte(c.B)
	dst[0], dst[1], dst[2] = r, g, b
	return cr || cg || cb
}

func putXYZ(c colorspace.XYZ, dst []byte) bool {
	return putSRGB(colorspace.RGBToSRGB(colorspace.XYZToRGB(c)), dst)
}

func putLUV(c colorspace.LUV, dst []byte) bool {
	return putXYZ(colorspace.LUVToXYZ(c), dst)
}

func putLCH(c colorspace.LCH, dst []byte) bool {
	return putLUV(colorspace.LCHToLUV(c), dst)
}

func putLab(c colorspace.Lab, dst []byte) bool {
	return putXYZ(colorspace.LabToXYZ(c), dst)
}

// generate fills dst with n palette entries and returns how many of
// them were clipped. Entries are independent of each other, so they
// are computed in parallel.
func generate(n int, dst []byte, entry func(i int, out []byte) bool) int {
	var clipped atomic.Int64
	err := parallel.Run_in_parallel_over_range(0, func(start, limit int) {
		for i := start; i < limit; i++ {
			if entry(i, dst[3*i:3*i+3]) {
				clipped.Add(1)
			}
		}
	}, 0, n)
	if err != nil {
		// Entry functions are total; the only possible error is a
		// recovered worker panic, which must not be swallowed.
		panic(err)
	}
	return int(clipped.Load())
}
