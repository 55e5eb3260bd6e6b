package colorspace

import (
	"math"
	"testing"
)

// The most saturated color of any hue lies on an edge of the sRGB cube:
// after conversion back to sRGB one component must sit at 0 and one at
// 1, and all must be displayable.
func TestMostSaturatedOnGamutBoundary(t *testing.T) {
	const eps = 1e-3
	for deg := 0; deg < 360; deg++ {
		hue := float64(deg) * math.Pi / 180
		luv := MostSaturated(hue)
		srgb := RGBToSRGB(XYZToRGB(LUVToXYZ(luv)))
		comps := [3]float64{srgb.R, srgb.G, srgb.B}
		lo, hi := comps[0], comps[0]
		for _, c := range comps {
			if c < -eps || c > 1+eps {
				t.Fatalf("hue %d deg: component %v outside gamut", deg, c)
			}
			lo = math.Min(lo, c)
			hi = math.Max(hi, c)
		}
		if lo > eps || hi < 1-eps {
			t.Fatalf("hue %d deg: %+v not on a cube edge", deg, srgb)
		}
		if LUVSaturation(luv) <= 0 {
			t.Fatalf("hue %d deg: saturation not positive", deg)
		}
	}
}

// The returned color must actually have the requested hue.
func TestMostSaturatedHue(t *testing.T) {
	for deg := 0; deg < 360; deg += 5 {
		hue := float64(deg) * math.Pi / 180
		got := LUVToLCH(MostSaturated(hue)).H
		if HueDiff(got, hue) > 1e-3 {
			t.Fatalf("hue %d deg: got hue %v", deg, got)
		}
	}
}

func TestMaxSaturation(t *testing.T) {
	for deg := 0; deg < 360; deg += 15 {
		hue := float64(deg) * math.Pi / 180
		pmid := MostSaturated(hue)
		smax := LUVSaturation(pmid)

		// At the boundary point's own lightness the full boundary
		// saturation is reachable.
		if got := MaxSaturation(pmid.L, hue); !nearlyEqual(got, smax, 1e-9) {
			t.Fatalf("hue %d deg: MaxSaturation(%v) = %v, want %v", deg, pmid.L, got, smax)
		}
		// Towards black and white the reachable saturation shrinks.
		for _, l := range []float64{pmid.L / 2, pmid.L + (100-pmid.L)/2} {
			got := MaxSaturation(l, hue)
			if got < 0 || got > smax+1e-9 {
				t.Fatalf("hue %d deg: MaxSaturation(%v) = %v outside [0,%v]", deg, l, got, smax)
			}
		}
	}
}

// RedSaturation is used by the drivers as a chroma cap, always behind a
// min with the gamut boundary. It is not a gamut-wide maximum: dark
// blue boundary hues have a higher C/L ratio than red.
func TestRedSaturation(t *testing.T) {
	rs := RedSaturation()
	if rs <= 0 {
		t.Fatalf("red saturation %v not positive", rs)
	}
	want := LUVSaturation(XYZToLUV(RGBToXYZ(RGB{1, 0, 0})))
	if !nearlyEqual(rs, want, 1e-12) {
		t.Fatalf("RedSaturation() = %v, want %v", rs, want)
	}
}

// A chroma target capped by both RedSaturation and MaxSaturation stays
// displayable; this is the invariant the drivers rely on.
func TestCappedSaturationStaysInGamut(t *testing.T) {
	rs := RedSaturation()
	for deg := 0; deg < 360; deg += 5 {
		hue := float64(deg) * math.Pi / 180
		for _, l := range []float64{20, 50, 80} {
			s := math.Min(MaxSaturation(l, hue), 0.5*rs)
			srgb := RGBToSRGB(XYZToRGB(LUVToXYZ(LCHToLUV(LCH{L: l, C: Chroma(l, s), H: hue}))))
			// MaxSaturation interpolates the boundary linearly, so
			// allow a small overshoot.
			for _, c := range [3]float64{srgb.R, srgb.G, srgb.B} {
				if c < -1e-2 || c > 1+1e-2 {
					t.Fatalf("hue %d deg, L=%v: component %v outside gamut", deg, l, c)
				}
			}
		}
	}
}

func TestBrightPointIsYellow(t *testing.T) {
	want := XYZToLUV(RGBToXYZ(RGB{1, 1, 0}))
	got := BrightPoint()
	if !nearlyEqual(got.L, want.L, 1e-12) ||
		!nearlyEqual(got.U, want.U, 1e-12) ||
		!nearlyEqual(got.V, want.V, 1e-12) {
		t.Fatalf("BrightPoint() = %+v, want %+v", got, want)
	}
}
