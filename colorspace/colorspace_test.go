package colorspace

import (
	"math"
	"math/rand"
	"testing"
)

func nearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// randomSRGB returns a deterministic sequence of in-gamut colors. The
// lower bound keeps the samples away from exact black, where the polar
// forms degenerate.
func randomSRGB(rng *rand.Rand) SRGB {
	f := func() float64 { return 0.02 + 0.98*rng.Float64() }
	return SRGB{f(), f(), f()}
}

func TestSRGBRoundtrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		in := randomSRGB(rng)
		out := RGBToSRGB(SRGBToRGB(in))
		if !nearlyEqual(in.R, out.R, 1e-12) ||
			!nearlyEqual(in.G, out.G, 1e-12) ||
			!nearlyEqual(in.B, out.B, 1e-12) {
			t.Fatalf("roundtrip mismatch: in=%+v out=%+v", in, out)
		}
	}
}

func TestXYZRoundtrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 10000; i++ {
		in := SRGBToRGB(randomSRGB(rng))
		out := XYZToRGB(RGBToXYZ(in))
		if !nearlyEqual(in.R, out.R, 1e-4) ||
			!nearlyEqual(in.G, out.G, 1e-4) ||
			!nearlyEqual(in.B, out.B, 1e-4) {
			t.Fatalf("roundtrip mismatch: in=%+v out=%+v", in, out)
		}
	}
}

func TestLUVRoundtrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 10000; i++ {
		in := RGBToXYZ(SRGBToRGB(randomSRGB(rng)))
		out := LUVToXYZ(XYZToLUV(in))
		if !nearlyEqual(in.X, out.X, 1e-6) ||
			!nearlyEqual(in.Y, out.Y, 1e-6) ||
			!nearlyEqual(in.Z, out.Z, 1e-6) {
			t.Fatalf("roundtrip mismatch: in=%+v out=%+v", in, out)
		}
	}
}

// Very dark grays exercise the linear segment of the lightness curve.
func TestLUVRoundtripDark(t *testing.T) {
	for _, g := range []float64{0.001, 0.004, 0.008} {
		in := RGBToXYZ(RGB{g, g, g})
		luv := XYZToLUV(in)
		if luv.L > 8 {
			t.Fatalf("gray %v expected in the linear segment, got L=%v", g, luv.L)
		}
		out := LUVToXYZ(luv)
		if !nearlyEqual(in.Y, out.Y, 1e-9) {
			t.Fatalf("dark roundtrip mismatch: in=%+v out=%+v", in, out)
		}
	}
}

func TestLCHRoundtrip(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 10000; i++ {
		in := XYZToLUV(RGBToXYZ(SRGBToRGB(randomSRGB(rng))))
		lch := LUVToLCH(in)
		if lch.H < 0 || lch.H >= 2*math.Pi {
			t.Fatalf("hue %v out of [0,2pi)", lch.H)
		}
		out := LCHToLUV(lch)
		if !nearlyEqual(in.L, out.L, 1e-9) ||
			!nearlyEqual(in.U, out.U, 1e-9) ||
			!nearlyEqual(in.V, out.V, 1e-9) {
			t.Fatalf("roundtrip mismatch: in=%+v out=%+v", in, out)
		}
	}
}

func TestLabRoundtrip(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 10000; i++ {
		in := RGBToXYZ(SRGBToRGB(randomSRGB(rng)))
		out := LabToXYZ(XYZToLab(in))
		if !nearlyEqual(in.X, out.X, 1e-6) ||
			!nearlyEqual(in.Y, out.Y, 1e-6) ||
			!nearlyEqual(in.Z, out.Z, 1e-6) {
			t.Fatalf("roundtrip mismatch: in=%+v out=%+v", in, out)
		}
	}
}

func TestMSHRoundtrip(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for i := 0; i < 10000; i++ {
		in := XYZToLab(RGBToXYZ(SRGBToRGB(randomSRGB(rng))))
		out := MSHToLab(LabToMSH(in))
		if !nearlyEqual(in.L, out.L, 1e-6) ||
			!nearlyEqual(in.A, out.A, 1e-6) ||
			!nearlyEqual(in.B, out.B, 1e-6) {
			t.Fatalf("roundtrip mismatch: in=%+v out=%+v", in, out)
		}
	}
}

func TestMSHDegenerate(t *testing.T) {
	msh := LabToMSH(Lab{0, 0, 0})
	if msh.M != 0 || msh.S != 0 || msh.H != 0 {
		t.Fatalf("black should map to the origin, got %+v", msh)
	}
	// Achromatic colors must not pick up an arbitrary hue.
	msh = LabToMSH(Lab{50, 0, 0})
	if msh.S != 0 || msh.H != 0 {
		t.Fatalf("gray should have zero saturation and hue, got %+v", msh)
	}
}

func TestHueDiff(t *testing.T) {
	cases := []struct{ h0, h1, want float64 }{
		{0, 0, 0},
		{0, math.Pi / 2, math.Pi / 2},
		{math.Pi / 2, 0, math.Pi / 2},
		{0, math.Pi, math.Pi},
		{0.1, 2*math.Pi - 0.1, 0.2},
		{2*math.Pi - 0.1, 0.1, 0.2},
	}
	for _, tc := range cases {
		if got := HueDiff(tc.h0, tc.h1); !nearlyEqual(got, tc.want, 1e-12) {
			t.Errorf("HueDiff(%v, %v) = %v, want %v", tc.h0, tc.h1, got, tc.want)
		}
	}
}

func TestSaturationChromaInverse(t *testing.T) {
	for _, l := range []float64{1, 25, 50, 99} {
		for _, s := range []float64{0, 0.3, 1.5} {
			if got := Saturation(l, Chroma(l, s)); !nearlyEqual(got, s, 1e-12) {
				t.Errorf("Saturation(%v, Chroma(%v, %v)) = %v", l, l, s, got)
			}
		}
	}
}

func TestAdjustY(t *testing.T) {
	in := XYZ{30, 40, 50}
	out := AdjustY(in, 10)
	if !nearlyEqual(out.Y, 10, 1e-12) {
		t.Fatalf("Y = %v, want 10", out.Y)
	}
	// Chromaticity must be unchanged.
	sumIn := in.X + in.Y + in.Z
	sumOut := out.X + out.Y + out.Z
	if !nearlyEqual(in.X/sumIn, out.X/sumOut, 1e-12) ||
		!nearlyEqual(in.Y/sumIn, out.Y/sumOut, 1e-12) {
		t.Fatalf("chromaticity changed: in=%+v out=%+v", in, out)
	}
}

// Distance must agree with the Euclidean LUV distance of the
// rectangular forms.
func TestDistance(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		a := LUVToLCH(XYZToLUV(RGBToXYZ(SRGBToRGB(randomSRGB(rng)))))
		b := LUVToLCH(XYZToLUV(RGBToXYZ(SRGBToRGB(randomSRGB(rng)))))
		ar := LCHToLUV(a)
		br := LCHToLUV(b)
		want := math.Sqrt(sqr(ar.L-br.L) + sqr(ar.U-br.U) + sqr(ar.V-br.V))
		if got := Distance(a, b); !nearlyEqual(got, want, 1e-9) {
			t.Fatalf("Distance = %v, want %v (a=%+v b=%+v)", got, want, a, b)
		}
	}
}
