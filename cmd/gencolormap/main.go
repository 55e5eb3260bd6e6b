// Command gencolormap generates color maps for scientific visualization
// and writes them as CSV, JSON, PPM or image files. See -help.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kettek/apng"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/scivis/colormap"
	"github.com/scivis/colormap/export"
	"github.com/scivis/colormap/testpattern"
)

type generator func(n int, dst []byte, opts ...colormap.Option) int

var generators = map[string]generator{
	"brewer-sequential":       colormap.BrewerSequential,
	"brewer-diverging":        colormap.BrewerDiverging,
	"brewer-qualitative":      colormap.BrewerQualitative,
	"isoluminant-sequential":  colormap.IsoluminantSequential,
	"isoluminant-diverging":   colormap.IsoluminantDiverging,
	"isoluminant-qualitative": colormap.IsoluminantQualitative,
	"pusequential-lightness":  colormap.PUSequentialLightness,
	"pusequential-saturation": colormap.PUSequentialSaturation,
	"pusequential-rainbow":    colormap.PUSequentialRainbow,
	"pusequential-blackbody":  colormap.PUSequentialBlackBody,
	"pusequential-multihue":   colormap.PUSequentialMultiHue,
	"pudiverging-lightness":   colormap.PUDivergingLightness,
	"pudiverging-saturation":  colormap.PUDivergingSaturation,
	"puqualitative-hue":       colormap.PUQualitativeHue,
	"cubehelix":               colormap.CubeHelix,
	"moreland":                colormap.Moreland,
	"mcnames":                 colormap.McNames,
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func parseColor(s string) ([3]uint8, error) {
	var c [3]uint8
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return c, fmt.Errorf("invalid color %q, expected r,g,b", s)
	}
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return c, fmt.Errorf("invalid color component %q", p)
		}
		c[i] = uint8(v)
	}
	return c, nil
}

// parseHues parses multi-hue control points of the form
// "deg:pos,deg:pos,..." with positions in [0,1] sorted increasing.
func parseHues(s string) (values, positions []float64, err error) {
	for _, part := range strings.Split(s, ",") {
		hp := strings.Split(part, ":")
		if len(hp) != 2 {
			return nil, nil, fmt.Errorf("invalid hue control point %q, expected deg:pos", part)
		}
		h, err := strconv.ParseFloat(strings.TrimSpace(hp[0]), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid hue %q", hp[0])
		}
		p, err := strconv.ParseFloat(strings.TrimSpace(hp[1]), 64)
		if err != nil || p < 0 || p > 1 {
			return nil, nil, fmt.Errorf("invalid position %q", hp[1])
		}
		if len(positions) > 0 && p < positions[len(positions)-1] {
			return nil, nil, fmt.Errorf("hue positions must be sorted")
		}
		values = append(values, radians(h))
		positions = append(positions, p)
	}
	return values, positions, nil
}

func run() error {
	typ := flag.String("type", "", "color map type (e.g. brewer-sequential, cubehelix, moreland)")
	n := flag.Int("n", 256, "number of colors")
	hue := flag.Float64("hue", math.NaN(), "base hue in degrees")
	divergence := flag.Float64("divergence", math.NaN(), "divergence in degrees")
	contrast := flag.Float64("contrast", math.NaN(), "contrast in [0,1]")
	saturation := flag.Float64("saturation", math.NaN(), "saturation")
	brightness := flag.Float64("brightness", math.NaN(), "brightness in [0,1]")
	warmth := flag.Float64("warmth", math.NaN(), "warmth in [0,1]")
	lightness := flag.Float64("lightness", math.NaN(), "lightness in [0,1]")
	luminance := flag.Float64("luminance", math.NaN(), "luminance in [0,1]")
	lightnessRange := flag.Float64("lightness-range", math.NaN(), "lightness range in [0.5,1]")
	saturationRange := flag.Float64("saturation-range", math.NaN(), "saturation range in [0,1]")
	rotations := flag.Float64("rotations", math.NaN(), "number of rotations")
	temperature := flag.Float64("temperature", math.NaN(), "start temperature in Kelvin")
	tempRange := flag.Float64("range", math.NaN(), "temperature range in Kelvin")
	gamma := flag.Float64("gamma", math.NaN(), "gamma correction")
	color0 := flag.String("color0", "", "first endpoint color as r,g,b bytes")
	color1 := flag.String("color1", "", "second endpoint color as r,g,b bytes")
	periods := flag.Float64("periods", math.NaN(), "number of periods")
	hues := flag.String("hues", "", "multi-hue control points as deg:pos,deg:pos,...")
	format := flag.String("format", "csv", "output format: csv, json, ppm, png, bmp, tiff")
	output := flag.String("output", "", "output file (default stdout)")
	testPattern := flag.Bool("test-pattern", false, "render the Kovesi test pattern instead of a color strip")
	sweep := flag.Int("sweep", 0, "write an animated PNG sweeping the hue over this many frames")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("gencolormap", colormap.Version)
		return nil
	}
	gen, ok := generators[*typ]
	if !ok {
		return fmt.Errorf("unknown or missing -type %q", *typ)
	}
	if *n < 2 {
		return fmt.Errorf("-n must be at least 2")
	}

	var opts []colormap.Option
	addAngle := func(v *float64, o func(float64) colormap.Option) {
		if !math.IsNaN(*v) {
			opts = append(opts, o(radians(*v)))
		}
	}
	add := func(v *float64, o func(float64) colormap.Option) {
		if !math.IsNaN(*v) {
			opts = append(opts, o(*v))
		}
	}
	addAngle(hue, colormap.Hue)
	addAngle(divergence, colormap.Divergence)
	add(contrast, colormap.Contrast)
	add(saturation, colormap.Saturation)
	add(brightness, colormap.Brightness)
	add(warmth, colormap.Warmth)
	add(lightness, colormap.Lightness)
	add(luminance, colormap.Luminance)
	add(lightnessRange, colormap.LightnessRange)
	add(saturationRange, colormap.SaturationRange)
	add(rotations, colormap.Rotations)
	add(temperature, colormap.Temperature)
	add(tempRange, colormap.TemperatureRange)
	add(gamma, colormap.Gamma)
	add(periods, colormap.Periods)
	if *color0 != "" {
		c, err := parseColor(*color0)
		if err != nil {
			return err
		}
		opts = append(opts, colormap.Color0(c[0], c[1], c[2]))
	}
	if *color1 != "" {
		c, err := parseColor(*color1)
		if err != nil {
			return err
		}
		opts = append(opts, colormap.Color1(c[0], c[1], c[2]))
	}
	if *hues != "" {
		values, positions, err := parseHues(*hues)
		if err != nil {
			return err
		}
		opts = append(opts, colormap.HueControlPoints(values, positions))
	}

	out := io.WriteCloser(os.Stdout)
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return err
		}
		out = f
		defer f.Close()
	}

	if *sweep > 0 {
		if err := writeSweep(out, gen, *n, *sweep, opts); err != nil {
			return err
		}
		return nil
	}

	palette := make([]byte, 3**n)
	clipped := gen(*n, palette, opts...)
	if clipped > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d colors were clipped\n", clipped, *n)
	}

	switch *format {
	case "csv":
		_, err := io.WriteString(out, export.CSV(palette))
		return err
	case "json":
		name := *typ
		if *output != "" {
			name = strings.TrimSuffix(filepath.Base(*output), filepath.Ext(*output))
		}
		data, err := export.JSON(palette, name)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	case "ppm":
		_, err := io.WriteString(out, export.PPM(palette))
		return err
	case "png", "bmp", "tiff":
		var img image.Image
		if *testPattern {
			img = testpattern.Render(palette)
		} else {
			img = export.Image(palette, 32)
		}
		switch *format {
		case "png":
			return png.Encode(out, img)
		case "bmp":
			return bmp.Encode(out, img)
		default:
			return tiff.Encode(out, img, nil)
		}
	default:
		return fmt.Errorf("unknown -format %q", *format)
	}
}

// writeSweep renders the test pattern once per frame while the base hue
// sweeps the full circle, and encodes the frames as an animated PNG.
func writeSweep(out io.Writer, gen generator, n, frames int, opts []colormap.Option) error {
	var anim apng.APNG
	palette := make([]byte, 3*n)
	for f := 0; f < frames; f++ {
		hue := 2 * math.Pi * float64(f) / float64(frames)
		frameOpts := append(append([]colormap.Option{}, opts...), colormap.Hue(hue))
		gen(n, palette, frameOpts...)
		anim.Frames = append(anim.Frames, apng.Frame{
			Image:            testpattern.Render(palette),
			DelayNumerator:   1,
			DelayDenominator: 10,
			DisposeOp:        apng.DISPOSE_OP_BACKGROUND,
			BlendOp:          apng.BLEND_OP_SOURCE,
		})
	}
	return apng.Encode(out, anim)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
