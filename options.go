package colormap

import "math"

// params carries every parameter any generator understands. Each
// generator starts from its own defaults and applies the caller's
// options on top, so unrelated fields are simply ignored.
type params struct {
	hue              float64
	divergence       float64
	contrast         float64
	saturation       float64
	brightness       float64
	warmth           float64
	lightness        float64
	luminance        float64
	lightnessRange   float64
	saturationRange  float64
	rotations        float64
	temperature      float64
	temperatureRange float64
	gamma            float64
	color0           [3]uint8
	color1           [3]uint8
	periods          float64
	hueValues        []float64
	huePositions     []float64
	l0, s0, l1, s1   float64
	s05              float64
}

func (p *params) apply(opts []Option) {
	for _, o := range opts {
		o(p)
	}
}

// Option sets an optional parameter for a color map generator.
type Option func(*params)

// Hue sets the base hue in radians.
func Hue(rad float64) Option { return func(p *params) { p.hue = rad } }

// Divergence sets the hue distance in radians between the two arms of
// a diverging map, or the hue range of a qualitative map.
func Divergence(rad float64) Option { return func(p *params) { p.divergence = rad } }

// Contrast sets the lightness contrast in [0,1].
func Contrast(c float64) Option { return func(p *params) { p.contrast = c } }

// Saturation sets the saturation parameter of the method.
func Saturation(s float64) Option { return func(p *params) { p.saturation = s } }

// Brightness sets the brightness parameter in [0,1].
func Brightness(b float64) Option { return func(p *params) { p.brightness = b } }

// Warmth sets the warmth parameter in [0,1] of the Brewer-like maps.
func Warmth(w float64) Option { return func(p *params) { p.warmth = w } }

// Lightness sets the constant lightness in [0,1] of methods that hold
// lightness fixed.
func Lightness(l float64) Option { return func(p *params) { p.lightness = l } }

// Luminance sets the constant luminance in [0,1] of the isoluminant
// maps.
func Luminance(l float64) Option { return func(p *params) { p.luminance = l } }

// LightnessRange sets the fraction in [0.5,1] of the lightness scale
// that a PU sequential or diverging lightness map covers.
func LightnessRange(r float64) Option { return func(p *params) { p.lightnessRange = r } }

// SaturationRange sets the fraction in [0,1] of the saturation scale
// that a PU saturation map covers.
func SaturationRange(r float64) Option { return func(p *params) { p.saturationRange = r } }

// Rotations sets the number of hue rotations; negative values rotate
// backwards.
func Rotations(r float64) Option { return func(p *params) { p.rotations = r } }

// Temperature sets the black body start temperature in Kelvin.
func Temperature(k float64) Option { return func(p *params) { p.temperature = k } }

// TemperatureRange sets the temperature span in Kelvin covered by a
// black body map.
func TemperatureRange(k float64) Option { return func(p *params) { p.temperatureRange = k } }

// Gamma sets the gamma correction of the CubeHelix method.
func Gamma(g float64) Option { return func(p *params) { p.gamma = g } }

// Color0 sets the first endpoint of the Moreland method as sRGB bytes.
func Color0(r, g, b uint8) Option { return func(p *params) { p.color0 = [3]uint8{r, g, b} } }

// Color1 sets the second endpoint of the Moreland method as sRGB bytes.
func Color1(r, g, b uint8) Option { return func(p *params) { p.color1 = [3]uint8{r, g, b} } }

// Periods sets the number of periods of the McNames method.
func Periods(c float64) Option { return func(p *params) { p.periods = c } }

// HueControlPoints sets the hue control points of a multi-hue map:
// values[i] is the hue in radians at position positions[i] in [0,1].
// Positions must be sorted in increasing order and both slices must
// have the same length.
func HueControlPoints(values, positions []float64) Option {
	return func(p *params) { p.hueValues, p.huePositions = values, positions }
}

// MultiHueLightness sets the endpoint lightness values (in [0,100]) of
// a multi-hue map.
func MultiHueLightness(l0, l1 float64) Option {
	return func(p *params) { p.l0, p.l1 = l0, l1 }
}

// MultiHueSaturation sets the endpoint and midpoint saturations of a
// multi-hue map.
func MultiHueSaturation(s0, s1, s05 float64) Option {
	return func(p *params) { p.s0, p.s1, p.s05 = s0, s1, s05 }
}

// Defaults of the Brewer-like methods, from Wijffelaars et al.
const (
	BrewerSequentialDefaultHue        = 0.0
	BrewerSequentialDefaultContrast   = 0.88
	BrewerSequentialDefaultSaturation = 0.6
	BrewerSequentialDefaultBrightness = 0.75
	BrewerSequentialDefaultWarmth     = 0.15

	BrewerDivergingDefaultHue        = 0.0
	BrewerDivergingDefaultDivergence = 4.18879020479 // 2/3 * 2pi
	BrewerDivergingDefaultContrast   = 0.88
	BrewerDivergingDefaultSaturation = 0.6
	BrewerDivergingDefaultBrightness = 0.75
	BrewerDivergingDefaultWarmth     = 0.15

	BrewerQualitativeDefaultHue        = 0.0
	BrewerQualitativeDefaultDivergence = 4.18879020479
	BrewerQualitativeDefaultContrast   = 0.5
	BrewerQualitativeDefaultSaturation = 0.5
	BrewerQualitativeDefaultBrightness = 0.8
)

// BrewerSequentialDefaultContrastForSmallN is the default contrast for
// discrete sequential maps, i.e. n <= 9.
func BrewerSequentialDefaultContrastForSmallN(n int) float64 {
	return math.Min(0.88, 0.34+0.06*float64(n))
}

// BrewerDivergingDefaultContrastForSmallN is the default contrast for
// discrete diverging maps, i.e. n <= 9.
func BrewerDivergingDefaultContrastForSmallN(n int) float64 {
	return math.Min(0.88, 0.34+0.06*float64(n))
}

// Defaults of the isoluminant methods.
const (
	IsoluminantDefaultLuminance  = 0.5
	IsoluminantDefaultSaturation = 0.5
	IsoluminantDefaultHue        = 0.0
	IsoluminantDefaultDivergence = 4.18879020479
)

// Defaults of the perceptually uniform (PU) methods.
const (
	PUSequentialLightnessDefaultLightnessRange = 1.0
	PUSequentialLightnessDefaultSaturation     = 0.3
	PUSequentialLightnessDefaultHue            = 0.0

	PUSequentialSaturationDefaultSaturationRange = 1.0
	PUSequentialSaturationDefaultLightness       = 0.5
	PUSequentialSaturationDefaultSaturation      = 0.3
	PUSequentialSaturationDefaultHue             = 0.0

	PUSequentialRainbowDefaultLightnessRange = 1.0
	PUSequentialRainbowDefaultHue            = 0.0
	PUSequentialRainbowDefaultRotations      = 1.5
	PUSequentialRainbowDefaultSaturation     = 1.0

	PUSequentialBlackBodyDefaultTemperature = 250.0
	PUSequentialBlackBodyDefaultRange       = 15000.0
	PUSequentialBlackBodyDefaultSaturation  = 2.5

	PUDivergingLightnessDefaultLightnessRange = 1.0
	PUDivergingLightnessDefaultSaturation     = 0.3
	PUDivergingLightnessDefaultHue            = 0.0
	PUDivergingLightnessDefaultDivergence     = 4.18879020479

	PUDivergingSaturationDefaultSaturationRange = 1.0
	PUDivergingSaturationDefaultLightness       = 0.5
	PUDivergingSaturationDefaultSaturation      = 0.3
	PUDivergingSaturationDefaultHue             = 0.0
	PUDivergingSaturationDefaultDivergence      = 4.18879020479

	PUQualitativeHueDefaultHue        = 0.0
	PUQualitativeHueDefaultDivergence = 2 * math.Pi
	PUQualitativeHueDefaultLightness  = 0.55
	PUQualitativeHueDefaultSaturation = 0.15

	PUSequentialMultiHueDefaultL0  = 5.0
	PUSequentialMultiHueDefaultS0  = 0.2
	PUSequentialMultiHueDefaultL1  = 95.0
	PUSequentialMultiHueDefaultS1  = 0.3
	PUSequentialMultiHueDefaultS05 = 1.2
)

// Default hue control points of PUSequentialMultiHue: a blue to green
// to yellow ramp.
var (
	PUSequentialMultiHueDefaultHueValues    = []float64{4.18879020479, 3.49065850399, 2.79252680319, 2.09439510239, 1.39626340159}
	PUSequentialMultiHueDefaultHuePositions = []float64{0, 0.25, 0.5, 0.75, 1}
)

// Defaults of the CubeHelix method.
const (
	CubeHelixDefaultHue        = 0.523598775598 // 1/12 * 2pi
	CubeHelixDefaultRotations  = -1.5
	CubeHelixDefaultSaturation = 1.2
	CubeHelixDefaultGamma      = 1.0
)

// Default endpoints of the Moreland method (blue to red).
const (
	MorelandDefaultR0 = 59
	MorelandDefaultG0 = 76
	MorelandDefaultB0 = 192
	MorelandDefaultR1 = 180
	MorelandDefaultG1 = 4
	MorelandDefaultB1 = 38
)

// Default of the McNames method.
const McNamesDefaultPeriods = 2.0
