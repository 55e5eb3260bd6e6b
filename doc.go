/*
Package colormap generates color maps for scientific visualization:
sequences of N sRGB colors that vary smoothly in lightness, saturation
and hue according to a perceptual model, while staying inside the
displayable sRGB gamut as far as possible.

Each generator function fills a caller-allocated buffer of 3*n bytes
with sRGB triplets (R0,G0,B0,R1,G1,B1,...) and returns the number of
entries that had to be clipped to fit into sRGB. Generation never
fails; the clip count is a quality signal, not an error. All
generators require n >= 2 and a buffer of at least 3*n bytes.

Parameters are passed as options; any parameter that is not given
takes the documented default of the method. Hue angles are radians in
[0,2*pi).

The implemented methods:

  - BrewerSequential, BrewerDiverging, BrewerQualitative: intuitive
    palettes after Wijffelaars et al., Generating color palettes using
    intuitive parameters, Computer Graphics Forum 27(3), 2008.
  - IsoluminantSequential, IsoluminantDiverging,
    IsoluminantQualitative: constant-lightness palettes.
  - PUSequentialLightness, PUSequentialSaturation,
    PUSequentialRainbow, PUSequentialBlackBody, PUSequentialMultiHue,
    PUDivergingLightness, PUDivergingSaturation, PUQualitativeHue:
    perceptually uniform palettes whose parametrization follows
    perceptual distance in CIELUV.
  - CubeHelix: Green, A colour scheme for the display of astronomical
    intensity images, Bull. Astr. Soc. India 39, 2011.
  - Moreland: Moreland, Diverging Color Maps for Scientific
    Visualization, Proc. ISVC, 2009.
  - McNames: McNames, An Effective Color Scale for Simultaneous Color
    and Gray-Scale Publications, IEEE Signal Proc. Mag. 23(1), 2006.
    Prefer CubeHelix; McNames maps are not perceptually linear.
*/
package colormap

import "fmt"

type ColorMapVersion struct {
	Major, Minor, Patch uint
}

func (v ColorMapVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

var Version = ColorMapVersion{1, 0, 0}
