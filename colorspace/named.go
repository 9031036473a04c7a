package colorspace

import (
	"fmt"
	"slices"

	"golang.org/x/text/cases"
)

// NamedProfile describes a built-in profile.
type NamedProfile struct {
	Name      string
	White     Chromaticity
	Primaries [3]Chromaticity
	Curve     func() ToneCurve
}

var (
	srgbPrimaries = [3]Chromaticity{{0.64, 0.33}, {0.30, 0.60}, {0.15, 0.06}}

	// The transfer functions are the inverse of each standard's encoding.
	srgbCurve = func() ToneCurve {
		return &Parametric{Type: 3, Params: []float64{2.4, 1 / 1.055, 0.055 / 1.055, 1 / 12.92, 0.04045}}
	}
	rec709Curve = func() ToneCurve {
		return &Parametric{Type: 3, Params: []float64{1 / 0.45, 1 / 1.099, 0.099 / 1.099, 1 / 4.5, 0.081}}
	}
	rec2020Curve = func() ToneCurve {
		return &Parametric{Type: 3, Params: []float64{1 / 0.45, 1 / 1.0993, 0.0993 / 1.0993, 1 / 4.5, 0.08145}}
	}
	romm = func() ToneCurve {
		return &Parametric{Type: 3, Params: []float64{1.8, 1, 0, 1.0 / 16, 1.0 / 32}}
	}
)

var namedProfiles = []NamedProfile{
	{Name: "sRGB", White: D65xy, Primaries: srgbPrimaries, Curve: srgbCurve},
	{
		Name:      "AdobeRGB1998",
		White:     D65xy,
		Primaries: [3]Chromaticity{{0.64, 0.33}, {0.21, 0.71}, {0.15, 0.06}},
		Curve:     func() ToneCurve { return Gamma(563.0 / 256) },
	},
	{Name: "Rec709", White: D65xy, Primaries: srgbPrimaries, Curve: rec709Curve},
	{
		Name:      "Rec2020",
		White:     D65xy,
		Primaries: [3]Chromaticity{{0.708, 0.292}, {0.170, 0.797}, {0.131, 0.046}},
		Curve:     rec2020Curve,
	},
	{
		Name:      "DCIP3",
		White:     DCIxy,
		Primaries: [3]Chromaticity{{0.680, 0.320}, {0.265, 0.690}, {0.150, 0.060}},
		Curve:     func() ToneCurve { return Gamma(2.6) },
	},
	{
		Name:      "ProPhotoRGB",
		White:     D50xy,
		Primaries: [3]Chromaticity{{0.7347, 0.2653}, {0.1596, 0.8404}, {0.0366, 0.0001}},
		Curve:     romm,
	},
}

// foldKey normalises a profile name for case-insensitive lookup.
func foldKey(name string) string {
	return cases.Fold().String(name)
}

var namedIndex = func() map[string]int {
	m := make(map[string]int, len(namedProfiles))
	for i, p := range namedProfiles {
		m[foldKey(p.Name)] = i
	}
	return m
}()

// Names returns the built-in profile names in table order.
func Names() []string {
	names := make([]string, len(namedProfiles))
	for i, p := range namedProfiles {
		names[i] = p.Name
	}
	return names
}

// Named returns the built-in profiles.
func Named() []NamedProfile {
	return slices.Clone(namedProfiles)
}

// IsNamed reports whether name matches a built-in profile, ignoring case.
func IsNamed(name string) bool {
	_, ok := namedIndex[foldKey(name)]
	return ok
}

// Lookup builds the built-in profile called name, ignoring case.
func Lookup(name string) (*RGBProfile, error) {
	i, ok := namedIndex[foldKey(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	np := namedProfiles[i]
	return FromPrimaries(np.Name, np.White, np.Primaries, np.Curve())
}
