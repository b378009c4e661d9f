package imaging

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/chart-gridlines/internal/gridlines"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// RGBAColor represents an RGBA color with 8-bit components including alpha.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex  string    `json:"hex"`  // Hex format "#RRGGBB" (no alpha)
	RGB  RGBColor  `json:"rgb"`  // RGB components
	RGBA RGBAColor `json:"rgba"` // RGBA components with alpha
	HSL  HSLColor  `json:"hsl"`  // HSL representation
}

// DescribeColor parses a "#RRGGBB" string and returns it in every
// representation. opacity (0-1) becomes the alpha component.
//
// Returns an error if hex is not a valid 6-digit hex color or opacity is
// outside [0, 1].
func DescribeColor(hex string, opacity float64) (*ColorResult, error) {
	if opacity < 0 || opacity > 1 || math.IsNaN(opacity) {
		return nil, fmt.Errorf("opacity %v outside [0,1]", opacity)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", hex, err)
	}

	r, g, b := c.RGB255()
	a := uint8(math.Round(opacity * 255))
	h, s, l := c.Hsl()

	return &ColorResult{
		Hex:  fmt.Sprintf("#%02X%02X%02X", r, g, b),
		RGB:  RGBColor{R: r, G: g, B: b},
		RGBA: RGBAColor{R: r, G: g, B: b, A: a},
		HSL: HSLColor{
			H: int(math.Round(h)),
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
	}, nil
}

// StrokeColor returns the fixed gridline stroke with the fixed opacity
// applied as alpha.
func StrokeColor() (color.NRGBA, error) {
	desc, err := DescribeColor(gridlines.StrokeColor, gridlines.Opacity)
	if err != nil {
		return color.NRGBA{}, err
	}
	return color.NRGBA{R: desc.RGBA.R, G: desc.RGBA.G, B: desc.RGBA.B, A: desc.RGBA.A}, nil
}

// ParseBackground parses a "#RRGGBB" or "#RRGGBBAA" background color.
// An empty string means opaque white.
func ParseBackground(hex string) (color.NRGBA, error) {
	if hex == "" {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}, nil
	}
	alpha := uint8(255)
	if len(hex) == 9 && hex[0] == '#' {
		var a uint8
		if _, err := fmt.Sscanf(hex[7:], "%02x", &a); err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid alpha in %q: %w", hex, err)
		}
		alpha = a
		hex = hex[:7]
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}
