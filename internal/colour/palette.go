// Package colour provides palette extraction and colour handling for swatchgrab.
package colour

import (
	"encoding/json"
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB represents a colour with 8-bit red, green and blue components.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns the RGB colour as a lowercase hex string (e.g., "#1a2b3c").
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HexName returns the uppercase hex digits of the colour without the leading
// '#' (e.g., "FF00AA"). This is the derived swatch name used when exporting.
func (c RGB) HexName() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// Brightness returns the unweighted channel sum r+g+b, the ordering and
// bucketing key used by the quantizer. Not a perceptual luminance value.
func (c RGB) Brightness() int {
	return int(c.R) + int(c.G) + int(c.B)
}

// ParseHex parses a hex colour string with or without a leading '#'.
func ParseHex(s string) (RGB, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	parsed, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	r, g, b := parsed.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Palette represents an ordered collection of colours extracted from an image.
// Order is brightness-ascending and is part of the contract: consumers display
// and export colours in this order.
type Palette struct {
	Colors []RGB
}

// NewPalette creates a new Palette with the given colours.
func NewPalette(colors []RGB) *Palette {
	return &Palette{Colors: colors}
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colors)
}

// ToHex converts the palette colours to hex strings.
func (p *Palette) ToHex() []string {
	hexColors := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		hexColors[i] = c.Hex()
	}
	return hexColors
}

// HSL represents a colour in HSL space, included in JSON output for
// consumers that want a perceptual handle on each swatch.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// ColourJSON represents a single colour in JSON output format.
type ColourJSON struct {
	Hex string `json:"hex"`
	RGB RGB    `json:"rgb"`
	HSL HSL    `json:"hsl"`
}

// PaletteJSON represents the palette in JSON output format.
type PaletteJSON struct {
	Count   int          `json:"count"`
	Colours []ColourJSON `json:"colours"`
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	colours := make([]ColourJSON, len(p.Colors))
	for i, c := range p.Colors {
		cf := colorful.Color{
			R: float64(c.R) / 255.0,
			G: float64(c.G) / 255.0,
			B: float64(c.B) / 255.0,
		}
		h, s, l := cf.Hsl()
		colours[i] = ColourJSON{
			Hex: c.Hex(),
			RGB: c,
			HSL: HSL{H: h, S: s, L: l},
		}
	}

	return json.MarshalIndent(PaletteJSON{
		Count:   len(p.Colors),
		Colours: colours,
	}, "", "  ")
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if len(p.Colors) == 0 {
		return "Empty palette"
	}

	result := fmt.Sprintf("Palette with %d colours:\n", len(p.Colors))
	for i, c := range p.Colors {
		result += fmt.Sprintf("  %2d: %s (%s)\n", i+1, c.Hex(), c.String())
	}
	return result
}

// Get returns the colour at the specified index.
func (p *Palette) Get(index int) (RGB, error) {
	if index < 0 || index >= len(p.Colors) {
		return RGB{}, fmt.Errorf("index out of bounds: %d (palette has %d colours)", index, len(p.Colors))
	}
	return p.Colors[index], nil
}
