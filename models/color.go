package models

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a color with each channel normalized to [0,1].
type RGB struct {
	Red   float64 `json:"r" yaml:"r"`
	Green float64 `json:"g" yaml:"g"`
	Blue  float64 `json:"b" yaml:"b"`
}

// Validate reports ErrOutOfRange when a channel falls outside [0,1].
func (rgb RGB) Validate() error {
	for _, ch := range [...]float64{rgb.Red, rgb.Green, rgb.Blue} {
		if math.IsNaN(ch) || ch < 0 || ch > 1 {
			return fmt.Errorf("%w: rgb(%g, %g, %g)", ErrOutOfRange, rgb.Red, rgb.Green, rgb.Blue)
		}
	}
	return nil
}

// Clamped returns rgb with every channel limited to [0,1].
func (rgb RGB) Clamped() RGB {
	return RGB{Red: clamp01(rgb.Red), Green: clamp01(rgb.Green), Blue: clamp01(rgb.Blue)}
}

// RGB8 is a color with 8-bit integer channels, as sampled on a color wheel.
type RGB8 struct {
	R, G, B uint8
}

func (c RGB8) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// Max returns the largest channel.
func (c RGB8) Max() uint8 {
	return max(c.R, c.G, c.B)
}

// RGB normalizes the channels to [0,1].
func (c RGB8) RGB() RGB {
	return RGB{Red: float64(c.R) / 255, Green: float64(c.G) / 255, Blue: float64(c.B) / 255}
}

// HSV holds hue in degrees [0,360) with saturation and value in [0,1].
type HSV struct {
	Hue        float64 `json:"h" yaml:"h"`
	Saturation float64 `json:"s" yaml:"s"`
	Value      float64 `json:"v" yaml:"v"`
}

// Fraction returns the hue as a fraction of a full turn, in [0,1).
func (hsv HSV) Fraction() float64 {
	return hsv.Hue / 360
}

// Validate reports ErrOutOfRange when saturation or value fall outside [0,1].
// Hue is accepted at any magnitude and wrapped onto the circle.
func (hsv HSV) Validate() error {
	if math.IsNaN(hsv.Hue) || math.IsInf(hsv.Hue, 0) ||
		math.IsNaN(hsv.Saturation) || hsv.Saturation < 0 || hsv.Saturation > 1 ||
		math.IsNaN(hsv.Value) || hsv.Value < 0 || hsv.Value > 1 {
		return fmt.Errorf("%w: hsv(%g, %g, %g)", ErrOutOfRange, hsv.Hue, hsv.Saturation, hsv.Value)
	}
	return nil
}

// Color is an immutable color value stored canonically as HSV. Every
// transformation returns a new Color.
type Color struct {
	hsv HSV
}

// NewColor returns the default color, pure red.
func NewColor() Color {
	return Color{hsv: HSV{Hue: 0, Saturation: 1, Value: 1}}
}

// FromHSV builds a Color from HSV. The hue wraps into [0,360); saturation
// and value are clamped to [0,1].
func FromHSV(hsv HSV) Color {
	return Color{hsv: HSV{
		Hue:        wrapHue(hsv.Hue),
		Saturation: clamp01(hsv.Saturation),
		Value:      clamp01(hsv.Value),
	}}
}

// FromRGB builds a Color from normalized RGB, clamping each channel to [0,1].
func FromRGB(rgb RGB) Color {
	rgb = rgb.Clamped()
	h, s, v := colorful.Color{R: rgb.Red, G: rgb.Green, B: rgb.Blue}.Hsv()
	return Color{hsv: HSV{Hue: wrapHue(h), Saturation: s, Value: v}}
}

// FromRGB8 builds a Color from 8-bit channels.
func FromRGB8(c RGB8) Color {
	return FromRGB(c.RGB())
}

// FromHex parses "#RGB" or "#RRGGBB" (case-insensitive, '#' optional).
func FromHex(s string) (Color, error) {
	rgb, err := HexToRGB(s)
	if err != nil {
		return Color{}, err
	}
	return FromRGB(rgb), nil
}

// RandomColor returns a color with uniformly random 8-bit channels.
func RandomColor(r *rand.Rand) Color {
	return FromRGB8(RGB8{R: uint8(r.Intn(256)), G: uint8(r.Intn(256)), B: uint8(r.Intn(256))})
}

func (c Color) HSV() HSV {
	return c.hsv
}

func (c Color) RGB() RGB {
	col := colorful.Hsv(c.hsv.Hue, c.hsv.Saturation, c.hsv.Value)
	return RGB{Red: col.R, Green: col.G, Blue: col.B}.Clamped()
}

// RGB8 returns the color rounded to 8-bit channels.
func (c Color) RGB8() RGB8 {
	rgb := c.RGB()
	return RGB8{R: to8(rgb.Red), G: to8(rgb.Green), B: to8(rgb.Blue)}
}

func (c Color) Hex() string {
	return RGBToHex(c.RGB())
}

func (c Color) String() string {
	return c.Hex()
}

// WithSV returns a color with the same hue and the given saturation and value.
func (c Color) WithSV(saturation, value float64) Color {
	return FromHSV(HSV{Hue: c.hsv.Hue, Saturation: saturation, Value: value})
}

// Rounded returns a color whose HSV fields are rounded to the given number
// of decimal places. Negative decimals return c unchanged.
func (c Color) Rounded(decimals int) Color {
	if decimals < 0 {
		return c
	}
	return FromHSV(HSV{
		Hue:        Round(c.hsv.Hue, decimals),
		Saturation: Round(c.hsv.Saturation, decimals),
		Value:      Round(c.hsv.Value, decimals),
	})
}

// Round rounds x half away from zero to the given number of decimal places.
func Round(x float64, decimals int) float64 {
	if decimals < 0 {
		return x
	}
	p := math.Pow10(decimals)
	return math.Round(x*p) / p
}

func to8(x float64) uint8 {
	return uint8(math.Round(clamp01(x) * 255))
}

func clamp01(x float64) float64 {
	switch {
	case math.IsNaN(x), x < 0:
		return 0
	case x > 1:
		return 1
	}
	return x
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// A tiny negative hue lands on 360 after the addition.
	if h >= 360 {
		h = 0
	}
	return h
}
