package models

import (
	"fmt"
	"strings"
)

// PaletteResponse is the JSON document emitted for a generated palette.
type PaletteResponse struct {
	ID     string        `json:"id"`
	Mode   string        `json:"mode"`
	Preset string        `json:"preset"`
	Count  int           `json:"count"`
	Seed   ColorView     `json:"seed"`
	Tones  [][]ColorView `json:"tones"`
}

// ColorView is the JSON representation of a single color.
type ColorView struct {
	Hex ColorHex `json:"hex"`
	RGB ColorRGB `json:"rgb"`
	HSV ColorHSV `json:"hsv"`
}

type ColorHex struct {
	Value string `json:"value"`
	Clean string `json:"clean"`
}

type ColorRGB struct {
	Fraction RGB    `json:"fraction"`
	R        int    `json:"r"`
	G        int    `json:"g"`
	B        int    `json:"b"`
	Value    string `json:"value"`
}

type ColorHSV struct {
	Fraction FractionHSV `json:"fraction"`
	Value    string      `json:"value"`
	H        int         `json:"h"`
	S        int         `json:"s"`
	V        int         `json:"v"`
}

type FractionHSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// NewColorView builds the JSON view of c. Negative decimals keep full
// precision in the fractional fields.
func NewColorView(c Color, decimals int) ColorView {
	hex := c.Hex()
	rgb := c.RGB()
	rgb8 := c.RGB8()
	hsv := c.HSV()

	h := int(Round(hsv.Hue, 0)) % 360
	s := int(Round(hsv.Saturation*100, 0))
	v := int(Round(hsv.Value*100, 0))

	return ColorView{
		Hex: ColorHex{
			Value: hex,
			Clean: strings.TrimPrefix(hex, "#"),
		},
		RGB: ColorRGB{
			Fraction: RGB{
				Red:   Round(rgb.Red, decimals),
				Green: Round(rgb.Green, decimals),
				Blue:  Round(rgb.Blue, decimals),
			},
			R:     int(rgb8.R),
			G:     int(rgb8.G),
			B:     int(rgb8.B),
			Value: rgb8.String(),
		},
		HSV: ColorHSV{
			Fraction: FractionHSV{
				H: Round(hsv.Fraction(), decimals),
				S: Round(hsv.Saturation, decimals),
				V: Round(hsv.Value, decimals),
			},
			Value: fmt.Sprintf("hsv(%d, %d%%, %d%%)", h, s, v),
			H:     h,
			S:     s,
			V:     v,
		},
	}
}
