package paletton

import (
	"github.com/color-game/paletton/models"
	"github.com/color-game/paletton/ryb"
)

// DefaultPreset is used when no preset is named.
const DefaultPreset = "pastel"

// DefaultWheel returns the built-in anchor wheel: 24 samples, one every 15
// degrees, spaced perceptually rather than by HSV hue. Red sits at 0,
// yellow at 120, green near 180 and blue at 255.
func DefaultWheel() Wheel {
	return Wheel{
		0:   {R: 255, G: 0, B: 0},
		15:  {R: 255, G: 43, B: 0},
		30:  {R: 255, G: 77, B: 0},
		45:  {R: 255, G: 104, B: 0},
		60:  {R: 255, G: 128, B: 0},
		75:  {R: 255, G: 153, B: 0},
		90:  {R: 255, G: 178, B: 0},
		105: {R: 255, G: 204, B: 0},
		120: {R: 255, G: 230, B: 0},
		135: {R: 224, G: 242, B: 0},
		150: {R: 166, G: 222, B: 0},
		165: {R: 89, G: 199, B: 0},
		180: {R: 0, G: 180, B: 20},
		195: {R: 0, G: 166, B: 98},
		210: {R: 0, G: 145, B: 142},
		225: {R: 0, G: 110, B: 163},
		240: {R: 8, G: 72, B: 174},
		255: {R: 27, G: 27, B: 179},
		270: {R: 57, G: 20, B: 174},
		285: {R: 90, G: 12, B: 166},
		300: {R: 125, G: 4, B: 158},
		315: {R: 163, G: 0, B: 140},
		330: {R: 204, G: 0, B: 107},
		345: {R: 232, G: 0, B: 56},
	}
}

// DefaultPresets returns a fresh copy of the built-in preset registry.
func DefaultPresets() map[string]Preset {
	return map[string]Preset{
		"pastel": {
			{0.333, 1}, {0.5, 0.831}, {0.665, 0.667}, {0.836, 0.502}, {1, 0.333},
		},
		"default": {
			{-1, -1}, {-1, -0.7}, {0.25, 1}, {0.5, 1},
		},
		"full_colors": {
			{-0.612, -1.064}, {-0.777, -1.015}, {-1, -1}, {-1, -0.773}, {-1, -0.608},
		},
		"dark": {
			{-1, -0.8}, {-1, -0.62}, {-1, -0.45}, {-1, -0.3}, {-1, -0.18},
		},
		"light": {
			{0.12, 1}, {0.22, 1}, {0.34, 1}, {0.47, 1}, {0.6, 1},
		},
	}
}

// RYBWheel samples the RYB hue circle every step degrees through conv and
// returns the samples as an anchor wheel. Pure pigment hues are taken from
// the HSV hexcone with red, yellow and blue standing in for red, green and
// blue.
func RYBWheel(conv ryb.Converter, step int) Wheel {
	if step <= 0 {
		step = 15
	}

	w := make(Wheel, 360/step+1)
	for d := 0; d < 360; d += step {
		pigment := models.FromHSV(models.HSV{Hue: float64(d), Saturation: 1, Value: 1}).RGB()
		w[d] = models.FromRGB(conv.ToRGB(pigment.Red, pigment.Green, pigment.Blue)).RGB8()
	}
	return w
}
