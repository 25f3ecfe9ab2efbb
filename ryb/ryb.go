// Package ryb converts Red-Yellow-Blue pigment triples to RGB.
//
// Two models are provided. Physical mixes pigments with fixed linear rules;
// Cubic interpolates between measured corner colors of the RYB cube. They
// disagree numerically everywhere except the cube corners they share, and
// neither reproduces the built-in paletton wheel.
package ryb

import (
	"fmt"
	"math"

	"github.com/color-game/paletton/models"
)

// Converter maps an RYB triple with components in [0,1] to normalized RGB.
type Converter interface {
	ToRGB(r, y, b float64) models.RGB
}

// ByName resolves "physical" or "cubic".
func ByName(name string) (Converter, error) {
	switch name {
	case "physical":
		return Physical{}, nil
	case "cubic":
		return Cubic{}, nil
	}
	return nil, fmt.Errorf("unknown ryb model %q", name)
}

// Physical removes the shared black component, mixes the remaining pigments
// into RGB, rescales to the input's peak, then adds the white component back.
type Physical struct{}

func (Physical) ToRGB(r, y, b float64) models.RGB {
	hi := max(r, y, b)
	lo := min(r, y, b)

	if hi == 0 {
		return models.RGB{Red: 1, Green: 1, Blue: 1}
	}
	if lo == 1 {
		return models.RGB{}
	}

	white := 1 - hi
	r, y, b = r-lo, y-lo, b-lo
	peak := max(r, y, b)

	green := min(y, b)
	outR := r + y - green
	outG := y + 2*green
	outB := 2 * (b - green)

	if outPeak := max(outR, outG, outB); outPeak > 0 {
		n := peak / outPeak
		outR *= n
		outG *= n
		outB *= n
	}

	return models.RGB{Red: outR + white, Green: outG + white, Blue: outB + white}.Clamped()
}

// Cubic is the trilinear interpolation of the RYB cube with smoothstep
// easing on every axis.
type Cubic struct{}

// Corner colors indexed [red][yellow][blue].
var cubeCorners = [2][2][2][3]float64{
	{
		{{1, 1, 1}, {0.163, 0.373, 0.6}}, // white, blue
		{{1, 1, 0}, {0, 0.66, 0.2}},      // yellow, green
	},
	{
		{{1, 0, 0}, {0.5, 0, 0.5}},     // red, purple
		{{1, 0.5, 0}, {0.2, 0.094, 0}}, // orange, black
	},
}

func (Cubic) ToRGB(r, y, b float64) models.RGB {
	var out [3]float64
	for ch := range out {
		x0 := cubicInt(b, cubeCorners[0][0][0][ch], cubeCorners[0][0][1][ch])
		x1 := cubicInt(b, cubeCorners[0][1][0][ch], cubeCorners[0][1][1][ch])
		x2 := cubicInt(b, cubeCorners[1][0][0][ch], cubeCorners[1][0][1][ch])
		x3 := cubicInt(b, cubeCorners[1][1][0][ch], cubeCorners[1][1][1][ch])
		y0 := cubicInt(y, x0, x1)
		y1 := cubicInt(y, x2, x3)
		out[ch] = cubicInt(r, y0, y1)
	}
	return models.RGB{Red: out[0], Green: out[1], Blue: out[2]}.Clamped()
}

func cubicInt(t, a, b float64) float64 {
	t = math.Max(0, math.Min(1, t))
	w := t * t * (3 - 2*t)
	return a + w*(b-a)
}
