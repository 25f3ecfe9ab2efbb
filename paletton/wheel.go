package paletton

import (
	"fmt"
	"math"
	"slices"

	"github.com/color-game/paletton/models"
	"gonum.org/v1/gonum/floats"
)

// Wheel maps an integer degree in [0,360) to an 8-bit RGB sample.
type Wheel map[int]models.RGB8

// Degrees returns the wheel's keys in ascending order.
func (w Wheel) Degrees() []int {
	degrees := make([]int, 0, len(w))
	for d := range w {
		degrees = append(degrees, d)
	}
	slices.Sort(degrees)
	return degrees
}

func (w Wheel) Clone() Wheel {
	out := make(Wheel, len(w))
	for d, c := range w {
		out[d] = c
	}
	return out
}

// Validate checks that the wheel is non-empty and keyed by degrees in [0,360).
func (w Wheel) Validate() error {
	if len(w) == 0 {
		return fmt.Errorf("color wheel has no anchors")
	}
	for d := range w {
		if d < 0 || d >= 360 {
			return fmt.Errorf("%w: wheel degree %d", models.ErrOutOfRange, d)
		}
	}
	return nil
}

// Expand interpolates an anchor wheel into a 360-entry wheel. Each channel is
// interpolated linearly between consecutive anchors, the last anchor wrapping
// back to the first, with one sample per degree and the segment's end point
// excluded. Anchors spaced every 15 degrees produce 15 samples per segment.
// The sample at an anchor degree is the anchor itself.
func Expand(anchors Wheel) (Wheel, error) {
	if err := anchors.Validate(); err != nil {
		return nil, err
	}

	degrees := anchors.Degrees()
	out := make(Wheel, 360)

	for i, start := range degrees {
		stop := degrees[(i+1)%len(degrees)]
		steps := stop - start
		if steps <= 0 {
			steps += 360
		}

		from, to := anchors[start], anchors[stop]
		r := linspace(float64(from.R), float64(to.R), steps)
		g := linspace(float64(from.G), float64(to.G), steps)
		b := linspace(float64(from.B), float64(to.B), steps)

		for k := range steps {
			out[(start+k)%360] = models.RGB8{R: round8(r[k]), G: round8(g[k]), B: round8(b[k])}
		}
	}

	return out, nil
}

// linspace returns num evenly spaced samples from start towards stop,
// excluding stop.
func linspace(start, stop float64, num int) []float64 {
	return floats.Span(make([]float64, num+1), start, stop)[:num]
}

// Halves round to even throughout the wheel and shader arithmetic.
func round8(x float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.RoundToEven(x))))
}

// roundDegree rounds a hue to a whole degree in [0,360).
func roundDegree(hue float64) int {
	d := int(math.RoundToEven(hue)) % 360
	if d < 0 {
		d += 360
	}
	return d
}
