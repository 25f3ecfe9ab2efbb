package paletton

import (
	"testing"

	"github.com/color-game/paletton/models"
	"github.com/color-game/paletton/ryb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandDefaultWheel(t *testing.T) {
	anchors := DefaultWheel()
	expanded, err := Expand(anchors)
	require.NoError(t, err)

	require.Len(t, expanded, 360)
	for d := 0; d < 360; d++ {
		_, ok := expanded[d]
		assert.True(t, ok, "degree %d missing", d)
	}

	for d, c := range anchors {
		assert.Equal(t, c, expanded[d], "anchor %d drifted", d)
	}

	assert.Equal(t, models.RGB8{R: 27, G: 27, B: 179}, expanded[255])
	assert.Equal(t, models.RGB8{R: 31, G: 26, B: 178}, expanded[257])
}

func TestExpandWrapsAround(t *testing.T) {
	// 345 -> 0 is the closing segment: 232 -> 255 red, 56 -> 0 blue.
	expanded, err := Expand(DefaultWheel())
	require.NoError(t, err)

	assert.Equal(t, models.RGB8{R: 253, G: 0, B: 4}, expanded[359])
}

func TestExpandSparseWheel(t *testing.T) {
	anchors := Wheel{
		90:  {R: 0, G: 0, B: 0},
		180: {R: 180, G: 90, B: 0},
	}
	expanded, err := Expand(anchors)
	require.NoError(t, err)

	require.Len(t, expanded, 360)
	assert.Equal(t, anchors[90], expanded[90])
	assert.Equal(t, anchors[180], expanded[180])
	assert.Equal(t, models.RGB8{R: 90, G: 45, B: 0}, expanded[135])
	// The closing segment spans 270 degrees, from 180 through 0 to 89.
	assert.Equal(t, models.RGB8{R: 120, G: 60, B: 0}, expanded[270])
	assert.Equal(t, models.RGB8{R: 1, G: 0, B: 0}, expanded[89])
}

func TestExpandSingleAnchor(t *testing.T) {
	expanded, err := Expand(Wheel{42: {R: 1, G: 2, B: 3}})
	require.NoError(t, err)

	require.Len(t, expanded, 360)
	for d := range expanded {
		assert.Equal(t, models.RGB8{R: 1, G: 2, B: 3}, expanded[d])
	}
}

func TestExpandRejectsBadWheels(t *testing.T) {
	_, err := Expand(Wheel{})
	assert.Error(t, err)

	_, err = Expand(Wheel{360: {}})
	assert.ErrorIs(t, err, models.ErrOutOfRange)

	_, err = Expand(Wheel{-15: {}})
	assert.ErrorIs(t, err, models.ErrOutOfRange)
}

func TestWheelDegreesAndClone(t *testing.T) {
	w := Wheel{30: {}, 0: {}, 15: {}}
	assert.Equal(t, []int{0, 15, 30}, w.Degrees())

	c := w.Clone()
	c[45] = models.RGB8{R: 9}
	assert.Len(t, w, 3)
	assert.Len(t, c, 4)
}

func TestRYBWheel(t *testing.T) {
	for _, conv := range []ryb.Converter{ryb.Physical{}, ryb.Cubic{}} {
		w := RYBWheel(conv, 15)
		require.Len(t, w, 24)
		assert.Equal(t, models.RGB8{R: 255}, w[0], "red anchor")
		assert.Equal(t, models.RGB8{R: 255, G: 255}, w[120], "yellow anchor")

		expanded, err := Expand(w)
		require.NoError(t, err)
		assert.Len(t, expanded, 360)
	}

	assert.Equal(t, models.RGB8{B: 255}, RYBWheel(ryb.Physical{}, 15)[240])
	assert.Len(t, RYBWheel(ryb.Physical{}, 0), 24)
}

func TestRoundHalfToEven(t *testing.T) {
	tests := []struct {
		x    float64
		want uint8
	}{
		{0.5, 0},
		{1.5, 2},
		{2.5, 2},
		{128.5, 128},
		{127.5, 128},
		{-3, 0},
		{300, 255},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, round8(tt.x), "round8(%v)", tt.x)
	}
}

func TestRoundDegree(t *testing.T) {
	tests := []struct {
		hue  float64
		want int
	}{
		{74.5, 74},
		{75.5, 76},
		{359.5, 0},
		{-0.5, 0},
		{-1, 359},
		{720.2, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, roundDegree(tt.hue), "roundDegree(%v)", tt.hue)
	}
}
