package paletton

import (
	"testing"

	"github.com/color-game/paletton/models"
	"github.com/color-game/paletton/ryb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	assert.Len(t, p.Anchors(), 24)
	assert.Len(t, p.Expanded(), 360)
	assert.Equal(t, 24, p.Offsets().Len())
	assert.Equal(t, []string{"dark", "default", "full_colors", "light", "pastel"}, p.PresetNames())
}

func TestHueToRGB(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	assert.Equal(t, models.RGB8{R: 27, G: 27, B: 179}, p.HueToRGB(255))
	assert.Equal(t, models.RGB8{R: 31, G: 26, B: 178}, p.HueToRGB(257))
	assert.Equal(t, models.RGB8{R: 31, G: 26, B: 178}, p.HueToRGB(256.6))
	assert.Equal(t, p.HueToRGB(0), p.HueToRGB(360))
	assert.Equal(t, p.HueToRGB(345), p.HueToRGB(-15))
}

func TestWheelHue(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	for d, c := range DefaultWheel() {
		assert.Equal(t, d, p.WheelHue(models.FromRGB8(c)), "anchor %d", d)
	}

	assert.Equal(t, 300, p.WheelHue(models.FromRGB8(models.RGB8{R: 120, B: 106})))
	assert.Equal(t, 0, p.WheelHue(models.NewColor()))

	// 74.5 rounds to 74, below the 150 anchor's hue of 75.
	assert.Equal(t, 135, p.WheelHue(models.FromHSV(models.HSV{Hue: 74.5, Saturation: 1, Value: 1})))
}

func TestVariationsPastel(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	colors, err := p.Variations(models.NewColor(), "pastel")
	require.NoError(t, err)

	got := make([]string, len(colors))
	for i, c := range colors {
		got[i] = c.Hex()
	}
	assert.Equal(t, []string{"#FFAAAA", "#D46A6A", "#AA3939", "#801515", "#550000"}, got)
}

func TestUnknownPreset(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	_, err = p.Variations(models.NewColor(), "neon")
	assert.ErrorIs(t, err, models.ErrUnknownPreset)
	assert.ErrorContains(t, err, `"neon"`)
}

func TestOptions(t *testing.T) {
	custom := map[string]Preset{
		"pastel": {{1, 1}},
		"single": {{-1, -0.5}},
	}
	p, err := New(
		WithWheel(RYBWheel(ryb.Cubic{}, 30)),
		WithPresets(custom),
		WithPolicy(MultiplierPolicy{}),
		WithShader(HSVShader{}),
	)
	require.NoError(t, err)

	assert.Len(t, p.Anchors(), 12)
	assert.Len(t, p.Expanded(), 360)
	assert.Contains(t, p.PresetNames(), "single")
	assert.Contains(t, p.PresetNames(), "full_colors")

	pastel, err := p.Preset("pastel")
	require.NoError(t, err)
	assert.Equal(t, Preset{{1, 1}}, pastel)

	colors, err := p.Variations(models.NewColor(), "single")
	require.NoError(t, err)
	require.Len(t, colors, 1)
	assert.Equal(t, "#800000", colors[0].Hex())

	// The registry keeps its own copy.
	custom["single"][0] = Ratio{0, 0}
	again, err := p.Preset("single")
	require.NoError(t, err)
	assert.Equal(t, Preset{{-1, -0.5}}, again)
}

func TestNewRejectsEmptyWheel(t *testing.T) {
	_, err := New(WithWheel(Wheel{}))
	assert.Error(t, err)
}

func TestDefaultsAreFresh(t *testing.T) {
	w := DefaultWheel()
	w[0] = models.RGB8{}
	assert.Equal(t, models.RGB8{R: 255}, DefaultWheel()[0])

	presets := DefaultPresets()
	presets["pastel"][0] = Ratio{}
	assert.Equal(t, Ratio{0.333, 1}, DefaultPresets()["pastel"][0])
}
