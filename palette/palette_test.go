package palette

import (
	"encoding/json"
	"testing"

	"github.com/color-game/paletton/models"
	"github.com/color-game/paletton/paletton"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pastelRed = []string{"#FFAAAA", "#D46A6A", "#AA3939", "#801515", "#550000"}

func newPaletton(t *testing.T) *paletton.Paletton {
	t.Helper()
	p, err := paletton.New()
	require.NoError(t, err)
	return p
}

func TestGenerateMonoPastel(t *testing.T) {
	pal, err := Generate(newPaletton(t), models.NewColor(), "mono", "pastel")
	require.NoError(t, err)

	assert.Equal(t, pastelRed, pal.HexValues())
	assert.Equal(t, 5, pal.Len())
	assert.Equal(t, "mono", pal.Scheme())
	assert.Equal(t, "pastel", pal.Preset())
	assert.Equal(t, "#FF0000", pal.Base().Hex())
	assert.NotEqual(t, uuid.Nil, pal.ID())
}

func TestPaletteIteratesTwice(t *testing.T) {
	pal, err := Generate(newPaletton(t), models.NewColor(), "mono", "pastel")
	require.NoError(t, err)

	assert.Equal(t, pal.HexValues(), pal.HexValues())

	var slots []int
	for slot := range pal.All() {
		slots = append(slots, slot)
	}
	assert.Equal(t, []int{0, 0, 0, 0, 0}, slots)
}

func TestAllStopsEarly(t *testing.T) {
	pal, err := Generate(newPaletton(t), models.NewColor(), "mono", "pastel")
	require.NoError(t, err)

	n := 0
	for range pal.All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestTonesIsACopy(t *testing.T) {
	pal, err := Generate(newPaletton(t), models.NewColor(), "mono", "default")
	require.NoError(t, err)

	tones := pal.Tones()
	require.Len(t, tones, 1)
	require.Len(t, tones[0], 4)
	tones[0][0] = models.FromHSV(models.HSV{Hue: 120, Saturation: 1, Value: 1})

	assert.Equal(t, "#FF0000", pal.Tones()[0][0].Hex())
}

func TestPlaceholderSchemesYieldNoSlots(t *testing.T) {
	for _, name := range []string{"complimentary", "complementary", "triad", "tetrad", "analogic"} {
		t.Run(name, func(t *testing.T) {
			pal, err := Generate(newPaletton(t), models.NewColor(), name, "pastel")
			require.NoError(t, err)
			assert.Zero(t, pal.Len())
			assert.Empty(t, pal.HexValues())
		})
	}
}

func TestGenerateErrors(t *testing.T) {
	p := newPaletton(t)

	_, err := Generate(p, models.NewColor(), "square", "pastel")
	assert.ErrorIs(t, err, models.ErrUnknownScheme)

	_, err = Generate(p, models.NewColor(), "mono", "neon")
	assert.ErrorIs(t, err, models.ErrUnknownPreset)

	_, err = Generate(p, models.NewColor(), "triad", "neon")
	assert.ErrorIs(t, err, models.ErrUnknownPreset)
}

func TestSchemes(t *testing.T) {
	assert.Equal(t, []string{"analogic", "complementary", "complimentary", "mono", "tetrad", "triad"}, Schemes())

	fn, err := Scheme("mono")
	require.NoError(t, err)
	assert.Equal(t, []models.Color{models.NewColor()}, fn(nil, models.NewColor()))
}

func TestMarshalJSON(t *testing.T) {
	pal, err := Generate(newPaletton(t), models.NewColor(), "mono", "pastel")
	require.NoError(t, err)

	data, err := json.Marshal(pal)
	require.NoError(t, err)

	var resp models.PaletteResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	assert.Equal(t, pal.ID().String(), resp.ID)
	assert.Equal(t, "mono", resp.Mode)
	assert.Equal(t, 5, resp.Count)
	assert.Equal(t, "#FF0000", resp.Seed.Hex.Value)
	require.Len(t, resp.Tones, 1)
	assert.Equal(t, "#D46A6A", resp.Tones[0][1].Hex.Value)
	assert.Equal(t, "rgb(212,106,106)", resp.Tones[0][1].RGB.Value)
}
