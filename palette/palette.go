// Package palette turns a base color, a scheme and a preset into an ordered
// set of tone sequences and renders them as text.
package palette

import (
	"encoding/json"
	"iter"

	"github.com/color-game/paletton/models"
	"github.com/color-game/paletton/paletton"
	"github.com/google/uuid"
)

// Palette is an immutable, fully materialized set of tone sequences, one per
// scheme slot. It may be iterated and rendered any number of times.
type Palette struct {
	id     uuid.UUID
	scheme string
	preset string
	base   models.Color
	tones  [][]models.Color
}

// Generate resolves scheme into slots and expands every slot through the
// named preset.
func Generate(p *paletton.Paletton, base models.Color, scheme, preset string) (*Palette, error) {
	fn, err := Scheme(scheme)
	if err != nil {
		return nil, err
	}
	if _, err := p.Preset(preset); err != nil {
		return nil, err
	}

	slots := fn(p, base)
	tones := make([][]models.Color, 0, len(slots))
	for _, slot := range slots {
		colors, err := p.Variations(slot, preset)
		if err != nil {
			return nil, err
		}
		tones = append(tones, colors)
	}

	return &Palette{
		id:     uuid.New(),
		scheme: scheme,
		preset: preset,
		base:   base,
		tones:  tones,
	}, nil
}

func (pal *Palette) ID() uuid.UUID {
	return pal.id
}

func (pal *Palette) Scheme() string {
	return pal.scheme
}

func (pal *Palette) Preset() string {
	return pal.preset
}

func (pal *Palette) Base() models.Color {
	return pal.base
}

// Tones returns a copy of the tone sequences.
func (pal *Palette) Tones() [][]models.Color {
	out := make([][]models.Color, len(pal.tones))
	for i, t := range pal.tones {
		out[i] = append([]models.Color(nil), t...)
	}
	return out
}

// All yields every color with its slot index, slot by slot and then in
// variation order.
func (pal *Palette) All() iter.Seq2[int, models.Color] {
	return func(yield func(int, models.Color) bool) {
		for slot, tones := range pal.tones {
			for _, c := range tones {
				if !yield(slot, c) {
					return
				}
			}
		}
	}
}

// Len returns the total number of colors across all slots.
func (pal *Palette) Len() int {
	n := 0
	for _, t := range pal.tones {
		n += len(t)
	}
	return n
}

func (pal *Palette) HexValues() []string {
	out := make([]string, 0, pal.Len())
	for _, c := range pal.All() {
		out = append(out, c.Hex())
	}
	return out
}

// Response builds the JSON document for the palette.
func (pal *Palette) Response(decimals int) models.PaletteResponse {
	tones := make([][]models.ColorView, len(pal.tones))
	for i, t := range pal.tones {
		tones[i] = make([]models.ColorView, len(t))
		for j, c := range t {
			tones[i][j] = models.NewColorView(c, decimals)
		}
	}

	return models.PaletteResponse{
		ID:     pal.id.String(),
		Mode:   pal.scheme,
		Preset: pal.preset,
		Count:  pal.Len(),
		Seed:   models.NewColorView(pal.base, decimals),
		Tones:  tones,
	}
}

func (pal *Palette) MarshalJSON() ([]byte, error) {
	return json.Marshal(pal.Response(-1))
}
