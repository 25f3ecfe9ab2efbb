// Package paletton builds color schemes the way paletton.com does: hues are
// placed on a perceptually spaced color wheel and every base color is
// expanded into tonal variations by saturation/value presets.
package paletton

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/color-game/paletton/models"
)

// Paletton owns one frozen wheel, its expansion and hue offset table, and a
// preset registry. It is safe for concurrent readers once built.
type Paletton struct {
	anchors  Wheel
	expanded Wheel
	offsets  *HueOffsets
	presets  map[string]Preset
	policy   RatioPolicy
	shader   Shader
	logger   *slog.Logger
}

type Option func(*Paletton)

// WithWheel replaces the built-in anchor wheel.
func WithWheel(w Wheel) Option {
	return func(p *Paletton) {
		p.anchors = w.Clone()
	}
}

// WithPresets adds presets to the registry, replacing built-ins of the same
// name.
func WithPresets(presets map[string]Preset) Option {
	return func(p *Paletton) {
		for name, preset := range presets {
			p.presets[name] = slices.Clone(preset)
		}
	}
}

func WithPolicy(policy RatioPolicy) Option {
	return func(p *Paletton) {
		p.policy = policy
	}
}

func WithShader(shader Shader) Option {
	return func(p *Paletton) {
		p.shader = shader
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Paletton) {
		p.logger = logger
	}
}

// New builds a Paletton from the built-in wheel and presets, the absolute
// ratio policy and the blend shader, then applies opts.
func New(opts ...Option) (*Paletton, error) {
	p := &Paletton{
		anchors: DefaultWheel(),
		presets: DefaultPresets(),
		policy:  AbsolutePolicy{},
		shader:  BlendShader{},
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.New(slog.DiscardHandler)
	}

	expanded, err := Expand(p.anchors)
	if err != nil {
		return nil, err
	}
	p.expanded = expanded
	p.offsets = NewHueOffsets(p.anchors, p.logger)

	p.logger.Debug("color wheel ready",
		"anchors", len(p.anchors),
		"hues", p.offsets.Len(),
		"presets", len(p.presets))

	return p, nil
}

func (p *Paletton) Anchors() Wheel {
	return p.anchors.Clone()
}

func (p *Paletton) Expanded() Wheel {
	return p.expanded.Clone()
}

func (p *Paletton) Offsets() *HueOffsets {
	return p.offsets
}

// Preset looks up a preset by name.
func (p *Paletton) Preset(name string) (Preset, error) {
	preset, ok := p.presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownPreset, name)
	}
	return slices.Clone(preset), nil
}

// PresetNames returns the registered preset names in sorted order.
func (p *Paletton) PresetNames() []string {
	names := make([]string, 0, len(p.presets))
	for name := range p.presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// HueToRGB returns the expanded wheel sample at hue, rounded to a whole
// degree and wrapped onto the circle.
func (p *Paletton) HueToRGB(hue float64) models.RGB8 {
	return p.expanded[roundDegree(hue)]
}

// WheelHue returns the wheel degree matching the HSV hue of c.
func (p *Paletton) WheelHue(c models.Color) int {
	return p.offsets.Lookup(roundDegree(c.HSV().Hue))
}

// Variations expands c into one color per entry of the named preset, in
// preset order.
func (p *Paletton) Variations(c models.Color, preset string) ([]models.Color, error) {
	ratios, err := p.Preset(preset)
	if err != nil {
		return nil, err
	}

	base := c.RGB8()
	shades := Variations(base, ResolveSV(base, ratios, p.policy), p.shader)

	colors := make([]models.Color, len(shades))
	for i, s := range shades {
		colors[i] = models.FromRGB8(s)
	}
	return colors, nil
}
