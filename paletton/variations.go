package paletton

import (
	"fmt"
	"math"

	"github.com/color-game/paletton/models"
)

// Ratio is one preset entry. Non-negative ratios are interpreted by a
// RatioPolicy; negative ratios always scale the base color's own
// saturation or value by their magnitude.
type Ratio struct {
	Saturation float64 `yaml:"saturation" json:"saturation"`
	Value      float64 `yaml:"value" json:"value"`
}

// Preset is an ordered list of ratios. Generated variations keep this order.
type Preset []Ratio

// SV is a resolved saturation/value target in [0,1].
type SV struct {
	Saturation float64
	Value      float64
}

// RatioPolicy resolves a preset ratio against the base color's saturation
// or value.
type RatioPolicy interface {
	Resolve(ratio, base float64) float64
}

// AbsolutePolicy treats a non-negative ratio as the target itself.
type AbsolutePolicy struct{}

func (AbsolutePolicy) Resolve(ratio, base float64) float64 {
	if ratio < 0 {
		return clamp(-ratio*base, 0, 1)
	}
	return clamp(ratio, 0, 1)
}

// MultiplierPolicy treats every ratio as a multiplier of the base.
type MultiplierPolicy struct{}

func (MultiplierPolicy) Resolve(ratio, base float64) float64 {
	return clamp(math.Abs(ratio)*base, 0, 1)
}

// PolicyByName resolves "absolute" or "multiplier".
func PolicyByName(name string) (RatioPolicy, error) {
	switch name {
	case "absolute":
		return AbsolutePolicy{}, nil
	case "multiplier":
		return MultiplierPolicy{}, nil
	}
	return nil, fmt.Errorf("unknown ratio policy %q", name)
}

// Shader derives one color from a base color and a resolved target.
type Shader interface {
	Shade(base models.RGB8, target SV) models.RGB8
}

// BlendShader rescales the base so its peak channel sits at the target value,
// then pulls every channel towards that peak by the target saturation.
type BlendShader struct{}

func (BlendShader) Shade(base models.RGB8, target SV) models.RGB8 {
	v := target.Value * 255
	k := 0.0
	if peak := float64(base.Max()); peak > 0 {
		k = v / peak
	}

	channel := func(c uint8) uint8 {
		return round8(v - (v-float64(c)*k)*target.Saturation)
	}

	return models.RGB8{R: channel(base.R), G: channel(base.G), B: channel(base.B)}
}

// HSVShader keeps the base hue and substitutes saturation and value.
type HSVShader struct{}

func (HSVShader) Shade(base models.RGB8, target SV) models.RGB8 {
	return models.FromRGB8(base).WithSV(target.Saturation, target.Value).RGB8()
}

// ShaderByName resolves "blend" or "hsv".
func ShaderByName(name string) (Shader, error) {
	switch name {
	case "blend":
		return BlendShader{}, nil
	case "hsv":
		return HSVShader{}, nil
	}
	return nil, fmt.Errorf("unknown shader %q", name)
}

// ResolveSV resolves every ratio of preset against the saturation and value
// of base.
func ResolveSV(base models.RGB8, preset Preset, policy RatioPolicy) []SV {
	hsv := models.FromRGB8(base).HSV()

	svs := make([]SV, len(preset))
	for i, r := range preset {
		svs[i] = SV{
			Saturation: policy.Resolve(r.Saturation, hsv.Saturation),
			Value:      policy.Resolve(r.Value, hsv.Value),
		}
	}
	return svs
}

// Variations shades base once per target, in order.
func Variations(base models.RGB8, svs []SV, shader Shader) []models.RGB8 {
	out := make([]models.RGB8, len(svs))
	for i, sv := range svs {
		out[i] = shader.Shade(base, sv)
	}
	return out
}

func clamp(x, lo, hi float64) float64 {
	if math.IsNaN(x) {
		return lo
	}
	return math.Max(lo, math.Min(hi, x))
}
