package config

import (
	"fmt"
	"os"

	"github.com/color-game/paletton/models"
	"github.com/color-game/paletton/paletton"
	"gopkg.in/yaml.v3"
)

// wheelFile is the YAML layout of a custom anchor wheel:
//
//	wheel:
//	  0: [255, 0, 0]
//	  15: [255, 43, 0]
type wheelFile struct {
	Wheel map[int][3]int `yaml:"wheel"`
}

// presetsFile is the YAML layout of a preset registry:
//
//	presets:
//	  soft:
//	    - [0.4, 1]
//	    - [-1, -0.8]
type presetsFile struct {
	Presets map[string][][2]float64 `yaml:"presets"`
}

// LoadWheel reads an anchor wheel from a YAML file.
func LoadWheel(path string) (paletton.Wheel, error) {
	var wf wheelFile
	if err := readYAML(path, &wf); err != nil {
		return nil, err
	}

	w := make(paletton.Wheel, len(wf.Wheel))
	for d, rgb := range wf.Wheel {
		for _, ch := range rgb {
			if ch < 0 || ch > 255 {
				return nil, fmt.Errorf("%w: %s: degree %d: %v", models.ErrOutOfRange, path, d, rgb)
			}
		}
		w[d] = models.RGB8{R: uint8(rgb[0]), G: uint8(rgb[1]), B: uint8(rgb[2])}
	}

	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// LoadPresets reads a preset registry from a YAML file.
func LoadPresets(path string) (map[string]paletton.Preset, error) {
	var pf presetsFile
	if err := readYAML(path, &pf); err != nil {
		return nil, err
	}

	presets := make(map[string]paletton.Preset, len(pf.Presets))
	for name, pairs := range pf.Presets {
		if len(pairs) == 0 {
			return nil, fmt.Errorf("%s: preset %q is empty", path, name)
		}
		preset := make(paletton.Preset, len(pairs))
		for i, pair := range pairs {
			preset[i] = paletton.Ratio{Saturation: pair[0], Value: pair[1]}
		}
		presets[name] = preset
	}
	return presets, nil
}

func readYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading %s -> %v", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("error parsing %s -> %v", path, err)
	}
	return nil
}
