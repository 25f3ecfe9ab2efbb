package paletton

import (
	"log/slog"
	"slices"

	"github.com/color-game/paletton/models"
)

// HueOffsets maps a standard HSV hue, rounded to whole degrees, to the degree
// of the wheel anchor with that hue.
type HueOffsets struct {
	table  map[int]int
	keys   []int
	logger *slog.Logger
}

// NewHueOffsets indexes every sample of w by its HSV hue, rounded half to
// even. When two samples share a rounded hue the higher degree wins and the
// collision is logged at debug level. A nil logger discards output.
func NewHueOffsets(w Wheel, logger *slog.Logger) *HueOffsets {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	ho := &HueOffsets{table: make(map[int]int, len(w)), logger: logger}
	for d := 0; d < 360; d++ {
		rgb, ok := w[d]
		if !ok {
			continue
		}
		hue := roundDegree(models.FromRGB8(rgb).HSV().Hue)
		if prev, ok := ho.table[hue]; ok {
			logger.Debug("hue offset collision", "hue", hue, "dropped", prev, "degree", d)
		}
		ho.table[hue] = d
	}

	ho.keys = make([]int, 0, len(ho.table))
	for hue := range ho.table {
		ho.keys = append(ho.keys, hue)
	}
	slices.Sort(ho.keys)

	return ho
}

// Lookup returns the wheel degree registered for hue. Unregistered hues
// resolve to the nearest registered hue below; hues below every key wrap
// to the highest key.
func (ho *HueOffsets) Lookup(hue int) int {
	if d, ok := ho.table[hue]; ok {
		return d
	}
	if len(ho.keys) == 0 {
		return 0
	}

	idx, _ := slices.BinarySearch(ho.keys, hue)
	resolved := ho.keys[(idx-1+len(ho.keys))%len(ho.keys)]
	d := ho.table[resolved]

	ho.logger.Debug("hue offset fallback", "requested", hue, "resolved", resolved, "degree", d)
	return d
}

// Table returns a copy of the hue to degree mapping.
func (ho *HueOffsets) Table() map[int]int {
	out := make(map[int]int, len(ho.table))
	for k, v := range ho.table {
		out[k] = v
	}
	return out
}

func (ho *HueOffsets) Len() int {
	return len(ho.table)
}
