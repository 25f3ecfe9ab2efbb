package palette

import (
	"fmt"
	"slices"

	"github.com/color-game/paletton/models"
	"github.com/color-game/paletton/paletton"
)

// SchemeFunc chooses the base color of every slot of a scheme.
type SchemeFunc func(p *paletton.Paletton, base models.Color) []models.Color

// DefaultScheme is used when no scheme is named.
const DefaultScheme = "mono"

var schemes = map[string]SchemeFunc{
	"mono":          mono,
	"complimentary": unimplemented,
	"complementary": unimplemented,
	"triad":         unimplemented,
	"tetrad":        unimplemented,
	"analogic":      unimplemented,
}

// mono uses the base color as the only slot.
func mono(_ *paletton.Paletton, base models.Color) []models.Color {
	return []models.Color{base}
}

// unimplemented stands in for wheel-relative schemes that are registered
// but not built yet; it yields no slots.
func unimplemented(*paletton.Paletton, models.Color) []models.Color {
	return nil
}

// Scheme looks up a scheme by name.
func Scheme(name string) (SchemeFunc, error) {
	fn, ok := schemes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownScheme, name)
	}
	return fn, nil
}

// Schemes returns the registered scheme names in sorted order.
func Schemes() []string {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
