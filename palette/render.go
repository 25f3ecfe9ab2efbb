package palette

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/color-game/paletton/models"
)

// Format selects how Render writes a palette.
type Format string

const (
	FormatHex    Format = "hex"
	FormatHSV    Format = "hsv"
	FormatFull   Format = "full"
	FormatJSON   Format = "json"
	FormatSwatch Format = "swatch"
)

// Formats lists every supported output format.
func Formats() []Format {
	return []Format{FormatHex, FormatHSV, FormatFull, FormatJSON, FormatSwatch}
}

func ParseFormat(name string) (Format, error) {
	for _, f := range Formats() {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q", name)
}

// Render writes the palette to w, one color per line except for JSON.
// Numeric fields are rounded to decimals places; negative decimals print
// them at full precision.
func (pal *Palette) Render(w io.Writer, format Format, decimals int) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(pal.Response(decimals))
	case FormatSwatch:
		return pal.renderSwatches(w)
	case FormatHex, FormatHSV, FormatFull:
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	for _, c := range pal.All() {
		if _, err := fmt.Fprintln(w, FormatColor(c, format, decimals)); err != nil {
			return err
		}
	}
	return nil
}

// FormatColor renders a single color as a hex, hsv or full line.
func FormatColor(c models.Color, format Format, decimals int) string {
	hex := c.Hex()
	if format == FormatHex {
		return hex
	}

	hsv := c.HSV()
	line := fmt.Sprintf("%s hue %s, saturation %s, value %s", hex,
		formatNumber(hsv.Hue, decimals),
		formatNumber(hsv.Saturation, decimals),
		formatNumber(hsv.Value, decimals))
	if format == FormatHSV {
		return line
	}

	rgb := c.RGB()
	return fmt.Sprintf("%s, red %s, green %s, blue %s", line,
		formatNumber(rgb.Red, decimals),
		formatNumber(rgb.Green, decimals),
		formatNumber(rgb.Blue, decimals))
}

func formatNumber(x float64, decimals int) string {
	return strconv.FormatFloat(models.Round(x, decimals), 'f', -1, 64)
}

// renderSwatches prints a colored block per color. The renderer inspects w,
// so plain writers receive the text without escape sequences.
func (pal *Palette) renderSwatches(w io.Writer) error {
	r := lipgloss.NewRenderer(w)
	for _, c := range pal.All() {
		hex := c.Hex()
		block := r.NewStyle().
			Background(lipgloss.Color(hex)).
			Foreground(lipgloss.Color(textColor(c))).
			Padding(0, 2).
			Render(hex)
		if _, err := fmt.Fprintln(w, block); err != nil {
			return err
		}
	}
	return nil
}

// textColor picks black or white text for legibility on c.
func textColor(c models.Color) string {
	rgb := c.RGB8()
	luma := 299*int(rgb.R) + 587*int(rgb.G) + 114*int(rgb.B)
	if luma > 128*1000 {
		return "#000000"
	}
	return "#FFFFFF"
}
