package models

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const hexDigits = "0123456789abcdefABCDEF"

// normalizeHex strips the optional leading '#' and widens 3-digit shorthand
// so that every channel is two digits.
func normalizeHex(s string) (string, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(digits) {
	case 3, 6:
	default:
		return "", FormatError{Input: s, Reason: "expected 3 or 6 hex digits"}
	}

	if strings.Trim(digits, hexDigits) != "" {
		return "", FormatError{Input: s, Reason: "contains non-hex characters"}
	}

	if len(digits) == 3 {
		var b strings.Builder
		for _, d := range digits {
			b.WriteRune(d)
			b.WriteRune(d)
		}
		digits = b.String()
	}

	return strings.ToUpper(digits), nil
}

// HexToRGB converts "#RGB" or "#RRGGBB" (the '#' is optional) to normalized RGB.
func HexToRGB(s string) (RGB, error) {
	digits, err := normalizeHex(s)
	if err != nil {
		return RGB{}, err
	}

	var ch [3]float64
	for i := range ch {
		v, err := strconv.ParseUint(digits[2*i:2*i+2], 16, 8)
		if err != nil {
			return RGB{}, FormatError{Input: s, Reason: err.Error()}
		}
		ch[i] = float64(v) / 255
	}

	return RGB{Red: ch[0], Green: ch[1], Blue: ch[2]}, nil
}

// RGBToHex encodes normalized RGB as uppercase "#RRGGBB". Channels are
// clamped to [0,1] and rounded to the nearest 8-bit value.
func RGBToHex(rgb RGB) string {
	c := colorful.Color{R: rgb.Red, G: rgb.Green, B: rgb.Blue}
	return strings.ToUpper(c.Clamped().Hex())
}
