package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseRGB parses "r,g,b" with each channel a float in [0,1].
func ParseRGB(s string) (RGB, error) {
	vals, err := parseTriple(s)
	if err != nil {
		return RGB{}, err
	}
	rgb := RGB{Red: vals[0], Green: vals[1], Blue: vals[2]}
	if err := rgb.Validate(); err != nil {
		return RGB{}, err
	}
	return rgb, nil
}

// ParseHSV parses "h,s,v" with hue in degrees and saturation/value in [0,1].
func ParseHSV(s string) (HSV, error) {
	vals, err := parseTriple(s)
	if err != nil {
		return HSV{}, err
	}
	hsv := HSV{Hue: vals[0], Saturation: vals[1], Value: vals[2]}
	if err := hsv.Validate(); err != nil {
		return HSV{}, err
	}
	return hsv, nil
}

func parseTriple(s string) ([3]float64, error) {
	var out [3]float64
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return out, FormatError{Input: s, Reason: "expected three comma-separated numbers"}
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return out, FormatError{Input: s, Reason: fmt.Sprintf("field %d: %v", i+1, err)}
		}
		out[i] = v
	}
	return out, nil
}
