package models

import "fmt"

var ErrInvalidFormat = fmt.Errorf("invalid color format")
var ErrUnknownPreset = fmt.Errorf("unknown preset")
var ErrUnknownScheme = fmt.Errorf("unknown scheme")
var ErrOutOfRange = fmt.Errorf("channel out of range")

// FormatError reports a color string that could not be parsed.
type FormatError struct {
	Input  string
	Reason string
}

func (fe FormatError) Error() string {
	return fmt.Sprintf("%v %q: %s", ErrInvalidFormat, fe.Input, fe.Reason)
}

func (fe FormatError) Unwrap() error {
	return ErrInvalidFormat
}
