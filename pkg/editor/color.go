package editor

import (
	"fmt"
	"strconv"

	"github.com/unidoc/unioffice/v2/color"
)

// ColorFromHex parses a 6-hex-digit RGB string (e.g. "1F4E79") into an
// office color. A leading '#' is tolerated.
func ColorFromHex(hex string) (OfficeColor, error) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return color.Auto, fmt.Errorf("invalid color %q: want 6 hex digits", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.Auto, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return color.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
