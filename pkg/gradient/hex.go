package gradient

import (
	"strconv"
	"strings"
)

// RGB is an 8-bit sRGB triple.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HexToRGB parses "#rgb" or "#rrggbb", with or without the leading '#',
// in any case. The shorthand form doubles each nibble. ok is false for
// anything else; callers pick their own fallback.
func HexToRGB(hex string) (rgb RGB, ok bool) {
	digits := strings.TrimPrefix(hex, "#")

	switch len(digits) {
	case 3:
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	case 6:
	default:
		return RGB{}, false
	}

	var channels [3]uint8
	for i := range channels {
		pair := digits[i*2 : i*2+2]
		if !isHexDigit(pair[0]) || !isHexDigit(pair[1]) {
			return RGB{}, false
		}

		v, err := strconv.ParseUint(pair, 16, 8)
		if err != nil {
			return RGB{}, false
		}
		channels[i] = uint8(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, true
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
