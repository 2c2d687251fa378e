package colorkey

import "image/color"

const (
	// A pixel keys out as white when every channel is strictly above this.
	whiteThreshold = 240
	// A pixel keys out as black when every channel is strictly below this.
	blackThreshold = 15
)

// Key selects the background color to remove.
type Key int

const (
	// KeyNone copies every pixel unchanged.
	KeyNone Key = iota
	KeyWhite
	KeyBlack
)

// ParseKey maps "white" and "black" to their keys. Any other value, including
// the empty string and differently cased names, yields KeyNone.
func ParseKey(s string) Key {
	switch s {
	case "white":
		return KeyWhite
	case "black":
		return KeyBlack
	default:
		return KeyNone
	}
}

func (k Key) String() string {
	switch k {
	case KeyWhite:
		return "white"
	case KeyBlack:
		return "black"
	default:
		return "none"
	}
}

// Matches reports whether a pixel with the given color channels belongs to
// the keyed background. Alpha is not considered.
func (k Key) Matches(r, g, b uint8) bool {
	match := k.matcher()
	return match != nil && match(r, g, b)
}

// matcher returns the per-pixel predicate for k, or nil for KeyNone.
func (k Key) matcher() func(r, g, b uint8) bool {
	switch k {
	case KeyWhite:
		return isWhite
	case KeyBlack:
		return isBlack
	default:
		return nil
	}
}

func isWhite(r, g, b uint8) bool {
	return r > whiteThreshold && g > whiteThreshold && b > whiteThreshold
}

func isBlack(r, g, b uint8) bool {
	return r < blackThreshold && g < blackThreshold && b < blackThreshold
}

// Transparent returns the value written in place of a matched pixel.
func (k Key) Transparent() color.NRGBA {
	if k == KeyWhite {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 0}
	}
	return color.NRGBA{}
}
