package shifty

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Colors tween as plain numeric states: HexState explodes a CSS-style hex
// color into its channels, the channels animate like any other properties,
// and StateHex folds the result back into a hex string (typically from a
// step callback).

// Channel names used by HexState and StateHex.
const (
	ColorR = "r"
	ColorG = "g"
	ColorB = "b"
)

// HexState parses a "#rrggbb" (or "#rgb") color into a state with r, g and
// b channels in [0, 1].
func HexState(hex string) (State, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("parse color %q: %w", hex, err)
	}
	return State{ColorR: c.R, ColorG: c.G, ColorB: c.B}, nil
}

// StateHex formats the r, g and b channels of s as a "#rrggbb" string.
// Channels pushed out of [0, 1] by an overshooting easing curve are clamped.
func StateHex(s State) string {
	c := colorful.Color{R: s[ColorR], G: s[ColorG], B: s[ColorB]}
	return c.Clamped().Hex()
}
