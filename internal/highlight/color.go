package highlight

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// BasePalette is the fixed set of highlight colors tried, in order, before
// any color is synthesized. Values are hex strings usable directly as
// terminal or CSS colors.
var BasePalette = []string{
	"#58a6ff", // blue
	"#3fb950", // green
	"#d29922", // yellow
	"#bc8cff", // purple
	"#76e3ea", // cyan
}

// AllocateColor picks a color for a new highlight that is not currently in
// use. The base palette is tried in order first; once all five are taken, a
// new color is synthesized by rotating a hue parameter in fixed steps until
// an unused value is found. Distinctness of synthesized colors is
// best-effort, not guaranteed.
//
// AllocateColor has no side effects: the caller adds the returned color to
// usedColors, and removes it again when the highlight is deleted so the
// color can be recycled.
func AllocateColor(usedColors map[string]bool) string {
	for _, c := range BasePalette {
		if !usedColors[c] {
			return c
		}
	}
	// Golden-angle hue rotation keeps neighboring synthesized colors far
	// apart on the wheel.
	for i := 0; ; i++ {
		hue := math.Mod(float64(i)*137.5, 360)
		c := colorful.Hsl(hue, 0.65, 0.55).Hex()
		if !usedColors[c] {
			return c
		}
	}
}
