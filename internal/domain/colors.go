package domain

import "fmt"

// palette is the default color order, largest supported size first-come.
var palette = []Color{
	"red", "blue", "green", "yellow", "orange", "purple", "pink", "brown",
	"cyan", "lime", "teal", "magenta", "gold", "silver", "navy", "maroon",
}

// DefaultColors returns the default ordered color set for a grid of the
// given size. Sizes beyond the named palette get synthesized labels.
func DefaultColors(size int) []Color {
	out := make([]Color, size)
	for i := 0; i < size; i++ {
		if i < len(palette) {
			out[i] = palette[i]
		} else {
			out[i] = Color(fmt.Sprintf("color-%d", i))
		}
	}
	return out
}
