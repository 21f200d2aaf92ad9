package wildfire

import "image/color"

var wildfirePalette = []color.RGBA{
	{R: 110, G: 110, B: 118, A: 255}, // unburnable rock/water
	{R: 58, G: 122, B: 62, A: 255},   // standing fuel
	{R: 255, G: 120, B: 32, A: 255},  // burning
	{R: 42, G: 34, B: 30, A: 255},    // burned out
}

// Palette exposes the color palette used for rendering the burn states.
func (w *World) Palette() []color.RGBA {
	return wildfirePalette
}

func (w *World) rebuildDisplay() {
	for i, s := range w.curr {
		w.display[i] = uint8(s)
	}
}
