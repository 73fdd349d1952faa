package chart

import "image/color"

// Palette holds the five series colours used across every chart.
var Palette = []color.Color{
	color.RGBA{R: 0x20, G: 0x72, B: 0xB2, A: 0xFF},
	color.RGBA{R: 0x64, G: 0xDD, B: 0xFA, A: 0xFF},
	color.RGBA{R: 0xA5, G: 0xF5, B: 0x7E, A: 0xFF},
	color.RGBA{R: 0xF7, G: 0xE4, B: 0x59, A: 0xFF},
	color.RGBA{R: 0xEF, G: 0x9E, B: 0x67, A: 0xFF},
}

var missingHue = color.RGBA{R: 0xB0, G: 0xB0, B: 0xB0, A: 0xFF}

// hueColor cycles through the palette starting at offset.
func hueColor(i, offset int) color.Color {
	return Palette[(i+offset)%len(Palette)]
}
