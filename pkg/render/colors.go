package render

import "strings"

// fillColors is the closed set of recognized background color names.
var fillColors = map[string]Color{
	"red":       {255, 0, 0},
	"green":     {0, 255, 0},
	"blue":      {0, 0, 255},
	"yellow":    {255, 255, 0},
	"orange":    {255, 165, 0},
	"purple":    {128, 0, 128},
	"pink":      {255, 192, 203},
	"gray":      {128, 128, 128},
	"lightgray": {211, 211, 211},
	"white":     {255, 255, 255},
}

// White is the fallback fill for unrecognized color names.
var White = Color{255, 255, 255}

// FillColor resolves a color-name token to its RGB value. Names are matched
// case-insensitively. Unrecognized names resolve to white; this is a silent
// fallback, not an error.
func FillColor(name string) Color {
	if c, ok := fillColors[strings.ToLower(name)]; ok {
		return c
	}
	return White
}
