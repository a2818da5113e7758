package timeline

import colorful "github.com/lucasb-eyer/go-colorful"

// DefaultClipColor is used when a clip carries no color of its own.
const DefaultClipColor = "#4a7ab5"

// ClipColor parses a clip's hex color, falling back to DefaultClipColor on
// empty or malformed input.
func ClipColor(s string) colorful.Color {
	if s == "" {
		s = DefaultClipColor
	}
	c, err := colorful.Hex(s)
	if err != nil {
		c, _ = colorful.Hex(DefaultClipColor)
	}
	return c
}

// SelectedShade lightens a clip color for selected rendering. Lightening in
// HCL keeps hue perceptually stable across the palette.
func SelectedShade(c colorful.Color) colorful.Color {
	h, ch, l := c.Hcl()
	l += 0.25
	if l > 1 {
		l = 1
	}
	return colorful.Hcl(h, ch, l).Clamped()
}

// BorderShade darkens a clip color for its outline.
func BorderShade(c colorful.Color) colorful.Color {
	h, ch, l := c.Hcl()
	l -= 0.2
	if l < 0 {
		l = 0
	}
	return colorful.Hcl(h, ch, l).Clamped()
}

// PlayheadColor returns the playhead marker color.
func PlayheadColor() colorful.Color {
	c, _ := colorful.Hex("#e05555")
	return c
}

// TrackShade returns the background shade for a track row. Alternating rows
// get a slightly lighter fill so lanes stay readable with many tracks.
func TrackShade(alternate bool) colorful.Color {
	if alternate {
		c, _ := colorful.Hex("#26262e")
		return c
	}
	c, _ := colorful.Hex("#1e1e24")
	return c
}
