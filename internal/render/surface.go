// Package render defines the drawing contract the interaction engine
// drives once per frame. Concrete backends (the terminal preview, a GPU
// canvas, a test recorder) implement Surface; the engine only ever holds
// the interface.
package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/clipforge/clipline/internal/timeline"
)

// Surface is the capability set a rendering backend must provide. All
// geometry is in surface pixels; the engine applies scroll and zoom before
// calling. Implementations must tolerate zero-size and off-surface
// geometry by clipping silently.
type Surface interface {
	// DrawClip draws one clip body at the given rectangle.
	DrawClip(clip timeline.Clip, x, y, w, h float64, selected bool)

	// DrawWaveform draws decoded waveform peaks inside a clip rectangle.
	DrawWaveform(samples []float64, x, y, w, h float64, color colorful.Color)

	// DrawThumbnail draws a decoded preview frame inside a clip rectangle.
	DrawThumbnail(frame []byte, x, y, w, h float64)

	// DrawPlayhead draws the vertical playhead line at x.
	DrawPlayhead(x, height float64, color colorful.Color)

	// DrawTimeRuler draws the ruler band for the visible time window.
	DrawTimeRuler(startTime, endTime, pixelsPerMS, height float64)

	// DrawTrackBackground fills one track row.
	DrawTrackBackground(y, w, h float64, alternate bool)

	// DrawSelectionRect draws the live marquee rectangle.
	DrawSelectionRect(x, y, w, h float64)

	// Clear erases the whole surface.
	Clear()

	// Resize adjusts the surface to a new pixel size.
	Resize(w, h float64)

	// Size returns the current surface size in pixels.
	Size() (w, h float64)

	// Save pushes the current clip region and transform.
	Save()

	// Restore pops the last saved clip region and transform.
	Restore()
}
