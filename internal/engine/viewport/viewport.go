// Package viewport maintains the horizontal scroll window over the
// timeline and the zoom-anchoring math that keeps a chosen screen point
// stable across zoom changes.
package viewport

import "github.com/clipforge/clipline/internal/timeline/coords"

// Viewport tracks the visible horizontal window. Scroll is in content
// pixels at the current zoom and is always within [0, maxScroll], where
// maxScroll depends on the content width recomputed each frame.
type Viewport struct {
	scroll float64
	width  float64
	height float64
}

// New creates a viewport with the given surface size. Dimensions are
// clamped to a minimum of 1 to prevent degenerate math.
func New(width, height float64) *Viewport {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Viewport{width: width, height: height}
}

// Resize updates the viewport size.
func (v *Viewport) Resize(width, height float64) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	v.width = width
	v.height = height
}

// Width returns the viewport width in pixels.
func (v *Viewport) Width() float64 { return v.width }

// Height returns the viewport height in pixels.
func (v *Viewport) Height() float64 { return v.height }

// Scroll returns the current horizontal scroll offset in pixels.
func (v *Viewport) Scroll() float64 { return v.scroll }

// ContentWidth returns the scrollable content width for the given clip
// extent and zoom: the last clip end plus one empty viewport width of
// runway to drag into.
func (v *Viewport) ContentWidth(maxClipEnd, zoom float64) float64 {
	return coords.TimeToPixels(maxClipEnd, zoom) + v.width
}

// SetScroll sets the scroll offset, clamped to [0, contentWidth - width].
func (v *Viewport) SetScroll(px, contentWidth float64) {
	maxScroll := contentWidth - v.width
	if maxScroll < 0 {
		maxScroll = 0
	}
	if px < 0 {
		px = 0
	}
	if px > maxScroll {
		px = maxScroll
	}
	v.scroll = px
}

// ScrollBy adjusts the scroll offset by a pixel delta, reclamped.
func (v *Viewport) ScrollBy(dpx, contentWidth float64) {
	v.SetScroll(v.scroll+dpx, contentWidth)
}

// TimeAt maps a viewport-local x coordinate to a time in milliseconds.
func (v *Viewport) TimeAt(x, zoom float64) float64 {
	return coords.PixelsToTime(v.scroll+x, zoom)
}

// XForTime maps a time to a viewport-local x coordinate.
func (v *Viewport) XForTime(t, zoom float64) float64 {
	return coords.TimeToPixels(t, zoom) - v.scroll
}

// ContentX maps a viewport-local x coordinate into content space.
func (v *Viewport) ContentX(x float64) float64 {
	return v.scroll + x
}

// VisibleTimeRange returns the time window currently on screen.
func (v *Viewport) VisibleTimeRange(zoom float64) (start, end float64) {
	start = coords.PixelsToTime(v.scroll, zoom)
	end = coords.PixelsToTime(v.scroll+v.width, zoom)
	return start, end
}

// AnchorZoom recomputes scroll for a zoom change so that anchorTime stays
// rendered at viewport-local anchorX. The caller reclamps against content
// width afterwards via SetScroll.
func (v *Viewport) AnchorZoom(newZoom, anchorX, anchorTime, contentWidth float64) {
	v.SetScroll(coords.TimeToPixels(anchorTime, newZoom)-anchorX, contentWidth)
}

// CenterOn scrolls so that t sits in the middle of the viewport.
func (v *Viewport) CenterOn(t, zoom, contentWidth float64) {
	v.SetScroll(coords.TimeToPixels(t, zoom)-v.width/2, contentWidth)
}
