package engine

import (
	"github.com/clipforge/clipline/internal/input/pointer"
	"github.com/clipforge/clipline/internal/state"
	"github.com/clipforge/clipline/internal/timeline/coords"
)

// HandleWheel consumes one wheel/trackpad event. With the zoom modifier
// held it zooms anchored at the pointer; otherwise the dominant axis
// delta scrolls the timeline horizontally.
func (e *Engine) HandleWheel(ev pointer.WheelEvent) {
	if ev.Modifiers.HasCtrl() {
		step := e.cfg.ZoomStep
		if ev.DeltaY > 0 {
			step = -step
		}
		e.ZoomAt(ev.Pos, step)
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.store.State()
	zoom := coords.ClampZoom(st.Zoom)
	contentWidth := e.view.ContentWidth(st.MaxClipEnd(), zoom)
	e.view.ScrollBy(ev.DominantDelta(), contentWidth)
}

// ZoomAt changes zoom by delta with an explicit mouse anchor: the time
// under pt stays rendered at pt after the zoom change.
func (e *Engine) ZoomAt(pt pointer.Point, delta float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.zoomLocked(delta, &pt)
}

// ZoomBy changes zoom by delta without an explicit anchor. The view
// anchors on the hovered point when the pointer is over the timeline,
// else it recenters on the playhead.
func (e *Engine) ZoomBy(delta float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.zoomLocked(delta, nil)
}

// zoomLocked applies a zoom change with the anchor priority: explicit
// mouse anchor, else last hover point, else center on the playhead.
func (e *Engine) zoomLocked(delta float64, mouseAnchor *pointer.Point) {
	st := e.store.State()
	oldZoom := coords.ClampZoom(st.Zoom)
	newZoom := coords.ClampZoom(oldZoom + delta)
	if newZoom == oldZoom {
		return
	}

	var anchorX, anchorTime float64
	anchored := false
	switch {
	case mouseAnchor != nil:
		anchorX = mouseAnchor.X
		anchorTime = e.view.TimeAt(mouseAnchor.X, oldZoom)
		anchored = true
	case e.hoverValid:
		anchorX = e.hover.X
		anchorTime = e.view.TimeAt(e.hover.X, oldZoom)
		anchored = true
	}

	// The viewport moves before the dispatch: the subscriber's render must
	// see the new zoom and the re-anchored scroll together.
	contentWidth := e.view.ContentWidth(st.MaxClipEnd(), newZoom)
	if anchored {
		e.view.AnchorZoom(newZoom, anchorX, anchorTime, contentWidth)
	} else {
		e.view.CenterOn(st.Playhead, newZoom, contentWidth)
	}
	e.dispatch(state.SetZoom{Zoom: newZoom}, false, nil)
	e.log.Debug("zoom %.2f -> %.2f", oldZoom, newZoom)
}
