package engine

import (
	"github.com/clipforge/clipline/internal/input/pointer"
	"github.com/clipforge/clipline/internal/state"
	"github.com/clipforge/clipline/internal/timeline"
	"github.com/clipforge/clipline/internal/timeline/coords"
)

// beginMarqueeLocked enters a marquee select on a press over empty space.
// The combine mode is fixed by the modifiers held at press time.
func (e *Engine) beginMarqueeLocked(ev pointer.Event, st state.EditorState) {
	e.drag = &marqueeState{
		origin:        ev.Pos,
		current:       ev.Pos,
		mode:          combineModeFor(ev.Modifiers),
		prevSelection: st.Selection.Clone(),
	}
}

// updateMarqueeLocked moves the live rectangle corner. Selection is only
// computed at release; intermediate rectangles exist for rendering.
func (e *Engine) updateMarqueeLocked(d *marqueeState, ev pointer.Event) {
	d.current = ev.Pos
	if !d.active && d.origin.DistancePx(ev.Pos) > e.cfg.MarqueeThresholdPx {
		d.active = true
	}
}

// finishMarqueeLocked resolves the final rectangle into a selection
// update. A sub-threshold release in replace mode is a plain click on
// empty space: deselect all.
func (e *Engine) finishMarqueeLocked(d *marqueeState) {
	if !d.active {
		if d.mode == timeline.CombineReplace {
			e.dispatch(state.SetSelection{Selection: timeline.Selection{}}, false, nil)
		}
		return
	}

	st := e.store.State()
	hits := e.marqueeHitsLocked(d, st)
	next := d.prevSelection.Combine(hits, d.mode)
	e.dispatch(state.SetSelection{Selection: next}, false, nil)
	e.log.WithField("gesture", "marquee").WithField("mode", d.mode).Debug("%d hit(s)", len(hits))
}

// marqueeHitsLocked intersects the marquee rectangle with every visible
// clip's screen bounds, in render order.
func (e *Engine) marqueeHitsLocked(d *marqueeState, st state.EditorState) []timeline.ID {
	zoom := coords.ClampZoom(st.Zoom)

	x1 := e.view.ContentX(min(d.origin.X, d.current.X))
	x2 := e.view.ContentX(max(d.origin.X, d.current.X))
	y1 := min(d.origin.Y, d.current.Y)
	y2 := max(d.origin.Y, d.current.Y)

	trackIndex := make(map[timeline.ID]int, len(st.Tracks))
	trackVisible := make(map[timeline.ID]bool, len(st.Tracks))
	for _, t := range st.Tracks {
		trackIndex[t.ID] = t.Index
		trackVisible[t.ID] = t.Visible
	}

	var hits []timeline.ID
	for _, c := range st.Clips {
		if !trackVisible[c.TrackID] {
			continue
		}
		cx1 := coords.TimeToPixels(c.Start, zoom)
		cx2 := coords.TimeToPixels(c.End(), zoom)
		cy1 := e.cfg.Layout.TrackY(trackIndex[c.TrackID])
		cy2 := cy1 + e.cfg.Layout.TrackHeight
		if cx2 >= x1 && cx1 <= x2 && cy2 >= y1 && cy1 <= y2 {
			hits = append(hits, c.ID)
		}
	}
	return hits
}

// marqueeRectLocked returns the live marquee rectangle in surface
// coordinates, or ok=false when no active marquee is up.
func (e *Engine) marqueeRectLocked() (x, y, w, h float64, ok bool) {
	d, isMarquee := e.drag.(*marqueeState)
	if !isMarquee || !d.active {
		return 0, 0, 0, 0, false
	}
	x = min(d.origin.X, d.current.X)
	y = min(d.origin.Y, d.current.Y)
	w = abs(d.current.X - d.origin.X)
	h = abs(d.current.Y - d.origin.Y)
	return x, y, w, h, true
}
