package engine

import (
	"github.com/clipforge/clipline/internal/input/pointer"
	"github.com/clipforge/clipline/internal/state"
	"github.com/clipforge/clipline/internal/timeline"
	"github.com/clipforge/clipline/internal/timeline/coords"
	"github.com/clipforge/clipline/internal/timeline/hit"
	"github.com/clipforge/clipline/internal/timeline/snap"
)

// beginResizeLocked enters an edge resize on the struck clip. The clip
// becomes the sole selection unless it already is.
func (e *Engine) beginResizeLocked(ev pointer.Event, st state.EditorState, res hit.Result) {
	if !st.Selection.IsOnly(res.ClipID) {
		e.dispatch(state.SetSelection{Selection: timeline.Only(res.ClipID)}, false, nil)
		st = e.store.State()
	}

	c, ok := st.Clip(res.ClipID)
	if !ok {
		return
	}

	d := &resizeState{
		snapshot:     st.Clone(),
		clipID:       c.ID,
		leftHandle:   res.Zone == hit.ZoneHandleLeft,
		originPt:     ev.Pos,
		origStart:    c.Start,
		origDuration: c.Duration,
		origTrim:     c.TrimStart,
		boundaries:   snap.Boundaries(st.Clips, c.TrackID, timeline.Only(c.ID)),
		lastStart:    c.Start,
		lastDuration: c.Duration,
		lastTrim:     c.TrimStart,
	}
	e.drag = d
	e.log.WithField("gesture", "resize").WithField("clip", c.ID).Debug("begin: left=%v", d.leftHandle)
}

// updateResizeLocked applies one resize frame. The moving edge is
// snap-corrected, then the delta is clamped so start and trim never go
// negative and duration never drops below the floor; start, trim, and
// duration are always written together in one intent.
func (e *Engine) updateResizeLocked(d *resizeState, ev pointer.Event) {
	st := e.store.State()
	zoom := coords.ClampZoom(st.Zoom)

	dt := coords.PixelsToTime(ev.Pos.X-d.originPt.X, zoom)

	var start, duration, trim float64
	if d.leftHandle {
		edge := d.origStart + dt
		dt += e.snapper.Resolve([]float64{edge}, d.boundaries, zoom, dt, d.lastDelta)

		// Left edge moves start and trim together; duration takes up the
		// difference. Clamp the delta so start stays non-negative and the
		// clip keeps its minimum duration.
		if dt < -d.origStart {
			dt = -d.origStart
		}
		if dt > d.origDuration-timeline.MinClipDuration {
			dt = d.origDuration - timeline.MinClipDuration
		}
		start = d.origStart + dt
		duration = d.origDuration - dt
		trim = d.origTrim + dt
		if trim < 0 {
			trim = 0
		}
	} else {
		edge := d.origStart + d.origDuration + dt
		dt += e.snapper.Resolve([]float64{edge}, d.boundaries, zoom, dt, d.lastDelta)

		// Right edge moves duration only.
		if dt < timeline.MinClipDuration-d.origDuration {
			dt = timeline.MinClipDuration - d.origDuration
		}
		start = d.origStart
		duration = d.origDuration + dt
		trim = d.origTrim
	}

	d.prevDelta = d.lastDelta
	d.lastDelta = dt

	if start != d.lastStart || duration != d.lastDuration || trim != d.lastTrim {
		d.mutated = true
	}
	d.lastStart, d.lastDuration, d.lastTrim = start, duration, trim

	e.dispatch(state.UpdateClip{
		ClipID:    d.clipID,
		Start:     &start,
		Duration:  &duration,
		TrimStart: &trim,
	}, false, nil)
}

// finishResizeLocked commits the accumulated resize as one undo entry.
func (e *Engine) finishResizeLocked(d *resizeState) {
	if !d.mutated {
		return
	}
	start, duration, trim := d.lastStart, d.lastDuration, d.lastTrim
	pre := d.snapshot
	e.dispatch(state.UpdateClip{
		ClipID:    d.clipID,
		Start:     &start,
		Duration:  &duration,
		TrimStart: &trim,
	}, true, &pre)
	e.log.WithField("gesture", "resize").WithField("clip", d.clipID).Debug("commit: start=%.0f dur=%.0f", start, duration)
}
