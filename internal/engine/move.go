package engine

import (
	"github.com/clipforge/clipline/internal/input/pointer"
	"github.com/clipforge/clipline/internal/state"
	"github.com/clipforge/clipline/internal/timeline"
	"github.com/clipforge/clipline/internal/timeline/coords"
	"github.com/clipforge/clipline/internal/timeline/hit"
	"github.com/clipforge/clipline/internal/timeline/snap"
)

// beginMoveLocked handles a press on a clip body. Selection modifiers are
// resolved first; toggle and additive presses adjust the selection without
// starting a drag. Returns true when a move gesture actually began.
func (e *Engine) beginMoveLocked(ev pointer.Event, st state.EditorState, res hit.Result) bool {
	switch {
	case ev.Modifiers.HasCtrl():
		e.dispatch(state.ToggleSelect{ClipID: res.ClipID}, false, nil)
		return false
	case ev.Modifiers.HasShift():
		e.dispatch(state.AddToSelection{ClipID: res.ClipID}, false, nil)
		return false
	}

	// A plain press on an unselected clip replaces the selection; a press
	// on a clip already in the selection preserves it, so an existing
	// multi-selection can be dragged as a group.
	if !st.Selection.Contains(res.ClipID) {
		e.dispatch(state.SetSelection{Selection: timeline.Only(res.ClipID)}, false, nil)
		st = e.store.State()
	}

	d := &moveState{
		snapshot:   st.Clone(),
		originPt:   ev.Pos,
		boundaries: make(map[int][]float64),
		trackIDs:   make(map[int]timeline.ID),
		trackCount: len(st.Tracks),
		minStart:   -1,
	}

	trackIndex := make(map[timeline.ID]int, len(st.Tracks))
	for _, t := range st.Tracks {
		trackIndex[t.ID] = t.Index
		d.trackIDs[t.Index] = t.ID
		d.boundaries[t.Index] = snap.Boundaries(st.Clips, t.ID, st.Selection)
	}

	for _, id := range st.Selection.IDs {
		c, ok := st.Clip(id)
		if !ok {
			continue
		}
		d.origins = append(d.origins, clipOrigin{
			id:         c.ID,
			start:      c.Start,
			duration:   c.Duration,
			trackIndex: trackIndex[c.TrackID],
		})
		if d.minStart < 0 || c.Start < d.minStart {
			d.minStart = c.Start
		}
	}
	if len(d.origins) == 0 {
		return false
	}

	origin, _ := st.Clip(res.ClipID)
	d.originTrack = trackIndex[origin.TrackID]

	e.drag = d
	e.log.WithField("gesture", "move").Debug("begin: %d clip(s)", len(d.origins))
	return true
}

// updateMoveLocked applies one move frame: horizontal delta to time,
// vertical position to a uniform track delta, clamp, snap, re-clamp, then
// a single batch write without history.
func (e *Engine) updateMoveLocked(d *moveState, ev pointer.Event) {
	st := e.store.State()
	zoom := coords.ClampZoom(st.Zoom)

	dt := coords.PixelsToTime(ev.Pos.X-d.originPt.X, zoom)
	targetTrack := e.cfg.Layout.NearestTrackIndex(ev.Pos.Y, d.trackCount)
	trackDelta := targetTrack - d.originTrack

	// The group's earliest clip may not cross time zero.
	if dt < -d.minStart {
		dt = -d.minStart
	}

	// Snap each clip's edges against its own post-drag track's boundary
	// set; a boundary on one track must not attract an edge on another.
	// The smallest correction across the group wins.
	var corr float64
	for _, o := range d.origins {
		idx := clampTrack(o.trackIndex+trackDelta, d.trackCount)
		edges := []float64{o.start + dt, o.start + o.duration + dt}
		c := e.snapper.Resolve(edges, d.boundaries[idx], zoom, dt, d.lastDelta)
		if c != 0 && (corr == 0 || abs(c) < abs(corr)) {
			corr = c
		}
	}
	dt += corr

	// The snap correction can push the group negative again.
	if dt < -d.minStart {
		dt = -d.minStart
	}

	d.prevDelta = d.lastDelta
	d.lastDelta = dt

	moves := make([]state.ClipMove, len(d.origins))
	changed := false
	for i, o := range d.origins {
		idx := clampTrack(o.trackIndex+trackDelta, d.trackCount)
		moves[i] = state.ClipMove{
			ClipID:  o.id,
			Start:   o.start + dt,
			TrackID: d.trackIDs[idx],
		}
		if dt != 0 || idx != o.trackIndex {
			changed = true
		}
	}
	d.lastMoves = moves
	if changed {
		d.mutated = true
	}
	e.dispatch(state.MoveClips{Moves: moves}, false, nil)
}

// finishMoveLocked commits the accumulated move as one undo entry.
func (e *Engine) finishMoveLocked(d *moveState) {
	if !d.mutated || len(d.lastMoves) == 0 {
		return
	}
	pre := d.snapshot
	e.dispatch(state.MoveClips{Moves: d.lastMoves}, true, &pre)
	e.log.WithField("gesture", "move").Debug("commit: %d clip(s), dt=%.0fms", len(d.lastMoves), d.lastDelta)
}

// clampTrack clamps a track index into the valid range.
func clampTrack(idx, count int) int {
	if idx < 0 {
		return 0
	}
	if idx >= count {
		return count - 1
	}
	return idx
}
