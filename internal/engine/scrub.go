package engine

import (
	"github.com/clipforge/clipline/internal/input/pointer"
	"github.com/clipforge/clipline/internal/state"
	"github.com/clipforge/clipline/internal/timeline/coords"
)

// beginScrubLocked enters a playhead scrub. The playhead jumps to the
// press time immediately.
func (e *Engine) beginScrubLocked(ev pointer.Event, st state.EditorState, zoom float64) {
	d := &scrubState{snapshot: st.Clone()}
	e.drag = d

	t := e.view.TimeAt(ev.Pos.X, zoom)
	if t < 0 {
		t = 0
	}
	if t != st.Playhead {
		d.mutated = true
	}
	e.dispatch(state.SetPlayhead{Time: t}, false, nil)
	e.log.WithField("gesture", "scrub").Debug("begin at %.0fms", t)
}

// updateScrubLocked re-derives the playhead time from the pointer each
// frame without touching undo history.
func (e *Engine) updateScrubLocked(d *scrubState, ev pointer.Event) {
	st := e.store.State()
	zoom := coords.ClampZoom(st.Zoom)

	t := e.view.TimeAt(ev.Pos.X, zoom)
	if t < 0 {
		t = 0
	}
	if t != st.Playhead {
		d.mutated = true
	}
	e.dispatch(state.SetPlayhead{Time: t}, false, nil)
}

// finishScrubLocked commits the whole scrub as one undo entry, or nothing
// when the playhead never moved.
func (e *Engine) finishScrubLocked(d *scrubState) {
	if !d.mutated {
		return
	}
	st := e.store.State()
	pre := d.snapshot
	e.dispatch(state.SetPlayhead{Time: st.Playhead}, true, &pre)
	e.log.WithField("gesture", "scrub").Debug("commit at %.0fms", st.Playhead)
}
