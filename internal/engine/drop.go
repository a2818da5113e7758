package engine

import (
	"github.com/clipforge/clipline/internal/input/pointer"
	"github.com/clipforge/clipline/internal/state"
	"github.com/clipforge/clipline/internal/timeline"
	"github.com/clipforge/clipline/internal/timeline/coords"
)

// Media describes a dropped media item. The media catalog itself lives
// outside the engine; only the fields needed to place a clip cross the
// boundary.
type Media struct {
	Name     string
	Color    string
	Duration float64
	Samples  []float64
}

// HandleDrop places a dropped media item as a new clip at the pointer
// position. The drop is one undoable step.
func (e *Engine) HandleDrop(pt pointer.Point, media Media) {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.store.State()
	if len(st.Tracks) == 0 {
		return
	}
	zoom := coords.ClampZoom(st.Zoom)

	start := e.view.TimeAt(pt.X, zoom)
	if start < 0 {
		start = 0
	}
	idx := e.cfg.Layout.NearestTrackIndex(pt.Y, len(st.Tracks))
	track, ok := st.TrackByIndex(idx)
	if !ok {
		return
	}

	e.dispatch(state.AddClip{Clip: timeline.Clip{
		TrackID:  track.ID,
		Start:    start,
		Duration: media.Duration,
		Name:     media.Name,
		Color:    media.Color,
		Samples:  media.Samples,
	}}, true, nil)
	e.log.WithField("gesture", "drop").Debug("%q at %.0fms on track %d", media.Name, start, idx)
}
