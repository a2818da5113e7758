package engine

import (
	"sort"

	"github.com/clipforge/clipline/internal/timeline"
	"github.com/clipforge/clipline/internal/timeline/coords"
)

// Render draws one frame in the fixed pass order: clear, ruler, track
// backgrounds, visible clips with their waveforms, the marquee rectangle
// when one is active, and the playhead on top.
func (e *Engine) Render() {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.store.State()
	zoom := coords.ClampZoom(st.Zoom)

	// Content width depends on zoom and clip extents, so the scroll clamp
	// is re-derived every frame.
	contentWidth := e.view.ContentWidth(st.MaxClipEnd(), zoom)
	e.view.SetScroll(e.view.Scroll(), contentWidth)

	e.surface.Clear()

	visStart, visEnd := e.view.VisibleTimeRange(zoom)
	e.surface.DrawTimeRuler(visStart, visEnd, coords.PixelsPerMS(zoom), e.cfg.Layout.RulerHeight)

	tracks := append([]timeline.Track(nil), st.Tracks...)
	sort.Slice(tracks, func(i, j int) bool { return tracks[i].Index < tracks[j].Index })

	trackIndex := make(map[timeline.ID]int, len(tracks))
	trackVisible := make(map[timeline.ID]bool, len(tracks))
	for _, t := range tracks {
		trackIndex[t.ID] = t.Index
		trackVisible[t.ID] = t.Visible
		if !t.Visible {
			continue
		}
		e.surface.DrawTrackBackground(
			e.cfg.Layout.TrackY(t.Index),
			e.view.Width(),
			e.cfg.Layout.TrackHeight,
			t.Index%2 == 1,
		)
	}

	// An active marquee previews its combined selection live; the store
	// selection only changes at release.
	sel := st.Selection
	if d, ok := e.drag.(*marqueeState); ok && d.active {
		sel = d.prevSelection.Combine(e.marqueeHitsLocked(d, st), d.mode)
	}

	for _, c := range st.Clips {
		if !trackVisible[c.TrackID] {
			continue
		}
		// Cull clips fully outside the visible time window.
		if c.End() < visStart || c.Start > visEnd {
			continue
		}
		x := e.view.XForTime(c.Start, zoom)
		w := coords.TimeToPixels(c.Duration, zoom)
		y := e.cfg.Layout.TrackY(trackIndex[c.TrackID])
		h := e.cfg.Layout.TrackHeight

		selected := sel.Contains(c.ID)
		e.surface.DrawClip(c, x, y, w, h, selected)
		if len(c.Samples) > 0 {
			e.surface.Save()
			e.surface.DrawWaveform(c.Samples, x, y, w, h, timeline.ClipColor(c.Color))
			e.surface.Restore()
		}
	}

	if x, y, w, h, ok := e.marqueeRectLocked(); ok {
		e.surface.DrawSelectionRect(x, y, w, h)
	}

	e.surface.DrawPlayhead(
		e.view.XForTime(st.Playhead, zoom),
		e.cfg.Layout.Height(len(tracks)),
		timeline.PlayheadColor(),
	)
}
