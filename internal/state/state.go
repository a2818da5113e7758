// Package state provides the editor state store the interaction engine
// reads from and dispatches intents to. The store owns tracks, clips,
// selection, playhead, and zoom; mutation happens only through Dispatch,
// and undo history is recorded per dispatch unless the caller opts out
// for intermediate drag frames.
package state

import (
	"github.com/clipforge/clipline/internal/timeline"
)

// EditorState is the store's view model. Clips are kept in insertion
// order, which is also render order: the latest-added clip draws on top.
type EditorState struct {
	Tracks    []timeline.Track
	Clips     []timeline.Clip
	Selection timeline.Selection

	// Playhead is the current edit/preview time in milliseconds.
	Playhead float64

	// Zoom is the log2-scaled horizontal zoom level.
	Zoom float64
}

// Snapshot is a deep copy of the editor state used for undo entries.
type Snapshot = EditorState

// Clone returns a deep copy of the state.
func (s EditorState) Clone() EditorState {
	out := s
	out.Tracks = append([]timeline.Track(nil), s.Tracks...)
	out.Clips = make([]timeline.Clip, len(s.Clips))
	for i, c := range s.Clips {
		out.Clips[i] = c
		if c.Samples != nil {
			out.Clips[i].Samples = append([]float64(nil), c.Samples...)
		}
	}
	out.Selection = s.Selection.Clone()
	return out
}

// Clip returns the clip with the given ID.
func (s EditorState) Clip(id timeline.ID) (timeline.Clip, bool) {
	for _, c := range s.Clips {
		if c.ID == id {
			return c, true
		}
	}
	return timeline.Clip{}, false
}

// Track returns the track with the given ID.
func (s EditorState) Track(id timeline.ID) (timeline.Track, bool) {
	for _, t := range s.Tracks {
		if t.ID == id {
			return t, true
		}
	}
	return timeline.Track{}, false
}

// TrackByIndex returns the track at the given index.
func (s EditorState) TrackByIndex(index int) (timeline.Track, bool) {
	for _, t := range s.Tracks {
		if t.Index == index {
			return t, true
		}
	}
	return timeline.Track{}, false
}

// TrackClips returns the clips on one track in render order.
func (s EditorState) TrackClips(trackID timeline.ID) []timeline.Clip {
	var out []timeline.Clip
	for _, c := range s.Clips {
		if c.TrackID == trackID {
			out = append(out, c)
		}
	}
	return out
}

// MaxClipEnd returns the latest clip end time, or 0 with no clips.
func (s EditorState) MaxClipEnd() float64 {
	end := 0.0
	for _, c := range s.Clips {
		if e := c.End(); e > end {
			end = e
		}
	}
	return end
}
