package state

import (
	"github.com/clipforge/clipline/internal/timeline"
	"github.com/clipforge/clipline/internal/timeline/coords"
)

// Intent is one requested state change. Implementations mutate the state
// in place; all numeric fields are defensively clamped rather than
// rejected, so an intent never fails.
type Intent interface {
	apply(*EditorState)

	// Label names the intent for undo history entries.
	Label() string
}

// SetPlayhead moves the playhead. Negative times clamp to zero.
type SetPlayhead struct {
	Time float64
}

func (in SetPlayhead) apply(s *EditorState) {
	t := in.Time
	if t < 0 {
		t = 0
	}
	s.Playhead = t
}

// Label names the intent.
func (SetPlayhead) Label() string { return "Move Playhead" }

// SetZoom changes the zoom level, clamped to the valid range.
type SetZoom struct {
	Zoom float64
}

func (in SetZoom) apply(s *EditorState) {
	s.Zoom = coords.ClampZoom(in.Zoom)
}

// Label names the intent.
func (SetZoom) Label() string { return "Zoom" }

// SetSelection replaces the selection wholesale.
type SetSelection struct {
	Selection timeline.Selection
}

func (in SetSelection) apply(s *EditorState) {
	s.Selection = in.Selection.Clone()
}

// Label names the intent.
func (SetSelection) Label() string { return "Select" }

// ToggleSelect flips membership of one clip in the selection.
type ToggleSelect struct {
	ClipID timeline.ID
}

func (in ToggleSelect) apply(s *EditorState) {
	s.Selection = s.Selection.Toggle(in.ClipID)
}

// Label names the intent.
func (ToggleSelect) Label() string { return "Toggle Selection" }

// AddToSelection adds one clip to the selection and makes it primary.
type AddToSelection struct {
	ClipID timeline.ID
}

func (in AddToSelection) apply(s *EditorState) {
	s.Selection = s.Selection.Add(in.ClipID)
}

// Label names the intent.
func (AddToSelection) Label() string { return "Add to Selection" }

// ClipMove is one clip's new placement within a MoveClips batch.
type ClipMove struct {
	ClipID  timeline.ID
	Start   float64
	TrackID timeline.ID
}

// MoveClips repositions a batch of clips in one step. Starts clamp to
// zero; unknown track IDs leave the clip on its current track.
type MoveClips struct {
	Moves []ClipMove
}

func (in MoveClips) apply(s *EditorState) {
	for _, mv := range in.Moves {
		for i := range s.Clips {
			if s.Clips[i].ID != mv.ClipID {
				continue
			}
			start := mv.Start
			if start < 0 {
				start = 0
			}
			s.Clips[i].Start = start
			if _, ok := s.Track(mv.TrackID); ok {
				s.Clips[i].TrackID = mv.TrackID
			}
		}
	}
}

// Label names the intent.
func (MoveClips) Label() string { return "Move Clips" }

// UpdateClip modifies a subset of one clip's fields. Nil pointers leave
// the field untouched. Start and TrimStart clamp to zero; Duration clamps
// to the minimum clip duration.
type UpdateClip struct {
	ClipID    timeline.ID
	Start     *float64
	Duration  *float64
	TrimStart *float64
	Name      *string
	Color     *string
	Speed     *float64
	Reversed  *bool
}

func (in UpdateClip) apply(s *EditorState) {
	for i := range s.Clips {
		if s.Clips[i].ID != in.ClipID {
			continue
		}
		c := &s.Clips[i]
		if in.Start != nil {
			c.Start = max(*in.Start, 0)
		}
		if in.Duration != nil {
			c.Duration = max(*in.Duration, timeline.MinClipDuration)
		}
		if in.TrimStart != nil {
			c.TrimStart = max(*in.TrimStart, 0)
		}
		if in.Name != nil {
			c.Name = *in.Name
		}
		if in.Color != nil {
			c.Color = *in.Color
		}
		if in.Speed != nil {
			c.Speed = *in.Speed
		}
		if in.Reversed != nil {
			c.Reversed = *in.Reversed
		}
		return
	}
}

// Label names the intent.
func (UpdateClip) Label() string { return "Edit Clip" }

// AddClip appends a clip. A missing ID is generated; start, trim, and
// duration are clamped; an unknown track ID resolves to the first track.
type AddClip struct {
	Clip timeline.Clip
}

func (in AddClip) apply(s *EditorState) {
	c := in.Clip
	if c.ID == "" {
		c.ID = timeline.NewID()
	}
	c.Start = max(c.Start, 0)
	c.TrimStart = max(c.TrimStart, 0)
	c.Duration = max(c.Duration, timeline.MinClipDuration)
	if _, ok := s.Track(c.TrackID); !ok && len(s.Tracks) > 0 {
		c.TrackID = s.Tracks[0].ID
	}
	s.Clips = append(s.Clips, c)
}

// Label names the intent.
func (AddClip) Label() string { return "Add Clip" }

// AddTrack appends a track at the next free index.
type AddTrack struct {
	Track timeline.Track
}

func (in AddTrack) apply(s *EditorState) {
	t := in.Track
	if t.ID == "" {
		t.ID = timeline.NewID()
	}
	t.Index = len(s.Tracks)
	s.Tracks = append(s.Tracks, t)
}

// Label names the intent.
func (AddTrack) Label() string { return "Add Track" }

// RemoveClip deletes a clip and drops it from the selection.
type RemoveClip struct {
	ClipID timeline.ID
}

func (in RemoveClip) apply(s *EditorState) {
	for i := range s.Clips {
		if s.Clips[i].ID == in.ClipID {
			s.Clips = append(s.Clips[:i], s.Clips[i+1:]...)
			break
		}
	}
	s.Selection = s.Selection.Remove(in.ClipID)
}

// Label names the intent.
func (RemoveClip) Label() string { return "Remove Clip" }
