package engine

import (
	"github.com/clipforge/clipline/internal/input/pointer"
	"github.com/clipforge/clipline/internal/state"
	"github.com/clipforge/clipline/internal/timeline"
)

// dragState is the live gesture. Exactly one of the four variants is live
// at a time; nil means idle. The marker method keeps the set closed so
// the dispatch switches in engine.go stay exhaustive.
type dragState interface {
	isDragState()
}

// scrubState is a playhead scrub started in the ruler band or on the
// playhead line.
type scrubState struct {
	// snapshot is the pre-gesture state for the coalesced undo entry.
	snapshot state.Snapshot

	// mutated is true once any frame actually moved the playhead.
	mutated bool
}

func (*scrubState) isDragState() {}

// clipOrigin is one selected clip's geometry at gesture start.
type clipOrigin struct {
	id         timeline.ID
	start      float64
	duration   float64
	trackIndex int
}

// moveState is a group clip move.
type moveState struct {
	snapshot state.Snapshot

	originPt    pointer.Point
	originTrack int

	// origins snapshots every selected clip; minStart is the smallest
	// original start among them, the floor the whole group may not cross.
	origins  []clipOrigin
	minStart float64

	// boundaries caches each track's snap boundaries (selection excluded),
	// keyed by track index; trackIDs maps indexes back to IDs.
	boundaries map[int][]float64
	trackIDs   map[int]timeline.ID
	trackCount int

	// lastDelta/prevDelta are the cumulative time deltas of this and the
	// previous frame, feeding the snap direction bias.
	lastDelta float64
	prevDelta float64

	// lastMoves is the most recent placement written, re-dispatched as the
	// history-recorded terminal frame.
	lastMoves []state.ClipMove
	mutated   bool
}

func (*moveState) isDragState() {}

// resizeState is a single-clip edge resize.
type resizeState struct {
	snapshot state.Snapshot

	clipID     timeline.ID
	leftHandle bool

	originPt pointer.Point

	origStart    float64
	origDuration float64
	origTrim     float64

	// boundaries is the clip's own track's snap set, excluding the clip.
	boundaries []float64

	lastDelta float64
	prevDelta float64

	// lastStart/lastDuration/lastTrim mirror the most recent frame write
	// for the terminal re-dispatch.
	lastStart    float64
	lastDuration float64
	lastTrim     float64
	mutated      bool
}

func (*resizeState) isDragState() {}

// marqueeState is a rectangle select over empty space.
type marqueeState struct {
	origin  pointer.Point
	current pointer.Point

	mode          timeline.CombineMode
	prevSelection timeline.Selection

	// active flips once movement exceeds the marquee threshold; below it
	// the release degenerates into a plain click.
	active bool
}

func (*marqueeState) isDragState() {}

// combineModeFor derives the marquee combination mode from the modifiers
// held at press time.
func combineModeFor(mods pointer.Modifier) timeline.CombineMode {
	switch {
	case mods.HasCtrl():
		return timeline.CombineToggle
	case mods.HasShift():
		return timeline.CombineAdd
	case mods.HasAlt():
		return timeline.CombineSubtract
	default:
		return timeline.CombineReplace
	}
}
