// Package hit resolves which clip and which affordance a screen point
// targets. Handle zones grow for coarse pointers and shrink for fine ones;
// the capability flags are injected so the tester runs without a host
// environment.
package hit

import (
	"math"

	"github.com/clipforge/clipline/internal/timeline"
	"github.com/clipforge/clipline/internal/timeline/coords"
)

// Zone identifies the affordance a point struck within a clip.
type Zone uint8

const (
	// ZoneNone indicates no clip was hit.
	ZoneNone Zone = iota
	// ZoneBody is the clip interior; pressing here starts a move.
	ZoneBody
	// ZoneHandleLeft is the left resize handle.
	ZoneHandleLeft
	// ZoneHandleRight is the right resize handle.
	ZoneHandleRight
)

// String returns a string representation of the zone.
func (z Zone) String() string {
	switch z {
	case ZoneBody:
		return "body"
	case ZoneHandleLeft:
		return "handle-left"
	case ZoneHandleRight:
		return "handle-right"
	default:
		return "none"
	}
}

// Caps describes the pointer environment. Injected rather than read from
// globals so hit testing is deterministic under test.
type Caps struct {
	// CoarsePointer is true for touch and pen input.
	CoarsePointer bool

	// ConstrainedViewport is true on small screens, where targets get a
	// middle-ground enlargement even with a fine pointer.
	ConstrainedViewport bool
}

// Handle zone widths in pixels, by pointer class, for probes inside the
// clip body. Probes just outside the clip use the same width scaled by
// exteriorScale, so grabbing slightly past an edge still resolves to a
// resize while clicks well inside stay moves.
const (
	handleCoarsePx      = 14.0
	handleConstrainedPx = 10.0
	handleFinePx        = 6.0
	exteriorScale       = 1.5

	// ambiguityEpsilonPx: when a point inside a narrow clip is nearly
	// equidistant from both handles, prefer the body over guessing a side.
	ambiguityEpsilonPx = 2.0
)

// HandleWidth returns the interior handle zone width for the capability
// class.
func (c Caps) HandleWidth() float64 {
	switch {
	case c.CoarsePointer:
		return handleCoarsePx
	case c.ConstrainedViewport:
		return handleConstrainedPx
	default:
		return handleFinePx
	}
}

// Result is a resolved hit.
type Result struct {
	ClipID timeline.ID
	Zone   Zone
}

// Tester resolves screen points against the clip layout.
type Tester struct {
	caps   Caps
	layout coords.Layout
}

// NewTester creates a tester for the given pointer capabilities and
// vertical layout.
func NewTester(caps Caps, layout coords.Layout) *Tester {
	return &Tester{caps: caps, layout: layout}
}

// Test resolves the screen point (x, y) against clips. x is in content
// space (scroll already applied by the caller); y is in surface space.
// clips must be in render order, earliest-added first; overlapping clips
// resolve to the latest-added, except that an already-selected candidate
// wins over a later-drawn unselected one, keeping an active manipulation
// sticky when another clip lands on top of it.
func (t *Tester) Test(x, y float64, tracks []timeline.Track, clips []timeline.Clip, sel timeline.Selection, zoom float64) (Result, bool) {
	idx, ok := t.layout.TrackIndexAt(y, len(tracks))
	if !ok {
		return Result{}, false
	}
	// Hidden tracks never render; their clips are transparent to the
	// pointer as well.
	if !tracks[idx].Visible {
		return Result{}, false
	}
	trackID := tracks[idx].ID

	var best Result
	bestSelected := false
	found := false
	for i := len(clips) - 1; i >= 0; i-- {
		c := clips[i]
		if c.TrackID != trackID {
			continue
		}
		zone, hit := t.testClip(x, c, zoom)
		if !hit {
			continue
		}
		selected := sel.Contains(c.ID)
		if !found {
			best = Result{ClipID: c.ID, Zone: zone}
			bestSelected = selected
			found = true
			continue
		}
		// A selected clip under an unselected topmost one takes over.
		if selected && !bestSelected {
			best = Result{ClipID: c.ID, Zone: zone}
			bestSelected = true
		}
	}
	return best, found
}

// testClip resolves x against one clip's body and handle zones.
func (t *Tester) testClip(x float64, c timeline.Clip, zoom float64) (Zone, bool) {
	left := coords.TimeToPixels(c.Start, zoom)
	right := coords.TimeToPixels(c.End(), zoom)
	width := right - left

	interior := t.caps.HandleWidth()
	// Opposite handles on a narrow clip must not claim the same pixel.
	if interior > width/2 {
		interior = width / 2
	}
	exterior := t.caps.HandleWidth() * exteriorScale

	inside := x >= left && x <= right
	if inside {
		dLeft := x - left
		dRight := right - x
		inLeft := dLeft <= interior
		inRight := dRight <= interior
		switch {
		case inLeft && inRight:
			if math.Abs(dLeft-dRight) <= ambiguityEpsilonPx {
				return ZoneBody, true
			}
			if dLeft < dRight {
				return ZoneHandleLeft, true
			}
			return ZoneHandleRight, true
		case inLeft:
			return ZoneHandleLeft, true
		case inRight:
			return ZoneHandleRight, true
		default:
			return ZoneBody, true
		}
	}

	// Outside the clip: only the enlarged exterior handle zones apply.
	if x < left && left-x <= exterior {
		return ZoneHandleLeft, true
	}
	if x > right && x-right <= exterior {
		return ZoneHandleRight, true
	}
	return ZoneNone, false
}
