// Package snap aligns dragged clip edges to nearby time boundaries.
//
// A boundary is a time value edges are attracted to: clip starts and ends
// on the target track, plus the timeline origin. The solver returns the
// smallest correction that would land an edge exactly on a boundary, or
// zero when nothing is in range.
package snap

import (
	"math"

	"github.com/clipforge/clipline/internal/timeline"
	"github.com/clipforge/clipline/internal/timeline/coords"
)

// Config holds the snap tuning constants, expressed in screen pixels so
// snapping feels identical at every zoom level.
type Config struct {
	// ThresholdPx is the capture radius of a boundary.
	ThresholdPx float64

	// BiasPx is the inner zone in which a snap is honored even against the
	// current drag direction. Tuned to stop edges from snapping and
	// immediately un-snapping while the pointer trembles on a boundary.
	BiasPx float64
}

// DefaultConfig returns the standard snap tuning.
func DefaultConfig() Config {
	return Config{
		ThresholdPx: 6,
		BiasPx:      3,
	}
}

// Solver resolves snap corrections for one gesture. It carries no state
// between gestures; callers construct one per drag with the boundary set
// captured at gesture start.
type Solver struct {
	cfg Config
}

// NewSolver creates a solver with the given tuning.
func NewSolver(cfg Config) *Solver {
	return &Solver{cfg: cfg}
}

// Boundaries collects the snap boundaries of one track: every clip's start
// and end, excluding the clips in exclude (a dragged clip must never snap
// to itself), plus the timeline origin.
func Boundaries(clips []timeline.Clip, trackID timeline.ID, exclude timeline.Selection) []float64 {
	out := []float64{0}
	for _, c := range clips {
		if c.TrackID != trackID || exclude.Contains(c.ID) {
			continue
		}
		out = append(out, c.Start, c.End())
	}
	return out
}

// Resolve returns the correction to add to the proposed edge positions so
// that the nearest in-tolerance boundary is hit exactly, or 0 when no
// boundary qualifies.
//
// edges are the proposed positions of every moving edge (both edges of
// every selected clip for a move, the single moving edge for a resize).
// lastDelta is the cumulative time delta of the gesture at this frame and
// prevDelta the cumulative delta at the previous frame; the sign of their
// difference is the instantaneous drag direction used for the bias.
func (s *Solver) Resolve(edges, boundaries []float64, zoom, lastDelta, prevDelta float64) float64 {
	threshold := coords.PixelsToTime(s.cfg.ThresholdPx, zoom)
	bias := coords.PixelsToTime(s.cfg.BiasPx, zoom)

	best := 0.0
	found := false
	for _, e := range edges {
		for _, b := range boundaries {
			corr := b - e
			d := math.Abs(corr)
			if d == 0 || d > threshold {
				continue
			}
			if d > bias && !directionMatches(corr, lastDelta, prevDelta) {
				continue
			}
			if !found || d < math.Abs(best) {
				best = corr
				found = true
			}
		}
	}
	return best
}

// directionMatches reports whether a correction's sign agrees with the
// current drag direction. With no discernible direction (first frame, or a
// stationary pointer) every correction qualifies.
func directionMatches(corr, lastDelta, prevDelta float64) bool {
	dir := lastDelta - prevDelta
	if dir == 0 {
		return true
	}
	return (corr > 0) == (dir > 0)
}
