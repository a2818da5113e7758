package timeline

import "github.com/google/uuid"

// ID identifies a track or clip.
type ID string

// NewID returns a fresh random identifier.
func NewID() ID {
	return ID(uuid.NewString())
}

// MinClipDuration is the floor, in milliseconds, below which no edit may
// shrink a clip.
const MinClipDuration = 100.0

// Track is an ordered lane of clips. Index determines vertical placement;
// the engine reads it and never changes it.
type Track struct {
	ID      ID
	Name    string
	Index   int
	Visible bool
}

// Clip is a placed media segment on a track.
type Clip struct {
	ID      ID
	TrackID ID

	// Start and Duration are in milliseconds. Duration is always > 0.
	Start    float64
	Duration float64

	// TrimStart is the in-point into the source media, in milliseconds.
	// Never negative.
	TrimStart float64

	Name     string
	Color    string
	Speed    float64
	Reversed bool

	// Samples holds decoded waveform peaks in [0,1], or nil when the media
	// has no audio or decoding has not finished.
	Samples []float64
}

// End returns the clip's end time in milliseconds.
func (c Clip) End() float64 {
	return c.Start + c.Duration
}

// Contains reports whether t falls inside the clip's placed range.
func (c Clip) Contains(t float64) bool {
	return t >= c.Start && t < c.End()
}
