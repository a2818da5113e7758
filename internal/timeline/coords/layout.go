package coords

// Layout holds the vertical metrics of the timeline surface: the ruler band
// at the top followed by fixed-height track rows.
type Layout struct {
	// RulerHeight is the height of the time ruler band, in pixels.
	RulerHeight float64

	// TrackHeight is the height of one track row, in pixels.
	TrackHeight float64

	// TrackGap is the spacing between adjacent track rows, in pixels.
	TrackGap float64
}

// DefaultLayout returns the standard timeline metrics.
func DefaultLayout() Layout {
	return Layout{
		RulerHeight: 28,
		TrackHeight: 56,
		TrackGap:    2,
	}
}

// TrackY returns the top y coordinate of the track at index.
func (l Layout) TrackY(index int) float64 {
	return l.RulerHeight + float64(index)*(l.TrackHeight+l.TrackGap)
}

// TrackIndexAt maps a y coordinate to a track index among trackCount
// tracks. ok is false for the ruler band and for points below the last
// track. Points in the gap between rows resolve to the row above the gap.
func (l Layout) TrackIndexAt(y float64, trackCount int) (int, bool) {
	if y < l.RulerHeight || trackCount <= 0 {
		return 0, false
	}
	idx := int((y - l.RulerHeight) / (l.TrackHeight + l.TrackGap))
	if idx >= trackCount {
		return 0, false
	}
	return idx, true
}

// NearestTrackIndex maps a y coordinate to the closest valid track index,
// clamping above the first and below the last track. Used while dragging
// clips vertically, where a miss should stick to the nearest lane.
func (l Layout) NearestTrackIndex(y float64, trackCount int) int {
	if trackCount <= 0 {
		return 0
	}
	idx := int((y - l.RulerHeight) / (l.TrackHeight + l.TrackGap))
	if idx < 0 {
		return 0
	}
	if idx >= trackCount {
		return trackCount - 1
	}
	return idx
}

// InRuler reports whether y falls inside the ruler band.
func (l Layout) InRuler(y float64) bool {
	return y >= 0 && y < l.RulerHeight
}

// Height returns the total pixel height of the ruler plus trackCount rows.
func (l Layout) Height(trackCount int) float64 {
	if trackCount <= 0 {
		return l.RulerHeight
	}
	return l.TrackY(trackCount-1) + l.TrackHeight
}
