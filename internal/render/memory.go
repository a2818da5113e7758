package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/clipforge/clipline/internal/timeline"
)

// Call is one recorded surface call.
type Call struct {
	Op string

	// Geometry, where the op has any.
	X, Y, W, H float64

	// Op-specific payload.
	ClipID    timeline.ID
	Selected  bool
	Alternate bool
	StartTime float64
	EndTime   float64
	Samples   int
}

// MemorySurface records surface calls for tests and headless runs. It
// implements Surface.
type MemorySurface struct {
	width  float64
	height float64
	saved  int

	// Calls is the recorded call log in draw order.
	Calls []Call
}

// NewMemorySurface creates a recording surface with the given size.
func NewMemorySurface(w, h float64) *MemorySurface {
	return &MemorySurface{width: w, height: h}
}

// Ops returns just the op names of the recorded calls, in order.
func (m *MemorySurface) Ops() []string {
	out := make([]string, len(m.Calls))
	for i, c := range m.Calls {
		out[i] = c.Op
	}
	return out
}

// Reset discards the recorded call log.
func (m *MemorySurface) Reset() {
	m.Calls = nil
}

// CallsFor returns recorded calls with the given op name.
func (m *MemorySurface) CallsFor(op string) []Call {
	var out []Call
	for _, c := range m.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

func (m *MemorySurface) DrawClip(clip timeline.Clip, x, y, w, h float64, selected bool) {
	m.Calls = append(m.Calls, Call{Op: "clip", X: x, Y: y, W: w, H: h, ClipID: clip.ID, Selected: selected})
}

func (m *MemorySurface) DrawWaveform(samples []float64, x, y, w, h float64, _ colorful.Color) {
	m.Calls = append(m.Calls, Call{Op: "waveform", X: x, Y: y, W: w, H: h, Samples: len(samples)})
}

func (m *MemorySurface) DrawThumbnail(_ []byte, x, y, w, h float64) {
	m.Calls = append(m.Calls, Call{Op: "thumbnail", X: x, Y: y, W: w, H: h})
}

func (m *MemorySurface) DrawPlayhead(x, height float64, _ colorful.Color) {
	m.Calls = append(m.Calls, Call{Op: "playhead", X: x, H: height})
}

func (m *MemorySurface) DrawTimeRuler(startTime, endTime, _, height float64) {
	m.Calls = append(m.Calls, Call{Op: "ruler", H: height, StartTime: startTime, EndTime: endTime})
}

func (m *MemorySurface) DrawTrackBackground(y, w, h float64, alternate bool) {
	m.Calls = append(m.Calls, Call{Op: "track", Y: y, W: w, H: h, Alternate: alternate})
}

func (m *MemorySurface) DrawSelectionRect(x, y, w, h float64) {
	m.Calls = append(m.Calls, Call{Op: "marquee", X: x, Y: y, W: w, H: h})
}

func (m *MemorySurface) Clear() {
	m.Calls = append(m.Calls, Call{Op: "clear"})
}

func (m *MemorySurface) Resize(w, h float64) {
	m.width, m.height = w, h
}

func (m *MemorySurface) Size() (float64, float64) {
	return m.width, m.height
}

func (m *MemorySurface) Save() {
	m.saved++
}

func (m *MemorySurface) Restore() {
	if m.saved > 0 {
		m.saved--
	}
}
