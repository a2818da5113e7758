// Package pointer defines the pointer event vocabulary consumed by the
// interaction engine: positions, buttons, modifiers, and actions. The
// engine is fed these events by a host adapter (the terminal backend in
// the demo binary, synthetic events in tests).
package pointer

// Point is a screen-space position in pixels.
type Point struct {
	X float64
	Y float64
}

// Equal reports whether two points are equal.
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// DistancePx returns the Manhattan distance (|dx| + |dy|) between two
// points. Cheap and close enough for slop thresholds.
func (p Point) DistancePx(other Point) float64 {
	dx := p.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Button represents a pointer button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary button.
	ButtonLeft
	// ButtonMiddle is the middle button.
	ButtonMiddle
	// ButtonRight is the secondary button.
	ButtonRight
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "none"
	}
}

// Modifier represents keyboard modifier state during a pointer event.
type Modifier uint8

const (
	// ModNone indicates no modifiers held.
	ModNone Modifier = 0
	// ModShift is the additive-selection modifier.
	ModShift Modifier = 1 << iota
	// ModCtrl is the toggle-selection (and wheel-zoom) modifier.
	ModCtrl
	// ModAlt is the subtractive-selection modifier.
	ModAlt
	// ModMeta mirrors ModCtrl on platforms where Command is primary.
	ModMeta
)

// HasShift reports whether Shift is held.
func (m Modifier) HasShift() bool { return m&ModShift != 0 }

// HasCtrl reports whether Ctrl or Meta is held.
func (m Modifier) HasCtrl() bool { return m&(ModCtrl|ModMeta) != 0 }

// HasAlt reports whether Alt is held.
func (m Modifier) HasAlt() bool { return m&ModAlt != 0 }

// Action represents the kind of pointer event.
type Action uint8

const (
	// ActionNone indicates no action.
	ActionNone Action = iota
	// ActionDown is a button press.
	ActionDown
	// ActionMove is pointer movement, with or without a held button.
	ActionMove
	// ActionUp is a button release.
	ActionUp
	// ActionLeave is the pointer leaving the surface.
	ActionLeave
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionMove:
		return "move"
	case ActionUp:
		return "up"
	case ActionLeave:
		return "leave"
	default:
		return "none"
	}
}

// Event is one pointer event.
type Event struct {
	Action    Action
	Button    Button
	Modifiers Modifier
	Pos       Point
}

// WheelEvent is one scroll-wheel or trackpad event. DeltaX and DeltaY are
// in pixels; positive DeltaY scrolls content right (the usual wheel-down
// convention for a horizontal timeline).
type WheelEvent struct {
	DeltaX    float64
	DeltaY    float64
	Modifiers Modifier
	Pos       Point
}

// DominantDelta returns whichever axis delta has the larger magnitude, so
// vertical mouse wheels and horizontal trackpad swipes both scroll the
// timeline.
func (w WheelEvent) DominantDelta() float64 {
	ax, ay := w.DeltaX, w.DeltaY
	if ax < 0 {
		ax = -ax
	}
	if ay < 0 {
		ay = -ay
	}
	if ax > ay {
		return w.DeltaX
	}
	return w.DeltaY
}
