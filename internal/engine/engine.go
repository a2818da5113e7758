// Package engine implements the timeline interaction engine: the pointer
// gesture state machine, snapping, hit testing, zoom-anchored viewport
// control, and the per-frame render pass. The engine reads editor state
// from the store and proposes edits as intents; it never owns clip or
// track data.
package engine

import (
	"errors"
	"sync"

	"github.com/clipforge/clipline/internal/engine/viewport"
	"github.com/clipforge/clipline/internal/input/pointer"
	"github.com/clipforge/clipline/internal/logging"
	"github.com/clipforge/clipline/internal/render"
	"github.com/clipforge/clipline/internal/state"
	"github.com/clipforge/clipline/internal/timeline/coords"
	"github.com/clipforge/clipline/internal/timeline/hit"
	"github.com/clipforge/clipline/internal/timeline/snap"
)

// Construction errors.
var (
	ErrNoSurface = errors.New("engine: render surface is required")
	ErrNoStore   = errors.New("engine: state store is required")
)

// Config tunes the interaction heuristics.
type Config struct {
	// Snap holds the boundary-snapping tuning.
	Snap snap.Config

	// Caps describes the pointer environment for hit testing.
	Caps hit.Caps

	// Layout holds the vertical timeline metrics.
	Layout coords.Layout

	// PlayheadGrabPx is how close to the playhead line, in pixels, a press
	// in the track area still starts a scrub.
	PlayheadGrabPx float64

	// MarqueeThresholdPx is the movement slop a press on empty space must
	// exceed before it counts as a marquee rather than a click.
	MarqueeThresholdPx float64

	// ZoomStep is the zoom delta applied per zoom-in/out request.
	ZoomStep float64

	// CapturePointer requests exclusive pointer routing from the host.
	// Best-effort: a nil func or a returned error leaves the gesture on
	// ordinary event delivery. ReleasePointer undoes it.
	CapturePointer func() error
	ReleasePointer func()
}

// DefaultConfig returns the standard interaction tuning.
func DefaultConfig() Config {
	return Config{
		Snap:               snap.DefaultConfig(),
		Caps:               hit.Caps{},
		Layout:             coords.DefaultLayout(),
		PlayheadGrabPx:     4,
		MarqueeThresholdPx: 3,
		ZoomStep:           0.5,
	}
}

// Engine is the timeline interaction engine. One instance owns the
// ephemeral view state (scroll, zoom anchoring, hover, the live gesture)
// for one timeline surface.
type Engine struct {
	mu sync.Mutex

	store   *state.Store
	surface render.Surface
	view    *viewport.Viewport
	tester  *hit.Tester
	snapper *snap.Solver
	cfg     Config
	log     *logging.Logger

	// hover is the last known pointer position over the surface.
	hover      pointer.Point
	hoverValid bool

	// drag is the live gesture, nil when idle.
	drag dragState

	// captured is true while the host granted exclusive pointer routing.
	captured bool
}

// New creates an engine bound to a store and a render surface. Both are
// required; construction fails fast rather than degrading silently.
func New(store *state.Store, surface render.Surface, cfg Config, log *logging.Logger) (*Engine, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	if store == nil {
		return nil, ErrNoStore
	}
	if log == nil {
		log = logging.Null
	}
	w, h := surface.Size()
	return &Engine{
		store:   store,
		surface: surface,
		view:    viewport.New(w, h),
		tester:  hit.NewTester(cfg.Caps, cfg.Layout),
		snapper: snap.NewSolver(cfg.Snap),
		cfg:     cfg,
		log:     log.WithComponent("engine"),
	}, nil
}

// Viewport exposes the engine's viewport for host adapters and tests.
func (e *Engine) Viewport() *viewport.Viewport {
	return e.view
}

// Dragging reports whether a gesture is in progress.
func (e *Engine) Dragging() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.drag != nil
}

// HandlePointer consumes one pointer event and advances the gesture state
// machine.
func (e *Engine) HandlePointer(ev pointer.Event) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch ev.Action {
	case pointer.ActionDown:
		// The input device pairs press/release, so a down while a gesture
		// is live means a lost release. Treat it as cancel-and-restart.
		if e.drag != nil {
			e.finishGestureLocked()
		}
		e.hover = ev.Pos
		e.hoverValid = true
		if ev.Button == pointer.ButtonLeft {
			e.beginGestureLocked(ev)
		}
	case pointer.ActionMove:
		e.hover = ev.Pos
		e.hoverValid = true
		if e.drag != nil {
			e.updateGestureLocked(ev)
		}
	case pointer.ActionUp:
		if e.drag != nil {
			e.updateGestureLocked(ev)
			e.finishGestureLocked()
		}
	case pointer.ActionLeave:
		e.hoverValid = false
		// A captured gesture keeps receiving moves after a geometric
		// leave; only an uncaptured one ends here.
		if e.drag != nil && !e.captured {
			e.finishGestureLocked()
		}
	}
}

// Resize adjusts the engine's surface and viewport to a new pixel size.
func (e *Engine) Resize(w, h float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.surface.Resize(w, h)
	e.view.Resize(w, h)
}

// beginGestureLocked resolves a left press into a gesture.
func (e *Engine) beginGestureLocked(ev pointer.Event) {
	st := e.store.State()
	zoom := coords.ClampZoom(st.Zoom)

	// Ruler presses, and presses near the playhead line anywhere in the
	// track area, scrub the playhead.
	playheadX := e.view.XForTime(st.Playhead, zoom)
	inTracks := ev.Pos.Y >= 0 && ev.Pos.Y <= e.cfg.Layout.Height(len(st.Tracks))
	nearPlayhead := inTracks && abs(ev.Pos.X-playheadX) <= e.cfg.PlayheadGrabPx
	if e.cfg.Layout.InRuler(ev.Pos.Y) || nearPlayhead {
		e.beginScrubLocked(ev, st, zoom)
		e.capture()
		return
	}

	contentX := e.view.ContentX(ev.Pos.X)
	res, ok := e.tester.Test(contentX, ev.Pos.Y, st.Tracks, st.Clips, st.Selection, zoom)
	if !ok {
		e.beginMarqueeLocked(ev, st)
		e.capture()
		return
	}

	switch res.Zone {
	case hit.ZoneHandleLeft, hit.ZoneHandleRight:
		e.beginResizeLocked(ev, st, res)
		e.capture()
	case hit.ZoneBody:
		if e.beginMoveLocked(ev, st, res) {
			e.capture()
		}
	}
}

// updateGestureLocked advances the live gesture for a pointer position.
func (e *Engine) updateGestureLocked(ev pointer.Event) {
	switch d := e.drag.(type) {
	case *scrubState:
		e.updateScrubLocked(d, ev)
	case *moveState:
		e.updateMoveLocked(d, ev)
	case *resizeState:
		e.updateResizeLocked(d, ev)
	case *marqueeState:
		e.updateMarqueeLocked(d, ev)
	}
}

// finishGestureLocked commits and discards the live gesture.
func (e *Engine) finishGestureLocked() {
	switch d := e.drag.(type) {
	case *scrubState:
		e.finishScrubLocked(d)
	case *moveState:
		e.finishMoveLocked(d)
	case *resizeState:
		e.finishResizeLocked(d)
	case *marqueeState:
		e.finishMarqueeLocked(d)
	}
	e.drag = nil
	e.release()
}

// dispatch forwards an intent to the store with the engine lock released
// around the call. The store notifies subscribers synchronously, and the
// usual host subscriber calls straight back into Render, which takes the
// same lock.
func (e *Engine) dispatch(in state.Intent, recordHistory bool, snapshot *state.Snapshot) {
	e.mu.Unlock()
	e.store.Dispatch(in, recordHistory, snapshot)
	e.mu.Lock()
}

// capture asks the host for exclusive pointer routing. Failure is fine;
// the gesture proceeds on ordinary delivery.
func (e *Engine) capture() {
	if e.drag == nil || e.cfg.CapturePointer == nil {
		return
	}
	if err := e.cfg.CapturePointer(); err != nil {
		e.log.Debug("pointer capture rejected: %v", err)
		return
	}
	e.captured = true
}

// release undoes a successful capture.
func (e *Engine) release() {
	if e.captured && e.cfg.ReleasePointer != nil {
		e.cfg.ReleasePointer()
	}
	e.captured = false
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
