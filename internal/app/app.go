// Package app wires the clipline components together and runs the main
// event loop: terminal events in, engine gestures and render passes out.
package app

import (
	"errors"
	"fmt"

	"github.com/clipforge/clipline/internal/config"
	"github.com/clipforge/clipline/internal/engine"
	"github.com/clipforge/clipline/internal/input/pointer"
	"github.com/clipforge/clipline/internal/logging"
	"github.com/clipforge/clipline/internal/render/backend"
	"github.com/clipforge/clipline/internal/session"
	"github.com/clipforge/clipline/internal/state"
	"github.com/clipforge/clipline/internal/state/history"
	"github.com/clipforge/clipline/internal/timeline"
	"github.com/clipforge/clipline/internal/timeline/coords"
	"github.com/clipforge/clipline/internal/timeline/hit"
	"github.com/clipforge/clipline/internal/timeline/snap"
)

// ErrQuit signals a normal user-requested exit.
var ErrQuit = errors.New("quit")

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the JSON configuration file.
	ConfigPath string

	// SessionPath is the timeline document to open; overrides the config
	// file's session path when set.
	SessionPath string

	// LogLevel overrides the configured logging verbosity when set.
	LogLevel string
}

// Application is the central coordinator: config, store, engine, and the
// terminal surface.
type Application struct {
	cfg      config.Config
	log      *logging.Logger
	store    *state.Store
	engine   *engine.Engine
	terminal *backend.Terminal

	sessionPath string
}

// New creates an application from options.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.SessionPath != "" {
		cfg.SessionPath = opts.SessionPath
	}

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Prefix: "clipline",
	})

	st := defaultState()
	if cfg.SessionPath != "" {
		st, err = session.Load(cfg.SessionPath)
		if err != nil {
			return nil, err
		}
		log.Info("loaded session %s: %d track(s), %d clip(s)",
			cfg.SessionPath, len(st.Tracks), len(st.Clips))
	}

	return &Application{
		cfg:         cfg,
		log:         log,
		store:       state.NewStore(st),
		sessionPath: cfg.SessionPath,
	}, nil
}

// Store returns the application's state store.
func (a *Application) Store() *state.Store {
	return a.store
}

// Run initializes the terminal, wires the engine, and processes events
// until quit.
func (a *Application) Run() error {
	term, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("app: create terminal: %w", err)
	}
	if err := term.Init(); err != nil {
		return fmt.Errorf("app: init terminal: %w", err)
	}
	a.terminal = term
	defer term.Shutdown()

	eng, err := engine.New(a.store, term, a.engineConfig(), a.log)
	if err != nil {
		return err
	}
	a.engine = eng

	// Re-render on every state change, before the next input event is
	// processed.
	unsubscribe := a.store.Subscribe(func() {
		eng.Render()
		term.Show()
	})
	defer unsubscribe()

	eng.Render()
	term.Show()

	for {
		switch ev := term.PollEvent().(type) {
		case pointer.Event:
			eng.HandlePointer(ev)
			eng.Render()
			term.Show()
		case pointer.WheelEvent:
			eng.HandleWheel(ev)
			eng.Render()
			term.Show()
		case backend.ResizeEvent:
			eng.Resize(ev.Width, ev.Height)
			eng.Render()
			term.Show()
		case backend.Command:
			if err := a.handleCommand(ev); err != nil {
				return err
			}
			eng.Render()
			term.Show()
		}
	}
}

// handleCommand executes one keyboard command.
func (a *Application) handleCommand(cmd backend.Command) error {
	switch cmd {
	case backend.CommandQuit:
		return ErrQuit
	case backend.CommandUndo:
		if err := a.store.Undo(); err != nil && !errors.Is(err, history.ErrNothingToUndo) {
			return err
		}
	case backend.CommandRedo:
		if err := a.store.Redo(); err != nil && !errors.Is(err, history.ErrNothingToRedo) {
			return err
		}
	case backend.CommandZoomIn:
		a.engine.ZoomBy(a.cfg.ZoomStep)
	case backend.CommandZoomOut:
		a.engine.ZoomBy(-a.cfg.ZoomStep)
	case backend.CommandSave:
		if a.sessionPath == "" {
			a.log.Warn("no session path; nothing saved")
			return nil
		}
		if err := session.Save(a.sessionPath, a.store.State()); err != nil {
			a.log.Error("save failed: %v", err)
			return nil
		}
		a.log.Info("saved %s", a.sessionPath)
	}
	return nil
}

// engineConfig maps the loaded configuration onto the engine tuning.
func (a *Application) engineConfig() engine.Config {
	cfg := engine.DefaultConfig()
	cfg.Snap = snap.Config{
		ThresholdPx: a.cfg.SnapThresholdPx,
		BiasPx:      a.cfg.SnapBiasPx,
	}
	cfg.Caps = hit.Caps{
		CoarsePointer:       a.cfg.CoarsePointer,
		ConstrainedViewport: a.cfg.ConstrainedViewport,
	}
	cfg.PlayheadGrabPx = a.cfg.PlayheadGrabPx
	cfg.MarqueeThresholdPx = a.cfg.MarqueeThresholdPx
	cfg.ZoomStep = a.cfg.ZoomStep
	return cfg
}

// defaultState builds the empty two-track timeline shown when no session
// document is given.
func defaultState() state.EditorState {
	return state.EditorState{
		Tracks: []timeline.Track{
			{ID: timeline.NewID(), Name: "V1", Index: 0, Visible: true},
			{ID: timeline.NewID(), Name: "A1", Index: 1, Visible: true},
		},
		Zoom: coords.ClampZoom(0),
	}
}
