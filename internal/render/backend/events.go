package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/clipforge/clipline/internal/input/pointer"
)

// ResizeEvent reports a new surface size in engine pixels.
type ResizeEvent struct {
	Width  float64
	Height float64
}

// Command is a keyboard command the host loop acts on.
type Command uint8

const (
	// CommandNone indicates an event the host can ignore.
	CommandNone Command = iota
	// CommandQuit exits the application.
	CommandQuit
	// CommandUndo reverts the last undoable edit.
	CommandUndo
	// CommandRedo re-applies the last undone edit.
	CommandRedo
	// CommandZoomIn zooms the timeline in one step.
	CommandZoomIn
	// CommandZoomOut zooms the timeline out one step.
	CommandZoomOut
	// CommandSave writes the session document.
	CommandSave
)

// wheelTickPx is the scroll distance of one wheel tick in engine pixels.
const wheelTickPx = 3 * CellHeightPx

// PollEvent blocks for the next terminal event and translates it into a
// pointer.Event, a pointer.WheelEvent, a ResizeEvent, or a Command.
func (t *Terminal) PollEvent() any {
	for {
		ev := t.screen.PollEvent()
		switch tev := ev.(type) {
		case *tcell.EventResize:
			w, h := tev.Size()
			return ResizeEvent{
				Width:  float64(w) * CellWidthPx,
				Height: float64(h) * CellHeightPx,
			}
		case *tcell.EventKey:
			if cmd := translateKey(tev); cmd != CommandNone {
				return cmd
			}
		case *tcell.EventMouse:
			if out, ok := t.translateMouse(tev); ok {
				return out
			}
		case nil:
			return CommandQuit
		}
	}
}

// translateKey maps key chords to commands.
func translateKey(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit
	case tcell.KeyCtrlZ:
		return CommandUndo
	case tcell.KeyCtrlY:
		return CommandRedo
	case tcell.KeyCtrlS:
		return CommandSave
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return CommandQuit
		case '+', '=':
			return CommandZoomIn
		case '-':
			return CommandZoomOut
		}
	}
	return CommandNone
}

// translateMouse derives press/release edges from tcell's level-triggered
// button mask and maps wheel bits to wheel events.
func (t *Terminal) translateMouse(ev *tcell.EventMouse) (any, bool) {
	x, y := ev.Position()
	pos := pointer.Point{
		X: (float64(x) + 0.5) * CellWidthPx,
		Y: (float64(y) + 0.5) * CellHeightPx,
	}
	mods := translateMods(ev.Modifiers())

	buttons := ev.Buttons()
	if wheel := buttons & (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight); wheel != 0 {
		out := pointer.WheelEvent{Modifiers: mods, Pos: pos}
		switch {
		case wheel&tcell.WheelUp != 0:
			out.DeltaY = -wheelTickPx
		case wheel&tcell.WheelDown != 0:
			out.DeltaY = wheelTickPx
		case wheel&tcell.WheelLeft != 0:
			out.DeltaX = -wheelTickPx
		case wheel&tcell.WheelRight != 0:
			out.DeltaX = wheelTickPx
		}
		return out, true
	}

	t.mu.Lock()
	prev := t.prevButtons
	t.prevButtons = buttons
	t.mu.Unlock()

	out := pointer.Event{Modifiers: mods, Pos: pos}
	switch {
	case buttons&tcell.Button1 != 0 && prev&tcell.Button1 == 0:
		out.Action = pointer.ActionDown
		out.Button = pointer.ButtonLeft
	case buttons&tcell.Button1 == 0 && prev&tcell.Button1 != 0:
		out.Action = pointer.ActionUp
		out.Button = pointer.ButtonLeft
	default:
		out.Action = pointer.ActionMove
		if buttons&tcell.Button1 != 0 {
			out.Button = pointer.ButtonLeft
		}
	}
	return out, true
}

// translateMods converts tcell modifier state.
func translateMods(m tcell.ModMask) pointer.Modifier {
	var out pointer.Modifier
	if m&tcell.ModShift != 0 {
		out |= pointer.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= pointer.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= pointer.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		out |= pointer.ModMeta
	}
	return out
}
