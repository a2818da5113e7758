// Package history provides snapshot-based undo/redo for the editor state
// store.
//
// Each entry holds a full before/after snapshot pair. A drag gesture that
// mutates state across many intermediate frames contributes exactly one
// entry: the store pushes the pre-gesture snapshot captured at gesture
// start together with the terminal state, so one undo reverses the whole
// gesture.
package history

import (
	"errors"
	"sync"
	"time"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultMaxEntries caps the undo stack when no explicit limit is given.
const DefaultMaxEntries = 1000

// entry wraps one undoable transition with metadata.
type entry[S any] struct {
	label     string
	before    S
	after     S
	timestamp time.Time
}

// EntryInfo describes an available undo or redo step.
type EntryInfo struct {
	Label     string
	Timestamp time.Time
}

// Stack manages undo/redo state over snapshots of type S.
type Stack[S any] struct {
	mu sync.Mutex

	undoStack []*entry[S]
	redoStack []*entry[S]

	maxEntries int
}

// New creates a history stack holding at most maxEntries undo steps.
func New[S any](maxEntries int) *Stack[S] {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Stack[S]{maxEntries: maxEntries}
}

// Push records one undoable transition from before to after.
// Clears the redo stack.
func (h *Stack[S]) Push(label string, before, after S) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.undoStack = append(h.undoStack, &entry[S]{
		label:     label,
		before:    before,
		after:     after,
		timestamp: time.Now(),
	})
	h.redoStack = nil

	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}
}

// Undo pops the most recent entry and returns the snapshot to restore.
func (h *Stack[S]) Undo() (S, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undoStack) == 0 {
		var zero S
		return zero, ErrNothingToUndo
	}

	e := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, e)
	return e.before, nil
}

// Redo re-applies the most recently undone entry and returns the snapshot
// to restore.
func (h *Stack[S]) Redo() (S, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redoStack) == 0 {
		var zero S
		return zero, ErrNothingToRedo
	}

	e := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, e)
	return e.after, nil
}

// CanUndo returns true if undo is available.
func (h *Stack[S]) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *Stack[S]) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo steps available.
func (h *Stack[S]) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack)
}

// RedoCount returns the number of redo steps available.
func (h *Stack[S]) RedoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack)
}

// PeekUndo returns info about the next undo step without removing it.
func (h *Stack[S]) PeekUndo() (EntryInfo, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undoStack) == 0 {
		return EntryInfo{}, false
	}
	e := h.undoStack[len(h.undoStack)-1]
	return EntryInfo{Label: e.label, Timestamp: e.timestamp}, true
}

// PeekRedo returns info about the next redo step without removing it.
func (h *Stack[S]) PeekRedo() (EntryInfo, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redoStack) == 0 {
		return EntryInfo{}, false
	}
	e := h.redoStack[len(h.redoStack)-1]
	return EntryInfo{Label: e.label, Timestamp: e.timestamp}, true
}

// Clear removes all undo/redo history.
func (h *Stack[S]) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.undoStack = nil
	h.redoStack = nil
}
