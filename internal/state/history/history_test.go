package history

import (
	"errors"
	"testing"
)

type snap struct {
	playhead float64
}

func TestPushUndoRedo(t *testing.T) {
	h := New[snap](10)

	h.Push("set playhead", snap{0}, snap{500})

	before, err := h.Undo()
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if before.playhead != 0 {
		t.Errorf("undo restored %v, want 0", before.playhead)
	}

	after, err := h.Redo()
	if err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if after.playhead != 500 {
		t.Errorf("redo restored %v, want 500", after.playhead)
	}
}

func TestUndoEmpty(t *testing.T) {
	h := New[snap](10)
	if _, err := h.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo on empty stack = %v, want ErrNothingToUndo", err)
	}
	if _, err := h.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("Redo on empty stack = %v, want ErrNothingToRedo", err)
	}
}

func TestPushClearsRedo(t *testing.T) {
	h := New[snap](10)
	h.Push("a", snap{0}, snap{1})
	h.Push("b", snap{1}, snap{2})

	if _, err := h.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if !h.CanRedo() {
		t.Fatal("expected redo available after undo")
	}

	h.Push("c", snap{1}, snap{3})
	if h.CanRedo() {
		t.Error("push should clear the redo stack")
	}
	if h.UndoCount() != 2 {
		t.Errorf("UndoCount = %d, want 2", h.UndoCount())
	}
}

func TestUndoOrder(t *testing.T) {
	h := New[snap](10)
	h.Push("a", snap{0}, snap{1})
	h.Push("b", snap{1}, snap{2})
	h.Push("c", snap{2}, snap{3})

	want := []float64{2, 1, 0}
	for i, w := range want {
		before, err := h.Undo()
		if err != nil {
			t.Fatalf("Undo %d: %v", i, err)
		}
		if before.playhead != w {
			t.Errorf("undo %d restored %v, want %v", i, before.playhead, w)
		}
	}
}

func TestMaxEntries(t *testing.T) {
	h := New[snap](3)
	for i := 0; i < 5; i++ {
		h.Push("n", snap{float64(i)}, snap{float64(i + 1)})
	}
	if h.UndoCount() != 3 {
		t.Fatalf("UndoCount = %d, want 3", h.UndoCount())
	}
	// The two oldest entries were dropped; the deepest undo restores 2.
	var last snap
	for h.CanUndo() {
		s, err := h.Undo()
		if err != nil {
			t.Fatal(err)
		}
		last = s
	}
	if last.playhead != 2 {
		t.Errorf("deepest undo restored %v, want 2", last.playhead)
	}
}

func TestPeek(t *testing.T) {
	h := New[snap](10)
	if _, ok := h.PeekUndo(); ok {
		t.Error("PeekUndo on empty stack should be false")
	}

	h.Push("move clips", snap{0}, snap{1})
	info, ok := h.PeekUndo()
	if !ok || info.Label != "move clips" {
		t.Errorf("PeekUndo = (%+v, %v), want label %q", info, ok, "move clips")
	}
	if h.UndoCount() != 1 {
		t.Error("peek must not consume the entry")
	}

	if _, err := h.Undo(); err != nil {
		t.Fatal(err)
	}
	info, ok = h.PeekRedo()
	if !ok || info.Label != "move clips" {
		t.Errorf("PeekRedo = (%+v, %v), want label %q", info, ok, "move clips")
	}
}

func TestClear(t *testing.T) {
	h := New[snap](10)
	h.Push("a", snap{0}, snap{1})
	h.Push("b", snap{1}, snap{2})
	if _, err := h.Undo(); err != nil {
		t.Fatal(err)
	}

	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("Clear should drop both stacks")
	}
}

func TestZeroMaxUsesDefault(t *testing.T) {
	h := New[snap](0)
	h.Push("a", snap{0}, snap{1})
	if h.UndoCount() != 1 {
		t.Errorf("UndoCount = %d, want 1", h.UndoCount())
	}
}
