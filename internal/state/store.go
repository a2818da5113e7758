package state

import (
	"sync"

	"github.com/clipforge/clipline/internal/state/history"
)

// Store holds the editor state and its undo history. State changes go
// through Dispatch; listeners registered with Subscribe run synchronously
// after every change so the host can re-render before the next input
// event.
type Store struct {
	mu    sync.Mutex
	state EditorState
	hist  *history.Stack[Snapshot]

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

// NewStore creates a store seeded with the given state.
func NewStore(initial EditorState) *Store {
	return &Store{
		state: initial.Clone(),
		hist:  history.New[Snapshot](0),
		subs:  make(map[int]func()),
	}
}

// State returns a deep copy of the current state.
func (st *Store) State() EditorState {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state.Clone()
}

// Subscribe registers a state-change listener and returns its unsubscribe
// function. Listeners run synchronously after each dispatch.
func (st *Store) Subscribe(fn func()) func() {
	st.subMu.Lock()
	defer st.subMu.Unlock()

	id := st.nextSub
	st.nextSub++
	st.subs[id] = fn
	return func() {
		st.subMu.Lock()
		defer st.subMu.Unlock()
		delete(st.subs, id)
	}
}

// Dispatch applies an intent. With recordHistory false the change mutates
// state without touching the undo stack — every intermediate drag frame
// dispatches this way. With recordHistory true one undo entry is pushed;
// when snapshot is non-nil it is used as the entry's "before" state in
// place of the state immediately preceding this dispatch, which is how a
// whole gesture collapses into a single undo step.
func (st *Store) Dispatch(in Intent, recordHistory bool, snapshot *Snapshot) {
	st.mu.Lock()
	before := st.state.Clone()
	in.apply(&st.state)
	if recordHistory {
		if snapshot != nil {
			before = snapshot.Clone()
		}
		st.hist.Push(in.Label(), before, st.state.Clone())
	}
	st.mu.Unlock()

	st.notify()
}

// Undo reverts the most recent history entry.
func (st *Store) Undo() error {
	st.mu.Lock()
	snap, err := st.hist.Undo()
	if err != nil {
		st.mu.Unlock()
		return err
	}
	st.state = snap.Clone()
	st.mu.Unlock()

	st.notify()
	return nil
}

// Redo re-applies the most recently undone entry.
func (st *Store) Redo() error {
	st.mu.Lock()
	snap, err := st.hist.Redo()
	if err != nil {
		st.mu.Unlock()
		return err
	}
	st.state = snap.Clone()
	st.mu.Unlock()

	st.notify()
	return nil
}

// CanUndo reports whether an undo step is available.
func (st *Store) CanUndo() bool { return st.hist.CanUndo() }

// CanRedo reports whether a redo step is available.
func (st *Store) CanRedo() bool { return st.hist.CanRedo() }

// UndoCount returns the number of undo steps available.
func (st *Store) UndoCount() int { return st.hist.UndoCount() }

// notify runs all listeners outside the state lock.
func (st *Store) notify() {
	st.subMu.Lock()
	fns := make([]func(), 0, len(st.subs))
	for _, fn := range st.subs {
		fns = append(fns, fn)
	}
	st.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
