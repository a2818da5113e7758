package state

import (
	"errors"
	"testing"

	"github.com/clipforge/clipline/internal/state/history"
	"github.com/clipforge/clipline/internal/timeline"
	"github.com/clipforge/clipline/internal/timeline/coords"
)

func testState() EditorState {
	return EditorState{
		Tracks: []timeline.Track{
			{ID: "t1", Name: "V1", Index: 0, Visible: true},
			{ID: "t2", Name: "A1", Index: 1, Visible: true},
		},
		Clips: []timeline.Clip{
			{ID: "a", TrackID: "t1", Start: 1000, Duration: 500, TrimStart: 200},
			{ID: "b", TrackID: "t1", Start: 3000, Duration: 1000},
			{ID: "c", TrackID: "t2", Start: 0, Duration: 2000},
		},
	}
}

func TestStateIsolation(t *testing.T) {
	st := NewStore(testState())
	s := st.State()
	s.Clips[0].Start = 9999
	s.Tracks[0].Name = "changed"

	if got := st.State(); got.Clips[0].Start != 1000 || got.Tracks[0].Name != "V1" {
		t.Error("mutating a returned state leaked into the store")
	}
}

func TestSetPlayheadClamps(t *testing.T) {
	st := NewStore(testState())
	st.Dispatch(SetPlayhead{Time: 500}, true, nil)
	if got := st.State().Playhead; got != 500 {
		t.Errorf("Playhead = %v, want 500", got)
	}
	st.Dispatch(SetPlayhead{Time: -50}, true, nil)
	if got := st.State().Playhead; got != 0 {
		t.Errorf("negative time should clamp to 0, got %v", got)
	}
}

func TestSetZoomClamps(t *testing.T) {
	st := NewStore(testState())
	st.Dispatch(SetZoom{Zoom: 100}, false, nil)
	if got := st.State().Zoom; got != coords.MaxZoom {
		t.Errorf("Zoom = %v, want %v", got, coords.MaxZoom)
	}
}

func TestMoveClips(t *testing.T) {
	st := NewStore(testState())
	st.Dispatch(MoveClips{Moves: []ClipMove{
		{ClipID: "a", Start: 2000, TrackID: "t2"},
		{ClipID: "b", Start: -100, TrackID: "t1"},
	}}, true, nil)

	s := st.State()
	a, _ := s.Clip("a")
	if a.Start != 2000 || a.TrackID != "t2" {
		t.Errorf("clip a = start %v track %q, want 2000 t2", a.Start, a.TrackID)
	}
	b, _ := s.Clip("b")
	if b.Start != 0 {
		t.Errorf("negative start should clamp to 0, got %v", b.Start)
	}
}

func TestMoveClipsUnknownTrack(t *testing.T) {
	st := NewStore(testState())
	st.Dispatch(MoveClips{Moves: []ClipMove{
		{ClipID: "a", Start: 1500, TrackID: "missing"},
	}}, true, nil)

	a, _ := st.State().Clip("a")
	if a.TrackID != "t1" {
		t.Errorf("unknown track should leave the clip in place, got %q", a.TrackID)
	}
	if a.Start != 1500 {
		t.Errorf("Start = %v, want 1500", a.Start)
	}
}

func TestUpdateClipClamps(t *testing.T) {
	st := NewStore(testState())
	start := -50.0
	dur := 10.0
	trim := -5.0
	st.Dispatch(UpdateClip{ClipID: "a", Start: &start, Duration: &dur, TrimStart: &trim}, true, nil)

	a, _ := st.State().Clip("a")
	if a.Start != 0 {
		t.Errorf("Start = %v, want 0", a.Start)
	}
	if a.Duration != timeline.MinClipDuration {
		t.Errorf("Duration = %v, want %v", a.Duration, timeline.MinClipDuration)
	}
	if a.TrimStart != 0 {
		t.Errorf("TrimStart = %v, want 0", a.TrimStart)
	}
}

func TestUpdateClipPartial(t *testing.T) {
	st := NewStore(testState())
	name := "renamed"
	st.Dispatch(UpdateClip{ClipID: "a", Name: &name}, true, nil)

	a, _ := st.State().Clip("a")
	if a.Name != "renamed" {
		t.Errorf("Name = %q, want renamed", a.Name)
	}
	if a.Start != 1000 || a.Duration != 500 || a.TrimStart != 200 {
		t.Error("nil fields must stay untouched")
	}
}

func TestAddClip(t *testing.T) {
	st := NewStore(testState())
	st.Dispatch(AddClip{Clip: timeline.Clip{
		TrackID: "missing", Start: -10, Duration: 5,
	}}, true, nil)

	s := st.State()
	if len(s.Clips) != 4 {
		t.Fatalf("clip count = %d, want 4", len(s.Clips))
	}
	c := s.Clips[3]
	if c.ID == "" {
		t.Error("missing ID should be generated")
	}
	if c.TrackID != "t1" {
		t.Errorf("unknown track should resolve to the first track, got %q", c.TrackID)
	}
	if c.Start != 0 || c.Duration != timeline.MinClipDuration {
		t.Errorf("clamping failed: start %v duration %v", c.Start, c.Duration)
	}
}

func TestAddTrackAssignsIndex(t *testing.T) {
	st := NewStore(testState())
	st.Dispatch(AddTrack{Track: timeline.Track{Name: "V2", Index: 99, Visible: true}}, true, nil)

	s := st.State()
	tr, ok := s.TrackByIndex(2)
	if !ok || tr.Name != "V2" {
		t.Errorf("new track should take the next free index, got %+v", s.Tracks)
	}
}

func TestRemoveClipDropsSelection(t *testing.T) {
	st := NewStore(testState())
	st.Dispatch(SetSelection{Selection: timeline.Selection{IDs: []timeline.ID{"a", "b"}, Primary: "a"}}, false, nil)
	st.Dispatch(RemoveClip{ClipID: "a"}, true, nil)

	s := st.State()
	if _, ok := s.Clip("a"); ok {
		t.Error("clip should be gone")
	}
	if s.Selection.Contains("a") {
		t.Error("removed clip should leave the selection")
	}
	if s.Selection.Primary != "b" {
		t.Errorf("Primary = %q, want b", s.Selection.Primary)
	}
}

func TestDispatchWithoutHistory(t *testing.T) {
	st := NewStore(testState())
	st.Dispatch(SetPlayhead{Time: 100}, false, nil)
	st.Dispatch(SetPlayhead{Time: 200}, false, nil)

	if st.CanUndo() {
		t.Error("non-recording dispatches must not create history")
	}
	if got := st.State().Playhead; got != 200 {
		t.Errorf("Playhead = %v, want 200", got)
	}
}

func TestSnapshotCoalescing(t *testing.T) {
	st := NewStore(testState())
	pre := st.State()

	// A gesture: many intermediate frames, one terminal frame carrying the
	// pre-gesture snapshot.
	for _, tm := range []float64{100, 250, 400} {
		st.Dispatch(SetPlayhead{Time: tm}, false, nil)
	}
	st.Dispatch(SetPlayhead{Time: 500}, true, &pre)

	if st.UndoCount() != 1 {
		t.Fatalf("UndoCount = %d, want 1", st.UndoCount())
	}
	if err := st.Undo(); err != nil {
		t.Fatal(err)
	}
	if got := st.State().Playhead; got != 0 {
		t.Errorf("undo should restore the pre-gesture playhead, got %v", got)
	}
	if err := st.Redo(); err != nil {
		t.Fatal(err)
	}
	if got := st.State().Playhead; got != 500 {
		t.Errorf("redo should restore the terminal playhead, got %v", got)
	}
}

func TestUndoEmptyStore(t *testing.T) {
	st := NewStore(testState())
	if err := st.Undo(); !errors.Is(err, history.ErrNothingToUndo) {
		t.Errorf("Undo = %v, want ErrNothingToUndo", err)
	}
	if err := st.Redo(); !errors.Is(err, history.ErrNothingToRedo) {
		t.Errorf("Redo = %v, want ErrNothingToRedo", err)
	}
}

func TestSubscribe(t *testing.T) {
	st := NewStore(testState())
	calls := 0
	unsub := st.Subscribe(func() { calls++ })

	st.Dispatch(SetPlayhead{Time: 100}, false, nil)
	st.Dispatch(SetPlayhead{Time: 200}, true, nil)
	if calls != 2 {
		t.Errorf("listener ran %d times, want 2", calls)
	}

	if err := st.Undo(); err != nil {
		t.Fatal(err)
	}
	if calls != 3 {
		t.Errorf("undo should notify, calls = %d", calls)
	}

	unsub()
	st.Dispatch(SetPlayhead{Time: 300}, false, nil)
	if calls != 3 {
		t.Error("unsubscribed listener still ran")
	}
}

func TestMaxClipEnd(t *testing.T) {
	s := testState()
	if got := s.MaxClipEnd(); got != 4000 {
		t.Errorf("MaxClipEnd = %v, want 4000", got)
	}
	if got := (EditorState{}).MaxClipEnd(); got != 0 {
		t.Errorf("empty state MaxClipEnd = %v, want 0", got)
	}
}

func TestTrackClips(t *testing.T) {
	s := testState()
	got := s.TrackClips("t1")
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("TrackClips(t1) = %v", got)
	}
	if got := s.TrackClips("missing"); got != nil {
		t.Errorf("TrackClips(missing) = %v, want nil", got)
	}
}
