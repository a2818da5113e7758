package engine

import (
	"testing"

	"github.com/clipforge/clipline/internal/state"
	"github.com/clipforge/clipline/internal/timeline"
)

func TestRenderPassOrder(t *testing.T) {
	st := moveFixture()
	st.Clips[2].Samples = []float64{0.1, 0.5, 0.9}
	e, _, surface := testEngine(t, st, DefaultConfig())

	e.Render()

	ops := surface.Ops()
	if len(ops) == 0 {
		t.Fatal("no surface calls recorded")
	}
	if ops[0] != "clear" {
		t.Errorf("first op = %q, want clear", ops[0])
	}
	if ops[1] != "ruler" {
		t.Errorf("second op = %q, want ruler", ops[1])
	}
	if ops[len(ops)-1] != "playhead" {
		t.Errorf("last op = %q, want playhead", ops[len(ops)-1])
	}

	// Track backgrounds draw before any clip.
	firstClip, lastTrack := -1, -1
	for i, op := range ops {
		if op == "clip" && firstClip < 0 {
			firstClip = i
		}
		if op == "track" {
			lastTrack = i
		}
	}
	if lastTrack < 0 || firstClip < 0 || lastTrack > firstClip {
		t.Errorf("track backgrounds must precede clips: ops = %v", ops)
	}

	if got := len(surface.CallsFor("track")); got != 2 {
		t.Errorf("track background calls = %d, want 2", got)
	}
	if got := len(surface.CallsFor("clip")); got != 3 {
		t.Errorf("clip calls = %d, want 3", got)
	}

	// The clip with samples draws its waveform immediately after itself.
	waves := surface.CallsFor("waveform")
	if len(waves) != 1 || waves[0].Samples != 3 {
		t.Errorf("waveform calls = %v, want one with 3 samples", waves)
	}
}

func TestRenderCullsOffscreenClips(t *testing.T) {
	st := moveFixture()
	// 800 px at zoom 0 is 16 s; this clip starts far past the window.
	st.Clips = append(st.Clips, timeline.Clip{ID: "far", TrackID: "t1", Start: 100_000, Duration: 1000})
	e, _, surface := testEngine(t, st, DefaultConfig())

	e.Render()

	for _, c := range surface.CallsFor("clip") {
		if c.ClipID == "far" {
			t.Error("offscreen clip was drawn")
		}
	}
}

func TestRenderSkipsHiddenTracks(t *testing.T) {
	st := moveFixture()
	st.Tracks[1].Visible = false
	e, _, surface := testEngine(t, st, DefaultConfig())

	e.Render()

	if got := len(surface.CallsFor("track")); got != 1 {
		t.Errorf("track background calls = %d, want 1", got)
	}
	for _, c := range surface.CallsFor("clip") {
		if c.ClipID == "c" {
			t.Error("clip on a hidden track was drawn")
		}
	}
}

func TestRenderMarksSelection(t *testing.T) {
	e, store, surface := testEngine(t, moveFixture(), DefaultConfig())
	store.Dispatch(state.SetSelection{Selection: timeline.Only("a")}, false, nil)

	e.Render()

	for _, c := range surface.CallsFor("clip") {
		if c.ClipID == "a" && !c.Selected {
			t.Error("selected clip drawn unselected")
		}
		if c.ClipID == "b" && c.Selected {
			t.Error("unselected clip drawn selected")
		}
	}
}

func TestRenderDrawsActiveMarquee(t *testing.T) {
	e, _, surface := testEngine(t, moveFixture(), DefaultConfig())

	e.HandlePointer(down(400, 56))
	e.HandlePointer(move(300, 120))
	e.Render()

	rects := surface.CallsFor("marquee")
	if len(rects) != 1 {
		t.Fatalf("marquee calls = %d, want 1", len(rects))
	}
	r := rects[0]
	if r.X != 300 || r.Y != 56 || r.W != 100 || r.H != 64 {
		t.Errorf("marquee rect = %v/%v %vx%v, want 300/56 100x64", r.X, r.Y, r.W, r.H)
	}
	e.HandlePointer(up(300, 120))

	surface.Reset()
	e.Render()
	if len(surface.CallsFor("marquee")) != 0 {
		t.Error("marquee should not draw after release")
	}
}

func TestRenderReclampsScrollAfterZoomOut(t *testing.T) {
	e, store, _ := testEngine(t, moveFixture(), DefaultConfig())

	// Scroll right, then zoom out so the content shrinks; the next frame
	// pulls the scroll back into range.
	e.Viewport().SetScroll(10_000, 20_000)
	store.Dispatch(state.SetZoom{Zoom: -4}, false, nil)
	e.Render()

	maxScroll := e.Viewport().ContentWidth(store.State().MaxClipEnd(), -4) - e.Viewport().Width()
	if got := e.Viewport().Scroll(); got > maxScroll {
		t.Errorf("Scroll = %v, beyond max %v", got, maxScroll)
	}
}

func TestRenderPreviewsMarqueeSelection(t *testing.T) {
	e, store, surface := testEngine(t, moveFixture(), DefaultConfig())

	// Drag a marquee over clip b. While the rectangle is up, b draws
	// selected even though the store selection only changes at release.
	e.HandlePointer(down(400, 90))
	e.HandlePointer(move(240, 40))
	surface.Reset()
	e.Render()

	if !store.State().Selection.Empty() {
		t.Fatal("selection committed before release")
	}
	for _, c := range surface.CallsFor("clip") {
		if c.ClipID == "b" && !c.Selected {
			t.Error("covered clip not drawn selected during marquee")
		}
		if c.ClipID == "a" && c.Selected {
			t.Error("uncovered clip drawn selected during marquee")
		}
	}

	e.HandlePointer(up(240, 40))
	if !store.State().Selection.IsOnly("b") {
		t.Errorf("committed selection = %v, want only b", store.State().Selection.IDs)
	}
}
