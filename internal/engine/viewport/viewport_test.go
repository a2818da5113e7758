package viewport

import (
	"math"
	"testing"

	"github.com/clipforge/clipline/internal/timeline/coords"
)

func TestNewClampsDimensions(t *testing.T) {
	v := New(0, -5)
	if v.Width() != 1 || v.Height() != 1 {
		t.Errorf("size = %v x %v, want 1 x 1", v.Width(), v.Height())
	}
}

func TestContentWidth(t *testing.T) {
	v := New(800, 600)
	// 10 s of clips at zoom 0 is 500 px, plus one viewport of runway.
	if got := v.ContentWidth(10_000, 0); got != 1300 {
		t.Errorf("ContentWidth = %v, want 1300", got)
	}
	if got := v.ContentWidth(0, 0); got != 800 {
		t.Errorf("empty timeline ContentWidth = %v, want 800", got)
	}
}

func TestSetScrollClamps(t *testing.T) {
	v := New(800, 600)

	v.SetScroll(-100, 1300)
	if v.Scroll() != 0 {
		t.Errorf("negative scroll = %v, want 0", v.Scroll())
	}

	v.SetScroll(10_000, 1300)
	if v.Scroll() != 500 {
		t.Errorf("overscroll = %v, want 500", v.Scroll())
	}

	// Content narrower than the viewport pins scroll at 0.
	v.SetScroll(50, 400)
	if v.Scroll() != 0 {
		t.Errorf("narrow-content scroll = %v, want 0", v.Scroll())
	}
}

func TestScrollBy(t *testing.T) {
	v := New(800, 600)
	v.ScrollBy(200, 1300)
	v.ScrollBy(100, 1300)
	if v.Scroll() != 300 {
		t.Errorf("Scroll = %v, want 300", v.Scroll())
	}
	v.ScrollBy(-1000, 1300)
	if v.Scroll() != 0 {
		t.Errorf("Scroll = %v, want 0", v.Scroll())
	}
}

func TestTimeAtXForTimeInverse(t *testing.T) {
	v := New(800, 600)
	v.SetScroll(250, 5000)

	for _, x := range []float64{0, 100, 400, 799} {
		tm := v.TimeAt(x, 1.5)
		back := v.XForTime(tm, 1.5)
		if math.Abs(back-x) > 1e-9 {
			t.Errorf("XForTime(TimeAt(%v)) = %v", x, back)
		}
	}
}

func TestContentX(t *testing.T) {
	v := New(800, 600)
	v.SetScroll(120, 5000)
	if got := v.ContentX(30); got != 150 {
		t.Errorf("ContentX(30) = %v, want 150", got)
	}
}

func TestVisibleTimeRange(t *testing.T) {
	v := New(800, 600)
	v.SetScroll(100, 5000)

	start, end := v.VisibleTimeRange(0)
	if start != coords.PixelsToTime(100, 0) {
		t.Errorf("start = %v", start)
	}
	if end != coords.PixelsToTime(900, 0) {
		t.Errorf("end = %v", end)
	}
	if end <= start {
		t.Error("visible range must be non-empty")
	}
}

func TestAnchorZoomKeepsPointStable(t *testing.T) {
	v := New(800, 600)

	// t = 8000 ms rendered at x = 300 before the zoom must still render
	// at x = 300 after.
	oldZoom, newZoom := 0.0, 1.0
	v.SetScroll(coords.TimeToPixels(8000, oldZoom)-300, 100_000)
	anchorTime := v.TimeAt(300, oldZoom)
	if math.Abs(anchorTime-8000) > 1e-9 {
		t.Fatalf("anchor time = %v, want 8000", anchorTime)
	}

	v.AnchorZoom(newZoom, 300, anchorTime, 100_000)
	if got := v.XForTime(8000, newZoom); math.Abs(got-300) > 1e-9 {
		t.Errorf("anchor moved to x = %v, want 300", got)
	}
}

func TestAnchorZoomClampsAtOrigin(t *testing.T) {
	v := New(800, 600)
	// Anchoring near t=0 while zooming out would need negative scroll;
	// it clamps to 0 instead.
	v.AnchorZoom(-2, 700, 100, 5000)
	if v.Scroll() != 0 {
		t.Errorf("Scroll = %v, want 0", v.Scroll())
	}
}

func TestCenterOn(t *testing.T) {
	v := New(800, 600)
	v.CenterOn(20_000, 0, 100_000)

	if got := v.XForTime(20_000, 0); math.Abs(got-400) > 1e-9 {
		t.Errorf("centered time at x = %v, want 400", got)
	}
}
