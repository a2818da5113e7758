// Package backend provides concrete render surfaces. Terminal draws the
// timeline into a tcell screen, quantizing the engine's pixel geometry to
// character cells, and translates tcell input into pointer events.
package backend

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"

	"github.com/clipforge/clipline/internal/timeline"
)

// Cell size in engine pixels. The engine works in pixels; the terminal
// quantizes to character cells on this grid.
const (
	CellWidthPx  = 8.0
	CellHeightPx = 16.0
)

// Terminal implements render.Surface on a tcell screen.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen

	// prevButtons tracks the last mouse button mask so press and release
	// edges can be derived from tcell's level-triggered events.
	prevButtons tcell.ButtonMask

	saved int
}

// NewTerminal creates a terminal surface.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen wraps an existing screen; used with tcell's
// simulation screen in tests.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Init initializes the terminal and enables mouse reporting.
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnableMouse()
	return nil
}

// Shutdown restores the terminal state.
func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Fini()
}

// Size returns the surface size in engine pixels.
func (t *Terminal) Size() (float64, float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	w, h := t.screen.Size()
	return float64(w) * CellWidthPx, float64(h) * CellHeightPx
}

// Resize is a no-op: the terminal size follows the host window and
// arrives via resize events.
func (t *Terminal) Resize(_, _ float64) {}

// Clear erases the screen.
func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Clear()
}

// Show flushes pending drawing to the terminal.
func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screen.Show()
}

// Save pushes a clip region. The terminal has no real clip stack; the
// depth is tracked so Save/Restore pairs stay balanced.
func (t *Terminal) Save() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.saved++
}

// Restore pops the last saved clip region.
func (t *Terminal) Restore() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.saved > 0 {
		t.saved--
	}
}

// DrawClip fills the clip rectangle and overlays its truncated name.
func (t *Terminal) DrawClip(clip timeline.Clip, x, y, w, h float64, selected bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cx, cy, cw, ch := cellRect(x, y, w, h)
	if cw <= 0 || ch <= 0 {
		return
	}

	fill := timeline.ClipColor(clip.Color)
	if selected {
		fill = timeline.SelectedShade(fill)
	}
	style := tcell.StyleDefault.Background(toTcell(fill)).Foreground(tcell.ColorBlack)

	t.fill(cx, cy, cw, ch, ' ', style)

	label := clip.Name
	if clip.Reversed {
		label = "◀ " + label
	}
	t.text(cx, cy, cw, truncate(label, cw), style)
}

// DrawWaveform draws peak bars along the bottom rows of the clip
// rectangle using block glyphs.
func (t *Terminal) DrawWaveform(samples []float64, x, y, w, h float64, color colorful.Color) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cx, cy, cw, ch := cellRect(x, y, w, h)
	if cw <= 0 || ch <= 0 || len(samples) == 0 {
		return
	}

	// One glyph per cell column, sampled across the clip width.
	blocks := []rune("▁▂▃▄▅▆▇█")
	style := tcell.StyleDefault.
		Background(toTcell(timeline.BorderShade(color))).
		Foreground(toTcell(color))
	row := cy + ch - 1
	for i := 0; i < cw; i++ {
		s := samples[i*len(samples)/cw]
		if s < 0 {
			s = 0
		}
		if s > 1 {
			s = 1
		}
		idx := int(s * float64(len(blocks)-1))
		t.screen.SetContent(cx+i, row, blocks[idx], nil, style)
	}
}

// DrawThumbnail fills the region with a dim placeholder; a character grid
// has no way to show a decoded frame.
func (t *Terminal) DrawThumbnail(_ []byte, x, y, w, h float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cx, cy, cw, ch := cellRect(x, y, w, h)
	style := tcell.StyleDefault.Background(tcell.ColorDarkSlateGray)
	t.fill(cx, cy, cw, ch, '░', style)
}

// DrawPlayhead draws the playhead as a vertical line.
func (t *Terminal) DrawPlayhead(x, height float64, color colorful.Color) {
	t.mu.Lock()
	defer t.mu.Unlock()

	col := int(x / CellWidthPx)
	rows := int(height / CellHeightPx)
	if col < 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(toTcell(color))
	for row := 0; row <= rows; row++ {
		t.screen.SetContent(col, row, '│', nil, style)
	}
}

// DrawTimeRuler draws the ruler band with second ticks.
func (t *Terminal) DrawTimeRuler(startTime, endTime, pixelsPerMS, height float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	w, _ := t.screen.Size()
	rows := int(height / CellHeightPx)
	if rows < 1 {
		rows = 1
	}
	style := tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorSilver)
	t.fill(0, 0, w, rows, ' ', style)

	// Tick every second, labelled m:ss, skipping labels that would collide.
	const tickMS = 1000.0
	first := float64(int(startTime/tickMS)) * tickMS
	lastCol := -3
	for ts := first; ts <= endTime; ts += tickMS {
		col := int((ts - startTime) * pixelsPerMS / CellWidthPx)
		if col < 0 || col >= w || col < lastCol+6 {
			continue
		}
		label := fmt.Sprintf("%d:%02d", int(ts)/60000, (int(ts)/1000)%60)
		t.text(col, 0, w-col, label, style)
		lastCol = col
	}
}

// DrawTrackBackground fills one track row.
func (t *Terminal) DrawTrackBackground(y, w, h float64, alternate bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cx, cy, cw, ch := cellRect(0, y, w, h)
	style := tcell.StyleDefault.Background(toTcell(timeline.TrackShade(alternate)))
	t.fill(cx, cy, cw, ch, ' ', style)
}

// DrawSelectionRect draws the marquee as a dotted outline.
func (t *Terminal) DrawSelectionRect(x, y, w, h float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cx, cy, cw, ch := cellRect(x, y, w, h)
	if cw <= 0 || ch <= 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorLightSkyBlue)
	for i := 0; i < cw; i++ {
		t.screen.SetContent(cx+i, cy, '╌', nil, style)
		t.screen.SetContent(cx+i, cy+ch-1, '╌', nil, style)
	}
	for j := 0; j < ch; j++ {
		t.screen.SetContent(cx, cy+j, '╎', nil, style)
		t.screen.SetContent(cx+cw-1, cy+j, '╎', nil, style)
	}
}

// fill covers a cell rectangle with one rune. Caller holds the lock.
func (t *Terminal) fill(cx, cy, cw, ch int, r rune, style tcell.Style) {
	w, h := t.screen.Size()
	for y := cy; y < cy+ch && y < h; y++ {
		for x := cx; x < cx+cw && x < w; x++ {
			if x >= 0 && y >= 0 {
				t.screen.SetContent(x, y, r, nil, style)
			}
		}
	}
}

// text writes a string clipped to maxw cells. Caller holds the lock.
func (t *Terminal) text(cx, cy, maxw int, s string, style tcell.Style) {
	col := cx
	for _, r := range s {
		if col >= cx+maxw {
			break
		}
		t.screen.SetContent(col, cy, r, nil, style)
		col++
	}
}

// truncate cuts a clip label at grapheme-cluster boundaries so combining
// marks and emoji never split mid-cluster.
func truncate(s string, maxCells int) string {
	if maxCells <= 0 {
		return ""
	}
	out := ""
	cells := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cells++
		if cells > maxCells {
			break
		}
		out += g.Str()
	}
	return out
}

// cellRect quantizes a pixel rectangle to the cell grid.
func cellRect(x, y, w, h float64) (cx, cy, cw, ch int) {
	cx = int(x / CellWidthPx)
	cy = int(y / CellHeightPx)
	cw = int((x+w)/CellWidthPx) - cx
	cy2 := int((y + h) / CellHeightPx)
	ch = cy2 - cy
	if cw < 1 && w > 0 {
		cw = 1
	}
	if ch < 1 && h > 0 {
		ch = 1
	}
	return cx, cy, cw, ch
}

// toTcell converts a colorful color to a tcell RGB color.
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
