// Package render implements the terminal render loop: it samples a
// rectangle of tiles from a world.World, composites them with any overlay
// surface, and writes the result to a terminal as ANSI escapes — only
// when the frame actually changed.
package render

import (
	"context"
	"hash/fnv"
	"io"
	"sync"
	"sync/atomic"

	"tileland/internal/coords"
	"tileland/internal/profiling"
	"tileland/internal/tui"
	"tileland/internal/voxel"
	"tileland/internal/world"
)

// ViewState is the camera the render loop samples the world through.
type ViewState struct {
	ViewX, ViewY int
	CurrentZ     int
	Width        int
	Height       int

	ModifiedChunkCount int
	TPS                float64
}

// Loop owns the render thread. Ground:
// original_source/Controllers/TuiRenderer.cpp's render thread (its
// renderCache/currentViewState fields and FNV-1a frame-diff hash) and
// internal/game/fps_limiter.go in the teacher repo for frame pacing —
// this package has no direct teacher analogue since the teacher renders
// via OpenGL, so it leans most heavily on original_source for exact
// behavior.
type Loop struct {
	world *world.World
	out   io.Writer

	targetHz float64
	pacer    pacer

	viewMu sync.Mutex
	view   ViewState

	overlayMu sync.Mutex
	overlay   *tui.Surface

	running  atomic.Bool
	lastHash uint64

	prof *profiling.Profiler

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewLoop builds a render loop over w, writing frames to out at up to
// targetHz frames per second.
func NewLoop(w *world.World, out io.Writer, targetHz float64) *Loop {
	return &Loop{
		world:    w,
		out:      out,
		targetHz: targetHz,
		view:     ViewState{Width: 64, Height: 48},
		prof:     profiling.New(),
	}
}

// Stats returns a one-line summary of the slowest stages of the last frame,
// e.g. "render.paintWorld:1.8ms, render.Paint:0.4ms" — what a stats overlay
// displays.
func (l *Loop) Stats(topN int) string {
	return l.prof.TopN(topN)
}

// SetView updates the camera the next frame will be sampled through.
func (l *Loop) SetView(v ViewState) {
	l.viewMu.Lock()
	l.view = v
	l.viewMu.Unlock()
}

func (l *Loop) snapshotView() ViewState {
	l.viewMu.Lock()
	defer l.viewMu.Unlock()
	return l.view
}

// SetOverlay installs a surface (e.g. a stats panel) composited on top of
// the world each frame. Pass nil to clear it.
func (l *Loop) SetOverlay(s *tui.Surface) {
	l.overlayMu.Lock()
	l.overlay = s
	l.overlayMu.Unlock()
}

func (l *Loop) snapshotOverlay() *tui.Surface {
	l.overlayMu.Lock()
	defer l.overlayMu.Unlock()
	return l.overlay
}

// Start begins the render thread. A no-op if already running.
func (l *Loop) Start(ctx context.Context) {
	if !l.running.CompareAndSwap(false, true) {
		return
	}
	l.stopCh = make(chan struct{})
	l.doneCh = make(chan struct{})
	go l.run(ctx)
}

// Stop halts the render thread and waits for it to exit. Idempotent.
func (l *Loop) Stop() {
	if !l.running.CompareAndSwap(true, false) {
		return
	}
	close(l.stopCh)
	<-l.doneCh
}

func (l *Loop) run(ctx context.Context) {
	defer close(l.doneCh)
	io.WriteString(l.out, tui.HideCursor())
	defer io.WriteString(l.out, tui.ShowCursor())

	for {
		select {
		case <-ctx.Done():
			return
		case <-l.stopCh:
			return
		default:
		}
		l.renderFrame()
		l.pacer.wait(l.targetHz)
	}
}

// renderFrame builds one frame and writes it only if its content differs
// from the previous frame, per the spec's frame-diff invariant.
func (l *Loop) renderFrame() {
	l.prof.ResetFrame()

	view := l.snapshotView()
	surface := tui.NewSurface(view.Width*2, view.Height)

	paintDone := l.prof.Track("render.paintWorld")
	l.paintWorld(surface, view)
	paintDone()

	if overlay := l.snapshotOverlay(); overlay != nil {
		compositeOverlay(surface, overlay)
	}

	encodeDone := l.prof.Track("render.Paint")
	frame := tui.Paint(surface)
	encodeDone()

	h := frameHash(frame)
	if h == l.lastHash {
		return
	}
	l.lastHash = h
	io.WriteString(l.out, frame)
}

// paintWorld samples one Z layer of tiles into surface. Each tile occupies
// two adjacent terminal columns (glyph columns are doubled) so the grid
// reads roughly square despite terminal cells being taller than they are
// wide. Tiles whose chunk isn't loaded render as the Void glyph rather
// than erroring — out-of-range/unloaded substitution, per spec.
func (l *Loop) paintWorld(surface *tui.Surface, view ViewState) {
	voidProps := voxel.PropertiesOf(voxel.Void)
	for ty := 0; ty < view.Height; ty++ {
		wy := view.ViewY + ty
		for tx := 0; tx < view.Width; tx++ {
			wx := view.ViewX + tx
			wc := coords.WorldCoord{X: wx, Y: wy, Z: view.CurrentZ}
			tile, err := l.world.GetTile(wc)

			var glyph string
			var fg, bg voxel.RGB
			if err != nil {
				glyph, fg, bg = voidProps.Glyph, voidProps.Foreground, voidProps.Background
			} else {
				glyph = voxel.PropertiesOf(tile.Terrain).Glyph
				fg = tile.EffectiveForeground()
				bg = tile.EffectiveBackground()
			}

			cell := tui.Cell{Glyph: glyph, Fg: fg, Bg: bg, HasBg: true}
			surface.Set(tx*2, ty, cell)
			surface.Set(tx*2+1, ty, cell)
		}
	}
}

// compositeOverlay copies every non-blank overlay cell on top of the base
// surface, matching original_source/TuiRenderer.cpp's overlay-replaces-map
// compositing: an overlay glyph takes over the cell entirely; a blank
// overlay cell lets the world glyph beneath it show through.
func compositeOverlay(base, overlay *tui.Surface) {
	for y := 0; y < overlay.H && y < base.H; y++ {
		for x := 0; x < overlay.W && x < base.W; x++ {
			cell, _ := overlay.At(x, y)
			if cell.Glyph == "" || cell.Glyph == " " {
				continue
			}
			base.Set(x, y, cell)
		}
	}
}

func frameHash(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}
