// Package controller implements the viewer's main loop: it drains input,
// adopts chunks the generator pool finished, advances the camera, and
// keeps the chunk preload ring topped up — the component that ties the
// world, the generator pool, the renderer and input together into a
// runnable session.
package controller

import (
	"context"
	"fmt"
	"time"

	"tileland/internal/config"
	"tileland/internal/coords"
	"tileland/internal/genpool"
	"tileland/internal/logging"
	"tileland/internal/render"
	"tileland/internal/tui"
	"tileland/internal/voxel"
	"tileland/internal/world"
)

// Controller is the viewer's main loop. Ground: internal/game/app.go and
// session.go in the teacher repo for the tick structure (drain input,
// update, render, measure dt) and internal/world/chunk_streamer.go for the
// pending-set + radius-expansion request pattern — adapted from the
// teacher's synchronous/async dual-path chunk streaming to a pool-drain
// -and-adopt model, since genpool.Pool (unlike chunk_streamer) does not
// dedupe in-flight requests itself.
type Controller struct {
	world    *world.World
	pool     *genpool.Pool
	renderer *render.Loop
	input    InputSource
	settings *config.Settings
	log      logging.Logger

	pending map[coords.ChunkCoord]struct{}

	view     render.ViewState
	quit     bool
	tickN    uint64
	started  time.Time
}

// New builds a controller wiring together the given collaborators.
func New(w *world.World, pool *genpool.Pool, renderer *render.Loop, input InputSource, settings *config.Settings, log logging.Logger) *Controller {
	if log == nil {
		log = logging.Nop
	}
	width, height := settings.GetViewSize()
	return &Controller{
		world:    w,
		pool:     pool,
		renderer: renderer,
		input:    input,
		settings: settings,
		log:      log,
		pending:  make(map[coords.ChunkCoord]struct{}),
		view:     render.ViewState{Width: int(width), Height: int(height)},
	}
}

// Run drives ticks at settings.TargetTPS until input produces a "quit"
// event. Shutdown order is renderer, then pool — the renderer is stopped
// first so it never reads from a world whose pool has already torn down,
// then the pool is shut down once nothing is draining it anymore.
func (c *Controller) Run() {
	c.started = time.Now()
	ctx := context.Background()
	c.renderer.SetView(c.view)
	c.renderer.Start(ctx)
	defer func() {
		c.renderer.Stop()
		c.pool.Shutdown()
	}()

	interval := time.Duration(float64(time.Second) / c.settings.GetTargetTPS())
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for !c.quit {
		c.tick()
		<-ticker.C
	}
}

func (c *Controller) tick() {
	c.tickN++

	for _, ev := range c.input.Poll() {
		c.handleEvent(ev)
	}
	if c.quit {
		return
	}

	for _, chunk := range c.pool.DrainFinished() {
		coord := chunk.Coord
		delete(c.pending, coord)
		if !c.world.AddChunk(coord, chunk) {
			c.log.Info("controller: dropped duplicate generated chunk", "coord", coord)
		}
	}

	c.view.ModifiedChunkCount = int(c.world.ModCount())
	c.view.TPS = c.settings.GetTargetTPS()
	c.renderer.SetView(c.view)
	c.updateStatsOverlay()

	c.requestPreloadRing()
}

// updateStatsOverlay builds (or clears) the stats panel the renderer
// composites over the world each frame, per settings.EnableStatsOverlay.
func (c *Controller) updateStatsOverlay() {
	if !c.settings.GetEnableStatsOverlay() {
		c.renderer.SetOverlay(nil)
		return
	}
	line := fmt.Sprintf("tick %d | tps %.0f | chunks %d | %s",
		c.tickN, c.view.TPS, c.view.ModifiedChunkCount, c.renderer.Stats(3))

	width, _ := c.settings.GetViewSize()
	overlay := tui.NewSurface(int(width)*2, c.view.Height)
	overlay.DrawText(0, 0, line, voxel.RGB{R: 255, G: 255, B: 0}, voxel.RGB{}, false)
	c.renderer.SetOverlay(overlay)
}

func (c *Controller) handleEvent(ev InputEvent) {
	switch ev.Kind {
	case "key":
		switch ev.Key {
		case "quit":
			c.quit = true
		case "up":
			c.view.ViewY--
		case "down":
			c.view.ViewY++
		case "left":
			c.view.ViewX--
		case "right":
			c.view.ViewX++
		case "layer-up":
			c.view.CurrentZ++
		case "layer-down":
			c.view.CurrentZ--
		case "toggle-stats":
			c.settings.ToggleStatsOverlay()
		}
	}
}

// requestPreloadRing keeps the chunks covering the current view (expanded
// by one chunk on every side, and one Z layer above/below) resident,
// requesting generation for any that are neither loaded nor already
// in-flight.
func (c *Controller) requestPreloadRing() {
	minWorld := coords.WorldCoord{X: c.view.ViewX, Y: c.view.ViewY, Z: c.view.CurrentZ}
	maxWorld := coords.WorldCoord{
		X: c.view.ViewX + c.view.Width,
		Y: c.view.ViewY + c.view.Height,
		Z: c.view.CurrentZ,
	}
	minChunk := coords.ChunkOfCoord(minWorld)
	maxChunk := coords.ChunkOfCoord(maxWorld)

	for cx := minChunk.X - 1; cx <= maxChunk.X+1; cx++ {
		for cy := minChunk.Y - 1; cy <= maxChunk.Y+1; cy++ {
			for cz := minChunk.Z - 1; cz <= maxChunk.Z+1; cz++ {
				coord := coords.ChunkCoord{X: cx, Y: cy, Z: cz}
				c.requestIfNeeded(coord)
			}
		}
	}
}

func (c *Controller) requestIfNeeded(coord coords.ChunkCoord) {
	if c.world.HasChunk(coord) {
		return
	}
	if _, ok := c.pending[coord]; ok {
		return
	}
	if c.pool.RequestChunk(coord) {
		c.pending[coord] = struct{}{}
	}
}
