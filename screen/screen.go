// Package screen runs an archipelago Simulation in an Ebitengine window.
package screen

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/archipelago"
)

// RunConfig holds window settings for Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the initial window size in pixels. Zero values
	// take the simulation's configured size.
	Width, Height int
	// ShowFPS draws an FPS/TPS overlay in the top-left corner.
	ShowFPS bool
	// ScreenshotDir receives PNGs queued with Simulation.Screenshot.
	// Defaults to "screenshots".
	ScreenshotDir string
	// Runner, if set, is attached to the simulation and the window closes
	// once it finishes.
	Runner *archipelago.TestRunner
}

// errScriptDone ends the game loop cleanly after a scripted run.
var errScriptDone = errors.New("archipelago: script done")

// game adapts a Simulation to ebiten.Game.
type game struct {
	sim      *archipelago.Simulation
	cfg      RunConfig
	canvas   *canvas
	pointer  pointerState
	fpsAccum time.Duration
	fpsText  string
	finished bool
}

// Run opens a window and blocks until it is closed. One Simulation.Step runs
// per tick; window pixels map 1:1 to world units and resizing the window
// resizes the simulation.
func Run(sim *archipelago.Simulation, cfg RunConfig) error {
	if cfg.Title == "" {
		cfg.Title = "archipelago"
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	b := sim.Bounds()
	if cfg.Width <= 0 {
		cfg.Width = int(b.Width)
	}
	if cfg.Height <= 0 {
		cfg.Height = int(b.Height)
	}
	if cfg.Runner != nil {
		sim.SetTestRunner(cfg.Runner)
	}

	c, err := newCanvas()
	if err != nil {
		return err
	}
	g := &game{sim: sim, cfg: cfg, canvas: c}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errScriptDone) {
		return fmt.Errorf("archipelago: run: %w", err)
	}
	return nil
}

// Update implements ebiten.Game.
func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	// One extra frame lets Draw flush the script's last screenshots.
	if g.finished {
		return errScriptDone
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.sim.Screenshot("manual")
	}
	g.pointer.apply(g.sim, g.pointer.sample(g.sim.Bounds()))
	g.sim.Step()

	if g.cfg.Runner != nil && g.cfg.Runner.Done() && g.sim.PendingInput() == 0 {
		g.finished = true
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *game) Draw(dst *ebiten.Image) {
	dst.Fill(backgroundColor())
	g.canvas.begin(dst)
	g.sim.Draw(g.canvas)
	g.canvas.flush()

	if g.cfg.ShowFPS {
		g.drawFPS(dst)
	}
	flushScreenshots(dst, g.cfg.ScreenshotDir, g.sim.TakeScreenshotRequests())
}

// drawFPS refreshes the overlay text about twice a second.
func (g *game) drawFPS(dst *ebiten.Image) {
	g.fpsAccum += g.sim.Config().FrameTime
	if g.fpsText == "" || g.fpsAccum >= 500*time.Millisecond {
		g.fpsAccum = 0
		g.fpsText = fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nbodies: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), len(g.sim.Bodies()))
	}
	ebitenutil.DebugPrint(dst, g.fpsText)
}

// Layout implements ebiten.Game. The logical screen always matches the
// window so a window resize is a canvas resize.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.sim.Bounds()
	if float64(outsideWidth) != b.Width || float64(outsideHeight) != b.Height {
		g.sim.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}
