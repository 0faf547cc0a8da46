//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"eca/internal/config"
	"eca/internal/core"
	"eca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const captionHeight = 16

// captioner is implemented by sims that describe their progress.
type captioner interface {
	Caption() string
}

// Game adapts a registered simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	palette render.Palette
	pace    *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for sim. seed is the seed R restarts with.
func New(sim core.Sim, palette render.Palette, seed int64, opts Options) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		palette: palette,
		pace:    core.NewFixedStep(opts.Rate),
		scale:   opts.Scale,
		seed:    seed,
	}
}

// Run opens a window and plays cfg until the window is closed.
func Run(cfg config.Config, opts Options) error {
	opts = opts.withDefaults()
	sim, err := newSim(cfg, opts)
	if err != nil {
		return err
	}
	palette, err := render.ParsePalette(cfg.Palette)
	if err != nil {
		return err
	}
	game := New(sim, palette, cfg.Seed, opts)
	size := sim.Size()

	ebiten.SetWindowTitle(fmt.Sprintf("eca — rule %d", cfg.Rule))
	ebiten.SetWindowSize(size.W*opts.Scale, size.H*opts.Scale+captionHeight)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Reset restarts the run from generation 0 drawn with seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles input and advances the run at the configured rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if g.tickOnce || (!g.paused && g.pace.ShouldStep()) {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the grid and a caption line.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)

	caption := g.sim.Name()
	if c, ok := g.sim.(captioner); ok {
		caption = c.Caption()
	}
	if g.paused {
		caption += " (paused)"
	}
	text.Draw(screen, caption, basicfont.Face7x13, 4, g.sim.Size().H*g.scale+12, color.White)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H*g.scale + captionHeight
}
