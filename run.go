package blitz

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game is driven by Run: one Update tick followed by one Draw tick per frame.
// Draw brackets its drawing with batch.Begin and batch.End.
type Game interface {
	Update(dt float32) error
	Draw(batch *SpriteBatch)
}

// Run opens a window and drives game until it returns an error or the window
// closes. Returning ebiten.Termination from Update ends the loop cleanly.
func Run(game Game, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	r := newRunner(game, cfg)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetVsyncEnabled(cfg.VSync)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}

	Logger().Info("blitz: starting game loop", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	defer r.batch.Close()

	err := ebiten.RunGame(r)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	Logger().Info("blitz: game loop stopped", "err", err)
	if err != nil {
		return fmt.Errorf("blitz: run: %w", err)
	}
	return nil
}

// runner adapts a Game to ebiten.Game.
type runner struct {
	game  Game
	cfg   Config
	dev   *EbitenDevice
	batch *SpriteBatch
	clear color.Color
	frame uint64
}

func newRunner(game Game, cfg Config) *runner {
	dev := NewEbitenDevice(nil)
	c := cfg.ClearColor.Premultiply()
	return &runner{
		game: game,
		cfg:  cfg,
		dev:  dev,
		batch: NewSpriteBatch(dev,
			WithCapacity(cfg.BatchCapacity),
			WithStreamMode(cfg.StreamMode),
		),
		clear: color.RGBA{unitByte(c.R), unitByte(c.G), unitByte(c.B), unitByte(c.A)},
	}
}

func (r *runner) Update() error {
	return r.game.Update(1 / float32(ebiten.TPS()))
}

func (r *runner) Draw(screen *ebiten.Image) {
	screen.Fill(r.clear)
	r.dev.SetTarget(screen)
	r.game.Draw(r.batch)
	r.frame++

	if r.cfg.Debug {
		logFrameStats(r.frame, r.batch)
	}
	if r.cfg.ShowDiagnostics {
		DrawDiagnostics(screen, r.batch)
	}
}

func (r *runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	if r.cfg.Resizable {
		return outsideWidth, outsideHeight
	}
	return r.cfg.Width, r.cfg.Height
}
