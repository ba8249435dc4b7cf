// sprites10k spawns 10,000 sprites that rotate, scale, fade and bounce
// around the screen simultaneously, sorted back to front by depth. A stress
// test for the batching pipeline. Pass -config to load window and batch
// settings from YAML.
package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"log/slog"
	"math"
	"math/rand/v2"
	"os"

	"github.com/phanxgames/blitz"
)

const (
	count  = 10_000
	sprite = 64
)

type whelp struct {
	pos, vel   blitz.Vec2
	rotation   float32
	rotSpeed   float32
	scaleBase  float32
	scaleAmp   float32
	scaleSpeed float32
	alphaSpeed float32
	phase      float32
	tint       blitz.Color
	depth      float32
}

type game struct {
	tex     blitz.Texture
	w, h    float32
	sprites []whelp
	time    float32
}

func (g *game) Update(dt float32) error {
	g.time += dt
	for i := range g.sprites {
		s := &g.sprites[i]
		s.pos.X += s.vel.X * dt
		s.pos.Y += s.vel.Y * dt
		if s.pos.X < 0 || s.pos.X > g.w {
			s.vel.X = -s.vel.X
		}
		if s.pos.Y < 0 || s.pos.Y > g.h {
			s.vel.Y = -s.vel.Y
		}
		s.rotation += s.rotSpeed * dt
	}
	return nil
}

func (g *game) Draw(batch *blitz.SpriteBatch) {
	origin := blitz.Vec2{X: sprite / 2, Y: sprite / 2}
	batch.Begin(blitz.SortBackToFront, nil, nil)
	for i := range g.sprites {
		s := &g.sprites[i]
		sc := s.scaleBase + s.scaleAmp*float32(math.Sin(float64(g.time*s.scaleSpeed+s.phase)))
		c := s.tint
		c.A = 0.5 + 0.5*float32(math.Sin(float64(g.time*s.alphaSpeed+s.phase)))
		batch.DrawScaled(g.tex, s.pos, nil, c, s.rotation, origin, sc, false, false, s.depth)
	}
	batch.End()
}

// blob is a soft white disc, tinted per sprite.
func blob() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, sprite, sprite))
	r := float64(sprite) / 2
	for y := 0; y < sprite; y++ {
		for x := 0; x < sprite; x++ {
			d := math.Hypot(float64(x)+0.5-r, float64(y)+0.5-r) / r
			if d >= 1 {
				continue
			}
			a := uint8(255 * (1 - d*d))
			img.SetRGBA(x, y, color.RGBA{a, a, a, a})
		}
	}
	return img
}

func main() {
	configPath := flag.String("config", "", "YAML config file")
	verbose := flag.Bool("v", false, "log batch stats every frame")
	flag.Parse()

	cfg := blitz.DefaultConfig()
	cfg.Title = "blitz: 10k sprites"
	cfg.Width, cfg.Height = 1280, 720
	cfg.BatchCapacity = count
	cfg.ShowDiagnostics = true
	if *configPath != "" {
		var err error
		if cfg, err = blitz.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if *verbose {
		cfg.Debug = true
		blitz.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	g := &game{
		tex:     blitz.NewTextureFromImage(blob()),
		w:       float32(cfg.Width),
		h:       float32(cfg.Height),
		sprites: make([]whelp, count),
	}
	for i := range g.sprites {
		g.sprites[i] = whelp{
			pos:        blitz.Vec2{X: rand.Float32() * g.w, Y: rand.Float32() * g.h},
			vel:        blitz.Vec2{X: (rand.Float32() - 0.5) * 240, Y: (rand.Float32() - 0.5) * 240},
			rotSpeed:   (rand.Float32() - 0.5) * 5,
			scaleBase:  0.3 + rand.Float32()*0.4,
			scaleAmp:   0.05 + rand.Float32()*0.1,
			scaleSpeed: 1 + rand.Float32()*2,
			alphaSpeed: 0.5 + rand.Float32()*2,
			phase:      rand.Float32() * math.Pi * 2,
			tint:       blitz.Color{R: 0.5 + rand.Float32()*0.5, G: 0.5 + rand.Float32()*0.5, B: 0.5 + rand.Float32()*0.5, A: 1},
			depth:      rand.Float32(),
		}
	}

	if err := blitz.Run(g, cfg); err != nil {
		log.Fatal(err)
	}
}
