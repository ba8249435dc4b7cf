package blitz

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float32 draw parameters at once: a position,
// a scale, a rotation or a tint. Call Update(dt) each frame and pass the
// animated fields to SpriteBatch.Draw. There is no global animation manager.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float32
	Done   bool
}

// Update advances every tween by dt seconds and writes the values through.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = val
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Reset rewinds every tween to its start.
func (g *TweenGroup) Reset() {
	for i := 0; i < g.count; i++ {
		g.tweens[i].Reset()
		*g.fields[i], _ = g.tweens[i].Update(0)
	}
	g.Done = false
}

func (g *TweenGroup) add(field *float32, to, duration float32, fn ease.TweenFunc) {
	g.tweens[g.count] = gween.New(*field, to, duration, fn)
	g.fields[g.count] = field
	g.count++
}

// TweenVec2 animates v to the target over duration seconds.
func TweenVec2(v *Vec2, to Vec2, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(&v.X, to.X, duration, fn)
	g.add(&v.Y, to.Y, duration, fn)
	return g
}

// TweenFloat animates a single value, such as a rotation or depth.
func TweenFloat(v *float32, to, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(v, to, duration, fn)
	return g
}

// TweenColor animates all four components of c.
func TweenColor(c *Color, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(&c.R, to.R, duration, fn)
	g.add(&c.G, to.G, duration, fn)
	g.add(&c.B, to.B, duration, fn)
	g.add(&c.A, to.A, duration, fn)
	return g
}
