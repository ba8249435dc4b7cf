package ecs

import (
	"github.com/phanxgames/blitz"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// Sprite is the draw state of one entity. Source is in texture pixels; an
// empty Source draws the whole texture.
type Sprite struct {
	Texture  blitz.Texture
	Source   blitz.Rect
	Position blitz.Vec2
	Origin   blitz.Vec2
	Scale    blitz.Vec2
	Rotation float32
	Color    blitz.Color
	Depth    float32
	FlipH    bool
	FlipV    bool
	Hidden   bool
}

// NewSprite returns a visible, white, unscaled sprite of tex.
func NewSprite(tex blitz.Texture) Sprite {
	return Sprite{Texture: tex, Scale: blitz.Vec2{X: 1, Y: 1}, Color: blitz.ColorWhite}
}

// SpriteComponent holds a Sprite.
var SpriteComponent = donburi.NewComponentType[Sprite]()

// FrameStatsEventType carries the counters of each published batch End.
var FrameStatsEventType = events.NewEventType[blitz.BatchStats]()

var spriteQuery = donburi.NewQuery(filter.Contains(SpriteComponent))

// DrawSprites draws every visible sprite in world. The batch must be between
// Begin and End. Sprites without a texture are skipped.
func DrawSprites(world donburi.World, batch *blitz.SpriteBatch) {
	spriteQuery.Each(world, func(e *donburi.Entry) {
		s := SpriteComponent.Get(e)
		if s.Hidden || s.Texture == nil {
			return
		}
		var src *blitz.Rect
		if !s.Source.IsEmpty() {
			src = &s.Source
		}
		batch.Draw(s.Texture, s.Position, src, s.Color, s.Rotation, s.Origin, s.Scale, s.FlipH, s.FlipV, s.Depth)
	})
}

// PublishStats queues the batch's last frame counters. Subscribers run on
// the next ProcessEvents.
func PublishStats(world donburi.World, batch *blitz.SpriteBatch) {
	FrameStatsEventType.Publish(world, batch.LastStats())
}
