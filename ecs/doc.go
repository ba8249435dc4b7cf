// Package ecs draws [Donburi] entities through a blitz SpriteBatch.
//
// Attach [SpriteComponent] to entities and call [DrawSprites] between
// Begin and End. Donburi iterates by archetype, not creation order, so use
// a depth sort mode when overlap matters:
//
//	batch.Begin(blitz.SortBackToFront, nil, nil)
//	ecs.DrawSprites(world, batch)
//	batch.End()
//	ecs.PublishStats(world, batch)
//
// Per-frame batch counters are published as [FrameStatsEventType] events.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
