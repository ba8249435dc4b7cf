package blitz

import (
	"image"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
)

// Texture is a sampled image. Textures are compared by identity: two draws
// batch together only when they pass the same Texture value, so
// implementations should be pointer types.
type Texture interface {
	Width() int
	Height() int
	// SortingKey orders textures under SortTexture. Keys must be stable for
	// the texture's lifetime.
	SortingKey() int
}

var textureKeys atomic.Int64

// nextTextureKey returns sorting keys in creation order, starting at 1.
func nextTextureKey() int {
	return int(textureKeys.Add(1))
}

// ImageTexture is a Texture backed by an ebiten image.
type ImageTexture struct {
	img *ebiten.Image
	key int
	w   int
	h   int
}

// NewTexture wraps img. Textures created later sort after earlier ones.
func NewTexture(img *ebiten.Image) *ImageTexture {
	if img == nil {
		panic("blitz: NewTexture with nil image")
	}
	b := img.Bounds()
	return &ImageTexture{img: img, key: nextTextureKey(), w: b.Dx(), h: b.Dy()}
}

// NewTextureFromImage uploads src into a new ebiten image.
func NewTextureFromImage(src image.Image) *ImageTexture {
	return NewTexture(ebiten.NewImageFromImage(src))
}

// Image returns the underlying ebiten image.
func (t *ImageTexture) Image() *ebiten.Image { return t.img }

func (t *ImageTexture) Width() int      { return t.w }
func (t *ImageTexture) Height() int     { return t.h }
func (t *ImageTexture) SortingKey() int { return t.key }

// ebitenImage extracts the ebiten image behind tex, if any.
func ebitenImage(tex Texture) *ebiten.Image {
	switch t := tex.(type) {
	case *ImageTexture:
		return t.img
	case interface{ Image() *ebiten.Image }:
		return t.Image()
	}
	return nil
}
