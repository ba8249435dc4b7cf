package blitz

import "github.com/hajimehoshi/ebiten/v2"

// BlendFactor is one term of a separable blend equation.
type BlendFactor uint8

const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSourceColor
	BlendInverseSourceColor
	BlendSourceAlpha
	BlendInverseSourceAlpha
	BlendDestinationColor
	BlendInverseDestinationColor
	BlendDestinationAlpha
	BlendInverseDestinationAlpha
)

// BlendState describes how a flushed run is composited onto the target.
// Premultiplied selects whether vertex colors are packed with premultiplied
// alpha; it must agree with the factors.
type BlendState struct {
	Name string

	ColorSource      BlendFactor
	ColorDestination BlendFactor
	AlphaSource      BlendFactor
	AlphaDestination BlendFactor

	Premultiplied bool
}

// Preset blend states. BlendAlphaPremultiplied is the SpriteBatch default.
var (
	BlendAlpha = &BlendState{
		Name:        "alpha",
		ColorSource: BlendSourceAlpha, ColorDestination: BlendInverseSourceAlpha,
		AlphaSource: BlendOne, AlphaDestination: BlendInverseSourceAlpha,
	}
	BlendAlphaPremultiplied = &BlendState{
		Name:        "alpha-premultiplied",
		ColorSource: BlendOne, ColorDestination: BlendInverseSourceAlpha,
		AlphaSource: BlendOne, AlphaDestination: BlendInverseSourceAlpha,
		Premultiplied: true,
	}
	BlendAdditive = &BlendState{
		Name:        "additive",
		ColorSource: BlendSourceAlpha, ColorDestination: BlendOne,
		AlphaSource: BlendOne, AlphaDestination: BlendOne,
	}
	BlendLight = &BlendState{
		Name:        "light",
		ColorSource: BlendDestinationColor, ColorDestination: BlendOne,
		AlphaSource: BlendZero, AlphaDestination: BlendOne,
		Premultiplied: true,
	}
	BlendMultiply = &BlendState{
		Name:        "multiply",
		ColorSource: BlendDestinationColor, ColorDestination: BlendZero,
		AlphaSource: BlendDestinationColor, AlphaDestination: BlendZero,
		Premultiplied: true,
	}
	BlendInvert = &BlendState{
		Name:        "invert",
		ColorSource: BlendInverseDestinationColor, ColorDestination: BlendInverseSourceColor,
		AlphaSource: BlendInverseDestinationColor, AlphaDestination: BlendInverseSourceColor,
		Premultiplied: true,
	}
	// BlendMask keeps destination pixels where the source is opaque.
	BlendMask = &BlendState{
		Name:        "mask",
		ColorSource: BlendZero, ColorDestination: BlendSourceAlpha,
		AlphaSource: BlendZero, AlphaDestination: BlendSourceAlpha,
		Premultiplied: true,
	}
	BlendOpaque = &BlendState{
		Name:        "opaque",
		ColorSource: BlendOne, ColorDestination: BlendZero,
		AlphaSource: BlendOne, AlphaDestination: BlendZero,
		Premultiplied: true,
	}
)

// PackColor packs c for this blend state.
func (b *BlendState) PackColor(c Color) uint32 {
	if b.Premultiplied {
		return c.Premultiply().Pack()
	}
	return c.Pack()
}

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendState.
func (b *BlendState) EbitenBlend() ebiten.Blend {
	return ebiten.Blend{
		BlendFactorSourceRGB:        b.ColorSource.ebiten(),
		BlendFactorSourceAlpha:      b.AlphaSource.ebiten(),
		BlendFactorDestinationRGB:   b.ColorDestination.ebiten(),
		BlendFactorDestinationAlpha: b.AlphaDestination.ebiten(),
		BlendOperationRGB:           ebiten.BlendOperationAdd,
		BlendOperationAlpha:         ebiten.BlendOperationAdd,
	}
}

func (f BlendFactor) ebiten() ebiten.BlendFactor {
	switch f {
	case BlendZero:
		return ebiten.BlendFactorZero
	case BlendOne:
		return ebiten.BlendFactorOne
	case BlendSourceColor:
		return ebiten.BlendFactorSourceColor
	case BlendInverseSourceColor:
		return ebiten.BlendFactorOneMinusSourceColor
	case BlendSourceAlpha:
		return ebiten.BlendFactorSourceAlpha
	case BlendInverseSourceAlpha:
		return ebiten.BlendFactorOneMinusSourceAlpha
	case BlendDestinationColor:
		return ebiten.BlendFactorDestinationColor
	case BlendInverseDestinationColor:
		return ebiten.BlendFactorOneMinusDestinationColor
	case BlendDestinationAlpha:
		return ebiten.BlendFactorDestinationAlpha
	case BlendInverseDestinationAlpha:
		return ebiten.BlendFactorOneMinusDestinationAlpha
	default:
		return ebiten.BlendFactorZero
	}
}
