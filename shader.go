package blitz

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Shader is the material a flush is submitted with. SetTexture records a
// texture for a sampler slot; ApplyTextures binds recorded textures and
// ApplyParameters uploads uniforms. Both are called with the device that is
// about to Submit.
type Shader interface {
	SetTexture(slot int, tex Texture)
	ApplyParameters(dev Device)
	ApplyTextures(dev Device)
}

// MaxTextureSlots is the number of sampler slots a ShaderProgram exposes.
const MaxTextureSlots = 3

// ShaderParam is a named vec4 uniform. A Constant parameter is uploaded by the
// first ApplyParameters only.
type ShaderParam struct {
	Name     string
	Constant bool

	value     [4]float32
	submitted bool
}

// Value returns the current uniform value.
func (p *ShaderParam) Value() [4]float32 { return p.value }

func (p *ShaderParam) SetFloat(v float32)      { p.value[0] = v }
func (p *ShaderParam) SetVec2(v Vec2)          { p.value[0], p.value[1] = v.X, v.Y }
func (p *ShaderParam) SetVec4(v [4]float32)    { p.value = v }
func (p *ShaderParam) SetColor(c Color)        { p.value = [4]float32{c.R, c.G, c.B, c.A} }
func (p *ShaderParam) SetVec3(x, y, z float32) { p.value[0], p.value[1], p.value[2] = x, y, z }

// ShaderProgram is a Shader optionally backed by a compiled Kage program.
// Without a program, devices use their fixed textured-quad pipeline.
type ShaderProgram struct {
	kage *ebiten.Shader

	textures  [MaxTextureSlots]Texture
	highest   int
	params    []*ShaderParam
	paramsIdx map[string]int
}

// NewDefaultShader returns a ShaderProgram with no custom program.
func NewDefaultShader() *ShaderProgram {
	return &ShaderProgram{paramsIdx: map[string]int{}}
}

// NewShaderProgram compiles Kage source and declares the named vec4
// parameters. Parameter names must match the program's uniform variables.
func NewShaderProgram(src []byte, params ...string) (*ShaderProgram, error) {
	s, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("blitz: compile shader: %w", err)
	}
	p := NewDefaultShader()
	p.kage = s
	for _, name := range params {
		p.AddParam(name)
	}
	return p, nil
}

// Kage returns the compiled program, or nil for the fixed pipeline.
func (s *ShaderProgram) Kage() *ebiten.Shader { return s.kage }

// AddParam declares a parameter, returning the existing one if name is
// already declared.
func (s *ShaderProgram) AddParam(name string) *ShaderParam {
	if i, ok := s.paramsIdx[name]; ok {
		return s.params[i]
	}
	p := &ShaderParam{Name: name}
	s.paramsIdx[name] = len(s.params)
	s.params = append(s.params, p)
	return p
}

// Param returns the named parameter, or nil.
func (s *ShaderProgram) Param(name string) *ShaderParam {
	if i, ok := s.paramsIdx[name]; ok {
		return s.params[i]
	}
	return nil
}

// SetTexture records tex for slot, clamped to [0, MaxTextureSlots).
func (s *ShaderProgram) SetTexture(slot int, tex Texture) {
	slot = max(0, min(slot, MaxTextureSlots-1))
	s.textures[slot] = tex
	if slot > s.highest {
		s.highest = slot
	}
}

// Texture returns the texture recorded for slot.
func (s *ShaderProgram) Texture(slot int) Texture {
	if slot < 0 || slot >= MaxTextureSlots {
		return nil
	}
	return s.textures[slot]
}

// ApplyTextures binds slots 0 through the highest slot ever set.
func (s *ShaderProgram) ApplyTextures(dev Device) {
	for i := 0; i <= s.highest; i++ {
		dev.BindTexture(i, s.textures[i])
	}
}

// ApplyParameters uploads every parameter, skipping constants that were
// already submitted.
func (s *ShaderProgram) ApplyParameters(dev Device) {
	for _, p := range s.params {
		if p.Constant {
			if p.submitted {
				continue
			}
			p.submitted = true
		}
		dev.SetUniform(p.Name, p.value)
	}
}
