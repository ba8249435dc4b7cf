package blitz

import "testing"

func TestShaderParamSetters(t *testing.T) {
	var p ShaderParam
	p.SetFloat(2)
	if p.Value() != [4]float32{2, 0, 0, 0} {
		t.Errorf("SetFloat = %v", p.Value())
	}
	p.SetVec2(Vec2{3, 4})
	if p.Value() != [4]float32{3, 4, 0, 0} {
		t.Errorf("SetVec2 = %v", p.Value())
	}
	p.SetVec3(5, 6, 7)
	if p.Value() != [4]float32{5, 6, 7, 0} {
		t.Errorf("SetVec3 = %v", p.Value())
	}
	p.SetColor(Color{0.1, 0.2, 0.3, 0.4})
	if p.Value() != [4]float32{0.1, 0.2, 0.3, 0.4} {
		t.Errorf("SetColor = %v", p.Value())
	}
	p.SetVec4([4]float32{1, 2, 3, 4})
	if p.Value() != [4]float32{1, 2, 3, 4} {
		t.Errorf("SetVec4 = %v", p.Value())
	}
}

func TestShaderProgramParams(t *testing.T) {
	s := NewDefaultShader()
	a := s.AddParam("Amount")
	if s.AddParam("Amount") != a {
		t.Error("AddParam should return the existing parameter")
	}
	if s.Param("Amount") != a {
		t.Error("Param lookup failed")
	}
	if s.Param("Missing") != nil {
		t.Error("unknown Param should be nil")
	}
	if s.Kage() != nil {
		t.Error("default shader should have no Kage program")
	}
}

func TestShaderProgramConstantUploadsOnce(t *testing.T) {
	d := newRecordingDevice()
	s := NewDefaultShader()
	c := s.AddParam("Resolution")
	c.Constant = true
	c.SetVec2(Vec2{640, 480})
	s.AddParam("Time").SetFloat(1)

	s.ApplyParameters(d)
	s.ApplyParameters(d)
	if d.uniformSet != 3 {
		t.Errorf("SetUniform calls = %d, want 3", d.uniformSet)
	}
	if d.uniforms["Resolution"] != [4]float32{640, 480, 0, 0} {
		t.Errorf("Resolution = %v", d.uniforms["Resolution"])
	}
}

func TestShaderProgramTextures(t *testing.T) {
	d := newRecordingDevice()
	s := NewDefaultShader()
	a, b := newFakeTexture(4, 4), newFakeTexture(4, 4)

	s.SetTexture(0, a)
	s.ApplyTextures(d)
	if d.boundTexture(0) != Texture(a) || d.boundTexture(1) != nil {
		t.Error("only slot 0 should be bound")
	}

	s.SetTexture(9, b)
	if s.Texture(MaxTextureSlots-1) != Texture(b) {
		t.Error("out of range slot should clamp to the last slot")
	}
	s.ApplyTextures(d)
	if d.boundTexture(2) != Texture(b) {
		t.Error("slot 2 should be bound after SetTexture(9)")
	}
	if s.Texture(-1) != nil || s.Texture(MaxTextureSlots) != nil {
		t.Error("Texture outside the slot range should be nil")
	}
}
