package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// TexturedMaterial looks its color and emission up in textures. Emission is
// scaled by an intensity factor, and the material is emissive when
// intensity² times the emission energy exceeds EmissiveThreshold.
type TexturedMaterial struct {
	Texture          *Texture
	EmittanceTexture *Texture

	intensity float64
	energy    float64 // squared length of the emission before scaling
	emissive  bool
	brdf      *LambertBRDF
}

// NewTexturedMaterial creates a non-emissive textured material
func NewTexturedMaterial(texture *Texture, diffuseFactor float64) *TexturedMaterial {
	return &TexturedMaterial{
		Texture:          texture,
		EmittanceTexture: NewSolidTexture(core.Vec3{}),
		brdf:             NewLambertBRDF(diffuseFactor),
	}
}

// NewColorTexturedMaterial creates a textured material from a flat color
func NewColorTexturedMaterial(color core.Vec3, diffuseFactor float64) *TexturedMaterial {
	return NewTexturedMaterial(NewSolidTexture(color), diffuseFactor)
}

// NewConstantEmissionMaterial creates a textured material emitting a constant
// color scaled by intensity
func NewConstantEmissionMaterial(texture *Texture, diffuseFactor float64, emission core.Vec3, intensity float64) *TexturedMaterial {
	m := &TexturedMaterial{
		Texture:          texture,
		EmittanceTexture: NewSolidTexture(emission),
		energy:           emission.LengthSquared(),
		brdf:             NewLambertBRDF(diffuseFactor),
	}
	m.SetEmittanceIntensity(intensity)
	return m
}

// NewTextureEmissionMaterial creates a textured material whose emission is
// itself a texture. The texture content is unknown, so its energy counts as
// one and intensity alone decides emissiveness.
func NewTextureEmissionMaterial(texture *Texture, diffuseFactor float64, emission *Texture, intensity float64) *TexturedMaterial {
	m := &TexturedMaterial{
		Texture:          texture,
		EmittanceTexture: emission,
		energy:           1,
		brdf:             NewLambertBRDF(diffuseFactor),
	}
	m.SetEmittanceIntensity(intensity)
	return m
}

// EmittanceIntensity returns the emission scale
func (m *TexturedMaterial) EmittanceIntensity() float64 {
	return m.intensity
}

// SetEmittanceIntensity updates the emission scale, clamped at zero
func (m *TexturedMaterial) SetEmittanceIntensity(intensity float64) {
	m.intensity = max(intensity, 0)
	m.emissive = m.intensity*m.intensity*m.energy > EmissiveThreshold
}

func (m *TexturedMaterial) Color(u, v float64) core.Vec3 {
	return m.Texture.Sample(u, v)
}

func (m *TexturedMaterial) Emittance(u, v float64) core.Vec3 {
	return m.EmittanceTexture.Sample(u, v).Multiply(m.intensity)
}

func (m *TexturedMaterial) IsEmissive() bool { return m.emissive }
func (m *TexturedMaterial) BRDF() BRDF       { return m.brdf }
