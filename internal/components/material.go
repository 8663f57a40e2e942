package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Material is the subset of surface properties the game changes at runtime.
type Material struct {
	Color             rl.Color
	Emissive          rl.Color
	EmissiveIntensity float32
	Roughness         float32
	Metalness         float32
}

func NewMaterial(color rl.Color) *Material {
	return &Material{
		Color:     color,
		Emissive:  rl.Black,
		Roughness: 0.8,
	}
}

// HexColor converts 0xRRGGBB into an opaque color.
func HexColor(hex uint32) rl.Color {
	return rl.NewColor(uint8(hex>>16), uint8(hex>>8), uint8(hex), 255)
}

// SetGlow sets color and emissive together, the way lit indicators are shown.
func (m *Material) SetGlow(color rl.Color, intensity float32) {
	m.Color = color
	m.Emissive = color
	m.EmissiveIntensity = intensity
}

// Shaded returns the flat color used by the renderer: the base color lit by
// light, or unlit when light is nil, brightened by the emissive term.
func (m *Material) Shaded(light *Light) rl.Color {
	base := channels(m.Color)
	glow := channels(m.Emissive)
	var out [3]uint8
	for i := range base {
		v := base[i]
		if light != nil {
			v = light.shade(i, base[i], m.Roughness, m.Metalness)
		}
		out[i] = clamp255(v + glow[i]*m.EmissiveIntensity*0.5)
	}
	return rl.NewColor(out[0], out[1], out[2], m.Color.A)
}

func channels(c rl.Color) [3]float32 {
	return [3]float32{float32(c.R), float32(c.G), float32(c.B)}
}

func clamp255(v float32) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}
