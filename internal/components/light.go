package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Light is the scene lighting: a sky term plus one directional light. Meshes
// are flat shaded, so both are evaluated once for an upward-facing surface.
type Light struct {
	Sky          rl.Color
	SkyIntensity float32
	Direction    rl.Vector3 // towards the light
	Color        rl.Color
	Intensity    float32
}

func DefaultLight() Light {
	return Light{
		Sky:          HexColor(0xe5f2ff),
		SkyIntensity: 0.7,
		Direction:    rl.Vector3{X: 8, Y: 12, Z: 6},
		Color:        rl.White,
		Intensity:    0.8,
	}
}

// shade lights one color channel of a surface. Metals lose their diffuse
// term and tint the highlight with their own color; rough surfaces lose the
// highlight.
func (l *Light) shade(ch int, base, roughness, metalness float32) float32 {
	ndl := rl.Vector3Normalize(l.Direction).Y
	if ndl < 0 {
		ndl = 0
	}
	sky := channels(l.Sky)[ch] / 255
	sun := channels(l.Color)[ch]
	diffuse := sky*l.SkyIntensity + sun/255*l.Intensity*ndl*(1-metalness)

	gloss := (1 - roughness) * (1 - roughness)
	tint := sun + (base-sun)*metalness
	return base*diffuse + tint*gloss*ndl*l.Intensity*0.25
}
