package world

import (
	"spherepuzzle/internal/components"
	"spherepuzzle/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws every MeshRenderer in the scene with flat shading.
type Renderer struct {
	Background rl.Color
	Light      components.Light
	ShowGrid   bool

	drawn  int
	culled int
}

func NewRenderer(background rl.Color) *Renderer {
	return &Renderer{Background: background, Light: components.DefaultLight()}
}

// Draw clears the frame and renders objects from camera. Objects whose
// bounds fall outside the view frustum are skipped.
func (r *Renderer) Draw(camera rl.Camera3D, aspect float32, objects []*engine.GameObject) {
	rl.ClearBackground(r.Background)
	rl.BeginMode3D(camera)

	frustum := ExtractFrustum(camera, aspect)
	r.drawn, r.culled = 0, 0
	for _, mr := range r.Visible(&frustum, objects) {
		mr.Draw(&r.Light)
		r.drawn++
	}
	if r.ShowGrid {
		rl.DrawGrid(20, 1)
	}

	rl.EndMode3D()
}

// Visible returns the mesh renderers of active objects inside frustum.
func (r *Renderer) Visible(frustum *Frustum, objects []*engine.GameObject) []*components.MeshRenderer {
	var out []*components.MeshRenderer
	for _, g := range objects {
		if !g.Active {
			continue
		}
		mr := engine.GetComponent[*components.MeshRenderer](g)
		if mr == nil {
			continue
		}
		b := mr.Bounds()
		radius := rl.Vector3Length(rl.Vector3Subtract(b.Max, b.Min)) / 2
		if !frustum.ContainsSphere(b.Center(), radius) {
			r.culled++
			continue
		}
		out = append(out, mr)
	}
	return out
}

// Stats returns how many objects were drawn and culled last frame.
func (r *Renderer) Stats() (drawn, culled int) {
	return r.drawn, r.culled
}
