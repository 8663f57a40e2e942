package world

import (
	"spherepuzzle/internal/components"
	"spherepuzzle/internal/config"
	"spherepuzzle/internal/engine"
	"spherepuzzle/internal/physics"
	"spherepuzzle/internal/puzzle"
	"spherepuzzle/internal/rooms"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// World ties together the scene, the physics simulation, the puzzle
// controller and the presentation.
type World struct {
	Scene      *engine.Scene
	Physics    *physics.World
	Controller *puzzle.Controller
	Renderer   *Renderer
	HUD        *HUD
}

func New(cfg config.Config) *World {
	w := &World{
		Scene:    engine.NewScene("Rooms"),
		Physics:  physics.NewWorld(rl.Vector3{Y: cfg.Physics.Gravity}),
		Renderer: NewRenderer(components.HexColor(rooms.ColorBackground)),
		HUD:      NewHUD(),
	}
	w.Controller = puzzle.NewController(cfg, w.Scene, w.Physics, w.HUD)
	w.HUD.SetBalanceVisible(w.Controller.CurrentRoom() == rooms.Final)
	w.Controller.RoomEntered.AddListener(func(name rooms.Name) {
		w.HUD.SetBalanceVisible(name == rooms.Final)
	})
	return w
}

// Update runs one frame of gameplay. Scene components are updated inside the
// frame, after the physics step.
func (w *World) Update(deltaTime float32, in puzzle.Input) {
	w.Controller.Frame(deltaTime, in)
}

// Pick returns the nearest object hit by ray, or nil. Walls and floors
// occlude whatever is behind them.
func (w *World) Pick(ray rl.Ray, maxDistance float32) *engine.GameObject {
	var best *engine.GameObject
	bestDist := maxDistance
	for _, g := range w.Scene.GameObjects {
		if g.HasTag(puzzle.PlayerTag) {
			continue
		}
		mr := engine.GetComponent[*components.MeshRenderer](g)
		if mr == nil {
			continue
		}
		hit, ok := physics.RayBox(ray.Position, ray.Direction, mr.Bounds(), bestDist)
		if ok && hit.Distance < bestDist {
			best = g
			bestDist = hit.Distance
		}
	}
	return best
}

// GroundPoint intersects ray with the horizontal plane at height y.
func GroundPoint(ray rl.Ray, y float32) (rl.Vector3, bool) {
	return physics.RayPlaneY(ray.Position, ray.Direction, y)
}

func (w *World) Draw(camera rl.Camera3D, width, height int32) {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	w.Renderer.Draw(camera, aspect, w.Scene.GameObjects)
	w.HUD.Draw(width, height)
}
