package game

import (
	"fmt"
	"log"
	"time"

	"spherepuzzle/internal/camera"
	"spherepuzzle/internal/config"
	"spherepuzzle/internal/puzzle"
	"spherepuzzle/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const pickDistance = 100

type Game struct {
	Config    config.Config
	World     *world.World
	Camera    *camera.OrbitCamera
	DebugMode bool

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(cfg config.Config) *Game {
	return &Game{
		Config: cfg,
		World:  world.New(cfg),
		Camera: camera.New(cfg.Camera),
	}
}

func (g *Game) Run() {
	w := g.Config.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(w.FPS)
	log.Printf("Game: window %dx%d, starting in %s", w.Width, w.Height, g.World.Controller.CurrentRoom())

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	// Pointer events are recorded before the frame and applied inside it.
	g.handlePointer()
	g.World.Update(deltaTime, ReadInput(rl.IsKeyDown))
	g.Camera.Update(g.World.Controller.PlayerBody.Position)

	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) handlePointer() {
	ctrl := g.World.Controller
	ray := rl.GetScreenToWorldRay(rl.GetMousePosition(), g.Camera.GetRaylibCamera())

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		target := g.World.Pick(ray, pickDistance)
		if target == nil {
			return
		}
		outcome := ctrl.HandleClick(target)
		if outcome != puzzle.Ignored {
			log.Printf("Game: clicked %s: %s", target.Name, outcome)
		}
		ctrl.BeginDrag(target)
		return
	}

	if ctrl.Dragging() {
		if !rl.IsMouseButtonDown(rl.MouseLeftButton) {
			ctrl.EndDrag()
			return
		}
		if p, ok := world.GroundPoint(ray, 0); ok {
			ctrl.DragTo(p)
		}
	}
}

func (g *Game) Draw() {
	drawStart := time.Now()
	rl.BeginDrawing()
	g.World.Draw(g.Camera.GetRaylibCamera(), int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	h := int32(rl.GetScreenHeight())
	rl.DrawText("WASD to roll, click to interact, drag the box, right mouse to orbit", 10, h-30, 18, rl.Gray)

	if !g.DebugMode {
		return
	}
	s := g.World.Controller.State
	drawn, culled := g.World.Renderer.Stats()
	lines := []string{
		fmt.Sprintf("Room: %s", s.Room),
		fmt.Sprintf("Box unlocked: %v  Solved: %v  Goal: %v", s.BoxUnlocked, s.PuzzleSolved, s.GoalReached),
		fmt.Sprintf("Wobble: t=%.2f amount=%.3f", s.Balance.Timer, s.Balance.Amount),
		fmt.Sprintf("Bodies: %d  Drawn: %d  Culled: %d", g.World.Physics.BodyCount(), drawn, culled),
		fmt.Sprintf("Update: %.2f ms  Draw: %.2f ms", g.updateMs, g.drawMs),
	}
	rl.DrawFPS(10, 50)
	for i, line := range lines {
		rl.DrawText(line, 10, 75+int32(i)*20, 16, rl.Green)
	}
}
