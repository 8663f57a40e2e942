// Headless run of a full playthrough against the real controller and physics.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"spherepuzzle/internal/config"
	"spherepuzzle/internal/engine"
	"spherepuzzle/internal/physics"
	"spherepuzzle/internal/puzzle"
	"spherepuzzle/internal/rooms"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// printer narrates what the HUD would show.
type printer struct {
	out       io.Writer
	lastLevel puzzle.BalanceLevel
}

func (p *printer) ShowInventory(items []string) {
	fmt.Fprintf(p.out, "  hud: %s\n", puzzle.FormatInventory(items))
}

func (p *printer) ShowBalance(percent float32, level puzzle.BalanceLevel) {
	if level != p.lastLevel {
		fmt.Fprintf(p.out, "  hud: balance %.0f%% (%s)\n", percent, level)
		p.lastLevel = level
	}
}

func (p *printer) ShowWin() {
	fmt.Fprintln(p.out, "  hud: Puzzle Complete!")
}

type run struct {
	out  io.Writer
	c    *puzzle.Controller
	step float32
}

func (r *run) frames(n int, in puzzle.Input) {
	for i := 0; i < n; i++ {
		r.c.Frame(r.step, in)
	}
}

func (r *run) warp(x, y, z float32) {
	r.c.PlayerBody.Teleport(rl.Vector3{X: x, Y: y, Z: z})
}

func (r *run) click(target *engine.GameObject, want puzzle.Outcome) error {
	if target == nil {
		return fmt.Errorf("nothing to click in %s", r.c.CurrentRoom())
	}
	got := r.c.HandleClick(target)
	fmt.Fprintf(r.out, "click %-12s -> %s (room %s)\n", target.Name, got, r.c.CurrentRoom())
	if got != want {
		return fmt.Errorf("click %s: expected %s, got %s", target.Name, want, got)
	}
	return nil
}

func (r *run) door(target rooms.Name) *engine.GameObject {
	return r.c.Scene().FindByName("Door->" + string(target))
}

func playthrough(out io.Writer, cfg config.Config) error {
	world := physics.NewWorld(rl.Vector3{Y: cfg.Physics.Gravity})
	c := puzzle.NewController(cfg, engine.NewScene("playthrough"), world, &printer{out: out})
	r := &run{out: out, c: c, step: cfg.Physics.Step}

	r.frames(60, puzzle.Input{Forward: true})
	p := c.PlayerBody.Position
	fmt.Fprintf(out, "rolled to (%.2f, %.2f, %.2f), speed %.2f\n", p.X, p.Y, p.Z, rl.Vector3Length(c.PlayerBody.Velocity))

	r.warp(3, 1, 0)
	if err := r.click(r.door(rooms.Middle), puzzle.RoomChanged); err != nil {
		return err
	}
	r.warp(2, 1, 0)
	if err := r.click(r.door(rooms.Final), puzzle.DoorRefused); err != nil {
		return err
	}

	r.warp(-3, 1, 0)
	if err := r.click(r.door(rooms.Main), puzzle.RoomChanged); err != nil {
		return err
	}
	r.warp(-2, 1, 1)
	if err := r.click(c.Scene().FindByName("Key"), puzzle.PickedUp); err != nil {
		return err
	}

	r.warp(3, 1, 0)
	if err := r.click(r.door(rooms.Middle), puzzle.RoomChanged); err != nil {
		return err
	}
	if err := r.click(c.State.Box(), puzzle.BoxUnlocked); err != nil {
		return err
	}

	if !c.BeginDrag(c.State.Box()) {
		return fmt.Errorf("box refused to drag")
	}
	for z := float32(0); z >= -3; z -= 0.25 {
		c.DragTo(rl.Vector3{Z: z})
		r.frames(1, puzzle.Input{})
		if c.State.PuzzleSolved {
			fmt.Fprintf(out, "box on button at z=%.2f\n", z)
			break
		}
	}
	c.EndDrag()
	if !c.State.PuzzleSolved {
		return fmt.Errorf("puzzle not solved after drag")
	}

	r.warp(2, 1, 0)
	if err := r.click(r.door(rooms.Final), puzzle.RoomChanged); err != nil {
		return err
	}

	r.warp(0, 0.6, -2)
	r.frames(90, puzzle.Input{})
	b := c.State.Balance
	fmt.Fprintf(out, "on beam for %.2fs, wobble %.3f, x drifted to %.2f\n", b.Timer, b.Amount, c.PlayerBody.Position.X)

	r.warp(1, -6, 0)
	r.frames(1, puzzle.Input{})
	p = c.PlayerBody.Position
	fmt.Fprintf(out, "fell and respawned at (%.2f, %.2f, %.2f)\n", p.X, p.Y, p.Z)

	r.warp(4, 0.5, 1)
	r.frames(1, puzzle.Input{})
	if !c.State.GoalReached {
		return fmt.Errorf("goal not reached")
	}
	return nil
}

func main() {
	configPath := flag.String("config", "", "YAML tuning file")
	quiet := flag.Bool("quiet", false, "suppress subsystem logs")
	flag.Parse()

	if *quiet {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := playthrough(os.Stdout, cfg); err != nil {
		fmt.Printf("FAILURE: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("SUCCESS: level passed")
}
