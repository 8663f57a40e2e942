package puzzle

import (
	"log"

	"spherepuzzle/internal/components"
	"spherepuzzle/internal/engine"
	"spherepuzzle/internal/rooms"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// updatePuzzle keeps the box body on the box visual and solves the puzzle
// the first time the box comes within ButtonRadius of the button.
func (c *Controller) updatePuzzle() {
	s := c.State
	if s.box != nil && s.boxBody != nil {
		s.boxBody.Position = s.box.Transform.Position
		s.boxBody.Velocity = rl.Vector3{}
	}

	if s.Room != rooms.Middle || s.boxBody == nil || s.button == nil || s.PuzzleSolved {
		return
	}
	if planarDistance(s.boxBody.Position, s.button.Transform.Position) >= c.cfg.Puzzle.ButtonRadius {
		return
	}

	s.PuzzleSolved = true
	if mat := materialOf(s.button); mat != nil {
		setButtonVisual(mat, true)
	}
	if s.gatedDoor != nil {
		if in := engine.GetComponent[*components.Interactive](s.gatedDoor); in != nil {
			if door, ok := in.Kind.(*components.Door); ok {
				door.Usable = true
			}
		}
		if mat := materialOf(s.gatedDoor); mat != nil {
			setDoorVisual(mat, true)
		}
	}
	log.Println("Puzzle: button pressed, door to final unlocked")
	c.Solved.Invoke()
}

// updateGoal flips GoalReached once when the player body reaches the goal.
func (c *Controller) updateGoal() {
	s := c.State
	if s.GoalReached || s.goalBody == nil {
		return
	}
	d := rl.Vector3Length(rl.Vector3Subtract(c.PlayerBody.Position, s.goalBody.Position))
	if d >= c.cfg.Puzzle.GoalRadius {
		return
	}
	s.GoalReached = true
	log.Println("Puzzle: goal reached")
	c.display.ShowWin()
	c.Won.Invoke()
}

func materialOf(g *engine.GameObject) *components.Material {
	mr := engine.GetComponent[*components.MeshRenderer](g)
	if mr == nil {
		return nil
	}
	return mr.Material
}
