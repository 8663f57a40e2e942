package puzzle

import (
	"spherepuzzle/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Input is the set of movement keys held this frame.
type Input struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
}

// Frame runs one tick in a fixed order:
//  1. apply input forces to the player body
//  2. step the physics world
//  3. clamp the player speed
//  4. copy body transforms into visuals
//  5. puzzle, balance and goal checks
//
// Rendering happens after Frame returns.
func (c *Controller) Frame(dt float32, in Input) {
	c.ApplyInput(in)
	c.physics.Step(c.cfg.Physics.Step)
	c.PlayerBody.Velocity = ClampSpeed(c.PlayerBody.Velocity, c.cfg.Physics.MaxSpeed)
	c.syncVisuals(dt)
	c.updatePuzzle()
	c.updateBalance(dt)
	c.updateGoal()
}

// ApplyInput adds MoveForce along every held direction. Forces add up and
// are not normalized, so diagonals push harder.
func (c *Controller) ApplyInput(in Input) {
	if c.PlayerBody == nil {
		return
	}
	f := c.cfg.Player.MoveForce
	var force rl.Vector3
	if in.Forward {
		force.Z -= f
	}
	if in.Back {
		force.Z += f
	}
	if in.Left {
		force.X -= f
	}
	if in.Right {
		force.X += f
	}
	c.PlayerBody.ApplyForce(force)
}

// ClampSpeed rescales v to maxSpeed when it is faster, keeping its direction.
func ClampSpeed(v rl.Vector3, maxSpeed float32) rl.Vector3 {
	speed := rl.Vector3Length(v)
	if speed <= maxSpeed || speed == 0 {
		return v
	}
	return rl.Vector3Scale(v, maxSpeed/speed)
}

// syncVisuals runs the scene components once. Objects built since the last
// frame are started first.
func (c *Controller) syncVisuals(dt float32) {
	c.scene.Start()
	c.scene.Update(dt)
}

// BeginDrag starts dragging target. Only the box can be dragged, and only
// once it is unlocked.
func (c *Controller) BeginDrag(target *engine.GameObject) bool {
	s := c.State
	if target == nil || target != s.box || !s.BoxUnlocked {
		return false
	}
	c.dragging = target
	return true
}

// DragTo moves the dragged box over the ground point and pins its body there.
func (c *Controller) DragTo(point rl.Vector3) {
	s := c.State
	if c.dragging == nil || s.box == nil {
		return
	}
	pos := &s.box.Transform.Position
	pos.X = point.X
	pos.Z = point.Z
	if s.boxBody != nil {
		s.boxBody.Position = *pos
		s.boxBody.Velocity = rl.Vector3{}
	}
}

func (c *Controller) EndDrag() {
	c.dragging = nil
}

func (c *Controller) Dragging() bool {
	return c.dragging != nil
}
