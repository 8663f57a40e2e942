// Package puzzle is the game-world state machine: room lifecycle, inventory
// gating, the box and button puzzle, the balance beams and the per-frame
// synchronization between physics and visuals.
package puzzle

import (
	"spherepuzzle/internal/components"
	"spherepuzzle/internal/config"
	"spherepuzzle/internal/engine"
	"spherepuzzle/internal/physics"
	"spherepuzzle/internal/rooms"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PlayerTag marks the player object, which is never a click target.
const PlayerTag = "player"

// Physics is the rigid-body simulation the controller drives.
type Physics interface {
	AddBody(b *physics.Body)
	RemoveBody(b *physics.Body)
	Step(dt float32)
}

// Display receives everything the HUD shows. The controller never draws.
type Display interface {
	ShowInventory(items []string)
	ShowBalance(percent float32, level BalanceLevel)
	ShowWin()
}

type nopDisplay struct{}

func (nopDisplay) ShowInventory([]string)            {}
func (nopDisplay) ShowBalance(float32, BalanceLevel) {}
func (nopDisplay) ShowWin()                          {}

// Controller owns the GameState and is its single writer.
type Controller struct {
	cfg     config.Config
	scene   *engine.Scene
	physics Physics
	display Display

	State *GameState

	Player     *engine.GameObject
	PlayerBody *physics.Body
	playerSync *components.BodySync

	dragging *engine.GameObject

	// Solved fires once when the box first lands on the button.
	Solved engine.Event
	// RoomEntered fires after a room has been fully built.
	RoomEntered engine.EventWithArg[rooms.Name]
	// Won fires once when the goal is reached.
	Won engine.Event
}

// NewController creates the player and enters the main room, so the player
// body exists before any input or frame reaches the controller.
func NewController(cfg config.Config, scene *engine.Scene, phys Physics, display Display) *Controller {
	if phys == nil {
		panic("puzzle: NewController requires a physics world")
	}
	if scene == nil {
		scene = engine.NewScene("rooms")
	}
	if display == nil {
		display = nopDisplay{}
	}

	c := &Controller{
		cfg:     cfg,
		scene:   scene,
		physics: phys,
		display: display,
		State:   NewGameState(),
	}
	c.State.Inventory.OnChange.AddListener(func(items []string) {
		c.display.ShowInventory(items)
	})

	c.createPlayer()
	c.display.ShowInventory(c.State.Inventory.Items())
	c.changeRoom(rooms.Main)
	return c
}

func (c *Controller) createPlayer() {
	p := c.cfg.Player
	c.PlayerBody = physics.NewBody(physics.Sphere(p.Radius), physics.BodyOptions{
		Name:           "player",
		Mass:           p.Mass,
		Position:       rl.Vector3{Y: 1},
		AngularDamping: p.AngularDamping,
	})
	c.physics.AddBody(c.PlayerBody)

	c.Player = engine.NewGameObject("Player")
	c.Player.Tags = []string{PlayerTag}
	mat := components.NewMaterial(components.HexColor(rooms.ColorPlayer))
	mat.Roughness = 0.4
	mat.Metalness = 0.1
	mesh := components.NewMeshRenderer(components.MeshSphere, rl.Vector3{X: p.Radius}, mat)
	mesh.Wires = true
	c.Player.AddComponent(mesh)
	c.playerSync = components.NewBodySync(c.PlayerBody)
	c.Player.AddComponent(c.playerSync)
	c.scene.AddGameObject(c.Player)
	c.playerSync.Sync()
}

func (c *Controller) Scene() *engine.Scene {
	return c.scene
}

func (c *Controller) Config() config.Config {
	return c.cfg
}

// CurrentRoom returns the active room.
func (c *Controller) CurrentRoom() rooms.Name {
	return c.State.Room
}

// EnterRoom performs a room change outside of a door click.
func (c *Controller) EnterRoom(name rooms.Name) bool {
	return c.changeRoom(name)
}

// movePlayerTo places the player with zero linear and angular velocity.
func (c *Controller) movePlayerTo(pos rl.Vector3) {
	c.PlayerBody.Teleport(pos)
	c.playerSync.Sync()
}

func planarDistance(a, b rl.Vector3) float32 {
	dx := a.X - b.X
	dz := a.Z - b.Z
	return sqrt32(dx*dx + dz*dz)
}
