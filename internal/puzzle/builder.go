package puzzle

import (
	"fmt"
	"log"
	"math"

	"spherepuzzle/internal/components"
	"spherepuzzle/internal/engine"
	"spherepuzzle/internal/physics"
	"spherepuzzle/internal/rooms"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// changeRoom tears down the active room and builds next. An unknown room
// leaves everything untouched.
func (c *Controller) changeRoom(next rooms.Name) bool {
	layout, ok := rooms.Lookup(next)
	if !ok {
		log.Printf("Rooms: unknown room %q", next)
		return false
	}

	c.clearRoom()
	c.State.Room = next
	c.State.layout = layout
	c.buildRoom(layout)
	log.Printf("Rooms: entered %s (%d objects, %d bodies)",
		next, len(c.State.roomObjects), len(c.State.roomBodies))
	c.RoomEntered.Invoke(next)
	return true
}

// clearRoom removes every room-scoped object and body together.
func (c *Controller) clearRoom() {
	s := c.State
	for _, obj := range s.roomObjects {
		c.scene.RemoveGameObject(obj)
	}
	for _, body := range s.roomBodies {
		c.physics.RemoveBody(body)
	}
	s.resetRoomRefs()
	c.dragging = nil
}

func (c *Controller) buildRoom(l rooms.Layout) {
	s := c.State
	for i, f := range l.Floors {
		c.addSlab("Floor", i, f, 0.8, 0)
	}
	for i, w := range l.Walls {
		c.addSlab("Wall", i, w, 0.9, 0)
	}
	for i, b := range l.Beams {
		c.addSlab("Beam", i, b, 0.4, 0.5)
	}

	if l.Key != nil && !s.KeyCollected {
		mat := components.NewMaterial(components.HexColor(l.Key.Color))
		mat.Emissive = components.HexColor(rooms.ColorKeyGlow)
		mat.EmissiveIntensity = 0.2
		mat.Roughness = 0.3
		mat.Metalness = 0.7
		key := c.addObject("Key", l.Key.Position, components.MeshCube, l.Key.Size, mat)
		key.AddComponent(components.NewInteractive(components.Key{}))
	}

	for _, d := range l.Doors {
		usable := !d.Gated || s.PuzzleSolved
		door := c.addDoor(d, usable)
		if d.Gated {
			s.gatedDoor = door
		}
	}

	if l.Box != nil {
		mat := components.NewMaterial(components.HexColor(l.Box.Color))
		mat.Metalness = 0.1
		s.box = c.addObject("Box", l.Box.Position, components.MeshCube, l.Box.Size, mat)
		s.box.AddComponent(components.NewInteractive(components.Box{}))
		s.boxBody = physics.NewBody(physics.Box(halfSize(l.Box.Size)), physics.BodyOptions{
			Name:     "box",
			Position: l.Box.Position,
		})
		c.addBody(s.boxBody)
	}

	if l.Button != nil {
		mat := components.NewMaterial(components.HexColor(l.Button.Color))
		mat.Roughness = 0.5
		mat.Metalness = 0.2
		setButtonVisual(mat, s.PuzzleSolved)
		s.button = c.addObject("Button", l.Button.Position, components.MeshCylinder, l.Button.Size, mat)
	}

	if l.Goal != nil {
		mat := components.NewMaterial(components.HexColor(l.Goal.Color))
		mat.SetGlow(mat.Color, 0.7)
		mat.Roughness = 0.3
		mat.Metalness = 0.2
		s.goal = c.addObject("Goal", l.Goal.Position, components.MeshCube, l.Goal.Size, mat)
		s.goalBody = physics.NewBody(physics.Box(halfSize(l.Goal.Size)), physics.BodyOptions{
			Name:     "goal",
			Position: l.Goal.Position,
			Trigger:  true,
		})
		c.addBody(s.goalBody)
	}

	if l.Name == rooms.Final {
		c.resetWobble()
	}

	c.movePlayerTo(l.Entry)
}

func (c *Controller) addObject(name string, pos rl.Vector3, mesh components.MeshType, size rl.Vector3, mat *components.Material) *engine.GameObject {
	obj := engine.NewGameObject(name)
	obj.Transform.Position = pos
	obj.AddComponent(components.NewMeshRenderer(mesh, size, mat))
	c.scene.AddGameObject(obj)
	c.State.trackObject(obj)
	return obj
}

func (c *Controller) addBody(b *physics.Body) {
	c.physics.AddBody(b)
	c.State.trackBody(b)
}

// addSlab adds a static box both as a visual and as a body.
func (c *Controller) addSlab(kind string, index int, slab rooms.Slab, roughness, metalness float32) {
	mat := components.NewMaterial(components.HexColor(slab.Color))
	mat.Roughness = roughness
	mat.Metalness = metalness
	name := fmt.Sprintf("%s %d", kind, index+1)
	c.addObject(name, slab.Center, components.MeshCube, slab.Size, mat)
	c.addBody(physics.NewBody(physics.Box(slab.HalfExtents()), physics.BodyOptions{
		Name:     name,
		Position: slab.Center,
	}))
}

// Doors are visual only: the player walks through nothing, a click moves them.
func (c *Controller) addDoor(d rooms.DoorDef, usable bool) *engine.GameObject {
	mat := components.NewMaterial(rl.White)
	setDoorVisual(mat, usable)
	door := c.addObject("Door->"+string(d.Target), d.Position, components.MeshCube, rl.Vector3{X: 1, Y: 2, Z: 0.2}, mat)
	door.Transform.Rotation = rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, math.Pi/2)
	door.AddComponent(components.NewInteractive(&components.Door{Target: d.Target, Usable: usable}))
	return door
}

func setDoorVisual(mat *components.Material, usable bool) {
	color := rooms.ColorDoorLocked
	if usable {
		color = rooms.ColorDoorUsable
	}
	mat.SetGlow(components.HexColor(color), 0.6)
	mat.Roughness = 0.5
	mat.Metalness = 0.2
}

func setButtonVisual(mat *components.Material, on bool) {
	if on {
		mat.SetGlow(components.HexColor(rooms.ColorButtonOn), 0.3)
		return
	}
	mat.Color = components.HexColor(rooms.ColorButtonOff)
	mat.Emissive = rl.Black
	mat.EmissiveIntensity = 0
}

func halfSize(size rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
}
