package puzzle

import (
	"log"

	"spherepuzzle/internal/components"
	"spherepuzzle/internal/engine"
	"spherepuzzle/internal/rooms"
)

// Outcome is what a click did.
type Outcome int

const (
	Ignored Outcome = iota
	OutOfReach
	PickedUp
	DoorRefused
	RoomChanged
	BoxUnlocked
	NoEffect
)

func (o Outcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case OutOfReach:
		return "out of reach"
	case PickedUp:
		return "picked up"
	case DoorRefused:
		return "door refused"
	case RoomChanged:
		return "room changed"
	case BoxUnlocked:
		return "box unlocked"
	case NoEffect:
		return "no effect"
	}
	return "unknown"
}

// HandleClick applies the effect of clicking target. Objects without an
// Interactive component, or no longer part of the current room, are ignored.
func (c *Controller) HandleClick(target *engine.GameObject) Outcome {
	if target == nil {
		return Ignored
	}
	in := engine.GetComponent[*components.Interactive](target)
	if in == nil || in.Kind == nil || !c.State.ownsObject(target) {
		return Ignored
	}

	if planarDistance(c.PlayerBody.Position, target.Transform.Position) > c.cfg.Player.ReachDistance {
		log.Printf("Puzzle: %s %q out of reach", components.KindName(in.Kind), target.Name)
		return OutOfReach
	}

	s := c.State
	switch kind := in.Kind.(type) {
	case components.Key:
		s.Inventory.Add(ItemKey)
		s.KeyCollected = true
		c.removeRoomObject(target)
		log.Println("Puzzle: picked up key")
		return PickedUp

	case *components.Door:
		if s.Room == rooms.Middle && kind.Target == rooms.Final && !s.PuzzleSolved {
			log.Printf("Puzzle: %s to %s is locked", components.KindName(kind), kind.Target)
			return DoorRefused
		}
		if !c.changeRoom(kind.Target) {
			return NoEffect
		}
		return RoomChanged

	case components.Box:
		if s.BoxUnlocked || !s.Inventory.Has(ItemKey) {
			return NoEffect
		}
		s.BoxUnlocked = true
		s.Inventory.Remove(ItemKey)
		log.Println("Puzzle: box unlocked")
		return BoxUnlocked
	}
	return Ignored
}

func (c *Controller) removeRoomObject(g *engine.GameObject) {
	c.scene.RemoveGameObject(g)
	c.State.untrackObject(g)
}
