package puzzle

import (
	"spherepuzzle/internal/engine"
	"spherepuzzle/internal/physics"
	"spherepuzzle/internal/rooms"
)

// BalanceState is the wobble accumulated while the player stays on a beam.
type BalanceState struct {
	Timer   float32
	Amount  float32
	Percent float32
	OnBeam  bool
}

// GameState is everything that changes during a playthrough.
type GameState struct {
	Room      rooms.Name
	Inventory *Inventory

	// One-way flags, never reset within a playthrough.
	KeyCollected bool
	BoxUnlocked  bool
	PuzzleSolved bool
	GoalReached  bool

	Balance BalanceState

	// Room-scoped: rebuilt on every room change.
	layout      rooms.Layout
	roomObjects []*engine.GameObject
	roomBodies  []*physics.Body
	box         *engine.GameObject
	boxBody     *physics.Body
	button      *engine.GameObject
	gatedDoor   *engine.GameObject
	goal        *engine.GameObject
	goalBody    *physics.Body
}

func NewGameState() *GameState {
	return &GameState{Inventory: NewInventory()}
}

// RoomObjects returns a snapshot of the current room's visual objects.
func (s *GameState) RoomObjects() []*engine.GameObject {
	out := make([]*engine.GameObject, len(s.roomObjects))
	copy(out, s.roomObjects)
	return out
}

// RoomBodies returns a snapshot of the current room's rigid bodies.
func (s *GameState) RoomBodies() []*physics.Body {
	out := make([]*physics.Body, len(s.roomBodies))
	copy(out, s.roomBodies)
	return out
}

func (s *GameState) Layout() rooms.Layout {
	return s.layout
}

func (s *GameState) Box() *engine.GameObject       { return s.box }
func (s *GameState) Button() *engine.GameObject    { return s.button }
func (s *GameState) GatedDoor() *engine.GameObject { return s.gatedDoor }
func (s *GameState) Goal() *engine.GameObject      { return s.goal }

func (s *GameState) ownsObject(g *engine.GameObject) bool {
	for _, obj := range s.roomObjects {
		if obj == g {
			return true
		}
	}
	return false
}

func (s *GameState) trackObject(g *engine.GameObject) {
	s.roomObjects = append(s.roomObjects, g)
}

func (s *GameState) trackBody(b *physics.Body) {
	s.roomBodies = append(s.roomBodies, b)
}

func (s *GameState) untrackObject(g *engine.GameObject) {
	for i, obj := range s.roomObjects {
		if obj == g {
			s.roomObjects = append(s.roomObjects[:i], s.roomObjects[i+1:]...)
			return
		}
	}
}

func (s *GameState) resetRoomRefs() {
	s.roomObjects = nil
	s.roomBodies = nil
	s.box = nil
	s.boxBody = nil
	s.button = nil
	s.gatedDoor = nil
	s.goal = nil
	s.goalBody = nil
}
