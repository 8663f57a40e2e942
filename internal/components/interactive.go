package components

import (
	"spherepuzzle/internal/engine"
	"spherepuzzle/internal/rooms"
)

// Interactable is the closed set of things a click can act on.
type Interactable interface {
	interactable()
}

type Key struct{}

// Door leads to Target. Usable is false while a gate keeps it shut.
type Door struct {
	Target rooms.Name
	Usable bool
}

type Box struct{}

func (Key) interactable()   {}
func (*Door) interactable() {}
func (Box) interactable()   {}

// Interactive marks a GameObject as clickable.
type Interactive struct {
	engine.BaseComponent
	Kind Interactable
}

func NewInteractive(kind Interactable) *Interactive {
	return &Interactive{Kind: kind}
}

func KindName(kind Interactable) string {
	switch kind.(type) {
	case Key:
		return "key"
	case *Door:
		return "door"
	case Box:
		return "box"
	}
	return "unknown"
}
