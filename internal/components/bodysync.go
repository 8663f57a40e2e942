package components

import (
	"spherepuzzle/internal/engine"
	"spherepuzzle/internal/physics"
)

// BodySync mirrors a simulated body into its GameObject's transform.
type BodySync struct {
	engine.BaseComponent
	Body *physics.Body
}

func NewBodySync(body *physics.Body) *BodySync {
	return &BodySync{Body: body}
}

// Start places the object on its body before the first frame.
func (s *BodySync) Start() {
	s.Sync()
}

func (s *BodySync) Update(deltaTime float32) {
	s.Sync()
}

// Sync copies position and orientation from the body. It is the only path by
// which simulated motion becomes visible.
func (s *BodySync) Sync() {
	g := s.GetGameObject()
	if g == nil || s.Body == nil {
		return
	}
	g.Transform.Position = s.Body.Position
	g.Transform.Rotation = s.Body.Orientation
}
