package physics

import (
	"log"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// World owns the simulated bodies. It is stepped once per frame by the game loop
// and never touched from anywhere else.
type World struct {
	Gravity rl.Vector3
	bodies  []*Body
}

func NewWorld(gravity rl.Vector3) *World {
	return &World{
		Gravity: gravity,
		bodies:  make([]*Body, 0),
	}
}

// AddBody registers b. Adding the same body twice is a no-op.
func (w *World) AddBody(b *Body) {
	if b == nil || w.HasBody(b) {
		return
	}
	w.bodies = append(w.bodies, b)
}

func (w *World) RemoveBody(b *Body) {
	for i, obj := range w.bodies {
		if obj == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
}

func (w *World) HasBody(b *Body) bool {
	for _, obj := range w.bodies {
		if obj == b {
			return true
		}
	}
	return false
}

// Bodies returns a snapshot of the registered bodies.
func (w *World) Bodies() []*Body {
	out := make([]*Body, len(w.bodies))
	copy(out, w.bodies)
	return out
}

func (w *World) BodyCount() int {
	return len(w.bodies)
}

// Step advances the simulation by dt seconds:
//  1. integrate forces, gravity and damping into velocity, then velocity into position
//  2. push dynamic spheres out of static/kinematic boxes, with contact friction
//  3. integrate angular velocity into orientation
//
// Accumulated forces are cleared after integration.
func (w *World) Step(dt float32) {
	if dt <= 0 {
		return
	}

	for _, b := range w.bodies {
		if !b.IsDynamic() {
			continue
		}
		accel := rl.Vector3Add(w.Gravity, rl.Vector3Scale(b.force, 1/b.Mass))
		b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(accel, dt))
		b.Velocity = rl.Vector3Scale(b.Velocity, dampingFactor(b.LinearDamping, dt))
		b.AngularVelocity = rl.Vector3Scale(b.AngularVelocity, dampingFactor(b.AngularDamping, dt))
		b.Position = rl.Vector3Add(b.Position, rl.Vector3Scale(b.Velocity, dt))
		b.force = rl.Vector3{}

		if isNaN(b.Position) {
			log.Printf("Physics: body %q diverged, resetting motion", b.Name)
			b.Teleport(rl.Vector3{})
		}
	}

	for _, b := range w.bodies {
		if !b.IsDynamic() || !b.CollisionResponse {
			continue
		}
		for _, s := range w.bodies {
			if s == b || s.IsDynamic() || !s.CollisionResponse {
				continue
			}
			w.resolveStaticContact(b, s, dt)
		}
	}

	for _, b := range w.bodies {
		if b.IsDynamic() {
			integrateOrientation(b, dt)
		}
	}
}

// dampingFactor matches the usual (1-d)^dt velocity damping.
func dampingFactor(d, dt float32) float32 {
	if d <= 0 {
		return 1
	}
	if d >= 1 {
		return 0
	}
	return float32(math.Pow(float64(1-d), float64(dt)))
}

func integrateOrientation(b *Body, dt float32) {
	speed := rl.Vector3Length(b.AngularVelocity)
	angle := speed * dt
	if angle < 1e-6 {
		return
	}
	axis := rl.Vector3Scale(b.AngularVelocity, 1/speed)
	dq := rl.QuaternionFromAxisAngle(axis, angle)
	b.Orientation = rl.QuaternionNormalize(rl.QuaternionMultiply(dq, b.Orientation))
}

func isNaN(v rl.Vector3) bool {
	return math.IsNaN(float64(v.X)) || math.IsNaN(float64(v.Y)) || math.IsNaN(float64(v.Z))
}
