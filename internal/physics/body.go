package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type ShapeKind int

const (
	ShapeSphere ShapeKind = iota
	ShapeBox
)

// Shape is either a sphere (Radius) or an axis-aligned box (HalfExtents).
type Shape struct {
	Kind        ShapeKind
	Radius      float32
	HalfExtents rl.Vector3
}

func Sphere(radius float32) Shape {
	return Shape{Kind: ShapeSphere, Radius: radius}
}

func Box(halfExtents rl.Vector3) Shape {
	return Shape{Kind: ShapeBox, HalfExtents: halfExtents}
}

// Body is a simulated rigid body. Mass 0 means static or kinematic: the body is
// never integrated and only moves when game code sets Position.
type Body struct {
	Name            string
	Shape           Shape
	Mass            float32
	Position        rl.Vector3
	Velocity        rl.Vector3
	AngularVelocity rl.Vector3 // radians per second
	Orientation     rl.Quaternion
	LinearDamping   float32
	AngularDamping  float32
	Friction        float32
	Restitution     float32

	// CollisionResponse false turns the body into a trigger volume.
	CollisionResponse bool

	force rl.Vector3
}

// BodyOptions mirrors the handful of constructor settings the game uses.
type BodyOptions struct {
	Name           string
	Mass           float32
	Position       rl.Vector3
	AngularDamping float32
	Trigger        bool
}

func NewBody(shape Shape, opts BodyOptions) *Body {
	return &Body{
		Name:              opts.Name,
		Shape:             shape,
		Mass:              opts.Mass,
		Position:          opts.Position,
		Orientation:       rl.QuaternionIdentity(),
		LinearDamping:     0.01,
		AngularDamping:    opts.AngularDamping,
		Friction:          0.3,
		Restitution:       0,
		CollisionResponse: !opts.Trigger,
	}
}

// IsDynamic reports whether the world integrates this body.
func (b *Body) IsDynamic() bool {
	return b.Mass > 0
}

// ApplyForce accumulates a force through the center of mass for the next Step.
func (b *Body) ApplyForce(f rl.Vector3) {
	b.force = rl.Vector3Add(b.force, f)
}

// Force returns the accumulated, not yet integrated force.
func (b *Body) Force() rl.Vector3 {
	return b.force
}

// Teleport places the body and zeroes all motion.
func (b *Body) Teleport(pos rl.Vector3) {
	b.Position = pos
	b.Velocity = rl.Vector3{}
	b.AngularVelocity = rl.Vector3{}
	b.force = rl.Vector3{}
}

// AABB returns the world-space bounds of the body's shape.
func (b *Body) AABB() AABB {
	switch b.Shape.Kind {
	case ShapeSphere:
		r := b.Shape.Radius
		return NewAABBFromCenter(b.Position, rl.Vector3{X: 2 * r, Y: 2 * r, Z: 2 * r})
	default:
		h := b.Shape.HalfExtents
		return NewAABBFromCenter(b.Position, rl.Vector3{X: 2 * h.X, Y: 2 * h.Y, Z: 2 * h.Z})
	}
}
