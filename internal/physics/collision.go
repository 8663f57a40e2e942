package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// rollingResistance scales contact friction for a sphere rolling on a surface.
const rollingResistance = 0.02

// resolveStaticContact pushes dynamic sphere b out of the non-moving box s and
// removes the velocity component driving it inward. Dynamic boxes are not
// simulated.
func (w *World) resolveStaticContact(b, s *Body, dt float32) {
	if s.Shape.Kind != ShapeBox || b.Shape.Kind != ShapeSphere {
		return
	}
	resolveSphereVsStaticBox(b, s, w.Gravity, dt)
}

func resolveSphereVsStaticBox(b, s *Body, gravity rl.Vector3, dt float32) bool {
	box := s.AABB()
	radius := b.Shape.Radius

	closest := box.ClosestPoint(b.Position)
	diff := rl.Vector3Subtract(b.Position, closest)
	dist := rl.Vector3Length(diff)
	if dist >= radius {
		return false
	}

	var normal rl.Vector3
	var penetration float32
	if dist < 0.0001 {
		// Center is inside the box: fall back to the box-box minimum translation.
		push := b.AABB().Resolve(box)
		pushLen := rl.Vector3Length(push)
		if pushLen < 0.0001 {
			return false
		}
		normal = rl.Vector3Scale(push, 1/pushLen)
		penetration = pushLen
	} else {
		normal = rl.Vector3Scale(diff, 1/dist)
		penetration = radius - dist
	}

	b.Position = rl.Vector3Add(b.Position, rl.Vector3Scale(normal, penetration))

	velAlongNormal := rl.Vector3DotProduct(b.Velocity, normal)
	if velAlongNormal < 0 {
		e := maxf(b.Restitution, s.Restitution)
		b.Velocity = rl.Vector3Subtract(b.Velocity, rl.Vector3Scale(normal, (1+e)*velAlongNormal))
	}

	// Supporting surface: friction slows the tangential motion and the sphere
	// rolls without slipping, omega = n x v / r.
	if normal.Y > 0.5 && radius > 0 {
		normalPart := rl.Vector3Scale(normal, rl.Vector3DotProduct(b.Velocity, normal))
		tangential := rl.Vector3Subtract(b.Velocity, normalPart)

		friction := (b.Friction + s.Friction) / 2
		load := -rl.Vector3DotProduct(gravity, normal)
		if load > 0 && friction > 0 {
			tangential = slowDown(tangential, friction*rollingResistance*load*dt)
			b.Velocity = rl.Vector3Add(normalPart, tangential)
		}
		b.AngularVelocity = rl.Vector3Scale(rl.Vector3CrossProduct(normal, tangential), 1/radius)
	}
	return true
}

// slowDown shortens v by loss without reversing it.
func slowDown(v rl.Vector3, loss float32) rl.Vector3 {
	speed := rl.Vector3Length(v)
	if speed <= loss {
		return rl.Vector3{}
	}
	return rl.Vector3Scale(v, (speed-loss)/speed)
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
