package components

import (
	"spherepuzzle/internal/engine"
	"spherepuzzle/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshCylinder
)

// MeshRenderer draws a primitive at its GameObject's transform.
// Size is the full box size for cubes, (radius, -, -) for spheres and
// (radius, height, -) for cylinders.
type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Size     rl.Vector3
	Material *Material
	Wires    bool
}

func NewMeshRenderer(meshType MeshType, size rl.Vector3, material *Material) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Size:     size,
		Material: material,
	}
}

// HalfExtents is the unrotated local half size of the primitive.
func (m *MeshRenderer) HalfExtents() rl.Vector3 {
	switch m.MeshType {
	case MeshSphere:
		return rl.Vector3{X: m.Size.X, Y: m.Size.X, Z: m.Size.X}
	case MeshCylinder:
		return rl.Vector3{X: m.Size.X, Y: m.Size.Y / 2, Z: m.Size.X}
	default:
		return rl.Vector3{X: m.Size.X / 2, Y: m.Size.Y / 2, Z: m.Size.Z / 2}
	}
}

// Bounds returns a world-space AABB enclosing the primitive, used for picking.
// Quarter-turn rotations about Y swap the X and Z extents.
func (m *MeshRenderer) Bounds() physics.AABB {
	g := m.GetGameObject()
	if g == nil {
		return physics.AABB{}
	}
	half := m.HalfExtents()
	rot := g.Transform.Rotation
	var axis rl.Vector3
	var angle float32
	rl.QuaternionToAxisAngle(rot, &axis, &angle)
	if angle != 0 && abs32(axis.Y) > 0.9 {
		s := abs32(sin32(angle))
		c := abs32(cos32(angle))
		half = rl.Vector3{X: c*half.X + s*half.Z, Y: half.Y, Z: s*half.X + c*half.Z}
	}
	scale := g.Transform.Scale
	size := rl.Vector3{X: 2 * half.X * scale.X, Y: 2 * half.Y * scale.Y, Z: 2 * half.Z * scale.Z}
	return physics.NewAABBFromCenter(g.Transform.Position, size)
}

func (m *MeshRenderer) Draw(light *Light) {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	color := rl.White
	if m.Material != nil {
		color = m.Material.Shaded(light)
	}

	pos := g.Transform.Position
	var axis rl.Vector3
	var angle float32
	rl.QuaternionToAxisAngle(g.Transform.Rotation, &axis, &angle)

	rl.PushMatrix()
	rl.Translatef(pos.X, pos.Y, pos.Z)
	if angle != 0 {
		rl.Rotatef(angle*rl.Rad2deg, axis.X, axis.Y, axis.Z)
	}
	rl.Scalef(g.Transform.Scale.X, g.Transform.Scale.Y, g.Transform.Scale.Z)

	origin := rl.Vector3Zero()
	switch m.MeshType {
	case MeshCube:
		rl.DrawCubeV(origin, m.Size, color)
		if m.Wires {
			rl.DrawCubeWiresV(origin, m.Size, rl.Black)
		}
	case MeshSphere:
		rl.DrawSphere(origin, m.Size.X, color)
		if m.Wires {
			rl.DrawSphereWires(origin, m.Size.X*1.01, 8, 8, rl.Black)
		}
	case MeshCylinder:
		bottom := rl.Vector3{Y: -m.Size.Y / 2}
		top := rl.Vector3{Y: m.Size.Y / 2}
		rl.DrawCylinderEx(bottom, top, m.Size.X, m.Size.X, 32, color)
	}
	rl.PopMatrix()
}
