// Package rooms holds the hand-authored layouts of the three rooms.
package rooms

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type Name string

const (
	Main   Name = "main"
	Middle Name = "middle"
	Final  Name = "final"
)

func Names() []Name {
	return []Name{Main, Middle, Final}
}

// Palette colors as 0xRRGGBB.
const (
	ColorFloorMain   uint32 = 0x1f2933
	ColorFloorMiddle uint32 = 0x202734
	ColorFloorFinal  uint32 = 0x111827
	ColorWall        uint32 = 0x374151
	ColorKey         uint32 = 0xffd54f
	ColorKeyGlow     uint32 = 0x665500
	ColorDoorUsable  uint32 = 0x22c55e
	ColorDoorLocked  uint32 = 0xef4444
	ColorBox         uint32 = 0x8d6e63
	ColorButtonOff   uint32 = 0x6b7280
	ColorButtonOn    uint32 = 0x22c55e
	ColorRope        uint32 = 0xcbd5e1
	ColorGoal        uint32 = 0x34d399
	ColorPlayer      uint32 = 0xf97373
	ColorBackground  uint32 = 0x111827
)

// Slab is a static box: Center and full Size.
type Slab struct {
	Center rl.Vector3
	Size   rl.Vector3
	Color  uint32
}

func (s Slab) HalfExtents() rl.Vector3 {
	return rl.Vector3{X: s.Size.X / 2, Y: s.Size.Y / 2, Z: s.Size.Z / 2}
}

// Fixture is a room-specific object with its visual size.
type Fixture struct {
	Position rl.Vector3
	Size     rl.Vector3
	Color    uint32
}

// DoorDef places a door leading to Target. Gated doors open only once the
// middle room puzzle is solved.
type DoorDef struct {
	Position rl.Vector3
	Target   Name
	Gated    bool
}

type Layout struct {
	Name   Name
	Floors []Slab
	Walls  []Slab
	Key    *Fixture
	Doors  []DoorDef
	Box    *Fixture
	Button *Fixture
	Beams  []Slab
	Goal   *Fixture
	Entry  rl.Vector3
}

// Region is an open planar rectangle over x and z.
type Region struct {
	MinX, MaxX float32
	MinZ, MaxZ float32
}

func (r Region) Contains(x, z float32) bool {
	return x > r.MinX && x < r.MaxX && z > r.MinZ && z < r.MaxZ
}

// BeamRegions returns the footprints of the two final room beams.
func BeamRegions() []Region {
	return []Region{
		{MinX: -0.2, MaxX: 0.2, MinZ: -3, MaxZ: 1},
		{MinX: 0, MaxX: 4, MinZ: 0.8, MaxZ: 1.2},
	}
}

// OnAnyBeam reports whether the planar point lies on either beam.
func OnAnyBeam(x, z float32) bool {
	for _, r := range BeamRegions() {
		if r.Contains(x, z) {
			return true
		}
	}
	return false
}
