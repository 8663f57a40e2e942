package rooms

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	wallThickness = 0.5
	wallHeight    = 2
	roomHalf      = 5
	doorX         = roomHalf - wallThickness
)

func v3(x, y, z float32) rl.Vector3 {
	return rl.Vector3{X: x, Y: y, Z: z}
}

func wall(x, z, w, d float32) Slab {
	return Slab{Center: v3(x, wallHeight/2, z), Size: v3(w, wallHeight, d), Color: ColorWall}
}

func northSouthWalls() []Slab {
	return []Slab{
		wall(0, -roomHalf+wallThickness/2, 10, wallThickness),
		wall(0, roomHalf-wallThickness/2, 10, wallThickness),
	}
}

// sideWall builds the east (x>0) or west (x<0) wall, split into two
// halves around z=0 when split is set.
func sideWall(east, split bool) []Slab {
	x := float32(-roomHalf + wallThickness/2)
	if east {
		x = -x
	}
	if !split {
		return []Slab{wall(x, 0, wallThickness, 10)}
	}
	return []Slab{
		wall(x, 2.5, wallThickness, 5),
		wall(x, -2.5, wallThickness, 5),
	}
}

var layouts = map[Name]Layout{
	Main:   mainLayout(),
	Middle: middleLayout(),
	Final:  finalLayout(),
}

// Lookup returns the layout for name.
func Lookup(name Name) (Layout, bool) {
	l, ok := layouts[name]
	return l, ok
}

func mainLayout() Layout {
	walls := northSouthWalls()
	walls = append(walls, sideWall(false, false)...)
	walls = append(walls, sideWall(true, true)...)
	return Layout{
		Name:   Main,
		Floors: []Slab{{Center: v3(0, -0.5, 0), Size: v3(10, 1, 10), Color: ColorFloorMain}},
		Walls:  walls,
		Key:    &Fixture{Position: v3(-2, 0.1, 0), Size: v3(0.3, 0.1, 0.8), Color: ColorKey},
		Doors:  []DoorDef{{Position: v3(doorX, 1, 0), Target: Middle}},
		Entry:  v3(0, 1, 3),
	}
}

func middleLayout() Layout {
	walls := northSouthWalls()
	walls = append(walls, sideWall(false, true)...)
	walls = append(walls, sideWall(true, false)...)
	return Layout{
		Name:   Middle,
		Floors: []Slab{{Center: v3(0, -0.5, 0), Size: v3(10, 1, 10), Color: ColorFloorMiddle}},
		Walls:  walls,
		Doors: []DoorDef{
			{Position: v3(doorX, 1, 0), Target: Final, Gated: true},
			{Position: v3(-doorX, 1, 0), Target: Main},
		},
		Box:    &Fixture{Position: v3(0, 0.5, 0), Size: v3(1, 1, 1), Color: ColorBox},
		Button: &Fixture{Position: v3(0, 0.05, -3), Size: v3(0.8, 0.1, 0), Color: ColorButtonOff},
		Entry:  v3(-3, 1, 0),
	}
}

func finalLayout() Layout {
	walls := northSouthWalls()
	walls = append(walls, sideWall(false, false)...)
	walls = append(walls, sideWall(true, false)...)
	return Layout{
		Name: Final,
		Floors: []Slab{
			{Center: v3(0, -0.5, 4), Size: v3(10, 1, 3), Color: ColorFloorFinal},
			{Center: v3(0, -0.5, -4), Size: v3(10, 1, 3), Color: ColorFloorFinal},
		},
		Walls: walls,
		Beams: []Slab{
			{Center: v3(0, 0, -1), Size: v3(0.4, 0.15, 4), Color: ColorRope},
			{Center: v3(2, 0, 1), Size: v3(4, 0.15, 0.4), Color: ColorRope},
		},
		Goal:  &Fixture{Position: v3(4, 0, 1), Size: v3(2, 0.3, 2), Color: ColorGoal},
		Entry: v3(0, 1, -4),
	}
}
