package components

import (
	"math"
	"testing"

	"spherepuzzle/internal/engine"
	"spherepuzzle/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func TestHexColor(t *testing.T) {
	c := HexColor(0x22c55e)
	if c.R != 0x22 || c.G != 0xc5 || c.B != 0x5e || c.A != 255 {
		t.Errorf("Expected (34,197,94,255), got %v", c)
	}
}

func TestMaterialShadedAddsEmissive(t *testing.T) {
	m := NewMaterial(rl.NewColor(100, 100, 100, 255))
	if got := m.Shaded(nil); got.R != 100 {
		t.Errorf("Expected unlit color 100, got %d", got.R)
	}

	m.Emissive = rl.NewColor(200, 0, 0, 255)
	m.EmissiveIntensity = 1
	got := m.Shaded(nil)
	if got.R != 200 || got.G != 100 {
		t.Errorf("Expected (200,100), got (%d,%d)", got.R, got.G)
	}

	m.EmissiveIntensity = 10
	if got := m.Shaded(nil); got.R != 255 {
		t.Errorf("Expected clamp to 255, got %d", got.R)
	}
}

func TestMaterialLighting(t *testing.T) {
	light := DefaultLight()
	grey := rl.NewColor(100, 100, 100, 255)

	matte := NewMaterial(grey)
	matte.Roughness, matte.Metalness = 1, 0
	metal := NewMaterial(grey)
	metal.Roughness, metal.Metalness = 1, 1
	glossy := NewMaterial(grey)
	glossy.Roughness, glossy.Metalness = 0, 0

	m, r, g := matte.Shaded(&light).R, metal.Shaded(&light).R, glossy.Shaded(&light).R
	if r >= m {
		t.Errorf("Expected rough metal darker than matte, got %d vs %d", r, m)
	}
	if g <= m {
		t.Errorf("Expected glossy surface brighter than matte, got %d vs %d", g, m)
	}
	if m == 100 {
		t.Errorf("Expected lighting to change the base color")
	}

	dark := Light{Direction: rl.Vector3{Y: 1}}
	matte.SetGlow(grey, 1)
	if got := matte.Shaded(&dark).R; got != 50 {
		t.Errorf("Expected only the emissive term without light, got %d", got)
	}
}

func TestMeshRendererBoundsCube(t *testing.T) {
	g := engine.NewGameObject("crate")
	g.Transform.Position = rl.Vector3{X: 1, Y: 2, Z: 3}
	mr := NewMeshRenderer(MeshCube, rl.Vector3{X: 2, Y: 4, Z: 6}, nil)
	g.AddComponent(mr)

	b := mr.Bounds()
	if !near(b.Min.X, 0) || !near(b.Max.Y, 4) || !near(b.Min.Z, 0) {
		t.Errorf("Expected min (0,0,0) max (2,4,6), got %v %v", b.Min, b.Max)
	}
}

func TestMeshRendererBoundsQuarterTurn(t *testing.T) {
	g := engine.NewGameObject("door")
	g.Transform.Rotation = rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, math.Pi/2)
	mr := NewMeshRenderer(MeshCube, rl.Vector3{X: 1, Y: 2, Z: 0.2}, nil)
	g.AddComponent(mr)

	b := mr.Bounds()
	if !near(b.Max.X, 0.1) || !near(b.Max.Z, 0.5) {
		t.Errorf("Expected swapped extents (0.1, 0.5), got (%f, %f)", b.Max.X, b.Max.Z)
	}
}

func TestMeshRendererBoundsCylinder(t *testing.T) {
	g := engine.NewGameObject("button")
	mr := NewMeshRenderer(MeshCylinder, rl.Vector3{X: 0.8, Y: 0.1}, nil)
	g.AddComponent(mr)

	h := mr.HalfExtents()
	if h.X != 0.8 || h.Z != 0.8 || !near(h.Y, 0.05) {
		t.Errorf("Expected (0.8, 0.05, 0.8), got %v", h)
	}
}

func TestMeshRendererBoundsDetached(t *testing.T) {
	mr := NewMeshRenderer(MeshSphere, rl.Vector3{X: 1}, nil)
	if b := mr.Bounds(); b != (physics.AABB{}) {
		t.Errorf("Expected empty bounds without a GameObject, got %v", b)
	}
}

func TestBodySync(t *testing.T) {
	body := physics.NewBody(physics.Sphere(0.5), physics.BodyOptions{Mass: 3})
	body.Position = rl.Vector3{X: 4, Y: 5, Z: 6}
	body.Orientation = rl.QuaternionFromAxisAngle(rl.Vector3{X: 1}, 1)

	g := engine.NewGameObject("player")
	sync := NewBodySync(body)
	g.AddComponent(sync)
	sync.Sync()

	if g.Transform.Position != body.Position {
		t.Errorf("Expected position %v, got %v", body.Position, g.Transform.Position)
	}
	if g.Transform.Rotation != body.Orientation {
		t.Errorf("Expected rotation %v, got %v", body.Orientation, g.Transform.Rotation)
	}
}

func TestBodySyncFollowsLifecycle(t *testing.T) {
	body := physics.NewBody(physics.Sphere(0.5), physics.BodyOptions{Mass: 1, Position: rl.Vector3{Y: 2}})
	g := engine.NewGameObject("player")
	g.AddComponent(NewBodySync(body))

	g.Start()
	if g.Transform.Position.Y != 2 {
		t.Errorf("Expected Start to place the object at y=2, got %v", g.Transform.Position.Y)
	}

	body.Position = rl.Vector3{X: 3, Y: 1}
	g.Update(1.0 / 60)
	if g.Transform.Position != body.Position {
		t.Errorf("Expected Update to copy %v, got %v", body.Position, g.Transform.Position)
	}
}

func TestBodySyncWithoutBody(t *testing.T) {
	g := engine.NewGameObject("ghost")
	g.Transform.Position = rl.Vector3{X: 1, Y: 1, Z: 1}
	sync := NewBodySync(nil)
	g.AddComponent(sync)
	sync.Sync()

	if g.Transform.Position.X != 1 {
		t.Errorf("Expected position untouched, got %v", g.Transform.Position)
	}
}

func TestProgressBarPercent(t *testing.T) {
	tests := []struct {
		value, max float32
		want       float32
	}{
		{50, 100, 0.5},
		{-5, 100, 0},
		{150, 100, 1},
		{10, 0, 0},
	}
	for _, tt := range tests {
		pb := NewUIProgressBar("", tt.max)
		pb.Value = tt.value
		if got := pb.GetPercent(); got != tt.want {
			t.Errorf("Value %v/%v: expected %v, got %v", tt.value, tt.max, tt.want, got)
		}
	}
}

func TestRectTransformAnchors(t *testing.T) {
	screen := rl.Rectangle{Width: 800, Height: 600}

	rt := NewRectTransform(AnchorTopCenter, rl.Vector2{Y: 10}, rl.Vector2{X: 200, Y: 20})
	r := rt.CalculateRect(screen)
	if r.X != 300 || r.Y != 10 {
		t.Errorf("Expected (300,10), got (%v,%v)", r.X, r.Y)
	}

	rt.SetAnchorPreset(AnchorMiddleCenter)
	r = rt.CalculateRect(screen)
	if r.X != 300 || r.Y != 300 {
		t.Errorf("Expected (300,300), got (%v,%v)", r.X, r.Y)
	}
}

func TestKindName(t *testing.T) {
	if KindName(Key{}) != "key" || KindName(&Door{}) != "door" || KindName(Box{}) != "box" {
		t.Errorf("Unexpected kind names")
	}
}
