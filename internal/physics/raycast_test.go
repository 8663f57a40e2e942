package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestRayBoxHitsTopFace(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})

	hit, ok := RayBox(rl.Vector3{Y: 5}, rl.Vector3{Y: -1}, box, 100)
	if !ok {
		t.Fatal("Expected hit")
	}
	if !approx(hit.Distance, 4.5, 1e-5) {
		t.Errorf("Expected distance 4.5, got %v", hit.Distance)
	}
	if hit.Normal != (rl.Vector3{Y: 1}) {
		t.Errorf("Expected +Y normal, got %v", hit.Normal)
	}
}

func TestRayBoxMiss(t *testing.T) {
	box := NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})

	cases := []struct {
		name   string
		origin rl.Vector3
		dir    rl.Vector3
		max    float32
	}{
		{"parallel outside", rl.Vector3{X: 3, Y: 5}, rl.Vector3{Y: -1}, 100},
		{"pointing away", rl.Vector3{Y: 5}, rl.Vector3{Y: 1}, 100},
		{"too short", rl.Vector3{Y: 5}, rl.Vector3{Y: -1}, 2},
	}
	for _, tc := range cases {
		if _, ok := RayBox(tc.origin, tc.dir, box, tc.max); ok {
			t.Errorf("%s: expected miss", tc.name)
		}
	}
}

func TestRayPlaneY(t *testing.T) {
	p, ok := RayPlaneY(rl.Vector3{X: 1, Y: 10, Z: 1}, rl.Vector3Normalize(rl.Vector3{X: 1, Y: -1}), 0)
	if !ok {
		t.Fatal("Expected plane hit")
	}
	if !approx(p.X, 11, 1e-3) || !approx(p.Y, 0, 1e-3) || !approx(p.Z, 1, 1e-3) {
		t.Errorf("Expected (11,0,1), got %v", p)
	}

	if _, ok := RayPlaneY(rl.Vector3{Y: 10}, rl.Vector3{X: 1}, 0); ok {
		t.Error("Horizontal ray should not hit plane")
	}
	if _, ok := RayPlaneY(rl.Vector3{Y: 10}, rl.Vector3{Y: 1}, 0); ok {
		t.Error("Ray pointing away should not hit plane")
	}
}
