package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// RayBox intersects a ray with an axis-aligned box using the slab method.
// direction must be normalized.
func RayBox(origin, direction rl.Vector3, box AABB, maxDistance float32) (RaycastHit, bool) {
	min, max := box.Min, box.Max
	tmin := float32(-1e30)
	tmax := float32(1e30)

	slab := func(o, d, lo, hi float32) bool {
		if d == 0 {
			return o >= lo && o <= hi
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		return tmin <= tmax
	}

	if !slab(origin.X, direction.X, min.X, max.X) ||
		!slab(origin.Y, direction.Y, min.Y, max.Y) ||
		!slab(origin.Z, direction.Z, min.Z, max.Z) {
		return RaycastHit{}, false
	}

	if tmax < 0 || tmin > maxDistance {
		return RaycastHit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	var normal rl.Vector3
	epsilon := float32(0.001)
	if abs(point.X-min.X) < epsilon {
		normal = rl.Vector3{X: -1}
	} else if abs(point.X-max.X) < epsilon {
		normal = rl.Vector3{X: 1}
	} else if abs(point.Y-min.Y) < epsilon {
		normal = rl.Vector3{Y: -1}
	} else if abs(point.Y-max.Y) < epsilon {
		normal = rl.Vector3{Y: 1}
	} else if abs(point.Z-min.Z) < epsilon {
		normal = rl.Vector3{Z: -1}
	} else {
		normal = rl.Vector3{Z: 1}
	}

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

// RayPlaneY intersects a ray with the horizontal plane at height y.
func RayPlaneY(origin, direction rl.Vector3, y float32) (rl.Vector3, bool) {
	if abs(direction.Y) < 1e-6 {
		return rl.Vector3{}, false
	}
	t := (y - origin.Y) / direction.Y
	if t < 0 {
		return rl.Vector3{}, false
	}
	return rl.Vector3Add(origin, rl.Vector3Scale(direction, t)), true
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
