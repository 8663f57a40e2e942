package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum is the six clip planes used to skip off-screen objects.
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane represents a plane in 3D space (ax + by + cz + d = 0)
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum builds the frustum of camera for a viewport aspect ratio.
func ExtractFrustum(camera rl.Camera3D, aspect float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)

	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, 0.1, 1000.0)
	} else {
		halfH := camera.Fovy / 2.0
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, 0.1, 1000.0)
	}

	return FrustumFromMatrix(rl.MatrixMultiply(view, proj))
}

// FrustumFromMatrix extracts the six planes of a view-projection matrix
// (Gribb/Hartmann).
func FrustumFromMatrix(vp rl.Matrix) Frustum {
	var f Frustum

	// Left plane: row4 + row1
	f.planes[0] = normalizePlane(Plane{
		normal: rl.Vector3{
			X: vp.M3 + vp.M0,
			Y: vp.M7 + vp.M4,
			Z: vp.M11 + vp.M8,
		},
		distance: vp.M15 + vp.M12,
	})

	// Right plane: row4 - row1
	f.planes[1] = normalizePlane(Plane{
		normal: rl.Vector3{
			X: vp.M3 - vp.M0,
			Y: vp.M7 - vp.M4,
			Z: vp.M11 - vp.M8,
		},
		distance: vp.M15 - vp.M12,
	})

	// Bottom plane: row4 + row2
	f.planes[2] = normalizePlane(Plane{
		normal: rl.Vector3{
			X: vp.M3 + vp.M1,
			Y: vp.M7 + vp.M5,
			Z: vp.M11 + vp.M9,
		},
		distance: vp.M15 + vp.M13,
	})

	// Top plane: row4 - row2
	f.planes[3] = normalizePlane(Plane{
		normal: rl.Vector3{
			X: vp.M3 - vp.M1,
			Y: vp.M7 - vp.M5,
			Z: vp.M11 - vp.M9,
		},
		distance: vp.M15 - vp.M13,
	})

	// Near plane: row4 + row3
	f.planes[4] = normalizePlane(Plane{
		normal: rl.Vector3{
			X: vp.M3 + vp.M2,
			Y: vp.M7 + vp.M6,
			Z: vp.M11 + vp.M10,
		},
		distance: vp.M15 + vp.M14,
	})

	// Far plane: row4 - row3
	f.planes[5] = normalizePlane(Plane{
		normal: rl.Vector3{
			X: vp.M3 - vp.M2,
			Y: vp.M7 - vp.M6,
			Z: vp.M11 - vp.M10,
		},
		distance: vp.M15 - vp.M14,
	})

	return f
}

func normalizePlane(p Plane) Plane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: p.distance / length,
	}
}

// ContainsSphere reports whether a bounding sphere touches the frustum.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for _, p := range f.planes {
		dist := rl.Vector3DotProduct(p.normal, center) + p.distance
		if dist < -radius {
			return false
		}
	}
	return true
}
