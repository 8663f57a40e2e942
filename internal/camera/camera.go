package camera

import (
	"math"

	"spherepuzzle/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrbitCamera circles a target at a fixed distance. Yaw and pitch are in
// radians; a negative pitch looks down on the target.
type OrbitCamera struct {
	Target      rl.Vector3
	Yaw         float32
	Pitch       float32
	Distance    float32
	Sensitivity float32
	Fovy        float32
}

func New(cfg config.Camera) *OrbitCamera {
	return &OrbitCamera{
		Pitch:       cfg.Pitch,
		Distance:    cfg.Distance,
		Sensitivity: cfg.Sensitivity,
		Fovy:        cfg.FovY,
	}
}

// maxPitch keeps the camera off the poles.
const maxPitch = math.Pi/2 - 0.1

// Rotate applies a mouse delta in pixels.
func (c *OrbitCamera) Rotate(dx, dy float32) {
	c.Yaw -= dx * c.Sensitivity
	c.Pitch -= dy * c.Sensitivity
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
}

// Update follows target and rotates while the right mouse button is held.
func (c *OrbitCamera) Update(target rl.Vector3) {
	c.Target = target
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		c.Rotate(delta.X, delta.Y)
	}
}

// Position returns the eye position for the current yaw, pitch and target.
func (c *OrbitCamera) Position() rl.Vector3 {
	yaw := float64(c.Yaw)
	pitch := float64(c.Pitch)
	d := float64(c.Distance)
	return rl.Vector3{
		X: c.Target.X + float32(d*math.Cos(pitch)*math.Sin(yaw)),
		Y: c.Target.Y - float32(d*math.Sin(pitch)),
		Z: c.Target.Z + float32(d*math.Cos(pitch)*math.Cos(yaw)),
	}
}

func (c *OrbitCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}
