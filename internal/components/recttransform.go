package components

import (
	"spherepuzzle/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type AnchorPreset int

const (
	AnchorTopLeft AnchorPreset = iota
	AnchorTopCenter
	AnchorTopRight
	AnchorMiddleCenter
	AnchorBottomCenter
)

// RectTransform places a HUD element relative to an anchor on the screen.
// AnchoredPosition is the pixel offset from the anchor, SizeDelta the size.
type RectTransform struct {
	engine.BaseComponent

	Anchor           rl.Vector2
	Pivot            rl.Vector2
	AnchoredPosition rl.Vector2
	SizeDelta        rl.Vector2
}

func NewRectTransform(preset AnchorPreset, offset, size rl.Vector2) *RectTransform {
	rt := &RectTransform{AnchoredPosition: offset, SizeDelta: size}
	rt.SetAnchorPreset(preset)
	return rt
}

func (rt *RectTransform) SetAnchorPreset(preset AnchorPreset) {
	switch preset {
	case AnchorTopLeft:
		rt.Anchor, rt.Pivot = rl.Vector2{X: 0, Y: 0}, rl.Vector2{X: 0, Y: 0}
	case AnchorTopCenter:
		rt.Anchor, rt.Pivot = rl.Vector2{X: 0.5, Y: 0}, rl.Vector2{X: 0.5, Y: 0}
	case AnchorTopRight:
		rt.Anchor, rt.Pivot = rl.Vector2{X: 1, Y: 0}, rl.Vector2{X: 1, Y: 0}
	case AnchorMiddleCenter:
		rt.Anchor, rt.Pivot = rl.Vector2{X: 0.5, Y: 0.5}, rl.Vector2{X: 0.5, Y: 0.5}
	case AnchorBottomCenter:
		rt.Anchor, rt.Pivot = rl.Vector2{X: 0.5, Y: 1}, rl.Vector2{X: 0.5, Y: 1}
	}
}

// CalculateRect recomputes the screen rectangle inside parent.
func (rt *RectTransform) CalculateRect(parent rl.Rectangle) rl.Rectangle {
	ax := parent.X + parent.Width*rt.Anchor.X
	ay := parent.Y + parent.Height*rt.Anchor.Y
	return rl.Rectangle{
		X:      ax + rt.AnchoredPosition.X - rt.SizeDelta.X*rt.Pivot.X,
		Y:      ay + rt.AnchoredPosition.Y - rt.SizeDelta.Y*rt.Pivot.Y,
		Width:  rt.SizeDelta.X,
		Height: rt.SizeDelta.Y,
	}
}
