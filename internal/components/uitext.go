package components

import (
	"spherepuzzle/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type TextAlignment int

const (
	TextAlignLeft TextAlignment = iota
	TextAlignCenter
)

// UIText draws a single line of text inside a rect.
type UIText struct {
	engine.BaseComponent

	Text      string
	FontSize  int32
	Color     rl.Color
	Alignment TextAlignment
}

func NewUIText(text string, fontSize int32) *UIText {
	return &UIText{
		Text:     text,
		FontSize: fontSize,
		Color:    rl.White,
	}
}

func (t *UIText) Draw(rect rl.Rectangle) {
	if t.Text == "" {
		return
	}

	x := rect.X + 8
	if t.Alignment == TextAlignCenter {
		width := float32(rl.MeasureText(t.Text, t.FontSize))
		x = rect.X + (rect.Width-width)/2
	}
	y := rect.Y + (rect.Height-float32(t.FontSize))/2

	rl.DrawText(t.Text, int32(x), int32(y), t.FontSize, t.Color)
}
