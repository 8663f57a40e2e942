package components

import (
	"fmt"

	"spherepuzzle/internal/engine"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// UIProgressBar is a 0..MaxValue fill bar drawn with raygui.
type UIProgressBar struct {
	engine.BaseComponent

	Label     string
	Value     float32
	MaxValue  float32
	FillColor rl.Color
}

func NewUIProgressBar(label string, maxValue float32) *UIProgressBar {
	return &UIProgressBar{
		Label:     label,
		MaxValue:  maxValue,
		FillColor: rl.NewColor(80, 200, 80, 255),
	}
}

// GetPercent returns the fill fraction clamped to [0, 1].
func (pb *UIProgressBar) GetPercent() float32 {
	if pb.MaxValue <= 0 {
		return 0
	}
	p := pb.Value / pb.MaxValue
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func (pb *UIProgressBar) Draw(rect rl.Rectangle) {
	gui.SetStyle(gui.PROGRESSBAR, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(pb.FillColor))
	right := fmt.Sprintf("%d%%", int(pb.GetPercent()*100))
	gui.ProgressBar(rect, pb.Label, right, pb.Value, 0, pb.MaxValue)
}
