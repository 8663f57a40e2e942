package components

import (
	"spherepuzzle/internal/engine"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// UIPanel is a translucent backing box drawn behind HUD text.
type UIPanel struct {
	engine.BaseComponent
	Color rl.Color
	Title string
}

func NewUIPanel(color rl.Color) *UIPanel {
	return &UIPanel{Color: color}
}

func (p *UIPanel) Draw(rect rl.Rectangle) {
	if p.Title != "" {
		gui.Panel(rect, p.Title)
		return
	}
	rl.DrawRectangleRec(rect, p.Color)
}
