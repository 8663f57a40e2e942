package world

import (
	"spherepuzzle/internal/components"
	"spherepuzzle/internal/engine"
	"spherepuzzle/internal/puzzle"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUD is the screen-space overlay: inventory label, balance bar and win banner.
// It implements puzzle.Display.
type HUD struct {
	Elements []*engine.GameObject

	inventory *components.UIText
	balance   *engine.GameObject
	bar       *components.UIProgressBar
	win       *engine.GameObject
}

// LevelColor maps a balance level to the bar fill.
func LevelColor(level puzzle.BalanceLevel) rl.Color {
	switch level {
	case puzzle.Steady:
		return components.HexColor(0x22c55e)
	case puzzle.Warning:
		return components.HexColor(0xeab308)
	}
	return components.HexColor(0xef4444)
}

func NewHUD() *HUD {
	h := &HUD{}

	inv := engine.NewGameObject("Inventory")
	inv.AddComponent(components.NewRectTransform(components.AnchorTopLeft, rl.Vector2{X: 10, Y: 10}, rl.Vector2{X: 260, Y: 32}))
	inv.AddComponent(components.NewUIPanel(rl.NewColor(0, 0, 0, 128)))
	h.inventory = components.NewUIText(puzzle.FormatInventory(nil), 18)
	inv.AddComponent(h.inventory)

	h.balance = engine.NewGameObject("Balance")
	h.balance.AddComponent(components.NewRectTransform(components.AnchorTopRight, rl.Vector2{X: -10, Y: 10}, rl.Vector2{X: 160, Y: 20}))
	h.bar = components.NewUIProgressBar("", 100)
	h.bar.FillColor = LevelColor(puzzle.Steady)
	h.balance.AddComponent(h.bar)
	h.balance.Active = false

	h.win = engine.NewGameObject("Win")
	h.win.AddComponent(components.NewRectTransform(components.AnchorMiddleCenter, rl.Vector2{Y: -60}, rl.Vector2{X: 600, Y: 60}))
	winText := components.NewUIText("Puzzle Complete!", 48)
	winText.Alignment = components.TextAlignCenter
	h.win.AddComponent(winText)
	h.win.Active = false

	h.Elements = []*engine.GameObject{inv, h.balance, h.win}
	return h
}

func (h *HUD) ShowInventory(items []string) {
	h.inventory.Text = puzzle.FormatInventory(items)
}

func (h *HUD) ShowBalance(percent float32, level puzzle.BalanceLevel) {
	h.bar.Value = percent
	h.bar.FillColor = LevelColor(level)
}

func (h *HUD) ShowWin() {
	h.win.Active = true
}

// SetBalanceVisible shows the balance bar; it only matters on the beams.
func (h *HUD) SetBalanceVisible(visible bool) {
	h.balance.Active = visible
}

func (h *HUD) InventoryText() string {
	return h.inventory.Text
}

func (h *HUD) BalanceBar() *components.UIProgressBar {
	return h.bar
}

func (h *HUD) WinVisible() bool {
	return h.win.Active
}

// Draw lays out and draws every active element for the given screen size.
func (h *HUD) Draw(width, height int32) {
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
	screen := rl.Rectangle{Width: float32(width), Height: float32(height)}
	for _, g := range h.Elements {
		if !g.Active {
			continue
		}
		rt := engine.GetComponent[*components.RectTransform](g)
		if rt == nil {
			continue
		}
		rect := rt.CalculateRect(screen)
		if p := engine.GetComponent[*components.UIPanel](g); p != nil {
			p.Draw(rect)
		}
		if pb := engine.GetComponent[*components.UIProgressBar](g); pb != nil {
			pb.Draw(rect)
		}
		if t := engine.GetComponent[*components.UIText](g); t != nil {
			t.Draw(rect)
		}
	}
}
