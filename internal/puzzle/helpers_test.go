package puzzle

import (
	"math"
	"testing"

	"spherepuzzle/internal/components"
	"spherepuzzle/internal/config"
	"spherepuzzle/internal/engine"
	"spherepuzzle/internal/physics"
	"spherepuzzle/internal/rooms"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type balanceCall struct {
	percent float32
	level   BalanceLevel
}

type recordingDisplay struct {
	inventories [][]string
	balances    []balanceCall
	wins        int
}

func (d *recordingDisplay) ShowInventory(items []string) {
	d.inventories = append(d.inventories, items)
}

func (d *recordingDisplay) ShowBalance(percent float32, level BalanceLevel) {
	d.balances = append(d.balances, balanceCall{percent, level})
}

func (d *recordingDisplay) ShowWin() {
	d.wins++
}

func (d *recordingDisplay) lastInventory() []string {
	if len(d.inventories) == 0 {
		return nil
	}
	return d.inventories[len(d.inventories)-1]
}

func (d *recordingDisplay) lastBalance() balanceCall {
	if len(d.balances) == 0 {
		return balanceCall{percent: -1}
	}
	return d.balances[len(d.balances)-1]
}

func newTestController(t *testing.T) (*Controller, *physics.World, *recordingDisplay) {
	t.Helper()
	cfg := config.Default()
	world := physics.NewWorld(rl.Vector3{Y: cfg.Physics.Gravity})
	display := &recordingDisplay{}
	c := NewController(cfg, engine.NewScene("test"), world, display)
	if c.CurrentRoom() != rooms.Main {
		t.Fatalf("Expected to start in main, got %s", c.CurrentRoom())
	}
	return c, world, display
}

func place(c *Controller, x, y, z float32) {
	c.PlayerBody.Teleport(rl.Vector3{X: x, Y: y, Z: z})
}

func findDoor(t *testing.T, c *Controller, target rooms.Name) *engine.GameObject {
	t.Helper()
	for _, obj := range c.State.RoomObjects() {
		in := engine.GetComponent[*components.Interactive](obj)
		if in == nil {
			continue
		}
		if door, ok := in.Kind.(*components.Door); ok && door.Target == target {
			return obj
		}
	}
	t.Fatalf("No door to %s in %s", target, c.CurrentRoom())
	return nil
}

func doorOf(g *engine.GameObject) *components.Door {
	return engine.GetComponent[*components.Interactive](g).Kind.(*components.Door)
}

func approx(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) <= float64(eps)
}
