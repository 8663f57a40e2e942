package puzzle

import (
	"testing"

	"spherepuzzle/internal/rooms"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		percent float32
		want    BalanceLevel
	}{
		{0, Steady},
		{39.9, Steady},
		{40, Warning},
		{69.9, Warning},
		{70, Critical},
		{100, Critical},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.percent, 40, 70); got != tt.want {
			t.Errorf("LevelFor(%v): expected %s, got %s", tt.percent, tt.want, got)
		}
	}
}

func TestWobbleAmountGrows(t *testing.T) {
	if WobbleAmount(0, 4, 0.25) != 0 {
		t.Errorf("Expected no wobble at t=0")
	}
	// sin(4t) peaks near t = pi/8 + k*pi/2; later peaks are larger.
	early := abs32(WobbleAmount(0.3927, 4, 0.25))
	late := abs32(WobbleAmount(0.3927+3.1416, 4, 0.25))
	if late <= early {
		t.Errorf("Expected amplitude to grow, got %v then %v", early, late)
	}
}

func TestWobbleAccumulatesOnBeam(t *testing.T) {
	c, _, display := newTestController(t)
	c.EnterRoom(rooms.Final)
	place(c, 0, 0.6, -1)

	c.updateBalance(0.1)

	b := c.State.Balance
	if !b.OnBeam || !approx(b.Timer, 0.1, 1e-6) {
		t.Fatalf("Expected on beam with timer 0.1, got %+v", b)
	}
	want := WobbleAmount(0.1, 4, 0.25)
	if !approx(b.Amount, want, 1e-6) {
		t.Errorf("Expected amount %v, got %v", want, b.Amount)
	}
	if !approx(c.PlayerBody.Position.X, want*0.1, 1e-6) {
		t.Errorf("Expected x pushed by %v, got %v", want*0.1, c.PlayerBody.Position.X)
	}
	last := display.lastBalance()
	if !approx(last.percent, abs32(want)*2000, 1e-3) || last.level != Steady {
		t.Errorf("Expected %v%% steady, got %+v", abs32(want)*2000, last)
	}

	c.updateBalance(0.1)
	if !approx(c.State.Balance.Timer, 0.2, 1e-6) {
		t.Errorf("Expected timer 0.2, got %v", c.State.Balance.Timer)
	}
}

func TestWobblePercentCapsAt100(t *testing.T) {
	c, _, display := newTestController(t)
	c.EnterRoom(rooms.Final)
	place(c, 2, 0.6, 1)
	c.State.Balance.Timer = 0.3

	c.updateBalance(0.05)

	last := display.lastBalance()
	if last.percent != 100 || last.level != Critical {
		t.Errorf("Expected 100%% critical, got %+v", last)
	}
}

func TestWobbleResetsOffBeam(t *testing.T) {
	for _, timer := range []float32{0.01, 0.5, 3, 42} {
		c, _, display := newTestController(t)
		c.EnterRoom(rooms.Final)
		c.State.Balance = BalanceState{Timer: timer, Amount: 5, Percent: 100, OnBeam: true}
		place(c, 3, 1, -4)

		c.updateBalance(0.016)

		if c.State.Balance != (BalanceState{}) {
			t.Errorf("Timer %v: expected zero balance state, got %+v", timer, c.State.Balance)
		}
		if last := display.lastBalance(); last.percent != 0 || last.level != Steady {
			t.Errorf("Timer %v: expected UI reset to 0, got %+v", timer, last)
		}
		if c.PlayerBody.Position.X != 3 {
			t.Errorf("Timer %v: expected no push off beam", timer)
		}
	}
}

func TestEnteringFinalResetsWobble(t *testing.T) {
	c, _, display := newTestController(t)
	c.State.Balance = BalanceState{Timer: 9, Amount: 1, OnBeam: true}
	c.EnterRoom(rooms.Final)

	if c.State.Balance != (BalanceState{}) {
		t.Errorf("Expected balance reset on entry, got %+v", c.State.Balance)
	}
	if display.lastBalance().percent != 0 {
		t.Errorf("Expected balance UI reset on entry")
	}
}

func TestBalanceOnlyInFinal(t *testing.T) {
	c, _, _ := newTestController(t)
	c.EnterRoom(rooms.Middle)
	place(c, 0, 0.6, -1)

	c.updateBalance(0.5)

	if c.State.Balance.Timer != 0 || c.PlayerBody.Position.X != 0 {
		t.Errorf("Expected no wobble outside final, got %+v", c.State.Balance)
	}
}

func TestFallRespawn(t *testing.T) {
	c, _, _ := newTestController(t)
	c.EnterRoom(rooms.Final)
	place(c, 2, -6, 2)
	c.PlayerBody.Velocity = rl.Vector3{X: 1, Y: -8}
	c.PlayerBody.AngularVelocity = rl.Vector3{Z: 3}

	c.updateBalance(0.016)

	if c.PlayerBody.Position != (rl.Vector3{X: 0, Y: 1, Z: -4}) {
		t.Errorf("Expected respawn at final entry, got %v", c.PlayerBody.Position)
	}
	if c.PlayerBody.Velocity != (rl.Vector3{}) || c.PlayerBody.AngularVelocity != (rl.Vector3{}) {
		t.Errorf("Expected zero velocity after respawn")
	}
	if c.CurrentRoom() != rooms.Final {
		t.Errorf("Expected to stay in final")
	}
}

func TestNoRespawnAboveThreshold(t *testing.T) {
	c, _, _ := newTestController(t)
	c.EnterRoom(rooms.Final)
	place(c, 2, -4.9, 2)

	c.updateBalance(0.016)

	if c.PlayerBody.Position.Y != -4.9 {
		t.Errorf("Expected no respawn at y=-4.9, got %v", c.PlayerBody.Position)
	}
}
