package puzzle

import (
	"log"

	"spherepuzzle/internal/rooms"
)

type BalanceLevel int

const (
	Steady BalanceLevel = iota
	Warning
	Critical
)

func (l BalanceLevel) String() string {
	switch l {
	case Steady:
		return "steady"
	case Warning:
		return "warning"
	}
	return "critical"
}

// LevelFor buckets a balance percentage by the warn and danger thresholds.
func LevelFor(percent, warn, danger float32) BalanceLevel {
	switch {
	case percent < warn:
		return Steady
	case percent < danger:
		return Warning
	}
	return Critical
}

// WobbleAmount is the lateral sway after timer seconds on a beam. The
// amplitude grows without bound.
func WobbleAmount(timer, frequency, growth float32) float32 {
	return sin32(timer*frequency) * (growth * timer)
}

// updateBalance runs the beam wobble and the fall respawn of the final room.
func (c *Controller) updateBalance(dt float32) {
	if c.State.Room != rooms.Final {
		return
	}
	cfg := c.cfg.Balance
	b := &c.State.Balance
	pos := c.PlayerBody.Position

	if !rooms.OnAnyBeam(pos.X, pos.Z) {
		c.resetWobble()
	} else {
		b.OnBeam = true
		b.Timer += dt
		b.Amount = WobbleAmount(b.Timer, cfg.Frequency, cfg.Growth)
		c.PlayerBody.Position.X += b.Amount * cfg.Push
		c.showBalance(b.Amount)
	}

	if c.PlayerBody.Position.Y < cfg.RespawnY {
		log.Println("Balance: fell off the walkway, respawning")
		c.movePlayerTo(c.State.layout.Entry)
	}
}

func (c *Controller) resetWobble() {
	c.State.Balance = BalanceState{}
	c.showBalance(0)
}

func (c *Controller) showBalance(amount float32) {
	cfg := c.cfg.Balance
	pct := abs32(amount) * cfg.UIScale
	if pct > 100 {
		pct = 100
	}
	c.State.Balance.Percent = pct
	c.display.ShowBalance(pct, LevelFor(pct, cfg.WarnPercent, cfg.DangerPercent))
}
