package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/engine"
)

// Autopilot produces scripted input for headless runs: the cannon sweeps
// from wall to wall and fires every ShootEvery ticks.
type Autopilot struct {
	ShootEvery int // fire on every n-th tick; values below 1 fire every tick

	tick  int
	right bool
}

// NewAutopilot returns an autopilot that starts moving right.
func NewAutopilot(shootEvery int) *Autopilot {
	return &Autopilot{ShootEvery: shootEvery, right: true}
}

// Next returns the input for the next tick of g.
func (a *Autopilot) Next(g *Game) core.InputFrame {
	in := core.NewInputFrame()

	if f := g.Field(); f != nil {
		switch x := f.Cannon().Position().X; {
		case x == 0:
			a.right = true
		case x >= engine.FieldWidth-engine.CannonWidth:
			a.right = false
		}
	}
	if a.right {
		in.Set(core.ActionRight)
	} else {
		in.Set(core.ActionLeft)
	}

	if a.ShootEvery <= 1 || a.tick%a.ShootEvery == 0 {
		in.Set(core.ActionShoot)
	}
	a.tick++

	return in
}

// Play steps g with autopilot input until it ends or maxTicks platform
// ticks have passed. observe, if not nil, sees every step result.
// It returns the number of ticks played.
func (a *Autopilot) Play(g *Game, maxTicks int, observe func(tick int, res core.StepResult)) int {
	for i := range maxTicks {
		res := g.Step(a.Next(g))
		if observe != nil {
			observe(i+1, res)
		}
		if res.State.GameOver {
			return i + 1
		}
	}
	return maxTicks
}
