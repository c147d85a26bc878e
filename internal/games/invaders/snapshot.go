package invaders

import "github.com/vovakirdan/tui-invaders/internal/games/invaders/engine"

// Snapshot contains the game state for determinism tests and headless runs.
type Snapshot struct {
	engine.Snapshot

	Mode      int // 0=Campaign, 1=Endless
	State     string
	TickCount int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:      int(g.mode),
		State:     g.state,
		TickCount: g.tickCount,
	}
	if g.field != nil {
		snap.Snapshot = g.field.Snapshot()
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Snapshot.Hash()
	h = h*31 + uint64(snap.Mode)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TickCount) //#nosec G115 -- hash computation
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	return h
}
