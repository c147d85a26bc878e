package engine

// Snapshot is a flat copy of a field's state.
// Uses primitive types only so it can be compared and hashed cheaply.
type Snapshot struct {
	Tick    uint64
	Score   int64
	Lives   int
	Wave    int
	Speed   int
	CannonX int

	AliensAlive     int
	BunkersStanding int

	// Alien liveness, one entry per slot (1 = alive).
	AlienData []int

	// Bunker cells, 9 per bunker in row-major order. Cleared bunkers are all zero.
	BunkerData []int

	// Each bullet is 4 ints: X, Y, Direction, FromAlien.
	BulletData []int
}

// Snapshot returns the current field state.
func (p *PlayField) Snapshot() Snapshot {
	alienData := make([]int, len(p.aliens.slots))
	for i, ok := range p.aliens.live {
		if ok {
			alienData[i] = 1
		}
	}

	bunkerData := make([]int, 0, BunkerCount*BunkerCells*BunkerCells)
	for i, b := range p.bunkers.slots {
		for _, row := range b.Durability {
			for _, d := range row {
				if !p.bunkers.live[i] {
					d = 0
				}
				bunkerData = append(bunkerData, int(d))
			}
		}
	}

	bulletData := make([]int, len(p.bullets)*4)
	for i, b := range p.bullets {
		idx := i * 4
		bulletData[idx] = int(b.Pos.X)   //#nosec G115 -- field coordinates are small
		bulletData[idx+1] = int(b.Pos.Y) //#nosec G115 -- field coordinates are small
		bulletData[idx+2] = int(b.Direction)
		if b.FromAlien {
			bulletData[idx+3] = 1
		}
	}

	return Snapshot{
		Tick:    p.tick,
		Score:   p.score,
		Lives:   int(p.lives), //#nosec G115 -- lives never exceed PlayerLives
		Wave:    p.wave,
		Speed:   int(p.speed),        //#nosec G115 -- speed is a small multiplier
		CannonX: int(p.cannon.pos.X), //#nosec G115 -- field coordinates are small

		AliensAlive:     p.aliens.Alive(),
		BunkersStanding: p.bunkers.Standing(),

		AlienData:  alienData,
		BunkerData: bunkerData,
		BulletData: bulletData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Speed)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CannonX)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AliensAlive)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BunkersStanding) //#nosec G115 -- hash computation

	for _, v := range snap.AlienData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.BunkerData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.BulletData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
