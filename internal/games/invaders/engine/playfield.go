package engine

// PlayerLives is the number of lives a new field starts with.
const PlayerLives uint = 3

// Instruction is the movement requested for the cannon this tick.
type Instruction int

const (
	InstructionNone Instruction = iota
	MoveLeft
	MoveRight
)

// String returns a human-readable name for the instruction.
func (i Instruction) String() string {
	switch i {
	case InstructionNone:
		return "None"
	case MoveLeft:
		return "MoveLeft"
	case MoveRight:
		return "MoveRight"
	default:
		return "Unknown"
	}
}

// TargetKind enumerates everything a bullet can hit.
type TargetKind int

const (
	TargetCannon TargetKind = iota + 1
	TargetAlien
	TargetBunker
)

// Target identifies the entity a bullet would hit. Index is the slot
// index for aliens and bunkers and unused for the cannon.
type Target struct {
	Kind  TargetKind
	Index int
}

// Stats counts what happened over the lifetime of a field.
type Stats struct {
	Shots       uint // player bullets fired
	Kills       uint // aliens destroyed by the player
	Misses      uint // bullets of either side that left the field
	AlienShots  uint // bullets fired by aliens
	BunkerHits  uint // bullets stopped by a bunker
	CannonHits  uint // alien bullets that struck the cannon
	WavesPlayed uint
}

// Accuracy returns the share of player shots that destroyed an alien.
func (s Stats) Accuracy() float64 {
	if s.Shots == 0 {
		return 0
	}
	return float64(s.Kills) / float64(s.Shots)
}

// PlayField owns every entity of a single game. Create a new one to reset.
type PlayField struct {
	cannon  Cannon
	aliens  Aliens
	bunkers Bunkers
	bullets []Bullet
	rules   Rules

	score       int64
	lives       uint
	speed       uint
	wave        int
	aliensAlive bool
	tick        uint64
	stats       Stats
}

// New creates a field with the classic rules.
func New() *PlayField {
	return NewWithRules(DefaultRules())
}

// NewWithRules creates a field whose aliens follow rules.
func NewWithRules(rules Rules) *PlayField {
	return &PlayField{
		cannon:      NewCannon(),
		aliens:      NewAliens(),
		bunkers:     NewBunkers(),
		bullets:     make([]Bullet, 0, 32),
		rules:       rules,
		lives:       PlayerLives,
		speed:       1,
		wave:        1,
		aliensAlive: true,
		stats:       Stats{WavesPlayed: 1},
	}
}

// Aliens returns a copy of the alien formation.
func (p *PlayField) Aliens() Aliens { return p.aliens }

// Bunkers returns a copy of the bunker row.
func (p *PlayField) Bunkers() Bunkers { return p.bunkers }

// Bullets returns a copy of the live bullets.
func (p *PlayField) Bullets() []Bullet {
	out := make([]Bullet, len(p.bullets))
	copy(out, p.bullets)
	return out
}

// Cannon returns a copy of the cannon.
func (p *PlayField) Cannon() Cannon { return p.cannon }

// Score returns the current score. It may be negative.
func (p *PlayField) Score() int64 { return p.score }

// Lives returns the remaining lives.
func (p *PlayField) Lives() uint { return p.lives }

// SetLives overrides the starting lives. Zero is raised to one.
func (p *PlayField) SetLives(lives uint) {
	p.lives = max(lives, 1)
}

// SetRules replaces the alien rules, e.g. as difficulty rises.
func (p *PlayField) SetRules(rules Rules) {
	p.rules = rules
}

// Speed returns the tick-rate multiplier.
func (p *PlayField) Speed() uint { return p.speed }

// SetSpeed sets the tick-rate multiplier. Values below 1 are raised to 1.
func (p *PlayField) SetSpeed(speed uint) {
	p.speed = max(speed, 1)
}

// Wave returns the 1-based wave number.
func (p *PlayField) Wave() int { return p.wave }

// Tick returns the number of steps taken so far.
func (p *PlayField) Tick() uint64 { return p.tick }

// Stats returns the running counters.
func (p *PlayField) Stats() Stats { return p.stats }

// Rules returns the alien rules in effect.
func (p *PlayField) Rules() Rules { return p.rules }

// Cleared reports whether the last alien step found no live alien.
// What happens next is up to the caller.
func (p *PlayField) Cleared() bool { return !p.aliensAlive }

// Dead reports whether the player has no lives left.
func (p *PlayField) Dead() bool { return p.lives == 0 }

// NextWave restores the formation and the bunkers and drops every bullet.
// Score, lives, speed and statistics carry over.
func (p *PlayField) NextWave() {
	p.aliens = NewAliens()
	p.bunkers = NewBunkers()
	p.bullets = p.bullets[:0]
	p.aliensAlive = true
	p.wave++
	p.stats.WavesPlayed++
}

// Step advances the simulation by one tick and reports whether the cannon
// survived it.
func (p *PlayField) Step(in Instruction, shoot bool, rng Rand) bool {
	p.tick++

	switch in {
	case MoveLeft:
		p.cannon.MoveLeft()
	case MoveRight:
		p.cannon.MoveRight()
	}
	if shoot {
		p.bullets = append(p.bullets, p.cannon.Shoot())
		p.stats.Shots++
	}

	anyAlive, shots := p.aliens.Step(rng, p.rules)
	p.aliensAlive = anyAlive

	survived := true
	field := FieldBox()
	kept := p.bullets[:0]
	for _, b := range p.bullets {
		if !b.Step() || !field.Overlaps(b.Box()) {
			p.score--
			p.stats.Misses++
			continue
		}

		t, ok := p.target(b)
		if !ok {
			kept = append(kept, b)
			continue
		}

		res := p.resolve(t, b, rng)
		if t.Kind == TargetCannon {
			survived = false
		}
		if !res.Absorbed {
			kept = append(kept, b)
		}
	}
	p.bullets = append(kept, shots...)
	p.stats.AlienShots += uint(len(shots))

	return survived
}

// target finds what b would hit, testing the cannon, then the aliens,
// then the bunkers. The first match wins.
func (p *PlayField) target(b Bullet) (Target, bool) {
	if p.cannon.WouldHit(b) {
		return Target{Kind: TargetCannon}, true
	}
	if i, ok := p.aliens.WouldHit(b); ok {
		return Target{Kind: TargetAlien, Index: i}, true
	}
	if i, ok := p.bunkers.WouldHit(b); ok {
		return Target{Kind: TargetBunker, Index: i}, true
	}
	return Target{}, false
}

// resolve applies the effect of b striking t.
func (p *PlayField) resolve(t Target, b Bullet, rng Rand) HitResult {
	switch t.Kind {
	case TargetCannon:
		if p.lives > 0 {
			p.lives--
		}
		p.stats.CannonHits++
		return HitResult{Survived: p.lives > 0, Absorbed: true}

	case TargetAlien:
		res := p.aliens.Hit(t.Index, b, &p.score, rng, p.rules)
		if res.Absorbed {
			p.stats.Kills++
		}
		return res

	case TargetBunker:
		p.stats.BunkerHits++
		return p.bunkers.Hit(t.Index, b)
	}
	return HitResult{}
}
