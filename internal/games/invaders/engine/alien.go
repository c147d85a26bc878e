package engine

// Alien and alien grid dimensions.
const (
	AlienWidth   Unit = 4
	AlienHeight  Unit = 4
	AlienColumns      = 11
	AlienRows         = 5
	AlienGridGap Unit = 1

	AliensWidth  = AlienWidth*AlienColumns + (AlienColumns-1)*AlienGridGap
	AliensHeight = AlienHeight*AlienRows + (AlienRows-1)*AlienGridGap

	// AliensTop is the y coordinate of the grid's first row.
	AliensTop Unit = 2
)

// AlienType determines an alien's point value and how often it fires.
type AlienType int

const (
	Mystery AlienType = iota
	Hard
	Medium
	Easy
	alienTypeCount
)

// AlienTypeForRow returns the type of the aliens placed in a grid row.
// Row 0 is Hard, rows 1-2 Medium, everything below Easy.
func AlienTypeForRow(row int) AlienType {
	switch {
	case row <= 0:
		return Hard
	case row <= 2:
		return Medium
	default:
		return Easy
	}
}

// String returns a human-readable name for the type.
func (t AlienType) String() string {
	switch t {
	case Mystery:
		return "Mystery"
	case Hard:
		return "Hard"
	case Medium:
		return "Medium"
	case Easy:
		return "Easy"
	default:
		return "Unknown"
	}
}

// Rules holds the per-type alien parameters.
type Rules struct {
	// ShootProbability is the chance per tick that an alien of each type fires.
	ShootProbability [alienTypeCount]float64

	// Mystery aliens are worth a uniformly drawn value in [MysteryMinPoints, MysteryMaxPoints).
	MysteryMinPoints int
	MysteryMaxPoints int
}

// DefaultRules returns the classic rules.
func DefaultRules() Rules {
	return Rules{
		ShootProbability: [alienTypeCount]float64{
			Mystery: 0,
			Hard:    0.5,
			Medium:  0.3,
			Easy:    0.2,
		},
		MysteryMinPoints: 10,
		MysteryMaxPoints: 100,
	}
}

// Probability returns the per-tick shoot probability for t.
func (r Rules) Probability(t AlienType) float64 {
	if t < 0 || t >= alienTypeCount {
		return 0
	}
	return r.ShootProbability[t]
}

// Points returns the score awarded for destroying an alien of type t.
func (r Rules) Points(t AlienType, rng Rand) int64 {
	switch t {
	case Hard:
		return 30
	case Medium:
		return 20
	case Easy:
		return 10
	case Mystery:
		span := r.MysteryMaxPoints - r.MysteryMinPoints
		if span <= 0 {
			return int64(r.MysteryMinPoints)
		}
		return int64(r.MysteryMinPoints + rng.Intn(span))
	default:
		return 0
	}
}

// HitResult is the outcome of a bullet striking a target.
type HitResult struct {
	Survived bool // target is still in play
	Absorbed bool // bullet is consumed
}

// Alien is a single enemy.
type Alien struct {
	Type AlienType
	Pos  Position
}

// Box returns the alien's bounding box.
func (a Alien) Box() Box {
	return NewBox(a.Pos, AlienWidth, AlienHeight)
}

// Step advances the alien by one tick. Mystery aliens drift right and
// report false once they leave the field. Other aliens stay put and may
// return a freshly fired bullet.
func (a *Alien) Step(rng Rand, rules Rules) (survived bool, shot *Bullet) {
	if a.Type == Mystery {
		a.Pos.X++
		return FieldBox().Overlaps(a.Box()), nil
	}

	if rng.Float64() >= rules.Probability(a.Type) {
		return true, nil
	}

	b := NewAlienBullet(Position{
		X: a.Pos.X + AlienWidth/2,
		Y: a.Pos.Y + AlienHeight,
	}, a.Type)
	return true, &b
}

// Aliens is the fixed 11x5 enemy formation. Slots are never removed;
// a destroyed alien only clears its liveness bit.
type Aliens struct {
	pos   Position
	slots [AlienColumns * AlienRows]Alien
	live  [AlienColumns * AlienRows]bool
}

// NewAliens creates a full formation centered horizontally.
func NewAliens() Aliens {
	a := Aliens{pos: Position{
		X: (FieldWidth - AliensWidth) / 2,
		Y: AliensTop,
	}}

	for row := range AlienRows {
		for col := range AlienColumns {
			i := SlotIndex(col, row)
			a.slots[i] = Alien{
				Type: AlienTypeForRow(row),
				Pos: Position{
					X: a.pos.X + Unit(col)*(AlienWidth+AlienGridGap),
					Y: a.pos.Y + Unit(row)*(AlienHeight+AlienGridGap),
				},
			}
			a.live[i] = true
		}
	}
	return a
}

// SlotIndex returns the flat slot index of a grid cell.
func SlotIndex(col, row int) int {
	return row*AlienColumns + col
}

// Position returns the formation's anchor.
func (a Aliens) Position() Position {
	return a.pos
}

// Box returns the formation's bounding box.
func (a Aliens) Box() Box {
	return NewBox(a.pos, AliensWidth, AliensHeight)
}

// At returns the alien in a grid cell and whether the slot is occupied.
func (a Aliens) At(col, row int) (Alien, bool) {
	if col < 0 || col >= AlienColumns || row < 0 || row >= AlienRows {
		return Alien{}, false
	}
	i := SlotIndex(col, row)
	return a.slots[i], a.live[i]
}

// Slot returns the alien stored at a flat index and whether it is alive.
func (a Aliens) Slot(i int) (Alien, bool) {
	if i < 0 || i >= len(a.slots) {
		return Alien{}, false
	}
	return a.slots[i], a.live[i]
}

// Alive returns the number of occupied slots.
func (a Aliens) Alive() int {
	n := 0
	for _, ok := range a.live {
		if ok {
			n++
		}
	}
	return n
}

// Step advances every live alien. Aliens that do not survive their own
// step are cleared. Returns whether any alien is still alive together
// with every bullet fired this tick.
func (a *Aliens) Step(rng Rand, rules Rules) (anyAlive bool, shots []Bullet) {
	for i := range a.slots {
		if !a.live[i] {
			continue
		}

		survived, shot := a.slots[i].Step(rng, rules)
		if !survived {
			a.live[i] = false
			continue
		}

		anyAlive = true
		if shot != nil {
			shots = append(shots, *shot)
		}
	}
	return anyAlive, shots
}

// WouldHit returns the slot index of the first live alien the bullet
// has entered.
func (a Aliens) WouldHit(b Bullet) (int, bool) {
	for i := range a.slots {
		if a.live[i] && b.entered(a.slots[i].Box()) {
			return i, true
		}
	}
	return -1, false
}

// Hit resolves bullet b striking the alien in slot i. Alien bullets pass
// through other aliens; player bullets destroy the alien and score its points.
func (a *Aliens) Hit(i int, b Bullet, score *int64, rng Rand, rules Rules) HitResult {
	if i < 0 || i >= len(a.slots) || !a.live[i] {
		return HitResult{}
	}
	if b.FromAlien {
		return HitResult{Survived: true, Absorbed: false}
	}

	*score += rules.Points(a.slots[i].Type, rng)
	a.live[i] = false
	return HitResult{Survived: false, Absorbed: true}
}
