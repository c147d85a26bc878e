package engine

// Bullet dimensions.
const (
	BulletWidth  Unit = 1
	BulletHeight Unit = 3
)

// Direction is the fixed travel direction of a bullet.
type Direction int

const (
	Upward Direction = iota
	Downward
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Upward:
		return "Upward"
	case Downward:
		return "Downward"
	default:
		return "Unknown"
	}
}

// Bullet is a projectile travelling in a straight vertical line.
type Bullet struct {
	Pos       Position
	Direction Direction

	// FromAlien is false for bullets fired by the cannon.
	// Owner is only meaningful when FromAlien is set.
	FromAlien bool
	Owner     AlienType
}

// NewPlayerBullet creates an upward bullet fired by the cannon.
func NewPlayerBullet(pos Position) Bullet {
	return Bullet{Pos: pos, Direction: Upward}
}

// NewAlienBullet creates a downward bullet owned by an alien of the given type.
func NewAlienBullet(pos Position, owner AlienType) Bullet {
	return Bullet{Pos: pos, Direction: Downward, FromAlien: true, Owner: owner}
}

// Box returns the bullet's bounding box.
func (b Bullet) Box() Box {
	return NewBox(b.Pos, BulletWidth, BulletHeight)
}

// Step moves the bullet one unit along its direction.
// An upward bullet already at y=0 cannot move and reports false.
func (b *Bullet) Step() bool {
	switch b.Direction {
	case Upward:
		if b.Pos.Y == 0 {
			return false
		}
		b.Pos.Y--
	case Downward:
		if b.Pos.Y >= ^Unit(0)-BulletHeight {
			return false
		}
		b.Pos.Y++
	}
	return true
}

// ContactPoint returns the pixel used for hit-testing. Upward bullets test
// their leading edge; downward bullets test their trailing edge, so they
// only register once they have fully entered a target. Both are the top pixel.
func (b Bullet) ContactPoint() Position {
	return b.Pos
}

// entered reports whether the bullet's contact point is inside target.
func (b Bullet) entered(target Box) bool {
	return target.Contains(b.ContactPoint())
}
