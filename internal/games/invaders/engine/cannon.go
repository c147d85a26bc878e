package engine

// Cannon dimensions.
const (
	CannonWidth  Unit = 7
	CannonHeight Unit = 2
)

// Cannon is the player-controlled gun at the bottom of the field.
type Cannon struct {
	pos Position
}

// NewCannon creates a cannon horizontally centered on the bottom edge.
func NewCannon() Cannon {
	return Cannon{pos: Position{
		X: (FieldWidth - CannonWidth) / 2,
		Y: FieldHeight - CannonHeight,
	}}
}

// Position returns the cannon's top-left corner.
func (c Cannon) Position() Position {
	return c.pos
}

// Box returns the cannon's bounding box.
func (c Cannon) Box() Box {
	return NewBox(c.pos, CannonWidth, CannonHeight)
}

// MoveLeft moves the cannon one unit left, stopping at the field edge.
func (c *Cannon) MoveLeft() {
	if c.pos.X > 0 {
		c.pos.X--
	}
}

// MoveRight moves the cannon one unit right, stopping at the field edge.
func (c *Cannon) MoveRight() {
	if c.pos.X+CannonWidth < FieldWidth {
		c.pos.X++
	}
}

// Shoot returns a new player bullet centered on the cannon, just above it.
func (c Cannon) Shoot() Bullet {
	return NewPlayerBullet(Position{
		X: c.pos.X + CannonWidth/2,
		Y: saturatingSub(c.pos.Y, BulletHeight),
	})
}

// WouldHit reports whether b is an alien bullet touching the cannon.
// The cannon's own bullets never hit it.
func (c Cannon) WouldHit(b Bullet) bool {
	return b.FromAlien && c.Box().Overlaps(b.Box())
}
