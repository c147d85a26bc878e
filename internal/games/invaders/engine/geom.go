// Package engine implements the deterministic Space Invaders simulation.
// It has no I/O and no global state: every source of randomness is passed
// into Step, so two fields stepped with identical inputs and identically
// seeded generators stay identical.
package engine

// Unit is a distance in field units. Coordinates are unsigned; every
// subtraction on a Unit must be checked or saturating.
type Unit = uint

// Play field dimensions.
const (
	FieldWidth  Unit = 75
	FieldHeight Unit = 40
)

// Position is the top-left corner of an entity in field units.
type Position struct {
	X, Y Unit
}

// Box is an axis-aligned bounding box.
type Box struct {
	Pos  Position
	W, H Unit
}

// NewBox creates a box at pos with the given size.
func NewBox(pos Position, w, h Unit) Box {
	return Box{Pos: pos, W: w, H: h}
}

// FieldBox returns the box covering the whole play field.
func FieldBox() Box {
	return Box{W: FieldWidth, H: FieldHeight}
}

// Overlaps reports whether two boxes intersect. Edges are inclusive, so
// boxes sharing a single row or column overlap. Empty boxes never overlap.
func (b Box) Overlaps(other Box) bool {
	if b.W == 0 || b.H == 0 || other.W == 0 || other.H == 0 {
		return false
	}
	onX := b.Pos.X <= other.Pos.X+other.W-1 && b.Pos.X+b.W-1 >= other.Pos.X
	onY := b.Pos.Y <= other.Pos.Y+other.H-1 && b.Pos.Y+b.H-1 >= other.Pos.Y
	return onX && onY
}

// Contains reports whether the point p lies inside the box.
func (b Box) Contains(p Position) bool {
	return b.Overlaps(Box{Pos: p, W: 1, H: 1})
}

// Rand is the random source consumed by the simulation.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// saturatingSub returns a-b, or 0 when b > a.
func saturatingSub(a, b Unit) Unit {
	if b > a {
		return 0
	}
	return a - b
}
