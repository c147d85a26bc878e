package engine

// Bunker dimensions. A bunker is split into a 3x3 grid of equally sized cells.
const (
	BunkerWidth  Unit = 9
	BunkerHeight Unit = 6
	BunkerCells       = 3

	BunkerCellWidth  = BunkerWidth / BunkerCells
	BunkerCellHeight = BunkerHeight / BunkerCells

	BunkerCount        = 4
	BunkerGap          = BunkerWidth
	BunkersWidth       = BunkerWidth*BunkerCount + (BunkerCount-1)*BunkerGap
	bunkersCannonSpans = 5
)

// bunkerDurability is the initial arch: the two lower middle cells are open.
var bunkerDurability = [BunkerCells][BunkerCells]uint8{
	{2, 2, 2},
	{2, 0, 2},
	{2, 0, 2},
}

// Bunker is a destructible shield. Durability is indexed [row][col].
type Bunker struct {
	Pos        Position
	Durability [BunkerCells][BunkerCells]uint8
}

// NewBunker creates a bunker with full durability at pos.
func NewBunker(pos Position) Bunker {
	return Bunker{Pos: pos, Durability: bunkerDurability}
}

// Box returns the bunker's bounding box.
func (b Bunker) Box() Box {
	return NewBox(b.Pos, BunkerWidth, BunkerHeight)
}

// Destroyed reports whether every cell is worn down to zero.
func (b Bunker) Destroyed() bool {
	for _, row := range b.Durability {
		for _, d := range row {
			if d > 0 {
				return false
			}
		}
	}
	return true
}

// cell maps the bullet's contact point to a durability cell.
func (b Bunker) cell(bullet Bullet) (col, row int, ok bool) {
	if !bullet.entered(b.Box()) {
		return 0, 0, false
	}

	p := bullet.ContactPoint()
	col = int((p.X - b.Pos.X) / BunkerCellWidth)
	row = int((p.Y - b.Pos.Y) / BunkerCellHeight)
	if col >= BunkerCells || row >= BunkerCells {
		return 0, 0, false
	}
	return col, row, true
}

// WouldHit reports whether the bullet strikes a cell that still has durability.
func (b Bunker) WouldHit(bullet Bullet) bool {
	col, row, ok := b.cell(bullet)
	return ok && b.Durability[row][col] > 0
}

// Hit wears down the struck cell by one. Bunkers stop every bullet.
func (b *Bunker) Hit(bullet Bullet) HitResult {
	col, row, ok := b.cell(bullet)
	if ok && b.Durability[row][col] > 0 {
		b.Durability[row][col]--
	}
	return HitResult{Survived: !b.Destroyed(), Absorbed: true}
}

// Bunkers is the fixed row of shields above the cannon.
type Bunkers struct {
	pos   Position
	slots [BunkerCount]Bunker
	live  [BunkerCount]bool
}

// NewBunkers creates the full row, evenly spaced and centered.
func NewBunkers() Bunkers {
	bs := Bunkers{pos: Position{
		X: (FieldWidth - BunkersWidth) / 2,
		Y: FieldHeight - CannonHeight*bunkersCannonSpans,
	}}

	for i := range BunkerCount {
		bs.slots[i] = NewBunker(Position{
			X: bs.pos.X + Unit(i)*(BunkerWidth+BunkerGap),
			Y: bs.pos.Y,
		})
		bs.live[i] = true
	}
	return bs
}

// Position returns the row's anchor.
func (bs Bunkers) Position() Position {
	return bs.pos
}

// Slot returns the bunker at index i and whether it is still standing.
func (bs Bunkers) Slot(i int) (Bunker, bool) {
	if i < 0 || i >= BunkerCount {
		return Bunker{}, false
	}
	return bs.slots[i], bs.live[i]
}

// Standing returns the number of bunkers still in play.
func (bs Bunkers) Standing() int {
	n := 0
	for _, ok := range bs.live {
		if ok {
			n++
		}
	}
	return n
}

// WouldHit returns the index of the first standing bunker the bullet strikes.
func (bs Bunkers) WouldHit(b Bullet) (int, bool) {
	for i := range bs.slots {
		if bs.live[i] && bs.slots[i].WouldHit(b) {
			return i, true
		}
	}
	return -1, false
}

// Hit resolves bullet b striking bunker i, clearing the slot once the
// bunker is destroyed.
func (bs *Bunkers) Hit(i int, b Bullet) HitResult {
	if i < 0 || i >= BunkerCount || !bs.live[i] {
		return HitResult{}
	}

	res := bs.slots[i].Hit(b)
	if !res.Survived {
		bs.live[i] = false
	}
	return res
}
