package engine

import "testing"

func TestAlienTypeForRow(t *testing.T) {
	want := []AlienType{Hard, Medium, Medium, Easy, Easy}
	for row, w := range want {
		if got := AlienTypeForRow(row); got != w {
			t.Errorf("row %d: got %v, want %v", row, got, w)
		}
	}
}

func TestRulesPoints(t *testing.T) {
	rules := DefaultRules()
	tests := []struct {
		typ  AlienType
		want int64
	}{
		{Hard, 30},
		{Medium, 20},
		{Easy, 10},
		{Mystery, 15},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			if got := rules.Points(tt.typ, fixedRand{n: 5}); got != tt.want {
				t.Errorf("Points(%v) = %d, want %d", tt.typ, got, tt.want)
			}
		})
	}
}

func TestMysteryPointsRange(t *testing.T) {
	rules := DefaultRules()
	for n := range 200 {
		got := rules.Points(Mystery, fixedRand{n: n})
		if got < 10 || got >= 100 {
			t.Fatalf("mystery points %d outside [10, 100)", got)
		}
	}
}

func TestNewAliensFull(t *testing.T) {
	a := NewAliens()

	if got := a.Alive(); got != AlienColumns*AlienRows {
		t.Fatalf("Alive() = %d, want %d", got, AlienColumns*AlienRows)
	}
	if !FieldBox().Overlaps(a.Box()) {
		t.Error("formation should lie inside the field")
	}

	for row := range AlienRows {
		for col := range AlienColumns {
			alien, ok := a.At(col, row)
			if !ok {
				t.Fatalf("slot (%d,%d) empty", col, row)
			}
			if alien.Type != AlienTypeForRow(row) {
				t.Errorf("slot (%d,%d) type %v, want %v", col, row, alien.Type, AlienTypeForRow(row))
			}
			if alien.Type == Mystery {
				t.Errorf("slot (%d,%d) holds a mystery alien", col, row)
			}
		}
	}

	// Neighbours never overlap.
	a00, _ := a.At(0, 0)
	a10, _ := a.At(1, 0)
	a01, _ := a.At(0, 1)
	if a00.Box().Overlaps(a10.Box()) || a00.Box().Overlaps(a01.Box()) {
		t.Error("adjacent aliens overlap")
	}
}

func TestAliensStepShooting(t *testing.T) {
	a := NewAliens()

	alive, shots := a.Step(quietRand, DefaultRules())
	if !alive || len(shots) != 0 {
		t.Errorf("quiet step: alive=%v shots=%d", alive, len(shots))
	}

	alive, shots = a.Step(noisyRand, DefaultRules())
	if !alive || len(shots) != AlienColumns*AlienRows {
		t.Fatalf("noisy step: alive=%v shots=%d", alive, len(shots))
	}

	first, _ := a.At(0, 0)
	b := shots[0]
	if !b.FromAlien || b.Direction != Downward || b.Owner != Hard {
		t.Errorf("first shot = %+v", b)
	}
	if b.Pos.X != first.Pos.X+AlienWidth/2 || b.Pos.Y != first.Pos.Y+AlienHeight {
		t.Errorf("first shot at %+v, want below alien at %+v", b.Pos, first.Pos)
	}
}

func TestAliensStepEmpty(t *testing.T) {
	a := NewAliens()
	for i := range a.live {
		a.live[i] = false
	}

	alive, shots := a.Step(noisyRand, DefaultRules())
	if alive || len(shots) != 0 {
		t.Errorf("empty formation: alive=%v shots=%d", alive, len(shots))
	}
}

func TestMysteryAlienLeavesField(t *testing.T) {
	m := Alien{Type: Mystery, Pos: Position{X: FieldWidth - 2, Y: 0}}

	survived, shot := m.Step(noisyRand, DefaultRules())
	if !survived || shot != nil {
		t.Fatalf("mystery alien near the edge: survived=%v shot=%v", survived, shot)
	}

	survived, _ = m.Step(noisyRand, DefaultRules())
	if survived {
		t.Error("mystery alien past the right edge should not survive")
	}
}

func TestAliensHit(t *testing.T) {
	a := NewAliens()
	i := SlotIndex(3, 4)
	alien, _ := a.Slot(i)

	var score int64
	res := a.Hit(i, NewAlienBullet(alien.Pos, Hard), &score, quietRand, DefaultRules())
	if !res.Survived || res.Absorbed {
		t.Errorf("alien bullet vs alien = %+v, want pass-through", res)
	}
	if score != 0 {
		t.Errorf("pass-through changed score to %d", score)
	}

	res = a.Hit(i, NewPlayerBullet(alien.Pos), &score, quietRand, DefaultRules())
	if res.Survived || !res.Absorbed {
		t.Errorf("player bullet vs alien = %+v, want destroyed and absorbed", res)
	}
	if score != 10 {
		t.Errorf("score = %d, want 10", score)
	}
	if _, ok := a.Slot(i); ok {
		t.Error("slot should be empty after a kill")
	}
	if got := a.Alive(); got != AlienColumns*AlienRows-1 {
		t.Errorf("Alive() = %d after one kill", got)
	}
}

func TestAliensWouldHit(t *testing.T) {
	a := NewAliens()
	target, _ := a.At(5, 2)

	b := NewPlayerBullet(Position{target.Pos.X + 1, target.Pos.Y + AlienHeight - 1})
	i, ok := a.WouldHit(b)
	if !ok || i != SlotIndex(5, 2) {
		t.Errorf("WouldHit() = %d, %v; want %d", i, ok, SlotIndex(5, 2))
	}

	gap := NewPlayerBullet(Position{target.Pos.X + AlienWidth, target.Pos.Y})
	if _, ok := a.WouldHit(gap); ok {
		t.Error("bullet in the gap between columns should not hit")
	}
}
