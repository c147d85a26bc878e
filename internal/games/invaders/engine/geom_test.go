package engine

import (
	"math/rand"
	"testing"
)

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Box
		want bool
	}{
		{"identical", NewBox(Position{2, 2}, 3, 3), NewBox(Position{2, 2}, 3, 3), true},
		{"contained", NewBox(Position{0, 0}, 10, 10), NewBox(Position{4, 4}, 1, 1), true},
		{"shared column", NewBox(Position{0, 0}, 3, 3), NewBox(Position{2, 0}, 3, 3), true},
		{"shared row", NewBox(Position{0, 0}, 3, 3), NewBox(Position{0, 2}, 3, 3), true},
		{"adjacent x", NewBox(Position{0, 0}, 3, 3), NewBox(Position{3, 0}, 3, 3), false},
		{"adjacent y", NewBox(Position{0, 0}, 3, 3), NewBox(Position{0, 3}, 3, 3), false},
		{"far apart", NewBox(Position{0, 0}, 1, 1), NewBox(Position{50, 30}, 4, 4), false},
		{"empty", NewBox(Position{1, 1}, 0, 3), NewBox(Position{0, 0}, 5, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoxOverlapsSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	randomBox := func() Box {
		return NewBox(
			Position{X: Unit(rng.Intn(80)), Y: Unit(rng.Intn(45))},
			Unit(rng.Intn(12)), Unit(rng.Intn(12)),
		)
	}

	for range 5000 {
		a, b := randomBox(), randomBox()
		if a.Overlaps(b) != b.Overlaps(a) {
			t.Fatalf("Overlaps not symmetric for %+v and %+v", a, b)
		}
	}
}

func TestBoxContains(t *testing.T) {
	b := NewBox(Position{10, 20}, 4, 2)

	if !b.Contains(Position{10, 20}) {
		t.Error("top-left corner should be inside")
	}
	if !b.Contains(Position{13, 21}) {
		t.Error("bottom-right corner should be inside")
	}
	if b.Contains(Position{14, 21}) {
		t.Error("point right of the box should be outside")
	}
	if b.Contains(Position{10, 22}) {
		t.Error("point below the box should be outside")
	}
}

func TestSaturatingSub(t *testing.T) {
	if got := saturatingSub(5, 3); got != 2 {
		t.Errorf("saturatingSub(5, 3) = %d, want 2", got)
	}
	if got := saturatingSub(2, 3); got != 0 {
		t.Errorf("saturatingSub(2, 3) = %d, want 0", got)
	}
}
