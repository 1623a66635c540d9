package core

import "testing"

func TestGridOutOfBounds(t *testing.T) {
	g := NewGrid(20, 20)

	tests := []struct {
		name     string
		cell     Cell
		expected bool
	}{
		{"origin", Cell{0, 0}, false},
		{"bottom-right corner", Cell{19, 19}, false},
		{"left of grid", Cell{-1, 5}, true},
		{"right of grid", Cell{20, 5}, true},
		{"above grid", Cell{5, -1}, true},
		{"below grid", Cell{5, 20}, true},
		{"center", Cell{10, 10}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.OutOfBounds(tc.cell); got != tc.expected {
				t.Errorf("OutOfBounds(%v) = %v, expected %v", tc.cell, got, tc.expected)
			}
			if got := g.Contains(tc.cell); got == tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.cell, got, !tc.expected)
			}
		})
	}
}

func TestGridWrap(t *testing.T) {
	g := NewGrid(20, 15)

	tests := []struct {
		name     string
		in, want Cell
	}{
		{"off right edge", Cell{20, 3}, Cell{0, 3}},
		{"off left edge", Cell{-1, 3}, Cell{19, 3}},
		{"off top edge", Cell{4, -1}, Cell{4, 14}},
		{"off bottom edge", Cell{4, 15}, Cell{4, 0}},
		{"in bounds unchanged", Cell{7, 7}, Cell{7, 7}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.Wrap(tc.in); got != tc.want {
				t.Errorf("Wrap(%v) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := [][2]Direction{
		{DirUp, DirDown},
		{DirLeft, DirRight},
	}
	for _, p := range pairs {
		if !p[0].IsOpposite(p[1]) || !p[1].IsOpposite(p[0]) {
			t.Errorf("%v and %v should be opposite", p[0], p[1])
		}
	}
	if DirUp.IsOpposite(DirLeft) {
		t.Error("up and left are not opposite")
	}
	if DirRight.IsOpposite(DirRight) {
		t.Error("a direction is not its own opposite")
	}
}

func TestDirectionDelta(t *testing.T) {
	start := Cell{5, 5}
	expected := map[Direction]Cell{
		DirUp:    {5, 4},
		DirDown:  {5, 6},
		DirLeft:  {4, 5},
		DirRight: {6, 5},
	}
	for d, want := range expected {
		dx, dy := d.Delta()
		if got := start.Add(dx, dy); got != want {
			t.Errorf("%v from %v = %v, expected %v", d, start, got, want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
