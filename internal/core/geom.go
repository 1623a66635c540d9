// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Cell is an integer coordinate on the game grid.
type Cell struct {
	X int `msgpack:"x"`
	Y int `msgpack:"y"`
}

// Add returns the cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Direction is one of the four grid headings.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the unit offset for one step in this direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// IsOpposite reports whether d and other point in exactly reverse directions.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Grid is a finite W×H board with inclusive bounds [0, W-1]×[0, H-1].
type Grid struct {
	W, H int
}

// NewGrid creates a grid with the given dimensions.
func NewGrid(w, h int) Grid {
	return Grid{W: w, H: h}
}

// Area returns the number of cells on the grid.
func (g Grid) Area() int {
	return g.W * g.H
}

// OutOfBounds reports whether c lies outside the grid.
func (g Grid) OutOfBounds(c Cell) bool {
	return c.X < 0 || c.X > g.W-1 || c.Y < 0 || c.Y > g.H-1
}

// Contains reports whether c lies on the grid.
func (g Grid) Contains(c Cell) bool {
	return !g.OutOfBounds(c)
}

// Wrap maps an out-of-bounds coordinate to the opposite edge.
// In-bounds cells are returned unchanged.
func (g Grid) Wrap(c Cell) Cell {
	return Cell{X: wrapAxis(c.X, g.W), Y: wrapAxis(c.Y, g.H)}
}

func wrapAxis(v, size int) int {
	if size <= 0 {
		return 0
	}
	v %= size
	if v < 0 {
		v += size
	}
	return v
}

// Rect represents an axis-aligned box on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
