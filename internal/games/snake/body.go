package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// selfCheckFrom is the first body index tested against the head. Segments 1-3
// cannot be reached by the head in one unit step.
const selfCheckFrom = 4

// Body is the ordered run of cells the snake occupies. Head at index 0.
type Body struct {
	cells []core.Cell
}

// NewBody copies cells into a new body.
func NewBody(cells []core.Cell) *Body {
	b := &Body{cells: make([]core.Cell, len(cells))}
	copy(b.cells, cells)
	return b
}

// Head returns the first cell.
func (b *Body) Head() core.Cell {
	return b.cells[0]
}

// Tail returns the last cell.
func (b *Body) Tail() core.Cell {
	return b.cells[len(b.cells)-1]
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return len(b.cells)
}

// Cells returns a copy of the segments, head first.
func (b *Body) Cells() []core.Cell {
	out := make([]core.Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// Occupies reports whether any segment sits on c.
func (b *Body) Occupies(c core.Cell) bool {
	for _, seg := range b.cells {
		if seg == c {
			return true
		}
	}
	return false
}

// Ahead returns the cell one step from the head in direction d.
// The result may be off the grid; bounds are the caller's concern.
func (b *Body) Ahead(d core.Direction) core.Cell {
	dx, dy := d.Delta()
	return b.Head().Add(dx, dy)
}

// Move prepends head and drops the tail unless grow is set.
func (b *Body) Move(head core.Cell, grow bool) {
	b.cells = append([]core.Cell{head}, b.cells...)
	if !grow {
		b.cells = b.cells[:len(b.cells)-1]
	}
}

// SelfCollision reports whether the head overlaps a segment from index 4 on.
// Shorter bodies never collide.
func SelfCollision(cells []core.Cell) bool {
	if len(cells) <= selfCheckFrom {
		return false
	}
	head := cells[0]
	for _, seg := range cells[selfCheckFrom:] {
		if seg == head {
			return true
		}
	}
	return false
}
