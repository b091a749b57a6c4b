package physics

import "math"

// SpatialGrid is a uniform grid over the screen for broad-phase collision
// detection. Items are inserted by position and index; QueryAround visits
// the 3x3 cell neighborhood of a position.
//
// Positions outside the grid are clamped into the border cells, so the
// neighborhood of any point still contains every item closer than cellSize.
type SpatialGrid struct {
	cellSize    float64
	invCellSize float64
	cols        int
	rows        int
	cells       []gridCell
}

// gridCell stores the indices of items that fall within a cell.
// The slice is reused between frames.
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a grid covering width x height.
// cellSize must be >= the largest distance a query cares about.
func NewSpatialGrid(width, height, cellSize float64) *SpatialGrid {
	cols := int(math.Ceil(width / cellSize))
	rows := int(math.Ceil(height / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	return &SpatialGrid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([]gridCell, cols*rows),
	}
}

// Clear removes all items without releasing cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds an item at the given position.
func (g *SpatialGrid) Insert(x, y float64, index int) {
	col, row := g.posToCell(x, y)
	idx := row*g.cols + col
	g.cells[idx].items = append(g.cells[idx].items, index)
}

// QueryAround calls fn for each item in the 3x3 neighborhood of (x, y).
// Iteration stops early when fn returns true.
func (g *SpatialGrid) QueryAround(x, y float64, fn func(index int) bool) {
	col, row := g.posToCell(x, y)

	for r := max(row-1, 0); r <= min(row+1, g.rows-1); r++ {
		rowOffset := r * g.cols
		for c := max(col-1, 0); c <= min(col+1, g.cols-1); c++ {
			for _, itemIdx := range g.cells[rowOffset+c].items {
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// posToCell converts a position to cell coordinates, clamped to the grid.
func (g *SpatialGrid) posToCell(x, y float64) (col, row int) {
	col = clampCell(x*g.invCellSize, g.cols)
	row = clampCell(y*g.invCellSize, g.rows)
	return col, row
}

func clampCell(v float64, n int) int {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v >= float64(n) {
		return n - 1
	}
	return int(v)
}
