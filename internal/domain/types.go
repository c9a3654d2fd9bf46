package domain

import "fmt"

// Color is a single color label. The empty string marks an unfilled cell.
type Color string

// Empty is the unfilled-cell marker.
const Empty Color = ""

// Grid holds an S×S matrix of optional colors, S = rank². Fixed marks the
// given cells of a masked puzzle and is empty for freshly generated grids.
type Grid struct {
	Size  int       `json:"size"`
	Cells [][]Color `json:"cells"`
	Fixed [][]bool  `json:"fixed,omitempty"`
}

// NewGrid allocates an empty grid. Size must already be validated as a
// perfect square; NewGrid does not re-check it.
func NewGrid(size int) *Grid {
	cells := make([][]Color, size)
	for r := range cells {
		cells[r] = make([]Color, size)
	}
	return &Grid{Size: size, Cells: cells}
}

// Rank is the sub-box side length, √Size.
func (g *Grid) Rank() int {
	r := 1
	for r*r < g.Size {
		r++
	}
	return r
}

func (g *Grid) checkBounds(r, c int) {
	if r < 0 || r >= g.Size || c < 0 || c >= g.Size {
		panic(fmt.Sprintf("domain: cell (%d,%d) out of range for grid size %d", r, c, g.Size))
	}
}

// At returns the color at (r,c). Out-of-range coordinates are a programmer
// error and panic rather than being reported as a solve failure.
func (g *Grid) At(r, c int) Color {
	g.checkBounds(r, c)
	return g.Cells[r][c]
}

// Set places color at (r,c).
func (g *Grid) Set(r, c int, color Color) {
	g.checkBounds(r, c)
	g.Cells[r][c] = color
}

// Clear empties the cell at (r,c).
func (g *Grid) Clear(r, c int) {
	g.checkBounds(r, c)
	g.Cells[r][c] = Empty
}

// Filled reports whether the cell at (r,c) holds a color.
func (g *Grid) Filled(r, c int) bool {
	return g.At(r, c) != Empty
}

// Complete reports whether every cell is filled.
func (g *Grid) Complete() bool {
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			if g.Cells[r][c] == Empty {
				return false
			}
		}
	}
	return true
}

// BoxOrigin returns the top-left cell of the box containing (r,c).
func (g *Grid) BoxOrigin(r, c int) (int, int) {
	g.checkBounds(r, c)
	rank := g.Rank()
	return (r / rank) * rank, (c / rank) * rank
}

// Clone returns a deep copy sharing no storage with g.
func (g *Grid) Clone() *Grid {
	out := &Grid{Size: g.Size, Cells: make([][]Color, g.Size)}
	for r := range g.Cells {
		out.Cells[r] = append([]Color(nil), g.Cells[r]...)
	}
	if g.Fixed != nil {
		out.Fixed = make([][]bool, g.Size)
		for r := range g.Fixed {
			out.Fixed[r] = append([]bool(nil), g.Fixed[r]...)
		}
	}
	return out
}

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Puzzle is a persisted color sudoku: the masked playing grid plus the full
// solution it was carved from.
type Puzzle struct {
	ID        string    `json:"id,omitempty"`
	Seed      int64     `json:"seed,omitempty"`
	Algorithm Algorithm `json:"algorithm"`
	Grid      Grid      `json:"grid"`
	Solution  Grid      `json:"solution"`
	CreatedAt int64     `json:"createdAt,omitempty"`
	Name      string    `json:"name,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	Algorithm Algorithm `json:"algorithm"`
	CreatedAt int64     `json:"createdAt"`
}
