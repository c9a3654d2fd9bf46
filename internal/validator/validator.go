package validator

import (
	"context"

	"svw.info/colorsudoku/internal/domain"
)

// Legal reports whether color could sit at (row,col) without conflicting
// with the rest of the grid. The cell under test is excluded from the scan,
// so a cell already holding color is still "legal" for that color.
func Legal(g *domain.Grid, row, col int, color domain.Color) bool {
	for i := 0; i < g.Size; i++ {
		if i != col && g.Cells[row][i] == color {
			return false
		}
		if i != row && g.Cells[i][col] == color {
			return false
		}
	}
	br, bc := g.BoxOrigin(row, col)
	rank := g.Rank()
	for dr := 0; dr < rank; dr++ {
		for dc := 0; dc < rank; dc++ {
			r, c := br+dr, bc+dc
			if (r != row || c != col) && g.Cells[r][c] == color {
				return false
			}
		}
	}
	return true
}

// CompleteAndValid reports whether every cell is filled and no row, column,
// or box repeats a color. It never mutates the grid.
func CompleteAndValid(g *domain.Grid) bool {
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			color := g.Cells[r][c]
			if color == domain.Empty {
				return false
			}
			if !Legal(g, r, c, color) {
				return false
			}
		}
	}
	return true
}

// FastValidator reports conflicts for partially filled grids, for UI
// highlighting. Empty cells never conflict.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	size := g.Size
	// rows
	for r := 0; r < size; r++ {
		seen := make(map[domain.Color]bool, size)
		for c := 0; c < size; c++ {
			color := g.Cells[r][c]
			if color == domain.Empty {
				continue
			}
			if seen[color] {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			seen[color] = true
		}
	}
	// cols
	for c := 0; c < size; c++ {
		seen := make(map[domain.Color]bool, size)
		for r := 0; r < size; r++ {
			color := g.Cells[r][c]
			if color == domain.Empty {
				continue
			}
			if seen[color] {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			seen[color] = true
		}
	}
	// boxes
	rank := g.Rank()
	for br := 0; br < size; br += rank {
		for bc := 0; bc < size; bc += rank {
			seen := make(map[domain.Color]bool, size)
			for dr := 0; dr < rank; dr++ {
				for dc := 0; dc < rank; dc++ {
					color := g.Cells[br+dr][bc+dc]
					if color == domain.Empty {
						continue
					}
					if seen[color] {
						conf = append(conf, domain.CellCoord{Row: br + dr, Col: bc + dc})
					}
					seen[color] = true
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}
