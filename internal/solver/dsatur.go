package solver

import (
	"context"
	"fmt"
	"time"

	"svw.info/colorsudoku/internal/domain"
	"svw.info/colorsudoku/internal/ports"
	"svw.info/colorsudoku/internal/validator"
)

// DSATUR is the one greedy, non-backtracking strategy: it repeatedly colors
// the empty cell whose neighbors already use the most distinct colors,
// always with the lowest-index legal color. It can legitimately dead-end,
// in which case it reports ErrNoSolution instead of a partial grid.
type DSATUR struct{}

func NewDSATUR() *DSATUR { return &DSATUR{} }

// saturation counts distinct colors among the row, column, and box
// neighbors of (row,col).
func saturation(g *domain.Grid, row, col int) int {
	used := make(map[domain.Color]bool, g.Size)
	for i := 0; i < g.Size; i++ {
		if color := g.Cells[row][i]; color != domain.Empty {
			used[color] = true
		}
		if color := g.Cells[i][col]; color != domain.Empty {
			used[color] = true
		}
	}
	br, bc := g.BoxOrigin(row, col)
	rank := g.Rank()
	for dr := 0; dr < rank; dr++ {
		for dc := 0; dc < rank; dc++ {
			if color := g.Cells[br+dr][bc+dc]; color != domain.Empty {
				used[color] = true
			}
		}
	}
	return len(used)
}

// mostSaturated returns the empty cell with the highest saturation degree,
// first in scan order on ties; found is false once the grid is full.
func mostSaturated(g *domain.Grid) (row, col int, found bool) {
	best := -1
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			if g.Cells[r][c] != domain.Empty {
				continue
			}
			if d := saturation(g, r, c); d > best {
				best = d
				row, col = r, c
				found = true
			}
		}
	}
	return row, col, found
}

func (s *DSATUR) Generate(ctx context.Context, req ports.GenerateRequest) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	g := domain.NewGrid(req.Size)
	nodes := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		r, c, found := mostSaturated(g)
		if !found {
			break
		}
		assigned := false
		for _, color := range req.Colors {
			nodes++
			if validator.Legal(g, r, c, color) {
				g.Set(r, c, color)
				assigned = true
				break
			}
		}
		if !assigned {
			st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
			return nil, st, fmt.Errorf("dsatur: no legal color for cell (%d,%d): %w", r, c, domain.ErrNoSolution)
		}
	}
	return g, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
