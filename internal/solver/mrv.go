package solver

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"svw.info/colorsudoku/internal/domain"
	"svw.info/colorsudoku/internal/ports"
	"svw.info/colorsudoku/internal/validator"
)

// MRV branches like the plain backtracking solver but always picks the
// empty cell with the fewest legal colors remaining (first minimum in scan
// order on ties).
type MRV struct{}

func NewMRV() *MRV { return &MRV{} }

// mostConstrained rescans all empty cells and returns the one with the
// minimum count of legal colors. found is false once the grid is full.
func mostConstrained(g *domain.Grid, colors []domain.Color) (row, col int, found bool) {
	best := len(colors) + 1
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			if g.Cells[r][c] != domain.Empty {
				continue
			}
			n := 0
			for _, color := range colors {
				if validator.Legal(g, r, c, color) {
					n++
				}
			}
			if !found || n < best {
				best = n
				row, col = r, c
				found = true
			}
		}
	}
	return row, col, found
}

func (s *MRV) Generate(ctx context.Context, req ports.GenerateRequest) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	g := domain.NewGrid(req.Size)
	rng := rand.New(rand.NewSource(req.Seed))
	order := append([]domain.Color(nil), req.Colors...)
	nodes := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, found := mostConstrained(g, req.Colors)
		if !found {
			return true
		}
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		for _, color := range order {
			nodes++
			if validator.Legal(g, r, c, color) {
				g.Set(r, c, color)
				if dfs() {
					return true
				}
				g.Clear(r, c)
			}
		}
		return false
	}

	ok := dfs()
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if !ok {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, fmt.Errorf("mrv: %w", domain.ErrNoSolution)
	}
	return g, st, nil
}
