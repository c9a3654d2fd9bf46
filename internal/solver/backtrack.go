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

// Backtracking fills cells in raster order, trying colors in a freshly
// shuffled order at every cell and undoing on dead ends.
type Backtracking struct{}

func NewBacktracking() *Backtracking { return &Backtracking{} }

func (s *Backtracking) Generate(ctx context.Context, req ports.GenerateRequest) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	g := domain.NewGrid(req.Size)
	rng := rand.New(rand.NewSource(req.Seed))
	order := append([]domain.Color(nil), req.Colors...)
	nodes := 0

	var dfs func(r, c int) bool
	dfs = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if r == req.Size {
			return true
		}
		nr, nc := r, c+1
		if nc == req.Size {
			nr, nc = r+1, 0
		}
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		for _, color := range order {
			nodes++
			if validator.Legal(g, r, c, color) {
				g.Set(r, c, color)
				if dfs(nr, nc) {
					return true
				}
				g.Clear(r, c)
			}
		}
		return false
	}

	ok := dfs(0, 0)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if !ok {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, fmt.Errorf("backtracking: %w", domain.ErrNoSolution)
	}
	return g, st, nil
}
