package ports

import (
	"context"
	"time"

	"svw.info/colorsudoku/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// GenerateRequest describes one generation run. The façade validates Size
// and Colors before a solver ever sees them; Seed feeds the solver's
// private random source so runs are reproducible.
type GenerateRequest struct {
	Size   int
	Seed   int64
	Colors []domain.Color
}

// Solver produces a fully filled valid grid or an explicit failure.
type Solver interface {
	Generate(ctx context.Context, req GenerateRequest) (*domain.Grid, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, g *domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
