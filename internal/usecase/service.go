package usecase

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"svw.info/colorsudoku/internal/domain"
	"svw.info/colorsudoku/internal/generator"
	"svw.info/colorsudoku/internal/ports"
	"svw.info/colorsudoku/internal/validator"
)

// maskRatio is the fraction of cells removed when carving a playable
// puzzle out of a solved grid.
const maskRatio = 0.60

type Service struct {
	Validator ports.Validator
	Storage   ports.Storage
}

func NewService(v ports.Validator, st ports.Storage) *Service {
	return &Service{Validator: v, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// NewPuzzle generates a full solution with the requested algorithm, masks
// 60% of its cells uniformly at random, and returns both grids. The mask
// uses its own source seeded from opts.Seed, so puzzles are reproducible.
func (u *Service) NewPuzzle(ctx context.Context, opts generator.Options) (*domain.Puzzle, ports.Stats, error) {
	full, st, err := generator.Generate(ctx, opts)
	if err != nil {
		return nil, st, err
	}
	masked := mask(full, opts.Seed)
	p := &domain.Puzzle{
		ID:        uuid.NewString(),
		Seed:      opts.Seed,
		Algorithm: opts.Algorithm,
		Grid:      *masked,
		Solution:  *full,
		CreatedAt: time.Now().UnixNano(),
	}
	return p, st, nil
}

// mask clears ⌊maskRatio·S²⌋ cells of a copy of full and marks the
// surviving cells as fixed givens.
func mask(full *domain.Grid, seed int64) *domain.Grid {
	out := full.Clone()
	size := out.Size
	out.Fixed = make([][]bool, size)
	for r := range out.Fixed {
		out.Fixed[r] = make([]bool, size)
		for c := range out.Fixed[r] {
			out.Fixed[r][c] = true
		}
	}
	positions := make([]int, size*size)
	for i := range positions {
		positions[i] = i
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(positions), func(i, j int) { positions[i], positions[j] = positions[j], positions[i] })
	remove := int(maskRatio * float64(size*size))
	for _, pos := range positions[:remove] {
		r, c := pos/size, pos%size
		out.Clear(r, c)
		out.Fixed[r][c] = false
	}
	return out
}

// Check reports conflicts in a possibly partial grid.
func (u *Service) Check(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}

// Solved reports whether g is a finished, rule-consistent grid.
func (u *Service) Solved(g *domain.Grid) bool {
	return validator.CompleteAndValid(g)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
