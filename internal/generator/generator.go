package generator

import (
	"context"
	"fmt"

	"svw.info/colorsudoku/internal/domain"
	"svw.info/colorsudoku/internal/ports"
	"svw.info/colorsudoku/internal/solver"
)

// Options configure one generation request. A nil Colors slice selects the
// default palette; a supplied one must hold exactly Size distinct labels.
type Options struct {
	Size      int
	Algorithm domain.Algorithm
	Seed      int64
	Colors    []domain.Color
}

// New returns the solver implementing the named algorithm.
func New(a domain.Algorithm) (ports.Solver, error) {
	switch a {
	case domain.Backtracking:
		return solver.NewBacktracking(), nil
	case domain.MRV:
		return solver.NewMRV(), nil
	case domain.DSATUR:
		return solver.NewDSATUR(), nil
	case domain.ExactCover:
		return solver.NewExactCover(), nil
	}
	return nil, fmt.Errorf("unknown algorithm %d: %w", int(a), domain.ErrInvalidConfig)
}

// Generate validates opts and dispatches to the chosen solver. All input
// validation happens here, before any solving starts.
func Generate(ctx context.Context, opts Options) (*domain.Grid, ports.Stats, error) {
	if err := validate(opts); err != nil {
		return nil, ports.Stats{}, err
	}
	s, err := New(opts.Algorithm)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	colors := opts.Colors
	if colors == nil {
		colors = domain.DefaultColors(opts.Size)
	}
	return s.Generate(ctx, ports.GenerateRequest{
		Size:   opts.Size,
		Seed:   opts.Seed,
		Colors: colors,
	})
}

func validate(opts Options) error {
	if opts.Size < 4 {
		return fmt.Errorf("size %d must be at least 4: %w", opts.Size, domain.ErrInvalidConfig)
	}
	if !isPerfectSquare(opts.Size) {
		return fmt.Errorf("size %d is not a perfect square: %w", opts.Size, domain.ErrInvalidConfig)
	}
	if opts.Colors == nil {
		return nil
	}
	if len(opts.Colors) != opts.Size {
		return fmt.Errorf("got %d colors for size %d: %w", len(opts.Colors), opts.Size, domain.ErrInvalidConfig)
	}
	seen := make(map[domain.Color]bool, len(opts.Colors))
	for _, c := range opts.Colors {
		if c == domain.Empty {
			return fmt.Errorf("empty color label: %w", domain.ErrInvalidConfig)
		}
		if seen[c] {
			return fmt.Errorf("duplicate color %q: %w", c, domain.ErrInvalidConfig)
		}
		seen[c] = true
	}
	return nil
}

func isPerfectSquare(n int) bool {
	for r := 1; r*r <= n; r++ {
		if r*r == n {
			return true
		}
	}
	return false
}
