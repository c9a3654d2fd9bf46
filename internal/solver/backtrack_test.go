package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/colorsudoku/internal/domain"
	"svw.info/colorsudoku/internal/ports"
	"svw.info/colorsudoku/internal/validator"
)

// requireSolved asserts the solver produced a complete, rule-consistent grid.
func requireSolved(t *testing.T, g *domain.Grid, size int) {
	t.Helper()
	require.NotNil(t, g)
	require.Equal(t, size, g.Size)
	require.True(t, g.Complete(), "grid has unfilled cells")
	require.True(t, validator.CompleteAndValid(g), "grid violates a unit constraint")
}

func request(size int, seed int64) ports.GenerateRequest {
	return ports.GenerateRequest{Size: size, Seed: seed, Colors: domain.DefaultColors(size)}
}

func TestBacktrackingSolvesSmallSizes(t *testing.T) {
	for _, size := range []int{4, 9} {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		g, st, err := NewBacktracking().Generate(ctx, request(size, 1))
		require.NoError(t, err, "size=%d nodes=%d dur=%v", size, st.Nodes, st.Duration)
		requireSolved(t, g, size)
	}
}

func TestBacktrackingDeterministicPerSeed(t *testing.T) {
	ctx := context.Background()
	const seed = 42

	a, _, err := NewBacktracking().Generate(ctx, request(9, seed))
	require.NoError(t, err)
	b, _, err := NewBacktracking().Generate(ctx, request(9, seed))
	require.NoError(t, err)
	assert.Equal(t, a.Cells, b.Cells, "same seed must reproduce the same grid")

	c, _, err := NewBacktracking().Generate(ctx, request(9, seed+1))
	require.NoError(t, err)
	assert.NotEqual(t, a.Cells, c.Cells, "different seed should diverge")
}

func TestBacktrackingHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g, _, err := NewBacktracking().Generate(ctx, request(9, 7))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, g)
}
