package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"svw.info/colorsudoku/internal/domain"
)

func TestMRVSolvesSmallSizes(t *testing.T) {
	for _, size := range []int{4, 9} {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		g, st, err := NewMRV().Generate(ctx, request(size, 3))
		require.NoError(t, err, "size=%d nodes=%d dur=%v", size, st.Nodes, st.Duration)
		requireSolved(t, g, size)
	}
}

func TestMostConstrainedPrefersTightestCell(t *testing.T) {
	colors := domain.DefaultColors(4)
	g := domain.NewGrid(4)
	// (0,2) sees colors[0] and colors[1] in its row and colors[2] in its
	// column, leaving one legal color. Ties later in scan order must lose.
	g.Set(0, 0, colors[0])
	g.Set(0, 1, colors[1])
	g.Set(1, 2, colors[2])

	r, c, found := mostConstrained(g, colors)
	require.True(t, found)
	require.Equal(t, 0, r)
	require.Equal(t, 2, c)
}

func TestMostConstrainedFullGrid(t *testing.T) {
	colors := domain.DefaultColors(4)
	g, _, err := NewMRV().Generate(context.Background(), request(4, 5))
	require.NoError(t, err)

	_, _, found := mostConstrained(g, colors)
	require.False(t, found, "a complete grid has no empty cell to pick")
}
