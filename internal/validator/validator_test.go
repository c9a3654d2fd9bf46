package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/colorsudoku/internal/domain"
)

// a complete valid 4×4 grid over the default palette
func solvedGrid(t *testing.T) *domain.Grid {
	t.Helper()
	colors := domain.DefaultColors(4)
	layout := [4][4]int{
		{0, 1, 2, 3},
		{2, 3, 0, 1},
		{1, 0, 3, 2},
		{3, 2, 1, 0},
	}
	g := domain.NewGrid(4)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			g.Set(r, c, colors[layout[r][c]])
		}
	}
	return g
}

func TestLegalScansRowColBox(t *testing.T) {
	colors := domain.DefaultColors(4)
	g := domain.NewGrid(4)
	g.Set(0, 0, colors[0])

	assert.False(t, Legal(g, 0, 3, colors[0]), "row conflict")
	assert.False(t, Legal(g, 3, 0, colors[0]), "column conflict")
	assert.False(t, Legal(g, 1, 1, colors[0]), "box conflict")
	assert.True(t, Legal(g, 2, 2, colors[0]), "no shared unit")
	assert.True(t, Legal(g, 0, 3, colors[1]), "different color")
}

func TestLegalExcludesCellUnderTest(t *testing.T) {
	g := solvedGrid(t)
	// A cell already holding a color stays legal for that color.
	assert.True(t, Legal(g, 2, 2, g.At(2, 2)))
}

func TestCompleteAndValid(t *testing.T) {
	g := solvedGrid(t)
	require.True(t, CompleteAndValid(g))

	// an unfilled cell fails completeness
	hole := g.Clone()
	hole.Clear(1, 2)
	assert.False(t, CompleteAndValid(hole))

	// a duplicated color fails validity
	dup := g.Clone()
	dup.Set(0, 0, dup.At(0, 1))
	assert.False(t, CompleteAndValid(dup))
}

func TestCompleteAndValidIsPure(t *testing.T) {
	g := solvedGrid(t)
	before := g.Clone()

	first := CompleteAndValid(g)
	second := CompleteAndValid(g)
	assert.Equal(t, first, second)
	assert.Equal(t, before.Cells, g.Cells, "validity check must not mutate the grid")
}

func TestValidateReportsConflicts(t *testing.T) {
	ctx := context.Background()
	v := New()

	g := solvedGrid(t)
	ok, conf, err := v.Validate(ctx, g)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conf)

	g.Set(0, 1, g.At(0, 0)) // duplicate in row 0 and box (0,0)
	ok, conf, err = v.Validate(ctx, g)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NotEmpty(t, conf)
}

func TestValidateIgnoresEmptyCells(t *testing.T) {
	g := domain.NewGrid(9)
	ok, conf, err := New().Validate(context.Background(), g)
	require.NoError(t, err)
	assert.True(t, ok, "an empty grid has no conflicts")
	assert.Empty(t, conf)
}
